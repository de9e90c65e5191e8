package wiring_test

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/wiring/wiring"
)

// untyped builds Ports over the Untyped theory.
func untyped(vals ...any) wiring.Ports {
	return wiring.NewPorts(wiring.Untyped, vals...)
}

// boxDiagram builds the singleton diagram of one named generic box.
func boxDiagram(name string, dom, codom wiring.Ports) *wiring.Diagram {
	return wiring.SingletonDiagram(dom.Theory, wiring.NewGenericBox(name, dom.Values, codom.Values))
}

// sameBox compares two boxes by kind, value, and port lists.
func sameBox(a, b wiring.Box) bool {
	switch x := a.(type) {
	case *wiring.GenericBox:
		y, ok := b.(*wiring.GenericBox)

		return ok && reflect.DeepEqual(x.Val, y.Val) &&
			reflect.DeepEqual(x.InputPorts(), y.InputPorts()) &&
			reflect.DeepEqual(x.OutputPorts(), y.OutputPorts())
	case *wiring.Junction:
		y, ok := b.(*wiring.Junction)

		return ok && reflect.DeepEqual(x.Val, y.Val) && x.NIn == y.NIn && x.NOut == y.NOut
	default:
		return false
	}
}

// permutedEqual reports whether a and b are equal up to the given
// permutation of boxes: a's i-th box (in enumeration order) corresponds
// to b's perm[i]-th box.
func permutedEqual(a, b *wiring.Diagram, perm []int) bool {
	if !a.Dom().Equal(b.Dom()) || !a.Codom().Equal(b.Codom()) {
		return false
	}
	aIDs, bIDs := a.BoxIDs(), b.BoxIDs()
	if len(aIDs) != len(bIDs) || len(perm) != len(aIDs) {
		return false
	}
	idMap := map[int]int{a.InputID(): b.InputID(), a.OutputID(): b.OutputID()}
	for i, p := range perm {
		ab, _ := a.BoxAt(aIDs[i])
		bb, _ := b.BoxAt(bIDs[p])
		if !sameBox(ab, bb) {
			return false
		}
		idMap[aIDs[i]] = bIDs[p]
	}

	return wireSetsEqual(remapWires(a.Wires(), idMap), b.Wires())
}

func remapWires(ws []wiring.Wire, idMap map[int]int) []wiring.Wire {
	out := make([]wiring.Wire, len(ws))
	for i, w := range ws {
		w.Source.Box = idMap[w.Source.Box]
		w.Target.Box = idMap[w.Target.Box]
		out[i] = w
	}

	return out
}

// wireSetsEqual compares two wire lists as multisets.
func wireSetsEqual(a, b []wiring.Wire) bool {
	if len(a) != len(b) {
		return false
	}
	ka := wireKeys(a)
	kb := wireKeys(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}

	return true
}

func wireKeys(ws []wiring.Wire) []string {
	keys := make([]string, len(ws))
	for i, w := range ws {
		keys[i] = fmt.Sprintf("%v", w)
	}
	sort.Strings(keys)

	return keys
}
