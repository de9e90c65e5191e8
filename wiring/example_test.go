package wiring_test

import (
	"fmt"

	"github.com/katalvlaran/wiring/wiring"
)

// ExampleCompose wires two boxes in sequence and reads off the resulting
// diagram's shape.
func ExampleCompose() {
	f := wiring.SingletonDiagram(wiring.Untyped,
		wiring.NewGenericBox("f", []any{"X"}, []any{"Y"}))
	g := wiring.SingletonDiagram(wiring.Untyped,
		wiring.NewGenericBox("g", []any{"Y"}, []any{"Z"}))

	h, err := wiring.Compose(f, g)
	if err != nil {
		fmt.Println("compose:", err)
		return
	}

	fmt.Println("dom:", h.Dom().Values)
	fmt.Println("codom:", h.Codom().Values)
	fmt.Println("boxes:", h.NBoxes(), "wires:", h.NWires())
	// Output:
	// dom: [X]
	// codom: [Z]
	// boxes: 2 wires: 3
}

// ExampleMCopy builds the untyped 3-fold copy, which needs no boxes at all.
func ExampleMCopy() {
	a := wiring.NewPorts(wiring.Untyped, "X")

	d, err := wiring.MCopy(a, 3)
	if err != nil {
		fmt.Println("mcopy:", err)
		return
	}

	fmt.Println(d.Dom().Len(), d.Codom().Len(), d.NBoxes(), d.NWires())
	// Output:
	// 1 3 0 3
}

// ExampleAddJunctions makes a fan-out explicit as a junction node.
func ExampleAddJunctions() {
	a := wiring.NewPorts(wiring.Untyped, "X")
	d, _ := wiring.MCopy(a, 2)

	res, err := wiring.AddJunctions(d)
	if err != nil {
		fmt.Println("junctions:", err)
		return
	}

	b, _ := res.BoxAt(res.BoxIDs()[0])
	j := b.(*wiring.Junction)
	fmt.Printf("junction %v: %d in, %d out\n", j.Val, j.NIn, j.NOut)
	// Output:
	// junction X: 1 in, 2 out
}
