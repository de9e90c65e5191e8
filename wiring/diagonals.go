package wiring

import "fmt"

// The diagonal/codiagonal family. Each constructor consults the theory
// dispatch table (theory.go) and builds either pure fan-out/fan-in wiring
// ("implicit") or explicit Junction nodes ("junctioned").

// MCopy returns the n-fold copy morphism A → A⊗…⊗A. The arity defaults to
// the canonical diagonal, n = 2.
//
// Returns ErrUnsupportedTheory when A's theory has no diagonals, or
// ErrNegativeArity.
func MCopy(a Ports, n ...int) (*Diagram, error) {
	nn, err := copyArity(n)
	if err != nil {
		return nil, err
	}
	switch a.Theory.reps().copyFamily {
	case repImplicit:
		return implicitMCopy(a, nn), nil
	case repJunctioned:
		return junctionDiagram(a, 1, nn), nil
	default:
		return nil, fmt.Errorf("%w: mcopy under %v", ErrUnsupportedTheory, a.Theory)
	}
}

// MMerge returns the n-fold merge morphism A⊗…⊗A → A, the categorical dual
// of MCopy. The arity defaults to 2.
//
// Returns ErrUnsupportedTheory when A's theory has no codiagonals, or
// ErrNegativeArity.
func MMerge(a Ports, n ...int) (*Diagram, error) {
	nn, err := copyArity(n)
	if err != nil {
		return nil, err
	}
	switch a.Theory.reps().mergeFamily {
	case repImplicit:
		return implicitMMerge(a, nn), nil
	case repJunctioned:
		return junctionDiagram(a, nn, 1), nil
	default:
		return nil, fmt.Errorf("%w: mmerge under %v", ErrUnsupportedTheory, a.Theory)
	}
}

// Delete returns the deleting morphism A → I: empty codomain, and either
// zero wires (implicit) or one 1→0 junction per port (junctioned).
func Delete(a Ports) (*Diagram, error) {
	switch a.Theory.reps().copyFamily {
	case repImplicit:
		return newDiagram(a, Munit(a.Theory)), nil
	case repJunctioned:
		return junctionDiagram(a, 1, 0), nil
	default:
		return nil, fmt.Errorf("%w: delete under %v", ErrUnsupportedTheory, a.Theory)
	}
}

// Create returns the creating morphism I → A, the dual of Delete.
func Create(a Ports) (*Diagram, error) {
	switch a.Theory.reps().mergeFamily {
	case repImplicit:
		return newDiagram(Munit(a.Theory), a), nil
	case repJunctioned:
		return junctionDiagram(a, 0, 1), nil
	default:
		return nil, fmt.Errorf("%w: create under %v", ErrUnsupportedTheory, a.Theory)
	}
}

// DUnit returns the compact-closed unit ("cup") I → A⊗A: one 0→2 junction
// per port. CompactClosed only.
func DUnit(a Ports) (*Diagram, error) {
	if a.Theory.reps().duality != repJunctioned {
		return nil, fmt.Errorf("%w: dunit under %v", ErrUnsupportedTheory, a.Theory)
	}

	return junctionDiagram(a, 0, 2), nil
}

// DCounit returns the compact-closed counit ("cap") A⊗A → I: one 2→0
// junction per port. CompactClosed only.
func DCounit(a Ports) (*Diagram, error) {
	if a.Theory.reps().duality != repJunctioned {
		return nil, fmt.Errorf("%w: dcounit under %v", ErrUnsupportedTheory, a.Theory)
	}

	return junctionDiagram(a, 2, 0), nil
}

// copyArity resolves the optional arity argument; absent means 2.
func copyArity(n []int) (int, error) {
	if len(n) == 0 {
		return 2, nil
	}
	if n[0] < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeArity, n[0])
	}

	return n[0], nil
}

// implicitMCopy fans each input out to its n copy slots: input i wires to
// output i + m·j for every copy j. Zero boxes.
// Complexity: O(m·n)
func implicitMCopy(a Ports, n int) *Diagram {
	m := a.Len()
	d := newDiagram(a, a.repeat(n))
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(outputNode, i+m*j)})
		}
	}

	return d
}

// implicitMMerge fans the n copy slots of each port into one output:
// input i + m·j wires to output i. Zero boxes.
func implicitMMerge(a Ports, n int) *Diagram {
	m := a.Len()
	d := newDiagram(a.repeat(n), a)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i+m*j), Target: InPort(outputNode, i)})
		}
	}

	return d
}

// junctionDiagram builds the explicit representation A^nin → A^nout: one
// Junction(v, nin, nout) per port value v, each independently handling
// that port's fan-in and fan-out. Boundary slot i + m·j carries copy j of
// port i and wires the junction's j-th port on the matching face.
// Complexity: O(m·(nin+nout))
func junctionDiagram(a Ports, nin, nout int) *Diagram {
	m := a.Len()
	d := newDiagram(a.repeat(nin), a.repeat(nout))
	for i, v := range a.Values {
		jid := d.AddBox(NewJunction(v, nin, nout))
		for j := 0; j < nin; j++ {
			d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i+m*j), Target: InPort(jid, j)})
		}
		for j := 0; j < nout; j++ {
			d.wires = append(d.wires, Wire{Source: OutPort(jid, j), Target: InPort(outputNode, i+m*j)})
		}
	}

	return d
}
