package wiring

import "fmt"

// OpOption configures a categorical operation.
type OpOption func(*opConfig)

type opConfig struct {
	unsubstituted bool
	inverse       bool
}

// Unsubstituted suppresses the flattening step of Compose and Otimes,
// preserving the operands as nested boxes for later operadic composition.
func Unsubstituted() OpOption {
	return func(c *opConfig) { c.unsubstituted = true }
}

// Inverse makes Permute wire input sigma[i] to output i, so the permuted
// object becomes the domain instead of the codomain.
func Inverse() OpOption {
	return func(c *opConfig) { c.inverse = true }
}

func applyOpts(opts []OpOption) opConfig {
	var c opConfig
	for _, fn := range opts {
		fn(&c)
	}

	return c
}

// SingletonDiagram wraps one box as a whole diagram: the diagram's
// boundary is the box's boundary, wired port-for-port through the box.
// Complexity: O(m+n)
func SingletonDiagram(t Theory, b Box) *Diagram {
	d := newDiagram(NewPorts(t, b.InputPorts()...), NewPorts(t, b.OutputPorts()...))
	v := d.AddBox(b)
	for i := range b.InputPorts() {
		d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(v, i)})
	}
	for i := range b.OutputPorts() {
		d.wires = append(d.wires, Wire{Source: OutPort(v, i), Target: InPort(outputNode, i)})
	}

	return d
}

// ID returns the identity diagram on A: input port i wired straight to
// output port i, zero interior boxes.
// Complexity: O(n)
func ID(a Ports) *Diagram {
	d := newDiagram(a, a)
	for i := range a.Values {
		d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(outputNode, i)})
	}

	return d
}

// Compose builds g∘f: a diagram from Dom(f) to Codom(g) in which f's
// outputs feed g's inputs port-for-port. Both operands are inserted as
// boxes, wired, and then flattened unless Unsubstituted() is given.
//
// Returns ErrIncompatibleDomains (carrying both port lists) when the port
// counts disagree, ErrTheoryMismatch, or a wire validation error: port
// values are only compared once the interior wires are added.
func Compose(f, g *Diagram, opts ...OpOption) (*Diagram, error) {
	cfg := applyOpts(opts)
	if f.theory != g.theory {
		return nil, fmt.Errorf("%w: %v vs %v", ErrTheoryMismatch, f.theory, g.theory)
	}
	if len(f.outputs) != len(g.inputs) {
		return nil, fmt.Errorf("%w: codom %v, dom %v", ErrIncompatibleDomains, f.outputs, g.inputs)
	}

	h := newDiagram(f.Dom(), g.Codom())
	fv := h.AddBox(diagramBox(f))
	gv := h.AddBox(diagramBox(g))
	for i := range f.inputs {
		if err := h.AddWire(Wire{Source: OutPort(inputNode, i), Target: InPort(fv, i)}); err != nil {
			return nil, err
		}
	}
	for i := range f.outputs {
		if err := h.AddWire(Wire{Source: OutPort(fv, i), Target: InPort(gv, i)}); err != nil {
			return nil, err
		}
	}
	for i := range g.outputs {
		if err := h.AddWire(Wire{Source: OutPort(gv, i), Target: InPort(outputNode, i)}); err != nil {
			return nil, err
		}
	}
	if cfg.unsubstituted {
		return h, nil
	}

	return h.Substitute([]int{fv, gv}, []*Diagram{f, g})
}

// Otimes builds the tensor product f⊗g: side-by-side composition in which
// f's ports occupy the leading indices and g's the trailing ones on both
// boundaries. Flattens unless Unsubstituted() is given.
//
// Returns ErrTheoryMismatch or a wire validation error.
func Otimes(f, g *Diagram, opts ...OpOption) (*Diagram, error) {
	cfg := applyOpts(opts)
	dom, err := f.Dom().Cat(g.Dom())
	if err != nil {
		return nil, err
	}
	codom, err := f.Codom().Cat(g.Codom())
	if err != nil {
		return nil, err
	}

	h := newDiagram(dom, codom)
	fv := h.AddBox(diagramBox(f))
	gv := h.AddBox(diagramBox(g))
	m, n := len(f.inputs), len(f.outputs)
	for i := range f.inputs {
		if err = h.AddWire(Wire{Source: OutPort(inputNode, i), Target: InPort(fv, i)}); err != nil {
			return nil, err
		}
	}
	for i := range g.inputs {
		if err = h.AddWire(Wire{Source: OutPort(inputNode, m+i), Target: InPort(gv, i)}); err != nil {
			return nil, err
		}
	}
	for i := range f.outputs {
		if err = h.AddWire(Wire{Source: OutPort(fv, i), Target: InPort(outputNode, i)}); err != nil {
			return nil, err
		}
	}
	for i := range g.outputs {
		if err = h.AddWire(Wire{Source: OutPort(gv, i), Target: InPort(outputNode, n+i)}); err != nil {
			return nil, err
		}
	}
	if cfg.unsubstituted {
		return h, nil
	}

	return h.Substitute([]int{fv, gv}, []*Diagram{f, g})
}

// Braid returns the symmetry isomorphism A⊗B → B⊗A: input i (i < |A|)
// crosses to output i+|B|, input |A|+j crosses to output j. No boxes.
//
// Returns ErrTheoryMismatch.
// Complexity: O(m+n)
func Braid(a, b Ports) (*Diagram, error) {
	dom, err := a.Cat(b)
	if err != nil {
		return nil, err
	}
	codom, _ := b.Cat(a)

	d := newDiagram(dom, codom)
	nb := b.Len()
	for i := range a.Values {
		d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(outputNode, nb+i)})
	}
	for j := range b.Values {
		d.wires = append(d.wires, Wire{Source: OutPort(inputNode, a.Len()+j), Target: InPort(outputNode, j)})
	}

	return d, nil
}

// Permute generalizes Braid to an arbitrary permutation sigma of A's
// ports. Forward mode wires input i to output sigma[i], so the codomain is
// A permuted by sigma. With Inverse(), input sigma[i] wires to output i
// and the permuted object becomes the domain instead.
//
// Returns ErrBadPermutation if sigma is not a bijection on 0..|A|-1.
// Complexity: O(n)
func Permute(a Ports, sigma []int, opts ...OpOption) (*Diagram, error) {
	cfg := applyOpts(opts)
	if len(sigma) != a.Len() {
		return nil, fmt.Errorf("%w: length %d over %d ports", ErrBadPermutation, len(sigma), a.Len())
	}
	seen := make([]bool, len(sigma))
	for _, s := range sigma {
		if s < 0 || s >= len(sigma) || seen[s] {
			return nil, fmt.Errorf("%w: %v", ErrBadPermutation, sigma)
		}
		seen[s] = true
	}

	// The permuted object: position sigma[i] holds A's port i.
	permuted := make([]any, len(sigma))
	for i, s := range sigma {
		permuted[s] = a.Values[i]
	}
	other := Ports{Theory: a.Theory, Values: permuted}

	var d *Diagram
	if cfg.inverse {
		d = newDiagram(other, a)
		for i, s := range sigma {
			d.wires = append(d.wires, Wire{Source: OutPort(inputNode, s), Target: InPort(outputNode, i)})
		}
	} else {
		d = newDiagram(a, other)
		for i, s := range sigma {
			d.wires = append(d.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(outputNode, s)})
		}
	}

	return d, nil
}
