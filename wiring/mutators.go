package wiring

import (
	"fmt"
	"reflect"
)

// AddBox inserts a box and returns its freshly assigned ID. IDs are
// sequential, so insertion order and ascending-ID order coincide.
// Complexity: O(1)
func (d *Diagram) AddBox(b Box) int {
	id := d.nextID
	d.nextID++
	d.boxes[id] = b

	return id
}

// diagramBox wraps a whole diagram as a generic box, ready to be
// substituted by its own contents later. The payload is the diagram
// itself; the port lists are its boundary.
func diagramBox(f *Diagram) *GenericBox {
	return NewGenericBox(f, f.inputs, f.outputs)
}

// portCount returns the number of ports node id exposes on face dir, or
// -1 for an unknown node. The sentinels expose one face each.
func (d *Diagram) portCount(id int, dir Direction) int {
	switch id {
	case inputNode:
		if dir == Out {
			return len(d.inputs)
		}

		return 0
	case outputNode:
		if dir == In {
			return len(d.outputs)
		}

		return 0
	default:
		b, ok := d.boxes[id]
		if !ok {
			return -1
		}
		if dir == In {
			return len(b.InputPorts())
		}

		return len(b.OutputPorts())
	}
}

// portValue resolves a port reference to its value. Callers must have
// validated the reference.
func (d *Diagram) portValue(p Port) any {
	switch p.Box {
	case inputNode:
		return d.inputs[p.Index]
	case outputNode:
		return d.outputs[p.Index]
	default:
		if p.Dir == In {
			return d.boxes[p.Box].InputPorts()[p.Index]
		}

		return d.boxes[p.Box].OutputPorts()[p.Index]
	}
}

// PortValue resolves a port reference to its value, validating the node
// and index. Returns ErrBoxNotFound or ErrPortOutOfRange.
func (d *Diagram) PortValue(p Port) (any, error) {
	n := d.portCount(p.Box, p.Dir)
	if n < 0 {
		return nil, fmt.Errorf("%w: id %d", ErrBoxNotFound, p.Box)
	}
	if p.Index < 0 || p.Index >= n {
		return nil, fmt.Errorf("%w: node %d has %d ports, index %d", ErrPortOutOfRange, p.Box, n, p.Index)
	}

	return d.portValue(p), nil
}

// AddWire inserts a wire after validating it: the source must address an
// existing Out-face port, the target an existing In-face port, and the two
// port values must be equal. Value equality is checked here and nowhere
// else; earlier stages only ever compare port counts.
//
// Returns ErrWireDirection, ErrBoxNotFound, ErrPortOutOfRange, or
// ErrPortValueMismatch.
// Complexity: O(1)
func (d *Diagram) AddWire(w Wire) error {
	// 1. Face check: wires always run Out → In.
	if w.Source.Dir != Out || w.Target.Dir != In {
		return fmt.Errorf("%w: %v -> %v", ErrWireDirection, w.Source, w.Target)
	}

	// 2. Endpoint bounds.
	sv, err := d.PortValue(w.Source)
	if err != nil {
		return err
	}
	tv, err := d.PortValue(w.Target)
	if err != nil {
		return err
	}

	// 3. Deferred value-level check.
	if !reflect.DeepEqual(sv, tv) {
		return fmt.Errorf("%w: %v vs %v", ErrPortValueMismatch, sv, tv)
	}

	d.wires = append(d.wires, w)

	return nil
}

// AddWires inserts wires in order, stopping at the first invalid one.
func (d *Diagram) AddWires(ws []Wire) error {
	for _, w := range ws {
		if err := d.AddWire(w); err != nil {
			return err
		}
	}

	return nil
}

// RemWires removes the first occurrence of each given wire, preserving
// the order of the remaining wires. Absent wires are ignored.
// Complexity: O(W·k)
func (d *Diagram) RemWires(ws []Wire) {
	for _, w := range ws {
		for i, have := range d.wires {
			if have == w {
				d.wires = append(d.wires[:i], d.wires[i+1:]...)
				break
			}
		}
	}
}

// InWires returns, in insertion order, every wire targeting node v.
// Complexity: O(W)
func (d *Diagram) InWires(v int) []Wire {
	var out []Wire
	for _, w := range d.wires {
		if w.Target.Box == v {
			out = append(out, w)
		}
	}

	return out
}

// InWiresAt returns, in insertion order, every wire targeting input port
// `port` of node v.
func (d *Diagram) InWiresAt(v, port int) []Wire {
	var out []Wire
	for _, w := range d.wires {
		if w.Target.Box == v && w.Target.Index == port {
			out = append(out, w)
		}
	}

	return out
}

// OutWires returns, in insertion order, every wire sourced at node v.
func (d *Diagram) OutWires(v int) []Wire {
	var out []Wire
	for _, w := range d.wires {
		if w.Source.Box == v {
			out = append(out, w)
		}
	}

	return out
}

// OutWiresAt returns, in insertion order, every wire sourced at output
// port `port` of node v.
func (d *Diagram) OutWiresAt(v, port int) []Wire {
	var out []Wire
	for _, w := range d.wires {
		if w.Source.Box == v && w.Source.Index == port {
			out = append(out, w)
		}
	}

	return out
}
