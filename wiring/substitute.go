package wiring

import "fmt"

// substitution carries the state of one Substitute call: which boxes are
// being replaced by which diagrams, and how every surviving node is
// renumbered in the result.
type substitution struct {
	host *Diagram
	res  *Diagram

	subOf map[int]*Diagram    // replaced host box → its contents
	kept  map[int]int         // surviving host box → result ID
	inner map[int]map[int]int // replaced host box → (sub box → result ID)
}

// Substitute replaces each listed box by the corresponding diagram's
// contents, splicing wires through the sub-diagram boundaries. This is the
// flattening primitive behind Compose, Otimes, OCompose, and RemJunctions.
//
// Splicing is a cross product at every boundary port: k host wires into a
// replaced box port times l fan-out targets inside the sub-diagram yield
// k·l result wires. Wires running straight from a sub-diagram's input
// sentinel to its output sentinel chain through further replaced boxes.
//
// Box IDs in the result are renumbered compactly: surviving boxes in ID
// order, with each sub-diagram's boxes taking the replaced box's position.
// The renumbering is deterministic, so algebraically equal compositions
// produce Equal diagrams.
//
// Returns ErrSubstituteArity, ErrBoxNotFound, ErrTheoryMismatch, or a wire
// validation error. The receiver is not modified.
// Complexity: O(B + W·F) where F bounds per-port fan-out.
func (d *Diagram) Substitute(ids []int, subs []*Diagram) (*Diagram, error) {
	// 1. Precondition checks, before anything is built.
	if len(ids) != len(subs) {
		return nil, fmt.Errorf("%w: %d ids, %d diagrams", ErrSubstituteArity, len(ids), len(subs))
	}
	subOf := make(map[int]*Diagram, len(ids))
	for i, id := range ids {
		b, ok := d.boxes[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrBoxNotFound, id)
		}
		if _, dup := subOf[id]; dup {
			return nil, fmt.Errorf("%w: duplicate box id %d", ErrSubstituteArity, id)
		}
		s := subs[i]
		if s.theory != d.theory {
			return nil, fmt.Errorf("%w: host %v, substituted %v", ErrTheoryMismatch, d.theory, s.theory)
		}
		if len(s.inputs) != len(b.InputPorts()) || len(s.outputs) != len(b.OutputPorts()) {
			return nil, fmt.Errorf("%w: box %d is %d→%d, diagram is %d→%d",
				ErrSubstituteArity, id,
				len(b.InputPorts()), len(b.OutputPorts()), len(s.inputs), len(s.outputs))
		}
		subOf[id] = s
	}

	// 2. Renumber: surviving boxes in ID order, sub contents in place.
	st := &substitution{
		host:  d,
		res:   newDiagram(d.Dom(), d.Codom()),
		subOf: subOf,
		kept:  make(map[int]int),
		inner: make(map[int]map[int]int),
	}
	for _, id := range d.BoxIDs() {
		if s, ok := subOf[id]; ok {
			m := make(map[int]int, s.NBoxes())
			for _, sid := range s.BoxIDs() {
				m[sid] = st.res.AddBox(s.boxes[sid].copyBox())
			}
			st.inner[id] = m
		} else {
			st.kept[id] = st.res.AddBox(d.boxes[id].copyBox())
		}
	}

	// 3. Splice wires.
	if err := st.spliceWires(); err != nil {
		return nil, err
	}

	return st.res, nil
}

// spliceWires emits every result wire exactly once: each wire path has a
// unique concrete source segment, and only those segments start emission.
func (st *substitution) spliceWires() error {
	visiting := make(map[Port]bool)

	// Host wires whose source survives.
	for _, hw := range st.host.wires {
		if _, replaced := st.subOf[hw.Source.Box]; replaced {
			continue // emitted from inside the replacement
		}
		src := st.mapKeptSource(hw.Source)
		for _, tgt := range st.expandTargets(hw.Target, visiting) {
			if err := st.res.AddWire(Wire{Source: src, Target: tgt}); err != nil {
				return err
			}
		}
	}

	// Sub-diagram wires with an interior source.
	for _, v := range st.host.BoxIDs() {
		s, ok := st.subOf[v]
		if !ok {
			continue
		}
		for _, w := range s.wires {
			if w.Source.Box == inputNode {
				continue // reached through host in-wires instead
			}
			src := OutPort(st.inner[v][w.Source.Box], w.Source.Index)
			if w.Target.Box != outputNode {
				tgt := InPort(st.inner[v][w.Target.Box], w.Target.Index)
				if err := st.res.AddWire(Wire{Source: src, Target: tgt}); err != nil {
					return err
				}

				continue
			}
			// The wire exits the replaced box: continue along every host
			// wire leaving that output port.
			for _, hw := range st.host.OutWiresAt(v, w.Target.Index) {
				for _, tgt := range st.expandTargets(hw.Target, visiting) {
					if err := st.res.AddWire(Wire{Source: src, Target: tgt}); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// mapKeptSource renumbers a host source port that is not being replaced.
func (st *substitution) mapKeptSource(p Port) Port {
	if p.Box == inputNode {
		return p
	}

	return OutPort(st.kept[p.Box], p.Index)
}

// expandTargets resolves a host target port to the concrete result ports
// it reaches: itself if it survives, or every port its replacement's
// fan-out leads to, chasing sentinel-to-sentinel passthrough wires across
// further replaced boxes. The visiting set breaks passthrough cycles.
func (st *substitution) expandTargets(t Port, visiting map[Port]bool) []Port {
	if t.Box == outputNode {
		return []Port{t}
	}
	s, replaced := st.subOf[t.Box]
	if !replaced {
		return []Port{InPort(st.kept[t.Box], t.Index)}
	}
	if visiting[t] {
		return nil
	}
	visiting[t] = true
	defer delete(visiting, t)

	var out []Port
	for _, w := range s.wires {
		if w.Source.Box != inputNode || w.Source.Index != t.Index {
			continue
		}
		if w.Target.Box != outputNode {
			out = append(out, InPort(st.inner[t.Box][w.Target.Box], w.Target.Index))

			continue
		}
		// Passthrough: follow host wires out of the replaced box.
		for _, hw := range st.host.OutWiresAt(t.Box, w.Target.Index) {
			out = append(out, st.expandTargets(hw.Target, visiting)...)
		}
	}

	return out
}

// Flatten substitutes, in one simultaneous pass, every box whose value is
// itself a *Diagram by that diagram's contents. One nesting level only;
// diagrams without nested content come back as a plain copy.
func Flatten(d *Diagram) (*Diagram, error) {
	var ids []int
	var subs []*Diagram
	for _, id := range d.BoxIDs() {
		if gb, ok := d.boxes[id].(*GenericBox); ok {
			if s, ok := gb.Val.(*Diagram); ok {
				ids = append(ids, id)
				subs = append(subs, s)
			}
		}
	}
	if len(ids) == 0 {
		return d.Copy(), nil
	}

	return d.Substitute(ids, subs)
}
