package wiring

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/wiring/graphs"
)

// Junction management: conversion between the implicit representation of
// diagonal structure (multi-wire fan-in/fan-out) and the explicit one
// (Junction nodes), plus coalescing of adjacent junctions.

// AddJunctionsInPlace rewrites every implicit fan-in/fan-out of d as an
// explicit Junction node, mutating d. Processing order: the diagram's own
// input-boundary outputs, then its output-boundary inputs, then every
// interior box in ID order, inputs before outputs. Ports already carrying
// exactly one wire are left untouched.
//
// The caller must own d exclusively for the call's duration; d is
// unspecified after an error.
// Complexity: O(P·W) over ports P and wires W.
func AddJunctionsInPlace(d *Diagram) error {
	// Snapshot the interior IDs: freshly inserted junctions must not be
	// reprocessed.
	ids := d.BoxIDs()

	if err := d.addOutputJunctions(inputNode); err != nil {
		return err
	}
	if err := d.addInputJunctions(outputNode); err != nil {
		return err
	}
	for _, id := range ids {
		if err := d.addInputJunctions(id); err != nil {
			return err
		}
		if err := d.addOutputJunctions(id); err != nil {
			return err
		}
	}

	return nil
}

// AddJunctions is the pure counterpart of AddJunctionsInPlace: it operates
// on a copy and returns it, leaving d untouched.
func AddJunctions(d *Diagram) (*Diagram, error) {
	c := d.Copy()
	if err := AddJunctionsInPlace(c); err != nil {
		return nil, err
	}

	return c, nil
}

// addInputJunctions makes every input port of node v explicit: a port with
// k ≠ 1 incoming wires (an implicit create for k = 0, an implicit merge
// otherwise) gets a Junction(value, k, 1) spliced in, reconnecting the
// original sources to the junction's inputs order-preserving.
func (d *Diagram) addInputJunctions(v int) error {
	nports := d.portCount(v, In)
	for p := 0; p < nports; p++ {
		ws := d.InWiresAt(v, p)
		if len(ws) == 1 {
			continue
		}
		val := d.portValue(InPort(v, p))
		d.RemWires(ws)
		jid := d.AddBox(NewJunction(val, len(ws), 1))
		if err := d.AddWire(Wire{Source: OutPort(jid, 0), Target: InPort(v, p)}); err != nil {
			return err
		}
		for k, w := range ws {
			if err := d.AddWire(Wire{Source: w.Source, Target: InPort(jid, k)}); err != nil {
				return err
			}
		}
	}

	return nil
}

// addOutputJunctions is the dual of addInputJunctions for outgoing wires:
// k ≠ 1 wires out of a port (implicit delete or copy) become a
// Junction(value, 1, k).
func (d *Diagram) addOutputJunctions(v int) error {
	nports := d.portCount(v, Out)
	for p := 0; p < nports; p++ {
		ws := d.OutWiresAt(v, p)
		if len(ws) == 1 {
			continue
		}
		val := d.portValue(OutPort(v, p))
		d.RemWires(ws)
		jid := d.AddBox(NewJunction(val, 1, len(ws)))
		if err := d.AddWire(Wire{Source: OutPort(v, p), Target: InPort(jid, 0)}); err != nil {
			return err
		}
		for k, w := range ws {
			if err := d.AddWire(Wire{Source: OutPort(jid, k), Target: w.Target}); err != nil {
				return err
			}
		}
	}

	return nil
}

// RemJunctions eliminates every Junction node by substituting it with its
// complete-layer diagram: no boxes and full bipartite nin × nout wiring,
// every input wired to every output. This is the junction's meaning -
// merge all inputs, then copy to all outputs; the 1×1 case degenerates to
// a single identity wire. Pure: returns a new diagram.
func RemJunctions(d *Diagram) (*Diagram, error) {
	var ids []int
	var subs []*Diagram
	for _, id := range d.BoxIDs() {
		j, ok := d.boxes[id].(*Junction)
		if !ok {
			continue
		}
		ids = append(ids, id)
		subs = append(subs, completeLayer(d.theory, j))
	}

	return d.Substitute(ids, subs)
}

// completeLayer builds the full-bipartite replacement diagram of j.
func completeLayer(t Theory, j *Junction) *Diagram {
	a := Ports{Theory: t, Values: []any{j.Val}}
	layer := newDiagram(a.repeat(j.NIn), a.repeat(j.NOut))
	for i := 0; i < j.NIn; i++ {
		for o := 0; o < j.NOut; o++ {
			layer.wires = append(layer.wires, Wire{Source: OutPort(inputNode, i), Target: InPort(outputNode, o)})
		}
	}

	return layer
}

// MergeJunctions coalesces every chain of adjacent Junction nodes into a
// single junction. The diagram's connectivity is restricted to junction
// nodes; each weakly-connected component of size > 1 is collapsed via
// Encapsulate into one Junction whose arities are the counts of external
// wires crossing the component boundary.
//
// All junctions in a component must share one value: a chain mixing values
// signals a malformed diagram and fails with ErrJunctionValueMismatch
// before any construction. Pure: returns a new diagram.
// Complexity: O(B + W)
func MergeJunctions(d *Diagram) (*Diagram, error) {
	var jids []int
	for _, id := range d.BoxIDs() {
		if _, ok := d.boxes[id].(*Junction); ok {
			jids = append(jids, id)
		}
	}

	sub := graphs.InducedSubgraph(d.Graph(), jids)
	comps := graphs.WeaklyConnectedComponents(sub)

	var groups [][]int
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		// A junction chain mixing values has no sound collapsed meaning.
		first := d.boxes[comp[0]].(*Junction)
		for _, id := range comp[1:] {
			j := d.boxes[id].(*Junction)
			if !reflect.DeepEqual(first.Val, j.Val) {
				return nil, fmt.Errorf("%w: %v vs %v", ErrJunctionValueMismatch, first.Val, j.Val)
			}
		}
		groups = append(groups, comp)
	}
	if len(groups) == 0 {
		return d.Copy(), nil
	}

	return d.Encapsulate(groups, func(group []int, ins, outs []any) Box {
		val := d.boxes[group[0]].(*Junction).Val

		return NewJunction(val, len(ins), len(outs))
	})
}
