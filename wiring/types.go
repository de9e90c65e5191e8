package wiring

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/wiring/graphs"
)

// Sentinel node IDs. Every diagram owns exactly these two boundary nodes;
// interior boxes are numbered from firstBoxID upward.
const (
	inputNode  = 0 // the diagram's input boundary
	outputNode = 1 // the diagram's output boundary
	firstBoxID = 2
)

// Direction distinguishes the two faces of a node. The input sentinel's
// Out ports are the diagram's input ports; the output sentinel's In ports
// are the diagram's output ports.
type Direction int

const (
	// In addresses a node's input ports.
	In Direction = iota

	// Out addresses a node's output ports.
	Out
)

// Port is a port reference: a node ID, a face, and a 0-based port index.
type Port struct {
	Box   int
	Dir   Direction
	Index int
}

// InPort builds a reference to input port idx of node box.
func InPort(box, idx int) Port { return Port{Box: box, Dir: In, Index: idx} }

// OutPort builds a reference to output port idx of node box.
func OutPort(box, idx int) Port { return Port{Box: box, Dir: Out, Index: idx} }

// Wire connects a source port reference (always an Out face) to a target
// port reference (always an In face).
type Wire struct {
	Source Port
	Target Port
}

// Box is the closed interior-node union: either a *GenericBox or a
// *Junction. The unexported method seals it; box kind is matched
// exhaustively by type switch wherever it matters.
type Box interface {
	// Value returns the box's opaque payload.
	Value() any

	// InputPorts returns the ordered input-port value list.
	InputPorts() []any

	// OutputPorts returns the ordered output-port value list.
	OutputPorts() []any

	copyBox() Box
}

// GenericBox is an interior node holding an opaque value plus explicit
// input and output port-value lists.
type GenericBox struct {
	Val any
	In  []any
	Out []any
}

// NewGenericBox builds a GenericBox, copying both port lists.
func NewGenericBox(value any, inputs, outputs []any) *GenericBox {
	in := make([]any, len(inputs))
	copy(in, inputs)
	out := make([]any, len(outputs))
	copy(out, outputs)

	return &GenericBox{Val: value, In: in, Out: out}
}

// Value returns the box payload.
func (b *GenericBox) Value() any { return b.Val }

// InputPorts returns the input port values.
func (b *GenericBox) InputPorts() []any { return b.In }

// OutputPorts returns the output port values.
func (b *GenericBox) OutputPorts() []any { return b.Out }

func (b *GenericBox) copyBox() Box {
	return NewGenericBox(b.Val, b.In, b.Out)
}

// Junction is an explicit copy/merge/delete/create/cup/cap node: NIn input
// ports and NOut output ports, all sharing one value. Its meaning is
// "merge all inputs, then copy to all outputs".
type Junction struct {
	Val  any
	NIn  int
	NOut int
}

// NewJunction builds a Junction node.
func NewJunction(value any, nin, nout int) *Junction {
	return &Junction{Val: value, NIn: nin, NOut: nout}
}

// Value returns the shared port value.
func (j *Junction) Value() any { return j.Val }

// InputPorts returns NIn repetitions of the shared value.
func (j *Junction) InputPorts() []any { return repeatValue(j.Val, j.NIn) }

// OutputPorts returns NOut repetitions of the shared value.
func (j *Junction) OutputPorts() []any { return repeatValue(j.Val, j.NOut) }

func (j *Junction) copyBox() Box {
	return &Junction{Val: j.Val, NIn: j.NIn, NOut: j.NOut}
}

func repeatValue(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// valuesEqual compares two port-value lists element-wise; nil and empty
// are interchangeable.
func valuesEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}

// boxEqual compares two boxes by kind, value, and port lists.
func boxEqual(a, b Box) bool {
	switch x := a.(type) {
	case *GenericBox:
		y, ok := b.(*GenericBox)

		return ok && reflect.DeepEqual(x.Val, y.Val) &&
			valuesEqual(x.In, y.In) && valuesEqual(x.Out, y.Out)
	case *Junction:
		y, ok := b.(*Junction)

		return ok && reflect.DeepEqual(x.Val, y.Val) && x.NIn == y.NIn && x.NOut == y.NOut
	default:
		return false
	}
}

// Diagram is a wiring diagram: a box-and-wire hypergraph bounded by the
// two sentinel nodes, representing a morphism from Dom() to Codom().
//
// Wire order is insertion order and is observable: the junction operations
// reconnect multi-wire ports order-preserving.
type Diagram struct {
	theory  Theory
	inputs  []any // the input sentinel's Out ports
	outputs []any // the output sentinel's In ports
	boxes   map[int]Box
	wires   []Wire
	nextID  int
}

// NewDiagram creates an empty diagram with the given domain and codomain.
// Returns ErrTheoryMismatch if the two Ports carry different tags.
// Complexity: O(m+n)
func NewDiagram(dom, codom Ports) (*Diagram, error) {
	if dom.Theory != codom.Theory {
		return nil, fmt.Errorf("%w: dom %v vs codom %v", ErrTheoryMismatch, dom.Theory, codom.Theory)
	}
	in := make([]any, len(dom.Values))
	copy(in, dom.Values)
	out := make([]any, len(codom.Values))
	copy(out, codom.Values)

	return &Diagram{
		theory:  dom.Theory,
		inputs:  in,
		outputs: out,
		boxes:   make(map[int]Box),
		nextID:  firstBoxID,
	}, nil
}

// newDiagram is NewDiagram for call sites where the theory tags are equal
// by construction.
func newDiagram(dom, codom Ports) *Diagram {
	d, _ := NewDiagram(dom, codom)

	return d
}

// Theory returns the diagram's theory tag.
func (d *Diagram) Theory() Theory { return d.theory }

// InputID returns the node ID of the diagram's input boundary sentinel.
func (d *Diagram) InputID() int { return inputNode }

// OutputID returns the node ID of the diagram's output boundary sentinel.
func (d *Diagram) OutputID() int { return outputNode }

// Dom returns the diagram's domain as a Ports object.
func (d *Diagram) Dom() Ports {
	return NewPorts(d.theory, d.inputs...)
}

// Codom returns the diagram's codomain as a Ports object.
func (d *Diagram) Codom() Ports {
	return NewPorts(d.theory, d.outputs...)
}

// NBoxes returns the number of interior boxes. O(1).
func (d *Diagram) NBoxes() int { return len(d.boxes) }

// BoxIDs returns all interior box IDs in ascending order; since IDs are
// assigned sequentially, this is also box-enumeration order.
// Complexity: O(B·logB)
func (d *Diagram) BoxIDs() []int {
	ids := make([]int, 0, len(d.boxes))
	for id := range d.boxes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// BoxAt returns the box with the given ID, or ErrBoxNotFound.
func (d *Diagram) BoxAt(id int) (Box, error) {
	b, ok := d.boxes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrBoxNotFound, id)
	}

	return b, nil
}

// InputPorts returns the input-port value list of node id: the diagram's
// output ports for the output sentinel, the box's input list otherwise.
// The input sentinel has no input ports.
func (d *Diagram) InputPorts(id int) []any {
	switch id {
	case inputNode:
		return nil
	case outputNode:
		return d.outputs
	default:
		if b, ok := d.boxes[id]; ok {
			return b.InputPorts()
		}

		return nil
	}
}

// OutputPorts returns the output-port value list of node id: the diagram's
// input ports for the input sentinel, the box's output list otherwise.
// The output sentinel has no output ports.
func (d *Diagram) OutputPorts(id int) []any {
	switch id {
	case inputNode:
		return d.inputs
	case outputNode:
		return nil
	default:
		if b, ok := d.boxes[id]; ok {
			return b.OutputPorts()
		}

		return nil
	}
}

// Wires returns the wire list in insertion order. The slice is a copy.
// Complexity: O(W)
func (d *Diagram) Wires() []Wire {
	ws := make([]Wire, len(d.wires))
	copy(ws, d.wires)

	return ws
}

// NWires returns the number of wires. O(1).
func (d *Diagram) NWires() int { return len(d.wires) }

// Copy returns a deep copy of the diagram's structure. Box payloads are
// shared, not cloned: they are opaque to the engine.
// Complexity: O(B + W)
func (d *Diagram) Copy() *Diagram {
	c := &Diagram{
		theory:  d.theory,
		inputs:  append([]any(nil), d.inputs...),
		outputs: append([]any(nil), d.outputs...),
		boxes:   make(map[int]Box, len(d.boxes)),
		wires:   append([]Wire(nil), d.wires...),
		nextID:  d.nextID,
	}
	for id, b := range d.boxes {
		c.boxes[id] = b.copyBox()
	}

	return c
}

// Equal reports structural equality: same theory, boundary ports, box
// table (by ID), and wire multiset. Wire insertion order is ignored.
// Complexity: O(B + W·logW)
func (d *Diagram) Equal(other *Diagram) bool {
	if d.theory != other.theory ||
		!valuesEqual(d.inputs, other.inputs) ||
		!valuesEqual(d.outputs, other.outputs) ||
		len(d.boxes) != len(other.boxes) ||
		len(d.wires) != len(other.wires) {
		return false
	}
	for id, b := range d.boxes {
		ob, ok := other.boxes[id]
		if !ok || !boxEqual(b, ob) {
			return false
		}
	}
	a := sortedWires(d.wires)
	b := sortedWires(other.wires)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sortedWires returns a canonically ordered copy of ws.
func sortedWires(ws []Wire) []Wire {
	out := append([]Wire(nil), ws...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Source != b.Source {
			return portLess(a.Source, b.Source)
		}

		return portLess(a.Target, b.Target)
	})

	return out
}

func portLess(a, b Port) bool {
	if a.Box != b.Box {
		return a.Box < b.Box
	}
	if a.Dir != b.Dir {
		return a.Dir < b.Dir
	}

	return a.Index < b.Index
}

// Graph exports the diagram's connectivity as a graphs.Digraph: one node
// per sentinel and box, one directed edge per wire. External graph
// algorithms (induced subgraphs, weak components) run on this view.
// Complexity: O(B + W)
func (d *Diagram) Graph() *graphs.Digraph {
	g := graphs.NewDigraph()
	g.AddNode(inputNode)
	g.AddNode(outputNode)
	for id := range d.boxes {
		g.AddNode(id)
	}
	for _, w := range d.wires {
		g.AddEdge(w.Source.Box, w.Target.Box)
	}

	return g
}
