package wiring

import (
	"fmt"
	"reflect"
)

// Ports is the object level of the category: an ordered list of port
// values tagged with the algebraic theory they are interpreted in.
//
// The zero value is the monoidal unit of the Untyped theory.
type Ports struct {
	// Theory selects the diagonal/codiagonal representation for every
	// diagram built over these ports.
	Theory Theory

	// Values is the ordered port-value sequence. Values are opaque to the
	// engine; they are only ever compared for equality, at wire insertion.
	Values []any
}

// NewPorts builds a Ports object over the given theory and values.
// Complexity: O(n)
func NewPorts(t Theory, values ...any) Ports {
	vs := make([]any, len(values))
	copy(vs, values)

	return Ports{Theory: t, Values: vs}
}

// Munit returns the monoidal unit: the empty port list over theory t.
func Munit(t Theory) Ports {
	return Ports{Theory: t}
}

// Len returns the number of ports.
func (p Ports) Len() int {
	return len(p.Values)
}

// Equal reports whether q carries the same theory tag and the same value
// sequence as p.
func (p Ports) Equal(q Ports) bool {
	if p.Theory != q.Theory || len(p.Values) != len(q.Values) {
		return false
	}
	for i := range p.Values {
		if !reflect.DeepEqual(p.Values[i], q.Values[i]) {
			return false
		}
	}

	return true
}

// Cat concatenates q onto p: the tensor product at the object level.
// Returns ErrTheoryMismatch if the theory tags differ.
// Complexity: O(m+n)
func (p Ports) Cat(q Ports) (Ports, error) {
	if p.Theory != q.Theory {
		return Ports{}, fmt.Errorf("%w: %v vs %v", ErrTheoryMismatch, p.Theory, q.Theory)
	}
	vs := make([]any, 0, len(p.Values)+len(q.Values))
	vs = append(vs, p.Values...)
	vs = append(vs, q.Values...)

	return Ports{Theory: p.Theory, Values: vs}, nil
}

// repeat tiles the value sequence n times, preserving the theory tag.
// repeat(0) is the monoidal unit.
func (p Ports) repeat(n int) Ports {
	vs := make([]any, 0, n*len(p.Values))
	for j := 0; j < n; j++ {
		vs = append(vs, p.Values...)
	}

	return Ports{Theory: p.Theory, Values: vs}
}
