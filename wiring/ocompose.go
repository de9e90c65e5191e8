package wiring

import "fmt"

// OCompose performs whole-diagram operadic composition: gs[i] is
// substituted for the i-th box of f (in box-enumeration order), for every
// i simultaneously.
//
// Returns ErrOComposeArity when len(gs) differs from f's box count; per-box
// boundary mismatches surface as ErrSubstituteArity. No partial
// application: any error is returned before a result is built.
func OCompose(f *Diagram, gs []*Diagram) (*Diagram, error) {
	if len(gs) != f.NBoxes() {
		return nil, fmt.Errorf("%w: %d diagrams for %d boxes", ErrOComposeArity, len(gs), f.NBoxes())
	}

	return f.Substitute(f.BoxIDs(), gs)
}

// OComposeAt performs indexed operadic composition: g is substituted for
// box i of f only, where i indexes the box-enumeration order from 0.
//
// Returns ErrOComposeIndex when i is out of range.
func OComposeAt(f *Diagram, i int, g *Diagram) (*Diagram, error) {
	ids := f.BoxIDs()
	if i < 0 || i >= len(ids) {
		return nil, fmt.Errorf("%w: index %d with %d boxes", ErrOComposeIndex, i, len(ids))
	}

	return f.Substitute([]int{ids[i]}, []*Diagram{g})
}
