package wiring

import "errors"

// Sentinel errors for the wiring-diagram engine.
//
// All preconditions are checked eagerly, before any mutation begins;
// callers discriminate with errors.Is. Errors carrying call-site context
// (port lists, indices, arities) wrap one of these sentinels.
var (
	// ErrTheoryMismatch indicates two Ports (or two diagrams) carrying
	// different algebraic-theory tags were combined.
	ErrTheoryMismatch = errors.New("wiring: theory tags differ")

	// ErrIncompatibleDomains indicates Compose was given diagrams whose
	// codomain and domain port counts disagree.
	ErrIncompatibleDomains = errors.New("wiring: incompatible codomain/domain")

	// ErrPortOutOfRange indicates a port reference addressed a port index
	// beyond the referenced node's port count.
	ErrPortOutOfRange = errors.New("wiring: port index out of range")

	// ErrWireDirection indicates a wire whose source is not an output-side
	// port or whose target is not an input-side port.
	ErrWireDirection = errors.New("wiring: wire endpoints have wrong direction")

	// ErrPortValueMismatch indicates a wire connecting two ports whose
	// values differ. Port values are only ever compared here, at wire
	// insertion, never earlier.
	ErrPortValueMismatch = errors.New("wiring: port values differ")

	// ErrBoxNotFound indicates an operation referenced a non-existent box.
	ErrBoxNotFound = errors.New("wiring: box not found")

	// ErrUnsupportedTheory indicates a diagonal/codiagonal operation that
	// the Ports' theory does not define (e.g. MMerge under CartesianDiagonal).
	ErrUnsupportedTheory = errors.New("wiring: operation undefined for theory")

	// ErrNegativeArity indicates a negative copy/merge arity.
	ErrNegativeArity = errors.New("wiring: negative arity")

	// ErrBadPermutation indicates a permutation slice that is not a
	// bijection on 0..len-1.
	ErrBadPermutation = errors.New("wiring: not a permutation")

	// ErrSubstituteArity indicates a substitution whose sub-diagram
	// boundary does not match the replaced box's port counts, or whose
	// id/diagram lists disagree in length.
	ErrSubstituteArity = errors.New("wiring: substitution arity mismatch")

	// ErrBadGroup indicates Encapsulate was given empty or overlapping
	// box groups.
	ErrBadGroup = errors.New("wiring: bad encapsulation group")

	// ErrJunctionValueMismatch indicates a chain of adjacent junctions
	// with conflicting values; such a chain has no sound collapsed meaning.
	ErrJunctionValueMismatch = errors.New("wiring: adjacent junctions carry different values")

	// ErrOComposeArity indicates OCompose was given a diagram list whose
	// length differs from the host's box count.
	ErrOComposeArity = errors.New("wiring: ocompose arity mismatch")

	// ErrOComposeIndex indicates an operadic box index out of range.
	ErrOComposeIndex = errors.New("wiring: ocompose index out of range")
)
