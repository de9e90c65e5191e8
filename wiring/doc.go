// Package wiring is a symbolic engine for morphisms of a symmetric
// monoidal category, represented as wiring diagrams: hierarchical
// box-and-wire hypergraphs bounded by input/output sentinel nodes.
//
// The object level is Ports: an ordered port-value list tagged with an
// algebraic Theory. The morphism level is Diagram: generic boxes and
// Junction nodes connected by wires, where a wire runs from an
// output-face port reference to an input-face port reference.
//
// Operation surface:
//
//	// Monoidal structure
//	ID(A)                    // identity wiring, zero boxes
//	Compose(f, g, opts...)   // g∘f, flattened unless Unsubstituted()
//	Otimes(f, g, opts...)    // f⊗g, side by side
//	Munit(t)                 // the empty Ports object
//	Braid(A, B)              // symmetry A⊗B → B⊗A
//	Permute(A, σ, opts...)   // arbitrary port permutation, Inverse() flips
//
//	// Diagonal/codiagonal family, dispatched on A's Theory
//	MCopy(A, n)  / MMerge(A, n)   // n defaults to 2
//	Delete(A)    / Create(A)
//	DUnit(A)     / DCounit(A)     // compact-closed cup/cap
//
//	// Junction management
//	AddJunctions(d) / AddJunctionsInPlace(d)  // implicit → explicit
//	RemJunctions(d)                           // explicit → implicit
//	MergeJunctions(d)                         // coalesce adjacent junctions
//
//	// Operadic composition
//	OCompose(f, gs)       // substitute every box of f simultaneously
//	OComposeAt(f, i, g)   // substitute box i only
//
// Theory dispatch: Untyped, CartesianDiagonal, CocartesianCodiagonal and
// Biproduct realize their available diagonal operations as pure
// fan-out/fan-in wiring; Bidiagonal and CompactClosed realize them as
// explicit Junction nodes; undefined combinations return
// ErrUnsupportedTheory. See theory.go for the full table.
//
// Two API shapes coexist: pure operations copy their input diagram and
// return a new value; the single mutating operation, AddJunctionsInPlace,
// takes exclusive ownership of the diagram for the call's duration. The
// engine is synchronous and single-threaded throughout — no locks, no I/O.
//
// Errors: all preconditions are checked eagerly before mutation and
// reported through the sentinel errors in errors.go (errors.Is friendly).
// Port values are opaque and only ever compared for equality, at wire
// insertion time; everything earlier checks port counts alone.
package wiring
