package wiring

// Theory tags the algebraic theory a Ports object (and every diagram built
// over it) is interpreted in. The tag selects how the diagonal/codiagonal
// family (MCopy, MMerge, Delete, Create) and the compact-closed pair
// (DUnit, DCounit) are represented: as pure fan-out/fan-in wiring
// ("implicit") or as explicit Junction nodes ("junctioned").
type Theory int

const (
	// Untyped makes no algebraic commitment; copy and merge are both
	// available and realized implicitly.
	Untyped Theory = iota

	// CartesianDiagonal supplies diagonals only: MCopy/Delete implicit,
	// MMerge/Create undefined.
	CartesianDiagonal

	// CocartesianCodiagonal supplies codiagonals only: MMerge/Create
	// implicit, MCopy/Delete undefined.
	CocartesianCodiagonal

	// Bidiagonal supplies both families with no coherence between them;
	// all four operations are realized via explicit Junction nodes.
	Bidiagonal

	// Biproduct is the coherent bidiagonal case; all four operations
	// collapse back to implicit wiring.
	Biproduct

	// CompactClosed supplies junctioned diagonals plus the DUnit/DCounit
	// cup/cap pair, realized as 0→2 and 2→0 junctions per port.
	CompactClosed
)

// String returns the theory name, for error messages and debugging.
func (t Theory) String() string {
	switch t {
	case Untyped:
		return "Untyped"
	case CartesianDiagonal:
		return "CartesianDiagonal"
	case CocartesianCodiagonal:
		return "CocartesianCodiagonal"
	case Bidiagonal:
		return "Bidiagonal"
	case Biproduct:
		return "Biproduct"
	case CompactClosed:
		return "CompactClosed"
	default:
		return "Theory(?)"
	}
}

// representation says how one operation family is realized under a theory.
type representation int

const (
	repUnsupported representation = iota // operation undefined for the theory
	repImplicit                          // pure fan-out/fan-in wiring, zero boxes
	repJunctioned                        // explicit Junction nodes
)

// theoryReps is one row of the dispatch table: the representation of the
// copy family (MCopy/Delete), the merge family (MMerge/Create), and the
// duality pair (DUnit/DCounit).
type theoryReps struct {
	copyFamily  representation
	mergeFamily representation
	duality     representation
}

// diagonalTable is the theory-indexed dispatch table. Lookup replaces any
// type-based overload resolution: every diagonal/codiagonal constructor
// consults exactly one row.
var diagonalTable = map[Theory]theoryReps{
	Untyped:               {repImplicit, repImplicit, repUnsupported},
	CartesianDiagonal:     {repImplicit, repUnsupported, repUnsupported},
	CocartesianCodiagonal: {repUnsupported, repImplicit, repUnsupported},
	Bidiagonal:            {repJunctioned, repJunctioned, repUnsupported},
	Biproduct:             {repImplicit, repImplicit, repUnsupported},
	CompactClosed:         {repJunctioned, repJunctioned, repJunctioned},
}

// reps returns the dispatch row for t. Unknown tags behave as fully
// unsupported rather than panicking.
func (t Theory) reps() theoryReps {
	return diagonalTable[t]
}
