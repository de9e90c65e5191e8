package wiring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiring/wiring"
)

func TestID_Wiring(t *testing.T) {
	a := untyped("X", "Y")
	d := wiring.ID(a)

	assert.True(t, d.Dom().Equal(a))
	assert.True(t, d.Codom().Equal(a))
	assert.Equal(t, 0, d.NBoxes())
	assert.True(t, wireSetsEqual(d.Wires(), []wiring.Wire{
		{Source: wiring.OutPort(d.InputID(), 0), Target: wiring.InPort(d.OutputID(), 0)},
		{Source: wiring.OutPort(d.InputID(), 1), Target: wiring.InPort(d.OutputID(), 1)},
	}))
}

func TestCompose_Flattens(t *testing.T) {
	f := boxDiagram("f", untyped("X"), untyped("Y"))
	g := boxDiagram("g", untyped("Y"), untyped("Z"))

	h, err := wiring.Compose(f, g)
	require.NoError(t, err)

	assert.True(t, h.Dom().Equal(untyped("X")))
	assert.True(t, h.Codom().Equal(untyped("Z")))
	// No residual operand boxes: only f's and g's own boxes remain.
	require.Equal(t, 2, h.NBoxes())
	fv, gv := h.BoxIDs()[0], h.BoxIDs()[1]
	assert.True(t, wireSetsEqual(h.Wires(), []wiring.Wire{
		{Source: wiring.OutPort(h.InputID(), 0), Target: wiring.InPort(fv, 0)},
		{Source: wiring.OutPort(fv, 0), Target: wiring.InPort(gv, 0)},
		{Source: wiring.OutPort(gv, 0), Target: wiring.InPort(h.OutputID(), 0)},
	}))
}

func TestCompose_IncompatibleDomains(t *testing.T) {
	f := boxDiagram("f", untyped("X"), untyped("Y", "Y"))
	g := boxDiagram("g", untyped("Y", "Y", "Y"), untyped("Z"))

	_, err := wiring.Compose(f, g)
	assert.ErrorIs(t, err, wiring.ErrIncompatibleDomains)
}

func TestCompose_ValueMismatchDeferredToWiring(t *testing.T) {
	// Port counts agree, values do not: the failure comes from wire
	// insertion, not from the Compose precondition.
	f := boxDiagram("f", untyped("X"), untyped("Y"))
	g := boxDiagram("g", untyped("Z"), untyped("W"))

	_, err := wiring.Compose(f, g)
	assert.ErrorIs(t, err, wiring.ErrPortValueMismatch)
}

func TestCompose_Unsubstituted(t *testing.T) {
	f := boxDiagram("f", untyped("X"), untyped("Y"))
	g := boxDiagram("g", untyped("Y"), untyped("Z"))

	h, err := wiring.Compose(f, g, wiring.Unsubstituted())
	require.NoError(t, err)
	require.Equal(t, 2, h.NBoxes())

	// The operands survive as nested diagram-valued boxes.
	b, err := h.BoxAt(h.BoxIDs()[0])
	require.NoError(t, err)
	gb, ok := b.(*wiring.GenericBox)
	require.True(t, ok)
	assert.Same(t, f, gb.Val)

	// Flatten recovers the default behavior.
	flat, err := wiring.Flatten(h)
	require.NoError(t, err)
	direct, err := wiring.Compose(f, g)
	require.NoError(t, err)
	assert.True(t, flat.Equal(direct))
}

func TestCompose_IdentityLaw(t *testing.T) {
	f := boxDiagram("f", untyped("X", "Y"), untyped("Z"))

	left, err := wiring.Compose(wiring.ID(f.Dom()), f)
	require.NoError(t, err)
	right, err := wiring.Compose(f, wiring.ID(f.Codom()))
	require.NoError(t, err)

	assert.True(t, left.Equal(f), "id∘f = f")
	assert.True(t, right.Equal(f), "f∘id = f")
}

func TestCompose_Associativity(t *testing.T) {
	f := boxDiagram("f", untyped("A"), untyped("B"))
	g := boxDiagram("g", untyped("B"), untyped("C"))
	h := boxDiagram("h", untyped("C"), untyped("D"))

	fg, err := wiring.Compose(f, g)
	require.NoError(t, err)
	gh, err := wiring.Compose(g, h)
	require.NoError(t, err)

	left, err := wiring.Compose(fg, h)
	require.NoError(t, err)
	right, err := wiring.Compose(f, gh)
	require.NoError(t, err)

	assert.True(t, left.Equal(right))
}

func TestOtimes_Indices(t *testing.T) {
	f := boxDiagram("f", untyped("X"), untyped("Y"))
	g := boxDiagram("g", untyped("A", "B"), untyped("C"))

	h, err := wiring.Otimes(f, g)
	require.NoError(t, err)

	assert.True(t, h.Dom().Equal(untyped("X", "A", "B")))
	assert.True(t, h.Codom().Equal(untyped("Y", "C")))
	require.Equal(t, 2, h.NBoxes())
	fv, gv := h.BoxIDs()[0], h.BoxIDs()[1]
	assert.True(t, wireSetsEqual(h.Wires(), []wiring.Wire{
		{Source: wiring.OutPort(h.InputID(), 0), Target: wiring.InPort(fv, 0)},
		{Source: wiring.OutPort(h.InputID(), 1), Target: wiring.InPort(gv, 0)},
		{Source: wiring.OutPort(h.InputID(), 2), Target: wiring.InPort(gv, 1)},
		{Source: wiring.OutPort(fv, 0), Target: wiring.InPort(h.OutputID(), 0)},
		{Source: wiring.OutPort(gv, 0), Target: wiring.InPort(h.OutputID(), 1)},
	}))
}

func TestOtimes_Bifunctoriality(t *testing.T) {
	f1 := boxDiagram("f1", untyped("A"), untyped("B"))
	g1 := boxDiagram("g1", untyped("B"), untyped("C"))
	f2 := boxDiagram("f2", untyped("P"), untyped("Q"))
	g2 := boxDiagram("g2", untyped("Q"), untyped("R"))

	c1, err := wiring.Compose(f1, g1)
	require.NoError(t, err)
	c2, err := wiring.Compose(f2, g2)
	require.NoError(t, err)
	left, err := wiring.Otimes(c1, c2)
	require.NoError(t, err)

	t1, err := wiring.Otimes(f1, f2)
	require.NoError(t, err)
	t2, err := wiring.Otimes(g1, g2)
	require.NoError(t, err)
	right, err := wiring.Compose(t1, t2)
	require.NoError(t, err)

	// Box enumeration differs (f1,g1,f2,g2 vs f1,f2,g1,g2); the diagrams
	// agree up to that permutation.
	assert.True(t, permutedEqual(left, right, []int{0, 2, 1, 3}))
}

func TestBraid_Wiring(t *testing.T) {
	a := untyped("a1", "a2")
	b := untyped("b")

	d, err := wiring.Braid(a, b)
	require.NoError(t, err)

	assert.True(t, d.Dom().Equal(untyped("a1", "a2", "b")))
	assert.True(t, d.Codom().Equal(untyped("b", "a1", "a2")))
	assert.Equal(t, 0, d.NBoxes())
	assert.True(t, wireSetsEqual(d.Wires(), []wiring.Wire{
		{Source: wiring.OutPort(d.InputID(), 0), Target: wiring.InPort(d.OutputID(), 1)},
		{Source: wiring.OutPort(d.InputID(), 1), Target: wiring.InPort(d.OutputID(), 2)},
		{Source: wiring.OutPort(d.InputID(), 2), Target: wiring.InPort(d.OutputID(), 0)},
	}))
}

func TestBraid_Involution(t *testing.T) {
	a := untyped("a1", "a2")
	b := untyped("b")

	ab, err := wiring.Braid(a, b)
	require.NoError(t, err)
	ba, err := wiring.Braid(b, a)
	require.NoError(t, err)

	round, err := wiring.Compose(ab, ba)
	require.NoError(t, err)
	idAB, _ := a.Cat(b)
	assert.True(t, round.Equal(wiring.ID(idAB)))
}

func TestPermute_Identity(t *testing.T) {
	a := untyped("X", "Y", "Z")
	d, err := wiring.Permute(a, []int{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, d.Equal(wiring.ID(a)))
}

func TestPermute_ForwardAndInverse(t *testing.T) {
	a := untyped("X", "Y")
	sigma := []int{1, 0}

	fwd, err := wiring.Permute(a, sigma)
	require.NoError(t, err)
	assert.True(t, fwd.Codom().Equal(untyped("Y", "X")))

	inv, err := wiring.Permute(a, sigma, wiring.Inverse())
	require.NoError(t, err)
	assert.True(t, inv.Dom().Equal(untyped("Y", "X")))
	assert.True(t, inv.Codom().Equal(a))

	// Forward then inverse cancels.
	round, err := wiring.Compose(fwd, inv)
	require.NoError(t, err)
	assert.True(t, round.Equal(wiring.ID(a)))
}

func TestPermute_BadPermutation(t *testing.T) {
	a := untyped("X", "Y")

	_, err := wiring.Permute(a, []int{0})
	assert.ErrorIs(t, err, wiring.ErrBadPermutation)

	_, err = wiring.Permute(a, []int{0, 0})
	assert.ErrorIs(t, err, wiring.ErrBadPermutation)

	_, err = wiring.Permute(a, []int{0, 2})
	assert.ErrorIs(t, err, wiring.ErrBadPermutation)
}
