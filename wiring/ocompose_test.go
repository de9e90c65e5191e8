package wiring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiring/wiring"
)

func TestOCompose_WholeSubstitution(t *testing.T) {
	outer, err := wiring.Compose(
		boxDiagram("f", untyped("X"), untyped("Y")),
		boxDiagram("g", untyped("Y"), untyped("Z")),
	)
	require.NoError(t, err)

	f2, err := wiring.Compose(
		boxDiagram("f1", untyped("X"), untyped("W")),
		boxDiagram("f2", untyped("W"), untyped("Y")),
	)
	require.NoError(t, err)
	g2 := boxDiagram("g1", untyped("Y"), untyped("Z"))

	res, err := wiring.OCompose(outer, []*wiring.Diagram{f2, g2})
	require.NoError(t, err)

	// The operadic composite agrees with the ordinary one.
	direct, err := wiring.Compose(f2, g2)
	require.NoError(t, err)
	assert.True(t, res.Equal(direct))
}

func TestOCompose_Arity(t *testing.T) {
	outer := boxDiagram("f", untyped("X"), untyped("Y"))

	_, err := wiring.OCompose(outer, nil)
	assert.ErrorIs(t, err, wiring.ErrOComposeArity)

	// Right count but wrong boundary shape.
	_, err = wiring.OCompose(outer, []*wiring.Diagram{wiring.ID(untyped("X", "X"))})
	assert.ErrorIs(t, err, wiring.ErrSubstituteArity)
}

func TestOComposeAt_SingleSlot(t *testing.T) {
	outer, err := wiring.Compose(
		boxDiagram("f", untyped("X"), untyped("Y")),
		boxDiagram("g", untyped("Y"), untyped("Z")),
	)
	require.NoError(t, err)

	inner, err := wiring.Compose(
		boxDiagram("g1", untyped("Y"), untyped("W")),
		boxDiagram("g2", untyped("W"), untyped("Z")),
	)
	require.NoError(t, err)

	res, err := wiring.OComposeAt(outer, 1, inner)
	require.NoError(t, err)

	assert.Equal(t, 3, res.NBoxes())
	assert.True(t, res.Dom().Equal(untyped("X")))
	assert.True(t, res.Codom().Equal(untyped("Z")))

	// Substituting identities everywhere else reproduces OCompose.
	f := boxDiagram("f", untyped("X"), untyped("Y"))
	whole, err := wiring.OCompose(outer, []*wiring.Diagram{f, inner})
	require.NoError(t, err)
	assert.True(t, res.Equal(whole))
}

func TestOComposeAt_IndexRange(t *testing.T) {
	outer := boxDiagram("f", untyped("X"), untyped("Y"))
	id := wiring.ID(untyped("X"))

	_, err := wiring.OComposeAt(outer, -1, id)
	assert.ErrorIs(t, err, wiring.ErrOComposeIndex)

	_, err = wiring.OComposeAt(outer, 1, id)
	assert.ErrorIs(t, err, wiring.ErrOComposeIndex)
}
