package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate_RealizedCountMatchesOccupancy(t *testing.T) {
	lat, err := NewLattice(20)
	require.NoError(t, err)
	reg, err := NewRegistry(lat.Volume())
	require.NoError(t, err)

	n := Populate(lat, reg, NewPCG32(42, 54), 0.5)
	assert.Equal(t, reg.Len(), n)
	assert.Equal(t, n, lat.Occupied())
	assert.Greater(t, n, 0)
	assert.Less(t, n, lat.Volume())
}

func TestPopulate_Deterministic(t *testing.T) {
	place := func() []Vec {
		lat, err := NewLattice(12)
		require.NoError(t, err)
		reg, err := NewRegistry(lat.Volume())
		require.NoError(t, err)
		Populate(lat, reg, NewPCG32(7, 7), 0.3)
		out := make([]Vec, reg.Len())
		for p := range out {
			out[p] = reg.Current(p)
		}
		return out
	}
	assert.Equal(t, place(), place())
}

func TestPopulate_AllThreePositionsCoincide(t *testing.T) {
	lat, err := NewLattice(10)
	require.NoError(t, err)
	reg, err := NewRegistry(lat.Volume())
	require.NoError(t, err)

	n := Populate(lat, reg, NewPCG32(1, 2), 0.5)
	for p := 0; p < n; p++ {
		cur := reg.Current(p)
		assert.Equal(t, cur, reg.Origin(p))
		assert.Equal(t, cur, reg.Abs(p))
		assert.Equal(t, p, lat.Occupant(cur.X, cur.Y))
	}
}

func TestRegistry_MoveUpdatesWrappedAndUnwrapped(t *testing.T) {
	reg, err := NewRegistry(16)
	require.NoError(t, err)
	p := reg.Add(3, 0)

	// Hop across the -y boundary on a side-4 lattice: wrapped position
	// lands on the far edge, unwrapped position goes negative.
	reg.Move(p, Vec{3, 3}, 0, -1)
	assert.Equal(t, Vec{3, 3}, reg.Current(p))
	assert.Equal(t, Vec{3, -1}, reg.Abs(p))
	assert.Equal(t, Vec{3, 0}, reg.Origin(p))
}

func TestRegistry_MeanSquaredDisplacement(t *testing.T) {
	reg, err := NewRegistry(16)
	require.NoError(t, err)

	a := reg.Add(0, 0)
	b := reg.Add(1, 1)
	reg.Move(a, Vec{1, 0}, 1, 0)  // Δr² = 1
	reg.Move(b, Vec{1, 2}, 0, 1)  // Δr² = 1
	reg.Move(b, Vec{1, 3}, 0, 1)  // Δr² = 4

	assert.InDelta(t, (1.0+4.0)/2.0, reg.MeanSquaredDisplacement(), 1e-12)
}

func TestRegistry_EmptyMSDIsZero(t *testing.T) {
	reg, err := NewRegistry(4)
	require.NoError(t, err)
	assert.Zero(t, reg.MeanSquaredDisplacement())
}
