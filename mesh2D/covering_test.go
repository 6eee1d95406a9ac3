package mesh2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNineSheetLayout(t *testing.T) {
	msh := unitMesh(gridPoints(4))
	msh.ToNineSheeted()
	assert.Equal(t, [2]int32{3, 3}, msh.NumSheets())
	assert.Equal(t, 144, msh.NumStoredVerts())
	assert.Equal(t, 288, msh.NumStoredFaces())
	// Canonical counts are unchanged by the covering
	assert.Equal(t, 16, msh.NumVerts())
	assert.Equal(t, 32, msh.NumFaces())
	require.NoError(t, msh.Validate())
	// Copy c of vertex i sits at 9i+c, translated by its cell
	for i := 0; i < 16; i++ {
		base := msh.Verts[9*i]
		for c := int32(0); c < 9; c++ {
			v := msh.Verts[9*int32(i)+c]
			assert.Equal(t, base.Info, v.Info)
			assert.Equal(t, Offset{c % 3, c / 3}, v.Off)
			assert.InDelta(t, base.X+float64(c%3), v.X, 1.e-14)
			assert.InDelta(t, base.Y+float64(c/3), v.Y, 1.e-14)
		}
	}
}

func TestCoveringRoundTrip(t *testing.T) {
	{ // 1 -> 9 -> 1 reproduces the identical serialized form
		msh := unitMesh(gridPoints(4))
		before := Serialize[uint64](msh)
		msh.ToNineSheeted()
		msh.ToOneSheeted()
		assert.Equal(t, [2]int32{1, 1}, msh.NumSheets())
		require.NoError(t, msh.Validate())
		after := Serialize[uint64](msh)
		assert.Equal(t, before, after)
		assert.True(t, msh.IsEqual(unitMesh(gridPoints(4))))
	}
	{ // A natively nine-sheeted mesh collapses and re-expands losslessly
		msh := unitMesh(gridPoints(2))
		require.Equal(t, int32(9), msh.NumSheetsTotal())
		before := Serialize[uint64](msh)
		msh.ToOneSheeted()
		assert.Equal(t, 4, msh.NumStoredVerts())
		assert.Equal(t, 8, msh.NumStoredFaces())
		require.NoError(t, msh.Validate())
		msh.ToNineSheeted()
		require.NoError(t, msh.Validate())
		after := Serialize[uint64](msh)
		assert.Equal(t, before, after)
	}
	{ // Conversions are no-ops in the matching state
		msh := unitMesh(gridPoints(4))
		before := msh.NumStoredFaces()
		msh.ToOneSheeted()
		assert.Equal(t, before, msh.NumStoredFaces())
		msh.ToNineSheeted()
		msh.ToNineSheeted()
		assert.Equal(t, 9*before, msh.NumStoredFaces())
	}
}
