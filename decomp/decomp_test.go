package decomp

import (
	"testing"

	"github.com/notargets/permesh/mesh2D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid16 is a 4x4 grid at cell centers of the unit domain; identifiers
// run row-major, so column c of row r carries 4r+c.
func grid16() (msh *mesh2D.Mesh) {
	var pts [][2]float64
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			pts = append(pts, [2]float64{(float64(i) + 0.5) / 4, (float64(j) + 0.5) / 4})
		}
	}
	msh = mesh2D.NewMesh(nil)
	msh.SetDomain(0, 0, 1, 1)
	msh.Insert(pts, nil)
	return
}

func TestOutgoingPoints(t *testing.T) {
	msh := grid16()
	le := [][2]float64{
		{0, 0},         // whole domain
		{0, 0},         // left half
		{1.e6, 1.e6},   // far away
	}
	re := [][2]float64{
		{1, 1},
		{0.5, 1},
		{1.e6 + 1, 1.e6 + 1},
	}
	out := OutgoingPoints(msh, le, re)
	require.Equal(t, 3, len(out))
	{ // A box covering the domain collects every identifier once
		all := make([]uint64, 16)
		for i := range all {
			all[i] = uint64(i)
		}
		assert.Equal(t, all, out[0])
	}
	{ // The left half reaches the first three grid columns
		assert.Equal(t, []uint64{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14}, out[1])
	}
	{ // Nothing reaches a far-away box
		assert.Equal(t, 0, len(out[2]))
	}
}

func TestBoundaryPoints(t *testing.T) {
	msh := grid16()
	lx, ly, rx, ry, all := BoundaryPoints(msh, [2]float64{0, 0}, [2]float64{1, 1})
	// Stored faces carry circumcenters inside [0,1) plus the wrap images
	// near 1, so only the high boundaries are crossed on a uniform grid
	assert.Equal(t, 0, len(lx))
	assert.Equal(t, 0, len(ly))
	assert.Equal(t, []uint64{0, 3, 4, 7, 8, 11, 12, 15}, rx)
	assert.Equal(t, []uint64{0, 1, 2, 3, 12, 13, 14, 15}, ry)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 7, 8, 11, 12, 13, 14, 15}, all)
}

func TestBoundaryPointsShifted(t *testing.T) {
	// Pulling the box edges inward makes every boundary catch faces
	msh := grid16()
	lx, ly, rx, ry, all := BoundaryPoints(msh, [2]float64{0.3, 0.3}, [2]float64{0.7, 0.7})
	for _, set := range [][]uint64{lx, ly, rx, ry} {
		assert.True(t, len(set) > 0)
		for i := 1; i < len(set); i++ {
			assert.True(t, set[i-1] < set[i], "set must be sorted and deduplicated")
		}
		for _, id := range set {
			assert.Contains(t, all, id)
		}
	}
}
