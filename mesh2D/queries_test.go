package mesh2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgesAndLengths(t *testing.T) {
	msh := unitMesh(gridPoints(4))
	edges := msh.Edges()
	assert.Equal(t, 48, len(edges))
	for _, e := range edges {
		m := e.Mirror(msh)
		assert.True(t, e.SameAs(msh, m))
		assert.Equal(t, e, m.Mirror(msh))
		v1, v2 := e.Verts(msh)
		assert.NotEqual(t, v1, v2)
	}
	el := msh.EdgeLengths()
	assert.Equal(t, 48, el.Len())
	// Grid edges are either axis steps or square diagonals
	assert.InDelta(t, 0.25, el.Min(), 1.e-6)
	assert.InDelta(t, 0.25*math.Sqrt2, el.Max(), 1.e-6)
}

func TestDualAreas(t *testing.T) {
	{ // Uniform grid: every Voronoi cell is a 1/4 x 1/4 square
		msh := unitMesh(gridPoints(4))
		da := msh.DualAreas()
		require.Equal(t, 16, da.Len())
		var sum float64
		for i := 0; i < da.Len(); i++ {
			assert.InDelta(t, 1./16, da.AtVec(i), 1.e-6)
			sum += da.AtVec(i)
		}
		// The cells tile the torus
		assert.InDelta(t, 1.0, sum, 1.e-6)
	}
	{ // Nine-sheeted covering: one cell per stored copy
		msh := unitMesh(gridPoints(2))
		require.Equal(t, int32(9), msh.NumSheetsTotal())
		da := msh.DualAreas()
		require.Equal(t, 36, da.Len())
		var sum float64
		for i := 0; i < da.Len(); i++ {
			assert.InDelta(t, 0.25, da.AtVec(i), 1.e-6)
			sum += da.AtVec(i)
		}
		assert.InDelta(t, 9.0, sum, 1.e-6)
	}
}

func TestIncidence(t *testing.T) {
	msh := unitMesh(gridPoints(4))
	{ // Every slot of every face is an incidence
		var total int
		for v := 0; v < msh.NumStoredVerts(); v++ {
			total += len(msh.IncidentFaces(int32(v)))
		}
		assert.Equal(t, 96, total)
	}
	{ // Axis neighbors are always Delaunay-joined on a uniform grid
		v := msh.Get(5) // site at (0.375, 0.375)
		nbrs := msh.IncidentVertices(v)
		for _, want := range []int32{1, 4, 6, 9} {
			assert.Contains(t, nbrs, want)
		}
		assert.Equal(t, len(nbrs), len(msh.IncidentEdges(v)))
		for _, e := range msh.IncidentEdges(v) {
			v1, v2 := e.Verts(msh)
			assert.True(t, v1 == v || v2 == v)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	msh := unitMesh(gridPoints(4))
	{ // Adjacency matrix: one symmetric pair per edge
		A := msh.AdjacencyDOK()
		r, c := A.Dims()
		assert.Equal(t, 16, r)
		assert.Equal(t, 16, c)
		assert.Equal(t, 96, A.NNZ())
		assert.Equal(t, 1.0, A.At(5, 6))
		assert.Equal(t, 1.0, A.At(6, 5))
	}
	{ // Coordinate dump
		M := msh.VertexMatrix()
		r, c := M.Dims()
		assert.Equal(t, 16, r)
		assert.Equal(t, 2, c)
		assert.Equal(t, 0.375, M.At(5, 0))
		assert.Equal(t, 0.375, M.At(5, 1))
	}
	{ // Identifier ordering is stable under permuted infos
		infos := make([]uint64, 16)
		for i := range infos {
			infos[i] = uint64(15 - i)
		}
		pm := NewMesh(nil)
		pm.SetDomain(0, 0, 1, 1)
		pm.Insert(gridPoints(4), infos)
		ordered := pm.InfoOrderedVertices()
		require.Equal(t, 16, len(ordered))
		for k, v := range ordered {
			assert.Equal(t, uint64(k), pm.Verts[v].Info)
		}
	}
	{ // Coarse equality
		a, b := unitMesh(gridPoints(4)), unitMesh(gridPoints(4))
		assert.True(t, a.IsEqual(b))
		b.Move(0, 0.13, 0.12)
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(unitMesh(gridPoints(2))))
	}
	{ // Circumradii of half-square faces
		cr := msh.CircumRadii()
		assert.Equal(t, 32, cr.Len())
		assert.InDelta(t, 0.25*math.Sqrt2/2, cr.Max(), 1.e-6)
		assert.InDelta(t, cr.Max(), msh.MaxCircumradius(), 1.e-12)
	}
}
