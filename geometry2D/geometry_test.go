package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	{ // Orientation sign convention
		assert.True(t, Orientation(0, 0, 1, 0, 0, 1) > 0)
		assert.True(t, Orientation(0, 0, 0, 1, 1, 0) < 0)
		assert.Equal(t, 0., Orientation(0, 0, 1, 1, 2, 2))
	}
	{ // In-circle is strict: circle through (0,0),(1,0),(0,1) also passes (1,1)
		assert.True(t, InCircumcircle(0, 0, 1, 0, 0, 1, 0.5, 0.5))
		assert.False(t, InCircumcircle(0, 0, 1, 0, 0, 1, 2, 2))
		assert.False(t, InCircumcircle(0, 0, 1, 0, 0, 1, 1, 1))
		// Either orientation of the triangle gives the same answer
		assert.True(t, InCircumcircle(0, 0, 0, 1, 1, 0, 0.5, 0.5))
		assert.False(t, InCircumcircle(0, 0, 0, 1, 1, 0, 2, 2))
	}
	{ // Edge legality wraps the in-circle test
		assert.True(t, IsIllegalEdge(0.9, 0.9, 0, 1, 1, 0, 1, 1))
		assert.False(t, IsIllegalEdge(5, 5, 0, 1, 1, 0, 1, 1))
	}
}

func TestCircumcircle(t *testing.T) {
	{ // Right triangle centers on the hypotenuse midpoint
		ccx, ccy, r := Circumcircle(0, 0, 1, 0, 0, 1)
		assert.InDelta(t, 0.5, ccx, 1.e-14)
		assert.InDelta(t, 0.5, ccy, 1.e-14)
		assert.InDelta(t, math.Sqrt2/2, r, 1.e-14)
	}
	{ // Equilateral-ish check: all vertices equidistant
		ccx, ccy, r := Circumcircle(0.2, 0.1, 0.9, 0.3, 0.4, 0.8)
		for _, p := range [][2]float64{{0.2, 0.1}, {0.9, 0.3}, {0.4, 0.8}} {
			assert.InDelta(t, r, math.Hypot(ccx-p[0], ccy-p[1]), 1.e-12)
		}
	}
	{ // Collinear points have no circumcircle
		_, _, r := Circumcircle(0, 0, 1, 1, 2, 2)
		assert.True(t, math.IsInf(r, 1))
	}
}

// delaunayHolds verifies the empty-circumcircle property: no input point
// strictly inside any triangle's circumcircle.
func delaunayHolds(t *testing.T, pts [][2]float64, tris [][3]int32) {
	for _, tri := range tris {
		a, b, c := pts[tri[0]], pts[tri[1]], pts[tri[2]]
		for i, p := range pts {
			if int32(i) == tri[0] || int32(i) == tri[1] || int32(i) == tri[2] {
				continue
			}
			assert.False(t, InCircumcircle(a[0], a[1], b[0], b[1], c[0], c[1], p[0], p[1]),
				"point %d inside circumcircle of %v", i, tri)
		}
	}
}

func TestBowyerWatson(t *testing.T) {
	var bw BowyerWatson
	{ // Fewer than three points cannot be triangulated
		assert.Nil(t, bw.Triangulate(nil))
		assert.Nil(t, bw.Triangulate([][2]float64{{0, 0}, {1, 1}}))
	}
	{ // Square with center point splits into four triangles
		pts := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
		tris := bw.Triangulate(pts)
		require.Equal(t, 4, len(tris))
		for _, tri := range tris {
			a, b, c := pts[tri[0]], pts[tri[1]], pts[tri[2]]
			assert.True(t, Orientation(a[0], a[1], b[0], b[1], c[0], c[1]) > 0,
				"triangle %v not counter-clockwise", tri)
		}
		delaunayHolds(t, pts, tris)
	}
	{ // Perturbed 5x5 grid: triangle areas tile the hull
		var pts [][2]float64
		for j := 0; j < 5; j++ {
			for i := 0; i < 5; i++ {
				k := float64(len(pts))
				pts = append(pts, [2]float64{
					float64(i) + 1.e-9*math.Sin(k),
					float64(j) + 1.e-9*math.Cos(3*k),
				})
			}
		}
		tris := bw.Triangulate(pts)
		delaunayHolds(t, pts, tris)
		var area float64
		for _, tri := range tris {
			a, b, c := pts[tri[0]], pts[tri[1]], pts[tri[2]]
			o := Orientation(a[0], a[1], b[0], b[1], c[0], c[1])
			assert.True(t, o > 0)
			area += o / 2
		}
		assert.InDelta(t, 16., area, 1.e-6)
	}
}
