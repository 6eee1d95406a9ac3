package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/permesh/utils"
)

/*
A Triangulator produces the Delaunay triangulation of a planar point set.
Returned triangles index into pts and are oriented counter-clockwise. The
caller is responsible for removing duplicate points; cocircular ties may be
resolved by either diagonal.
*/
type Triangulator interface {
	Triangulate(pts [][2]float64) (tris [][3]int32)
}

// BowyerWatson is the built-in incremental engine: points are inserted one at
// a time into a super-triangle, the cavity of circumcircle-violating
// triangles is removed and re-tessellated as a fan around the new point.
type BowyerWatson struct{}

func (BowyerWatson) Triangulate(pts [][2]float64) (tris [][3]int32) {
	var (
		n = len(pts)
	)
	if n < 3 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p[0])
		maxX = math.Max(maxX, p[0])
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}
	deltaMax := math.Max(maxX-minX, maxY-minY)
	if deltaMax == 0 {
		panic("unable to triangulate, all points are coincident")
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// The super-triangle encloses every input point by a wide margin so that
	// its vertices cannot disturb the circumcircles of interior triangles
	all := make([][2]float64, n+3)
	copy(all, pts)
	all[n] = [2]float64{midX - 20*deltaMax, midY - deltaMax}
	all[n+1] = [2]float64{midX, midY + 20*deltaMax}
	all[n+2] = [2]float64{midX + 20*deltaMax, midY - deltaMax}

	work := [][3]int32{{int32(n), int32(n + 1), int32(n + 2)}}
	var (
		bad  []int
		keep [][3]int32
	)
	for i := 0; i < n; i++ {
		px, py := all[i][0], all[i][1]
		bad = bad[:0]
		for ti, tri := range work {
			a, b, c := all[tri[0]], all[tri[1]], all[tri[2]]
			if InCircumcircle(a[0], a[1], b[0], b[1], c[0], c[1], px, py) {
				bad = append(bad, ti)
			}
		}
		if len(bad) == 0 {
			panic(fmt.Errorf("point %d is not in conflict with any triangle, likely a duplicate point", i))
		}
		// Cavity boundary: oriented edges of the bad triangles that are not
		// shared between two bad triangles
		edgeCount := make(map[utils.EdgeKey]int)
		edgeOriented := make(map[utils.EdgeKey][2]int32)
		for _, ti := range bad {
			tri := work[ti]
			for j := 0; j < 3; j++ {
				v1, v2 := tri[j], tri[(j+1)%3]
				ek := utils.NewEdgeKey([2]int{int(v1), int(v2)})
				edgeCount[ek]++
				edgeOriented[ek] = [2]int32{v1, v2}
			}
		}
		keep = keep[:0]
		isBad := make(map[int]bool, len(bad))
		for _, ti := range bad {
			isBad[ti] = true
		}
		for ti, tri := range work {
			if !isBad[ti] {
				keep = append(keep, tri)
			}
		}
		work = append(work[:0], keep...)
		for ek, cnt := range edgeCount {
			if cnt != 1 {
				continue
			}
			e := edgeOriented[ek]
			// The boundary edge keeps its cavity orientation, so the new
			// triangle remains counter-clockwise
			work = append(work, [3]int32{e[0], e[1], int32(i)})
		}
	}

	tris = make([][3]int32, 0, len(work))
	for _, tri := range work {
		if tri[0] >= int32(n) || tri[1] >= int32(n) || tri[2] >= int32(n) {
			continue
		}
		tris = append(tris, tri)
	}
	return
}
