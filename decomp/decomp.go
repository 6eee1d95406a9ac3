/*
Package decomp classifies mesh vertices against external regions for
spatial decomposition. A face is relevant to a region when its
circumscribing disk could reach the region; every vertex of a relevant
face is reported by external identifier.
*/
package decomp

import (
	"math"
	"sort"

	"github.com/notargets/permesh/mesh2D"
)

// diskReachesBox is the axis-separated overlap test between a disk and an
// axis-aligned box: on each axis, a center beyond a box edge must have the
// radius span back to that edge.
func diskReachesBox(ccx, ccy, r float64, le, re [2]float64) bool {
	c := [2]float64{ccx, ccy}
	for i := 0; i < 2; i++ {
		if c[i] < le[i] {
			if c[i]+r < le[i] {
				return false
			}
		} else if c[i] > re[i] {
			if c[i]-r > re[i] {
				return false
			}
		}
	}
	return true
}

// faceDisk is a face's circumcenter and the distance to its first vertex,
// the radius reference used throughout decomposition.
func faceDisk(msh *mesh2D.Mesh, f int32) (ccx, ccy, cr float64) {
	ccx, ccy, _ = msh.Circumcircle(f)
	ax, ay := msh.FacePoint(f, 0)
	cr = math.Hypot(ccx-ax, ccy-ay)
	return
}

// OutgoingPoints reports, per box, the sorted deduplicated external
// identifiers of every vertex belonging to a face whose circumscribing
// disk reaches the box. Boxes are given as parallel low/high corner
// lists. Every stored face is tested against every box.
func OutgoingPoints(msh *mesh2D.Mesh, le, re [][2]float64) (out [][]uint64) {
	out = make([][]uint64, len(le))
	for b := range le {
		var ids []uint64
		for f := 0; f < msh.NumStoredFaces(); f++ {
			ccx, ccy, cr := faceDisk(msh, int32(f))
			if !diskReachesBox(ccx, ccy, cr, le[b], re[b]) {
				continue
			}
			for j := int32(0); j < 3; j++ {
				ids = append(ids, msh.Verts[msh.Faces[f].V[j]].Info)
			}
		}
		out[b] = sortDedup(ids)
	}
	return
}

// BoundaryPoints runs the four half-plane specializations in one pass
// over the faces: a face whose disk crosses the left x boundary
// contributes to lx, and so on. The fifth set is the union.
func BoundaryPoints(msh *mesh2D.Mesh, le, re [2]float64) (lx, ly, rx, ry, all []uint64) {
	for f := 0; f < msh.NumStoredFaces(); f++ {
		ccx, ccy, cr := faceDisk(msh, int32(f))
		var hit [4]bool
		hit[0] = ccx-cr < le[0]
		hit[1] = ccy-cr < le[1]
		hit[2] = ccx+cr >= re[0]
		hit[3] = ccy+cr >= re[1]
		if !hit[0] && !hit[1] && !hit[2] && !hit[3] {
			continue
		}
		for j := int32(0); j < 3; j++ {
			id := msh.Verts[msh.Faces[f].V[j]].Info
			if hit[0] {
				lx = append(lx, id)
			}
			if hit[1] {
				ly = append(ly, id)
			}
			if hit[2] {
				rx = append(rx, id)
			}
			if hit[3] {
				ry = append(ry, id)
			}
			all = append(all, id)
		}
	}
	lx, ly, rx, ry = sortDedup(lx), sortDedup(ly), sortDedup(rx), sortDedup(ry)
	all = sortDedup(all)
	return
}

func sortDedup(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return ids
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	k := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1] {
			ids[k] = ids[i]
			k++
		}
	}
	return ids[:k]
}
