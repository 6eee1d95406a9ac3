package mesh2D

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/permesh/geometry2D"
	"github.com/notargets/permesh/utils"
)

// Get finds the stored base vertex carrying an external identifier, -1
// when absent.
func (msh *Mesh) Get(info uint64) (v int32) {
	for i, s := range msh.sites {
		if s.Info == info {
			return msh.storedOf(int32(i))
		}
	}
	return -1
}

// InfoOrderedVertices lists the stored base vertices sorted by external
// identifier.
func (msh *Mesh) InfoOrderedVertices() (verts []int32) {
	verts = make([]int32, len(msh.sites))
	for i := range msh.sites {
		verts[i] = int32(i)
	}
	sort.Slice(verts, func(a, b int) bool {
		return msh.sites[verts[a]].Info < msh.sites[verts[b]].Info
	})
	for k, i := range verts {
		verts[k] = msh.storedOf(i)
	}
	return
}

// NearestVertex finds the canonical point closest to (x, y) under the
// torus metric and returns its stored base vertex, -1 on an empty mesh.
func (msh *Mesh) NearestVertex(x, y float64) (v int32) {
	var (
		w, h   = msh.period()
		wx, wy = 0., 0.
		best   = math.Inf(1)
	)
	v = -1
	if len(msh.sites) == 0 {
		return
	}
	wx, wy = msh.wrap(x, y)
	for i, s := range msh.sites {
		dx := math.Abs(wx - s.X)
		dx = math.Min(dx, w-dx)
		dy := math.Abs(wy - s.Y)
		dy = math.Min(dy, h-dy)
		if d := dx*dx + dy*dy; d < best {
			best = d
			v = int32(i)
		}
	}
	return msh.storedOf(v)
}

// Locate finds a stored face containing (x, y), testing the point's
// periodic images against each face's own frame. ok is false when the
// mesh has no faces.
func (msh *Mesh) Locate(x, y float64) (f int32, ok bool) {
	var (
		W, H   = msh.sheetPeriod()
		wx     = x - W*math.Floor((x-msh.domain[0])/W)
		wy     = y - H*math.Floor((y-msh.domain[1])/H)
	)
	for fi := range msh.Faces {
		ax, ay := msh.FacePoint(int32(fi), 0)
		bx, by := msh.FacePoint(int32(fi), 1)
		cx, cy := msh.FacePoint(int32(fi), 2)
		for ty := 0; ty < 3; ty++ {
			for tx := 0; tx < 3; tx++ {
				px := wx + float64(tx)*W
				py := wy + float64(ty)*H
				if geometry2D.Orientation(ax, ay, bx, by, px, py) >= 0 &&
					geometry2D.Orientation(bx, by, cx, cy, px, py) >= 0 &&
					geometry2D.Orientation(cx, cy, ax, ay, px, py) >= 0 {
					return int32(fi), true
				}
			}
		}
	}
	return -1, false
}

// IncidentFaces lists the stored faces having v in one of their slots.
func (msh *Mesh) IncidentFaces(v int32) (faces []int32) {
	for f := range msh.Faces {
		for j := 0; j < 3; j++ {
			if msh.Faces[f].V[j] == v {
				faces = append(faces, int32(f))
				break
			}
		}
	}
	return
}

// IncidentEdges lists each stored edge touching v once, seen from one of
// v's incident faces.
func (msh *Mesh) IncidentEdges(v int32) (edges []Edge) {
	claimed := make(map[Edge]bool)
	for _, f := range msh.IncidentFaces(v) {
		for j := int32(0); j < 3; j++ {
			fc := &msh.Faces[f]
			if fc.V[ccw(j)] != v && fc.V[cw(j)] != v {
				continue
			}
			e := Edge{f, j}
			if claimed[e] || claimed[e.Mirror(msh)] {
				continue
			}
			claimed[e] = true
			edges = append(edges, e)
		}
	}
	return
}

// IncidentVertices lists the stored vertices joined to v by an edge.
func (msh *Mesh) IncidentVertices(v int32) (verts []int32) {
	seen := make(map[int32]bool)
	for _, e := range msh.IncidentEdges(v) {
		v1, v2 := e.Verts(msh)
		for _, u := range []int32{v1, v2} {
			if u != v && !seen[u] {
				seen[u] = true
				verts = append(verts, u)
			}
		}
	}
	sort.Slice(verts, func(a, b int) bool { return verts[a] < verts[b] })
	return
}

// Edges enumerates every stored edge once.
func (msh *Mesh) Edges() (edges []Edge) {
	for f := range msh.Faces {
		for j := int32(0); j < 3; j++ {
			e := Edge{int32(f), j}
			m := e.Mirror(msh)
			if m.Face < e.Face || (m.Face == e.Face && m.Ind < e.Ind) {
				continue
			}
			edges = append(edges, e)
		}
	}
	return
}

// EdgeLengths collects the stored edge lengths into a vector, for
// statistics.
func (msh *Mesh) EdgeLengths() (V utils.Vector) {
	edges := msh.Edges()
	data := make([]float64, len(edges))
	for i, e := range edges {
		data[i] = e.Length(msh)
	}
	return utils.NewVector(len(data), data)
}

// Circumcircle of a stored face in its own frame.
func (msh *Mesh) Circumcircle(f int32) (ccx, ccy, r float64) {
	ax, ay := msh.FacePoint(f, 0)
	bx, by := msh.FacePoint(f, 1)
	cx, cy := msh.FacePoint(f, 2)
	return geometry2D.Circumcircle(ax, ay, bx, by, cx, cy)
}

// CircumRadii collects every stored face's circumradius.
func (msh *Mesh) CircumRadii() (V utils.Vector) {
	data := make([]float64, len(msh.Faces))
	for f := range msh.Faces {
		_, _, data[f] = msh.Circumcircle(int32(f))
	}
	return utils.NewVector(len(data), data)
}

func (msh *Mesh) MaxCircumradius() (r float64) {
	for f := range msh.Faces {
		_, _, cr := msh.Circumcircle(int32(f))
		r = math.Max(r, cr)
	}
	return
}

/*
DualArea is the area of v's Voronoi cell: the polygon spanned by the
circumcenters of the incident faces, each translated into v's frame by
undoing the slot offset, walked in angular order around the vertex. The
cells tile the torus, so the dual areas of a one-sheeted mesh sum to the
domain area. Returns -1 when v has no incident faces.
*/
func (msh *Mesh) DualArea(v int32) (area float64) {
	var (
		W, H = msh.sheetPeriod()
		vx   = msh.Verts[v].X
		vy   = msh.Verts[v].Y
		pts  [][2]float64
	)
	for f := range msh.Faces {
		for j := 0; j < 3; j++ {
			if msh.Faces[f].V[j] != v {
				continue
			}
			ccx, ccy, _ := msh.Circumcircle(int32(f))
			off := msh.Faces[f].Off[j]
			pts = append(pts, [2]float64{
				ccx - float64(off[0])*W,
				ccy - float64(off[1])*H,
			})
		}
	}
	if len(pts) == 0 {
		return -1
	}
	sort.Slice(pts, func(a, b int) bool {
		return math.Atan2(pts[a][1]-vy, pts[a][0]-vx) <
			math.Atan2(pts[b][1]-vy, pts[b][0]-vx)
	})
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		area += p[0]*q[1] - q[0]*p[1]
	}
	return math.Abs(area) / 2
}

// DualAreas collects DualArea over the stored vertices.
func (msh *Mesh) DualAreas() (V utils.Vector) {
	data := make([]float64, len(msh.Verts))
	for v := range msh.Verts {
		data[v] = msh.DualArea(int32(v))
	}
	return utils.NewVector(len(data), data)
}

// VertexMatrix dumps the canonical point coordinates as an n x 2 matrix.
func (msh *Mesh) VertexMatrix() (M utils.Matrix) {
	data := make([]float64, 2*len(msh.sites))
	for i, s := range msh.sites {
		data[2*i] = s.X
		data[2*i+1] = s.Y
	}
	return utils.NewMatrix(len(msh.sites), 2, data)
}

// AdjacencyDOK exports the canonical vertex adjacency as a sparse matrix.
func (msh *Mesh) AdjacencyDOK() (A utils.DOK) {
	n := len(msh.sites)
	A = utils.NewDOK(n, n)
	for _, e := range msh.Edges() {
		v1, v2 := e.Verts(msh)
		i, j := msh.siteOf(v1), msh.siteOf(v2)
		A.Set(int(i), int(j), 1)
		A.Set(int(j), int(i), 1)
	}
	return
}

// IsEqual is a coarse comparison: same domain, covering, and canonical
// (identifier, position) multiset, same face count.
func (msh *Mesh) IsEqual(o *Mesh) bool {
	if msh.domain != o.domain || msh.cover != o.cover {
		return false
	}
	if len(msh.sites) != len(o.sites) || len(msh.Faces) != len(o.Faces) {
		return false
	}
	a := append([]site{}, msh.sites...)
	b := append([]site{}, o.sites...)
	less := func(s []site) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].Info != s[j].Info {
				return s[i].Info < s[j].Info
			}
			if s[i].X != s[j].X {
				return s[i].X < s[j].X
			}
			return s[i].Y < s[j].Y
		}
	}
	sort.Slice(a, less(a))
	sort.Slice(b, less(b))
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants and reports the first
// violation.
func (msh *Mesh) Validate() (err error) {
	if len(msh.Faces) == 0 {
		return
	}
	if msh.NumFaces() != 2*msh.NumVerts() {
		return fmt.Errorf("have %d canonical faces for %d points, want %d",
			msh.NumFaces(), msh.NumVerts(), 2*msh.NumVerts())
	}
	for f := range msh.Faces {
		fc := &msh.Faces[f]
		for j := int32(0); j < 3; j++ {
			g, k := fc.N[j], fc.NSlot[j]
			if g < 0 || int(g) >= len(msh.Faces) {
				return fmt.Errorf("face %d slot %d: neighbor %d out of range", f, j, g)
			}
			gc := &msh.Faces[g]
			if gc.N[k] != int32(f) || gc.NSlot[k] != j {
				return fmt.Errorf("face %d slot %d: neighbor %d slot %d does not point back", f, j, g, k)
			}
			if fc.V[ccw(j)] != gc.V[cw(k)] || fc.V[cw(j)] != gc.V[ccw(k)] {
				return fmt.Errorf("face %d slot %d: shared edge vertices disagree with neighbor %d", f, j, g)
			}
			for a := 0; a < 2; a++ {
				if fc.Off[ccw(j)][a]-gc.Off[cw(k)][a] != fc.NShift[j][a] ||
					fc.Off[cw(j)][a]-gc.Off[ccw(k)][a] != fc.NShift[j][a] {
					return fmt.Errorf("face %d slot %d: offsets inconsistent across shared edge", f, j)
				}
			}
		}
	}
	for v := range msh.Verts {
		f := msh.Verts[v].Face
		if f < 0 || int(f) >= len(msh.Faces) {
			return fmt.Errorf("vertex %d: incident face %d out of range", v, f)
		}
		if msh.Faces[f].V[0] != int32(v) && msh.Faces[f].V[1] != int32(v) &&
			msh.Faces[f].V[2] != int32(v) {
			return fmt.Errorf("vertex %d: incident face %d does not contain it", v, f)
		}
	}
	return
}

// PrintVertexInfo dumps the stored vertices.
func (msh *Mesh) PrintVertexInfo() {
	fmt.Printf("%d stored vertices (%d canonical)\n", len(msh.Verts), len(msh.sites))
	for v, vv := range msh.Verts {
		fmt.Printf("%6d: info %6d pos (%10.6f,%10.6f) off (%d,%d) face %d\n",
			v, vv.Info, vv.X, vv.Y, vv.Off[0], vv.Off[1], vv.Face)
	}
}

// PrintEdgeInfo dumps the stored edges with endpoint identifiers and
// lengths.
func (msh *Mesh) PrintEdgeInfo() {
	edges := msh.Edges()
	fmt.Printf("%d stored edges\n", len(edges))
	for _, e := range edges {
		v1, v2 := e.Verts(msh)
		fmt.Printf("(%6d,%6d) infos (%6d,%6d) length %10.6f\n",
			v1, v2, msh.Verts[v1].Info, msh.Verts[v2].Info, e.Length(msh))
	}
}
