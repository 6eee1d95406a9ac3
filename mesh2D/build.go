package mesh2D

import (
	"fmt"
	"math"

	"github.com/notargets/permesh/geometry2D"
)

/*
The Delaunay property is maintained by rebuilding from scratch: replicate
the canonical points into a block of periodic copies large enough that
every canonical face appears as a planar triangle, run the batch planar
engine, then keep exactly one image of each canonical face.

The block half-widths kx, ky come from the static bound on the largest
empty disk a torus can hold, rmax = sqrt((w/2)^2 + (h/2)^2): any Delaunay
face whose circumcenter wraps into the fundamental domain has all three
vertices within rmax of it, so copies out to floor(rmax/period)+1 suffice
regardless of the point distribution.
*/

// jitterFrac is a reproducible hash of the site index onto [0,1), used to
// perturb cocircular inputs identically across all periodic images of a
// site. Output coordinates are never jittered.
func jitterFrac(i uint64) float64 {
	i *= 0x9E3779B97F4A7C15
	i ^= i >> 29
	i *= 0xBF58476D1CE4E5B9
	i ^= i >> 32
	return float64(i>>11) / (1 << 53)
}

type slotRef struct {
	id  int32
	off Offset
}

func slotLess(a, b slotRef) bool {
	if a.id != b.id {
		return a.id < b.id
	}
	if a.off[0] != b.off[0] {
		return a.off[0] < b.off[0]
	}
	return a.off[1] < b.off[1]
}

// rebuild re-triangulates the canonical point set and re-decides the
// covering: one-sheeted when the largest circumradius is at most
// min(w,h)/4, nine-sheeted otherwise.
func (msh *Mesh) rebuild() {
	msh.updated = true
	msh.cover = [2]int32{1, 1}
	msh.Faces = nil
	msh.Verts = make([]Vertex, len(msh.sites))
	for i, s := range msh.sites {
		msh.Verts[i] = Vertex{X: s.X, Y: s.Y, Info: s.Info, Face: -1}
	}
	if len(msh.sites) < 3 {
		// Vertices only, no faces below three points
		return
	}
	maxR := msh.buildFaces()
	msh.setIncidentFaces()
	w, h := msh.period()
	if maxR > math.Min(w, h)/4 {
		msh.ToNineSheeted()
	}
	if msh.Verbose {
		fmt.Printf("rebuilt mesh: %d vertices, %d faces, max circumradius %8.5f, %d sheets\n",
			msh.NumVerts(), msh.NumFaces(), maxR, msh.NumSheetsTotal())
	}
}

func (msh *Mesh) buildFaces() (maxR float64) {
	var (
		n                      = len(msh.sites)
		xmin, ymin             = msh.domain[0], msh.domain[1]
		w, h                   = msh.period()
		rmax                   = math.Sqrt(w*w/4 + h*h/4)
		kx, ky                 = int32(rmax/w) + 1, int32(rmax/h) + 1
		eps                    = 1.e-9 * math.Min(w, h)
		nx, ny                 = 2*kx + 1, 2*ky + 1
		reps                   = make([][2]float64, 0, n*int(nx*ny))
		repSite                []int32
		repOff                 []Offset
	)
	for i, s := range msh.sites {
		jx := s.X + eps*(jitterFrac(2*uint64(i))-0.5)
		jy := s.Y + eps*(jitterFrac(2*uint64(i)+1)-0.5)
		for oy := -ky; oy <= ky; oy++ {
			for ox := -kx; ox <= kx; ox++ {
				reps = append(reps, [2]float64{jx + float64(ox)*w, jy + float64(oy)*h})
				repSite = append(repSite, int32(i))
				repOff = append(repOff, Offset{ox, oy})
			}
		}
	}
	tris := msh.kernel.Triangulate(reps)

	// Keep a planar triangle iff its block translation matches the wrap
	// translation of its circumcenter into the fundamental domain. The
	// circumcenter is computed from unjittered base-image coordinates, so
	// every periodic image of a canonical face reaches the same verdict and
	// exactly one image passes.
	seen := make(map[[3]slotRef]int32)
	for _, tri := range tris {
		var (
			s [3]slotRef
			b Offset
		)
		for j := 0; j < 3; j++ {
			s[j] = slotRef{repSite[tri[j]], repOff[tri[j]]}
		}
		b = Offset{
			min3i(s[0].off[0], s[1].off[0], s[2].off[0]),
			min3i(s[0].off[1], s[1].off[1], s[2].off[1]),
		}
		for j := 0; j < 3; j++ {
			s[j].off[0] -= b[0]
			s[j].off[1] -= b[1]
		}
		var px, py [3]float64
		for j := 0; j < 3; j++ {
			st := msh.sites[s[j].id]
			px[j] = st.X + float64(s[j].off[0])*w
			py[j] = st.Y + float64(s[j].off[1])*h
		}
		ccx, ccy, cr := geometry2D.Circumcircle(px[0], py[0], px[1], py[1], px[2], py[2])
		if math.IsInf(cr, 1) {
			continue
		}
		if b[0] != -int32(math.Floor((ccx-xmin)/w)) ||
			b[1] != -int32(math.Floor((ccy-ymin)/h)) {
			continue
		}
		// Rotate so the smallest (id, offset) slot leads, preserving the
		// counter-clockwise order
		rot := 0
		for j := 1; j < 3; j++ {
			if slotLess(s[j], s[rot]) {
				rot = j
			}
		}
		s[0], s[1], s[2] = s[rot], s[(rot+1)%3], s[(rot+2)%3]
		if f, dup := seen[s]; dup {
			panic(fmt.Errorf("canonical face %v extracted twice (faces %d)", s, f))
		}
		seen[s] = int32(len(msh.Faces))
		var fc Face
		for j := 0; j < 3; j++ {
			fc.V[j] = s[j].id
			fc.Off[j] = s[j].off
		}
		msh.Faces = append(msh.Faces, fc)
		maxR = math.Max(maxR, cr)
	}
	if len(msh.Faces) != 2*n {
		panic(fmt.Errorf("extracted %d faces from %d points, expected %d",
			len(msh.Faces), n, 2*n))
	}
	msh.wireNeighbors()
	return
}

// edgeKey identifies a canonical (periodic) edge: both endpoints as
// (site, offset) with the per-axis offset minimum at zero and the smaller
// endpoint first.
type edgeKey struct {
	a, b slotRef
}

type edgeRef struct {
	face, slot int32
	base       Offset
}

// wireNeighbors matches the kept faces along shared canonical edges. Edge
// j of a face runs between slots j+1 and j+2; each canonical edge must be
// claimed by exactly two slots.
func (msh *Mesh) wireNeighbors() {
	edges := make(map[edgeKey][]edgeRef, 3*len(msh.Faces)/2)
	for f := range msh.Faces {
		fc := &msh.Faces[f]
		for j := int32(0); j < 3; j++ {
			p := slotRef{fc.V[ccw(j)], fc.Off[ccw(j)]}
			q := slotRef{fc.V[cw(j)], fc.Off[cw(j)]}
			base := Offset{
				min2i(p.off[0], q.off[0]),
				min2i(p.off[1], q.off[1]),
			}
			for a := 0; a < 2; a++ {
				p.off[a] -= base[a]
				q.off[a] -= base[a]
			}
			if slotLess(q, p) {
				p, q = q, p
			}
			k := edgeKey{p, q}
			edges[k] = append(edges[k], edgeRef{int32(f), j, base})
		}
	}
	for k, refs := range edges {
		if len(refs) != 2 {
			panic(fmt.Errorf("canonical edge %v shared by %d slots, expected 2", k, len(refs)))
		}
		a, b := refs[0], refs[1]
		msh.Faces[a.face].N[a.slot] = b.face
		msh.Faces[a.face].NSlot[a.slot] = b.slot
		msh.Faces[a.face].NShift[a.slot] = Offset{a.base[0] - b.base[0], a.base[1] - b.base[1]}
		msh.Faces[b.face].N[b.slot] = a.face
		msh.Faces[b.face].NSlot[b.slot] = a.slot
		msh.Faces[b.face].NShift[b.slot] = Offset{b.base[0] - a.base[0], b.base[1] - a.base[1]}
	}
}

func (msh *Mesh) setIncidentFaces() {
	for f := range msh.Faces {
		for j := 0; j < 3; j++ {
			msh.Verts[msh.Faces[f].V[j]].Face = int32(f)
		}
	}
}

func cw(i int32) int32 { return (i + 2) % 3 }

func ccw(i int32) int32 { return (i + 1) % 3 }

func min2i(a, b int32) int32 {
	if b < a {
		return b
	}
	return a
}

func min3i(a, b, c int32) int32 { return min2i(a, min2i(b, c)) }
