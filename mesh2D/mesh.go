/*
Package mesh2D maintains a Delaunay triangulation over a periodic
(toroidally wrapped) rectangular domain.

Vertices and faces live in flat arenas addressed by integer index. Every
face records, per vertex slot, which periodic image of the vertex's
canonical point it references (an integer offset pair). The mesh is held
either one-sheeted (one stored copy per canonical point) or nine-sheeted
(a 3x3 block of copies, used while the point set is too sparse for a
single copy to be structurally safe).
*/
package mesh2D

import (
	"fmt"
	"math"

	"github.com/notargets/permesh/geometry2D"
)

// Offset is a periodic image translation in whole periods of the current
// covering's sheet, one entry per axis.
type Offset [2]int32

type Vertex struct {
	X, Y float64
	Info uint64 // caller-supplied external identifier
	Off  Offset // periodic image this stored copy represents
	Face int32  // one incident face, -1 while no faces exist
}

// Face is a triangle. Neighbor i sits opposite vertex i. Off[i] is the
// periodic image of vertex V[i] referenced by this face. NShift and NSlot
// are derived adjacency data (the translation aligning neighbor i's frame
// with ours, and our slot index as seen from neighbor i); they are never
// serialized and are recomputed combinatorially after deserialization.
type Face struct {
	V      [3]int32
	N      [3]int32
	Off    [3]Offset
	NShift [3]Offset
	NSlot  [3]int32
}

// site is a canonical input point, the rebuild source of truth.
type site struct {
	X, Y float64
	Info uint64
}

type Mesh struct {
	Verts []Vertex
	Faces []Face

	domain    [4]float64 // xmin, ymin, xmax, ymax
	hasDomain bool
	cover     [2]int32
	sites     []site
	kernel    geometry2D.Triangulator
	updated   bool

	Verbose bool
}

// NewMesh creates an empty mesh using the given planar Delaunay engine, or
// the built-in Bowyer-Watson engine when kernel is nil. SetDomain must be
// called before the first insertion.
func NewMesh(kernel geometry2D.Triangulator) (msh *Mesh) {
	if kernel == nil {
		kernel = geometry2D.BowyerWatson{}
	}
	msh = &Mesh{
		kernel: kernel,
		cover:  [2]int32{1, 1},
	}
	return
}

// SetDomain fixes the fundamental rectangle and clears any existing mesh.
func (msh *Mesh) SetDomain(xmin, ymin, xmax, ymax float64) {
	if xmin >= xmax || ymin >= ymax {
		panic(fmt.Errorf("invalid domain [%g,%g]x[%g,%g]", xmin, xmax, ymin, ymax))
	}
	msh.domain = [4]float64{xmin, ymin, xmax, ymax}
	msh.hasDomain = true
	msh.Clear()
}

// Clear drops all points and faces, keeping the domain.
func (msh *Mesh) Clear() {
	msh.sites = nil
	msh.Verts = nil
	msh.Faces = nil
	msh.cover = [2]int32{1, 1}
	msh.updated = true
}

func (msh *Mesh) Domain() [4]float64 { return msh.domain }

// NumSheets is the per-axis covering multiplicity, (1,1) or (3,3).
func (msh *Mesh) NumSheets() [2]int32 { return msh.cover }

func (msh *Mesh) NumSheetsTotal() int32 { return msh.cover[0] * msh.cover[1] }

// period is the fundamental domain extent per axis.
func (msh *Mesh) period() (w, h float64) {
	return msh.domain[2] - msh.domain[0], msh.domain[3] - msh.domain[1]
}

// sheetPeriod is the extent of the current covering's torus per axis.
func (msh *Mesh) sheetPeriod() (W, H float64) {
	w, h := msh.period()
	return w * float64(msh.cover[0]), h * float64(msh.cover[1])
}

// wrap translates a point into the fundamental domain.
func (msh *Mesh) wrap(x, y float64) (wx, wy float64) {
	var (
		w, h = msh.period()
	)
	wx = x - w*math.Floor((x-msh.domain[0])/w)
	wy = y - h*math.Floor((y-msh.domain[1])/h)
	return
}

// Updated reports whether any mutator ran since the last ClearUpdated. It
// is a change notification for external caches, not a lock.
func (msh *Mesh) Updated() bool { return msh.updated }

func (msh *Mesh) ClearUpdated() { msh.updated = false }

// NumVerts and NumFaces count canonical entities; stored counts are larger
// under the nine-sheeted covering.
func (msh *Mesh) NumVerts() int { return len(msh.sites) }

func (msh *Mesh) NumFaces() int {
	return len(msh.Faces) / int(msh.NumSheetsTotal())
}

// NumEdges follows from 3 slots per face, each edge shared by two faces.
func (msh *Mesh) NumEdges() int { return 3 * msh.NumFaces() / 2 }

func (msh *Mesh) NumStoredVerts() int { return len(msh.Verts) }

func (msh *Mesh) NumStoredFaces() int { return len(msh.Faces) }

// siteOf maps a stored vertex index to its canonical site index.
func (msh *Mesh) siteOf(v int32) int32 {
	if msh.NumSheetsTotal() == 9 {
		return v / 9
	}
	return v
}

// storedOf maps a canonical site index to its base stored copy.
func (msh *Mesh) storedOf(i int32) int32 {
	if msh.NumSheetsTotal() == 9 {
		return 9 * i
	}
	return i
}

// Insert adds points with the given external identifiers and
// re-triangulates. A nil infos assigns identifiers by arrival position. A
// point coinciding exactly with an existing canonical point maps to the
// existing vertex. Returns the stored vertex index of each input point.
func (msh *Mesh) Insert(pts [][2]float64, infos []uint64) (verts []int32) {
	if len(pts) == 0 {
		return
	}
	if !msh.hasDomain {
		panic(fmt.Errorf("insert before SetDomain"))
	}
	if infos != nil && len(infos) != len(pts) {
		panic(fmt.Errorf("have %d points but %d infos", len(pts), len(infos)))
	}
	occupied := make(map[[2]float64]int32, len(msh.sites))
	for i, s := range msh.sites {
		occupied[[2]float64{s.X, s.Y}] = int32(i)
	}
	siteIDs := make([]int32, len(pts))
	for k, p := range pts {
		wx, wy := msh.wrap(p[0], p[1])
		if i, dup := occupied[[2]float64{wx, wy}]; dup {
			siteIDs[k] = i
			continue
		}
		info := uint64(len(msh.sites))
		if infos != nil {
			info = infos[k]
		}
		siteIDs[k] = int32(len(msh.sites))
		occupied[[2]float64{wx, wy}] = siteIDs[k]
		msh.sites = append(msh.sites, site{wx, wy, info})
	}
	msh.rebuild()
	verts = make([]int32, len(pts))
	for k, i := range siteIDs {
		verts[k] = msh.storedOf(i)
	}
	return
}

// Remove deletes the canonical point behind the given stored vertex and
// re-triangulates.
func (msh *Mesh) Remove(v int32) (err error) {
	if v < 0 || int(v) >= len(msh.Verts) {
		return fmt.Errorf("remove: no vertex %d", v)
	}
	i := msh.siteOf(v)
	msh.sites = append(msh.sites[:i], msh.sites[i+1:]...)
	msh.rebuild()
	return
}

// Move relocates a vertex's canonical point and re-triangulates, returning
// the vertex's stored index under the post-move covering. A destination
// coinciding with a distinct existing point merges the two: the moved
// point is deleted and the occupying vertex comes back.
func (msh *Mesh) Move(v int32, x, y float64) (nv int32) {
	if v < 0 || int(v) >= len(msh.Verts) {
		panic(fmt.Errorf("move: no vertex %d", v))
	}
	var (
		i      = msh.siteOf(v)
		wx, wy = msh.wrap(x, y)
	)
	for j, s := range msh.sites {
		if int32(j) != i && s.X == wx && s.Y == wy {
			occ := int32(j)
			if occ > i {
				occ--
			}
			msh.sites = append(msh.sites[:i], msh.sites[i+1:]...)
			msh.rebuild()
			return msh.storedOf(occ)
		}
	}
	msh.sites[i].X, msh.sites[i].Y = wx, wy
	msh.rebuild()
	return msh.storedOf(i)
}

// MoveIfNoCollision is Move unless the destination coincides with a
// distinct existing point, in which case the mesh is untouched and the
// original vertex index comes back.
func (msh *Mesh) MoveIfNoCollision(v int32, x, y float64) (nv int32) {
	if v < 0 || int(v) >= len(msh.Verts) {
		panic(fmt.Errorf("move: no vertex %d", v))
	}
	var (
		i      = msh.siteOf(v)
		wx, wy = msh.wrap(x, y)
	)
	for j, s := range msh.sites {
		if int32(j) != i && s.X == wx && s.Y == wy {
			return v
		}
	}
	return msh.Move(v, x, y)
}

// FacePoint is the position of face f's vertex slot j in the face's own
// frame, the stored copy translated by the slot offset.
func (msh *Mesh) FacePoint(f, j int32) (x, y float64) {
	var (
		fc   = &msh.Faces[f]
		v    = &msh.Verts[fc.V[j]]
		W, H = msh.sheetPeriod()
	)
	return v.X + float64(fc.Off[j][0])*W, v.Y + float64(fc.Off[j][1])*H
}
