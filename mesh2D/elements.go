package mesh2D

import "math"

// Edge is a derived element: face plus the index of the opposite vertex.
// It is never stored; equality is order-independent on its endpoints.
type Edge struct {
	Face int32
	Ind  int32
}

// Verts returns the stored vertex indices of the edge's two endpoints,
// the slots following the opposite vertex in counter-clockwise order.
func (e Edge) Verts(msh *Mesh) (v1, v2 int32) {
	fc := &msh.Faces[e.Face]
	return fc.V[ccw(e.Ind)], fc.V[cw(e.Ind)]
}

// Mirror is the same edge seen from the neighboring face.
func (e Edge) Mirror(msh *Mesh) Edge {
	fc := &msh.Faces[e.Face]
	return Edge{fc.N[e.Ind], fc.NSlot[e.Ind]}
}

// SameAs reports whether two edges denote the same stored edge, from
// either side.
func (e Edge) SameAs(msh *Mesh, o Edge) bool {
	if e == o {
		return true
	}
	return e.Mirror(msh) == o
}

// Length measures the edge in the face's own frame, so periodic images
// are handled by the slot offsets.
func (e Edge) Length(msh *Mesh) float64 {
	x1, y1 := msh.FacePoint(e.Face, ccw(e.Ind))
	x2, y2 := msh.FacePoint(e.Face, cw(e.Ind))
	return math.Hypot(x2-x1, y2-y1)
}
