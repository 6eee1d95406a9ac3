package geometry2D

import "github.com/pradeep-pyro/triangle"

// Shewchuk triangulates through the Triangle library binding. It is
// considerably faster than the built-in engine on large point sets but pulls
// in cgo.
type Shewchuk struct{}

func (Shewchuk) Triangulate(pts [][2]float64) (tris [][3]int32) {
	return triangle.Delaunay(pts)
}

// NewTriangulator selects an engine by name, defaulting to the built-in one.
func NewTriangulator(name string) Triangulator {
	switch name {
	case "shewchuk", "triangle":
		return Shewchuk{}
	default:
		return BowyerWatson{}
	}
}
