package geometry2D

import "math"

// Orientation returns twice the signed area of triangle abc: positive for
// counter-clockwise, negative for clockwise, zero for collinear points.
func Orientation(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
}

// InCircumcircle reports whether point d lies strictly inside the circle
// through a, b, c. The triangle may be given in either orientation.
func InCircumcircle(ax, ay, bx, by, cx, cy, dx, dy float64) (inside bool) {
	// Calculate handedness, counter-clockwise is (positive) and clockwise is (negative)
	signBit := math.Signbit((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
	ax_ := ax - dx
	ay_ := ay - dy
	bx_ := bx - dx
	by_ := by - dy
	cx_ := cx - dx
	cy_ := cy - dy
	det := (ax_*ax_+ay_*ay_)*(bx_*cy_-cx_*by_) -
		(bx_*bx_+by_*by_)*(ax_*cy_-cx_*ay_) +
		(cx_*cx_+cy_*cy_)*(ax_*by_-bx_*ay_)
	if signBit {
		return det < 0
	} else {
		return det > 0
	}
}

func IsIllegalEdge(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	/*
		pr is a new point for candidate triangle pi-pj-pr
		pi-pj is a shared edge between pi-pj-pk and pi-pj-pr
		if pr lies inside the circle defined by pi-pj-pk:
			- The edge pi-pj should be swapped with pr-pk to make two new triangles:
				pi-pr-pk and pj-pk-pr
	*/
	return InCircumcircle(piX, piY, pjX, pjY, pkX, pkY, prX, prY)
}
