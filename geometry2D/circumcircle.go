package geometry2D

import "math"

// Circumcircle returns the circumcenter and circumradius of triangle abc.
// For a (near) degenerate triangle the radius is +Inf.
func Circumcircle(ax, ay, bx, by, cx, cy float64) (ccx, ccy, r float64) {
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1.e-300 {
		return 0, 0, math.Inf(1)
	}
	ux := (ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)
	uy := (ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)
	ccx = ux / d
	ccy = uy / d
	r = math.Sqrt((ccx-ax)*(ccx-ax) + (ccy-ay)*(ccy-ay))
	return
}
