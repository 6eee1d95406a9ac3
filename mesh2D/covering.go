package mesh2D

import "fmt"

/*
The nine-sheeted covering stores a deterministic 3x3 replicated layout:
canonical vertex i appears as stored vertices 9*i+c and canonical face f
as stored faces 9*f+c, where c = 3*cy + cx addresses the copy cell. Slot
offsets are expressed in big-torus periods (three fundamental periods per
axis), so converting back to one sheet is pure index arithmetic on the
copies with cell zero as the base.
*/

// ToNineSheeted expands the mesh to the 3x3 covering. No-op when already
// nine-sheeted.
func (msh *Mesh) ToNineSheeted() {
	if msh.NumSheetsTotal() == 9 {
		return
	}
	msh.updated = true
	var (
		w, h  = msh.period()
		verts = make([]Vertex, 9*len(msh.Verts))
		faces = make([]Face, 9*len(msh.Faces))
	)
	for i, v := range msh.Verts {
		for c := int32(0); c < 9; c++ {
			cx, cy := c%3, c/3
			verts[9*int32(i)+c] = Vertex{
				X:    v.X + float64(cx)*w,
				Y:    v.Y + float64(cy)*h,
				Info: v.Info,
				Off:  Offset{cx, cy},
				Face: -1,
			}
		}
	}
	for f, fc := range msh.Faces {
		for c := int32(0); c < 9; c++ {
			cx, cy := c%3, c/3
			var nf Face
			for j := 0; j < 3; j++ {
				// Total per-axis shift of the slot within the big torus
				sx, sy := cx+fc.Off[j][0], cy+fc.Off[j][1]
				nf.V[j] = 9*fc.V[j] + 3*(sy%3) + sx%3
				nf.Off[j] = Offset{sx / 3, sy / 3}
				// The neighbor's copy cell moves by the frame translation
				dx, dy := cx+fc.NShift[j][0], cy+fc.NShift[j][1]
				nf.N[j] = 9*fc.N[j] + 3*mod3(dy) + mod3(dx)
				nf.NShift[j] = Offset{div3(dx), div3(dy)}
				nf.NSlot[j] = fc.NSlot[j]
			}
			faces[9*int32(f)+c] = nf
		}
	}
	msh.Verts, msh.Faces = verts, faces
	msh.cover = [2]int32{3, 3}
	msh.setIncidentFaces()
}

// ToOneSheeted collapses the mesh to the minimal covering. No-op when
// already one-sheeted.
func (msh *Mesh) ToOneSheeted() {
	if msh.NumSheetsTotal() == 1 {
		return
	}
	msh.updated = true
	msh.Verts, msh.Faces = msh.oneSheetArenas()
	msh.cover = [2]int32{1, 1}
	msh.setIncidentFaces()
}

// oneSheetArenas builds the one-sheeted arenas without touching the mesh,
// so serialization can emit the normal form of a nine-sheeted mesh
// read-only. Base copies (cell zero) are kept; each discarded copy's
// content is recoverable from its cell index, so this is lossless.
func (msh *Mesh) oneSheetArenas() (verts []Vertex, faces []Face) {
	if msh.NumSheetsTotal() == 1 {
		return msh.Verts, msh.Faces
	}
	var (
		n = len(msh.Verts) / 9
		m = len(msh.Faces) / 9
	)
	verts = make([]Vertex, n)
	for i := 0; i < n; i++ {
		v := msh.Verts[9*i]
		v.Off = Offset{}
		v.Face = -1
		verts[i] = v
	}
	faces = make([]Face, m)
	for f := 0; f < m; f++ {
		fc := msh.Faces[9*f]
		var of Face
		for j := 0; j < 3; j++ {
			c := fc.V[j] % 9
			of.V[j] = fc.V[j] / 9
			of.Off[j] = Offset{3*fc.Off[j][0] + c%3, 3*fc.Off[j][1] + c/3}
			nc := fc.N[j] % 9
			of.N[j] = fc.N[j] / 9
			of.NShift[j] = Offset{3*fc.NShift[j][0] + nc%3, 3*fc.NShift[j][1] + nc/3}
			of.NSlot[j] = fc.NSlot[j]
		}
		faces[f] = of
	}
	for f := range faces {
		for j := 0; j < 3; j++ {
			if verts[faces[f].V[j]].Face < 0 {
				verts[faces[f].V[j]].Face = int32(f)
			}
		}
	}
	return
}

/*
recomputeShifts restores the derived adjacency data (NShift, NSlot) from
the serialized fields alone. For face f's slot j the neighbor g is known;
the matching slot k must point back at f, reference the same two vertex
ids across the shared edge with reversed orientation, and yield one
consistent offset difference at both endpoints. Multi-adjacency (the same
pair of faces sharing two edges) is resolved by claiming each slot pair
once.
*/
func (msh *Mesh) recomputeShifts() {
	for f := range msh.Faces {
		for j := 0; j < 3; j++ {
			msh.Faces[f].NSlot[j] = -1
		}
	}
	for f := range msh.Faces {
		for j := int32(0); j < 3; j++ {
			if msh.Faces[f].NSlot[j] >= 0 {
				continue
			}
			fc := &msh.Faces[f]
			g := fc.N[j]
			gc := &msh.Faces[g]
			found := false
			for k := int32(0); k < 3; k++ {
				if gc.N[k] != int32(f) || gc.NSlot[k] >= 0 {
					continue
				}
				if g == int32(f) && k == j {
					continue
				}
				if fc.V[ccw(j)] != gc.V[cw(k)] || fc.V[cw(j)] != gc.V[ccw(k)] {
					continue
				}
				d1 := Offset{
					fc.Off[ccw(j)][0] - gc.Off[cw(k)][0],
					fc.Off[ccw(j)][1] - gc.Off[cw(k)][1],
				}
				d2 := Offset{
					fc.Off[cw(j)][0] - gc.Off[ccw(k)][0],
					fc.Off[cw(j)][1] - gc.Off[ccw(k)][1],
				}
				if d1 != d2 {
					continue
				}
				fc.NSlot[j] = k
				fc.NShift[j] = d1
				gc.NSlot[k] = j
				gc.NShift[k] = Offset{-d1[0], -d1[1]}
				found = true
				break
			}
			if !found {
				panic(fmt.Errorf("face %d slot %d: no consistent mirror slot in neighbor %d", f, j, g))
			}
		}
	}
}

func mod3(a int32) int32 { return ((a % 3) + 3) % 3 }

func div3(a int32) int32 { return (a - mod3(a)) / 3 }
