package mesh2D

/*
The codec turns a mesh into flat, pointer-free arrays and back. Output is
always the one-sheeted normal form; the covering pair records the live
mesh's state so deserialization can restore it. Index arrays are generic
over the caller's integer width.

Deserialization trusts its input: out-of-range indices are the caller's
problem, exactly like a raw array exchange format.
*/

// Index is any integer width a caller may exchange index arrays in.
type Index interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// IndexInf is the sentinel "no such entity" value: the maximum
// representable I. It appears only in filtered serialization output.
func IndexInf[I Index]() I {
	var v I
	v = ^v
	if v > 0 {
		return v // unsigned width
	}
	u := uint64(1)
	for I(u) > 0 {
		u <<= 1
	}
	return I(u - 1)
}

// Snapshot is the serialized form of a mesh, a plain value with no live
// references. Dim is 2 for a meshed point set and -1 when fewer than
// three points exist and there are no faces.
type Snapshot[I Index] struct {
	NVerts, NFaces I
	Dim            int32
	Domain         [4]float64
	Cover          [2]int32

	VertPos   []float64 // n x 2 row-major
	VertInfo  []I       // n external identifiers
	Faces     []I       // m x 3 vertex indices
	Neighbors []I       // m x 3 face indices
	Offsets   []int32   // m x 3 x 2 per-slot offsets
}

// Serialize emits the one-sheeted normal form with vertices addressed by
// array position. The mesh itself is left in its current covering. Vertex
// arrays are emitted whenever points exist, even without faces, so one-
// and two-point meshes round-trip; face arrays stay nil when m is zero.
func Serialize[I Index](msh *Mesh) (s Snapshot[I]) {
	verts, faces := msh.oneSheetArenas()
	s = header[I](msh, len(verts), len(faces))
	if len(verts) == 0 {
		return
	}
	s.VertPos = make([]float64, 2*len(verts))
	s.VertInfo = make([]I, len(verts))
	for i, v := range verts {
		s.VertPos[2*i] = v.X
		s.VertPos[2*i+1] = v.Y
		s.VertInfo[i] = I(v.Info)
	}
	if len(faces) == 0 {
		return
	}
	s.Faces, s.Neighbors, s.Offsets = faceArrays[I](faces, nil)
	return
}

// SerializeIdxInfo emits faces with vertex slots carrying external
// identifiers instead of array positions, and vertex coordinates stored
// at the position named by each identifier. Valid only when identifiers
// form a dense 0..n-1 range; otherwise the layout is undefined.
func SerializeIdxInfo[I Index](msh *Mesh) (s Snapshot[I]) {
	verts, faces := msh.oneSheetArenas()
	s = header[I](msh, len(verts), len(faces))
	if len(verts) == 0 {
		return
	}
	s.VertPos = make([]float64, 2*len(verts))
	s.VertInfo = make([]I, len(verts))
	for _, v := range verts {
		s.VertPos[2*v.Info] = v.X
		s.VertPos[2*v.Info+1] = v.Y
		s.VertInfo[v.Info] = I(v.Info)
	}
	if len(faces) == 0 {
		return
	}
	byInfo := make([]I, len(verts))
	for i := range verts {
		byInfo[i] = I(verts[i].Info)
	}
	s.Faces, s.Neighbors, s.Offsets = faceArrays[I](faces, byInfo)
	return
}

// SerializeInfo2Idx is the filtered variant: a face survives when at
// least one of its vertices has an identifier below maxInfo, surviving
// faces' vertex slots are translated through idx (indexed by external
// identifier), and neighbor references to dropped faces become the
// sentinel. Vertex arrays are not emitted; the caller already holds them.
func SerializeInfo2Idx[I Index](msh *Mesh, maxInfo uint64, idx []I) (s Snapshot[I]) {
	verts, faces := msh.oneSheetArenas()
	var (
		inf    = IndexInf[I]()
		lookup = make([]I, len(faces))
		kept   []int32
	)
	for f, fc := range faces {
		include := false
		for j := 0; j < 3; j++ {
			if verts[fc.V[j]].Info < maxInfo {
				include = true
			}
		}
		if include {
			lookup[f] = I(len(kept))
			kept = append(kept, int32(f))
		} else {
			lookup[f] = inf
		}
	}
	s = header[I](msh, len(verts), len(kept))
	if len(verts) == 0 || len(kept) == 0 {
		return
	}
	s.Faces = make([]I, 3*len(kept))
	s.Neighbors = make([]I, 3*len(kept))
	s.Offsets = make([]int32, 6*len(kept))
	for nf, f := range kept {
		fc := faces[f]
		for j := 0; j < 3; j++ {
			s.Faces[3*nf+j] = idx[verts[fc.V[j]].Info]
			s.Neighbors[3*nf+j] = lookup[fc.N[j]]
			s.Offsets[6*nf+2*j] = fc.Off[j][0]
			s.Offsets[6*nf+2*j+1] = fc.Off[j][1]
		}
	}
	return
}

func header[I Index](msh *Mesh, n, m int) (s Snapshot[I]) {
	s.NVerts, s.NFaces = I(n), I(m)
	s.Dim = 2
	if m == 0 {
		s.Dim = -1
	}
	s.Domain = msh.domain
	s.Cover = msh.cover
	return
}

func faceArrays[I Index](faces []Face, slotIDs []I) (fv, fn []I, off []int32) {
	fv = make([]I, 3*len(faces))
	fn = make([]I, 3*len(faces))
	off = make([]int32, 6*len(faces))
	for f, fc := range faces {
		for j := 0; j < 3; j++ {
			if slotIDs != nil {
				fv[3*f+j] = slotIDs[fc.V[j]]
			} else {
				fv[3*f+j] = I(fc.V[j])
			}
			fn[3*f+j] = I(fc.N[j])
			off[6*f+2*j] = fc.Off[j][0]
			off[6*f+2*j+1] = fc.Off[j][1]
		}
	}
	return
}

// Deserialize clears the mesh and rebuilds it structurally from the
// snapshot, then restores the nine-sheeted covering when the snapshot's
// covering pair says so. A snapshot with no vertices just clears.
func Deserialize[I Index](msh *Mesh, s Snapshot[I]) {
	deserialize(msh, s, false)
}

// DeserializeIdxInfo is Deserialize for snapshots whose face-vertex slots
// are external identifiers; identifiers are assigned by array position,
// making the two schemes coincide.
func DeserializeIdxInfo[I Index](msh *Mesh, s Snapshot[I]) {
	deserialize(msh, s, true)
}

// Restore builds a fresh mesh from a snapshot using the built-in kernel.
func Restore[I Index](s Snapshot[I]) (msh *Mesh) {
	msh = NewMesh(nil)
	Deserialize(msh, s)
	return
}

func deserialize[I Index](msh *Mesh, s Snapshot[I], infoIsPosition bool) {
	msh.updated = true
	msh.domain = s.Domain
	msh.hasDomain = true
	msh.cover = [2]int32{1, 1}
	msh.sites, msh.Verts, msh.Faces = nil, nil, nil
	n := int(int64(s.NVerts))
	if n == 0 {
		return
	}
	msh.sites = make([]site, n)
	msh.Verts = make([]Vertex, n)
	for i := 0; i < n; i++ {
		info := uint64(i)
		if !infoIsPosition && s.VertInfo != nil {
			info = uint64(int64(s.VertInfo[i]))
		}
		msh.sites[i] = site{s.VertPos[2*i], s.VertPos[2*i+1], info}
		msh.Verts[i] = Vertex{X: s.VertPos[2*i], Y: s.VertPos[2*i+1], Info: info, Face: -1}
	}
	m := int(int64(s.NFaces))
	if m > 0 && s.Dim >= 2 {
		msh.Faces = make([]Face, m)
		for f := 0; f < m; f++ {
			var fc Face
			for j := 0; j < 3; j++ {
				fc.V[j] = int32(int64(s.Faces[3*f+j]))
				fc.N[j] = int32(int64(s.Neighbors[3*f+j]))
				fc.Off[j] = Offset{s.Offsets[6*f+2*j], s.Offsets[6*f+2*j+1]}
			}
			msh.Faces[f] = fc
		}
		msh.recomputeShifts()
		msh.setIncidentFaces()
	}
	if s.Cover[0]*s.Cover[1] == 9 {
		msh.ToNineSheeted()
	}
}
