package utils

import (
	"fmt"
	"math"
)

type EdgeKey uint64

// NewEdgeKey packs two vertex indices into a uint64 to act as a hash and an
// indirect access method. The smaller index occupies the low 32 bits, so the
// key is independent of traversal direction.
func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] < verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices() (verts [2]int) {
	var (
		ekTmp EdgeKey
	)
	ekTmp = ek >> 32
	verts[1] = int(ekTmp)
	verts[0] = int(ek - ekTmp*(1<<32))
	return
}
