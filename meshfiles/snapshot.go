/*
Package meshfiles persists mesh snapshots as little-endian binary blobs
and reads plain-text point files.
*/
package meshfiles

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/notargets/permesh/mesh2D"
)

var snapshotMagic = [4]byte{'P', 'M', '2', 'D'}

const snapshotVersion = uint32(1)

// snapshotMaxCount bounds the header entity counts so a corrupt header
// fails cleanly instead of sizing allocations from garbage.
const snapshotMaxCount = uint64(1) << 30

/*
Snapshot layout, all little-endian:

	magic "PM2D", version uint32
	n, m uint64, dim int32
	domain 4 float64, cover 2 int32
	n x 2 float64 positions, n uint64 infos        (present when n > 0)
	m x 3 uint64 faces, m x 3 uint64 neighbors,
	m x 3 x 2 int32 offsets                        (present when m > 0)
*/

// Write frames a snapshot onto w.
func Write(w io.Writer, s mesh2D.Snapshot[uint64]) (err error) {
	for _, v := range []interface{}{
		snapshotMagic, snapshotVersion,
		s.NVerts, s.NFaces, s.Dim, s.Domain, s.Cover,
	} {
		if err = binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("snapshot header: %v", err)
		}
	}
	for _, arr := range []interface{}{s.VertPos, s.VertInfo, s.Faces, s.Neighbors, s.Offsets} {
		if err = binary.Write(w, binary.LittleEndian, arr); err != nil {
			return fmt.Errorf("snapshot arrays: %v", err)
		}
	}
	return
}

// Read parses a framed snapshot from r.
func Read(r io.Reader) (s mesh2D.Snapshot[uint64], err error) {
	var (
		magic   [4]byte
		version uint32
	)
	if err = binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return s, fmt.Errorf("snapshot magic: %v", err)
	}
	if magic != snapshotMagic {
		return s, fmt.Errorf("not a mesh snapshot, magic %q", magic)
	}
	if err = binary.Read(r, binary.LittleEndian, &version); err != nil {
		return s, fmt.Errorf("snapshot version: %v", err)
	}
	if version != snapshotVersion {
		return s, fmt.Errorf("unsupported snapshot version %d", version)
	}
	for _, v := range []interface{}{&s.NVerts, &s.NFaces, &s.Dim, &s.Domain, &s.Cover} {
		if err = binary.Read(r, binary.LittleEndian, v); err != nil {
			return s, fmt.Errorf("snapshot header: %v", err)
		}
	}
	if s.NVerts > snapshotMaxCount || s.NFaces > snapshotMaxCount {
		return s, fmt.Errorf("snapshot header: implausible counts, %d vertices and %d faces",
			s.NVerts, s.NFaces)
	}
	n, m := int(s.NVerts), int(s.NFaces)
	if n > 0 {
		s.VertPos = make([]float64, 2*n)
		s.VertInfo = make([]uint64, n)
	}
	if m > 0 && s.Dim >= 2 {
		s.Faces = make([]uint64, 3*m)
		s.Neighbors = make([]uint64, 3*m)
		s.Offsets = make([]int32, 6*m)
	}
	for _, arr := range []interface{}{s.VertPos, s.VertInfo, s.Faces, s.Neighbors, s.Offsets} {
		if err = binary.Read(r, binary.LittleEndian, arr); err != nil {
			return s, fmt.Errorf("snapshot arrays: %v", err)
		}
	}
	return
}

// SaveFile serializes a mesh and writes the snapshot to path.
func SaveFile(path string, msh *mesh2D.Mesh) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %v", path, err)
	}
	defer file.Close()
	return Write(file, mesh2D.Serialize[uint64](msh))
}

// LoadFile reads a snapshot from path and deserializes it into msh. The
// mesh is untouched when the file cannot be read.
func LoadFile(path string, msh *mesh2D.Mesh) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %v", path, err)
	}
	defer file.Close()
	s, err := Read(file)
	if err != nil {
		return err
	}
	mesh2D.Deserialize(msh, s)
	return
}
