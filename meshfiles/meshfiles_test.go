package meshfiles

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/notargets/permesh/mesh2D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMesh() (msh *mesh2D.Mesh) {
	var pts [][2]float64
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			pts = append(pts, [2]float64{(float64(i) + 0.5) / 4, (float64(j) + 0.5) / 4})
		}
	}
	msh = mesh2D.NewMesh(nil)
	msh.SetDomain(0, 0, 1, 1)
	msh.Insert(pts, nil)
	return
}

func TestSnapshotFraming(t *testing.T) {
	{ // Byte-level round trip
		s := mesh2D.Serialize[uint64](buildMesh())
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, s))
		back, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	{ // Vertices-only snapshot
		msh := mesh2D.NewMesh(nil)
		msh.SetDomain(0, 0, 1, 1)
		msh.Insert([][2]float64{{0.25, 0.5}, {0.75, 0.5}}, nil)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, mesh2D.Serialize[uint64](msh)))
		back, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), back.NVerts)
		assert.Equal(t, int32(-1), back.Dim)
		assert.Equal(t, 4, len(back.VertPos))
	}
	{ // Garbage input is rejected up front
		_, err := Read(bytes.NewReader([]byte("not a snapshot at all")))
		assert.Error(t, err)
		_, err = Read(bytes.NewReader(nil))
		assert.Error(t, err)
	}
	{ // A corrupt header with absurd counts fails before allocating
		var buf bytes.Buffer
		for _, v := range []interface{}{
			[4]byte{'P', 'M', '2', 'D'}, uint32(1),
			uint64(1) << 40, uint64(0), int32(-1),
			[4]float64{0, 0, 1, 1}, [2]int32{1, 1},
		} {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		}
		_, err := Read(&buf)
		assert.Error(t, err)
	}
}

func TestSaveLoadFile(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "mesh.pm2d")
		msh  = buildMesh()
	)
	require.NoError(t, SaveFile(path, msh))
	back := mesh2D.NewMesh(nil)
	require.NoError(t, LoadFile(path, back))
	assert.True(t, msh.IsEqual(back))
	require.NoError(t, back.Validate())

	// A failed load leaves the mesh unchanged
	err := LoadFile(filepath.Join(dir, "missing.pm2d"), back)
	assert.Error(t, err)
	assert.Equal(t, 16, back.NumVerts())
	assert.Equal(t, 32, back.NumFaces())
}

func TestReadPoints(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	{ // With explicit identifiers
		path := filepath.Join(dir, "pts.txt")
		data := "3\n0.1 0.2 7\n0.3 0.4 8\n0.5 0.6 9\n"
		require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
		pts, infos, err := ReadPoints(path, false)
		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}, pts)
		assert.Equal(t, []uint64{7, 8, 9}, infos)
	}
	{ // Identifiers default to line position
		path := filepath.Join(dir, "plain.txt")
		data := "2\n0.1 0.2\n0.3 0.4\n"
		require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
		_, infos, err := ReadPoints(path, false)
		require.NoError(t, err)
		assert.Equal(t, []uint64{0, 1}, infos)
	}
	{ // Truncated and malformed files fail
		path := filepath.Join(dir, "short.txt")
		require.NoError(t, ioutil.WriteFile(path, []byte("5\n0.1 0.2\n"), 0644))
		_, _, err := ReadPoints(path, false)
		assert.Error(t, err)
		path = filepath.Join(dir, "bad.txt")
		require.NoError(t, ioutil.WriteFile(path, []byte("1\n0.1 zebra\n"), 0644))
		_, _, err = ReadPoints(path, false)
		assert.Error(t, err)
		_, _, err = ReadPoints(filepath.Join(dir, "absent.txt"), false)
		assert.Error(t, err)
	}
}
