package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	{ // Packing is order-independent and reversible
		a := NewEdgeKey([2]int{5, 9})
		b := NewEdgeKey([2]int{9, 5})
		assert.Equal(t, a, b)
		verts := a.GetVertices()
		assert.Equal(t, [2]int{5, 9}, verts)
	}
	{ // Large indices survive the packing
		k := NewEdgeKey([2]int{1 << 30, 3})
		assert.Equal(t, [2]int{3, 1 << 30}, k.GetVertices())
	}
	{ // Out of range panics
		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 0}) })
	}
}

func TestVectorMatrix(t *testing.T) {
	{
		v := NewVector(3, []float64{3, 1, 2})
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 1.0, v.Min())
		assert.Equal(t, 3.0, v.Max())
		assert.Equal(t, 2.0, v.AtVec(2))
		assert.Panics(t, func() { NewVector(2, []float64{1}) })
	}
	{
		m := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		r, c := m.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.Equal(t, 6.0, m.At(1, 2))
		row := m.Row(1)
		assert.Equal(t, []float64{4, 5, 6}, row.Data())
		// Row copies, mutation does not leak back
		row.SetVec(0, 99)
		assert.Equal(t, 4.0, m.At(1, 0))
	}
}

func TestDOK(t *testing.T) {
	d := NewDOK(4, 4)
	d.Set(1, 2, 1)
	d.Set(2, 1, 1)
	d.Set(1, 2, 1)
	assert.Equal(t, 2, d.NNZ())
	assert.Equal(t, 1.0, d.At(1, 2))
	assert.Equal(t, 0.0, d.At(3, 3))
	r, c := d.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
}
