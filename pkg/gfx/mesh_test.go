package gfx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadIndicesReferenceQuadVertices(t *testing.T) {
	require.Len(t, QuadIndices, 6)
	for _, idx := range QuadIndices {
		assert.Less(t, int(idx), len(QuadVertices))
	}
}

func TestQuadIndicesCoverQuadWithTwoTriangles(t *testing.T) {
	triangles := [][3]uint32{
		{QuadIndices[0], QuadIndices[1], QuadIndices[2]},
		{QuadIndices[3], QuadIndices[4], QuadIndices[5]},
	}

	var total float64
	for _, tri := range triangles {
		a := QuadVertices[tri[0]].Position()
		b := QuadVertices[tri[1]].Position()
		c := QuadVertices[tri[2]].Position()
		area := 0.5 * math.Abs(float64((b[0]-a[0])*(c[1]-a[1])-(c[0]-a[0])*(b[1]-a[1])))
		assert.InDelta(t, 0.5, area, 1e-6)
		total += area
	}
	assert.InDelta(t, 1.0, total, 1e-6, "triangles must tile the unit quad")

	shared := map[uint32]int{}
	for _, tri := range triangles {
		for _, idx := range tri {
			shared[idx]++
		}
	}
	assert.Len(t, shared, 4, "all four corners are used")
	assert.Equal(t, 2, shared[0])
	assert.Equal(t, 2, shared[2])
	assert.Equal(t, 1, shared[1])
	assert.Equal(t, 1, shared[3])
}

func TestVertexLayoutDecodesInterleavedBuffer(t *testing.T) {
	require.Equal(t, 32, VertexStride)
	require.Len(t, VertexLayout, 3)

	flat := Flatten(QuadVertices[:])
	buf := make([]byte, len(flat)*floatSize)
	for i, f := range flat {
		binary.LittleEndian.PutUint32(buf[i*floatSize:], math.Float32bits(f))
	}
	read := func(vertex int, attr VertexAttribute) []float32 {
		out := make([]float32, attr.Size)
		base := vertex*VertexStride + attr.Offset
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[base+i*floatSize:]))
		}
		return out
	}

	for i, v := range QuadVertices {
		pos, col, uv := v.Position(), v.Color(), v.TexCoord()
		assert.Equal(t, pos[:], read(i, VertexLayout[0]))
		assert.Equal(t, col[:], read(i, VertexLayout[1]))
		assert.Equal(t, uv[:], read(i, VertexLayout[2]))
	}
	assert.Equal(t, 0, VertexLayout[0].Offset)
	assert.Equal(t, 12, VertexLayout[1].Offset)
	assert.Equal(t, 24, VertexLayout[2].Offset)
}

func TestQuadTexCoordsFollowPosition(t *testing.T) {
	// t grows with y: the bottom-left corner samples the first row of a
	// bottom-up pixel buffer.
	for _, v := range QuadVertices {
		pos, uv := v.Position(), v.TexCoord()
		assert.Equal(t, pos[0]+0.5, uv[0])
		assert.Equal(t, pos[1]+0.5, uv[1])
	}
	assert.Equal(t, [2]float32{0, 0}, QuadVertices[0].TexCoord())
	assert.Equal(t, [2]float32{1, 1}, QuadVertices[2].TexCoord())
}
