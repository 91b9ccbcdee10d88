package gfx

const floatSize = 4

// Vertex packs position (3), color (3) and texture coordinate (2).
type Vertex [8]float32

func (v Vertex) Position() [3]float32 { return [3]float32{v[0], v[1], v[2]} }
func (v Vertex) Color() [3]float32    { return [3]float32{v[3], v[4], v[5]} }
func (v Vertex) TexCoord() [2]float32 { return [2]float32{v[6], v[7]} }

// QuadVertices is the unit quad, counter-clockwise from the bottom-left
// corner. Texture coordinates follow GL convention (t grows upwards), which
// is why images are flipped when loaded.
var QuadVertices = [4]Vertex{
	{-0.5, -0.5, 0.0, 1.0, 1.0, 1.0, 0.0, 0.0},
	{0.5, -0.5, 0.0, 1.0, 1.0, 1.0, 1.0, 0.0},
	{0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0},
	{-0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0},
}

// QuadIndices are the two triangles sharing the 0-2 diagonal.
var QuadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

type VertexAttribute struct {
	Location uint32
	Size     int32 // float components
	Offset   int   // bytes from the start of the vertex
}

// VertexStride is the byte distance between consecutive vertices.
const VertexStride = len(Vertex{}) * floatSize

var VertexLayout = []VertexAttribute{
	{Location: 0, Size: 3, Offset: 0},
	{Location: 1, Size: 3, Offset: 3 * floatSize},
	{Location: 2, Size: 2, Offset: 6 * floatSize},
}

// Flatten returns the vertices as one interleaved float slice, ready for
// upload into an array buffer.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*len(Vertex{}))
	for _, v := range vertices {
		out = append(out, v[:]...)
	}
	return out
}
