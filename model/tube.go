package model

import (
	"fmt"
	"math"
)

// Tube sizing
const (
	// FloatsPerFace is the number of scalars every attribute array holds per face
	FloatsPerFace = 18

	// DefaultFaceCount is the number of angular subdivisions of the tube
	DefaultFaceCount = 25
)

// Tube is a tube along the X axis, from x=-1 to x=1, approximated by a
// number of side panels. Positions, colours and normals are parallel
// arrays of 3 component vectors, fixed in size at creation.
type Tube struct {
	faces    int
	vertices []float32
	colors   []float32
	normals  []float32
}

// NewTube generates the tube geometry for faces angular subdivisions.
// Each of the faces*3 steps writes two vertices: the near edge at angle
// 2πi/faces and the far edge at 2π(i+1)/faces. Panics if faces < 1.
func NewTube(faces int) *Tube {
	if faces < 1 {
		panic(fmt.Sprintf("model: tube needs at least one face, got %d", faces))
	}

	t := &Tube{
		faces:    faces,
		vertices: make([]float32, faces*FloatsPerFace),
		colors:   make([]float32, faces*FloatsPerFace),
		normals:  make([]float32, faces*FloatsPerFace),
	}

	step := 2 * math.Pi / float64(faces)
	for i := 0; i < faces*3; i++ {
		near := float64(i) * step
		far := float64(i+1) * step
		base := i * 6

		copy(t.vertices[base:base+6], []float32{
			-1, float32(math.Sin(near)), float32(math.Cos(near)),
			1, float32(math.Sin(far)), float32(math.Cos(far)),
		})

		// flat green
		copy(t.colors[base:base+6], []float32{
			0, 1, 0,
			0, 1, 0,
		})

		// radial only, the x component is left out
		copy(t.normals[base:base+6], []float32{
			0, float32(math.Sin(near)), float32(math.Cos(near)),
			0, float32(math.Sin(far)), float32(math.Cos(far)),
		})
	}
	return t
}

// Faces returns the number of angular subdivisions
func (t *Tube) Faces() int {
	return t.faces
}

// VertexCount is the number of vertices handed to a draw call
func (t *Tube) VertexCount() int32 {
	return int32(t.faces * FloatsPerFace)
}

// Vertices returns the positions. The slice must not be modified.
func (t *Tube) Vertices() []float32 {
	return t.vertices
}

// Colors returns the per-vertex colours. The slice must not be modified.
func (t *Tube) Colors() []float32 {
	return t.colors
}

// Normals returns the per-vertex normals. The slice must not be modified.
func (t *Tube) Normals() []float32 {
	return t.normals
}
