package model_test

import (
	"math"
	"testing"

	"github.com/devblok/playground/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func TestTubeSizes(t *testing.T) {
	for _, faces := range []int{1, 2, 3, 7, model.DefaultFaceCount, 64} {
		tube := model.NewTube(faces)
		want := faces * 18

		assert.Len(t, tube.Vertices(), want, "faces=%d", faces)
		assert.Len(t, tube.Colors(), want, "faces=%d", faces)
		assert.Len(t, tube.Normals(), want, "faces=%d", faces)
		assert.Equal(t, int32(want), tube.VertexCount())
		assert.Equal(t, faces, tube.Faces())
	}
}

func TestTubeFormulas(t *testing.T) {
	for _, faces := range []int{1, 4, model.DefaultFaceCount} {
		tube := model.NewTube(faces)
		vertices, colors, normals := tube.Vertices(), tube.Colors(), tube.Normals()

		for i := 0; i < faces*3; i++ {
			near := 2 * math.Pi * float64(i) / float64(faces)
			far := 2 * math.Pi * float64(i+1) / float64(faces)

			wantVertices := []float64{-1, math.Sin(near), math.Cos(near), 1, math.Sin(far), math.Cos(far)}
			wantColors := []float64{0, 1, 0, 0, 1, 0}
			wantNormals := []float64{0, math.Sin(near), math.Cos(near), 0, math.Sin(far), math.Cos(far)}

			for k := 0; k < 6; k++ {
				idx := i*6 + k
				assert.InDelta(t, wantVertices[k], vertices[idx], tolerance, "vertex faces=%d i=%d k=%d", faces, i, k)
				assert.InDelta(t, wantColors[k], colors[idx], tolerance, "color faces=%d i=%d k=%d", faces, i, k)
				assert.InDelta(t, wantNormals[k], normals[idx], tolerance, "normal faces=%d i=%d k=%d", faces, i, k)
			}
		}
	}
}

func TestTubeXComponents(t *testing.T) {
	tube := model.NewTube(model.DefaultFaceCount)
	vertices, normals := tube.Vertices(), tube.Normals()

	for idx := 0; idx < len(vertices); idx += 3 {
		x := vertices[idx]
		assert.True(t, x == -1 || x == 1, "vertex x at %d is %f", idx, x)
		assert.Equal(t, float32(0), normals[idx], "normal x at %d", idx)
	}
}

func TestTubeNearAndFarEdgesAlternate(t *testing.T) {
	tube := model.NewTube(5)
	vertices := tube.Vertices()

	for idx := 0; idx < len(vertices); idx += 6 {
		require.Equal(t, float32(-1), vertices[idx])
		require.Equal(t, float32(1), vertices[idx+3])
	}
}

func TestTubeIsDeterministic(t *testing.T) {
	a := model.NewTube(model.DefaultFaceCount)
	b := model.NewTube(model.DefaultFaceCount)

	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Colors(), b.Colors())
	assert.Equal(t, a.Normals(), b.Normals())
}

func TestTubeRejectsNoFaces(t *testing.T) {
	assert.Panics(t, func() { model.NewTube(0) })
	assert.Panics(t, func() { model.NewTube(-3) })
}

func BenchmarkNewTubeDefault(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		model.NewTube(model.DefaultFaceCount)
	}
}

func BenchmarkNewTubeBig(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		model.NewTube(10000)
	}
}
