// Package model holds the geometry and the transforms that place it on screen.
package model

import (
	"math"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Uniform defines a model-view-projection object.
// Projection and View are set once, Model changes every frame.
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// NewUniform returns the transform state for camera with an identity Model
func NewUniform(camera Camera) Uniform {
	return Uniform{
		Model:      glm.Ident4(),
		View:       camera.View(),
		Projection: camera.Projection(),
	}
}

// MVP composes Projection * View * Model, mapping model space to clip space
func (u Uniform) MVP() glm.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}

// RotationY returns a rotation about the Y axis by angle radians.
// Layout is column-major: {c,0,s,0, 0,1,0,0, -s,0,c,0, 0,0,0,1}.
func RotationY(angle float32) glm.Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return glm.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Camera describes a perspective camera looking at a fixed point
type Camera struct {
	// FieldOfView is the vertical field of view in degrees
	FieldOfView float32
	Aspect      float32
	Near        float32
	Far         float32

	Eye    glm.Vec3
	Center glm.Vec3
	Up     glm.Vec3
}

// DefaultCamera sits at (4,3,3) looking at the origin through a 45 degree 4:3 lens
func DefaultCamera() Camera {
	return Camera{
		FieldOfView: 45,
		Aspect:      4.0 / 3.0,
		Near:        0.1,
		Far:         100,
		Eye:         glm.Vec3{4, 3, 3},
		Center:      glm.Vec3{0, 0, 0},
		Up:          glm.Vec3{0, 1, 0},
	}
}

// Projection implements the perspective projection matrix
func (c Camera) Projection() glm.Mat4 {
	return glm.Perspective(glm.DegToRad(c.FieldOfView), c.Aspect, c.Near, c.Far)
}

// View implements the camera matrix
func (c Camera) View() glm.Mat4 {
	return glm.LookAtV(c.Eye, c.Center, c.Up)
}
