package renderer

import (
	"github.com/devblok/playground/model"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Configuration describes the renderer configuration
type Configuration struct {
	FaceCount int

	ClearColor    glm.Vec4
	LightPosition glm.Vec3

	// Shader source paths, relative to the working directory
	VertexShader   string
	FragmentShader string

	Camera model.Camera
}

// DefaultConfiguration draws the default tube on a white background
func DefaultConfiguration() Configuration {
	return Configuration{
		FaceCount:      model.DefaultFaceCount,
		ClearColor:     glm.Vec4{1, 1, 1, 0},
		LightPosition:  glm.Vec3{4, 4, 1},
		VertexShader:   "StandardShading.vertexshader",
		FragmentShader: "StandardShading.fragmentshader",
		Camera:         model.DefaultCamera(),
	}
}
