// Package renderer uploads the tube to the device and draws it
package renderer

import (
	"github.com/devblok/playground/device"
	"github.com/devblok/playground/model"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

// Vertex attribute slots, must match the layout in the vertex shader
const (
	PositionAttribute uint32 = iota
	ColorAttribute
	NormalAttribute
)

// componentsPerVertex is the width of every attribute
const componentsPerVertex = 3

// Uniform names consumed by the shader program
const (
	MVPUniform           = "MVP"
	ViewUniform          = "V"
	ModelUniform         = "M"
	LightPositionUniform = "LightPosition_worldspace"
)

// New creates a not yet initialised renderer
func New(dev device.Device, shaders packr.Box, cfg Configuration) *Renderer {
	return &Renderer{
		device:        dev,
		shaders:       shaders,
		configuration: cfg,
	}
}

// Renderer owns the tube's device resources and its transform state.
// It must be used from the thread that owns the graphics context.
type Renderer struct {
	configuration Configuration

	device  device.Device
	shaders packr.Box

	program     *Program
	vertexArray device.VertexArray
	buffers     [3]device.Buffer
	vertexCount int32

	mvpID   device.UniformLocation
	viewID  device.UniformLocation
	modelID device.UniformLocation

	transform model.Uniform

	initialised bool
}

// Initialise loads the shader program, uploads the tube and
// sets up the constant uniforms
func (r *Renderer) Initialise() error {
	r.vertexArray = r.device.CreateVertexArray()
	r.device.BindVertexArray(r.vertexArray)

	program, err := LoadShaders(r.device, r.shaders, r.configuration.VertexShader, r.configuration.FragmentShader)
	if err != nil {
		r.device.DeleteVertexArray(r.vertexArray)
		return err
	}
	r.program = program

	r.mvpID = program.Uniform(MVPUniform)
	r.viewID = program.Uniform(ViewUniform)
	r.modelID = program.Uniform(ModelUniform)

	r.transform = model.NewUniform(r.configuration.Camera)

	tube := model.NewTube(r.configuration.FaceCount)
	r.buffers[PositionAttribute] = r.device.CreateBuffer(tube.Vertices())
	r.buffers[ColorAttribute] = r.device.CreateBuffer(tube.Colors())
	r.buffers[NormalAttribute] = r.device.CreateBuffer(tube.Normals())
	r.vertexCount = tube.VertexCount()

	r.device.SetClearColor(r.configuration.ClearColor)

	// The light never moves, write it once
	program.Use()
	r.device.UniformVector3(program.Uniform(LightPositionUniform), r.configuration.LightPosition)

	r.initialised = true
	log.WithFields(log.Fields{
		"faces":    tube.Faces(),
		"vertices": r.vertexCount,
	}).Info("Tube uploaded")
	return nil
}

// Begin clears the frame and binds the program and the vertex buffers
func (r *Renderer) Begin() {
	r.device.Clear()
	r.device.EnableDepthTest()
	r.program.Use()

	for slot, buffer := range r.buffers {
		r.device.EnableAttribute(uint32(slot), buffer, componentsPerVertex)
	}
}

// Render rotates the tube to angle, pushes the transforms and draws it
func (r *Renderer) Render(angle float32) {
	r.transform.Model = model.RotationY(angle)
	mvp := r.transform.MVP()

	r.device.UniformMatrix4(r.mvpID, mvp)
	r.device.UniformMatrix4(r.modelID, r.transform.Model)
	r.device.UniformMatrix4(r.viewID, r.transform.View)

	r.device.DrawTriangles(0, r.vertexCount)

	for slot := range r.buffers {
		r.device.DisableAttribute(uint32(slot))
	}
}

// Transform returns the current transform state
func (r *Renderer) Transform() model.Uniform {
	return r.transform
}

// Destroy releases the buffers, the vertex array and the program
func (r *Renderer) Destroy() {
	if r == nil || !r.initialised {
		return
	}
	for _, buffer := range r.buffers {
		r.device.DeleteBuffer(buffer)
	}
	r.device.DeleteVertexArray(r.vertexArray)
	r.program.Destroy()
	r.initialised = false
}
