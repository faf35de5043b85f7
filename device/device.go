// Package device owns the window, the graphics context and the raw
// graphics calls issued against it. Nothing outside this package talks to
// SDL or OpenGL directly.
package device

import (
	"errors"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Bootstrap failures. Every one of them is fatal for the process.
var (
	ErrSystemInit   = errors.New("windowing system initialisation failed")
	ErrWindowCreate = errors.New("window or context creation failed")
	ErrLoaderInit   = errors.New("graphics function loader initialisation failed")
)

// Opaque device resource handles.
type (
	Buffer          uint32
	VertexArray     uint32
	Program         uint32
	UniformLocation int32
)

// Info describes the graphics device behind the current context
type Info struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// Window describes the OS surface the context is bound to.
// All methods must be called from the thread that created it.
type Window interface {
	// Time returns seconds elapsed since the window system was initialised
	Time() float64

	// SwapBuffers presents the back buffer
	SwapBuffers()

	// PollEvents drains pending input events
	PollEvents()

	// ShouldClose reports whether the exit key was pressed or
	// the window was asked to close. Once true it stays true.
	ShouldClose() bool

	// Destroy releases the context and the window
	Destroy()
}

// Device describes the graphics calls used to upload and draw geometry.
// Per-frame calls do not report errors.
type Device interface {
	// Info returns the device description strings
	Info() Info

	SetClearColor(c glm.Vec4)

	// Clear clears both the colour and the depth buffer
	Clear()

	// EnableDepthTest keeps the fragment closest to the camera
	EnableDepthTest()

	CreateVertexArray() VertexArray
	BindVertexArray(VertexArray)
	DeleteVertexArray(VertexArray)

	// CreateBuffer uploads data once into a static buffer
	CreateBuffer(data []float32) Buffer
	DeleteBuffer(Buffer)

	// EnableAttribute binds buffer to the attribute slot as tightly
	// packed, non-normalised groups of size floats
	EnableAttribute(slot uint32, buffer Buffer, size int32)
	DisableAttribute(slot uint32)

	// CreateProgram compiles and links a vertex and fragment shader pair
	CreateProgram(vertexSource, fragmentSource string) (Program, error)
	UseProgram(Program)
	DeleteProgram(Program)

	UniformLocation(program Program, name string) UniformLocation
	UniformMatrix4(location UniformLocation, m glm.Mat4)
	UniformVector3(location UniformLocation, v glm.Vec3)

	// DrawTriangles draws count vertices starting at first as a triangle list
	DrawTriangles(first, count int32)
}

// Open creates the window, its context and loads the graphics functions.
// On failure everything created so far is released.
func Open(cfg Configuration) (Window, Device, error) {
	window, err := NewSDLWindow(cfg)
	if err != nil {
		return nil, nil, err
	}

	gl, err := NewGL()
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}
	return window, gl, nil
}
