package device

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
)

// NewGL loads the OpenGL functions for the context current on the
// calling thread
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: gl.Init(): %v", ErrLoaderInit, err)
	}
	return &GL{}, nil
}

var _ Device = (*GL)(nil)

// GL is an OpenGL 3.3 core device
type GL struct{}

// Info implements interface
func (g *GL) Info() Info {
	return Info{
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// SetClearColor implements interface
func (g *GL) SetClearColor(c glm.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Clear implements interface
func (g *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EnableDepthTest implements interface
func (g *GL) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

// CreateVertexArray implements interface
func (g *GL) CreateVertexArray() VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return VertexArray(vao)
}

// BindVertexArray implements interface
func (g *GL) BindVertexArray(vao VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

// DeleteVertexArray implements interface
func (g *GL) DeleteVertexArray(vao VertexArray) {
	handle := uint32(vao)
	gl.DeleteVertexArrays(1, &handle)
}

// CreateBuffer implements interface
func (g *GL) CreateBuffer(data []float32) Buffer {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return Buffer(buffer)
}

// DeleteBuffer implements interface
func (g *GL) DeleteBuffer(buffer Buffer) {
	handle := uint32(buffer)
	gl.DeleteBuffers(1, &handle)
}

// EnableAttribute implements interface
func (g *GL) EnableAttribute(slot uint32, buffer Buffer, size int32) {
	gl.EnableVertexAttribArray(slot)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	gl.VertexAttribPointer(slot, size, gl.FLOAT, false, 0, nil)
}

// DisableAttribute implements interface
func (g *GL) DisableAttribute(slot uint32) {
	gl.DisableVertexAttribArray(slot)
}

// CreateProgram implements interface
func (g *GL) CreateProgram(vertexSource, fragmentSource string) (Program, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, errors.New("link failed: " + strings.TrimRight(infoLog, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return Program(program), nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(safeString(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, errors.New("compile failed: " + strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

// UseProgram implements interface
func (g *GL) UseProgram(program Program) {
	gl.UseProgram(uint32(program))
}

// DeleteProgram implements interface
func (g *GL) DeleteProgram(program Program) {
	gl.DeleteProgram(uint32(program))
}

// UniformLocation implements interface
func (g *GL) UniformLocation(program Program, name string) UniformLocation {
	return UniformLocation(gl.GetUniformLocation(uint32(program), gl.Str(safeString(name))))
}

// UniformMatrix4 implements interface
func (g *GL) UniformMatrix4(location UniformLocation, m glm.Mat4) {
	gl.UniformMatrix4fv(int32(location), 1, false, &m[0])
}

// UniformVector3 implements interface
func (g *GL) UniformVector3(location UniformLocation, v glm.Vec3) {
	gl.Uniform3f(int32(location), v[0], v[1], v[2])
}

// DrawTriangles implements interface
func (g *GL) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// safeString null terminates s for the C side, unless it already is
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
