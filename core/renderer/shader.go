package renderer

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/devblok/playground/device"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

// BundledShaders holds the shader sources shipped with the binary
var BundledShaders = packr.NewBox("../../shaders")

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

func (s ShaderType) String() string {
	switch s {
	case VertexShaderType:
		return "vertex"
	case FragmentShaderType:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderTypeOf tells the shader type from the file name suffix
func ShaderTypeOf(path string) ShaderType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vertexshader", ".vert":
		return VertexShaderType
	case ".fragmentshader", ".frag":
		return FragmentShaderType
	default:
		return UnknownShaderType
	}
}

// ErrShaderType is returned when a shader file is passed in the wrong slot
var ErrShaderType = errors.New("unexpected shader type")

// ReadShader reads the shader source at path, relative to the working
// directory. When there is no such file the copy in box is used instead.
func ReadShader(box packr.Box, path string) (string, error) {
	contents, err := ioutil.ReadFile(path)
	if err == nil {
		return string(contents), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	name := filepath.Base(path)
	if !box.Has(name) {
		return "", err
	}
	log.WithField("shader", name).Debug("Using bundled shader")
	return box.FindString(name)
}

// LoadShaders reads, compiles and links a vertex and fragment shader pair
func LoadShaders(dev device.Device, box packr.Box, vertexPath, fragmentPath string) (*Program, error) {
	sources := make([]string, 2)
	for idx, shader := range []struct {
		path string
		typ  ShaderType
	}{
		{vertexPath, VertexShaderType},
		{fragmentPath, FragmentShaderType},
	} {
		if got := ShaderTypeOf(shader.path); got != shader.typ {
			return nil, fmt.Errorf("%w: %s is a %s shader, want %s", ErrShaderType, shader.path, got, shader.typ)
		}

		source, err := ReadShader(box, shader.path)
		if err != nil {
			return nil, fmt.Errorf("read %s shader: %w", shader.typ, err)
		}
		sources[idx] = source
	}

	handle, err := dev.CreateProgram(sources[0], sources[1])
	if err != nil {
		return nil, fmt.Errorf("program %s + %s: %w", vertexPath, fragmentPath, err)
	}

	return &Program{
		device:   dev,
		handle:   handle,
		uniforms: make(map[string]device.UniformLocation),
	}, nil
}

// Program is a linked shader program. Uniform locations are resolved
// once and cached for as long as the program lives.
type Program struct {
	device   device.Device
	handle   device.Program
	uniforms map[string]device.UniformLocation
}

// Handle returns the device program handle
func (p *Program) Handle() device.Program {
	return p.handle
}

// Use makes the program current for uniform writes and draws
func (p *Program) Use() {
	p.device.UseProgram(p.handle)
}

// Uniform resolves the named uniform location
func (p *Program) Uniform(name string) device.UniformLocation {
	if location, ok := p.uniforms[name]; ok {
		return location
	}
	location := p.device.UniformLocation(p.handle, name)
	if location < 0 {
		log.WithField("uniform", name).Warn("Uniform not active in program")
	}
	p.uniforms[name] = location
	return location
}

// Destroy releases the program
func (p *Program) Destroy() {
	p.device.DeleteProgram(p.handle)
	p.uniforms = make(map[string]device.UniformLocation)
}
