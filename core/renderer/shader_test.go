package renderer_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/devblok/playground/core/renderer"
	"github.com/devblok/playground/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderTypeOf(t *testing.T) {
	cases := map[string]renderer.ShaderType{
		"StandardShading.vertexshader":           renderer.VertexShaderType,
		"shaders/StandardShading.fragmentshader": renderer.FragmentShaderType,
		"cube.vert":                              renderer.VertexShaderType,
		"cube.FRAG":                              renderer.FragmentShaderType,
		"cube.vert.spv":                          renderer.UnknownShaderType,
		"README":                                 renderer.UnknownShaderType,
	}
	for path, want := range cases {
		assert.Equal(t, want, renderer.ShaderTypeOf(path), path)
	}
}

func TestReadShaderFromDisk(t *testing.T) {
	dir, err := ioutil.TempDir("", "shaders")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "StandardShading.vertexshader")
	require.NoError(t, ioutil.WriteFile(path, []byte("// from disk"), 0644))

	source, err := renderer.ReadShader(renderer.BundledShaders, path)
	require.NoError(t, err)
	assert.Equal(t, "// from disk", source)
}

func TestReadShaderFallsBackToBundle(t *testing.T) {
	source, err := renderer.ReadShader(renderer.BundledShaders, "StandardShading.vertexshader")
	require.NoError(t, err)
	assert.Contains(t, source, "#version 330 core")
	assert.Contains(t, source, "uniform mat4 MVP;")

	source, err = renderer.ReadShader(renderer.BundledShaders, "StandardShading.fragmentshader")
	require.NoError(t, err)
	assert.Contains(t, source, "LightPosition_worldspace")
}

func TestReadShaderMissing(t *testing.T) {
	_, err := renderer.ReadShader(renderer.BundledShaders, "Missing.vertexshader")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadShadersRejectsSwappedPaths(t *testing.T) {
	dev := devicetest.NewDevice()

	_, err := renderer.LoadShaders(dev, renderer.BundledShaders,
		"StandardShading.fragmentshader", "StandardShading.vertexshader")
	assert.True(t, errors.Is(err, renderer.ErrShaderType))
	assert.Empty(t, dev.Programs)
}

func TestLoadShadersCompileFailure(t *testing.T) {
	dev := devicetest.NewDevice()
	dev.FailCompile = true

	_, err := renderer.LoadShaders(dev, renderer.BundledShaders,
		"StandardShading.vertexshader", "StandardShading.fragmentshader")
	assert.True(t, errors.Is(err, devicetest.ErrCompile))
}

func TestLoadShaders(t *testing.T) {
	dev := devicetest.NewDevice()

	program, err := renderer.LoadShaders(dev, renderer.BundledShaders,
		"StandardShading.vertexshader", "StandardShading.fragmentshader")
	require.NoError(t, err)
	require.Contains(t, dev.Programs, program.Handle())

	sources := dev.Programs[program.Handle()]
	assert.Contains(t, sources[0], "gl_Position")
	assert.Contains(t, sources[1], "out vec3 color;")

	program.Use()
	assert.Equal(t, []string{"CreateProgram", "UseProgram"}, dev.CallNames())

	program.Destroy()
	assert.Empty(t, dev.Programs)
}

func TestProgramUniformIsResolvedOnce(t *testing.T) {
	dev := devicetest.NewDevice()
	program, err := renderer.LoadShaders(dev, renderer.BundledShaders,
		"StandardShading.vertexshader", "StandardShading.fragmentshader")
	require.NoError(t, err)

	first := program.Uniform("MVP")
	for idx := 0; idx < 10; idx++ {
		assert.Equal(t, first, program.Uniform("MVP"))
	}
	assert.NotEqual(t, first, program.Uniform("V"))

	assert.Equal(t, 1, dev.Lookups["MVP"])
	assert.Equal(t, 1, dev.Lookups["V"])
}

func TestProgramUniformAfterDestroy(t *testing.T) {
	dev := devicetest.NewDevice()
	program, err := renderer.LoadShaders(dev, renderer.BundledShaders,
		"StandardShading.vertexshader", "StandardShading.fragmentshader")
	require.NoError(t, err)

	program.Uniform("MVP")
	program.Destroy()
	assert.Empty(t, dev.Programs)

	assert.NotPanics(t, func() { program.Uniform("MVP") })
	assert.Equal(t, 2, dev.Lookups["MVP"])
}
