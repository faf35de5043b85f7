// Package devicetest provides recording implementations of the device
// interfaces for tests that run without a display or a GPU.
package devicetest

import (
	"errors"
	"fmt"

	"github.com/devblok/playground/device"
	glm "github.com/go-gl/mathgl/mgl32"
)

// ErrCompile is returned by CreateProgram when Device.FailCompile is set
var ErrCompile = errors.New("devicetest: compile failed")

// Call is one recorded device call
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

var (
	_ device.Device = (*Device)(nil)
	_ device.Window = (*Window)(nil)
)

// Device records every call made to it and hands out increasing handles.
// Deleted handles are tracked so leaks can be asserted.
type Device struct {
	Calls []Call

	// FailCompile makes CreateProgram fail
	FailCompile bool

	Buffers      map[device.Buffer][]float32
	VertexArrays map[device.VertexArray]bool
	Programs     map[device.Program][2]string
	Uniforms     map[device.UniformLocation]interface{}

	Locations map[string]device.UniformLocation
	Lookups   map[string]int

	nextHandle uint32
}

// NewDevice returns an empty recording device
func NewDevice() *Device {
	return &Device{
		Buffers:      make(map[device.Buffer][]float32),
		VertexArrays: make(map[device.VertexArray]bool),
		Programs:     make(map[device.Program][2]string),
		Uniforms:     make(map[device.UniformLocation]interface{}),
		Locations:    make(map[string]device.UniformLocation),
		Lookups:      make(map[string]int),
	}
}

func (d *Device) record(name string, args ...interface{}) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

// CallNames returns the recorded call names in order
func (d *Device) CallNames() []string {
	names := make([]string, len(d.Calls))
	for idx, call := range d.Calls {
		names[idx] = call.Name
	}
	return names
}

// Reset forgets the recorded calls, live resources are kept
func (d *Device) Reset() {
	d.Calls = nil
}

// Info implements interface
func (d *Device) Info() device.Info {
	return device.Info{
		Vendor:          "devicetest",
		Renderer:        "recorder",
		Version:         "3.3",
		ShadingLanguage: "3.30",
	}
}

// SetClearColor implements interface
func (d *Device) SetClearColor(c glm.Vec4) {
	d.record("SetClearColor", c)
}

// Clear implements interface
func (d *Device) Clear() {
	d.record("Clear")
}

// EnableDepthTest implements interface
func (d *Device) EnableDepthTest() {
	d.record("EnableDepthTest")
}

// CreateVertexArray implements interface
func (d *Device) CreateVertexArray() device.VertexArray {
	vao := device.VertexArray(d.handle())
	d.VertexArrays[vao] = true
	d.record("CreateVertexArray", vao)
	return vao
}

// BindVertexArray implements interface
func (d *Device) BindVertexArray(vao device.VertexArray) {
	d.record("BindVertexArray", vao)
}

// DeleteVertexArray implements interface
func (d *Device) DeleteVertexArray(vao device.VertexArray) {
	delete(d.VertexArrays, vao)
	d.record("DeleteVertexArray", vao)
}

// CreateBuffer implements interface
func (d *Device) CreateBuffer(data []float32) device.Buffer {
	buffer := device.Buffer(d.handle())
	d.Buffers[buffer] = append([]float32(nil), data...)
	d.record("CreateBuffer", buffer, len(data))
	return buffer
}

// DeleteBuffer implements interface
func (d *Device) DeleteBuffer(buffer device.Buffer) {
	delete(d.Buffers, buffer)
	d.record("DeleteBuffer", buffer)
}

// EnableAttribute implements interface
func (d *Device) EnableAttribute(slot uint32, buffer device.Buffer, size int32) {
	d.record("EnableAttribute", slot, buffer, size)
}

// DisableAttribute implements interface
func (d *Device) DisableAttribute(slot uint32) {
	d.record("DisableAttribute", slot)
}

// CreateProgram implements interface
func (d *Device) CreateProgram(vertexSource, fragmentSource string) (device.Program, error) {
	if d.FailCompile {
		d.record("CreateProgram", false)
		return 0, ErrCompile
	}
	program := device.Program(d.handle())
	d.Programs[program] = [2]string{vertexSource, fragmentSource}
	d.record("CreateProgram", program)
	return program, nil
}

// UseProgram implements interface
func (d *Device) UseProgram(program device.Program) {
	d.record("UseProgram", program)
}

// DeleteProgram implements interface
func (d *Device) DeleteProgram(program device.Program) {
	delete(d.Programs, program)
	d.record("DeleteProgram", program)
}

// UniformLocation implements interface. Every distinct name gets its
// own location, the number of lookups per name is counted.
func (d *Device) UniformLocation(program device.Program, name string) device.UniformLocation {
	d.Lookups[name]++
	location, ok := d.Locations[name]
	if !ok {
		location = device.UniformLocation(len(d.Locations))
		d.Locations[name] = location
	}
	d.record("UniformLocation", program, name)
	return location
}

// UniformMatrix4 implements interface
func (d *Device) UniformMatrix4(location device.UniformLocation, m glm.Mat4) {
	d.Uniforms[location] = m
	d.record("UniformMatrix4", location, m)
}

// UniformVector3 implements interface
func (d *Device) UniformVector3(location device.UniformLocation, v glm.Vec3) {
	d.Uniforms[location] = v
	d.record("UniformVector3", location, v)
}

// DrawTriangles implements interface
func (d *Device) DrawTriangles(first, count int32) {
	d.record("DrawTriangles", first, count)
}

// Matrix returns the last matrix written to the named uniform
func (d *Device) Matrix(name string) (glm.Mat4, bool) {
	location, ok := d.Locations[name]
	if !ok {
		return glm.Mat4{}, false
	}
	m, ok := d.Uniforms[location].(glm.Mat4)
	return m, ok
}

// Vector returns the last vector written to the named uniform
func (d *Device) Vector(name string) (glm.Vec3, bool) {
	location, ok := d.Locations[name]
	if !ok {
		return glm.Vec3{}, false
	}
	v, ok := d.Uniforms[location].(glm.Vec3)
	return v, ok
}

// Window is a scripted window. Time returns the scripted timestamps in
// order, repeating the last one once they run out.
type Window struct {
	Times []float64

	// CloseAfter makes ShouldClose report true once PollEvents was
	// called that many times, 0 never closes
	CloseAfter int

	Polls     int
	Swaps     int
	Destroyed bool

	// OnPoll is called from PollEvents after the poll was counted
	OnPoll func(polls int)

	// OnDestroy is called from Destroy
	OnDestroy func()

	closed bool
	sample int
}

// Time implements interface
func (w *Window) Time() float64 {
	if len(w.Times) == 0 {
		return 0
	}
	if w.sample >= len(w.Times) {
		return w.Times[len(w.Times)-1]
	}
	t := w.Times[w.sample]
	w.sample++
	return t
}

// SwapBuffers implements interface
func (w *Window) SwapBuffers() {
	w.Swaps++
}

// PollEvents implements interface
func (w *Window) PollEvents() {
	w.Polls++
	if w.CloseAfter > 0 && w.Polls >= w.CloseAfter {
		w.closed = true
	}
	if w.OnPoll != nil {
		w.OnPoll(w.Polls)
	}
}

// RequestClose raises the close signal, as the exit key or the window
// close button would
func (w *Window) RequestClose() {
	w.closed = true
}

// ShouldClose implements interface
func (w *Window) ShouldClose() bool {
	return w.closed
}

// Destroy implements interface
func (w *Window) Destroy() {
	w.Destroyed = true
	if w.OnDestroy != nil {
		w.OnDestroy()
	}
}
