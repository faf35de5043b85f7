package core

import (
	"github.com/devblok/playground/core/renderer"
	"github.com/devblok/playground/device"
)

// Configuration defines a global configuration setting
type Configuration struct {
	// Debug lowers the log level to debug
	Debug bool

	Time     TimeConfiguration
	Device   device.Configuration
	Renderer renderer.Configuration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// AngularVelocity is the rotation speed in radians per second
	AngularVelocity float64
}

// DefaultConfiguration is the configuration the demo ships with
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 0,
			AngularVelocity: DefaultAngularVelocity,
		},
		Device:   device.DefaultConfiguration(),
		Renderer: renderer.DefaultConfiguration(),
	}
}
