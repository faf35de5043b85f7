// Package core wires the window, the renderer and the frame clock
// together and runs the frame loop.
package core

import (
	"github.com/devblok/playground/core/renderer"
	"github.com/devblok/playground/device"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

// Process exit statuses
const (
	ExitSuccess = 0
	ExitFailure = -1
)

// Bootstrap creates the window, its graphics context and the device
// issuing calls against it
type Bootstrap func(device.Configuration) (device.Window, device.Device, error)

// Run bootstraps the context, uploads the scene and draws frames until
// the window asks to close. It returns the process exit status.
// Must be called from the main, locked OS thread.
func Run(cfg Configuration, bootstrap Bootstrap, shaders packr.Box) int {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	window, dev, err := bootstrap(cfg.Device)
	if err != nil {
		log.WithError(err).Error("Bootstrap failed")
		return ExitFailure
	}
	defer window.Destroy()

	info := dev.Info()
	log.WithFields(log.Fields{
		"vendor":   info.Vendor,
		"renderer": info.Renderer,
		"version":  info.Version,
		"glsl":     info.ShadingLanguage,
	}).Info("Graphics context ready")

	scene := renderer.New(dev, shaders, cfg.Renderer)
	if err := scene.Initialise(); err != nil {
		log.WithError(err).Error("Shader program could not be loaded")
		return ExitFailure
	}
	defer scene.Destroy()

	clock := NewClock(cfg.Time, window.Time)
	defer clock.Stop()

	frames := loop(window, scene, clock)
	log.WithFields(log.Fields{
		"frames": frames,
		"angle":  clock.Angle(),
	}).Info("Frame loop exited")
	return ExitSuccess
}

// loop runs frames until the window should close, at least one
func loop(window device.Window, scene *renderer.Renderer, clock *Clock) int {
	var frames int
	for {
		scene.Begin()
		clock.Tick()
		scene.Render(clock.Angle())

		window.SwapBuffers()
		window.PollEvents()
		frames++

		if window.ShouldClose() {
			return frames
		}
		if ticker := clock.FpsTicker(); ticker != nil {
			<-ticker.C
		}
	}
}
