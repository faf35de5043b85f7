package main

import (
	"os"
	"runtime"

	"github.com/devblok/playground/core"
	"github.com/devblok/playground/core/renderer"
	"github.com/devblok/playground/device"
)

func init() {
	runtime.LockOSThread()
}

var configuration = core.DefaultConfiguration()

func main() {
	status := core.Run(configuration, device.Open, renderer.BundledShaders)
	if status != core.ExitSuccess {
		core.WaitForKeypress(os.Stdin, os.Stderr)
	}
	os.Exit(status)
}
