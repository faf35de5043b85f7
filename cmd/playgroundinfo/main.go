package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/playground/device"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := device.DefaultConfiguration()
	cfg.Title = "Playground device info"
	cfg.Hidden = true

	window, dev, err := device.Open(cfg)
	if err != nil {
		log.WithError(err).Error("Bootstrap failed")
		os.Exit(-1)
	}

	bytes, err := json.MarshalIndent(dev.Info(), "", "  ")
	window.Destroy()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)
}
