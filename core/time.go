package core

import (
	"math"
	"time"
)

// DefaultAngularVelocity turns the model a quarter turn per second
const DefaultAngularVelocity = math.Pi / 2

// TimeSource returns monotonic time in seconds
type TimeSource func() float64

// NewClock creates a frame clock reading from source. The first
// Tick measures from time zero of the source.
func NewClock(cfg TimeConfiguration, source TimeSource) *Clock {
	c := &Clock{
		fps:             cfg.FramesPerSecond,
		angularVelocity: cfg.AngularVelocity,
		source:          source,
	}
	if cfg.FramesPerSecond > 0 {
		c.fpsTicker = time.NewTicker(time.Second / time.Duration(cfg.FramesPerSecond))
	}
	return c
}

// Clock tracks frame timing and the rotation angle derived from it.
// It is owned by the frame loop and is not safe for concurrent use.
type Clock struct {
	source TimeSource

	lastFrame float64
	deltaTime float64

	angle           float64
	angularVelocity float64

	fps       int
	fpsTicker *time.Ticker
}

// Tick samples the time source and advances the angle by the elapsed time
func (c *Clock) Tick() float64 {
	currentFrame := c.source()
	c.deltaTime = currentFrame - c.lastFrame
	c.lastFrame = currentFrame

	c.angle += c.deltaTime * c.angularVelocity
	return c.deltaTime
}

// Angle gets the accumulated rotation angle in radians
func (c *Clock) Angle() float32 {
	return float32(c.angle)
}

// DeltaTime gets the time between the last two ticks
func (c *Clock) DeltaTime() float64 {
	return c.deltaTime
}

// LastFrame gets the time of the last tick
func (c *Clock) LastFrame() float64 {
	return c.lastFrame
}

// Fps gets the set frames per second
func (c *Clock) Fps() int {
	return c.fps
}

// FpsTicker gets the initialized fps ticker, nil when uncapped
func (c *Clock) FpsTicker() *time.Ticker {
	return c.fpsTicker
}

// Stop releases the fps ticker
func (c *Clock) Stop() {
	if c.fpsTicker != nil {
		c.fpsTicker.Stop()
	}
}
