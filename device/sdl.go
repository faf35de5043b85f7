package device

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// NewSDLWindow initialises SDL, creates a fixed size window and makes
// an OpenGL context matching cfg current on the calling thread
func NewSDLWindow(cfg Configuration) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("%w: sdl.Init(): %v", ErrSystemInit, err)
	}

	if err := setContextAttributes(cfg); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: sdl.GLSetAttribute(): %v", ErrWindowCreate, err)
	}

	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		cfg.Width,
		cfg.Height,
		flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: sdl.CreateWindow(): %v", ErrWindowCreate, err)
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: GL %d.%d context: %v", ErrWindowCreate, cfg.MajorVersion, cfg.MinorVersion, err)
	}

	if err := window.GLMakeCurrent(context); err != nil {
		sdl.GLDeleteContext(context)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: sdl.GLMakeCurrent(): %v", ErrWindowCreate, err)
	}

	if err := sdl.GLSetSwapInterval(cfg.SwapInterval); err != nil {
		// Not every driver lets us choose, the default is still usable
		log.WithError(err).Warn("Swap interval not applied")
	}

	return &SDLWindow{
		window:    window,
		context:   context,
		frequency: float64(sdl.GetPerformanceFrequency()),
		start:     sdl.GetPerformanceCounter(),
	}, nil
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

func setContextAttributes(cfg Configuration) error {
	attributes := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.MajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.MinorVersion},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	if cfg.ForwardCompatible {
		attributes = append(attributes, glAttribute{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	if cfg.Samples > 0 {
		attributes = append(attributes,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, cfg.Samples})
	}

	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

var _ Window = (*SDLWindow)(nil)

// SDLWindow is an SDL2 window with a current OpenGL context
type SDLWindow struct {
	window  *sdl.Window
	context sdl.GLContext

	frequency float64
	start     uint64

	escapePressed  bool
	closeRequested bool
}

// Time implements interface
func (w *SDLWindow) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-w.start) / w.frequency
}

// SwapBuffers implements interface
func (w *SDLWindow) SwapBuffers() {
	w.window.GLSwap()
}

// PollEvents implements interface
func (w *SDLWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		w.handleEvent(event)
	}
}

// handleEvent latches the close signal on an Escape press, a quit event
// or a window close. Once set it is never cleared.
func (w *SDLWindow) handleEvent(event sdl.Event) {
	switch et := event.(type) {
	case *sdl.KeyboardEvent:
		if et.Keysym.Sym == sdl.K_ESCAPE && et.State == sdl.PRESSED {
			w.escapePressed = true
		}
	case *sdl.WindowEvent:
		if et.Event == sdl.WINDOWEVENT_CLOSE {
			w.closeRequested = true
		}
	case *sdl.QuitEvent:
		w.closeRequested = true
	}
}

// ShouldClose implements interface
func (w *SDLWindow) ShouldClose() bool {
	return w.escapePressed || w.closeRequested
}

// Destroy implements interface
func (w *SDLWindow) Destroy() {
	if w == nil {
		return
	}
	sdl.GLDeleteContext(w.context)
	if err := w.window.Destroy(); err != nil {
		log.WithError(err).Warn("Window destroy failed")
	}
	sdl.Quit()
}
