package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func escape(state uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}, State: state}
}

func TestHandleEventCloseSignal(t *testing.T) {
	cases := []struct {
		name  string
		event sdl.Event
		close bool
	}{
		{"escape pressed", escape(sdl.PRESSED), true},
		{"escape released", escape(sdl.RELEASED), false},
		{"other key pressed", &sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_SPACE}, State: sdl.PRESSED}, false},
		{"quit", &sdl.QuitEvent{}, true},
		{"window close", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_CLOSE}, true},
		{"window resized", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED}, false},
		{"mouse motion", &sdl.MouseMotionEvent{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var w SDLWindow
			assert.False(t, w.ShouldClose())
			w.handleEvent(tc.event)
			assert.Equal(t, tc.close, w.ShouldClose())
		})
	}
}

func TestHandleEventCloseIsSticky(t *testing.T) {
	var w SDLWindow
	w.handleEvent(escape(sdl.PRESSED))
	w.handleEvent(escape(sdl.RELEASED))
	w.handleEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED})
	assert.True(t, w.ShouldClose())

	var q SDLWindow
	q.handleEvent(&sdl.QuitEvent{})
	q.handleEvent(&sdl.KeyboardEvent{Keysym: sdl.Keysym{Sym: sdl.K_a}, State: sdl.RELEASED})
	assert.True(t, q.ShouldClose())
}
