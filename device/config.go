package device

// Configuration describes the window and the context it should carry
type Configuration struct {
	Title string

	Width  int32
	Height int32

	// Samples is the multisample anti-aliasing sample count, 0 disables it
	Samples int

	MajorVersion      int
	MinorVersion      int
	ForwardCompatible bool

	// SwapInterval of 1 waits for vertical sync on every swap
	SwapInterval int

	// Hidden creates the window without showing it
	Hidden bool
}

// DefaultConfiguration is a fixed 1024x768 window with a 4x
// multisampled OpenGL 3.3 core context
func DefaultConfiguration() Configuration {
	return Configuration{
		Title:             "Playground",
		Width:             1024,
		Height:            768,
		Samples:           4,
		MajorVersion:      3,
		MinorVersion:      3,
		ForwardCompatible: true,
		SwapInterval:      1,
	}
}
