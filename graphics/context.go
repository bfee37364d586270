package graphics

import "errors"

// ErrContextUnavailable is returned when no OpenGL context could be acquired.
// It is the one failure the program treats as "nothing to draw".
var ErrContextUnavailable = errors.New("graphics context unavailable")

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// SetTitle replaces the window caption, used for the control strip.
	SetTitle(title string)
}
