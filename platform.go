package ui

import (
	"errors"
	"image"
)

// ErrNoPlatform is returned by App.RunLoop when no platform is supplied.
var ErrNoPlatform = errors.New("ui: no platform")

// Platform is the windowing/input capability the frame loop consumes. The
// runtime calls Poll once per frame and otherwise treats the platform as
// opaque. Construction of a concrete platform (and its typed failure modes,
// such as no graphics API being available) belongs to backend packages like
// gogpuapp.
type Platform interface {
	// Poll pumps platform events and reports whether exit was requested.
	Poll() (exit bool)

	// Window returns the platform's window.
	Window() Window

	// Canvas returns the drawing surface for the current frame.
	Canvas() Canvas
}

// Window is the surface the frame loop presents to.
type Window interface {
	Width() int
	Height() int
	SwapBuffers()
	MakeContextCurrent()
}

// Canvas is the draw-call surface views paint onto. Implementations wrap a
// vector-graphics backend (see the render package, which wraps gogpu/gg);
// the runtime only issues calls and never inspects results.
type Canvas interface {
	// Clear fills the whole surface with a color.
	Clear(c RGBA)

	// DrawRect fills the rectangle at (x, y) with the given size.
	DrawRect(x, y, w, h float64, p *Paint)

	// DrawImage draws img scaled into the rectangle at (x, y).
	DrawImage(img image.Image, x, y, w, h float64)

	// DrawPaint floods the whole surface with a paint.
	DrawPaint(p *Paint)

	// DrawString draws text with its baseline at (x, y) using the
	// canvas's configured font face.
	DrawString(s string, x, y float64, p *Paint)
}
