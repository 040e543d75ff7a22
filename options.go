package ui

import "time"

// Option configures an App during creation.
//
// Example:
//
//	app := ui.New(ui.WithFrameTime(1.0 / 30))
type Option func(*App)

// WithFrameTime sets the frame budget in seconds per frame. The default
// is 1/60. Non-positive values are ignored.
func WithFrameTime(seconds float64) Option {
	return func(a *App) {
		if seconds > 0 {
			a.frameTime = time.Duration(seconds * float64(time.Second))
		}
	}
}

// WithBackground sets the color the loop clears the canvas with at the
// start of every frame. The default is transparent.
func WithBackground(c RGBA) Option {
	return func(a *App) {
		a.background = c
	}
}

// WithClock replaces the application's time source, including the
// Runner's clock used by animations. Tests use this to run synthetic
// frames at exact timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now == nil {
			return
		}
		a.now = now
		a.runner.SetClock(now)
	}
}
