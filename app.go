package ui

import "time"

// KeyEvent is a key press delivered by the platform backend.
type KeyEvent struct {
	Key       int
	Modifiers int
}

// App owns everything with application lifetime: the Runner, the activity
// stack, the lifecycle events, and the frame loop configuration. It is the
// explicit context object every scheduling component hangs off — there is
// no hidden global.
type App struct {
	runner  *Runner
	stack   *Stack
	created *Event[*Activity]
	input   *Event[KeyEvent]

	// content is an optional base layer drawn under the activity stack.
	content *View

	frameTime  time.Duration
	background RGBA
	exitHooks  []func()
	exited     bool

	// Injectable time hooks keep the loop testable.
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates an application with a fresh Runner and an empty activity
// stack. The default frame time is 1/60 s.
func New(opts ...Option) *App {
	a := &App{
		runner:    NewRunner(),
		stack:     NewStack(),
		frameTime: time.Second / 60,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	a.created = NewEvent[*Activity](a.runner)
	a.input = NewEvent[KeyEvent](a.runner)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Runner returns the application's scheduler.
func (a *App) Runner() *Runner { return a.runner }

// Stack returns the activity stack.
func (a *App) Stack() *Stack { return a.stack }

// Created is fired with each activity after its content tree is mounted.
func (a *App) Created() *Event[*Activity] { return a.created }

// Input is fired by platform backends for key presses.
func (a *App) Input() *Event[KeyEvent] { return a.input }

// FrameTime returns the configured seconds-per-frame budget.
func (a *App) FrameTime() time.Duration { return a.frameTime }

// SetContent installs an optional content layer drawn under the activity
// stack each frame.
func (a *App) SetContent(v *View) { a.content = v }

// Push mounts an activity's content and places it on top of the stack.
// The created event fires only after mounting, so observers can rely on
// the content tree existing.
func (a *App) Push(act *Activity) {
	act.mountContent()
	a.stack.push(act)
	a.created.Fire(act)
	Logger().Info("activity mounted", "stack", a.stack.Len())
}

// OnExit registers a hook run once when the platform requests exit.
func (a *App) OnExit(fn func()) {
	a.exitHooks = append(a.exitHooks, fn)
}

// Exit runs the exit hooks. Safe to call more than once; hooks run once.
func (a *App) Exit() {
	if a.exited {
		return
	}
	a.exited = true
	for _, fn := range a.exitHooks {
		fn()
	}
}

// Step renders one frame onto c at the given surface size and then
// advances the Runner. Backends that own their own pacing and buffer
// swapping (gogpuapp) call Step from their per-frame callback; tests call
// it directly.
func (a *App) Step(c Canvas, width, height float64) {
	a.renderLayers(c, width, height)
	a.runner.Frame()
}

func (a *App) renderLayers(c Canvas, width, height float64) {
	if a.content != nil {
		root := a.content
		if root.style.width == nil || *root.style.width != width {
			root.SetWidth(width)
		}
		if root.style.height == nil || *root.style.height != height {
			root.SetHeight(height)
		}
		root.Frame(c)
	}
	for _, act := range a.stack.activities {
		act.frame(c, width, height)
	}
}

// RunLoop drives the application against a polling platform: poll for
// exit, lay out and draw every layer, swap buffers, advance the Runner,
// then sleep off whatever remains of the frame budget. The sleep is
// skipped when a frame overruns its budget.
//
// The loop is single-threaded and cooperative; it returns nil after the
// platform requests exit and the exit hooks have run.
func (a *App) RunLoop(p Platform) error {
	if p == nil {
		return ErrNoPlatform
	}
	win := p.Window()
	win.MakeContextCurrent()
	Logger().Info("frame loop started", "frame_time", a.frameTime)

	for {
		start := a.now()
		if p.Poll() {
			a.Exit()
			Logger().Info("frame loop stopped")
			return nil
		}

		c := p.Canvas()
		c.Clear(a.background)
		a.renderLayers(c, float64(win.Width()), float64(win.Height()))
		win.SwapBuffers()

		a.runner.Frame()

		elapsed := a.now().Sub(start)
		if rest := a.frameTime - elapsed; rest > 0 {
			a.sleep(rest)
		} else {
			Logger().Debug("frame budget overrun",
				"elapsed", elapsed, "budget", a.frameTime)
		}
	}
}
