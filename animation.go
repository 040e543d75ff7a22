package ui

import "time"

// Animated is a scalar property that can be interpolated over time. It is
// the explicit form of an animated property wrapper: read the current
// value with Value, start an interpolation with Animate, and observe
// progress through the returned handle.
//
// At most one animation ticking runs per Animated at a time; starting a
// new animation cancels the previous ticking, which fires its pending
// completion callback once before being released.
type Animated struct {
	runner  *Runner
	life    *Handle
	value   float64
	current Weak[*animationTicking]
}

// NewAnimated creates an animated property with an initial value.
func NewAnimated(r *Runner, initial float64) *Animated {
	return &Animated{runner: r, life: NewHandle(), value: initial}
}

// Value returns the property's current value.
func (a *Animated) Value() float64 {
	return a.value
}

// Set assigns the value directly. A running animation is cancelled first
// (its completion callback fires once) so the assignment is not overwritten
// by the next frame.
func (a *Animated) Set(v float64) {
	if t, ok := a.current.Get(); ok {
		t.cancel()
	}
	a.value = v
}

// Animate interpolates the property from one value to another over the
// given duration. If an animation is already running it is cancelled first;
// cancellation fires the old animation's completion callback once.
//
// When from == to there is nothing to interpolate: the returned handle is
// already settled, Then callbacks attached to it run synchronously, Observe
// callbacks are ignored, and no ticking is scheduled. This fast path is
// deliberate, not an error.
func (a *Animated) Animate(from, to float64, duration time.Duration, ease Easing) *AnimationHandle {
	if prev, ok := a.current.Get(); ok {
		prev.cancel()
	}
	if from == to {
		a.value = to
		return &AnimationHandle{settled: true}
	}

	t := &animationTicking{
		owner:      WeakOf(a, a.life),
		life:       NewHandle(),
		now:        a.runner.Now,
		startValue: from,
		endValue:   to,
		duration:   duration,
		ease:       ease,
	}
	a.current = WeakOf(t, t.life)
	a.runner.Add(t)
	return &AnimationHandle{ticking: t}
}

// Destroy releases the property. A pending completion callback, if any, is
// invoked once to unblock any waiter, then discarded. Destroy is
// idempotent.
func (a *Animated) Destroy() {
	if t, ok := a.current.Get(); ok {
		t.cancel()
	}
	a.life.Destroy()
}

// AnimationHandle configures callbacks on a started animation.
type AnimationHandle struct {
	settled bool
	ticking *animationTicking
}

// Then registers fn to run once when the animation completes. On the
// from == to fast path fn runs synchronously before Then returns. A
// completion callback also fires when the animation is cancelled by a
// replacement animation on the same property, so waiters are never left
// blocked.
func (h *AnimationHandle) Then(fn func()) *AnimationHandle {
	if h.settled {
		fn()
		return h
	}
	h.ticking.completion = fn
	return h
}

// Observe registers fn to run every tick with the freshly interpolated
// value. Ignored on the from == to fast path.
func (h *AnimationHandle) Observe(fn func(float64)) *AnimationHandle {
	if h.settled {
		return h
	}
	h.ticking.tick = fn
	return h
}

// animationTicking advances one interpolation on the Runner. The Runner
// holds the strong reference; the owning Animated only keeps a weak one,
// guarded by the ticking's own liveness handle, which dies when the
// ticking finishes.
type animationTicking struct {
	owner Weak[*Animated]
	life  *Handle
	now   func() time.Time

	startValue float64
	endValue   float64
	duration   time.Duration
	ease       Easing

	elapsed    time.Duration
	lastSample time.Time
	sampled    bool

	tick       func(float64)
	completion func()
	finished   bool
}

var _ Ticking = (*animationTicking)(nil)

func (t *animationTicking) Frame() {
	if t.finished {
		return
	}
	anim, ok := t.owner.Get()
	if !ok {
		// Owner destroyed; its Destroy already fired the pending
		// completion. Just finish.
		t.retire()
		return
	}

	now := t.now()
	if t.sampled {
		// elapsed is monotonic non-decreasing while running.
		if delta := now.Sub(t.lastSample); delta > 0 {
			t.elapsed += delta
		}
	}
	// The first sample contributes zero delta so the gap between
	// construction and the first frame never produces a jump.
	t.sampled = true
	t.lastSample = now

	done := t.elapsed >= t.duration
	var v float64
	if done {
		// Snap to the exact end value; floating-point drift from the
		// easing function must never leave the property short.
		v = t.endValue
	} else {
		v = t.ease(t.elapsed.Seconds(), t.startValue, t.endValue-t.startValue, t.duration.Seconds())
	}
	anim.value = v
	if t.tick != nil {
		t.tick(v)
		// The tick callback may have started a replacement animation or
		// assigned the property directly, cancelling this ticking. It is
		// already retired then and its completion has fired.
		if t.finished {
			return
		}
	}
	if done {
		// Retire before the completion callback runs: a callback that
		// starts a replacement animation must see this ticking as
		// already gone, not try to cancel it mid-finish.
		t.retire()
		t.fireCompletion()
	}
}

func (t *animationTicking) Finished() bool {
	return t.finished
}

// cancel finishes the ticking early, firing its completion callback once.
// Used when a new animation replaces this one and when the owner is
// destroyed or set directly.
func (t *animationTicking) cancel() {
	if t.finished {
		return
	}
	t.retire()
	t.fireCompletion()
}

// fireCompletion invokes the completion callback exactly once, replacing
// it with nothing so later cancellation or destruction cannot double-fire.
func (t *animationTicking) fireCompletion() {
	if t.completion == nil {
		return
	}
	fn := t.completion
	t.completion = nil
	fn()
}

// retire flips the one-way finished flag and kills the liveness handle the
// owning Animated watches. Retiring twice is a scheduler bug.
func (t *animationTicking) retire() {
	if t.finished {
		panic("ui: animation ticking finished twice")
	}
	t.finished = true
	t.life.Destroy()
}
