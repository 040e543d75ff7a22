package ui

import "time"

// Runner is the per-application scheduler. It owns the list of active
// tickings, advances each of them once per rendered frame, supports safe
// insertion during a pass, and collects finished entries.
//
// A Runner is constructed by [New] and injected into every component that
// schedules work (Event, Animated). It is deliberately not a package-level
// singleton so tests stay hermetic.
type Runner struct {
	active  []Ticking
	pending []Ticking
	inFrame bool

	// now is the monotonic time source sampled by animation tickings.
	// Injectable so tests can drive synthetic frames.
	now func() time.Time
}

// NewRunner creates an empty scheduler using the wall clock.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Add registers t for per-frame advancement.
//
// A ticking already present in the active or pending list is silently
// ignored; duplicate insertion is not an error. When called during a
// Frame pass, t is staged on the pending list instead: it will not run a
// partial frame in the pass that is already underway, only from the next
// pass onward.
func (r *Runner) Add(t Ticking) {
	if t == nil {
		return
	}
	for _, existing := range r.active {
		if existing == t {
			return
		}
	}
	for _, existing := range r.pending {
		if existing == t {
			return
		}
	}
	if r.inFrame {
		r.pending = append(r.pending, t)
		return
	}
	r.active = append(r.active, t)
}

// Frame advances every active ticking once, in insertion order, then
// splices in tickings staged during the pass and collects finished ones.
// Calling Frame with no active tickings is a no-op.
func (r *Runner) Frame() {
	r.inFrame = true
	for _, t := range r.active {
		t.Frame()
	}

	// Tickings scheduled mid-pass join at the end, preserving fairness:
	// they run their first full frame on the next pass.
	r.active = append(r.active, r.pending...)
	r.pending = r.pending[:0]

	live := r.active[:0]
	collected := 0
	for _, t := range r.active {
		if t.Finished() {
			collected++
			continue
		}
		live = append(live, t)
	}
	r.active = live
	r.inFrame = false

	if collected > 0 {
		Logger().Debug("runner collected finished tickings",
			"collected", collected, "active", len(r.active))
	}
}

// Len returns the number of active tickings. Staged (pending) tickings are
// not counted until the pass that staged them completes.
func (r *Runner) Len() int {
	return len(r.active)
}

// Now returns the current time from the runner's clock.
func (r *Runner) Now() time.Time {
	return r.now()
}

// SetClock replaces the runner's time source. Animations sample this clock;
// tests use it to run synthetic frames at exact timestamps. Passing nil
// restores the wall clock.
func (r *Runner) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.now = now
}
