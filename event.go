package ui

// observer is a (callback, weak owner) pair held in an Event's list.
// Observers are removed lazily: a dead owner is skipped at fire time and
// compacted out after dispatch, never eagerly.
type observer[T any] struct {
	owner *Handle
	fn    func(T)
}

// Event is a typed publish/subscribe channel. Observers subscribe with a
// liveness handle for their owner; firing schedules one deferred ticking
// per live observer on the Runner. Observer callbacks never run
// synchronously inside Fire — always on a later scheduler pass.
//
// An Event is typically a field of a longer-lived object and must be
// destroyed with it (see Destroy); tickings that are still in flight when
// the event dies cancel their work cooperatively.
type Event[T any] struct {
	runner    *Runner
	observers []observer[T]
	life      *Handle
}

// NewEvent creates an event channel that schedules dispatch on r.
func NewEvent[T any](r *Runner) *Event[T] {
	return &Event[T]{runner: r, life: NewHandle()}
}

// Observe subscribes fn, scoped to the owner's liveness. Multiple
// subscriptions from the same owner are permitted and fire independently.
// Dispatch order is subscription order.
func (e *Event[T]) Observe(owner *Handle, fn func(T)) {
	e.observers = append(e.observers, observer[T]{owner: owner, fn: fn})
}

// Fire dispatches v to every live observer by scheduling one ticking per
// observer with the Runner. Observers whose owner has died are skipped and
// compacted out of the list afterwards.
//
// The return value reports whether any observer entry existed at call
// time, dead or alive — it reflects the pre-filter state so "did anyone
// care" checks keep working across an owner's death.
func (e *Event[T]) Fire(v T) bool {
	had := len(e.observers) > 0

	for _, obs := range e.observers {
		if !obs.owner.Alive() {
			continue
		}
		fn := obs.fn
		value := v
		e.runner.Add(&eventTicking[T]{
			event: WeakOf(e, e.life),
			task:  NewCallTask(func() { fn(value) }),
		})
	}

	// Lazy garbage collection: drop entries whose owner died, but only
	// here at fire time.
	live := e.observers[:0]
	for _, obs := range e.observers {
		if obs.owner.Alive() {
			live = append(live, obs)
		}
	}
	e.observers = live

	return had
}

// Destroy marks the event dead. Any in-flight dispatch tickings observe
// this on their next frame, cancel their task, and finish. Destroy is
// idempotent.
func (e *Event[T]) Destroy() {
	e.life.Destroy()
}

// Unit is the payload of events that carry no value.
type Unit = struct{}

// FireUnit fires an Event[Unit] without a payload.
func FireUnit(e *Event[Unit]) bool {
	return e.Fire(Unit{})
}

// eventTicking is created per live observer at fire time. Each frame it
// checks that the originating event still exists; if the event died it
// requests cancellation of its task instead of running it.
type eventTicking[T any] struct {
	event    Weak[*Event[T]]
	task     *Task
	finished bool
}

var _ Ticking = (*eventTicking[int])(nil)

func (t *eventTicking[T]) Frame() {
	if t.finished {
		return
	}
	if t.task == nil {
		// The task handle is assigned after the ticking is constructed;
		// if it does not exist yet, defer the decision to the next frame.
		return
	}
	if _, ok := t.event.Get(); !ok {
		t.task.Cancel()
		t.finish()
		return
	}
	if t.task.Frame() {
		t.finish()
	}
}

func (t *eventTicking[T]) Finished() bool {
	return t.finished
}

// finish flips the one-way finished flag. Finishing twice is an invariant
// violation in the scheduler itself, so it fails loudly.
func (t *eventTicking[T]) finish() {
	if t.finished {
		panic("ui: event ticking finished twice")
	}
	t.finished = true
}
