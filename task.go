package ui

// TaskState is the lifecycle of a cooperatively cancellable task.
// Transitions only move forward: Running → CancelRequested → Cancelling →
// Finished, or Running → Finished on natural completion.
type TaskState int

const (
	// TaskRunning means the task's work is stepped each frame.
	TaskRunning TaskState = iota

	// TaskCancelRequested means Cancel was called; the work will not be
	// stepped again. The state lingers one frame so in-flight work can
	// observe the request at its own pace.
	TaskCancelRequested

	// TaskCancelling is the drain frame between request and completion.
	TaskCancelling

	// TaskFinished means the task is complete (naturally or by
	// cancellation) and will never be stepped again.
	TaskFinished
)

// String returns the state name for logs and test failures.
func (s TaskState) String() string {
	switch s {
	case TaskRunning:
		return "running"
	case TaskCancelRequested:
		return "cancel-requested"
	case TaskCancelling:
		return "cancelling"
	case TaskFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Task wraps a unit of deferred work (typically an observer callback) in a
// cooperatively cancellable handle. The work is a step function polled once
// per frame until it reports completion.
//
// Cancellation is cooperative only: Cancel sets a flag, and the state
// machine winds down over the following frames. There is no forced
// preemption, and a step already in flight runs to the end of its frame.
type Task struct {
	state TaskState
	step  func() bool
}

// NewTask creates a task around a step function. The step is invoked once
// per frame while the task is running; it returns true when the work is
// complete.
func NewTask(step func() bool) *Task {
	return &Task{step: step}
}

// NewCallTask creates a one-shot task that invokes fn on its first frame
// and then finishes.
func NewCallTask(fn func()) *Task {
	return NewTask(func() bool {
		fn()
		return true
	})
}

// State returns the task's current lifecycle state.
func (t *Task) State() TaskState {
	return t.state
}

// Cancel requests cooperative cancellation. It only has an effect on a
// running task; requesting cancellation again, or cancelling a finished
// task, is a no-op.
func (t *Task) Cancel() {
	if t.state == TaskRunning {
		t.state = TaskCancelRequested
	}
}

// Frame advances the state machine by one poll and reports whether the
// task is finished. A running task is stepped; a cancel-requested task
// drains without being stepped again.
func (t *Task) Frame() bool {
	switch t.state {
	case TaskRunning:
		if t.step == nil || t.step() {
			t.state = TaskFinished
		}
	case TaskCancelRequested:
		t.state = TaskCancelling
	case TaskCancelling:
		t.state = TaskFinished
	}
	return t.state == TaskFinished
}

// Finished reports whether the task has reached its terminal state.
func (t *Task) Finished() bool {
	return t.state == TaskFinished
}
