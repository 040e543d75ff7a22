package ui

import "testing"

// stubTicking records its frames and finishes after a configurable number
// of passes. An onFrame hook supports re-entrancy tests.
type stubTicking struct {
	name        string
	frames      int
	finishAfter int // 0 means never finish
	finished    bool
	onFrame     func()
}

var _ Ticking = (*stubTicking)(nil)

func (s *stubTicking) Frame() {
	s.frames++
	if s.onFrame != nil {
		s.onFrame()
	}
	if s.finishAfter > 0 && s.frames >= s.finishAfter {
		s.finished = true
	}
}

func (s *stubTicking) Finished() bool { return s.finished }

func TestRunnerInvokesInInsertionOrder(t *testing.T) {
	r := NewRunner()
	var order []string
	mk := func(name string) *stubTicking {
		s := &stubTicking{name: name}
		s.onFrame = func() { order = append(order, name) }
		return s
	}
	a, b, c := mk("a"), mk("b"), mk("c")
	r.Add(a)
	r.Add(b)
	r.Add(c)

	r.Frame()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("got %d invocations, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("invocation %d = %q, want %q", i, order[i], want[i])
		}
	}
	if a.frames != 1 || b.frames != 1 || c.frames != 1 {
		t.Errorf("each ticking must run exactly once per pass: %d %d %d",
			a.frames, b.frames, c.frames)
	}
}

func TestRunnerReentrantAddWaitsForNextPass(t *testing.T) {
	r := NewRunner()
	inner := &stubTicking{name: "inner"}
	outer := &stubTicking{name: "outer"}
	outer.onFrame = func() { r.Add(inner) }
	r.Add(outer)

	r.Frame()
	if inner.frames != 0 {
		t.Fatal("ticking added mid-pass must not run in the same pass")
	}
	if r.Len() != 2 {
		t.Fatalf("active = %d after pass, want 2 (outer + spliced inner)", r.Len())
	}

	r.Frame()
	if inner.frames != 1 {
		t.Fatalf("inner frames = %d after second pass, want 1", inner.frames)
	}
}

func TestRunnerCollectsFinished(t *testing.T) {
	r := NewRunner()
	a := &stubTicking{name: "a", finishAfter: 1}
	b := &stubTicking{name: "b"}
	c := &stubTicking{name: "c", finishAfter: 1}
	d := &stubTicking{name: "d"}
	for _, s := range []*stubTicking{a, b, c, d} {
		r.Add(s)
	}

	r.Frame()
	if r.Len() != 2 {
		t.Fatalf("active = %d, want 2 survivors", r.Len())
	}

	// Survivors keep their relative order and finished entries never run
	// again.
	var order []string
	b.onFrame = func() { order = append(order, "b") }
	d.onFrame = func() { order = append(order, "d") }
	r.Frame()
	if len(order) != 2 || order[0] != "b" || order[1] != "d" {
		t.Errorf("second pass order = %v, want [b d]", order)
	}
	if a.frames != 1 || c.frames != 1 {
		t.Errorf("finished tickings ran again: a=%d c=%d", a.frames, c.frames)
	}
}

func TestRunnerRejectsDuplicates(t *testing.T) {
	r := NewRunner()
	s := &stubTicking{}
	r.Add(s)
	r.Add(s) // silently ignored
	r.Frame()
	if s.frames != 1 {
		t.Fatalf("duplicate add must not double-run: frames = %d", s.frames)
	}

	// Also across the pending list during a pass.
	outer := &stubTicking{}
	outer.onFrame = func() {
		r.Add(s)
		r.Add(s)
	}
	r.Add(outer)
	r.Frame()
	r.Frame()
	if s.frames != 3 { // one per pass since the first
		t.Fatalf("frames = %d, want 3", s.frames)
	}
}

func TestRunnerEmptyFrameIsNoop(t *testing.T) {
	r := NewRunner()
	r.Frame() // must not panic
	if r.Len() != 0 {
		t.Fatal("empty runner should stay empty")
	}
}

func TestRunnerIgnoresNil(t *testing.T) {
	r := NewRunner()
	r.Add(nil)
	if r.Len() != 0 {
		t.Fatal("nil ticking must be ignored")
	}
	r.Frame()
}
