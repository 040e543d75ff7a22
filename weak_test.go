package ui

import "testing"

func TestHandleLiveness(t *testing.T) {
	h := NewHandle()
	if !h.Alive() {
		t.Fatal("new handle should be alive")
	}
	h.Destroy()
	if h.Alive() {
		t.Fatal("destroyed handle should be dead")
	}
	// Idempotent.
	h.Destroy()
	if h.Alive() {
		t.Fatal("double destroy should stay dead")
	}
}

func TestNilHandleNeverAlive(t *testing.T) {
	var h *Handle
	if h.Alive() {
		t.Fatal("nil handle must not be alive")
	}
	h.Destroy() // must not panic
}

func TestWeakGet(t *testing.T) {
	h := NewHandle()
	value := 42
	w := WeakOf(&value, h)

	got, ok := w.Get()
	if !ok || got == nil || *got != 42 {
		t.Fatalf("Get() = (%v, %v), want (&42, true)", got, ok)
	}

	h.Destroy()
	got, ok = w.Get()
	if ok || got != nil {
		t.Fatalf("Get() after destroy = (%v, %v), want (nil, false)", got, ok)
	}
	if w.Alive() {
		t.Fatal("weak reference should report dead owner")
	}
}

func TestWeakZeroValue(t *testing.T) {
	var w Weak[int]
	if _, ok := w.Get(); ok {
		t.Fatal("zero-value weak reference must be dead")
	}
}
