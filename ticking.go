package ui

// Ticking is a per-frame unit of advanceable work tracked by the Runner.
//
// Frame is invoked exactly once per scheduler pass while the ticking is not
// finished. Once Finished reports true the Runner removes the ticking at the
// end of the pass and never invokes it again.
//
// The Runner holds the only strong reference to an active ticking; the
// construct that created it (an Event, an Animated) keeps at most a weak
// back-reference.
type Ticking interface {
	// Frame advances the ticking by one scheduler pass.
	Frame()

	// Finished reports whether the ticking is done and should be collected.
	Finished() bool
}
