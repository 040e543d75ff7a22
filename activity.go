package ui

// Activity is a mounted, stack-managed top-level screen owning one view
// subtree. Its lifecycle moves forward only: unmounted → mounted →
// visible. Content is instantiated exactly once, when the activity is
// pushed onto an App's stack; mounting twice is a programming error.
type Activity struct {
	buildContent func() *View

	content *View
	mounted bool
	visible bool
}

// NewActivity creates an activity whose content tree is built by
// buildContent at mount time.
func NewActivity(buildContent func() *View) *Activity {
	return &Activity{buildContent: buildContent}
}

// mountContent instantiates the content view. Called exactly once, from
// App.Push; the created notification fires only after this returns, so
// observers of creation always see an existing content tree.
func (a *Activity) mountContent() {
	if a.mounted {
		panic("ui: activity mounted twice")
	}
	if a.buildContent == nil {
		panic("ui: activity has no content constructor")
	}
	a.content = a.buildContent()
	a.mounted = true
}

// Content returns the mounted content view, or nil before mounting.
func (a *Activity) Content() *View { return a.content }

// Mounted reports whether the content tree exists.
func (a *Activity) Mounted() bool { return a.mounted }

// Visible reports whether the activity has been drawn at least once.
func (a *Activity) Visible() bool { return a.visible }

// frame sizes the content root to the window and renders it.
func (a *Activity) frame(c Canvas, width, height float64) {
	if !a.mounted {
		return
	}
	root := a.content
	// Only touch the root's constraints when the window actually
	// changed, so a steady window never dirties the tree.
	if root.style.width == nil || *root.style.width != width {
		root.SetWidth(width)
	}
	if root.style.height == nil || *root.style.height != height {
		root.SetHeight(height)
	}
	a.visible = true
	root.Frame(c)
}

// Stack is the application-owned, ordered collection of activities. The
// bottom of the stack is pushed first and drawn first.
type Stack struct {
	activities []*Activity
}

// NewStack creates an empty activity stack.
func NewStack() *Stack {
	return &Stack{}
}

// push appends a to the top of the stack.
func (s *Stack) push(a *Activity) {
	s.activities = append(s.activities, a)
}

// Contains reports whether a is on the stack.
func (s *Stack) Contains(a *Activity) bool {
	for _, existing := range s.activities {
		if existing == a {
			return true
		}
	}
	return false
}

// Len returns the number of activities on the stack.
func (s *Stack) Len() int {
	return len(s.activities)
}

// Activities returns the stack contents in push order. The returned slice
// is a copy; mutating it does not affect the stack.
func (s *Stack) Activities() []*Activity {
	out := make([]*Activity, len(s.activities))
	copy(out, s.activities)
	return out
}
