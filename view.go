package ui

// Direction selects the main layout axis of a view's children.
type Direction int

const (
	// Row lays children out left to right.
	Row Direction = iota
	// Column lays children out top to bottom.
	Column
)

// Box is a solved local layout box: offsets relative to the parent plus
// the resolved size.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// style holds the declared layout constraints of a view. The solver reads
// these; the computed geometry lives on the View itself.
type style struct {
	width     *float64
	height    *float64
	minWidth  *float64
	minHeight *float64
	grow      float64
	direction Direction
}

// View is a node in the parent-linked layout and draw tree.
//
// Geometry (X, Y, Width, Height) is computed, never set directly: the only
// mutation path is layout propagation from the root. Invalidation always
// delegates upward, so the root's dirty flag is the single source of truth
// for "does this tree need relayout".
//
// A view's parent is set at most once, when it is added as a child;
// re-parenting is a programming error and panics.
type View struct {
	parent   *View
	children []*View

	x, y          float64
	width, height float64
	dirty         bool

	style  style
	solved Box
	solver Solver

	background *Paint
	draw       func(*View, Canvas)
}

// NewView creates an empty view with automatic sizing.
func NewView() *View {
	return &View{dirty: true}
}

// AddChild appends c to the view's children and parents it. A view that
// already has a parent cannot be added again anywhere; that is a bug in
// application code, not a recoverable condition.
func (v *View) AddChild(c *View) {
	if c.parent != nil {
		panic("ui: view already has a parent")
	}
	c.parent = v
	v.children = append(v.children, c)
	v.InvalidateLayout()
}

// Parent returns the view's parent, or nil for a root.
func (v *View) Parent() *View { return v.parent }

// Children returns the view's children in insertion order. The returned
// slice is the view's own; callers must not mutate it.
func (v *View) Children() []*View { return v.children }

// X returns the computed absolute horizontal position.
func (v *View) X() float64 { return v.x }

// Y returns the computed absolute vertical position.
func (v *View) Y() float64 { return v.y }

// Width returns the computed width.
func (v *View) Width() float64 { return v.width }

// Height returns the computed height.
func (v *View) Height() float64 { return v.height }

// Dirty reports whether the view is marked for relayout. Only roots carry
// a meaningful dirty flag.
func (v *View) Dirty() bool { return v.dirty }

// SetWidth pins the width to a fixed number of DIPs.
func (v *View) SetWidth(dip float64) {
	v.style.width = &dip
	v.InvalidateLayout()
}

// SetHeight pins the height to a fixed number of DIPs.
func (v *View) SetHeight(dip float64) {
	v.style.height = &dip
	v.InvalidateLayout()
}

// SetMinWidth enforces a lower bound on the solved width.
func (v *View) SetMinWidth(dip float64) {
	v.style.minWidth = &dip
	v.InvalidateLayout()
}

// SetMinHeight enforces a lower bound on the solved height.
func (v *View) SetMinHeight(dip float64) {
	v.style.minHeight = &dip
	v.InvalidateLayout()
}

// ClearWidth reverts to automatic width, dropping both the fixed value and
// any enforced minimum.
func (v *View) ClearWidth() {
	v.style.width = nil
	v.style.minWidth = nil
	v.InvalidateLayout()
}

// ClearHeight reverts to automatic height, dropping both the fixed value
// and any enforced minimum.
func (v *View) ClearHeight() {
	v.style.height = nil
	v.style.minHeight = nil
	v.InvalidateLayout()
}

// SetGrow sets the view's share of its parent's remaining main-axis space.
// 1 on every sibling splits the space evenly.
func (v *View) SetGrow(f float64) {
	v.style.grow = f
	v.InvalidateLayout()
}

// SetDirection sets the main axis for this view's children.
func (v *View) SetDirection(d Direction) {
	v.style.direction = d
	v.InvalidateLayout()
}

// SetBackground sets the paint used to fill the view's box before any
// custom drawing.
func (v *View) SetBackground(p *Paint) {
	v.background = p
}

// SetDraw installs a custom draw hook invoked after the background fill,
// with layout already applied.
func (v *View) SetDraw(fn func(*View, Canvas)) {
	v.draw = fn
}

// SetSolver overrides the layout solver used when this view is the root of
// its tree. The default is the built-in flexbox-subset solver.
func (v *View) SetSolver(s Solver) {
	v.solver = s
	v.InvalidateLayout()
}

// InvalidateLayout marks the tree for relayout. A non-root view delegates
// upward; only the view without a parent actually flips its dirty flag.
func (v *View) InvalidateLayout() {
	if v.parent != nil {
		v.parent.InvalidateLayout()
		return
	}
	v.dirty = true
}

// Layout recomputes the geometry of the whole tree. Only the root performs
// layout; calling Layout on a non-root view is a no-op. The root hands the
// tree to the solver and then propagates the solved boxes downward from
// origin (0, 0).
func (v *View) Layout() {
	if v.parent != nil {
		return
	}
	solver := v.solver
	if solver == nil {
		solver = defaultSolver
	}
	availW := v.width
	availH := v.height
	if v.style.width != nil {
		availW = *v.style.width
	}
	if v.style.height != nil {
		availH = *v.style.height
	}
	solver.Solve(v, availW, availH)
	v.onLayoutChanged(0, 0)
}

// onLayoutChanged applies the solved local box on top of the parent's
// absolute origin, clears the dirty flag, and recurses. This is the only
// path that mutates x, y, width, and height.
func (v *View) onLayoutChanged(parentX, parentY float64) {
	v.x = parentX + v.solved.Left
	v.y = parentY + v.solved.Top
	v.width = v.solved.Width
	v.height = v.solved.Height
	v.dirty = false
	for _, c := range v.children {
		c.onLayoutChanged(v.x, v.y)
	}
}

// SolvedBox returns the local box last written by the solver.
func (v *View) SolvedBox() Box { return v.solved }

// SetSolvedBox records the local box computed by a solver. Solvers are the
// only intended callers; geometry still only changes when the root
// propagates it via layout.
func (v *View) SetSolvedBox(b Box) { v.solved = b }

// Frame renders the view for this frame: relayout if the tree is dirty,
// then draw. Views whose resolved size is zero in either dimension draw
// nothing at all, children included, so degenerate draw calls never reach
// the canvas.
func (v *View) Frame(c Canvas) {
	if v.dirty {
		v.Layout()
	}
	v.render(c)
}

func (v *View) render(c Canvas) {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	if v.background != nil {
		c.DrawRect(v.x, v.y, v.width, v.height, v.background)
	}
	if v.draw != nil {
		v.draw(v, c)
	}
	for _, child := range v.children {
		child.render(c)
	}
}
