package ui

import "github.com/gogpu/ui/internal/flexlayout"

// Solver computes a local layout box for every view in a tree. The runtime
// owns when layout happens and how results propagate; the constraint math
// itself is behind this interface. Implementations write results with
// View.SetSolvedBox.
type Solver interface {
	Solve(root *View, availWidth, availHeight float64)
}

// defaultSolver bridges the view tree to the built-in flexbox-subset
// solver in internal/flexlayout.
var defaultSolver Solver = flexSolver{}

type flexSolver struct{}

func (flexSolver) Solve(root *View, availWidth, availHeight float64) {
	views := make([]*View, 0, 16)
	node := buildNode(root, &views)
	flexlayout.Solve(node, availWidth, availHeight)
	applyNode(node, views)
}

// buildNode mirrors the view tree into flexlayout nodes, recording the
// visit order so boxes can be applied back without a map.
func buildNode(v *View, views *[]*View) *flexlayout.Node {
	*views = append(*views, v)
	n := &flexlayout.Node{
		FixedWidth:  v.style.width,
		FixedHeight: v.style.height,
		MinWidth:    v.style.minWidth,
		MinHeight:   v.style.minHeight,
		Grow:        v.style.grow,
		Direction:   flexlayout.Direction(v.style.direction),
	}
	n.Children = make([]*flexlayout.Node, 0, len(v.children))
	for _, c := range v.children {
		n.Children = append(n.Children, buildNode(c, views))
	}
	return n
}

// applyNode writes solved boxes back onto the views in the same visit
// order buildNode recorded them.
func applyNode(root *flexlayout.Node, views []*View) {
	i := 0
	var walk func(n *flexlayout.Node)
	walk = func(n *flexlayout.Node) {
		views[i].SetSolvedBox(Box{
			Left: n.Left, Top: n.Top,
			Width: n.Width, Height: n.Height,
		})
		i++
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}
