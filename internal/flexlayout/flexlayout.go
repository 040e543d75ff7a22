// Package flexlayout is a small flexbox-subset constraint solver: a single
// main axis per container (row or column), fixed sizes in display-
// independent pixels, and proportional growth into the remaining space.
//
// The solver is tree-agnostic: callers build a Node tree mirroring their
// own structure, call Solve, and read the computed local boxes back. It is
// the default solver behind ui.View; any external constraint solver with
// the same box contract can replace it.
package flexlayout

// Direction selects the main axis of a container.
type Direction int

const (
	// Row lays children out left to right.
	Row Direction = iota
	// Column lays children out top to bottom.
	Column
)

// Node is one layout participant. Inputs are the exported style fields;
// Solve fills the computed box (Left, Top relative to the parent, plus
// Width and Height).
type Node struct {
	// FixedWidth and FixedHeight pin a dimension in DIPs. Nil means
	// automatic: grow if Grow is set, otherwise collapse to the minimum.
	FixedWidth  *float64
	FixedHeight *float64

	// MinWidth and MinHeight are enforced lower bounds.
	MinWidth  *float64
	MinHeight *float64

	// Grow is this node's share of the parent's remaining main-axis
	// space, proportional to the sum of its siblings' Grow values.
	Grow float64

	// Direction is the main axis for this node's children.
	Direction Direction

	Children []*Node

	// Computed box, valid after Solve.
	Left, Top     float64
	Width, Height float64
}

// Solve computes the box of every node in the tree rooted at n. The root's
// automatic dimensions resolve to the available size.
func Solve(n *Node, availWidth, availHeight float64) {
	n.Left, n.Top = 0, 0
	n.Width = resolve(n.FixedWidth, n.MinWidth, availWidth)
	n.Height = resolve(n.FixedHeight, n.MinHeight, availHeight)
	solveChildren(n)
}

// resolve picks a fixed dimension if set, else the fallback, clamped to min.
func resolve(fixed, min *float64, fallback float64) float64 {
	v := fallback
	if fixed != nil {
		v = *fixed
	}
	if min != nil && v < *min {
		v = *min
	}
	return v
}

func solveChildren(n *Node) {
	if len(n.Children) == 0 {
		return
	}

	mainSpace := n.Width
	crossSpace := n.Height
	if n.Direction == Column {
		mainSpace, crossSpace = n.Height, n.Width
	}

	// First pass: fixed main-axis sizes come off the top; the rest is
	// distributed by grow weight.
	var fixedSum, growSum float64
	for _, c := range n.Children {
		if f := c.fixedMain(n.Direction); f != nil {
			fixedSum += *f
		} else {
			growSum += c.Grow
		}
	}
	remaining := mainSpace - fixedSum
	if remaining < 0 {
		remaining = 0
	}

	offset := 0.0
	for _, c := range n.Children {
		var main float64
		switch {
		case c.fixedMain(n.Direction) != nil:
			main = *c.fixedMain(n.Direction)
		case c.Grow > 0 && growSum > 0:
			main = remaining * c.Grow / growSum
		}
		cross := crossSpace
		if f := c.fixedCross(n.Direction); f != nil {
			cross = *f
		}

		if n.Direction == Row {
			c.Left, c.Top = offset, 0
			c.Width = clampMin(main, c.MinWidth)
			c.Height = clampMin(cross, c.MinHeight)
			offset += c.Width
		} else {
			c.Left, c.Top = 0, offset
			c.Width = clampMin(cross, c.MinWidth)
			c.Height = clampMin(main, c.MinHeight)
			offset += c.Height
		}
		solveChildren(c)
	}
}

func (n *Node) fixedMain(d Direction) *float64 {
	if d == Row {
		return n.FixedWidth
	}
	return n.FixedHeight
}

func (n *Node) fixedCross(d Direction) *float64 {
	if d == Row {
		return n.FixedHeight
	}
	return n.FixedWidth
}

func clampMin(v float64, min *float64) float64 {
	if min != nil && v < *min {
		return *min
	}
	return v
}
