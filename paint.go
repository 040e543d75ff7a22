package ui

// RGBA is a color with components in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Paint describes how a region is filled.
type Paint struct {
	Color RGBA
}

// NewPaint creates a solid-color paint.
func NewPaint(c RGBA) *Paint {
	return &Paint{Color: c}
}
