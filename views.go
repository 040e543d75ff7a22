package ui

import "image"

// NewBox creates a view filled with a solid background paint.
func NewBox(p *Paint) *View {
	v := NewView()
	v.SetBackground(p)
	return v
}

// Label is a view that draws a single line of text using the canvas's
// configured font face.
type Label struct {
	*View
	text  string
	paint *Paint
}

// NewLabel creates a text view.
func NewLabel(text string, p *Paint) *Label {
	l := &Label{View: NewView(), text: text, paint: p}
	l.View.SetDraw(func(v *View, c Canvas) {
		// Baseline sits at the bottom of the view's box.
		c.DrawString(l.text, v.X(), v.Y()+v.Height(), l.paint)
	})
	return l
}

// Text returns the label's current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text and invalidates layout.
func (l *Label) SetText(s string) {
	l.text = s
	l.InvalidateLayout()
}

// Image is a view that draws a raster image scaled to its box.
type Image struct {
	*View
	img image.Image
}

// NewImage creates an image view.
func NewImage(img image.Image) *Image {
	iv := &Image{View: NewView(), img: img}
	iv.View.SetDraw(func(v *View, c Canvas) {
		c.DrawImage(iv.img, v.X(), v.Y(), v.Width(), v.Height())
	})
	return iv
}

// SetImage replaces the drawn image.
func (i *Image) SetImage(img image.Image) {
	i.img = img
}
