package render

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ui"
)

// Canvas adapts a gg drawing context to the ui.Canvas contract.
type Canvas struct {
	dc   *gg.Context
	face text.Face
}

var _ ui.Canvas = (*Canvas)(nil)

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithFace sets the font face used by DrawString. Without a face, text
// draw calls are silently skipped.
func WithFace(face text.Face) Option {
	return func(c *Canvas) {
		c.face = face
	}
}

// New wraps a gg context. The context's lifetime is owned by the caller;
// the canvas only issues draw calls into it.
func New(dc *gg.Context, opts ...Option) *Canvas {
	c := &Canvas{dc: dc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clear fills the whole surface with a color.
func (c *Canvas) Clear(col ui.RGBA) {
	c.dc.ClearWithColor(toGG(col))
}

// DrawRect fills a rectangle with the paint's color.
func (c *Canvas) DrawRect(x, y, w, h float64, p *ui.Paint) {
	if p == nil || w <= 0 || h <= 0 {
		return
	}
	c.setColor(p)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// DrawImage draws img scaled into the rectangle at (x, y). Scaling uses
// bilinear interpolation when the target box differs from the source
// bounds.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	tw, th := int(w+0.5), int(h+0.5)
	if tw != b.Dx() || th != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, tw, th))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}
	c.dc.DrawImage(gg.ImageBufFromImage(img), x, y)
}

// DrawPaint floods the whole surface with the paint.
func (c *Canvas) DrawPaint(p *ui.Paint) {
	if p == nil {
		return
	}
	c.setColor(p)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.dc.Fill()
}

// DrawString draws text with its baseline at (x, y). A canvas without a
// configured face skips text drawing entirely.
func (c *Canvas) DrawString(s string, x, y float64, p *ui.Paint) {
	if c.face == nil || s == "" {
		return
	}
	if p != nil {
		c.setColor(p)
	}
	c.dc.SetFont(c.face)
	c.dc.DrawString(s, x, y)
}

func (c *Canvas) setColor(p *ui.Paint) {
	c.dc.SetRGBA(p.Color.R, p.Color.G, p.Color.B, p.Color.A)
}

func toGG(c ui.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
