// Package gogpuapp runs a ui.App inside a gogpu window.
//
// gogpu owns the window, the GPU surface, VSync pacing, and buffer
// swapping; this package bridges its per-frame draw callback to
// ui.App.Step via a ggcanvas surface. Resource-initialization failures
// (no GPU backend, surface creation) surface as errors from Run — startup
// is never silently degraded.
package gogpuapp

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/render"
)

// Config describes the window the application runs in.
type Config struct {
	Title  string
	Width  int
	Height int

	// Face is the font face labels draw with. Optional; without it text
	// views draw nothing.
	Face text.Face
}

// Run opens a gogpu window and drives app from its draw callback until the
// window closes. Key presses are forwarded to app.Input(); the app's exit
// hooks run when the window closes.
func Run(app *ui.App, cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("gogpuapp: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	gapp := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height))

	var canvas *ggcanvas.Canvas

	gapp.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := gapp.GPUContextProvider()
			if provider == nil {
				// Surface not ready yet; try again next frame.
				return
			}
			var err error
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				ui.Logger().Warn("gogpuapp: canvas creation failed", "err", err)
				return
			}
			ui.Logger().Info("gogpuapp: canvas created", "width", w, "height", h)
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				ui.Logger().Warn("gogpuapp: canvas resize failed", "err", err)
				return
			}
		}

		if err := canvas.Draw(func(cc *gg.Context) {
			app.Step(render.New(cc, render.WithFace(cfg.Face)), float64(w), float64(h))
		}); err != nil {
			ui.Logger().Warn("gogpuapp: draw failed", "err", err)
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			ui.Logger().Warn("gogpuapp: present failed", "err", err)
		}
	})

	gapp.EventSource().OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		app.Input().Fire(ui.KeyEvent{Key: int(key), Modifiers: int(mods)})
	})

	gapp.OnClose(func() {
		app.Exit()
		if canvas != nil {
			if err := canvas.Close(); err != nil {
				ui.Logger().Warn("gogpuapp: canvas close failed", "err", err)
			}
		}
	})

	if err := gapp.Run(); err != nil {
		return fmt.Errorf("gogpuapp: %w", err)
	}
	return nil
}
