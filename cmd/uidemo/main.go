// Command uidemo opens a window with an animated view tree, exercising the
// runtime end to end: activities, flex layout, events, and animations.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/gogpuapp"
)

func main() {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "uidemo",
		Short: "Animated demo of the ui retained-mode runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config) error {
	app := ui.New(
		ui.WithFrameTime(1/cfg.FramesPerSecond),
		ui.WithBackground(ui.RGBA{R: 0.1, G: 0.1, B: 0.12, A: 1}),
	)

	app.Push(newDemoActivity(app))

	return gogpuapp.Run(app, gogpuapp.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
}

// newDemoActivity builds a screen with two growing panels and a bar whose
// width pulses forever via chained animations.
func newDemoActivity(app *ui.App) *ui.Activity {
	return ui.NewActivity(func() *ui.View {
		root := ui.NewView()
		root.SetDirection(ui.Column)

		header := ui.NewBox(ui.NewPaint(ui.RGBA{R: 0.2, G: 0.4, B: 0.8, A: 1}))
		header.SetHeight(64)
		root.AddChild(header)

		body := ui.NewView()
		body.SetDirection(ui.Row)
		body.SetGrow(1)
		root.AddChild(body)

		left := ui.NewBox(ui.NewPaint(ui.RGBA{R: 0.15, G: 0.15, B: 0.18, A: 1}))
		left.SetGrow(1)
		body.AddChild(left)

		right := ui.NewBox(ui.NewPaint(ui.RGBA{R: 0.18, G: 0.18, B: 0.22, A: 1}))
		right.SetGrow(1)
		body.AddChild(right)

		bar := ui.NewBox(ui.NewPaint(ui.RGBA{R: 0.9, G: 0.5, B: 0.1, A: 1}))
		bar.SetHeight(24)
		left.AddChild(bar)

		width := ui.NewAnimated(app.Runner(), 0)
		app.OnExit(width.Destroy)

		var pulse func(from, to float64)
		pulse = func(from, to float64) {
			width.Animate(from, to, 1500*time.Millisecond, ui.EaseCubicInOut).
				Observe(func(v float64) { bar.SetWidth(v) }).
				Then(func() { pulse(to, from) })
		}
		pulse(0, 320)

		return root
	})
}
