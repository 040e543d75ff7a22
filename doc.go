// Package ui is a retained-mode UI runtime for the GoGPU ecosystem.
//
// # Overview
//
// ui maintains a tree of views, computes their layout, drives time-based
// animations, schedules deferred work, and renders one frame per tick.
// Drawing is delegated to gogpu/gg; windowing to gogpu/gogpu (see the
// gogpuapp subpackage). The runtime itself owns scheduling and lifecycle:
//
//   - Runner: advances every active Ticking once per rendered frame.
//   - Event[T]: typed publish/subscribe with weak-owner-scoped observers;
//     firing schedules deferred observer invocations on the Runner.
//   - Task: cooperatively cancellable unit of deferred work.
//   - Animated: a time-interpolated scalar property with easing.
//   - View: a parent-linked layout/draw tree with root-driven invalidation.
//   - Activity / App: stack of mounted screens and the frame loop.
//
// # Quick Start
//
//	app := ui.New()
//	act := ui.NewActivity(func() *ui.View {
//	    root := ui.NewView()
//	    box := ui.NewBox(ui.NewPaint(ui.RGBA{R: 1, A: 1}))
//	    box.SetGrow(1)
//	    root.AddChild(box)
//	    return root
//	})
//	app.Push(act)
//	gogpuapp.Run(app, gogpuapp.Config{Title: "demo", Width: 800, Height: 600})
//
// # Threading Model
//
// The runtime is single-threaded and cooperative. All Ticking advancement,
// layout, and drawing happen on one logical frame thread. Re-entrancy
// during a scheduler pass (a ticking scheduling another ticking) is handled
// by a pending queue, not by locks. Nothing here is safe for concurrent
// use from multiple goroutines without external synchronization.
//
// # Scheduling Guarantees
//
// Work scheduled through Event.Fire or Animated.Animate never runs
// synchronously inside the scheduling call; it runs on a later pass of
// Runner.Frame, in the order it was added. A ticking added during a pass
// waits until the next pass.
package ui
