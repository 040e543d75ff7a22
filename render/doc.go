// Package render implements the ui.Canvas contract on top of gogpu/gg.
//
// A Canvas wraps a gg drawing context for the duration of one frame.
// Software-rendered gg contexts make it fully testable without a GPU;
// backends like gogpuapp hand it a surface-backed context instead.
package render
