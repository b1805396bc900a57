// Package widgets holds small composable rendering helpers shared by the
// app shell and the slide content: stack layout, bordered panes, and
// popup overlay compositing. Everything renders to a plain string sized
// by the caller.
package widgets

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}
