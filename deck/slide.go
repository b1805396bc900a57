// Package deck holds the behavioural core of the presentation: the slide
// data model and the navigator that tracks the current position. Rendering
// is kept out of the data model entirely; slide bodies are capabilities
// looked up by slide ID in a Registry.
package deck

// SlideKind distinguishes section dividers from training content.
type SlideKind int

const (
	KindContent SlideKind = iota
	KindSection
)

// Slide is one unit of displayable content in the fixed deck sequence.
// Label and Subtitle are separate fields on purpose; nothing downstream
// is allowed to derive them by splitting a title string.
type Slide struct {
	ID       string
	Label    string
	Subtitle string
	Kind     SlideKind

	// HasTimer marks slides that host a countdown widget. The widget
	// instance itself is owned by the app shell and mounted only while
	// the slide is current.
	HasTimer bool
}

// Context carries everything a slide renderer may depend on. Renderers
// never reach for global state.
type Context struct {
	Width  int
	Height int

	// TimerView is the rendered countdown clock ("0:45"), empty unless
	// the slide hosts a timer and one is mounted.
	TimerView    string
	TimerRunning bool
}

// RenderFunc produces the body of one slide.
type RenderFunc func(ctx Context) string

// Registry maps slide IDs to their render capability.
type Registry map[string]RenderFunc

// Render looks up and invokes the renderer for id. Unknown IDs render
// empty rather than failing; the content tests guarantee full coverage.
func (r Registry) Render(id string, ctx Context) string {
	fn, ok := r[id]
	if !ok {
		return ""
	}
	return fn(ctx)
}
