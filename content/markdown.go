package content

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fielddeck/deck"
	"github.com/jask/fielddeck/widgets"
)

// markdown renders slide bodies through glamour. A renderer is built per
// call because word wrap is fixed at construction and the terminal width
// only arrives with the render context.
type markdown struct {
	style string
}

func newMarkdown(style string) markdown {
	if strings.TrimSpace(style) == "" {
		style = "auto"
	}
	return markdown{style: style}
}

func (m markdown) render(src string, width int) string {
	wrap := width - 2
	if wrap < 20 {
		wrap = 20
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if m.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(m.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}

func (m markdown) renderer(src string) deck.RenderFunc {
	return func(ctx deck.Context) string {
		return m.render(src, ctx.Width)
	}
}

// timerRenderer pairs instructions with the countdown clock. The clock
// text comes in through the context; the slide only presents it.
func (m markdown) timerRenderer(src string) deck.RenderFunc {
	return func(ctx deck.Context) string {
		body := m.render(src, ctx.Width)
		if ctx.TimerView == "" {
			return body
		}
		state := "press s to start"
		stateColor := colorMuted
		switch {
		case ctx.TimerView == "0:00":
			state = "time's up"
			stateColor = colorPeach
		case ctx.TimerRunning:
			state = "running"
			stateColor = colorGreen
		}
		clock := lipgloss.NewStyle().
			Foreground(colorLavender).
			Bold(true).
			Render(ctx.TimerView)
		stateLine := lipgloss.NewStyle().Foreground(stateColor).Render(state)
		card := widgets.Pane{
			Title:   "Countdown",
			Content: clock + "  " + stateLine,
			Accent:  colorSurface2,
		}
		return body + "\n\n" + card.Render(32, 3)
	}
}
