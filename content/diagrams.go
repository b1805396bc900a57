package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fielddeck/deck"
	"github.com/jask/fielddeck/widgets"
)

var (
	diagramLineStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
	diagramNodeStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	diagramNoteStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	diagramTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
)

// textBox adapts a fixed block of text to the widget contract so diagram
// slides can lean on the stack layout helpers.
type textBox struct{ body string }

func (t textBox) Render(width, height int) string {
	lines := strings.Split(widgets.FitHeight(t.body, height), "\n")
	for i := range lines {
		lines[i] = widgets.PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// renderTriangle draws the three methods checking each other, with the
// research question in the middle and the reading notes alongside.
func renderTriangle(ctx deck.Context) string {
	node := diagramNodeStyle.Render
	line := diagramLineStyle.Render

	art := strings.Join([]string{
		"          " + node("INTERVIEWS"),
		"          " + line("/        \\"),
		"         " + line("/          \\"),
		"        " + line("/  ") + diagramTitleStyle.Render("question") + line("  \\"),
		"       " + line("/              \\"),
		node("SURVEYS") + line(" ───────── ") + node("OBSERVATION"),
	}, "\n")

	notes := widgets.VStack{
		Spacing: 1,
		Widgets: []widgets.Widget{
			textBox{diagramNoteStyle.Render("Each edge is a comparison:\nwhere two methods agree,\nthe finding stands.")},
			textBox{diagramNoteStyle.Render("Where they differ,\ndig there.")},
		},
	}

	layout := widgets.HStack{
		Gap:     6,
		Ratios:  []float64{3, 2},
		Widgets: []widgets.Widget{textBox{art}, notes},
	}

	width := ctx.Width - 8
	if width < 50 {
		width = 50
	}
	if width > 76 {
		width = 76
	}
	block := diagramTitleStyle.Render("The triangulation triangle") +
		"\n\n" + layout.Render(width, 7)
	return lipgloss.Place(
		maxDim(1, ctx.Width), maxDim(1, ctx.Height),
		lipgloss.Center, lipgloss.Center,
		block,
	)
}

// renderMethodFlow is the decision path from question to method.
func renderMethodFlow(ctx deck.Context) string {
	node := func(s string) string { return diagramNodeStyle.Render(s) }
	q := func(s string) string { return diagramTitleStyle.Render(s) }
	arrow := diagramLineStyle.Render

	rows := []string{
		q("What do you need to know?"),
		arrow("            │"),
		arrow("    ┌───────┴────────┐"),
		arrow("    │                │"),
		q("  the WHY          the HOW MANY"),
		arrow("    │                │"),
		node("  few people?     many people?"),
		arrow("    │                │"),
		node("INTERVIEWS        SURVEYS"),
		"",
		q("  What people DO, not say?") + "  " + arrow("→") + "  " + node("OBSERVATION"),
	}
	note := diagramNoteStyle.Render(
		"Start from the question. The method is a consequence,\nnot a preference.")

	block := strings.Join(rows, "\n") + "\n\n" + note
	return lipgloss.Place(
		maxDim(1, ctx.Width), maxDim(1, ctx.Height),
		lipgloss.Center, lipgloss.Center,
		block,
	)
}
