// Package content defines the Field Research Methods deck: the slide
// table in presentation order and a renderer for each slide. Everything
// here is static; the app shell owns navigation and widget lifecycles.
package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fielddeck/deck"
)

// Options tunes how slide bodies are produced.
type Options struct {
	// MarkdownStyle names a glamour style ("dark", "light", a JSON style
	// path) or "auto" to follow the terminal background.
	MarkdownStyle string
}

// Title is the deck title shown in the header bar.
const Title = "Field Research Methods"

var (
	colorAccent   = lipgloss.Color("#89b4fa")
	colorPeach    = lipgloss.Color("#fab387")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorMuted    = lipgloss.Color("#6c7086")
	colorText     = lipgloss.Color("#cdd6f4")
	colorSurface2 = lipgloss.Color("#585b70")
	colorLavender = lipgloss.Color("#b4befe")
)

// Build returns the deck in display order plus the renderer registry.
// Every slide ID in the returned list has a renderer.
func Build(opts Options) ([]deck.Slide, deck.Registry) {
	md := newMarkdown(opts.MarkdownStyle)

	slides := []deck.Slide{
		{ID: "welcome", Label: "Welcome", Kind: deck.KindSection},
		{ID: "about", Label: "About this course", Subtitle: "what to expect"},
		{ID: "agenda", Label: "Agenda"},

		{ID: "collection", Label: "Data Collection Methods", Kind: deck.KindSection},
		{ID: "interviews", Label: "Interviews", Subtitle: "depth over breadth"},
		{ID: "surveys", Label: "Surveys", Subtitle: "sampling and reach"},
		{ID: "observation", Label: "Field Observation"},
		{ID: "method-flow", Label: "Choosing a method"},
		{ID: "method-mix", Label: "What teams actually use"},

		{ID: "triangulation", Label: "Triangulation", Kind: deck.KindSection},
		{ID: "why-triangulate", Label: "Why triangulate"},
		{ID: "triangle", Label: "The triangulation triangle"},
		{ID: "response-trend", Label: "Pilot study responses"},

		{ID: "practice", Label: "Practice", Kind: deck.KindSection},
		{ID: "exercise-questions", Label: "Exercise: draft questions", HasTimer: true},
		{ID: "exercise-critique", Label: "Exercise: critique a survey", HasTimer: true},
		{ID: "recap", Label: "Recap"},
		{ID: "thanks", Label: "Thanks"},
	}

	registry := deck.Registry{
		"welcome":            sectionRenderer("Welcome", "Field Research Methods"),
		"about":              md.renderer(aboutMD),
		"agenda":             md.renderer(agendaMD),
		"collection":         sectionRenderer("Part One", "Data Collection Methods"),
		"interviews":         md.renderer(interviewsMD),
		"surveys":            md.renderer(surveysMD),
		"observation":        md.renderer(observationMD),
		"method-flow":        renderMethodFlow,
		"method-mix":         renderMethodMix,
		"triangulation":      sectionRenderer("Part Two", "Triangulation"),
		"why-triangulate":    md.renderer(whyTriangulateMD),
		"triangle":           renderTriangle,
		"response-trend":     renderResponseTrend,
		"practice":           sectionRenderer("Part Three", "Practice"),
		"exercise-questions": md.timerRenderer(exerciseQuestionsMD),
		"exercise-critique":  md.timerRenderer(exerciseCritiqueMD),
		"recap":              md.renderer(recapMD),
		"thanks":             sectionRenderer("That's all", "Go collect some data"),
	}
	return slides, registry
}

// sectionRenderer draws a full-screen divider: a small kicker line above a
// large centered label.
func sectionRenderer(kicker, label string) deck.RenderFunc {
	return func(ctx deck.Context) string {
		kickerLine := lipgloss.NewStyle().
			Foreground(colorMuted).
			Render(strings.ToUpper(kicker))
		labelLine := lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Render(label)
		block := kickerLine + "\n\n" + labelLine
		return lipgloss.Place(
			maxDim(1, ctx.Width), maxDim(1, ctx.Height),
			lipgloss.Center, lipgloss.Center,
			block,
		)
	}
}

func maxDim(a, b int) int {
	if a > b {
		return a
	}
	return b
}
