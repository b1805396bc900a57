package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws content inside a rounded border with the title embedded in
// the top rule. Accent controls the border color; zero value falls back
// to a muted grey.
type Pane struct {
	Title   string
	Content string
	Accent  lipgloss.Color
}

func (p Pane) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("#6c7086")
	}
	borderStyle := lipgloss.NewStyle().Foreground(accent)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	titleText := ""
	if strings.TrimSpace(p.Title) != "" {
		titleText = " " + strings.TrimSpace(p.Title) + " "
		if ansi.StringWidth(titleText) > innerWidth-2 {
			titleText = " " + ansi.Truncate(strings.TrimSpace(p.Title), maxInt(1, innerWidth-4), "") + " "
		}
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 0
	if titleText != "" && dashes > 0 {
		leftDash = 1
	}
	rightDash := dashes - leftDash

	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	side := borderStyle.Render("│")
	body := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		rows = append(rows, side+" "+PadRight(line, contentWidth)+" "+side)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
