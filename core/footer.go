package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter draws the key help line for whatever scope is active, so
// timer shortcuts only appear while a timer slide is current and overlay
// screens show their own reduced set.
func RenderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, maxOf(1, m.width), line, bg)
}

// RenderStatusBar shows the deck position plus any transient status text,
// and a live clock badge while the current slide hosts a timer.
func RenderStatusBar(m Model) string {
	position := fmt.Sprintf("Slide %d/%d", m.nav.Index()+1, m.nav.Len())
	label := m.nav.Current().Label
	msg := position
	if label != "" {
		msg += " · " + label
	}
	if strings.TrimSpace(m.status) != "" {
		msg += " · " + strings.TrimSpace(m.status)
	}
	if t, ok := m.mountedTimer(); ok {
		state := "paused"
		if t.Running() {
			state = "running"
		}
		if t.Finished() {
			state = "done"
		}
		msg += "  " + timerBadgeStyle.Render(" "+t.View()+" "+state+" ")
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, maxOf(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
