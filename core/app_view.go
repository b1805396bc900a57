package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/fielddeck/deck"
	"github.com/jask/fielddeck/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	progressLine := m.progress.View()

	chrome := lipgloss.Height(header) + lipgloss.Height(status) +
		lipgloss.Height(footer) + lipgloss.Height(progressLine)
	bodyHeight := m.height - chrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	ctx := deck.Context{Width: maxOf(1, m.width-2), Height: bodyHeight}
	if t, ok := m.mountedTimer(); ok {
		ctx.TimerView = t.View()
		ctx.TimerRunning = t.Running()
	}
	body := m.renderers.Render(m.nav.Current().ID, ctx)

	if top := m.screens.Top(); top != nil {
		popup := top.View(maxOf(20, m.width-12), maxOf(8, m.height-8))
		body = widgets.RenderPopup(body, popup, maxOf(1, m.width), bodyHeight)
	}
	body = widgets.FitHeight(body, bodyHeight)

	view := strings.Join([]string{header, body, progressLine, status, footer}, "\n")
	view = widgets.FitHeight(view, maxOf(1, m.height))
	return appStyle.Width(maxOf(1, m.width)).MaxWidth(maxOf(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerTitleStyle.Render(m.title)
	right := ""
	if section := m.nav.SectionLabel(); section != "" {
		right = headerSectionStyle.Render(section)
	}
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	line := left + strings.Repeat(" ", gap) + right
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), maxOf(1, m.width), "")
	if w := ansi.StringWidth(line); w < m.width {
		line += strings.Repeat(" ", m.width-w)
	}
	return headerBarStyle.Width(maxOf(1, m.width)).MaxWidth(maxOf(1, m.width)).Render(line)
}
