package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centres popup over base inside a width x height canvas,
// wrapping the popup in a rounded, padded card. Base content still shows
// around the card edges.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := toCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := widestLine(cardLines)
	if cardWidth <= 0 || len(cardLines) == 0 {
		return strings.Join(canvas, "\n")
	}
	x := (width - cardWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(cardLines)) / 2
	if y < 0 {
		y = 0
	}
	for i, line := range cardLines {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		canvas[row] = spliceLine(canvas[row], PadRight(line, cardWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// spliceLine overwrites target from column x with overlay, preserving the
// rest of the row up to width cells.
func spliceLine(target, overlay string, x, width int) string {
	target = PadRight(target, width)
	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	pos := x + ansi.StringWidth(overlay)
	right := ""
	if pos < width {
		head := ansi.Truncate(target, pos, "")
		right = strings.TrimPrefix(target, head)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
	}
	return left + overlay + right
}

func toCanvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return lines
}

func widestLine(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
