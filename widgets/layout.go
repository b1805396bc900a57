package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom, dividing the height evenly unless
// Ratios gives one weight per widget.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacing := v.Spacing * (len(v.Widgets) - 1)
	if spacing < 0 {
		spacing = 0
	}
	usable := height - spacing
	if usable < 1 {
		usable = 1
	}
	heights := divide(usable, len(v.Widgets), v.Ratios)
	var lines []string
	for i, w := range v.Widgets {
		h := heights[i]
		if h < 1 {
			h = 1
		}
		lines = append(lines, w.Render(width, h))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HStack places widgets side by side, dividing the width evenly unless
// Ratios gives one weight per widget.
type HStack struct {
	Widgets []Widget
	Gap     int
	Ratios  []float64
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := h.Gap * (len(h.Widgets) - 1)
	if gaps < 0 {
		gaps = 0
	}
	usable := width - gaps
	if usable < 1 {
		usable = 1
	}
	widths := divide(usable, len(h.Widgets), h.Ratios)
	columns := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cw := widths[i]
		if cw < 1 {
			cw = 1
		}
		columns[i] = strings.Split(w.Render(cw, height), "\n")
		if len(columns[i]) > rows {
			rows = len(columns[i])
		}
	}
	sep := strings.Repeat(" ", h.Gap)
	out := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		cells := make([]string, len(columns))
		for i := range columns {
			cell := ""
			if r < len(columns[i]) {
				cell = columns[i][r]
			}
			cells[i] = PadRight(cell, widths[i])
		}
		out = append(out, strings.Join(cells, sep))
	}
	return strings.Join(out, "\n")
}

// divide splits total cells across n parts. With no ratios the remainder
// goes to the leftmost parts; with ratios each part gets its weighted
// floor and leftovers are dealt round-robin.
func divide(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		base := total / n
		for i := range out {
			out[i] = base
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		out[i] = int(r / sum * float64(total))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// PadRight pads (or ansi-truncates) s to exactly width display cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// ClipHeight drops lines beyond height.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// FitHeight clips and bottom-pads s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
