package core

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/fielddeck/deck"
)

// jumpGridScreen is the jump overlay: every slide in deck order, grouped
// under its section divider, with filter-as-you-type. Selecting a row
// emits JumpSelectedMsg and pops the screen.
type jumpGridScreen struct {
	slides  []deck.Slide
	current int
	query   string
	cursor  int
	matches []jumpEntry
}

type jumpEntry struct {
	index int
	slide deck.Slide
	score int
	dist  int
}

func NewJumpGrid(slides []deck.Slide, current int) Screen {
	s := &jumpGridScreen{
		slides:  append([]deck.Slide(nil), slides...),
		current: current,
	}
	s.rebuild()
	for i, e := range s.matches {
		if e.index == current {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *jumpGridScreen) Title() string { return "Jump Grid" }
func (s *jumpGridScreen) Scope() string { return ScopeJumpGrid }

func (s *jumpGridScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	raw := keyMsg.String()
	switch normalizeKey(raw) {
	case "esc":
		return s, nil, true
	case "enter":
		entry, ok := s.entryUnderCursor()
		if !ok {
			return s, nil, true
		}
		idx := entry.index
		return s, func() tea.Msg { return JumpSelectedMsg{Index: idx} }, true
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case "down", "ctrl+n":
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return s, nil, false
	case "backspace":
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
			s.rebuild()
		}
		return s, nil, false
	}
	// With no filter active, a row digit selects directly.
	if s.query == "" && len(raw) == 1 && raw[0] >= '1' && raw[0] <= '9' {
		idx := int(raw[0] - '1')
		if idx < len(s.matches) {
			target := s.matches[idx].index
			return s, func() tea.Msg { return JumpSelectedMsg{Index: target} }, true
		}
		return s, nil, false
	}
	if isPrintableASCIIKey(raw) {
		s.query += raw
		s.rebuild()
		return s, nil, false
	}
	return s, nil, false
}

func (s *jumpGridScreen) entryUnderCursor() (jumpEntry, bool) {
	if len(s.matches) == 0 {
		return jumpEntry{}, false
	}
	idx := s.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.matches) {
		idx = len(s.matches) - 1
	}
	return s.matches[idx], true
}

// rebuild refreshes the match list. An empty query keeps deck order;
// otherwise rows are ranked by fuzzy score with edit distance breaking
// ties, so the list reshuffles toward what was typed.
func (s *jumpGridScreen) rebuild() {
	q := strings.TrimSpace(s.query)
	s.matches = s.matches[:0]
	for i, slide := range s.slides {
		search := slide.Label
		if slide.Subtitle != "" {
			search += " " + slide.Subtitle
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		entry := jumpEntry{index: i, slide: slide, score: score}
		if q != "" {
			entry.dist = editDistance(slide.Label, q)
		}
		s.matches = append(s.matches, entry)
	}
	if q != "" {
		sort.SliceStable(s.matches, func(i, j int) bool {
			if s.matches[i].score != s.matches[j].score {
				return s.matches[i].score > s.matches[j].score
			}
			if s.matches[i].dist != s.matches[j].dist {
				return s.matches[i].dist < s.matches[j].dist
			}
			return s.matches[i].index < s.matches[j].index
		})
	}
	if s.cursor > len(s.matches)-1 {
		s.cursor = len(s.matches) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *jumpGridScreen) View(width, height int) string {
	if width < 24 {
		width = 24
	}
	filter := strings.TrimSpace(s.query)
	if filter == "" {
		filter = "(type to filter)"
	}
	lines := []string{
		jumpHeaderStyle.Render("Jump to slide"),
		"Filter: " + filter,
		"",
	}
	if len(s.matches) == 0 {
		lines = append(lines, "  No matching slides")
	}
	grouped := strings.TrimSpace(s.query) == ""
	for i, e := range s.matches {
		label := e.slide.Label
		if e.slide.Subtitle != "" {
			label += "  " + jumpHintStyle.Render(e.slide.Subtitle)
		}
		row := fmt.Sprintf("%2d  %s", e.index+1, label)
		if grouped && e.slide.Kind == deck.KindSection {
			row = jumpSectionStyle.Render(row)
		}
		marker := "  "
		if e.index == s.current {
			marker = jumpCurrentStyle.Render("● ")
		}
		prefix := "  "
		if i == s.cursor {
			prefix = jumpCursorStyle.Render("> ")
		}
		lines = append(lines, ansi.Truncate(prefix+marker+row, width, ""))
	}
	lines = append(lines, "", jumpHintStyle.Render("Enter jumps. Esc cancels."))
	view := strings.Join(lines, "\n")
	return clipHeight(view, maxOf(6, height))
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
