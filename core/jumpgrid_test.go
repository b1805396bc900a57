package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fielddeck/deck"
)

func gridSlides() []deck.Slide {
	return []deck.Slide{
		{ID: "welcome", Label: "Welcome", Kind: deck.KindSection},
		{ID: "interviews", Label: "Interviews"},
		{ID: "intermission", Label: "Intermission"},
		{ID: "surveys", Label: "Surveys", Subtitle: "sampling and reach"},
	}
}

func TestJumpGridCursorStartsOnCurrentSlide(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 2).(*jumpGridScreen)
	if s.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.cursor)
	}
}

func TestJumpGridEnterEmitsSelectedIndex(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0)
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("enter should pop the screen")
	}
	if cmd == nil {
		t.Fatal("enter should emit a selection")
	}
	msg, ok := cmd().(JumpSelectedMsg)
	if !ok || msg.Index != 1 {
		t.Fatalf("selection = %#v, want index 1", msg)
	}
}

func TestJumpGridEscCancels(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc: pop=%v cmd=%v, want pop with no command", pop, cmd)
	}
}

func TestJumpGridFilterNarrowsAndRanks(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0).(*jumpGridScreen)
	for _, r := range "inter" {
		next, _, _ := s.Update(keyRunes(r))
		s = next.(*jumpGridScreen)
	}
	if len(s.matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(s.matches))
	}
	// Equal fuzzy scores; edit distance puts the shorter label first.
	if s.matches[0].slide.ID != "interviews" {
		t.Fatalf("top match = %s, want interviews", s.matches[0].slide.ID)
	}
	next, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = next
	if !pop || cmd == nil {
		t.Fatal("enter on filtered list should select")
	}
	if msg := cmd().(JumpSelectedMsg); msg.Index != 1 {
		t.Fatalf("filtered selection index = %d, want 1", msg.Index)
	}
}

func TestJumpGridDigitSelectsRow(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0)
	_, cmd, pop := s.Update(keyRunes('3'))
	if !pop || cmd == nil {
		t.Fatal("digit should select its row")
	}
	if msg := cmd().(JumpSelectedMsg); msg.Index != 2 {
		t.Fatalf("digit selection index = %d, want 2", msg.Index)
	}

	// Digits typed into an active filter stay part of the query.
	s = NewJumpGrid(gridSlides(), 0)
	s, _, _ = s.Update(keyRunes('x'))
	_, cmd, pop = s.Update(keyRunes('3'))
	if pop || cmd != nil {
		t.Fatal("digit after filter text should not select")
	}
}

func TestJumpGridMatchesSubtitleText(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0).(*jumpGridScreen)
	for _, r := range "sampling" {
		next, _, _ := s.Update(keyRunes(r))
		s = next.(*jumpGridScreen)
	}
	if len(s.matches) != 1 || s.matches[0].slide.ID != "surveys" {
		t.Fatalf("subtitle filter failed: %d matches", len(s.matches))
	}
}

func TestJumpGridBackspaceWidensFilter(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 0).(*jumpGridScreen)
	for _, r := range "interv" {
		next, _, _ := s.Update(keyRunes(r))
		s = next.(*jumpGridScreen)
	}
	if len(s.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(s.matches))
	}
	next, _, _ := s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	s = next.(*jumpGridScreen)
	if len(s.matches) != 2 {
		t.Fatalf("after backspace matches = %d, want 2", len(s.matches))
	}
}

func TestJumpGridViewMarksCurrentSlide(t *testing.T) {
	s := NewJumpGrid(gridSlides(), 3)
	view := s.View(60, 20)
	if !strings.Contains(view, "Surveys") {
		t.Fatal("view should list slide labels")
	}
	if !strings.Contains(view, "●") {
		t.Fatal("view should mark the current slide")
	}
}

func TestFuzzyMatchScore(t *testing.T) {
	matched, score := fuzzyMatchScore("Interviews", "int")
	if !matched || score <= 0 {
		t.Fatalf("prefix match failed: %v %d", matched, score)
	}
	if matched, _ := fuzzyMatchScore("Surveys", "xyz"); matched {
		t.Fatal("non-subsequence should not match")
	}
	_, exact := fuzzyMatchScore("Recap", "recap")
	_, partial := fuzzyMatchScore("Recap", "rec")
	if exact <= partial {
		t.Fatalf("exact match should outscore partial: %d <= %d", exact, partial)
	}
}

func TestEditDistanceCaseFolds(t *testing.T) {
	if d := editDistance("Recap", "recap"); d != 0 {
		t.Fatalf("distance = %d, want 0", d)
	}
	if editDistance("Interviews", "inter") >= editDistance("Intermission", "inter") {
		t.Fatal("shorter label should sit closer to the query")
	}
}
