package content

import (
	"strings"
	"testing"
	"time"

	"github.com/jask/fielddeck/deck"
)

func TestSlideIDsAreUnique(t *testing.T) {
	slides, _ := Build(Options{})
	seen := make(map[string]bool)
	for _, s := range slides {
		if seen[s.ID] {
			t.Fatalf("duplicate slide ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestEverySlideHasARenderer(t *testing.T) {
	slides, registry := Build(Options{})
	ctx := deck.Context{Width: 80, Height: 24}
	for _, s := range slides {
		if _, ok := registry[s.ID]; !ok {
			t.Fatalf("slide %q has no renderer", s.ID)
		}
		if strings.TrimSpace(registry.Render(s.ID, ctx)) == "" {
			t.Fatalf("slide %q renders empty at 80x24", s.ID)
		}
	}
}

func TestDeckStartsWithASection(t *testing.T) {
	slides, _ := Build(Options{})
	if len(slides) == 0 || slides[0].Kind != deck.KindSection {
		t.Fatal("deck should open on a section divider")
	}
}

func TestExerciseSlidesHostTimers(t *testing.T) {
	slides, _ := Build(Options{})
	withTimer := 0
	for _, s := range slides {
		if s.HasTimer {
			withTimer++
			if s.Kind == deck.KindSection {
				t.Fatalf("section %q should not host a timer", s.ID)
			}
		}
	}
	if withTimer != 2 {
		t.Fatalf("timer slides = %d, want 2", withTimer)
	}
}

func TestTimerSlideShowsClock(t *testing.T) {
	_, registry := Build(Options{})
	ctx := deck.Context{Width: 80, Height: 24, TimerView: "0:45", TimerRunning: true}
	out := registry.Render("exercise-questions", ctx)
	if !strings.Contains(out, "0:45") {
		t.Fatal("timer slide should show the clock")
	}
	if !strings.Contains(out, "running") {
		t.Fatal("timer slide should show the running state")
	}

	idle := registry.Render("exercise-questions", deck.Context{Width: 80, Height: 24, TimerView: "1:00"})
	if !strings.Contains(idle, "press s to start") {
		t.Fatal("idle timer slide should prompt for start")
	}

	done := registry.Render("exercise-questions", deck.Context{Width: 80, Height: 24, TimerView: "0:00"})
	if !strings.Contains(done, "time's up") {
		t.Fatal("finished timer slide should say so")
	}
}

func TestMethodMixListsEveryMethod(t *testing.T) {
	_, registry := Build(Options{})
	out := registry.Render("method-mix", deck.Context{Width: 80, Height: 24})
	for _, name := range []string{"Surveys", "Interviews", "Observation", "Diary studies"} {
		if !strings.Contains(out, name) {
			t.Fatalf("method mix missing %q", name)
		}
	}
}

func TestResponseTrendLabelsWeeks(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	f := weekLabelFormatter(start)
	if got := f(0, float64(start.Unix())); got != "W1" {
		t.Fatalf("week 1 label = %q", got)
	}
	w3 := start.AddDate(0, 0, 14)
	if got := f(0, float64(w3.Unix())); got != "W3" {
		t.Fatalf("week 3 label = %q", got)
	}
	offWeek := start.AddDate(0, 0, 3)
	if got := f(0, float64(offWeek.Unix())); got != "" {
		t.Fatalf("off-week label = %q, want empty", got)
	}
}
