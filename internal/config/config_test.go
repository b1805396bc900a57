package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FIELDDECK_CONFIG", "")
	t.Setenv("FIELDDECK_UI_MARKDOWN_STYLE", "")
	t.Setenv("FIELDDECK_TIMER_DURATION_SECONDS", "")
	t.Setenv("FIELDDECK_DECK_START_INDEX", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.MarkdownStyle != "auto" {
		t.Fatalf("markdown style = %q", c.UI.MarkdownStyle)
	}
	if c.Timer.DurationSeconds != 60 {
		t.Fatalf("timer duration = %d", c.Timer.DurationSeconds)
	}
	if c.Deck.StartIndex != 0 {
		t.Fatalf("start index = %d", c.Deck.StartIndex)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	toml := `[ui]
markdown_style = "dark"

[timer]
duration_seconds = 90

[deck]
start_index = 3
`
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FIELDDECK_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.MarkdownStyle != "dark" || c.Timer.DurationSeconds != 90 || c.Deck.StartIndex != 3 {
		t.Fatalf("loaded config = %+v", c)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("FIELDDECK_TIMER_DURATION_SECONDS", "120")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Timer.DurationSeconds != 120 {
		t.Fatalf("timer duration = %d, want 120", c.Timer.DurationSeconds)
	}
}

func TestOutOfRangeValuesAreClamped(t *testing.T) {
	isolate(t)
	t.Setenv("FIELDDECK_TIMER_DURATION_SECONDS", "999999")
	t.Setenv("FIELDDECK_DECK_START_INDEX", "-4")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Timer.DurationSeconds != 3600 {
		t.Fatalf("timer duration = %d, want 3600", c.Timer.DurationSeconds)
	}
	if c.Deck.StartIndex != 0 {
		t.Fatalf("start index = %d, want 0", c.Deck.StartIndex)
	}
}

func TestNonPositiveTimerFallsBackToDefault(t *testing.T) {
	isolate(t)
	t.Setenv("FIELDDECK_TIMER_DURATION_SECONDS", "0")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Timer.DurationSeconds != 60 {
		t.Fatalf("timer duration = %d, want 60", c.Timer.DurationSeconds)
	}
}
