package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLookupResolvesArrowKeys(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	action, ok := r.Lookup(tea.KeyMsg{Type: tea.KeyRight}, ScopeDeck)
	if !ok || action != ActionNext {
		t.Fatalf("right = %q/%v, want next", action, ok)
	}
	action, ok = r.Lookup(tea.KeyMsg{Type: tea.KeyLeft}, ScopeDeck)
	if !ok || action != ActionPrev {
		t.Fatalf("left = %q/%v, want prev", action, ok)
	}
}

func TestSpaceBarAdvances(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	action, ok := r.Lookup(keyRunes(' '), ScopeDeck)
	if !ok || action != ActionNext {
		t.Fatalf("space = %q/%v, want next", action, ok)
	}
}

func TestTimerBindingsOnlyLiveInTimerScope(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	if _, ok := r.Lookup(keyRunes('s'), ScopeDeck); ok {
		t.Fatal("timer toggle should not resolve in plain deck scope")
	}
	action, ok := r.Lookup(keyRunes('s'), ScopeDeckTimer)
	if !ok || action != ActionTimerFlip {
		t.Fatalf("s in timer scope = %q/%v", action, ok)
	}
	action, ok = r.Lookup(keyRunes('r'), ScopeDeckTimer)
	if !ok || action != ActionTimerReset {
		t.Fatalf("r in timer scope = %q/%v", action, ok)
	}
}

func TestUnscopedBindingsResolveEverywhere(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	for _, scope := range []string{ScopeDeck, ScopeDeckTimer, ScopeJumpGrid} {
		action, ok := r.Lookup(keyRunes('q'), scope)
		if !ok || action != ActionQuit {
			t.Fatalf("quit missing in scope %s", scope)
		}
	}
}

func TestDeckBindingsShadowedInOverlayScope(t *testing.T) {
	r := NewKeyRegistry(DefaultBindings())
	if _, ok := r.Lookup(keyRunes('g'), ScopeJumpGrid); ok {
		t.Fatal("jump binding should not resolve inside the jump grid")
	}
	bindings := r.BindingsForScope(ScopeJumpGrid)
	if len(bindings) != 1 {
		t.Fatalf("jump grid scope shows %d bindings, want just quit", len(bindings))
	}
}

func TestRegisterPrependsNothingFirstWins(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"x"}, Action: "custom", Scopes: []string{ScopeDeck}},
	})
	r.Register(KeyBinding{Keys: []string{"x"}, Action: "later", Scopes: []string{ScopeDeck}})
	action, _ := r.Lookup(keyRunes('x'), ScopeDeck)
	if action != "custom" {
		t.Fatalf("first registration should win, got %q", action)
	}
}
