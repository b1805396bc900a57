package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Input scopes. Bindings attach to scopes and the registry resolves keys
// against the scope that is active right now, so overlay screens shadow
// the deck bindings while pushed and the deck bindings come back on pop.
// There are no global listeners to install or remove.
const (
	ScopeDeck      = "deck"
	ScopeDeckTimer = "deck:timer"
	ScopeJumpGrid  = "screen:jump-grid"
)

// Deck actions resolved by the key registry.
const (
	ActionQuit       = "quit"
	ActionNext       = "next"
	ActionPrev       = "prev"
	ActionFirst      = "first"
	ActionLast       = "last"
	ActionJump       = "jump"
	ActionTimerFlip  = "timer-toggle"
	ActionTimerReset = "timer-reset"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	// Scopes the binding is live in; empty means every scope.
	Scopes []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// Lookup resolves a key press to an action within scope. First binding
// wins, so callers can shadow defaults by registering earlier.
func (r *KeyRegistry) Lookup(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

// BindingsForScope returns the bindings live in scope, in registration
// order, for help rendering.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// DefaultBindings is the stock deck keymap. Arrow keys are the canonical
// prev/next shortcuts; h/l mirror them for vi hands.
func DefaultBindings() []KeyBinding {
	deckScopes := []string{ScopeDeck, ScopeDeckTimer}
	return []KeyBinding{
		{Keys: []string{"right", "l", "space"}, Action: ActionNext, Description: "next", Scopes: deckScopes},
		{Keys: []string{"left", "h"}, Action: ActionPrev, Description: "prev", Scopes: deckScopes},
		{Keys: []string{"home"}, Action: ActionFirst, Description: "first slide", Scopes: deckScopes},
		{Keys: []string{"end"}, Action: ActionLast, Description: "last slide", Scopes: deckScopes},
		{Keys: []string{"g"}, Action: ActionJump, Description: "jump grid", Scopes: deckScopes},
		{Keys: []string{"s"}, Action: ActionTimerFlip, Description: "start/pause timer", Scopes: []string{ScopeDeckTimer}},
		{Keys: []string{"r"}, Action: ActionTimerReset, Description: "reset timer", Scopes: []string{ScopeDeckTimer}},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit"},
	}
}

func normalizeKey(k string) string {
	// The space bar arrives as " ", which trimming would erase.
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
