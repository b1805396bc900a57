// Package core is the app shell: the Bubble Tea model that owns the deck
// navigator, the key registry, the progress bar, the modal screen stack,
// and the lifecycle of per-slide timer widgets.
package core

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/jask/fielddeck/deck"
	"github.com/jask/fielddeck/timer"
)

type Model struct {
	width  int
	height int

	title     string
	nav       *deck.Navigator
	renderers deck.Registry
	screens   ScreenStack
	keys      *KeyRegistry
	progress  progress.Model

	// timers holds at most the instance mounted on the current slide,
	// keyed by slide ID. Navigating away drops the instance; its armed
	// tick goes stale and is discarded on arrival.
	timers       map[string]timer.Model
	timerSeconds int

	status    string
	statusErr bool
	quitting  bool
}

func New(title string, nav *deck.Navigator, renderers deck.Registry, keys *KeyRegistry, timerSeconds int) Model {
	m := Model{
		width:        100,
		height:       32,
		title:        title,
		nav:          nav,
		renderers:    renderers,
		keys:         keys,
		progress:     progress.New(progress.WithDefaultGradient()),
		timers:       make(map[string]timer.Model),
		timerSeconds: timerSeconds,
	}
	m.remountTimer()
	return m
}

// ActiveScope is the input scope keys resolve against: the top overlay
// if one is pushed, otherwise the deck scope, widened to the timer scope
// while the current slide hosts a countdown.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.nav.Current().HasTimer {
		return ScopeDeckTimer
	}
	return ScopeDeck
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// remountTimer synchronises the timer map with the current slide: the
// previous instance is dropped, and a fresh idle countdown is mounted if
// the slide asks for one.
func (m *Model) remountTimer() {
	for id := range m.timers {
		delete(m.timers, id)
	}
	current := m.nav.Current()
	if current.HasTimer {
		m.timers[current.ID] = timer.New(m.timerSeconds)
	}
}

func (m Model) mountedTimer() (timer.Model, bool) {
	current := m.nav.Current()
	if !current.HasTimer {
		return timer.Model{}, false
	}
	t, ok := m.timers[current.ID]
	return t, ok
}
