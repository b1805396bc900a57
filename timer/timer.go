// Package timer provides a self-contained countdown component for Bubble
// Tea. Each instance counts down from a fixed duration to zero, one tick
// per second, with start/pause/reset controls.
//
// Ticks are single-shot: a tick decrements once and schedules the next
// tick only if the countdown is still running. Stopping therefore never
// has to cancel an armed callback; pause and reset bump the tag so the
// in-flight tick is discarded on arrival.
package timer

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is the countdown length in seconds when none is given.
const DefaultDuration = 60

var (
	lastID int
	idMtx  sync.Mutex
)

func nextID() int {
	idMtx.Lock()
	defer idMtx.Unlock()
	lastID++
	return lastID
}

// TickMsg is delivered once per elapsed interval while the countdown runs.
// ID routes the message to the owning instance; the unexported tag
// invalidates ticks armed before the latest pause/reset.
type TickMsg struct {
	ID  int
	tag int
}

// Model is a countdown instance. Instances are independent: several may
// run at once without coordinating.
type Model struct {
	// Interval between decrements. Defaults to one second.
	Interval time.Duration

	duration  int
	remaining int
	running   bool
	id        int
	tag       int
}

// New returns an idle countdown holding durationSeconds. Non-positive
// durations fall back to DefaultDuration.
func New(durationSeconds int) Model {
	if durationSeconds <= 0 {
		durationSeconds = DefaultDuration
	}
	return Model{
		Interval:  time.Second,
		duration:  durationSeconds,
		remaining: durationSeconds,
		id:        nextID(),
	}
}

func (m Model) ID() int { return m.id }

func (m Model) Remaining() int { return m.remaining }

func (m Model) Running() bool { return m.running }

// Finished reports the degenerate terminal state: the countdown reached
// zero and no further ticks will be scheduled.
func (m Model) Finished() bool { return m.remaining == 0 }

// Start sets the countdown running and arms the first tick. Starting an
// already-running countdown is a no-op; starting at zero flips the flag
// but schedules nothing.
func (m Model) Start() (Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	if m.remaining <= 0 {
		return m, nil
	}
	m.tag++
	return m, m.tick()
}

// Pause stops the countdown, preserving the remaining time. The pending
// tick, if any, goes stale via the tag bump.
func (m Model) Pause() Model {
	if !m.running {
		return m
	}
	m.running = false
	m.tag++
	return m
}

// Toggle starts a paused countdown or pauses a running one.
func (m Model) Toggle() (Model, tea.Cmd) {
	if m.running {
		return m.Pause(), nil
	}
	return m.Start()
}

// Reset returns the countdown to its full duration, not running,
// regardless of current state.
func (m Model) Reset() Model {
	m.remaining = m.duration
	m.running = false
	m.tag++
	return m
}

// Update consumes TickMsg. A matching tick decrements once and returns
// the command for the next tick, or nil once the countdown has stopped.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.tag != m.tag {
		return m, nil
	}
	if !m.running || m.remaining <= 0 {
		return m, nil
	}
	m.remaining--
	if m.remaining <= 0 {
		m.remaining = 0
		return m, nil
	}
	return m, m.tick()
}

// View renders the clock as m:ss, e.g. "1:00" or "0:05".
func (m Model) View() string {
	return fmt.Sprintf("%d:%02d", m.remaining/60, m.remaining%60)
}

func (m Model) tick() tea.Cmd {
	interval := m.Interval
	if interval <= 0 {
		interval = time.Second
	}
	id, tag := m.id, m.tag
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
