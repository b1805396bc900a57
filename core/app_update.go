package core

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fielddeck/timer"
)

func (m Model) Init() tea.Cmd {
	return m.progress.SetPercent(m.nav.ProgressPercent() / 100)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = maxOf(10, msg.Width-4)
		return m, nil

	case progress.FrameMsg:
		next, cmd := m.progress.Update(msg)
		m.progress = next.(progress.Model)
		return m, cmd

	case timer.TickMsg:
		id := m.nav.Current().ID
		t, ok := m.timers[id]
		if !ok {
			// Tick armed by an instance that has since unmounted.
			return m, nil
		}
		t, cmd := t.Update(msg)
		m.timers[id] = t
		return m, cmd

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil

	case PopScreenMsg:
		m.screens.Pop()
		return m, nil

	case JumpSelectedMsg:
		prev := m.nav.Index()
		m.nav.JumpTo(msg.Index)
		return m, m.afterNav(prev)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.ReplaceTop(next)
		}
		return m, cmd
	}

	action, ok := m.keys.Lookup(msg, m.ActiveScope())
	if !ok {
		return m, nil
	}
	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionNext:
		prev := m.nav.Index()
		m.nav.Step(1)
		return m, m.afterNav(prev)
	case ActionPrev:
		prev := m.nav.Index()
		m.nav.Step(-1)
		return m, m.afterNav(prev)
	case ActionFirst:
		prev := m.nav.Index()
		m.nav.JumpTo(0)
		return m, m.afterNav(prev)
	case ActionLast:
		prev := m.nav.Index()
		m.nav.JumpTo(m.nav.Len() - 1)
		return m, m.afterNav(prev)
	case ActionJump:
		m.screens.Push(NewJumpGrid(m.nav.Slides(), m.nav.Index()))
		return m, nil
	case ActionTimerFlip:
		id := m.nav.Current().ID
		t, ok := m.timers[id]
		if !ok {
			return m, nil
		}
		t, cmd := t.Toggle()
		m.timers[id] = t
		if t.Running() {
			m.SetStatus("Timer running")
		} else {
			m.SetStatus("Timer paused")
		}
		return m, cmd
	case ActionTimerReset:
		id := m.nav.Current().ID
		t, ok := m.timers[id]
		if !ok {
			return m, nil
		}
		m.timers[id] = t.Reset()
		m.SetStatus("Timer reset")
		return m, nil
	}
	return m, nil
}

// afterNav runs after any navigation request: if the index actually
// moved, the old slide's widgets unmount, a fresh timer mounts if needed,
// and the progress bar animates toward the new position.
func (m *Model) afterNav(prev int) tea.Cmd {
	if m.nav.Index() == prev {
		return nil
	}
	m.status = ""
	m.statusErr = false
	m.remountTimer()
	return m.progress.SetPercent(m.nav.ProgressPercent() / 100)
}
