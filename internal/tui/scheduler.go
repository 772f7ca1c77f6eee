package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	gen uint64
}

// teaScheduler implements display.Scheduler on top of tea.Tick.
// Everything runs on the Bubble Tea event loop, so it needs no locking.
// Ticks armed before the latest Start/Stop carry an old generation and are
// dropped.
type teaScheduler struct {
	interval time.Duration
	tick     func()
	armed    bool
	pending  bool
	gen      uint64
}

func (s *teaScheduler) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	s.interval = interval
	s.tick = tick
	s.armed = true
	s.pending = false
	s.gen++
}

func (s *teaScheduler) Stop() {
	s.tick = nil
	s.armed = false
	s.pending = false
	s.gen++
}

// cmd returns the command that delivers the next tick, or nil when
// nothing is armed or a tick is already in flight.
func (s *teaScheduler) cmd() tea.Cmd {
	if !s.armed || s.pending {
		return nil
	}
	s.pending = true
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (s *teaScheduler) handle(msg tickMsg) {
	if !s.armed || msg.gen != s.gen {
		return
	}
	s.pending = false
	if s.tick != nil {
		s.tick()
	}
}
