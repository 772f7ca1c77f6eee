package scheduler

import (
	"sync"
	"time"
)

// Ticker runs tick on its own goroutine every interval.
// Stop never waits for an in-flight tick, so it is safe to call while the
// caller holds a lock the tick callback also takes.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
}

func NewTicker() *Ticker { return &Ticker{} }

func (t *Ticker) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stop := make(chan struct{})
	t.stop = stop
	tk := time.NewTicker(interval)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				// Stop may have raced with the tick.
				select {
				case <-stop:
					return
				default:
				}
				tick()
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Manual is a scheduler driven by hand. It never starts a timer; Fire runs
// the armed tick synchronously.
type Manual struct {
	mu       sync.Mutex
	interval time.Duration
	tick     func()
	starts   int
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) Start(interval time.Duration, tick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = interval
	m.tick = tick
	m.starts++
}

func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick = nil
}

// Fire runs the armed tick once and reports whether one was armed.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	tick := m.tick
	m.mu.Unlock()
	if tick == nil {
		return false
	}
	tick()
	return true
}

// FireN fires n times, stopping early if the scheduler is disarmed.
func (m *Manual) FireN(n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		if !m.Fire() {
			break
		}
		fired++
	}
	return fired
}

func (m *Manual) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick != nil
}

func (m *Manual) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Starts counts calls to Start, including restarts.
func (m *Manual) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}
