package display

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/marquee"
	"github.com/fchimpan/seg7/internal/palette"
	"github.com/fchimpan/seg7/internal/scheduler"
)

// Config is the construction-time configuration of a display.
type Config struct {
	Text        string
	DigitCount  int
	ScrollSpeed time.Duration
	Scrolling   bool
	Rainbow     bool
	Color       palette.Color
}

func DefaultConfig() Config {
	return Config{
		Text:        "HELLO",
		DigitCount:  8,
		ScrollSpeed: 200 * time.Millisecond,
		Scrolling:   true,
	}
}

func (c Config) Validate() error {
	if c.DigitCount <= 0 {
		return &InvalidConfigurationError{Field: "digit count", Value: c.DigitCount}
	}
	if c.ScrollSpeed <= 0 {
		return &InvalidConfigurationError{Field: "scroll speed", Value: c.ScrollSpeed}
	}
	return nil
}

// State is a copy of a display's mutable state.
type State struct {
	Text        []rune
	DigitCount  int
	ScrollSpeed time.Duration
	Scrolling   bool
	Rainbow     bool
	Color       palette.Color
	Offset      int
	PerDigit    []map[glyph.Segment]palette.Color
}

func (s State) scheme() palette.Scheme {
	return palette.Scheme{
		Rainbow:  s.Rainbow,
		Digits:   s.DigitCount,
		PerDigit: s.PerDigit,
		Default:  s.Color,
	}
}

type Option func(*Display)

func WithScheduler(s Scheduler) Option {
	return func(d *Display) { d.sched = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Display) { d.log = l }
}

func WithRand(r *rand.Rand) Option {
	return func(d *Display) { d.rng = r }
}

// WithRenderHook registers fn to run after every render pass. It is called
// with the display lock held and must not call back into the display.
func WithRenderHook(fn func()) Option {
	return func(d *Display) { d.onRender = fn }
}

// Display is one independent 7-segment display. All methods are safe for
// concurrent use; they are serialised with scheduler ticks.
type Display struct {
	mu sync.Mutex

	container Container
	sched     Scheduler
	log       *slog.Logger
	rng       *rand.Rand
	onRender  func()

	state State
	slots []Slot

	running   bool
	gen       uint64 // bumped on every scheduler (re)arm; older ticks are stale
	destroyed bool
}

// New builds a display in container, renders it once and starts scrolling
// when cfg.Scrolling is set. A nil container fails with
// ContainerNotFoundError and an invalid cfg with InvalidConfigurationError.
func New(container Container, cfg Config, opts ...Option) (*Display, error) {
	if container == nil {
		return nil, &ContainerNotFoundError{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Display{
		container: container,
		state: State{
			Text:        []rune(cfg.Text),
			DigitCount:  cfg.DigitCount,
			ScrollSpeed: cfg.ScrollSpeed,
			Scrolling:   cfg.Scrolling,
			Rainbow:     cfg.Rainbow,
			Color:       cfg.Color,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sched == nil {
		d.sched = scheduler.NewTicker()
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	if d.rng == nil {
		seed := uint64(time.Now().UnixNano())
		d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.createSlots()
	d.render()
	if d.state.Scrolling {
		d.startLocked()
	}
	return d, nil
}

// Render redraws every slot from the current state.
func (d *Display) Render() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.render()
}

// SetText replaces the text and rewinds the marquee.
func (d *Display) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.state.Text = []rune(text)
	d.state.Offset = 0
	d.render()
	if d.running {
		d.startLocked()
	}
}

// SetDigitCount rebuilds the slots for n digits. Per-digit colors are
// discarded.
func (d *Display) SetDigitCount(n int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n <= 0 {
		d.log.Debug("rejected digit count", "value", n)
		return &InvalidConfigurationError{Field: "digit count", Value: n}
	}
	if d.destroyed {
		return nil
	}
	d.state.DigitCount = n
	d.createSlots()
	d.render()
	if d.state.Scrolling {
		d.startLocked()
	}
	return nil
}

// StartScrolling enables the marquee and (re)arms the scheduler.
func (d *Display) StartScrolling() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.state.Scrolling = true
	d.startLocked()
	d.render()
}

// StopScrolling cancels the scheduler. The scroll offset is kept.
func (d *Display) StopScrolling() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.state.Scrolling = false
}

// SetScrolling is the on/off toggle. Turning scrolling off also rewinds
// the marquee and redraws the static text.
func (d *Display) SetScrolling(on bool) {
	if on {
		d.StartScrolling()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.state.Scrolling = false
	d.state.Offset = 0
	d.render()
}

// SetScrollSpeed changes the tick interval, restarting the scheduler when
// scrolling.
func (d *Display) SetScrollSpeed(speed time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if speed <= 0 {
		d.log.Debug("rejected scroll speed", "value", speed)
		return &InvalidConfigurationError{Field: "scroll speed", Value: speed}
	}
	if d.destroyed {
		return nil
	}
	d.state.ScrollSpeed = speed
	if d.state.Scrolling {
		d.startLocked()
	}
	return nil
}

func (d *Display) SetRainbowMode(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Rainbow = on
	d.render()
}

// SetColor sets the color used by lit segments without a per-digit color.
// The empty color restores the built-in default.
func (d *Display) SetColor(c palette.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Color = c
	d.render()
}

// RandomizeColors gives every segment of every digit a random color and
// turns rainbow mode off.
func (d *Display) RandomizeColors() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	for i := range d.state.PerDigit {
		d.state.PerDigit[i] = palette.RandomDigit(d.rng)
	}
	d.state.Rainbow = false
	d.render()
}

// SetDigitColors replaces the per-segment colors of one digit. Indexes
// outside [0, DigitCount) are ignored.
func (d *Display) SetDigitColors(digit int, colors map[glyph.Segment]palette.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if digit < 0 || digit >= len(d.state.PerDigit) {
		return
	}
	m := make(map[glyph.Segment]palette.Color, len(colors))
	for seg, c := range colors {
		if seg < glyph.Count {
			m[seg] = c
		}
	}
	d.state.PerDigit[digit] = m
	d.render()
}

func (d *Display) ClearColors() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.state.PerDigit = emptyColors(d.state.DigitCount)
	d.render()
}

// Destroy stops the scheduler and releases the slots. Further calls on the
// display, including late ticks, do nothing.
func (d *Display) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.stopLocked()
	d.container.Clear()
	d.slots = nil
	d.state.PerDigit = nil
	d.destroyed = true
	d.log.Debug("display destroyed")
}

// State returns a deep copy of the current state.
func (d *Display) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	s.Text = append([]rune(nil), d.state.Text...)
	s.PerDigit = make([]map[glyph.Segment]palette.Color, len(d.state.PerDigit))
	for i, m := range d.state.PerDigit {
		cp := make(map[glyph.Segment]palette.Color, len(m))
		for k, v := range m {
			cp[k] = v
		}
		s.PerDigit[i] = cp
	}
	return s
}

// Window returns the characters currently shown.
func (d *Display) Window() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.window())
}

// Scrolling reports whether the scheduler is armed.
func (d *Display) Scrolling() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *Display) window() []rune {
	return marquee.Window(d.state.Text, d.state.DigitCount, d.state.Offset, d.state.Scrolling)
}

func (d *Display) startLocked() {
	d.gen++
	gen := d.gen
	d.running = true
	d.sched.Start(d.state.ScrollSpeed, func() { d.tick(gen) })
	d.log.Debug("scroll scheduler started", "interval", d.state.ScrollSpeed)
}

func (d *Display) stopLocked() {
	if !d.running {
		return
	}
	d.gen++
	d.running = false
	d.sched.Stop()
	d.log.Debug("scroll scheduler stopped", "offset", d.state.Offset)
}

func (d *Display) tick(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed || !d.running || gen != d.gen {
		return
	}
	d.state.Offset = marquee.Advance(d.state.Offset, d.state.Text)
	d.render()
}

func (d *Display) createSlots() {
	d.container.Clear()
	d.slots = make([]Slot, d.state.DigitCount)
	for i := range d.slots {
		d.slots[i] = d.container.AddSlot()
	}
	d.state.PerDigit = emptyColors(d.state.DigitCount)
	d.log.Debug("digit slots created", "count", d.state.DigitCount)
}

func (d *Display) render() {
	if d.destroyed {
		return
	}
	renderSlots(d.slots, d.window(), d.state.scheme())
	if d.onRender != nil {
		d.onRender()
	}
}

func emptyColors(n int) []map[glyph.Segment]palette.Color {
	out := make([]map[glyph.Segment]palette.Color, n)
	for i := range out {
		out[i] = map[glyph.Segment]palette.Color{}
	}
	return out
}
