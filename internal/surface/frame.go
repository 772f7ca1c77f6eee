package surface

import (
	"sync"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/palette"
)

// Lamp is the visual state of one segment.
type Lamp struct {
	On    bool
	Color palette.Color
}

// Digit holds the lamps of one slot, indexed by glyph.Segment.
type Digit [glyph.Count]Lamp

// Lit returns the lit segments of d.
func (d Digit) Lit() glyph.Set {
	var s glyph.Set
	for _, seg := range glyph.Segments {
		if d[seg].On {
			s |= glyph.NewSet(seg)
		}
	}
	return s
}

// Frame is an in-memory container. It records the state every segment was
// last set to and can be read concurrently with a running display.
type Frame struct {
	mu      sync.RWMutex
	digits  []*frameSlot
	version uint64
}

var _ display.Container = (*Frame)(nil)

func NewFrame() *Frame { return &Frame{} }

func (f *Frame) AddSlot() display.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &frameSlot{}
	for i := range s.segs {
		s.segs[i] = lamp{frame: f, slot: s, seg: glyph.Segment(i)}
	}
	f.digits = append(f.digits, s)
	f.version++
	return s
}

func (f *Frame) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.digits {
		s.detached = true
	}
	f.digits = nil
	f.version++
}

// Snapshot copies the current state of every slot.
func (f *Frame) Snapshot() []Digit {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Digit, len(f.digits))
	for i, s := range f.digits {
		out[i] = s.state
	}
	return out
}

// Len is the number of live slots.
func (f *Frame) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.digits)
}

// Version changes whenever any segment or slot changes state.
func (f *Frame) Version() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.version
}

type frameSlot struct {
	state    Digit
	segs     [glyph.Count]lamp
	detached bool
}

func (s *frameSlot) Segment(seg glyph.Segment) display.SegmentSink {
	if seg >= glyph.Count {
		return discard{}
	}
	return &s.segs[seg]
}

type lamp struct {
	frame *Frame
	slot  *frameSlot
	seg   glyph.Segment
}

func (l *lamp) On(c palette.Color) { l.set(Lamp{On: true, Color: c}) }

func (l *lamp) Off() { l.set(Lamp{}) }

func (l *lamp) set(v Lamp) {
	l.frame.mu.Lock()
	defer l.frame.mu.Unlock()
	// Handles of cleared slots no longer reach the frame.
	if l.slot.detached || l.slot.state[l.seg] == v {
		return
	}
	l.slot.state[l.seg] = v
	l.frame.version++
}

type discard struct{}

func (discard) On(palette.Color) {}
func (discard) Off()             {}
