package display

import (
	"time"

	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/palette"
)

// SegmentSink receives the visual state of one segment.
type SegmentSink interface {
	On(c palette.Color)
	Off()
}

// Slot is the presentation handle of one digit position.
type Slot interface {
	Segment(s glyph.Segment) SegmentSink
}

// Container is the surface a display draws into.
type Container interface {
	// AddSlot appends a new digit position with all segments off.
	AddSlot() Slot
	// Clear drops every slot previously returned by AddSlot.
	Clear()
}

// Scheduler fires tick at a fixed interval until stopped.
// Start replaces any previously armed timer. Stop must be safe to call
// when nothing is armed.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
}
