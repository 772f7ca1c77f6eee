package display

import (
	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/palette"
)

// renderSlots pushes one frame into slots. Slot i shows window[i] (a space
// when the window is short); lit segments get their color from scheme, the
// rest are switched off.
func renderSlots(slots []Slot, window []rune, scheme palette.Scheme) {
	for i, slot := range slots {
		ch := ' '
		if i < len(window) {
			ch = window[i]
		}
		lit := glyph.For(ch)
		for _, seg := range glyph.Segments {
			sink := slot.Segment(seg)
			if lit.Has(seg) {
				sink.On(scheme.ColorFor(i, seg))
			} else {
				sink.Off()
			}
		}
	}
}
