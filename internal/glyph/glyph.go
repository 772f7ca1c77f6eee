package glyph

import (
	"strings"
	"unicode"
)

// Segment identifies one of the seven regions of a digit.
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
type Segment uint8

const (
	A Segment = iota
	B
	C
	D
	E
	F
	G
)

// Count is the number of segments in a digit.
const Count = 7

// Segments lists all segments in canonical order (a..g).
var Segments = [Count]Segment{A, B, C, D, E, F, G}

func (s Segment) String() string {
	if s >= Count {
		return "?"
	}
	return string(rune('a' + s))
}

// ParseSegment maps 'a'..'g' (either case) to a Segment.
func ParseSegment(r rune) (Segment, bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'g' {
		return 0, false
	}
	return Segment(r - 'a'), true
}

// Set is a bit set of lit segments. Bit i corresponds to Segment(i).
type Set uint8

// All has every segment lit.
const All Set = 1<<Count - 1

func NewSet(segs ...Segment) Set {
	var s Set
	for _, seg := range segs {
		if seg < Count {
			s |= 1 << seg
		}
	}
	return s
}

func (s Set) Has(seg Segment) bool { return seg < Count && s&(1<<seg) != 0 }

func (s Set) Len() int {
	n := 0
	for _, seg := range Segments {
		if s.Has(seg) {
			n++
		}
	}
	return n
}

// Segments returns the lit segments in canonical order.
func (s Set) Segments() []Segment {
	out := make([]Segment, 0, Count)
	for _, seg := range Segments {
		if s.Has(seg) {
			out = append(out, seg)
		}
	}
	return out
}

func (s Set) String() string {
	var b strings.Builder
	for _, seg := range s.Segments() {
		b.WriteString(seg.String())
	}
	return b.String()
}

// Fallback is the glyph shown for characters the table does not know.
// It is the '8' glyph, i.e. every segment lit.
var Fallback = table['8']

// Lookup returns the exact table entry for r.
func Lookup(r rune) (Set, bool) {
	s, ok := table[r]
	return s, ok
}

// For returns the glyph for r. It never fails: an exact entry wins,
// then the upper case entry, then Fallback.
func For(r rune) Set {
	if s, ok := table[r]; ok {
		return s
	}
	if s, ok := table[unicode.ToUpper(r)]; ok {
		return s
	}
	return Fallback
}

// Runes returns every character with an exact entry.
func Runes() []rune {
	out := make([]rune, 0, len(table))
	for r := range table {
		out = append(out, r)
	}
	return out
}
