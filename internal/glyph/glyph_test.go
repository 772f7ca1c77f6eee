package glyph

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestFor_ExactEntriesAreStable(t *testing.T) {
	t.Parallel()

	for _, r := range Runes() {
		want, ok := Lookup(r)
		require.True(t, ok)
		for i := 0; i < 3; i++ {
			require.Equal(t, want, For(r), "rune %q", r)
		}
	}
}

func TestFor_EveryGlyphIsWithinSevenSegments(t *testing.T) {
	t.Parallel()

	for _, r := range Runes() {
		require.Zero(t, For(r)&^All, "rune %q has bits outside a..g", r)
	}
}

func TestFor_FallsBackToUpperCaseThenEight(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'a', 'e', 'f', 'g', 'z', 'k', 'x', '#', '@', ':', 'é', '漢'} {
		if _, ok := Lookup(r); ok {
			t.Fatalf("test rune %q unexpectedly has an exact entry", r)
		}
		got := For(r)
		if upper, ok := Lookup(unicode.ToUpper(r)); ok {
			require.Equal(t, upper, got, "rune %q", r)
			continue
		}
		require.Equal(t, For('8'), got, "rune %q", r)
	}
}

func TestFor_LowerCaseShapesDifferFromUpper(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cdeg", For('o').String())
	require.Equal(t, "abcdef", For('O').String())
	require.Equal(t, "c", For('i').String())
	require.Equal(t, "bc", For('I').String())
}

func TestFor_KnownGlyphs(t *testing.T) {
	t.Parallel()

	require.Equal(t, All, For('8'))
	require.Equal(t, 7, For('8').Len())
	require.Equal(t, "bc", For('1').String())
	require.Equal(t, "g", For('-').String())
	require.Zero(t, For(' '))
	require.Zero(t, For('.'))
	require.Equal(t, All, Fallback)
}

func TestParseSegment(t *testing.T) {
	t.Parallel()

	for i, r := range "abcdefg" {
		seg, ok := ParseSegment(r)
		require.True(t, ok)
		require.Equal(t, Segment(i), seg)
		require.Equal(t, string(r), seg.String())
	}
	seg, ok := ParseSegment('G')
	require.True(t, ok)
	require.Equal(t, G, seg)

	_, ok = ParseSegment('h')
	require.False(t, ok)
}

func TestSet_Segments(t *testing.T) {
	t.Parallel()

	s := NewSet(G, A, D)
	require.Equal(t, []Segment{A, D, G}, s.Segments())
	require.True(t, s.Has(A))
	require.False(t, s.Has(B))
	require.False(t, s.Has(Segment(9)))
	require.Equal(t, 3, s.Len())
}
