package marquee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_Static(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		digits int
		want   string
	}{
		{name: "pads", text: "HI", digits: 5, want: "HI   "},
		{name: "truncates", text: "HELLOTHERE", digits: 5, want: "HELLO"},
		{name: "exact", text: "HELLO", digits: 5, want: "HELLO"},
		{name: "empty text", text: "", digits: 3, want: "   "},
		{name: "zero digits", text: "HELLO", digits: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Window([]rune(tt.text), tt.digits, 7, false)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestWindow_ScrollingRotatesPaddedBuffer(t *testing.T) {
	t.Parallel()

	text := []rune("AB")
	buf := []rune("   AB   ")
	require.Equal(t, len(buf), Period(text))
	require.Equal(t, "   AB   ", string(Window(text, 8, 0, true)))
	require.Equal(t, "  AB    ", string(Window(text, 8, 1, true)))

	for offset := 0; offset < 20; offset++ {
		got := Window(text, 8, offset, true)
		for i := range got {
			require.Equal(t, buf[(offset+i)%len(buf)], got[i], "offset=%d i=%d", offset, i)
		}
	}
}

func TestWindow_AlwaysDigitsLong(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "A", "HELLO", "a much longer marquee text"} {
		for digits := 0; digits < 12; digits++ {
			for _, scrolling := range []bool{false, true} {
				got := Window([]rune(text), digits, 5, scrolling)
				require.Len(t, got, digits)
			}
		}
	}
}

func TestWindow_EmptyTextScrolling(t *testing.T) {
	t.Parallel()

	require.Equal(t, 6, Period(nil))
	require.Equal(t, "        ", string(Window(nil, 8, 3, true)))
}

func TestWindow_NegativeOffsetWraps(t *testing.T) {
	t.Parallel()

	text := []rune("AB")
	require.Equal(t, string(Window(text, 4, 7, true)), string(Window(text, 4, -1, true)))
}

func TestAdvance_CyclesWithPeriod(t *testing.T) {
	t.Parallel()

	text := []rune("HELLO")
	offset := 4
	for i := 0; i < Period(text); i++ {
		offset = Advance(offset, text)
		require.GreaterOrEqual(t, offset, 0)
		require.Less(t, offset, Period(text))
	}
	require.Equal(t, 4, offset)
}
