package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/scheduler"
)

func TestFrame_RecordsSegments(t *testing.T) {
	t.Parallel()

	f := NewFrame()
	s := f.AddSlot()
	s.Segment(glyph.A).On("#ff0000")
	s.Segment(glyph.G).On("#00ff00")

	snap := f.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, glyph.NewSet(glyph.A, glyph.G), snap[0].Lit())
	require.Equal(t, Lamp{On: true, Color: "#ff0000"}, snap[0][glyph.A])

	s.Segment(glyph.A).Off()
	require.Equal(t, Lamp{}, f.Snapshot()[0][glyph.A])
}

func TestFrame_ClearDetachesOldSlots(t *testing.T) {
	t.Parallel()

	f := NewFrame()
	old := f.AddSlot()
	f.Clear()
	require.Equal(t, 0, f.Len())

	v := f.Version()
	old.Segment(glyph.A).On("#ffffff")
	require.Equal(t, v, f.Version())
	require.Empty(t, f.Snapshot())
}

func TestFrame_VersionOnlyMovesOnChange(t *testing.T) {
	t.Parallel()

	f := NewFrame()
	s := f.AddSlot()
	v := f.Version()
	s.Segment(glyph.B).Off()
	require.Equal(t, v, f.Version())
	s.Segment(glyph.B).On("#fff")
	require.Greater(t, f.Version(), v)
}

func TestRegistry_LookupAndMount(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	f := NewFrame()
	r.Register("#display", f)

	got, err := r.Lookup("display")
	require.NoError(t, err)
	require.Same(t, f, got)

	cfg := display.DefaultConfig()
	cfg.Scrolling = false
	d, err := r.Mount("#display", cfg, display.WithScheduler(scheduler.NewManual()))
	require.NoError(t, err)
	defer d.Destroy()
	require.Equal(t, 8, f.Len())

	_, err = r.Mount("#missing", cfg)
	require.Error(t, err)
	require.True(t, display.IsContainerNotFound(err))
	require.Contains(t, err.Error(), "#missing")

	r.Register("#display", nil)
	_, err = r.Lookup("#display")
	require.True(t, display.IsContainerNotFound(err))
}

func TestArt_MonochromeEight(t *testing.T) {
	t.Parallel()

	var d Digit
	for _, seg := range glyph.Segments {
		d[seg] = Lamp{On: true, Color: "#00ff88"}
	}
	out := NewArt(false).Render([]Digit{d})
	want := strings.Join([]string{
		" ━━━ ",
		"┃   ┃",
		" ━━━ ",
		"┃   ┃",
		" ━━━ ",
	}, "\n")
	require.Equal(t, want, out)
}

func TestArt_MonochromeBlankAndGap(t *testing.T) {
	t.Parallel()

	var one Digit
	one[glyph.B] = Lamp{On: true}
	one[glyph.C] = Lamp{On: true}

	out := NewArt(false).Render([]Digit{{}, one})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, ArtRows)
	require.Equal(t, "     "+" "+"    ┃", lines[1])
	require.Equal(t, "     "+" "+"     ", lines[2])
}
