package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/scheduler"
	"github.com/fchimpan/seg7/internal/surface"
)

func frameCount(out string) int {
	return strings.Count(strings.TrimRight(out, "\n"), "\n\n") + 1
}

func TestRun_StaticPrintsOneFrame(t *testing.T) {
	t.Parallel()

	cfg := display.DefaultConfig()
	cfg.Text = "8"
	cfg.DigitCount = 1
	cfg.Scrolling = false

	var out bytes.Buffer
	err := Run(context.Background(), Options{Config: cfg, Frames: 5, Out: &out})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	want := strings.Join([]string{
		" ━━━ ",
		"┃   ┃",
		" ━━━ ",
		"┃   ┃",
		" ━━━ ",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("unexpected frame:\n%s", out.String())
	}
}

func TestRun_ScrollingPrintsRequestedFrames(t *testing.T) {
	t.Parallel()

	cfg := display.DefaultConfig()
	cfg.DigitCount = 4
	cfg.ScrollSpeed = time.Millisecond

	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, Options{Config: cfg, Frames: 3, Out: &out}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := frameCount(out.String()); got != 3 {
		t.Fatalf("frame count mismatch: got %d\n%s", got, out.String())
	}
	if lines := strings.Count(out.String(), "\n"); lines != 3*surface.ArtRows+2 {
		t.Fatalf("line count mismatch: got %d", lines)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	// A manual scheduler never ticks, so only cancellation can end the run.
	err := Run(ctx, Options{
		Config:    display.DefaultConfig(),
		Frames:    2,
		Out:       &out,
		Scheduler: scheduler.NewManual(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if frameCount(out.String()) != 1 {
		t.Fatalf("expected the first frame before cancellation")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := display.DefaultConfig()
	cfg.DigitCount = -1
	err := Run(context.Background(), Options{Config: cfg, Out: &bytes.Buffer{}})
	if !display.IsInvalidConfiguration(err) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestRun_NilWriter(t *testing.T) {
	t.Parallel()

	if err := Run(context.Background(), Options{Config: display.DefaultConfig()}); err == nil {
		t.Fatalf("expected error")
	}
}
