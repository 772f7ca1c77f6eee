package headless

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/scheduler"
	"github.com/fchimpan/seg7/internal/surface"
)

type Options struct {
	Config display.Config
	// Frames is the number of frames to print. A static display always
	// prints exactly one.
	Frames int
	Color  bool
	Out    io.Writer
	Logger *slog.Logger
	// Scheduler defaults to a real-time ticker.
	Scheduler display.Scheduler
}

// Run plays the display into opts.Out, one block of art per frame,
// separated by blank lines.
func Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		return fmt.Errorf("headless: output writer is nil")
	}
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewTicker()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	frame := surface.NewFrame()
	art := surface.NewArt(opts.Color)
	rendered := make(chan struct{}, 1)

	d, err := display.New(frame, opts.Config,
		display.WithScheduler(opts.Scheduler),
		display.WithLogger(opts.Logger),
		display.WithRenderHook(func() {
			select {
			case rendered <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return err
	}
	defer d.Destroy()

	// The first frame was drawn by New.
	select {
	case <-rendered:
	default:
	}

	frames := 1
	if !opts.Config.Scrolling {
		opts.Frames = 1
	}
	if err := writeFrame(opts.Out, art, frame, false); err != nil {
		return err
	}
	for frames < opts.Frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-rendered:
		}
		if err := writeFrame(opts.Out, art, frame, true); err != nil {
			return err
		}
		frames++
	}
	opts.Logger.Debug("headless run finished", "frames", frames)
	return nil
}

func writeFrame(w io.Writer, art *surface.Art, frame *surface.Frame, sep bool) error {
	prefix := ""
	if sep {
		prefix = "\n"
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", prefix, art.Render(frame.Snapshot())); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}
