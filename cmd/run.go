package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/headless"
)

type runOptions struct {
	cfg     display.Config
	frames  int
	logFile string
}

func run(ctx context.Context, deps Deps, opts runOptions) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.RunHeadless == nil {
		return fmt.Errorf("deps.RunHeadless is nil")
	}
	if deps.Terminal == nil {
		return fmt.Errorf("deps.Terminal is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closeLog, err := openLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	t := deps.Terminal()
	if opts.frames > 0 || !t.IsTerminalOutput() {
		logger.Debug("running headless", "frames", opts.frames)
		err := deps.RunHeadless(ctx, headless.Options{
			Config: opts.cfg,
			Frames: opts.frames,
			Color:  t.IsColorEnabled(),
			Out:    deps.Stdout,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to play display: %w", err)
		}
		return nil
	}

	logger.Debug("starting interactive display", "text", opts.cfg.Text, "digits", opts.cfg.DigitCount)
	if err := deps.RunTUI(opts.cfg, logger); err != nil {
		return fmt.Errorf("failed to run display: %w", err)
	}
	return nil
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
