package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/headless"
)

func TestRun_TerminalRunsTUI(t *testing.T) {
	t.Parallel()

	var calledTUI bool
	cfg := display.DefaultConfig()
	deps := Deps{
		RunTUI: func(got display.Config, log *slog.Logger) error {
			calledTUI = true
			if got != cfg {
				t.Fatalf("config mismatch: got %+v", got)
			}
			if log == nil {
				t.Fatalf("logger should not be nil")
			}
			return nil
		},
		RunHeadless: func(ctx context.Context, opts headless.Options) error {
			t.Fatalf("RunHeadless should not be called on a terminal")
			return nil
		},
		Terminal: func() Terminal { return fakeTerminal{tty: true} },
	}

	if err := run(context.Background(), deps, runOptions{cfg: cfg}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}
}

func TestRun_PipeRunsHeadless(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var calledHeadless bool
	deps := Deps{
		RunTUI: func(display.Config, *slog.Logger) error {
			t.Fatalf("RunTUI should not be called when output is not a terminal")
			return nil
		},
		RunHeadless: func(ctx context.Context, opts headless.Options) error {
			calledHeadless = true
			if opts.Out != &stdout {
				t.Fatalf("headless should write to stdout")
			}
			if opts.Color {
				t.Fatalf("color should follow the terminal")
			}
			if opts.Frames != 0 {
				t.Fatalf("frames mismatch: got %d", opts.Frames)
			}
			return nil
		},
		Terminal: func() Terminal { return fakeTerminal{tty: false} },
		Stdout:   &stdout,
	}

	if err := run(context.Background(), deps, runOptions{cfg: display.DefaultConfig()}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledHeadless {
		t.Fatalf("RunHeadless not called")
	}
}

func TestRun_FramesForceHeadless(t *testing.T) {
	t.Parallel()

	var frames int
	deps := Deps{
		RunTUI: func(display.Config, *slog.Logger) error {
			t.Fatalf("RunTUI should not be called with --frames")
			return nil
		},
		RunHeadless: func(ctx context.Context, opts headless.Options) error {
			frames = opts.Frames
			if !opts.Color {
				t.Fatalf("color should follow the terminal")
			}
			return nil
		},
		Terminal: func() Terminal { return fakeTerminal{tty: true, color: true} },
	}

	if err := run(context.Background(), deps, runOptions{cfg: display.DefaultConfig(), frames: 5}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if frames != 5 {
		t.Fatalf("frames mismatch: got %d", frames)
	}
}

func TestRun_WrapsTUIError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	deps := Deps{
		RunTUI:      func(display.Config, *slog.Logger) error { return boom },
		RunHeadless: func(context.Context, headless.Options) error { return nil },
		Terminal:    func() Terminal { return fakeTerminal{tty: true} },
	}

	err := run(context.Background(), deps, runOptions{cfg: display.DefaultConfig()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), Deps{}, runOptions{cfg: display.DefaultConfig()}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}

func TestRun_WritesLogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seg7.log")
	deps := Deps{
		RunTUI: func(cfg display.Config, log *slog.Logger) error {
			log.Info("hello from test")
			return nil
		},
		RunHeadless: func(context.Context, headless.Options) error { return nil },
		Terminal:    func() Terminal { return fakeTerminal{tty: true} },
	}

	if err := run(context.Background(), deps, runOptions{cfg: display.DefaultConfig(), logFile: path}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello from test") {
		t.Fatalf("log file missing message, got %q", string(b))
	}
}
