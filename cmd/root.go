package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/headless"
	"github.com/fchimpan/seg7/internal/palette"
)

// Terminal reports what the output terminal can do.
type Terminal interface {
	IsTerminalOutput() bool
	IsColorEnabled() bool
}

type Deps struct {
	RunTUI      func(cfg display.Config, log *slog.Logger) error
	RunHeadless func(ctx context.Context, opts headless.Options) error
	Terminal    func() Terminal
	LoadEnv     func(files ...string) error
	Getenv      func(key string) string
	Stdout      io.Writer
	Stderr      io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI:      defaultRunTUI,
		RunHeadless: headless.Run,
		Terminal: func() Terminal {
			t := term.FromEnv()
			return &t
		},
		LoadEnv: godotenv.Load,
		Getenv:  os.Getenv,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// displayFlags are shared by the root command and its subcommands.
type displayFlags struct {
	text     string
	digits   int
	speedMs  int
	scroll   bool
	rainbow  bool
	color    string
	envFile  string
	logFile  string
	frames   int
	defaults display.Config
}

func NewRootCmd(deps Deps) *cobra.Command {
	f := &displayFlags{defaults: display.DefaultConfig()}

	c := &cobra.Command{
		Use:          "seg7",
		Short:        "Show text on a simulated 7-segment display with a scrolling marquee",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, deps, f)
			if err != nil {
				printHint(deps.Stderr, err)
				return err
			}
			if f.frames < 0 {
				return fmt.Errorf("--frames must be >= 0")
			}
			return run(cmd.Context(), deps, runOptions{cfg: cfg, frames: f.frames, logFile: f.logFile})
		},
	}

	pf := c.PersistentFlags()
	pf.StringVarP(&f.text, "text", "t", f.defaults.Text, "text to display")
	pf.IntVarP(&f.digits, "digits", "d", f.defaults.DigitCount, "number of digits")
	pf.IntVarP(&f.speedMs, "speed", "s", int(f.defaults.ScrollSpeed/time.Millisecond), "scroll interval in milliseconds")
	pf.BoolVar(&f.scroll, "scroll", f.defaults.Scrolling, "scroll the text as a marquee")
	pf.BoolVar(&f.rainbow, "rainbow", f.defaults.Rainbow, "color segments with a rainbow gradient")
	pf.StringVar(&f.color, "color", "", "segment color (hex, hsl(), rgb() or a color name)")
	pf.StringVar(&f.envFile, "env-file", "", "load SEG7_* defaults from this file (default: .env if present)")
	pf.StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	c.Flags().IntVarP(&f.frames, "frames", "n", 0, "print this many frames to stdout instead of running the interactive display")

	c.AddCommand(newEmbedCmd(deps, f))

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

// resolveConfig layers flags over SEG7_* environment values over defaults.
func resolveConfig(cmd *cobra.Command, deps Deps, f *displayFlags) (display.Config, error) {
	if err := loadEnv(deps, f.envFile); err != nil {
		return display.Config{}, err
	}
	getenv := deps.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	cfg, err := configFromEnv(getenv, f.defaults)
	if err != nil {
		return display.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("text") {
		cfg.Text = f.text
	}
	if flags.Changed("digits") {
		cfg.DigitCount = f.digits
	}
	if flags.Changed("speed") {
		cfg.ScrollSpeed = time.Duration(f.speedMs) * time.Millisecond
	}
	if flags.Changed("scroll") {
		cfg.Scrolling = f.scroll
	}
	if flags.Changed("rainbow") {
		cfg.Rainbow = f.rainbow
	}
	if flags.Changed("color") {
		cfg.Color = palette.Color(f.color)
	}

	if err := cfg.Validate(); err != nil {
		return display.Config{}, err
	}
	if cfg.Color != "" {
		if _, err := palette.ToHex(cfg.Color); err != nil {
			return display.Config{}, fmt.Errorf("invalid --color: %w", err)
		}
	}
	return cfg, nil
}

func loadEnv(deps Deps, file string) error {
	if deps.LoadEnv == nil {
		return nil
	}
	if file != "" {
		if err := deps.LoadEnv(file); err != nil {
			return fmt.Errorf("failed to load env file %q: %w", file, err)
		}
		return nil
	}
	// An absent .env is fine.
	if err := deps.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func printHint(w io.Writer, err error) {
	if display.IsInvalidConfiguration(err) {
		fmt.Fprintln(w, "hint: --digits and --speed (or SEG7_DIGITS / SEG7_SPEED) must be > 0")
	}
}
