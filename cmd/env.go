package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/palette"
)

// configFromEnv applies SEG7_* variables on top of base.
func configFromEnv(getenv func(string) string, base display.Config) (display.Config, error) {
	cfg := base
	if v, ok := lookup(getenv, "SEG7_TEXT"); ok {
		cfg.Text = v
	}
	digits, err := intEnvStrict(getenv, "SEG7_DIGITS", cfg.DigitCount)
	if err != nil {
		return display.Config{}, err
	}
	cfg.DigitCount = digits

	speedMs, err := intEnvStrict(getenv, "SEG7_SPEED", int(cfg.ScrollSpeed/time.Millisecond))
	if err != nil {
		return display.Config{}, err
	}
	cfg.ScrollSpeed = time.Duration(speedMs) * time.Millisecond

	if cfg.Scrolling, err = boolEnvStrict(getenv, "SEG7_SCROLL", cfg.Scrolling); err != nil {
		return display.Config{}, err
	}
	if cfg.Rainbow, err = boolEnvStrict(getenv, "SEG7_RAINBOW", cfg.Rainbow); err != nil {
		return display.Config{}, err
	}
	if v, ok := lookup(getenv, "SEG7_COLOR"); ok {
		cfg.Color = palette.Color(strings.TrimSpace(v))
	}
	return cfg, nil
}

// lookup treats an empty variable as unset.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	return v, v != ""
}

func intEnvStrict(getenv func(string) string, key string, fallback int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func boolEnvStrict(getenv func(string) string, key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
