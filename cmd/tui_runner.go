package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/tui"
)

func defaultRunTUI(cfg display.Config, log *slog.Logger) error {
	m, err := tui.NewModel(cfg, log)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
