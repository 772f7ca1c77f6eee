package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fchimpan/seg7/internal/embed"
)

func newEmbedCmd(deps Deps, f *displayFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "embed",
		Short: "Print a snippet that recreates this display in a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := embed.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, deps, f)
			if err != nil {
				printHint(deps.Stderr, err)
				return err
			}
			out, err := embed.Render(fm, embed.FromConfig(cfg))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprint(deps.Stdout, out); err != nil {
				return fmt.Errorf("failed to write snippet: %w", err)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", string(embed.FormatHTML), "snippet format: html, json or yaml")
	return c
}
