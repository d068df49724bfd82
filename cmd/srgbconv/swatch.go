package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var swatchStyle = lipgloss.NewStyle().Width(6)

func newSwatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swatch <color>...",
		Short: "Show colors as terminal swatches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				c, err := parseColor(a)
				if err != nil {
					return err
				}
				block := swatchStyle.Background(lipgloss.Color("#" + c.Hex()[:6])).Render("")
				lin := c.ToLinear()
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", block, c.Hex(), lin); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
