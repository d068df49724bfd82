package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/srgb/palette"
)

func newPaletteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [file]",
		Short: "Convert a YAML palette to linear colors",
		Long: `Load a YAML palette and print every entry in linear space.
Without a file the built-in default palette is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			p, err := palette.Load(path)
			if err != nil {
				return err
			}
			lin := p.Linear()
			return write(cmd.OutOrStdout(), opts.format, lin, func() string {
				var sb strings.Builder
				for i, e := range lin {
					if i > 0 {
						sb.WriteByte('\n')
					}
					fmt.Fprintf(&sb, "%s\t%s", e.Name, e.Color)
				}
				return sb.String()
			})
		},
	}
}

func newExtractCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a YAML palette from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("failed to decode image %s: %w", args[0], err)
			}
			b, err := palette.Extract(img, n).Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().IntVarP(&n, "colors", "n", 8, "Maximum number of colors")
	return cmd
}
