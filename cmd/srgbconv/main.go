// srgbconv converts colors between 8-bit sRGB and linear float form.
//
// Usage:
//
//	srgbconv decode <hex>             - Decode rrggbbaa to linear floats
//	srgbconv encode <r> <g> <b> [a]   - Encode linear floats to rrggbbaa
//	srgbconv pack <hex>               - Pack a color into a uint32
//	srgbconv unpack <uint32>          - Unpack a uint32 into rrggbbaa
//	srgbconv table                    - Print the 256-entry decode table
//	srgbconv name <color>             - Resolve an SVG color keyword
//	srgbconv palette [file]           - Convert a YAML palette to linear
//	srgbconv extract <png>            - Extract a palette from an image
//	srgbconv swatch <color>...        - Show colors in the terminal
//
// Global flags:
//
//	--verbose          - Log debug output to stderr
//	--order <order>    - Channel order for pack/unpack (rgba, bgra)
//	--format <format>  - Output format (text, json, yaml, cbor, msgpack)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/srgb"
)

// options holds the global flags shared by every subcommand.
type options struct {
	verbose bool
	order   string
	format  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "srgbconv",
		Short: "Convert colors between sRGB and linear space",
		Long: `srgbconv converts 8-bit gamma-encoded sRGB colors to linear float colors
and back, packs colors into 32-bit integers, and works with YAML palettes.

Examples:
  srgbconv decode 6b9ebeff
  srgbconv encode 0.5 0.5 0.5
  srgbconv pack --order bgra 6b9ebeff
  srgbconv palette --format yaml ui.yaml
  srgbconv swatch steelblue 6b9ebeff`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
					ReportTimestamp: true,
					Prefix:          "srgbconv",
					Level:           log.DebugLevel,
				})
				srgb.SetLogger(slog.New(logger))
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().StringVar(&opts.order, "order", "rgba", "Channel order for pack/unpack (rgba, bgra)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "Output format (text, json, yaml, cbor, msgpack)")

	root.AddCommand(
		newDecodeCmd(opts),
		newEncodeCmd(opts),
		newPackCmd(opts),
		newUnpackCmd(opts),
		newTableCmd(opts),
		newNameCmd(opts),
		newPaletteCmd(opts),
		newExtractCmd(),
		newSwatchCmd(),
	)
	return root
}
