package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/srgb"
)

// parseColor accepts an rrggbbaa hex string, optionally prefixed with '#',
// or an SVG color keyword.
func parseColor(s string) (srgb.EncodedColor, error) {
	c, err := srgb.ParseHex(strings.TrimPrefix(s, "#"))
	if err == nil {
		return c, nil
	}
	if n, nerr := srgb.Named(s); nerr == nil {
		return n, nil
	}
	return srgb.Clear, err
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode an rrggbbaa color to linear floats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			lin := c.ToLinear()
			return write(cmd.OutOrStdout(), opts.format, lin, lin.String)
		},
	}
}

func newEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <r> <g> <b> [a]",
		Short: "Encode linear floats to an rrggbbaa color",
		Long:  `Encode linear channel values to 8-bit sRGB. Alpha defaults to 1.`,
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := [4]float32{0, 0, 0, 1}
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return fmt.Errorf("channel %d: %w", i, err)
				}
				v[i] = float32(f)
			}
			c := srgb.LinearFromArray(v).ToEncoded()
			return write(cmd.OutOrStdout(), opts.format, c, c.Hex)
		},
	}
}

func newPackCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <hex>",
		Short: "Pack a color into a 32-bit integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := srgb.ParseChannelOrder(opts.order)
			if err != nil {
				return err
			}
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			v := c.Pack(o)
			return write(cmd.OutOrStdout(), opts.format, v, func() string {
				return fmt.Sprintf("0x%08x", v)
			})
		},
	}
}

func newUnpackCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <uint32>",
		Short: "Unpack a 32-bit integer into an rrggbbaa color",
		Long:  `Unpack a decimal or 0x-prefixed integer using the --order channel layout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := srgb.ParseChannelOrder(opts.order)
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid packed color %q: %w", args[0], err)
			}
			c := srgb.UnpackEncoded(uint32(v), o)
			return write(cmd.OutOrStdout(), opts.format, c, c.Hex)
		},
	}
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the 256-entry sRGB decode table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := srgb.DecodeTable()
			return write(cmd.OutOrStdout(), opts.format, t[:], func() string {
				var sb strings.Builder
				for i, v := range t {
					if i > 0 {
						sb.WriteByte('\n')
					}
					fmt.Fprintf(&sb, "%3d %.9g", i, v)
				}
				return sb.String()
			})
		},
	}
}

func newNameCmd(opts *options) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "name <color>",
		Short: "Resolve an SVG color keyword",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names := srgb.Names()
				return write(cmd.OutOrStdout(), opts.format, names, func() string {
					return strings.Join(names, "\n")
				})
			}
			c, err := srgb.Named(args[0])
			if errors.Is(err, srgb.ErrUnknownColorName) {
				return fmt.Errorf("%w (see 'srgbconv name --list')", err)
			}
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.format, c, c.Hex)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List every known color name")
	return cmd
}
