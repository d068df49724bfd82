package srgb

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the SVG 1.1 color keyword name, e.g. "cornflowerblue".
// Matching ignores case and spaces, so "Cornflower Blue" works too.
func Named(name string) (EncodedColor, error) {
	// A Caser is stateful, so one is made per call.
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), " ", "")
	c, ok := colornames.Map[key]
	if !ok {
		Logger().Debug("srgb: unknown color name", "name", name)
		return Clear, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	// colornames values are opaque, so premultiplication does not matter.
	return EncodedColor{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Names returns the recognized color names in sorted order.
func Names() []string {
	return slices.Clone(colornames.Names)
}
