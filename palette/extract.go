package palette

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/gogpu/srgb"
)

// Extract reduces img to at most n representative colors using median cut.
// Entries are named c0, c1, ... in quantizer order.
func Extract(img image.Image, n int) Palette {
	if n <= 0 || img.Bounds().Empty() {
		return Palette{Name: "extracted"}
	}
	q := quantize.MedianCutQuantizer{}
	cp := q.Quantize(make(color.Palette, 0, n), img)

	p := Palette{Name: "extracted", Colors: make([]Entry, 0, len(cp))}
	for i, c := range cp {
		p.Colors = append(p.Colors, Entry{
			Name:  fmt.Sprintf("c%d", i),
			Color: HexColor(srgb.EncodedFromColor(c)),
		})
	}
	srgb.Logger().Debug("palette extracted", "requested", n, "colors", len(p.Colors))
	return p
}
