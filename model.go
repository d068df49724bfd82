package srgb

import "image/color"

// Verify at compile time that EncodedColor implements color.Color.
var _ color.Color = EncodedColor{}

// RGBA implements color.Color. EncodedColor is straight alpha, so it behaves
// like color.NRGBA.
func (c EncodedColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// EncodedModel converts any color.Color to an EncodedColor.
var EncodedModel = color.ModelFunc(encodedModel)

func encodedModel(c color.Color) color.Color {
	if e, ok := c.(EncodedColor); ok {
		return e
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return EncodedColor{R: n.R, G: n.G, B: n.B, A: n.A}
}

// EncodedFromColor converts a standard color.Color. Premultiplied inputs are
// un-premultiplied first.
func EncodedFromColor(c color.Color) EncodedColor {
	return EncodedModel.Convert(c).(EncodedColor)
}
