package srgb

import "github.com/gogpu/gputypes"

// ChannelOrderFor reports the packing order matching an 8-bit four channel
// texture format. The sRGB and unorm variants share a byte layout; they only
// differ in whether the GPU decodes on sampling. ok is false for any other
// format.
func ChannelOrderFor(f gputypes.TextureFormat) (o ChannelOrder, ok bool) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return OrderRGBA, true
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return OrderBGRA, true
	}
	return OrderRGBA, false
}

// GPUColor returns c as a gputypes.Color, e.g. for a render pass clear value.
// Clear colors are linear, so no conversion happens.
func (c LinearColor) GPUColor() gputypes.Color {
	return gputypes.NewColor(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

// LinearFromGPU narrows a gputypes.Color to float32.
func LinearFromGPU(c gputypes.Color) LinearColor {
	return LinearColor{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}
