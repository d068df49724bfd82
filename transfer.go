package srgb

import icolor "github.com/gogpu/srgb/internal/color"

// Decode applies the sRGB EOTF to one normalized channel: encoded in,
// linear out. Decode(0) == 0 and Decode(1) == 1 exactly.
func Decode(s float32) float32 {
	return float32(icolor.Decode(float64(s)))
}

// Encode applies the sRGB OETF to one normalized channel: linear in,
// encoded out. The input is clamped to [0,1].
func Encode(l float32) float32 {
	return float32(icolor.Encode(float64(l)))
}

// DecodeChannel converts one 8-bit encoded channel to linear with a table
// lookup.
func DecodeChannel(b uint8) float32 {
	return icolor.DecodeByte(b)
}

// EncodeChannel converts one linear channel to an 8-bit encoded value.
// EncodeChannel(DecodeChannel(b)) == b for every byte.
func EncodeChannel(l float32) uint8 {
	return icolor.EncodeByte(l)
}

// DecodeTable returns a copy of the 256-entry table behind DecodeChannel.
func DecodeTable() [256]float32 {
	return icolor.DecodeTable()
}
