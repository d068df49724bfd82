package srgb

import (
	"encoding/binary"
	"fmt"
	"math"

	icolor "github.com/gogpu/srgb/internal/color"
)

// LinearColor is a color in linear sRGB with float32 channels.
// Use it for blending, lighting and anything else that does arithmetic on
// colors, and for uniforms sent to a GPU.
//
// Channels nominally lie in [0,1] but arithmetic may push them outside that
// range; ToEncoded clamps. Alpha is straight (not premultiplied).
//
// You rarely construct one directly: colors from files and pickers are
// encoded, so start from EncodedColor.ToLinear.
type LinearColor struct {
	R float32 `json:"r" yaml:"r" msgpack:"r" cbor:"r"`
	G float32 `json:"g" yaml:"g" msgpack:"g" cbor:"g"`
	B float32 `json:"b" yaml:"b" msgpack:"b" cbor:"b"`
	A float32 `json:"a" yaml:"a" msgpack:"a" cbor:"a"`
}

// NewLinear creates a color from channels that are already linear.
func NewLinear(r, g, b, a float32) LinearColor {
	return LinearColor{R: r, G: g, B: b, A: a}
}

// LinearRGB creates an opaque linear color.
func LinearRGB(r, g, b float32) LinearColor {
	return LinearColor{R: r, G: g, B: b, A: 1}
}

// ToEncoded converts c to encoded space.
// RGB channels are clamped to [0,1] and passed through the sRGB OETF;
// alpha is clamped and scaled by 255. Both round half away from zero.
func (c LinearColor) ToEncoded() EncodedColor {
	return EncodedColor{
		R: icolor.EncodeByte(c.R),
		G: icolor.EncodeByte(c.G),
		B: icolor.EncodeByte(c.B),
		A: icolor.ToByte(float64(c.A)),
	}
}

// Add returns the componentwise sum c + o.
func (c LinearColor) Add(o LinearColor) LinearColor {
	return LinearColor{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Sub returns the componentwise difference c - o.
func (c LinearColor) Sub(o LinearColor) LinearColor {
	return LinearColor{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Mul returns the componentwise product, e.g. light color times albedo.
func (c LinearColor) Mul(o LinearColor) LinearColor {
	return LinearColor{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Scale multiplies every channel, alpha included, by s.
func (c LinearColor) Scale(s float32) LinearColor {
	return LinearColor{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Lerp performs linear interpolation between two colors.
func (c LinearColor) Lerp(o LinearColor, t float32) LinearColor {
	return LinearColor{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Clamp restricts every channel to [0,1]. NaN becomes 0.
func (c LinearColor) Clamp() LinearColor {
	return LinearColor{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Array returns the channels in r, g, b, a order, the layout of a vec4
// uniform.
func (c LinearColor) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// LinearFromArray builds a color from r, g, b, a.
func LinearFromArray(v [4]float32) LinearColor {
	return LinearColor{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Bytes returns the 16-byte little-endian IEEE 754 representation in
// r, g, b, a order, the layout GPU buffers expect.
func (c LinearColor) Bytes() [16]byte {
	var b [16]byte
	for i, v := range c.Array() {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// LinearFromBytes is the inverse of Bytes. Malformed input can yield NaN or
// subnormal channels.
func LinearFromBytes(b [16]byte) LinearColor {
	var v [4]float32
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return LinearFromArray(v)
}

// String returns a human readable form, e.g. "r: 1, g: 0.5, b: 0, a: 1".
func (c LinearColor) String() string {
	return fmt.Sprintf("r: %g, g: %g, b: %g, a: %g", c.R, c.G, c.B, c.A)
}
