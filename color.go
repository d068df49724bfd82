package srgb

import (
	"fmt"

	icolor "github.com/gogpu/srgb/internal/color"
)

// EncodedColor is an 8-bit per channel, gamma-encoded sRGB color with a
// linearly scaled alpha. This is the space of textures, color pickers and
// asset files.
//
// Blending is not valid in this space. Convert with ToLinear first, do the
// math on LinearColor, then convert back with LinearColor.ToEncoded.
//
// The fields are laid out as four tightly packed bytes in r, g, b, a order.
// EncodedColor is comparable and can be used as a map key.
type EncodedColor struct {
	R uint8 `json:"r" yaml:"r" msgpack:"r" cbor:"r"`
	G uint8 `json:"g" yaml:"g" msgpack:"g" cbor:"g"`
	B uint8 `json:"b" yaml:"b" msgpack:"b" cbor:"b"`
	A uint8 `json:"a" yaml:"a" msgpack:"a" cbor:"a"`
}

// NewEncoded creates an encoded color from its four channels.
func NewEncoded(r, g, b, a uint8) EncodedColor {
	return EncodedColor{R: r, G: g, B: b, A: a}
}

// EncodedRGB creates an opaque encoded color.
func EncodedRGB(r, g, b uint8) EncodedColor {
	return EncodedColor{R: r, G: g, B: b, A: 255}
}

// Common colors. Every channel is 0 or 255, so Green is (0,255,0) and Teal
// is the bright cyan-teal (0,255,255). The SVG keywords returned by Named
// differ: "green" is (0,128,0) and "teal" is (0,128,128); their full
// intensity equivalents are "lime" and "aqua".
var (
	White = EncodedRGB(255, 255, 255)
	Black = EncodedRGB(0, 0, 0)
	Clear = NewEncoded(0, 0, 0, 0)

	Red          = EncodedRGB(255, 0, 0)
	RedClear     = NewEncoded(255, 0, 0, 0)
	Green        = EncodedRGB(0, 255, 0)
	GreenClear   = NewEncoded(0, 255, 0, 0)
	Blue         = EncodedRGB(0, 0, 255)
	BlueClear    = NewEncoded(0, 0, 255, 0)
	Yellow       = EncodedRGB(255, 255, 0)
	YellowClear  = NewEncoded(255, 255, 0, 0)
	Fuchsia      = EncodedRGB(255, 0, 255) // the usual "missing texture" color
	FuchsiaClear = NewEncoded(255, 0, 255, 0)
	Teal         = EncodedRGB(0, 255, 255)
	TealClear    = NewEncoded(0, 255, 255, 0)
)

// WithR returns a copy of c with red replaced.
func (c EncodedColor) WithR(r uint8) EncodedColor { c.R = r; return c }

// WithG returns a copy of c with green replaced.
func (c EncodedColor) WithG(g uint8) EncodedColor { c.G = g; return c }

// WithB returns a copy of c with blue replaced.
func (c EncodedColor) WithB(b uint8) EncodedColor { c.B = b; return c }

// WithA returns a copy of c with alpha replaced.
func (c EncodedColor) WithA(a uint8) EncodedColor { c.A = a; return c }

// ToLinear converts c to linear space.
// RGB goes through the decode lookup table; alpha is scaled by 1/255 with no
// gamma applied.
func (c EncodedColor) ToLinear() LinearColor {
	return LinearColor{
		R: icolor.DecodeByte(c.R),
		G: icolor.DecodeByte(c.G),
		B: icolor.DecodeByte(c.B),
		A: float32(c.A) / 255.0,
	}
}

// EncodedFloats returns the channels scaled to [0,1] while staying in
// encoded space. Some APIs want float input even for gamma-encoded values;
// this is not a linear conversion.
func (c EncodedColor) EncodedFloats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

// EncodedFromFloats is the inverse of EncodedFloats. Values are clamped to
// [0,1] and rounded to the nearest byte.
func EncodedFromFloats(v [4]float32) EncodedColor {
	return EncodedColor{
		R: icolor.ToByte(float64(v[0])),
		G: icolor.ToByte(float64(v[1])),
		B: icolor.ToByte(float64(v[2])),
		A: icolor.ToByte(float64(v[3])),
	}
}

// Bytes returns the channels in memory order r, g, b, a.
func (c EncodedColor) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// EncodedFromBytes builds a color from bytes in r, g, b, a order.
func EncodedFromBytes(b [4]byte) EncodedColor {
	return EncodedColor{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// Hex returns the rgba-packed value as 8 lowercase hex digits, e.g. "abcdefff".
func (c EncodedColor) Hex() string {
	return fmt.Sprintf("%08x", c.PackRGBA())
}

// ParseHex parses exactly 8 hex digits (either case) in rgba order.
// No "#" or "0x" prefix and no shorthand forms are accepted.
func ParseHex(s string) (EncodedColor, error) {
	if len(s) != 8 {
		return Clear, hexError(s, fmt.Sprintf("got %d characters, want 8", len(s)))
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return Clear, hexError(s, fmt.Sprintf("non-hex character %q at offset %d", s[i], i))
		}
		v = v<<4 | d
	}
	return UnpackRGBA(v), nil
}

// MustParseHex is like ParseHex but panics on error.
// Intended for package-level variables and tests.
func MustParseHex(s string) EncodedColor {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexError(s, reason string) error {
	Logger().Debug("srgb: invalid hex", "input", s, "reason", reason)
	return fmt.Errorf("%w: %q: %s", ErrInvalidHexFormat, s, reason)
}

// hexDigit decodes one ASCII hex digit.
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// String returns a human readable form, e.g. "r: 171, g: 205, b: 239, a: 255, abcdefff".
func (c EncodedColor) String() string {
	return fmt.Sprintf("r: %d, g: %d, b: %d, a: %d, %s", c.R, c.G, c.B, c.A, c.Hex())
}

// Format implements fmt.Formatter. The x and X verbs (with the usual flags,
// e.g. %#x or %08X) format the rgba-packed integer; every other verb prints
// String.
func (c EncodedColor) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.PackRGBA())
	default:
		fmt.Fprint(f, c.String())
	}
}
