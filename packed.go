package srgb

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ChannelOrder selects the byte layout used when packing a color into a
// uint32. It is a parameter of the packing operations, never a property of a
// color.
type ChannelOrder uint8

const (
	// OrderRGBA packs red into the most significant byte: 0xRRGGBBAA.
	OrderRGBA ChannelOrder = iota
	// OrderBGRA packs blue into the most significant byte: 0xBBGGRRAA.
	OrderBGRA
)

// String returns "rgba" or "bgra".
func (o ChannelOrder) String() string {
	switch o {
	case OrderRGBA:
		return "rgba"
	case OrderBGRA:
		return "bgra"
	}
	return fmt.Sprintf("ChannelOrder(%d)", uint8(o))
}

// ParseChannelOrder parses "rgba" or "bgra", ignoring case.
func ParseChannelOrder(s string) (ChannelOrder, error) {
	switch strings.ToLower(s) {
	case "rgba":
		return OrderRGBA, nil
	case "bgra":
		return OrderBGRA, nil
	}
	return OrderRGBA, fmt.Errorf("%w: %q", ErrUnknownChannelOrder, s)
}

// Pack packs c into a uint32 with explicit shifts, so the result does not
// depend on host byte order. Orders other than OrderBGRA pack as OrderRGBA.
func (c EncodedColor) Pack(o ChannelOrder) uint32 {
	c0, c2 := c.R, c.B
	if o == OrderBGRA {
		c0, c2 = c.B, c.R
	}
	return uint32(c0)<<24 | uint32(c.G)<<16 | uint32(c2)<<8 | uint32(c.A)
}

// UnpackEncoded is the inverse of Pack: UnpackEncoded(c.Pack(o), o) == c.
func UnpackEncoded(v uint32, o ChannelOrder) EncodedColor {
	c0 := uint8(v >> 24)
	c1 := uint8(v >> 16)
	c2 := uint8(v >> 8)
	c3 := uint8(v)
	if o == OrderBGRA {
		return EncodedColor{R: c2, G: c1, B: c0, A: c3}
	}
	return EncodedColor{R: c0, G: c1, B: c2, A: c3}
}

// PackRGBA is shorthand for c.Pack(OrderRGBA).
func (c EncodedColor) PackRGBA() uint32 { return c.Pack(OrderRGBA) }

// PackBGRA is shorthand for c.Pack(OrderBGRA).
func (c EncodedColor) PackBGRA() uint32 { return c.Pack(OrderBGRA) }

// UnpackRGBA is shorthand for UnpackEncoded(v, OrderRGBA).
func UnpackRGBA(v uint32) EncodedColor { return UnpackEncoded(v, OrderRGBA) }

// UnpackBGRA is shorthand for UnpackEncoded(v, OrderBGRA).
func UnpackBGRA(v uint32) EncodedColor { return UnpackEncoded(v, OrderBGRA) }

// DecodePixels converts 4-byte pixels in src to linear colors in dst.
// Each pixel is the packed value of the given order stored most significant
// byte first, which is the memory layout of RGBA8 and BGRA8 textures.
// It returns the number of pixels converted: min(len(dst), len(src)/4).
func DecodePixels(dst []LinearColor, src []byte, o ChannelOrder) int {
	n := min(len(dst), len(src)/4)
	decodeRange(dst, src, o, 0, n)
	return n
}

func decodeRange(dst []LinearColor, src []byte, o ChannelOrder, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i] = UnpackEncoded(binary.BigEndian.Uint32(src[i*4:]), o).ToLinear()
	}
}

// EncodePixels is the inverse of DecodePixels.
// It returns the number of pixels converted: min(len(dst)/4, len(src)).
func EncodePixels(dst []byte, src []LinearColor, o ChannelOrder) int {
	n := min(len(dst)/4, len(src))
	encodeRange(dst, src, o, 0, n)
	return n
}

func encodeRange(dst []byte, src []LinearColor, o ChannelOrder, lo, hi int) {
	for i := lo; i < hi; i++ {
		binary.BigEndian.PutUint32(dst[i*4:], src[i].ToEncoded().Pack(o))
	}
}
