package srgb

import "errors"

var (
	// ErrInvalidHexFormat is returned by ParseHex when the input is not
	// exactly 8 hexadecimal digits.
	ErrInvalidHexFormat = errors.New("srgb: invalid hex format")

	// ErrUnknownColorName is returned by Named for names outside the SVG 1.1
	// color keyword set.
	ErrUnknownColorName = errors.New("srgb: unknown color name")

	// ErrUnknownChannelOrder is returned by ParseChannelOrder.
	ErrUnknownChannelOrder = errors.New("srgb: unknown channel order")
)
