// Package srgb converts colors between 8-bit gamma-encoded sRGB and 32-bit
// float linear sRGB.
//
// # Overview
//
// Colors coming from textures, color pickers and asset files are encoded:
// each channel is a byte on the sRGB gamma curve. Blending, lighting and
// compositing must happen on linear values. srgb provides one type per
// space and exact conversions between them:
//
//	c := srgb.EncodedRGB(128, 64, 32) // as stored on disk
//	l := c.ToLinear()                 // linear, ready for math
//	l = l.Lerp(srgb.White.ToLinear(), 0.25)
//	out := l.ToEncoded()              // back to bytes
//
// # Guarantees
//
//   - Decode(0) and Decode(1) are exactly 0 and 1; encoding 0 and 1 gives
//     exactly 0 and 255.
//   - Every byte survives a decode/encode round trip unchanged.
//   - Alpha is never gamma corrected: it is scaled by 1/255 and back.
//   - Packed integers are built with shifts, never by reinterpreting memory,
//     so they are the same on every host.
//
// # Rounding
//
// Float to byte conversion clamps to [0,1] (NaN becomes 0), multiplies by
// 255 and rounds half away from zero.
//
// # Performance
//
// Encoded to linear conversion is a 256-entry table lookup built once at
// package initialization. Linear to encoded evaluates the curve directly,
// since its input is continuous.
//
// # Math backend
//
// Exponentiation uses math.Pow by default. Building with the srgb_softpow
// tag switches to a float32 software implementation for targets where the
// host routines are not wanted.
package srgb
