// Package color implements the sRGB transfer functions and the decode
// lookup table shared by the public srgb package.
//
// Decode is the sRGB EOTF (encoded to linear light) and Encode is its inverse,
// the OETF. Both operate on a single normalized channel in float64 so that the
// 8-bit round trip stays exact; the public API narrows to float32 at the edges.
//
// References:
//   - IEC 61966-2-1 (sRGB)
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package color
