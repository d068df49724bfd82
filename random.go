package srgb

import "math/rand/v2"

// RandomEncoded returns a color with every channel uniform in [0,255].
// A nil r uses the global source.
func RandomEncoded(r *rand.Rand) EncodedColor {
	var v uint32
	if r == nil {
		v = rand.Uint32()
	} else {
		v = r.Uint32()
	}
	return UnpackRGBA(v)
}

// RandomLinear returns a color with every channel uniform in [0,1).
// A nil r uses the global source.
func RandomLinear(r *rand.Rand) LinearColor {
	f := rand.Float32
	if r != nil {
		f = r.Float32
	}
	return LinearColor{R: f(), G: f(), B: f(), A: f()}
}
