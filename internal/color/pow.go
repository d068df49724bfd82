package color

import (
	"math"

	"github.com/chewxy/math32"
)

// Pow is the exponentiation primitive used by the transfer functions.
//
// Implementations must be accurate enough that every 8-bit value survives a
// decode/encode round trip. Inputs are always in [0,1].
type Pow interface {
	Pow(x, y float64) float64
}

// HostPow uses the float64 math.Pow from the standard library.
type HostPow struct{}

// Pow returns x**y.
func (HostPow) Pow(x, y float64) float64 { return math.Pow(x, y) }

// SoftPow evaluates in single precision with a portable software
// implementation. It stands in for platforms where the host math routines
// are unavailable or not trusted.
type SoftPow struct{}

// Pow returns x**y computed in float32.
func (SoftPow) Pow(x, y float64) float64 {
	return float64(math32.Pow(float32(x), float32(y)))
}

// DefaultPow returns the backend selected by the build configuration.
func DefaultPow() Pow { return defaultPow }
