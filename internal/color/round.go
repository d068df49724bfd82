package color

import "math"

// ToByte quantizes a normalized value to [0,255].
//
// The value is clamped to [0,1] (NaN maps to 0), scaled by 255 and rounded
// half away from zero. Every float to byte conversion in the module goes
// through here so that rgb and alpha share one tie-breaking rule.
func ToByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}
