package color

// Constants of the piecewise sRGB curve.
const (
	decodeThreshold = 0.04045   // encoded value where the power segment starts
	encodeThreshold = 0.0031308 // linear value where the power segment starts
	linearSlope     = 12.92
	gamma           = 2.4
	offset          = 0.055
	scale           = 1.055
)

// Transfer evaluates the sRGB transfer functions with a fixed Pow backend.
// The zero value uses the default backend.
type Transfer struct {
	pow Pow
}

// NewTransfer returns a Transfer using p. A nil p selects DefaultPow.
func NewTransfer(p Pow) Transfer {
	return Transfer{pow: p}
}

func (t Transfer) backend() Pow {
	if t.pow == nil {
		return defaultPow
	}
	return t.pow
}

// Decode converts an encoded sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// The endpoints are pinned: Decode(0) == 0 and Decode(1) == 1 exactly,
// whatever the backend. Inputs outside [0,1] (and NaN) are clamped.
func (t Transfer) Decode(s float64) float64 {
	switch {
	case !(s > 0):
		return 0
	case s >= 1:
		return 1
	case s <= decodeThreshold:
		return s / linearSlope
	}
	return t.backend().Pow((s+offset)/scale, gamma)
}

// Encode converts a linear component to encoded sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// Encode(0) == 0 and Encode(1) == 1 exactly. Inputs outside [0,1] (and NaN)
// are clamped.
func (t Transfer) Encode(l float64) float64 {
	switch {
	case !(l > 0):
		return 0
	case l >= 1:
		return 1
	case l <= encodeThreshold:
		return l * linearSlope
	}
	return scale*t.backend().Pow(l, 1/gamma) - offset
}

// DecodeByte decodes an 8-bit encoded component without the lookup table.
func (t Transfer) DecodeByte(b uint8) float32 {
	return float32(t.Decode(float64(b) / 255))
}

// EncodeByte encodes a linear component and quantizes it to 8 bits.
func (t Transfer) EncodeByte(l float32) uint8 {
	return ToByte(t.Encode(float64(l)))
}

// Table computes the 256-entry decode table for this backend.
func (t Transfer) Table() [256]float32 {
	var tbl [256]float32
	for i := range tbl {
		tbl[i] = t.DecodeByte(uint8(i))
	}
	return tbl
}

// Decode converts an encoded component to linear using the default backend.
func Decode(s float64) float64 {
	return Transfer{}.Decode(s)
}

// Encode converts a linear component to encoded using the default backend.
func Encode(l float64) float64 {
	return Transfer{}.Encode(l)
}

// EncodeByte encodes a linear component to an 8-bit value using the default
// backend.
func EncodeByte(l float32) uint8 {
	return Transfer{}.EncodeByte(l)
}
