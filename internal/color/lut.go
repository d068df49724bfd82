package color

// decodeLUT provides O(1) sRGB to linear conversion.
// Pre-computed 256 entries, 1KB memory cost, written once in init and
// read-only afterwards.
var decodeLUT [256]float32

func init() {
	decodeLUT = Transfer{}.Table()
}

// DecodeByte converts an sRGB byte to linear float32 using the lookup table.
//
// The byte is the index, so the cost is a single load. Entry i is exactly
// Decode(i/255) narrowed to float32.
//
// Example:
//
//	l := DecodeByte(128) // ~0.2159 (not 0.5!)
func DecodeByte(b uint8) float32 {
	return decodeLUT[b]
}

// DecodeTable returns a copy of the lookup table.
func DecodeTable() [256]float32 {
	return decodeLUT
}
