package color

import (
	"math"
	"testing"
)

var backends = []struct {
	name string
	pow  Pow
}{
	{"host", HostPow{}},
	{"soft", SoftPow{}},
}

// TestDecodeEdgeCases tests boundary and breakpoint values of the EOTF.
func TestDecodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"below zero", -0.25, 0.0},
		{"above one", 1.5, 1.0},
		{"nan", math.NaN(), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTransfer(HostPow{}).Decode(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Decode(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestEncodeEdgeCases tests boundary and breakpoint values of the OETF.
func TestEncodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
		{"below zero", -1, 0.0},
		{"above one", 3, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTransfer(HostPow{}).Encode(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Encode(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestBoundaryExactness checks the endpoints with no tolerance, for every backend.
func TestBoundaryExactness(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			tr := NewTransfer(be.pow)
			if got := tr.Decode(0); got != 0 {
				t.Errorf("Decode(0) = %v, want 0", got)
			}
			if got := tr.Decode(1); got != 1 {
				t.Errorf("Decode(1) = %v, want 1", got)
			}
			if got := tr.EncodeByte(0); got != 0 {
				t.Errorf("EncodeByte(0) = %d, want 0", got)
			}
			if got := tr.EncodeByte(1); got != 255 {
				t.Errorf("EncodeByte(1) = %d, want 255", got)
			}
		})
	}
}

// TestKnownValues compares against reference values of the sRGB curve.
func TestKnownValues(t *testing.T) {
	decodes := []struct {
		b    uint8
		want float32
	}{
		{0, 0.0},
		{66, 0.05448028},
		{100, 0.1274377},
		{128, 0.2158605},
		{240, 0.8713671},
		{255, 1.0},
	}
	for _, tt := range decodes {
		got := DecodeByte(tt.b)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("DecodeByte(%d) = %v, want %v", tt.b, got, tt.want)
		}
	}

	encodes := []struct {
		l    float32
		want uint8
	}{
		{0.0, 0},
		{0.05448028, 66},
		{0.1274377, 100},
		{0.2158605, 128},
		{0.8713672, 240},
		{0.5, 188},
		{1.0, 255},
	}
	for _, tt := range encodes {
		if got := EncodeByte(tt.l); got != tt.want {
			t.Errorf("EncodeByte(%v) = %d, want %d", tt.l, got, tt.want)
		}
	}
}

// TestDecodeEncodeRoundTrip requires every byte to survive decode then encode
// bit-exactly, for every backend.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			tr := NewTransfer(be.pow)
			tbl := tr.Table()
			for i := 0; i < 256; i++ {
				if got := tr.EncodeByte(tbl[i]); got != uint8(i) {
					t.Errorf("round trip %d -> %v -> %d", i, tbl[i], got)
				}
			}
		})
	}
}

// TestEncodeDecodeInverse checks Encode undoes Decode over [0,1] up to rounding.
func TestEncodeDecodeInverse(t *testing.T) {
	tr := NewTransfer(HostPow{})
	for i := 0; i <= 1000; i++ {
		s := float64(i) / 1000
		got := tr.Encode(tr.Decode(s))
		if math.Abs(got-s) > 1e-9 {
			t.Errorf("Encode(Decode(%v)) = %v", s, got)
		}
	}
}

// TestMonotonic verifies both curves never decrease, including across the
// breakpoint.
func TestMonotonic(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			tr := NewTransfer(be.pow)
			prevD, prevE := -1.0, -1.0
			for i := 0; i <= 4096; i++ {
				x := float64(i) / 4096
				d, e := tr.Decode(x), tr.Encode(x)
				if d < prevD {
					t.Errorf("Decode not monotonic at %v: %v < %v", x, d, prevD)
				}
				if e < prevE {
					t.Errorf("Encode not monotonic at %v: %v < %v", x, e, prevE)
				}
				prevD, prevE = d, e
			}
		})
	}
}

// TestBreakpointContinuity checks both segments meet at the thresholds.
func TestBreakpointContinuity(t *testing.T) {
	lo := decodeThreshold / linearSlope
	hi := math.Pow((decodeThreshold+offset)/scale, gamma)
	if math.Abs(lo-hi) > 1e-6 {
		t.Errorf("decode segments disagree at threshold: %v vs %v", lo, hi)
	}

	lo = encodeThreshold * linearSlope
	hi = scale*math.Pow(encodeThreshold, 1/gamma) - offset
	if math.Abs(lo-hi) > 1e-5 {
		t.Errorf("encode segments disagree at threshold: %v vs %v", lo, hi)
	}
}

// TestSoftPowAgreesWithHost bounds the float32 backend error.
func TestSoftPowAgreesWithHost(t *testing.T) {
	host, soft := HostPow{}, SoftPow{}
	for i := 1; i <= 1000; i++ {
		x := float64(i) / 1000
		for _, y := range []float64{2.4, 1 / 2.4} {
			h, s := host.Pow(x, y), soft.Pow(x, y)
			if math.Abs(h-s) > 1e-5 {
				t.Errorf("Pow(%v, %v): host=%v soft=%v", x, y, h, s)
			}
		}
	}
}

// TestNewTransferNil checks a nil backend falls back to the default.
func TestNewTransferNil(t *testing.T) {
	tr := NewTransfer(nil)
	if got, want := tr.Decode(0.5), Decode(0.5); got != want {
		t.Errorf("NewTransfer(nil).Decode(0.5) = %v, want %v", got, want)
	}
	if DefaultPow() == nil {
		t.Fatal("DefaultPow() returned nil")
	}
}
