package palette

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/srgb"
)

const uiYAML = `name: ui
colors:
  - name: accent
    hex: 6b9ebeff
  - name: shadow
    hex: "00000080"
  - name: digits
    hex: 12345678
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(uiYAML))
	require.NoError(t, err)

	assert.Equal(t, "ui", p.Name)
	require.Len(t, p.Colors, 3)
	assert.Equal(t, srgb.NewEncoded(0x6b, 0x9e, 0xbe, 0xff), p.Colors[0].Color.Encoded())
	assert.Equal(t, srgb.NewEncoded(0, 0, 0, 0x80), p.Colors[1].Color.Encoded())
	assert.Equal(t, srgb.NewEncoded(0x12, 0x34, 0x56, 0x78), p.Colors[2].Color.Encoded())
}

func TestParseBadHex(t *testing.T) {
	_, err := Parse([]byte("name: x\ncolors:\n  - name: a\n    hex: 6b9ebe\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, srgb.ErrInvalidHexFormat))
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]byte("colors:\n  - hex: 6b9ebeff\n"))
	assert.ErrorContains(t, err, "missing name")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(uiYAML), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ui", p.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read palette")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colors: [\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse palette")
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "default", p.Name)

	c, ok := p.Lookup("steel")
	require.True(t, ok)
	assert.Equal(t, srgb.NewEncoded(107, 158, 190, 255), c)

	c, ok = p.Lookup("Clear")
	require.True(t, ok)
	assert.Equal(t, srgb.Clear, c)

	c, ok = p.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, srgb.Clear, c)
}

func TestMarshalRoundTrip(t *testing.T) {
	p := Default()
	b, err := p.Marshal()
	require.NoError(t, err)

	got, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLinear(t *testing.T) {
	p, err := Parse([]byte(uiYAML))
	require.NoError(t, err)

	lin := p.Linear()
	require.Len(t, lin, len(p.Colors))
	for i, e := range p.Colors {
		assert.Equal(t, e.Name, lin[i].Name)
		assert.Equal(t, e.Color.Encoded(), lin[i].Color.ToEncoded())
	}
	assert.InDelta(t, 0.14702727, lin[0].Color.R, 1e-6)
	assert.InDelta(t, 128.0/255, lin[1].Color.A, 1e-7)
}

func TestHexColorText(t *testing.T) {
	h := HexColor(srgb.NewEncoded(1, 2, 3, 4))
	b, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "01020304", string(b))

	var got HexColor
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, h, got)

	assert.Error(t, got.UnmarshalText([]byte("zz020304")))
}

func TestExtractSolid(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	want := color.NRGBA{R: 200, G: 30, B: 10, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, want)
		}
	}

	p := Extract(img, 4)
	require.NotEmpty(t, p.Colors)
	assert.LessOrEqual(t, len(p.Colors), 4)
	for _, e := range p.Colors {
		assert.Equal(t, srgb.EncodedRGB(200, 30, 10), e.Color.Encoded())
	}
	assert.Equal(t, "c0", p.Colors[0].Name)
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, Extract(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 0).Colors)
	assert.Empty(t, Extract(image.NewNRGBA(image.Rectangle{}), 4).Colors)
}

// TestDefaultMatchesKeywords verifies default entries that share a name with
// an SVG keyword use the keyword's value.
func TestDefaultMatchesKeywords(t *testing.T) {
	for _, e := range Default().Colors {
		want, err := srgb.Named(e.Name)
		if err != nil {
			continue
		}
		assert.Equal(t, want, e.Color.Encoded(), e.Name)
	}
}
