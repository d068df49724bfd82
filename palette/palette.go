// Package palette loads named color palettes from YAML and converts them to
// linear space.
//
// A palette document looks like:
//
//	name: ui
//	colors:
//	  - name: accent
//	    hex: 6b9ebeff
//
// Hex values are 8-digit rrggbbaa strings and parse through srgb.ParseHex.
package palette

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/srgb"
)

//go:embed defaults/default.yaml
var defaultYAML []byte

// HexColor is an EncodedColor that marshals as its rrggbbaa hex string.
type HexColor srgb.EncodedColor

// MarshalText implements encoding.TextMarshaler.
func (h HexColor) MarshalText() ([]byte, error) {
	return []byte(srgb.EncodedColor(h).Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexColor) UnmarshalText(b []byte) error {
	c, err := srgb.ParseHex(string(b))
	if err != nil {
		return err
	}
	*h = HexColor(c)
	return nil
}

// Encoded returns the color as an srgb.EncodedColor.
func (h HexColor) Encoded() srgb.EncodedColor { return srgb.EncodedColor(h) }

// Entry is one named color in a palette.
type Entry struct {
	Name  string   `yaml:"name" json:"name"`
	Color HexColor `yaml:"hex" json:"hex"`
}

// Palette is an ordered list of named colors.
type Palette struct {
	Name   string  `yaml:"name" json:"name"`
	Colors []Entry `yaml:"colors" json:"colors"`
}

// NamedLinear is a palette entry converted to linear space.
type NamedLinear struct {
	Name  string           `json:"name" yaml:"name" msgpack:"name" cbor:"name"`
	Color srgb.LinearColor `json:"color" yaml:"color" msgpack:"color" cbor:"color"`
}

// Load reads and parses the palette file at path. An empty path yields the
// embedded default palette.
func Load(path string) (Palette, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a palette document.
func Parse(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, err
	}
	for i, e := range p.Colors {
		if strings.TrimSpace(e.Name) == "" {
			return Palette{}, fmt.Errorf("palette entry %d: missing name", i)
		}
	}
	srgb.Logger().Debug("palette loaded", "name", p.Name, "colors", len(p.Colors))
	return p, nil
}

// Default returns the embedded default palette.
func Default() Palette {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("palette: embedded default: %v", err))
	}
	return p
}

// Marshal encodes p as a YAML palette document.
func (p Palette) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Linear converts every entry to linear space, preserving order.
func (p Palette) Linear() []NamedLinear {
	out := make([]NamedLinear, len(p.Colors))
	for i, e := range p.Colors {
		out[i] = NamedLinear{Name: e.Name, Color: e.Color.Encoded().ToLinear()}
	}
	return out
}

// Lookup returns the first entry whose name matches, ignoring case.
func (p Palette) Lookup(name string) (srgb.EncodedColor, bool) {
	for _, e := range p.Colors {
		if strings.EqualFold(e.Name, name) {
			return e.Color.Encoded(), true
		}
	}
	return srgb.Clear, false
}
