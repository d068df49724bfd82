package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML is a Codec backed by gopkg.in/yaml.v3. The zero value is ready to use.
//
// Color records are flat mappings with the keys r, g, b and a, and all four
// must be present. With Strict set, Decode also fails on keys that do not
// map to a field.
type YAML[V any] struct {
	Strict bool
}

func (YAML[V]) Encode(v V) ([]byte, error) { return yaml.Marshal(v) }

func (c YAML[V]) Decode(b []byte) (V, error) {
	var v V
	if isColor[V]() {
		var rec map[string]yaml.Node
		if err := yaml.Unmarshal(b, &rec); err != nil {
			return v, err
		}
		if err := requireChannels(rec); err != nil {
			return v, err
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(c.Strict)
	err := dec.Decode(&v)
	return v, err
}
