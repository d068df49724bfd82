package codec

import "encoding/json"

// JSON is a Codec backed by encoding/json. The zero value is ready to use.
//
// Color records look like {"r":50,"g":50,"b":50,"a":255}. encoding/json
// already rejects out-of-range and fractional values for uint8 fields;
// Decode adds the check that no channel is missing.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	if isColor[V]() {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(b, &rec); err != nil {
			return v, err
		}
		if err := requireChannels(rec); err != nil {
			return v, err
		}
	}
	err := json.Unmarshal(b, &v)
	return v, err
}
