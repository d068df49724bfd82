package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/srgb"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. Colors are written as maps keyed by
// their msgpack struct tags.
//
// msgpack narrows integers when decoding into uint8, so an EncodedColor
// record is first read into wide integers and range checked.
type Msgpack[V any] struct{}

// encodedRecord mirrors srgb.EncodedColor with room for out-of-range values.
type encodedRecord struct {
	R int64 `msgpack:"r"`
	G int64 `msgpack:"g"`
	B int64 `msgpack:"b"`
	A int64 `msgpack:"a"`
}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	if isColor[V]() {
		var rec map[string]msgpack.RawMessage
		if err := msgpack.Unmarshal(b, &rec); err != nil {
			return v, err
		}
		if err := requireChannels(rec); err != nil {
			return v, err
		}
	}
	if p, ok := any(&v).(*srgb.EncodedColor); ok {
		c, err := decodeEncodedMsgpack(b)
		*p = c
		return v, err
	}
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

func decodeEncodedMsgpack(b []byte) (srgb.EncodedColor, error) {
	var rec encodedRecord
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return srgb.Clear, err
	}
	vals := [4]int64{rec.R, rec.G, rec.B, rec.A}
	for i, k := range channelKeys {
		if err := checkByte(k, vals[i]); err != nil {
			return srgb.Clear, err
		}
	}
	return srgb.NewEncoded(uint8(rec.R), uint8(rec.G), uint8(rec.B), uint8(rec.A)), nil
}
