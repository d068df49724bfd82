package codec

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned by Limit.Decode for oversized input.
var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum payload size at Decode
// time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Color records are a few dozen bytes in every format, so a limit of a few
// hundred bytes is enough for colors read from untrusted input.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length in bytes of the payload
	// passed to Decode.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
