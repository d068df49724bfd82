// Package codec serializes srgb colors for structured data formats.
//
// Every record format writes the four channels under the field names
// r, g, b and a, in that order. When V is srgb.EncodedColor or
// srgb.LinearColor, decoders also require all four channels to be present
// and reject channel values that do not fit the target type, e.g. 256 or -1
// for an EncodedColor channel. Nothing is silently truncated or defaulted.
package codec

import (
	"errors"
	"fmt"

	"github.com/gogpu/srgb"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	// ErrMissingChannel is returned when a color record lacks one of r, g, b
	// or a.
	ErrMissingChannel = errors.New("codec: missing color channel")

	// ErrChannelRange is returned when an encoded channel is outside [0,255].
	ErrChannelRange = errors.New("codec: channel out of range")
)

// channelKeys are the record field names of both color types.
var channelKeys = [4]string{"r", "g", "b", "a"}

// isColor reports whether V is one of the srgb color record types.
func isColor[V any]() bool {
	var v V
	switch any(v).(type) {
	case srgb.EncodedColor, srgb.LinearColor:
		return true
	}
	return false
}

// requireChannels checks a decoded record map for all four channel keys.
func requireChannels[M ~map[string]T, T any](m M) error {
	for _, k := range channelKeys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingChannel, k)
		}
	}
	return nil
}

// checkByte rejects an encoded channel value that does not fit in a byte.
func checkByte(key string, v int64) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%w: %s=%d", ErrChannelRange, key, v)
	}
	return nil
}
