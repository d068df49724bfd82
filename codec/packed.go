package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/gogpu/srgb"
)

// Packed stores an EncodedColor as a protobuf UInt32Value holding the packed
// integer in Order. This is the most compact form for protobuf schemas that
// declare a color as google.protobuf.UInt32Value.
type Packed struct {
	Order srgb.ChannelOrder
}

var _ Codec[srgb.EncodedColor] = Packed{}

func (p Packed) Encode(c srgb.EncodedColor) ([]byte, error) {
	return proto.Marshal(wrapperspb.UInt32(c.Pack(p.Order)))
}

func (p Packed) Decode(b []byte) (srgb.EncodedColor, error) {
	var m wrapperspb.UInt32Value
	if err := proto.Unmarshal(b, &m); err != nil {
		return srgb.Clear, err
	}
	return srgb.UnpackEncoded(m.GetValue(), p.Order), nil
}
