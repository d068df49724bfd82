package srgb

// Builder assembles an EncodedColor from the channels you care about.
// Unset channels default to 0 for rgb and 255 for alpha, so
//
//	srgb.NewBuilder().R(200).Build()
//
// is an opaque dark red.
type Builder struct {
	c EncodedColor
}

// NewBuilder returns a builder for opaque black.
func NewBuilder() *Builder {
	return &Builder{c: Black}
}

// R sets the red channel.
func (b *Builder) R(v uint8) *Builder { b.c.R = v; return b }

// G sets the green channel.
func (b *Builder) G(v uint8) *Builder { b.c.G = v; return b }

// B sets the blue channel.
func (b *Builder) B(v uint8) *Builder { b.c.B = v; return b }

// A sets the alpha channel.
func (b *Builder) A(v uint8) *Builder { b.c.A = v; return b }

// Gray sets red, green and blue to v.
func (b *Builder) Gray(v uint8) *Builder {
	b.c.R, b.c.G, b.c.B = v, v, v
	return b
}

// Build returns the color. The builder may be reused afterwards.
func (b *Builder) Build() EncodedColor {
	return b.c
}
