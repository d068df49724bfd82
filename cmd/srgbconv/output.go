package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/srgb/codec"
)

// write emits v in the requested format. The text format writes the
// result of text followed by a newline.
func write[V any](w io.Writer, format string, v V, text func() string) error {
	var c codec.Codec[V]
	switch strings.ToLower(format) {
	case "", "text":
		_, err := fmt.Fprintln(w, text())
		return err
	case "json":
		c = codec.JSON[V]{}
	case "yaml":
		c = codec.YAML[V]{}
	case "cbor":
		c = codec.MustCBOR[V](true)
	case "msgpack":
		c = codec.Msgpack[V]{}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	b, err := c.Encode(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if strings.EqualFold(format, "json") {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
