package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON is backed by github.com/goccy/go-json.
type GoJSON struct {
	Strict bool
}

func (c GoJSON) Encode(w io.Writer, v any) error {
	return gojson.NewEncoder(w).Encode(v)
}

func (c GoJSON) Decode(r io.Reader, v any) error {
	dec := gojson.NewDecoder(r)
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

func (c GoJSON) Name() string { return name("go-json", c.Strict) }
