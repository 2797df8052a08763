package codec

import (
	"encoding/json"
	"io"
)

// JSON is backed by encoding/json.
type JSON struct {
	Strict bool
}

func (c JSON) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (c JSON) Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

func (c JSON) Name() string { return name("json", c.Strict) }
