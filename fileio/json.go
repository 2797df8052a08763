package fileio

import (
	"fmt"
	"io"
	"math"
)

type jsonDoc struct {
	Count  int       `json:"count"`
	Labels []float64 `json:"labels"`
}

func encodeJSON(w io.Writer, labels []float64, o options) error {
	for i, v := range labels {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("fileio: label %d (%v) has no JSON representation", i, v)
		}
	}
	return o.codec.Encode(w, jsonDoc{Count: len(labels), Labels: labels})
}

func decodeJSON(r io.Reader, o options) ([]float64, error) {
	var doc jsonDoc
	if err := o.codec.Decode(r, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.Count != len(doc.Labels) {
		return nil, fmt.Errorf("%w: count %d but %d labels", ErrCorrupt, doc.Count, len(doc.Labels))
	}
	if doc.Labels == nil {
		doc.Labels = []float64{}
	}
	return doc.Labels, nil
}
