// Package codec selects the JSON implementation used by the JSON label format.
//
// Every codec reads what any other codec writes. Strict codecs reject
// unknown object fields, which catches documents that are not label files.
package codec

import (
	"io"
	"sort"
)

// Codec streams values to and from JSON.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	"json":           JSON{},
	"json-strict":    JSON{Strict: true},
	"go-json":        GoJSON{},
	"go-json-strict": GoJSON{Strict: true},
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Names lists the built-in codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func name(base string, strict bool) string {
	if strict {
		return base + "-strict"
	}
	return base
}
