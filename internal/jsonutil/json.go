// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves '<', '>' and '&' alone. Hit
// definitions routinely carry them ("<unknown description>", "A&B").
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
