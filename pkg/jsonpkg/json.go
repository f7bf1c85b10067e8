// Package jsonpkg is the JSON codec shared by the block log and its stores.
package jsonpkg

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// RawMessage is a raw encoded JSON value.
type RawMessage = jsoniter.RawMessage

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Unmarshal parses JSON-encoded data into v.
func Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return codec.NewDecoder(r)
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return codec.NewEncoder(w)
}
