// Package encoding renders built write requests into their JSON wire form.
// The wire field names themselves are owned by the request's MarshalJSON;
// this adapter only chooses the layout.
package encoding

import (
	"encoding/json"

	"go.trai.ch/credkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// JSONEncoder implements ports.Encoder using encoding/json.
type JSONEncoder struct {
	indent bool
}

// NewJSONEncoder creates an encoder producing compact output.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// NewIndentedJSONEncoder creates an encoder producing two-space indented output.
func NewIndentedJSONEncoder() *JSONEncoder {
	return &JSONEncoder{indent: true}
}

// Encode returns the wire bytes for one request.
func (e *JSONEncoder) Encode(req ports.Request) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if e.indent {
		b, err = json.MarshalIndent(req, "", "  ")
	} else {
		b, err = json.Marshal(req)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode write request")
	}
	return b, nil
}
