// Package render: JSON renderer.
// Writes the element record as an indented JSON object keyed by the
// camel-cased field keys, the format the data directory is built from.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/periodicdata/core"
)

// JSONRenderer produces the JSON record of an element.
type JSONRenderer struct {
	Indent string
}

// NewJSONRenderer creates a JSONRenderer indenting with four spaces.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: "    "}
}

// Render marshals the element record.
func (r *JSONRenderer) Render(element core.Element) ([]byte, error) {
	data, err := json.MarshalIndent(element.Record, "", r.Indent)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON for element %d: %w", element.AtomicNumber, err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
