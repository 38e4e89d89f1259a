package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/srlgrob/sentence"
)

// JSONRenderer writes parsed sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the sentences as a JSON array.
func (r *JSONRenderer) Render(sentences []*sent.Sentence) error {
	return json.NewEncoder(r.W).Encode(sentences)
}
