package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/stackapp/session"
)

// JSONRenderer renders snapshots as one JSON object per line.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(snap session.Snapshot, output io.Writer) error {
	if snap.Values == nil {
		snap.Values = []int{}
	}
	return json.NewEncoder(output).Encode(snap)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
