package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/stackapp/profile"
	"github.com/ChainSafe/stackapp/session"
)

// Renderer defines the interface for rendering session state in different formats.
type Renderer interface {
	// Render takes a snapshot of a session and outputs it in the desired format to the provided writer.
	Render(snap session.Snapshot, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// NewRenderer picks the renderer for format.
func NewRenderer(format string, prof *profile.Profile) (Renderer, error) {
	switch format {
	case profile.FormatText:
		return NewTextRenderer(prof), nil
	case profile.FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
