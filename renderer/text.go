// Package renderer provides a way to render stack sessions in different formats.
package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChainSafe/stackapp/profile"
	"github.com/ChainSafe/stackapp/session"
)

const (
	blockWidth = 9
	colorOther = "#9E9E9E"
)

// digitColors gives every digit its own block color.
var digitColors = [10]string{
	"#E57373", // red
	"#F06292", // pink
	"#BA68C8", // purple
	"#9575CD", // deep purple
	"#7986CB", // indigo
	"#64B5F6", // blue
	"#4FC3F7", // light blue
	"#4DB6AC", // teal
	"#81C784", // green
	"#FFB74D", // orange
}

// TextRenderer draws the stack as a column of colored blocks, top first.
type TextRenderer struct {
	colors map[int]string
}

// NewTextRenderer creates a new instance of TextRenderer. Colors set in the
// profile replace the default palette entry of their digit.
func NewTextRenderer(prof *profile.Profile) Renderer {
	colors := make(map[int]string, len(digitColors))
	for d, c := range digitColors {
		colors[d] = c
	}
	if prof != nil {
		for key, c := range prof.Colors {
			if d, err := strconv.Atoi(key); err == nil {
				colors[d] = c
			}
		}
	}
	return &TextRenderer{colors: colors}
}

// ColorFor returns the block color of a value. Anything outside 0-9 is gray.
func (r *TextRenderer) ColorFor(value int) string {
	if c, ok := r.colors[value]; ok {
		return c
	}
	return colorOther
}

// Render writes the last message followed by the stack blocks.
func (r *TextRenderer) Render(snap session.Snapshot, output io.Writer) error {
	// The renderer decides color support from the writer, so piped output stays plain.
	lg := lipgloss.NewRenderer(output)

	var report strings.Builder
	report.WriteString(fmt.Sprintf("Output: %s\n", snap.Result.Message))

	if len(snap.Values) == 0 {
		report.WriteString(lg.NewStyle().Italic(true).Render("Stack is empty"))
		report.WriteString("\n")
	} else {
		blocks := make([]string, 0, len(snap.Values))
		for i := len(snap.Values) - 1; i >= 0; i-- {
			v := snap.Values[i]
			style := lg.NewStyle().
				Width(blockWidth).
				Align(lipgloss.Center).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color(r.ColorFor(v)))
			blocks = append(blocks, style.Render(strconv.Itoa(v)))
		}
		report.WriteString(lipgloss.JoinVertical(lipgloss.Left, blocks...))
		report.WriteString("\n")
	}
	report.WriteString(fmt.Sprintf("Size: %d/%d\n", snap.Size, snap.Capacity))

	_, err := output.Write([]byte(report.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
