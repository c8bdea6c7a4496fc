package settings

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles decorates prompt parts. The renderer is bound to the output writer,
// so writers that are not terminals receive plain text.
type styles struct {
	prompt     lipgloss.Style
	def        lipgloss.Style
	diagnostic lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		prompt:     r.NewStyle().Bold(true),
		def:        r.NewStyle().Foreground(lipgloss.Color("#94e2d5")),
		diagnostic: r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
	}
}
