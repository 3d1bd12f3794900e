package report

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Style selects how a diagnostic line is colored.
type Style int

const (
	StyleDefault Style = iota
	StyleOK
	StyleFail
	StyleHeading
	StyleDim
)

// Palette applies terminal colors when the target writer supports them.
type Palette struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// isTerminal reports whether a file descriptor is a TTY.
var isTerminal = term.IsTerminal

// NewPalette selects a palette for writer, honoring noColor and NO_COLOR.
func NewPalette(writer io.Writer, noColor bool) Palette {
	if noColor || !ShouldUseStyling(writer) {
		return Palette{}
	}
	return Palette{enabled: true, renderer: lipgloss.NewRenderer(writer)}
}

// ShouldUseStyling reports whether ANSI styling should be enabled for writer.
func ShouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return IsTerminal(writer)
}

// IsTerminal reports whether writer is backed by a TTY.
func IsTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}

// Enabled reports whether the palette emits color.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Apply renders text in the requested style.
func (p Palette) Apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	color, ok := styleColors[style]
	if !ok {
		return text
	}
	rendered := p.renderer.NewStyle().Foreground(color)
	if style == StyleHeading {
		rendered = rendered.Bold(true)
	}
	return rendered.Render(text)
}

var styleColors = map[Style]lipgloss.Color{
	StyleOK:      lipgloss.Color("42"),
	StyleFail:    lipgloss.Color("196"),
	StyleHeading: lipgloss.Color("33"),
	StyleDim:     lipgloss.Color("244"),
}
