package output

import (
	"bytes"

	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// GetChromaStyle returns the chroma style based on terminal theme settings.
// Returns nil when colors are disabled.
func GetChromaStyle() *chroma.Style {
	if !cli.ColorsEnabled() {
		return nil
	}
	if lipgloss.HasDarkBackground() {
		return styles.Get("monokai")
	}
	return styles.Get("github")
}

// HighlightJSON returns src with ANSI syntax highlighting. src is returned
// unchanged when colors are disabled or highlighting fails.
func HighlightJSON(src string) string {
	style := GetChromaStyle()
	if style == nil {
		return src
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf bytes.Buffer
	if err := getTerminalFormatter().Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}

// getTerminalFormatter returns the appropriate chroma formatter for terminal color depth.
func getTerminalFormatter() chroma.Formatter {
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return formatters.Get("terminal16m")
	case termenv.ANSI256:
		return formatters.Get("terminal256")
	default:
		return formatters.Get("terminal")
	}
}
