// Package output provides formatters for beautify results.
package output

import (
	"os"

	"github.com/ArmisSecurity/beautify-cli/internal/beautify"
	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette - Tailwind CSS colors
// AdaptiveColor automatically selects Light/Dark variant based on terminal background
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"} // green-600 / green-500
	colorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"} // amber-600 / amber-500
	colorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"} // red-600 / red-500
	colorMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"} // gray-600 / gray-500
	colorAccent  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#7c3aed"} // purple-600
	colorCamel   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"} // blue-600 / blue-500
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"} // gray-300 / gray-700
	colorBright  = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#FFFFFF"} // gray-800 / white
)

// Styles holds all lipgloss styles for consistent formatting
type Styles struct {
	HeaderBanner lipgloss.Style
	HeaderBox    lipgloss.Style

	// Table cells
	InputText      lipgloss.Style
	LabelText      lipgloss.Style
	Arrow          lipgloss.Style
	UnderscoreMode lipgloss.Style
	CamelMode      lipgloss.Style
	LineNumber     lipgloss.Style

	// Status indicators
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	ErrorText   lipgloss.Style
	MutedText   lipgloss.Style

	FooterSeparator lipgloss.Style

	Bold lipgloss.Style

	// Help output styles
	HelpHeading lipgloss.Style // Bold for section headers (Usage:, Flags:, etc.)
	HelpCommand lipgloss.Style // Accent color for command names
	HelpFlag    lipgloss.Style // Accent color for --flag-name
}

// DefaultStyles returns the default style configuration
func DefaultStyles() *Styles {
	return &Styles{
		HeaderBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBright),
		HeaderBox: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),

		InputText:      lipgloss.NewStyle().Foreground(colorMuted),
		LabelText:      lipgloss.NewStyle().Bold(true).Foreground(colorBright),
		Arrow:          lipgloss.NewStyle().Foreground(colorAccent),
		UnderscoreMode: lipgloss.NewStyle().Foreground(colorAccent),
		CamelMode:      lipgloss.NewStyle().Foreground(colorCamel),
		LineNumber: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(4).
			Align(lipgloss.Right),

		SuccessText: lipgloss.NewStyle().Foreground(colorSuccess),
		WarningText: lipgloss.NewStyle().Foreground(colorWarning),
		ErrorText:   lipgloss.NewStyle().Foreground(colorError),
		MutedText:   lipgloss.NewStyle().Foreground(colorMuted),

		FooterSeparator: lipgloss.NewStyle().Foreground(colorMuted),

		Bold: lipgloss.NewStyle().Bold(true),

		HelpHeading: lipgloss.NewStyle().Bold(true),
		HelpCommand: lipgloss.NewStyle().Foreground(colorAccent),
		HelpFlag:    lipgloss.NewStyle().Foreground(colorAccent),
	}
}

// NoColorStyles returns styles with all formatting disabled (for --color=never)
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		HeaderBanner: plain,
		HeaderBox:    plain,

		InputText:      plain,
		LabelText:      plain,
		Arrow:          plain,
		UnderscoreMode: plain,
		CamelMode:      plain,
		LineNumber:     plain.Width(4).Align(lipgloss.Right),

		SuccessText: plain,
		WarningText: plain,
		ErrorText:   plain,
		MutedText:   plain,

		FooterSeparator: plain,

		Bold: plain,

		HelpHeading: plain,
		HelpCommand: plain,
		HelpFlag:    plain,
	}
}

// currentStyles holds the active style set
var currentStyles *Styles

// lipglossInitialized tracks whether lipgloss renderer has been configured
var lipglossInitialized bool

// GetStyles returns the current style set based on color mode
func GetStyles() *Styles {
	if currentStyles == nil {
		SyncStylesWithColorMode()
	}
	return currentStyles
}

// SyncStylesWithColorMode updates the styles based on the current color mode
func SyncStylesWithColorMode() {
	if !lipglossInitialized {
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))
		lipglossInitialized = true
	}

	if cli.ColorsEnabled() {
		currentStyles = DefaultStyles()
		if cli.ColorsForced() {
			// --color=always: force TrueColor regardless of TTY detection
			lipgloss.SetColorProfile(termenv.TrueColor)
		} else {
			lipgloss.SetColorProfile(lipgloss.ColorProfile())
		}
	} else {
		currentStyles = NoColorStyles()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// GetModeStyle returns the text style for a beautify mode
func (s *Styles) GetModeStyle(mode beautify.Mode) lipgloss.Style {
	switch mode {
	case beautify.ModeUnderscore:
		return s.UnderscoreMode
	case beautify.ModeCamel:
		return s.CamelMode
	default:
		return s.MutedText
	}
}

// Table width constants
const (
	BoxWidth    = 68  // Default width (fallback)
	MinBoxWidth = 40  // Minimum usable width
	MaxBoxWidth = 120 // Cap to prevent overly wide output
	BoxPadding  = 4   // Margin from terminal edge
)

// TerminalWidth detects the current terminal width with fallbacks.
// Returns BoxWidth if detection fails (non-TTY, pipe, etc.)
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return BoxWidth
	}
	usable := w - BoxPadding
	if usable < MinBoxWidth {
		return MinBoxWidth
	}
	if usable > MaxBoxWidth {
		return MaxBoxWidth
	}
	return usable
}
