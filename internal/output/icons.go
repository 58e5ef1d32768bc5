package output

// Row glyphs. Color is applied via lipgloss styling, so they render the same
// with --color=never.
const (
	IconArrow   = "→"
	IconFailure = "✗"
	IconSuccess = "✓"

	// Ellipsis marks identifiers truncated to fit the input column.
	Ellipsis = "…"
)

// GetStatusIcon returns the glyph placed between an identifier and its outcome.
func GetStatusIcon(failed bool) string {
	if failed {
		return IconFailure
	}
	return IconArrow
}
