package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ArmisSecurity/beautify-cli/internal/beautify"
	"github.com/ArmisSecurity/beautify-cli/internal/model"
	"github.com/mattn/go-runewidth"
)

// HumanFormatter renders results as an aligned, styled table.
type HumanFormatter struct {
	// Width overrides terminal width detection when positive.
	Width int
}

const (
	columnGap    = "  "
	emptyInput   = "<empty>"
	minInputCols = 8
)

// Format renders result to w.
func (f *HumanFormatter) Format(result *model.Result, w io.Writer) error {
	s := GetStyles()
	width := f.Width
	if width <= 0 {
		width = TerminalWidth()
	}

	var b strings.Builder
	b.WriteString(s.HeaderBox.Render(s.HeaderBanner.Render("BEAUTIFY RESULTS")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", s.MutedText.Render("Source:"), result.Source)
	fmt.Fprintf(&b, "%s  %s\n", s.MutedText.Render("Rules:"), rulesName(result.Compat))
	b.WriteString("\n")

	if len(result.Labels) == 0 {
		b.WriteString(s.WarningText.Render("No identifiers found."))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	inputCols := inputColumnWidth(result.Labels, width)
	for _, l := range result.Labels {
		renderRow(&b, s, l, inputCols)
	}

	b.WriteString("\n")
	b.WriteString(s.FooterSeparator.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(renderSummary(s, result.Summary))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func rulesName(compat bool) string {
	if compat {
		return "legacy (compat)"
	}
	return "corrected"
}

// inputColumnWidth sizes the identifier column to the widest input, capped at
// a third of the available width.
func inputColumnWidth(labels []model.Label, width int) int {
	widest := 0
	for _, l := range labels {
		if w := runewidth.StringWidth(displayInput(l.Input)); w > widest {
			widest = w
		}
	}
	limit := width / 3
	if limit < minInputCols {
		limit = minInputCols
	}
	if widest > limit {
		return limit
	}
	return widest
}

func renderRow(b *strings.Builder, s *Styles, l model.Label, inputCols int) {
	lineNum := ""
	if l.Line > 0 {
		lineNum = strconv.Itoa(l.Line)
	}
	in := runewidth.FillRight(runewidth.Truncate(displayInput(l.Input), inputCols, Ellipsis), inputCols)

	b.WriteString(s.LineNumber.Render(lineNum))
	b.WriteString(columnGap)
	b.WriteString(s.InputText.Render(in))
	b.WriteString(columnGap)

	if l.Failed() {
		b.WriteString(s.ErrorText.Render(GetStatusIcon(true) + columnGap + l.Error))
		b.WriteString("\n")
		return
	}

	b.WriteString(s.Arrow.Render(GetStatusIcon(false)))
	b.WriteString(columnGap)
	b.WriteString(s.LabelText.Render(displayLabel(l.Label)))
	if l.Mode != "" {
		b.WriteString(columnGap)
		b.WriteString(s.GetModeStyle(l.Mode).Render(string(l.Mode)))
	}
	b.WriteString("\n")
}

func displayInput(in string) string {
	if in == "" {
		return emptyInput
	}
	return in
}

// displayLabel quotes labels with leading or trailing spaces so they stay
// visible in the table.
func displayLabel(label string) string {
	if strings.TrimSpace(label) != label {
		return strconv.Quote(label)
	}
	return label
}

func renderSummary(s *Styles, sum model.Summary) string {
	parts := []string{
		s.Bold.Render(fmt.Sprintf("%d %s", sum.Total, plural(sum.Total, "identifier", "identifiers"))),
		s.UnderscoreMode.Render(fmt.Sprintf("%d %s", sum.ByMode[beautify.ModeUnderscore], beautify.ModeUnderscore)),
		s.CamelMode.Render(fmt.Sprintf("%d %s", sum.ByMode[beautify.ModeCamel], beautify.ModeCamel)),
	}
	if sum.Failed > 0 {
		parts = append(parts, s.ErrorText.Render(fmt.Sprintf("%d failed", sum.Failed)))
	} else {
		parts = append(parts, s.SuccessText.Render(IconSuccess + " 0 failed"))
	}
	return strings.Join(parts, s.MutedText.Render(" · "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
