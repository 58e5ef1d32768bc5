package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ArmisSecurity/beautify-cli/internal/beautify"
	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/ArmisSecurity/beautify-cli/internal/input"
	"github.com/ArmisSecurity/beautify-cli/internal/model"
	"github.com/ArmisSecurity/beautify-cli/internal/output"
	"github.com/spf13/cobra"
)

// cancelCheckInterval is how many entries are labelled between context checks.
const cancelCheckInterval = 1024

// labelEntries beautifies each entry. Entries that cannot be beautified are
// kept with their error so every input shows up in the output.
func labelEntries(ctx context.Context, b *beautify.Beautifier, entries []input.Entry) ([]model.Label, error) {
	labels := make([]model.Label, 0, len(entries))
	for i, e := range entries {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("labelling interrupted: %w", err)
			}
		}

		l := model.Label{Input: entryText(e.Value), Line: e.Line}
		text, err := b.BeautifyValue(e.Value)
		if err != nil {
			l.Error = err.Error()
		} else {
			l.Label = text
			l.Mode = beautify.DetectMode(l.Input)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// entryText renders a raw entry for display. Non-string JSON values are shown
// as JSON.
func entryText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// runEntries labels entries from source and writes the result in the
// selected format.
func runEntries(cmd *cobra.Command, source string, entries []input.Entry) error {
	ctx, cancel := NewSignalContext()
	defer cancel()

	b := beautify.New(beautify.WithCompat(compat))
	cli.PrintDebugf(debug, "labelling %d identifier(s) from %s", len(entries), source)

	labels, err := labelEntries(ctx, b, entries)
	if err != nil {
		return handleCancelled(err)
	}
	result := model.NewResult(source, b.Compat(), labels)

	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	if err := formatter.Format(result, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if output.ShouldFail(result) {
		if format != "human" {
			for _, l := range result.Labels {
				if l.Failed() {
					cli.PrintWarningf("entry %d: %s", l.Line, l.Error)
				}
			}
		}
		return &ExitError{Code: exitCode, Failed: result.Summary.Failed}
	}
	return nil
}
