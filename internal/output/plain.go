package output

import (
	"fmt"
	"io"

	"github.com/ArmisSecurity/beautify-cli/internal/model"
)

// PlainFormatter writes one label per line, for piping into other tools.
// Failed identifiers produce an empty line so output lines up with input.
type PlainFormatter struct{}

// Format writes the labels of result.
func (f *PlainFormatter) Format(result *model.Result, w io.Writer) error {
	for _, l := range result.Labels {
		if _, err := fmt.Fprintln(w, l.Label); err != nil {
			return err
		}
	}
	return nil
}
