package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ArmisSecurity/beautify-cli/internal/model"
)

// CSVFormatter writes an input,label,mode,line,error table.
type CSVFormatter struct{}

var csvHeader = []string{"input", "label", "mode", "line", "error"}

// Format writes result as CSV with a header row.
func (f *CSVFormatter) Format(result *model.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range result.Labels {
		line := ""
		if l.Line > 0 {
			line = strconv.Itoa(l.Line)
		}
		if err := cw.Write([]string{l.Input, l.Label, string(l.Mode), line, l.Error}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
