package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ArmisSecurity/beautify-cli/internal/model"
)

// JSONFormatter formats results as indented JSON.
type JSONFormatter struct {
	// Highlight adds terminal syntax highlighting.
	Highlight bool
}

// Format formats the result as JSON.
func (f *JSONFormatter) Format(result *model.Result, w io.Writer) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return err
	}

	if f.Highlight {
		_, err := io.WriteString(w, HighlightJSON(buf.String()))
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
