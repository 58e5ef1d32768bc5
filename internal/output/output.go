package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/ArmisSecurity/beautify-cli/internal/model"
	"golang.org/x/term"
)

// Formatter writes a result in one output format.
type Formatter interface {
	Format(result *model.Result, w io.Writer) error
}

// Formats lists the names accepted by GetFormatter.
var Formats = []string{"human", "plain", "json", "csv", "junit"}

// GetFormatter returns the formatter for format.
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "human":
		return &HumanFormatter{}, nil
	case "plain":
		return &PlainFormatter{}, nil
	case "json":
		return &JSONFormatter{Highlight: highlightStdout()}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "junit":
		return &JUnitFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// ShouldFail reports whether any identifier in result failed to beautify.
func ShouldFail(result *model.Result) bool {
	return result.Summary.Failed > 0
}

// highlightStdout reports whether JSON written to stdout should be highlighted:
// always with --color=always, otherwise only when colors are on and stdout is
// a terminal.
func highlightStdout() bool {
	if cli.ColorsForced() {
		return true
	}
	return cli.ColorsEnabled() && term.IsTerminal(int(os.Stdout.Fd()))
}
