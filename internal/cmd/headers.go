package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ArmisSecurity/beautify-cli/internal/input"
	"github.com/spf13/cobra"
)

const (
	headerTypeAuto = "auto"
	headerTypeCSV  = "csv"
	headerTypeJSON = "json"
)

var headerType string

var headersCmd = &cobra.Command{
	Use:   "headers FILE",
	Short: "Label the column names of a CSV or JSON data file",
	Long: `Label the column names of a data file so they can be used as table headings.

For CSV the first row is read. For JSON the keys of an object, or the union of
the keys of an array of objects, are read in the order they first appear.
Use "-" to read from stdin.`,
	Example: `  beautify headers landings.csv
  beautify headers trips.json --format plain
  curl -s https://example.org/api/vessels | beautify headers - --type json`,
	Args: cobra.ExactArgs(1),
	RunE: runHeaders,
}

func init() {
	headersCmd.Flags().StringVar(&headerType, "type", headerTypeAuto, "Input type: auto, csv, json (auto uses the file extension)")
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	path := args[0]
	kind, err := resolveHeaderType(path, headerType)
	if err != nil {
		return err
	}

	var r io.ReadCloser
	if path == input.Stdin {
		r = io.NopCloser(cmd.InOrStdin())
	} else {
		r, err = input.Open(path, noProgress)
		if err != nil {
			return err
		}
	}
	defer func() { _ = r.Close() }()

	read := input.ReadCSVHeader
	if kind == headerTypeJSON {
		read = input.ReadJSONKeys
	}
	entries, err := read(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	source := path
	if path == input.Stdin {
		source = "stdin"
	}
	return runEntries(cmd, source, entries)
}

// resolveHeaderType picks csv or json from the --type flag, falling back to
// the file extension in auto mode. Stdin defaults to csv.
func resolveHeaderType(path, requested string) (string, error) {
	switch strings.ToLower(requested) {
	case headerTypeCSV:
		return headerTypeCSV, nil
	case headerTypeJSON:
		return headerTypeJSON, nil
	case headerTypeAuto, "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return headerTypeJSON, nil
		default:
			return headerTypeCSV, nil
		}
	default:
		return "", fmt.Errorf("invalid --type %q: must be one of auto, csv, json", requested)
	}
}
