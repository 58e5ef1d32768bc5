package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ArmisSecurity/beautify-cli/internal/input"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	inputFile string
	jsonInput bool
)

var labelCmd = &cobra.Command{
	Use:   "label [identifier...]",
	Short: "Label identifiers from arguments, a file, or stdin",
	Long: `Label identifiers given as arguments, read from a file (one per line), or
piped on stdin. Blank lines and lines starting with # are ignored.

With --json the input is a JSON array; elements that are not strings are
reported as invalid arguments.`,
	Example: `  beautify label first_name vesselLength
  beautify label -f fields.txt
  echo '["trip_id", "landingDate"]' | beautify label --json --format json`,
	RunE: runLabel,
}

func init() {
	labelCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read identifiers from a file (\"-\" for stdin)")
	labelCmd.Flags().BoolVar(&jsonInput, "json", false, "Input is a JSON array of identifiers")
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if inputFile != "" {
			return errors.New("identifiers given as arguments cannot be combined with --file")
		}
		return runEntries(cmd, "arguments", input.StringEntries(args))
	}

	source, r, err := openLabelInput(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	read := input.ReadLines
	if jsonInput {
		read = input.ReadJSON
	}
	entries, err := read(r)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	return runEntries(cmd, source, entries)
}

// openLabelInput returns the --file input, or stdin when it is not a terminal.
func openLabelInput(cmd *cobra.Command) (string, io.ReadCloser, error) {
	if inputFile != "" && inputFile != input.Stdin {
		r, err := input.Open(inputFile, noProgress)
		if err != nil {
			return "", nil, err
		}
		return inputFile, r, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && inputFile == "" && term.IsTerminal(int(f.Fd())) {
		return "", nil, errors.New("no identifiers: pass them as arguments, use --file, or pipe them on stdin")
	}
	return "stdin", io.NopCloser(in), nil
}
