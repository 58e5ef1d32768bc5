// Package cmd implements the CLI commands for the identifier beautifier.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/ArmisSecurity/beautify-cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	format     string
	compat     bool
	colorFlag  string
	noProgress bool
	exitCode   int
	debug      bool

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "beautify [identifier...]",
	Short: "Turn identifiers into human-readable labels",
	Long: `Convert compact identifiers such as snake_case or camelCase field names
into display labels ("first_name" becomes "First Name").

With no subcommand, arguments are labelled directly. Use "beautify label" to
read identifiers from a file or stdin, and "beautify headers" to label the
columns of a CSV or JSON data file.`,
	Example: `  beautify first_name camelCase
  beautify label -f fields.txt --format plain
  beautify headers landings.csv`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
	RunE:              runLabel,
}

// SetVersion records build metadata shown by --version and "beautify version".
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			cli.PrintError(err.Error())
		}
	}
	return err
}

// ExitError carries the process exit code for a run that completed but
// contained identifiers that could not be beautified.
type ExitError struct {
	Code   int
	Failed int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%d identifier(s) could not be beautified", e.Failed)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", getEnvOrDefault("BEAUTIFY_FORMAT", "human"), "Output format: "+strings.Join(output.Formats, ", ")+" (env: BEAUTIFY_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&compat, "compat", getEnvOrDefaultBool("BEAUTIFY_COMPAT", false), "Reproduce legacy output: digits, symbols and a leading capital start new words (env: BEAUTIFY_COMPAT)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", getEnvOrDefault("BEAUTIFY_COLOR", string(cli.ColorModeAuto)), "Color output mode: auto, always, never (env: BEAUTIFY_COLOR)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable progress bars for large inputs")
	rootCmd.PersistentFlags().IntVar(&exitCode, "exit-code", getEnvOrDefaultInt("BEAUTIFY_EXIT_CODE", 1), "Exit code to return when an identifier cannot be beautified")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print diagnostic details to stderr")

	SetupHelp(rootCmd)
}

func preRun(cmd *cobra.Command, _ []string) error {
	mode, err := cli.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}
	cli.InitColors(mode)
	output.SyncStylesWithColorMode()

	if _, err := output.GetFormatter(format); err != nil {
		return err
	}
	if err := validateExitCode(exitCode); err != nil {
		return err
	}

	cli.PrintDebugf(debug, "command=%s format=%s compat=%t color=%s", cmd.CommandPath(), format, compat, mode)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func validateExitCode(code int) error {
	if code < 1 || code > 255 {
		return fmt.Errorf("exit code must be between 1 and 255, got %d", code)
	}
	return nil
}
