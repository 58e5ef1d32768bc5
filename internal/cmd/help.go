package cmd

import (
	"bytes"
	"io"
	"regexp"

	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/ArmisSecurity/beautify-cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	helpCommandRe   = regexp.MustCompile(`(?m)^(  )([a-z][-a-z0-9]*)(\s{2,})(.*)$`)
	helpLongFlagRe  = regexp.MustCompile(`(--[a-z][-a-z0-9]*)`)
	helpShortFlagRe = regexp.MustCompile(`(\s)(-[a-zA-Z])([,\s])`)
)

// SetupHelp configures styled help output for a command.
// The help function is inherited by all subcommands, so this only needs
// to be called on the root command.
func SetupHelp(cmd *cobra.Command) {
	originalHelpFunc := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		// --help bypasses PersistentPreRunE
		initColorsForHelp(c)

		originalOut := c.OutOrStdout()

		buf := new(bytes.Buffer)
		c.SetOut(buf)
		c.SetUsageTemplate(styledUsageTemplate())
		originalHelpFunc(c, args)

		c.SetOut(originalOut)
		styled := styleHelpOutput(buf.String())
		_, _ = io.WriteString(originalOut, styled)
	})
}

// styledUsageTemplate returns a usage template with bold section headers.
func styledUsageTemplate() string {
	if !cli.ColorsEnabled() {
		return defaultUsageTemplate()
	}

	styles := output.GetStyles()
	bold := func(s string) string {
		return styles.HelpHeading.Render(s)
	}

	return bold("Usage:") + `{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

` + bold("Aliases:") + `
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

` + bold("Examples:") + `
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

` + bold("Available Commands:") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + bold("Flags:") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + bold("Global Flags:") + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// defaultUsageTemplate returns Cobra's default usage template.
func defaultUsageTemplate() string {
	return (&cobra.Command{}).UsageTemplate()
}

// initColorsForHelp applies the --color flag (or its env default) before
// help is rendered.
func initColorsForHelp(cmd *cobra.Command) {
	if cli.ColorsForced() {
		return
	}

	mode := cli.ColorModeAuto
	if f := cmd.Root().PersistentFlags().Lookup("color"); f != nil {
		if parsed, err := cli.ParseColorMode(f.Value.String()); err == nil {
			mode = parsed
		}
	}
	cli.InitColors(mode)
	output.SyncStylesWithColorMode()
}

// styleHelpOutput applies colors to command names and flags in help text.
func styleHelpOutput(s string) string {
	if !cli.ColorsEnabled() {
		return s
	}

	styles := output.GetStyles()

	// "  commandname   Description"
	s = helpCommandRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := helpCommandRe.FindStringSubmatch(match)
		if len(parts) == 5 {
			return parts[1] + styles.HelpCommand.Render(parts[2]) + parts[3] + parts[4]
		}
		return match
	})

	s = helpLongFlagRe.ReplaceAllStringFunc(s, func(match string) string {
		return styles.HelpFlag.Render(match)
	})

	s = helpShortFlagRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := helpShortFlagRe.FindStringSubmatch(match)
		if len(parts) == 4 {
			return parts[1] + styles.HelpFlag.Render(parts[2]) + parts[3]
		}
		return match
	})

	return s
}
