package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "cmsl",
	Short: "CMSL interpreter and tooling",
	Long: `cmsl is an interpreter and editor-tooling backend for CMSL, the small
statically-typed scripting language used to describe build graphs: classes,
functions, control flow, and the project/library/executable primitives a
build-domain facade consumes.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode reports the process exit code a RunE handler recorded via
// setExitCode, read by main after Execute returns with no error. A run that
// never sets it (lex/parse/index succeeding) leaves it at the default 0.
func ExitCode() int {
	return exitCode
}

func setExitCode(code int) {
	exitCode = code
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
