package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmsl-lang/cmsl/internal/config"
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/pkg/cmsl"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a CMSL script",
	Long: `Execute a CMSL program and report main's return value as the process
exit code.

If file is omitted, cmsl looks for a cmsl.toml workspace file in the current
directory and runs the script it names as entry.

Examples:
  cmsl run build.cmsl
  cmsl run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	path, err := resolveEntry(args)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	collector := diag.NewCollector()
	ret, err := cmsl.Execute(source, cmsl.WithObserver(collector))
	if err != nil {
		return fmt.Errorf("cmsl: %w", err)
	}

	diag.RenderAll(os.Stderr, path, collector.Diagnostics)
	if len(collector.Diagnostics) > 0 {
		fmt.Fprintln(os.Stderr, diag.Summary(collector.Diagnostics))
	}

	if ret < 0 {
		setExitCode(1)
		return nil
	}
	setExitCode(int(ret))
	return nil
}

// resolveEntry returns the script path to run: the single positional
// argument if given, otherwise the entry named by a cmsl.toml workspace file
// in the current directory.
func resolveEntry(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	ws, err := config.LoadIfExists("cmsl.toml")
	if err != nil {
		return "", err
	}
	if ws == nil {
		return "", fmt.Errorf("no file given and no cmsl.toml workspace file found")
	}
	return filepath.Join(filepath.Dir("cmsl.toml"), ws.Entry), nil
}
