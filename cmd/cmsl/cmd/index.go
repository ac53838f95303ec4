package cmd

import (
	"fmt"
	"os"

	"github.com/cmsl-lang/cmsl/internal/indexer"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index <file>",
	Short: "Print editor-tooling index entries for a CMSL file",
	Long: `Parse a CMSL file and print one line per indexed token: its byte-offset
span, source text, and entry classification (type, identifier, parameter,
class member, operator, or call name).`,
	Args: cobra.ExactArgs(1),
	RunE: indexFile,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func indexFile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	handle, err := indexer.ParseSource(source, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("indexing %s failed", path)
	}
	defer indexer.DestroyParsedSource(handle)

	entries := indexer.Index(handle)
	defer indexer.DestroyIndexEntries(entries)

	for _, e := range entries {
		text := ""
		if e.Begin >= 0 && e.End <= len(source) && e.Begin <= e.End {
			text = string(source[e.Begin:e.End])
		}
		fmt.Printf("[%d,%d) %-32s %q\n", e.Begin, e.End, e.Type, text)
	}
	return nil
}
