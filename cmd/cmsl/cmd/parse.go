package cmd

import (
	"fmt"
	"os"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/internal/parser"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	dumpAST  bool
	dumpSema bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse (and optionally analyse) a CMSL file",
	Long: `Parse a CMSL program and report diagnostics, without evaluating it.

Examples:
  cmsl parse build.cmsl
  cmsl parse --dump-ast build.cmsl
  cmsl parse --dump-sema build.cmsl`,
	Args: cobra.ExactArgs(1),
	RunE: parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST")
	parseCmd.Flags().BoolVar(&dumpSema, "dump-sema", false, "dump the analysed SEMA tree")
}

func parseFile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	collector := diag.NewCollector()
	toks := lexer.New(string(source), collector).Tokenize()
	tu := parser.New(toks, collector).Parse()

	if dumpAST {
		pretty.Println(tu)
	}

	if len(collector.Diagnostics) == 0 && dumpSema {
		prog := sema.New(collector).Analyze(tu)
		pretty.Println(prog)
	}

	if len(collector.Diagnostics) > 0 {
		diag.RenderAll(os.Stderr, path, collector.Diagnostics)
		return fmt.Errorf("parsing failed: %s", diag.Summary(collector.Diagnostics))
	}
	return nil
}
