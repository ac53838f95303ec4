package cmd

import (
	"fmt"
	"os"

	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a CMSL file",
	Long: `Tokenize a CMSL program and print the resulting tokens, one per line, as
KIND "lexeme" @line:col (the lexeme Go-quoted).

Useful for debugging the lexer.`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	collector := diag.NewCollector()
	toks := lexer.New(string(source), collector).Tokenize()

	for _, tok := range toks {
		fmt.Printf("%-16s %-20q @%d:%d\n", tok.Kind, tok.Lexeme, tok.Range.Begin.Line, tok.Range.Begin.Column)
	}

	if len(collector.Diagnostics) > 0 {
		diag.RenderAll(os.Stderr, path, collector.Diagnostics)
		return fmt.Errorf("lexing failed: %s", diag.Summary(collector.Diagnostics))
	}
	return nil
}
