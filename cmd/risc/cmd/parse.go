package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/RaphaeleL/ris-sub000/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a ris file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	sink := diag.NewSink(filename)
	tokens := lexer.New(string(content), filepath.Dir(filename),
		lexer.WithSink(sink),
		lexer.WithSystemIncludeProvider(systemIncludeProvider()),
		lexer.WithMaxIncludeDepth(maxIncludeDepth),
	).Tokenize()
	if sink.HasErrors() {
		printDiagnostics(sink)
		return fmt.Errorf("lexing failed with %d error(s)", len(sink.Errors()))
	}

	program := parser.New(tokens, sink).Parse()
	for _, g := range program.Globals {
		fmt.Println(g.String())
	}
	for _, fn := range program.Functions {
		fmt.Println(fn.String())
	}

	if sink.HasErrors() {
		printDiagnostics(sink)
		return fmt.Errorf("parsing failed with %d error(s)", len(sink.Errors()))
	}
	return nil
}
