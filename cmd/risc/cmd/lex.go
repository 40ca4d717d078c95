package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a ris file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
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

	for _, tok := range tokens {
		fmt.Println(tok.String())
	}

	if sink.HasErrors() {
		printDiagnostics(sink)
		return fmt.Errorf("lexing failed with %d error(s)", len(sink.Errors()))
	}
	return nil
}
