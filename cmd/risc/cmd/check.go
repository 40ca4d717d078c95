package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/frontend"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	checkQuiet         bool
	checkSourceContext bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a ris file",
	Long: `check runs the full front end over a ris file: lexing, parsing, and
semantic analysis. It reports every diagnostic found, across all three
phases up to the first phase that fails, and exits non-zero if any
diagnostic is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "suppress the \"ok\" message on success")
	checkCmd.Flags().BoolVar(&checkSourceContext, "source-context", false,
		"render each diagnostic with its source line and a caret instead of a one-line message")
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	sink := diag.NewSink(filename)
	_, ok := frontend.CompileFrontEnd(string(content), filepath.Dir(filename), systemIncludeProvider(), sink,
		lexer.WithMaxIncludeDepth(maxIncludeDepth))

	if !ok {
		if checkSourceContext {
			renderer := diag.SourceRenderer{Source: string(content)}
			fmt.Fprintln(os.Stderr, renderer.RenderAll(sink.All()))
		} else {
			printDiagnostics(sink)
		}
		return fmt.Errorf("%s: check failed with %d error(s)", filename, len(sink.Errors()))
	}

	if !checkQuiet {
		fmt.Printf("%s: ok\n", filename)
	}
	return nil
}
