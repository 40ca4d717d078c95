package cmd

import (
	"fmt"
	"os"

	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	systemIncludeDir string
	maxIncludeDepth  int
	diagFormat       string
)

var rootCmd = &cobra.Command{
	Use:   "risc",
	Short: "ris compiler front end",
	Long: `risc is the front end for ris, a small C-like statically-typed
language meant for ahead-of-time compilation.

This binary covers the front end only:
  - lex:   tokenize a .ris file and print its token stream
  - parse: parse a .ris file and print its AST
  - check: run semantic analysis and report type errors

Lowering the checked AST to machine code or an intermediate
representation is a separate backend, out of scope here.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose flag (not read by any subcommand)")
	rootCmd.PersistentFlags().StringVar(&systemIncludeDir, "system-include-dir", "",
		"directory searched for `#include <name>` before the built-in <std> bundle")
	rootCmd.PersistentFlags().IntVar(&maxIncludeDepth, "max-include-depth", lexer.DefaultMaxIncludeDepth,
		"maximum #include nesting depth")
	rootCmd.PersistentFlags().StringVar(&diagFormat, "format", "default",
		"diagnostic output format: default or gcc")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
