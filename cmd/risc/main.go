// Command risc is the front-end CLI for ris: lex, parse, and check
// subcommands over the core implemented in internal/.
package main

import (
	"fmt"
	"os"

	"github.com/RaphaeleL/ris-sub000/cmd/risc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
