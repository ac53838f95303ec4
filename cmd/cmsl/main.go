// Command cmsl is the CMSL interpreter's command-line front end.
package main

import (
	"fmt"
	"os"

	"github.com/cmsl-lang/cmsl/cmd/cmsl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(cmd.ExitCode())
}
