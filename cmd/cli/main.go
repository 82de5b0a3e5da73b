package main

import (
	"fmt"
	"os"

	"github.com/venture-tools/plan-atlas/pkg/runtime/terminal"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
)

func main() {
	statements, err := finance.NewDefaultController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Statements: statements,
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
