package main

import (
	"fmt"
	"os"

	"github.com/halcyon-lang/halcyon/internal/ast"
	"github.com/halcyon-lang/halcyon/internal/declfile"
	"github.com/halcyon-lang/halcyon/internal/deriving"
	"github.com/halcyon-lang/halcyon/internal/diag"
	"github.com/halcyon-lang/halcyon/internal/prettyprinter"
)

// halcyon-derive reads data-type declaration files and prints the
// method bindings the deriving engine synthesizes for them.

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-trace] <declfile.yaml> [file2...]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "-trace" || args[0] == "--trace") {
		diag.SetEnabled(true)
		args = args[1:]
	}
	if len(args) == 0 {
		usage()
	}

	for _, path := range args {
		if err := deriveFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func deriveFile(path string) error {
	file, err := declfile.Load(path)
	if err != nil {
		return err
	}

	for i := range file.Types {
		data, err := file.Types[i].DataDefinition()
		if err != nil {
			return err
		}

		var bindings []ast.Binding
		if err := deriving.GenerateDeriving(&bindings, data); err != nil {
			return err
		}

		printer := prettyprinter.NewCodePrinter()
		for j := range bindings {
			fmt.Println(printer.PrintBinding(&bindings[j]))
		}
	}
	return nil
}
