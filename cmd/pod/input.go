package main

import (
	"fmt"
	"io"

	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/parse"
)

// readDoc parses the file named arg, or standard input for "-".
func readDoc(cfg *MainConfig, in io.Reader, arg string) (*ir.Node, error) {
	if arg == "-" {
		return parse.ParseReader(in, "<stdin>", cfg.parseOpts("<stdin>")...)
	}
	return parse.ParseFile(arg, cfg.parseOpts(arg)...)
}

// readDocs calls f with each parsed argument, or with standard input when
// there are none.
func readDocs(cfg *MainConfig, in io.Reader, args []string, f func(arg string, y *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		y, err := readDoc(cfg, in, arg)
		if err != nil {
			return err
		}
		if err := f(arg, y); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
