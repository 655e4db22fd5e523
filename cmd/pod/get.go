package main

import (
	"fmt"
	"io"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted name path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	w := cc.Out
	found := 0
	err = readDocs(cfg.MainConfig, cc.In, args[1:], func(arg string, y *ir.Node) error {
		res := lookup(y, path, cfg.Type)
		if res == nil {
			// nothing to encode, reported by the exit status
			return nil
		}
		found++
		return getResult(cfg, w, res)
	})
	if err != nil {
		return err
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// lookup follows path from the document root.  With a non-empty typ the
// path names a block and the result is its first child of that semantic
// type; a path of "." names the root.
func lookup(root *ir.Node, path, typ string) *ir.Node {
	if typ == "" {
		return root.Lookup(path)
	}
	parent := root
	if path != "." {
		parent = root.Lookup(path)
	}
	return parent.FirstChildOfType(typ)
}

func getResult(cfg *GetConfig, w io.Writer, y *ir.Node) error {
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
