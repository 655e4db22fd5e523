package main

import (
	"fmt"

	"github.com/signadot/pod-format/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := readDoc(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	w := cc.Out
	colored := cfg.colored(w)
	if cfg.Structural {
		changes := libdiff.Tree(a, b)
		if len(changes) == 0 {
			return nil
		}
		if err := libdiff.RenderChanges(w, changes, colored); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	lines, err := libdiff.Nodes(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.Render(w, lines, colored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
