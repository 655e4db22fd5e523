package main

import (
	"github.com/signadot/pod-format/debug"
	"github.com/signadot/pod-format/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return readDocs(cfg.MainConfig, cc.In, args, func(_ string, y *ir.Node) error {
		return debug.Dump(cc.Out, y)
	})
}
