package main

import (
	"fmt"
	"os"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/parse"

	"github.com/scott-cotton/cli"
)

func env(cfg *EnvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Env.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: env takes no arguments, got %v", cli.ErrUsage, args)
	}
	y, err := parse.ParseEnviron(os.Environ(), cfg.Infer)
	if err != nil {
		return err
	}
	return encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...)
}
