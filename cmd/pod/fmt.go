package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/parse"

	"github.com/scott-cotton/cli"
)

func podFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		y, err := parse.ParseReader(cc.In, "<stdin>", cfg.parseOpts("<stdin>")...)
		if err != nil {
			return err
		}
		return encode.Encode(y, cc.Out)
	}
	for _, arg := range args {
		if err := fmtFile(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return &parse.IOError{Path: file, Err: err}
	}
	out, err := canonical(cfg.MainConfig, file, src)
	if err != nil {
		return err
	}
	changed := !bytes.Equal(src, out)
	if cfg.List {
		if changed {
			fmt.Fprintln(cc.Out, file)
		}
		return nil
	}
	if !cfg.Write {
		_, err := cc.Out.Write(out)
		return err
	}
	if !changed {
		return nil
	}
	fi, err := os.Stat(file)
	if err != nil {
		return &parse.IOError{Path: file, Err: err}
	}
	if err := os.WriteFile(file, out, fi.Mode().Perm()); err != nil {
		return &parse.IOError{Path: file, Err: err}
	}
	theLog.Info("formatted", "file", file)
	return nil
}

// canonical returns the canonical text of the pod document src.
func canonical(cfg *MainConfig, source string, src []byte) ([]byte, error) {
	y, err := parse.Parse(src, cfg.parseOpts(source)...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
