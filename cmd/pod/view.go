package main

import (
	"fmt"
	"io"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/gomap"
	"github.com/signadot/pod-format/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	f := cfg.format()
	if cfg.Plain && f.IsPod() {
		return fmt.Errorf("%w: -plain requires -O yaml or -O json", cli.ErrUsage)
	}
	opts := cfg.encOpts(w)
	i := 0
	return readDocs(cfg.MainConfig, cc.In, args, func(arg string, y *ir.Node) error {
		if len(args) > 1 {
			if err := writeSep(w, f, arg, i); err != nil {
				return err
			}
		}
		i++
		if cfg.Plain {
			return gomap.WritePlain(w, y, f)
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

// writeSep introduces the i'th of several documents written to w.
func writeSep(w io.Writer, f format.Format, arg string, i int) error {
	var err error
	switch f {
	case format.PodFormat:
		if i > 0 {
			_, err = io.WriteString(w, "\n")
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "# "+arg+"\n")
	case format.YAMLFormat:
		_, err = io.WriteString(w, "---\n")
	}
	return err
}
