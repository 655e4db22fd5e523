package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	NoDedent bool `cli:"name=raw desc='keep embedded text as written'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(source string) []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseSource(source)}
	if cfg.NoDedent {
		res = append(res, parse.NoDedent())
	}
	return res
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.PodFormat
}

// colored reports whether output to w should carry color escapes.  An
// explicit -color setting wins over terminal detection.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Plain bool `cli:"name=plain desc='encode yaml or json as plain nested mappings'"`

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file instead of output'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Type string `cli:"name=t aliases=type desc='select the first child of this semantic type at the last step'"`

	Get *cli.Command
}

type EnvConfig struct {
	*MainConfig

	Infer bool `cli:"name=i desc='infer int and float values'"`

	Env *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Structural bool `cli:"name=s desc='report changes by node path'"`
	Reverse    bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
