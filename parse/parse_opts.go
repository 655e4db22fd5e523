package parse

import (
	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/token"
)

type parseOpts struct {
	source    string
	positions map[*ir.Node]*token.Pos
	noDedent  bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenSource(o.source)}
}

type ParseOption func(*parseOpts)

// ParseSource labels the input in positions, errors and the SourceFile of
// parsed nodes.
func ParseSource(s string) ParseOption {
	return func(o *parseOpts) { o.source = s }
}

// ParsePositions records the position of the first token of each parsed
// node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// NoDedent keeps embed text exactly as written.
func NoDedent() ParseOption {
	return func(o *parseOpts) { o.noDedent = true }
}
