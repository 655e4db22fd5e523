package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/pod-format/debug"
	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the selected format, canonical Pod text by
// default.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %s as %s\n", node.Repr(), es.format)
	}
	switch es.format {
	case format.PodFormat:
		return encodePod(node, w, es)
	case format.YAMLFormat, format.JSONFormat:
		return encodeData(node, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

func encodePod(node *ir.Node, w io.Writer, es *EncState) error {
	pw := ir.NewWriter(w)
	if es.Color != nil {
		pw.Decorate = func(p ir.Part, t ir.Type, s string) string {
			return es.Color(t, attrOf(p), s)
		}
	}
	return pw.WriteNode(node)
}

func attrOf(p ir.Part) ColorAttr {
	switch p {
	case ir.SemanticTypePart:
		return SemanticTypeColor
	case ir.NamePart:
		return NameColor
	case ir.ValuePart:
		return ValueColor
	case ir.ScopeTypePart:
		return ScopeColor
	default:
		return SepColor
	}
}

func encodeData(node *ir.Node, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	v := ToData(node)
	if es.format.IsJSON() {
		d, err = yaml.MarshalWithOptions(v, yaml.JSON())
	} else {
		d, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
