package gomap

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/parse"
)

// Plain returns the plain Go form of y.
func Plain(y *ir.Node) any {
	return plainValue(y.Value)
}

func plainValue(v *ir.Value) any {
	switch v.TypeOf() {
	case ir.StringType, ir.IdentifierType, ir.EmbedType:
		return v.String
	case ir.IntType:
		return int64(v.Int)
	case ir.FloatType:
		return plainFloat(v.Float)
	case ir.BoolType:
		return v.Bool
	case ir.BlockType:
		return plainBlock(v.Block)
	}
	return nil
}

func plainFloat(f float32) float64 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return float64(f)
	}
	res, _ := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	return res
}

func key(y *ir.Node) string {
	if y.Name != "" {
		return y.Name
	}
	return y.SemanticType
}

// plainBlock renders a block as a sequence when no statement has a key and
// otherwise as a mapping of the keyed statements, keeping the first of
// any repeated key.
func plainBlock(b *ir.Block) any {
	keyed := false
	for _, c := range b.Nodes {
		if c != nil && key(c) != "" {
			keyed = true
			break
		}
	}
	if !keyed {
		res := make([]any, 0, b.Len())
		for _, c := range b.Nodes {
			if c == nil || !c.IsValid() {
				continue
			}
			res = append(res, plainValue(c.Value))
		}
		return res
	}
	res := yaml.MapSlice{}
	seen := map[string]bool{}
	for _, c := range b.Nodes {
		if c == nil {
			continue
		}
		k := key(c)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, yaml.MapItem{Key: k, Value: plainValue(c.Value)})
	}
	return res
}

// WritePlain writes the plain form of y to w as YAML, or as JSON when f
// is format.JSONFormat.
func WritePlain(w io.Writer, y *ir.Node, f format.Format) error {
	var (
		d   []byte
		err error
	)
	if f.IsJSON() {
		d, err = yaml.MarshalWithOptions(Plain(y), yaml.JSON())
	} else {
		d, err = yaml.Marshal(Plain(y))
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// FromIR decodes the plain form of y into p, which must be a pointer.
func FromIR(y *ir.Node, p any) error {
	d, err := yaml.Marshal(Plain(y))
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(d, p); err != nil {
		return fmt.Errorf("decoding %s: %w", y.Repr(), err)
	}
	return nil
}

// Load parses the Pod document d and decodes it into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	y, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(y, p)
}
