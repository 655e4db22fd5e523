package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/pod-format/ir"
)

// ToData converts a tree to ordered YAML data.  Each node becomes a mapping
// with keys name, type, kind, value, lang, scope and nodes, omitting those
// which do not apply.  A document root becomes the sequence of its
// statements.
func ToData(node *ir.Node) any {
	if node.Parent == nil && node.Name == "" && node.SemanticType == "" && node.IsBlock() {
		if s, _ := node.BlockScopeType(); s == "" {
			return nodesData(node.Value.Block.Nodes)
		}
	}
	return nodeData(node)
}

func nodesData(nodes []*ir.Node) []any {
	res := make([]any, 0, len(nodes))
	for _, c := range nodes {
		if c == nil || !c.IsValid() {
			continue
		}
		res = append(res, nodeData(c))
	}
	return res
}

func nodeData(node *ir.Node) yaml.MapSlice {
	var res yaml.MapSlice
	add := func(k string, v any) {
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	if node.Name != "" {
		add("name", node.Name)
	}
	if node.SemanticType != "" {
		add("type", node.SemanticType)
	}
	v := node.Value
	t := v.TypeOf()
	if t == ir.UndefinedType {
		return res
	}
	add("kind", strings.ToLower(t.String()))
	switch t {
	case ir.StringType, ir.IdentifierType:
		add("value", v.String)
	case ir.IntType:
		add("value", v.Int)
	case ir.FloatType:
		add("value", floatData(v.Float))
	case ir.BoolType:
		add("value", v.Bool)
	case ir.EmbedType:
		add("lang", v.Lang)
		add("value", v.String)
	case ir.BlockType:
		if v.Block.ScopeType != "" {
			add("scope", v.Block.ScopeType)
		}
		add("nodes", nodesData(v.Block.Nodes))
	}
	return res
}

// floatData keeps finite floats numeric and renders the others as text,
// which JSON cannot represent otherwise.
func floatData(f float32) any {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return ir.FormatFloat(f)
	}
	res, _ := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	return res
}
