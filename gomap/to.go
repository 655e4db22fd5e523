package gomap

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/signadot/pod-format/ir"
)

// ToIR converts v, by way of its YAML encoding, to a Pod document whose
// root block holds one statement per mapping entry.  Sequences become blocks
// of anonymous statements and nulls become declarations without a value.
func ToIR(v any) (*ir.Node, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.UnmarshalWithOptions(d, &data, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	val, err := toValue(data)
	if err != nil {
		return nil, err
	}
	if !val.IsDefined() {
		val = ir.FromBlock(nil, "")
	}
	if val.Type != ir.BlockType {
		val = ir.FromBlock([]*ir.Node{{Value: val}}, "")
	}
	return ir.NewNode("", "", val)
}

func toValue(x any) (*ir.Value, error) {
	switch x := x.(type) {
	case nil:
		return ir.Undefined(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return intValue(int64(x))
	case int64:
		return intValue(x)
	case uint64:
		if x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrRange, x)
		}
		return ir.FromInt(int32(x)), nil
	case float64:
		if math.Abs(x) > math.MaxFloat32 && !math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %g", ErrRange, x)
		}
		return ir.FromFloat(float32(x)), nil
	case yaml.MapSlice:
		nodes := make([]*ir.Node, 0, len(x))
		for _, item := range x {
			v, err := toValue(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", item.Key, err)
			}
			nodes = append(nodes, &ir.Node{Name: fmt.Sprint(item.Key), Value: v})
		}
		return ir.FromBlock(nodes, ""), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ms := make(yaml.MapSlice, len(keys))
		for i, k := range keys {
			ms[i] = yaml.MapItem{Key: k, Value: x[k]}
		}
		return toValue(ms)
	case []any:
		nodes := make([]*ir.Node, 0, len(x))
		for i, elt := range x {
			v, err := toValue(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if !v.IsDefined() {
				continue
			}
			nodes = append(nodes, &ir.Node{Value: v})
		}
		return ir.FromBlock(nodes, ""), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
}

func intValue(i int64) (*ir.Value, error) {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrRange, i)
	}
	return ir.FromInt(int32(i)), nil
}
