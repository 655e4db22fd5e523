package parse

import (
	"strings"

	"github.com/signadot/pod-format/debug"
	"github.com/signadot/pod-format/ir"
)

// EnvironSource is the source label of trees built by ParseEnviron.
const EnvironSource = "environ"

// ParseEnviron builds a tree with one leaf per NAME=VALUE entry of env, as
// returned by os.Environ.  Values are strings unless infer is set and the
// whole value parses as an int, or failing that a float.
func ParseEnviron(env []string, infer bool) (*ir.Node, error) {
	nodes := make([]*ir.Node, 0, len(env))
	for i, kv := range env {
		name, val, _ := strings.Cut(kv, "=")
		y := &ir.Node{Name: name, Value: inferValue(val, infer)}
		y.SetSource(EnvironSource, i+1)
		if debug.Env() {
			debug.Logf("environ %s: %s\n", name, y.ValueTypeName())
		}
		nodes = append(nodes, y)
	}
	root := &ir.Node{}
	root.SetSource(EnvironSource, 0)
	if err := root.SetBlock(nodes, ""); err != nil {
		return nil, err
	}
	return root, nil
}

func inferValue(s string, infer bool) *ir.Value {
	if !infer {
		return ir.FromString(s)
	}
	if i, ok := ir.ParseInt32(s); ok {
		return ir.FromInt(i)
	}
	if f, ok := ir.ParseFloat32(s); ok {
		return ir.FromFloat(f)
	}
	return ir.FromString(s)
}
