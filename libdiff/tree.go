package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/pod-format/ir"
)

// Change is a difference between two trees at Path, the dotted names
// leading to the node.  From is nil for insertions and To for deletions.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

// Tree diffs two trees structurally.  Block children are aligned by
// semantic type and name; aligned children are compared recursively and
// any other difference in a node is reported as a replacement, that is a
// Delete followed by an Insert at the same path.
func Tree(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, "", &res)
	return res
}

func diffNode(from, to *ir.Node, path string, res *[]Change) {
	if from.IsBlock() && to.IsBlock() && from.SemanticType == to.SemanticType {
		fs, _ := from.BlockScopeType()
		ts, _ := to.BlockScopeType()
		if fs == ts {
			diffBlock(from, to, path, res)
			return
		}
	}
	if ir.Equal(from, to) {
		return
	}
	*res = append(*res,
		Change{Path: path, Op: Delete, From: from},
		Change{Path: path, Op: Insert, To: to})
}

type childKey struct {
	semanticType, name string
}

func diffBlock(from, to *ir.Node, path string, res *[]Change) {
	keyMap := map[childKey]rune{}
	fromKids := present(from)
	toKids := present(to)
	fromRunes := mapChildrenTo(keyMap, fromKids)
	toRunes := mapChildrenTo(keyMap, toKids)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				c := fromKids[fi]
				*res = append(*res, Change{Path: join(path, c.Name), Op: Delete, From: c})
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				diffNode(fromKids[fi], toKids[ti], join(path, toKids[ti].Name), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				c := toKids[ti]
				*res = append(*res, Change{Path: join(path, c.Name), Op: Insert, To: c})
				ti++
			}
		}
	}
}

func mapChildrenTo(m map[childKey]rune, nodes []*ir.Node) []rune {
	res := make([]rune, 0, len(nodes))
	for _, c := range nodes {
		k := childKey{semanticType: c.SemanticType, name: c.Name}
		r, ok := m[k]
		if !ok {
			r = rune(0xE000 + len(m))
			m[k] = r
		}
		res = append(res, r)
	}
	return res
}

// present returns the non-nil children of y.
func present(y *ir.Node) []*ir.Node {
	kids, _ := y.Children()
	res := make([]*ir.Node, 0, len(kids))
	for _, c := range kids {
		if c != nil {
			res = append(res, c)
		}
	}
	return res
}

func join(path, name string) string {
	switch {
	case name == "":
		return path
	case path == "":
		return name
	default:
		return path + "." + name
	}
}
