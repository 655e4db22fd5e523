package ir

import "fmt"

// SyncBlock checks and repairs ownership in y's block, recursively.  Each
// child whose parent is y or unset is adopted.  Nil elements, nodes owned
// by another block, repeated nodes and ancestors of y are dropped, and all
// such violations found in the subtree are returned together as an
// *IntegrityError.
//
// SyncBlock is a no-op for nodes which are not blocks.
func (y *Node) SyncBlock() error {
	if !y.IsBlock() {
		return nil
	}
	var violations []string
	y.sync(&violations)
	if len(violations) == 0 {
		return nil
	}
	return &IntegrityError{Node: y.Repr(), Violations: violations}
}

func (y *Node) sync(violations *[]string) {
	b := y.Value.Block
	if b == nil {
		y.Value.Block = &Block{}
		return
	}
	seen := make(map[*Node]bool, len(b.Nodes))
	kept := b.Nodes[:0]
	for _, c := range b.Nodes {
		switch {
		case c == nil:
			*violations = append(*violations, fmt.Sprintf("invalid nil node in block of %s", y.Repr()))
			continue
		case c.Parent != nil && c.Parent != y:
			*violations = append(*violations, fmt.Sprintf("%s is already a child of %s", c.Repr(), c.Parent.Repr()))
			continue
		case seen[c]:
			*violations = append(*violations, fmt.Sprintf("%s appears more than once in block of %s", c.Repr(), y.Repr()))
			continue
		case y.hasAncestor(c):
			*violations = append(*violations, fmt.Sprintf("%s cannot be a child of its descendant %s", c.Repr(), y.Repr()))
			continue
		}
		seen[c] = true
		c.Parent = y
		kept = append(kept, c)
		if c.IsBlock() {
			c.sync(violations)
		}
	}
	clear(b.Nodes[len(kept):])
	b.Nodes = kept
}

// hasAncestor reports whether a is y or an ancestor of y.
func (y *Node) hasAncestor(a *Node) bool {
	for p := y; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}
