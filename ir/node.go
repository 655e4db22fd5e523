package ir

import (
	"fmt"
	"strings"
)

// Node is a named, optionally typed, optionally valued element of a Pod
// tree.  Parent is maintained by the block operations below and by
// [Node.SyncBlock]; it is nil at the root.
type Node struct {
	Name         string
	SemanticType string
	Value        *Value
	Parent       *Node

	SourceFile string
	SourceLine int
}

// NewNode creates a node holding v.  If v is a block, ownership of its
// nodes is established as with [Node.SetValue].
func NewNode(name, semanticType string, v *Value) (*Node, error) {
	res := &Node{Name: name, SemanticType: semanticType}
	if v == nil {
		return res, nil
	}
	if err := res.SetValue(v); err != nil {
		return res, err
	}
	return res, nil
}

// IsValid reports whether y carries a defined value or a name.
func (y *Node) IsValid() bool {
	return y.Value.IsDefined() || y.Name != ""
}

func (y *Node) ValueType() Type {
	if y == nil {
		return UndefinedType
	}
	return y.Value.TypeOf()
}

// IsValueType reports whether y's value type is in the set mask.
func (y *Node) IsValueType(mask Type) bool {
	return y.ValueType()&mask != 0
}

func (y *Node) ValueTypeName() string {
	return y.ValueType().String()
}

func (y *Node) SetSource(file string, line int) *Node {
	y.SourceFile = file
	y.SourceLine = line
	return y
}

// SetValue replaces y's value.  The children of a block value previously
// held are released.  A block value whose nodes are owned elsewhere is
// rejected without modifying anything.
func (y *Node) SetValue(v *Value) error {
	if v == y.Value {
		return y.SyncBlock()
	}
	if v.TypeOf() == BlockType {
		if v.Block == nil {
			v.Block = &Block{}
		}
		if err := y.checkUnowned("SetValue", v.Block.Nodes); err != nil {
			return err
		}
	}
	y.release()
	y.Value = v
	return y.SyncBlock()
}

func (y *Node) setScalar(v *Value) {
	y.release()
	y.Value = v
}

// release detaches the children of y's current block value, if any.
func (y *Node) release() {
	if y.ValueType() != BlockType || y.Value.Block == nil {
		return
	}
	for _, c := range y.Value.Block.Nodes {
		if c != nil && c.Parent == y {
			c.Parent = nil
		}
	}
}

func (y *Node) checkUnowned(fn string, nodes []*Node) error {
	var violations []string
	for _, c := range nodes {
		if c == nil || c.Parent == nil {
			continue
		}
		violations = append(violations, fmt.Sprintf("%s: %s is already a child of %s", fn, c.Repr(), c.Parent.Repr()))
	}
	if len(violations) == 0 {
		return nil
	}
	return &IntegrityError{Node: y.Repr(), Violations: violations}
}

func (y *Node) SetString(v string) {
	y.setScalar(FromString(v))
}

func (y *Node) SetInt(v int32) {
	y.setScalar(FromInt(v))
}

func (y *Node) SetFloat(v float32) {
	y.setScalar(FromFloat(v))
}

func (y *Node) SetBool(v bool) {
	y.setScalar(FromBool(v))
}

func (y *Node) SetIdentifier(v string) {
	y.setScalar(FromIdentifier(v))
}

func (y *Node) SetEmbed(text, lang string) {
	y.setScalar(FromEmbed(text, lang))
}

// Unset makes y's value undefined.
func (y *Node) Unset() {
	y.setScalar(nil)
}

// SetValueFrom copies other's scalar value into y.  Block values have a
// single owner and cannot be copied.
func (y *Node) SetValueFrom(other *Node) error {
	v, err := other.Value.Copy()
	if err != nil {
		return err
	}
	y.setScalar(v)
	return nil
}

// SetBlock replaces y's value with a block of nodes.  It fails without
// modification if any of nodes already has a parent.
func (y *Node) SetBlock(nodes []*Node, scopeType string) error {
	return y.SetValue(FromBlock(nodes, scopeType))
}

func (y *Node) IsBlock() bool {
	return y.ValueType() == BlockType
}

// AsBlock returns y's block, first installing an empty one if y's value is
// undefined.
func (y *Node) AsBlock() (*Block, error) {
	switch y.ValueType() {
	case BlockType:
		if y.Value.Block == nil {
			y.Value.Block = &Block{}
		}
		return y.Value.Block, nil
	case UndefinedType:
		y.Value = FromBlock(nil, "")
		return y.Value.Block, nil
	default:
		return nil, valueTypeErr("AsBlock", y.Value)
	}
}

// Children returns the nodes of y's block without installing one.
func (y *Node) Children() ([]*Node, error) {
	if !y.IsBlock() {
		return nil, valueTypeErr("Children", y.Value)
	}
	return y.Value.Block.Nodes, nil
}

func (y *Node) BlockScopeType() (string, error) {
	if !y.IsBlock() {
		return "", valueTypeErr("BlockScopeType", y.Value)
	}
	return y.Value.Block.ScopeType, nil
}

func (y *Node) SetBlockScopeType(scopeType string) error {
	if !y.IsBlock() {
		return valueTypeErr("SetBlockScopeType", y.Value)
	}
	y.Value.Block.ScopeType = scopeType
	return nil
}

func (y *Node) EmbedLanguage() (string, error) {
	if !y.IsEmbed() {
		return "", valueTypeErr("EmbedLanguage", y.Value)
	}
	return y.Value.Lang, nil
}

// SetEmbedLanguage replaces the language tag of y's embed, keeping its
// text.
func (y *Node) SetEmbedLanguage(lang string) error {
	if !y.IsEmbed() {
		return valueTypeErr("SetEmbedLanguage", y.Value)
	}
	y.Value = FromEmbed(y.Value.String, lang)
	return nil
}

// ChildByName returns the first child of y named name, or nil.
func (y *Node) ChildByName(name string) *Node {
	if !y.IsBlock() {
		return nil
	}
	for _, c := range y.Value.Block.Nodes {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// FirstChildOfType returns the first child of y whose semantic type is
// semanticType, or nil.
func (y *Node) FirstChildOfType(semanticType string) *Node {
	if !y.IsBlock() {
		return nil
	}
	for _, c := range y.Value.Block.Nodes {
		if c != nil && c.SemanticType == semanticType {
			return c
		}
	}
	return nil
}

// Lookup follows a dotted chain of child names from y.
func (y *Node) Lookup(path string) *Node {
	if path == "" {
		return y
	}
	res := y
	for _, name := range strings.Split(path, ".") {
		res = res.ChildByName(name)
		if res == nil {
			return nil
		}
	}
	return res
}

// Append adds child at the end of y's block, installing an empty block if
// y's value is undefined.
func (y *Node) Append(child *Node) error {
	if child == nil {
		return &IntegrityError{Node: y.Repr(), Violations: []string{"Append: invalid nil node"}}
	}
	if err := y.checkUnowned("Append", []*Node{child}); err != nil {
		return err
	}
	b, err := y.AsBlock()
	if err != nil {
		return err
	}
	b.Nodes = append(b.Nodes, child)
	return y.SyncBlock()
}

// Remove detaches child from y's block, reporting whether it was found.
func (y *Node) Remove(child *Node) bool {
	if !y.IsBlock() {
		return false
	}
	b := y.Value.Block
	for i, c := range b.Nodes {
		if c != child {
			continue
		}
		b.Nodes = append(b.Nodes[:i], b.Nodes[i+1:]...)
		if child.Parent == y {
			child.Parent = nil
		}
		return true
	}
	return false
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

// Path returns the dotted chain of names from the root to y.  Unnamed
// ancestors are skipped.
func (y *Node) Path() string {
	var parts []string
	for n := y; n != nil; n = n.Parent {
		if n.Name != "" {
			parts = append(parts, n.Name)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) the children of each block.  Returning false from the pre
// call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if descend && y.IsBlock() {
		for _, c := range y.Value.Block.Nodes {
			if c == nil {
				continue
			}
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}

// Clone returns a deep copy of y with no parent.
func (y *Node) Clone() *Node {
	res := &Node{
		Name:         y.Name,
		SemanticType: y.SemanticType,
		SourceFile:   y.SourceFile,
		SourceLine:   y.SourceLine,
	}
	if y.Value == nil {
		return res
	}
	if !y.IsBlock() {
		v := *y.Value
		res.Value = &v
		return res
	}
	b := y.Value.Block
	nodes := make([]*Node, 0, b.Len())
	for _, c := range b.Nodes {
		if c == nil {
			continue
		}
		cc := c.Clone()
		cc.Parent = res
		nodes = append(nodes, cc)
	}
	res.Value = FromBlock(nodes, b.ScopeType)
	return res
}

// Repr describes y for messages.
func (y *Node) Repr() string {
	if y == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<Node %q", y.Name)
	if y.SemanticType != "" {
		fmt.Fprintf(&b, " type %q", y.SemanticType)
	}
	if y.SourceFile != "" {
		fmt.Fprintf(&b, " (%s:%d)", y.SourceFile, y.SourceLine)
	}
	b.WriteString(">")
	return b.String()
}
