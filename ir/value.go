package ir

// Value is a tagged Pod value.  The payload field in use depends on Type:
//
//   - StringType, IdentifierType: String
//   - IntType: Int
//   - FloatType: Float
//   - BoolType: Bool
//   - EmbedType: String holds the text, Lang the language tag
//   - BlockType: Block
//
// Scalar values are not modified once constructed; a node replaces its value
// wholesale.  Only the Block of a block value is mutable.
type Value struct {
	Type Type

	String string
	Int    int32
	Float  float32
	Bool   bool
	Lang   string
	Block  *Block
}

// Block is an ordered sequence of nodes owned by the node whose value holds
// it, with an optional scope type naming the kind of block.
//
// Code which edits Nodes in place must call [Node.SyncBlock] on the owner
// afterwards.
type Block struct {
	Nodes     []*Node
	ScopeType string
}

func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Nodes)
}

func Undefined() *Value {
	return &Value{Type: UndefinedType}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromInt(v int32) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(f float32) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromIdentifier(v string) *Value {
	return &Value{Type: IdentifierType, String: v}
}

func FromEmbed(text, lang string) *Value {
	return &Value{Type: EmbedType, String: text, Lang: lang}
}

// FromBlock wraps nodes into a block value.  Ownership of the nodes is
// established when the value is attached to a node.
func FromBlock(nodes []*Node, scopeType string) *Value {
	return &Value{Type: BlockType, Block: &Block{Nodes: nodes, ScopeType: scopeType}}
}

// TypeOf returns v's type, treating a nil value as undefined.
func (v *Value) TypeOf() Type {
	if v == nil || v.Type == 0 {
		return UndefinedType
	}
	return v.Type
}

func (v *Value) IsDefined() bool {
	return v.TypeOf() != UndefinedType
}

// Copy returns a copy of a scalar value.  Blocks cannot be copied since
// their nodes have a single owner; see [Node.Clone] for deep copies.
func (v *Value) Copy() (*Value, error) {
	if v == nil {
		return nil, nil
	}
	if v.Type == BlockType {
		return nil, ErrCopyBlock
	}
	res := *v
	return &res, nil
}
