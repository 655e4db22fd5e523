package ir

import "math"

// Equal reports whether a and b are structurally equal: same names,
// semantic types and typed values, with block children equal in order.
// Parents and source positions are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.SemanticType != b.SemanticType {
		return false
	}
	return EqualValues(a.Value, b.Value)
}

// EqualValues compares values by type and payload.  NaN floats are equal
// to each other.
func EqualValues(a, b *Value) bool {
	ta, tb := a.TypeOf(), b.TypeOf()
	if ta != tb {
		return false
	}
	switch ta {
	case UndefinedType:
		return true
	case StringType, IdentifierType:
		return a.String == b.String
	case IntType:
		return a.Int == b.Int
	case FloatType:
		if math.IsNaN(float64(a.Float)) {
			return math.IsNaN(float64(b.Float))
		}
		return a.Float == b.Float
	case BoolType:
		return a.Bool == b.Bool
	case EmbedType:
		return a.String == b.String && a.Lang == b.Lang
	case BlockType:
		return equalBlocks(a.Block, b.Block)
	}
	return false
}

func equalBlocks(a, b *Block) bool {
	if a.Len() != b.Len() || scopeOf(a) != scopeOf(b) {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for i, an := range a.Nodes {
		if !Equal(an, b.Nodes[i]) {
			return false
		}
	}
	return true
}

func scopeOf(b *Block) string {
	if b == nil {
		return ""
	}
	return b.ScopeType
}
