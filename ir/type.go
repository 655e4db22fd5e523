package ir

import "fmt"

// Type is the syntactic kind of a value, as opposed to a node's
// user-specified semantic type.  Types are bit flags so that sets of them
// may be tested with [Node.IsValueType].
type Type int

const (
	UndefinedType Type = 1 << iota // effectively null
	StringType
	IntType
	FloatType
	BoolType
	IdentifierType
	BlockType
	EmbedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType:  "UNDEFINED",
		StringType:     "STRING",
		IntType:        "INT",
		FloatType:      "FLOAT",
		BoolType:       "BOOL",
		IdentifierType: "IDENTIFIER",
		BlockType:      "BLOCK",
		EmbedType:      "EMBED",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"UNDEFINED":  UndefinedType,
		"STRING":     StringType,
		"INT":        IntType,
		"FLOAT":      FloatType,
		"BOOL":       BoolType,
		"IDENTIFIER": IdentifierType,
		"BLOCK":      BlockType,
		"EMBED":      EmbedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		UndefinedType,
		StringType,
		IntType,
		FloatType,
		BoolType,
		IdentifierType,
		BlockType,
		EmbedType,
	}
}
