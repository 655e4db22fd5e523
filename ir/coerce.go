package ir

import (
	"strconv"
	"strings"
)

// Coercible reports whether a value of type from may be requested as type
// to.  For StringType sources requested as numbers the result additionally
// depends on the text parsing, and for FloatType sources requested as
// IntType on the float being in range.
func Coercible(from, to Type) bool {
	if from == UndefinedType {
		return false
	}
	if from == to {
		return true
	}
	switch to {
	case StringType:
		return true
	case IntType, FloatType:
		return from&(StringType|IntType|FloatType|BoolType) != 0
	case BoolType:
		return from&(IntType|FloatType) != 0
	}
	return false
}

// AsString renders v as text.  A block value is rendered as it would be
// written as the value of a statement.
func (v *Value) AsString() (string, error) {
	switch v.TypeOf() {
	case StringType, IdentifierType, EmbedType:
		return v.String, nil
	case IntType:
		return strconv.FormatInt(int64(v.Int), 10), nil
	case FloatType:
		return FormatFloat(v.Float), nil
	case BoolType:
		return strconv.FormatBool(v.Bool), nil
	case BlockType:
		var b strings.Builder
		w := NewWriter(&b)
		w.writeValue(v, 0)
		return b.String(), w.err
	default:
		return "", valueTypeErr("AsString", v)
	}
}

func (v *Value) AsInt() (int32, error) {
	switch v.TypeOf() {
	case IntType:
		return v.Int, nil
	case FloatType:
		if i, ok := truncInt32(v.Float); ok {
			return i, nil
		}
	case BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case StringType:
		if i, ok := ParseInt32(v.String); ok {
			return i, nil
		}
	}
	return 0, valueTypeErr("AsInt", v)
}

func (v *Value) AsFloat() (float32, error) {
	switch v.TypeOf() {
	case FloatType:
		return v.Float, nil
	case IntType:
		return float32(v.Int), nil
	case BoolType:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case StringType:
		if f, ok := ParseFloat32(v.String); ok {
			return f, nil
		}
	}
	return 0, valueTypeErr("AsFloat", v)
}

func (v *Value) AsBool() (bool, error) {
	switch v.TypeOf() {
	case BoolType:
		return v.Bool, nil
	case IntType:
		return v.Int != 0, nil
	case FloatType:
		return v.Float != 0, nil
	}
	return false, valueTypeErr("AsBool", v)
}

func (v *Value) AsIdentifier() (string, error) {
	if v.TypeOf() != IdentifierType {
		return "", valueTypeErr("AsIdentifier", v)
	}
	return v.String, nil
}

func (v *Value) AsEmbed() (string, error) {
	if v.TypeOf() != EmbedType {
		return "", valueTypeErr("AsEmbed", v)
	}
	return v.String, nil
}

func (y *Node) IsString() bool     {
	return y.ValueType() == StringType
}

func (y *Node) IsInt() bool        {
	return y.ValueType() == IntType
}

func (y *Node) IsFloat() bool      {
	return y.ValueType() == FloatType
}

func (y *Node) IsBool() bool       {
	return y.ValueType() == BoolType
}

func (y *Node) IsIdentifier() bool {
	return y.ValueType() == IdentifierType
}

func (y *Node) IsEmbed() bool      {
	return y.ValueType() == EmbedType
}

func (y *Node) IsNumeric() bool    {
	return y.IsValueType(IntType | FloatType)
}

// AsString returns y's value as text.  For a block node this is the
// canonical text of the whole node.
func (y *Node) AsString() (string, error) {
	if !y.IsBlock() {
		return y.Value.AsString()
	}
	var b strings.Builder
	if err := y.Write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (y *Node) AsInt() (int32, error) {
	return y.Value.AsInt()
}

func (y *Node) AsFloat() (float32, error) {
	return y.Value.AsFloat()
}

func (y *Node) AsBool() (bool, error) {
	return y.Value.AsBool()
}

func (y *Node) AsIdentifier() (string, error) {
	return y.Value.AsIdentifier()
}

func (y *Node) AsEmbed() (string, error) {
	return y.Value.AsEmbed()
}
