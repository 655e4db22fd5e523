package ir

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/pod-format/token"
)

// Part identifies the piece of a statement handed to a [Writer]'s Decorate
// function.
type Part int

const (
	SemanticTypePart Part = iota
	NamePart
	ValuePart
	ScopeTypePart
	SepPart
)

const indentUnit = "    "

// Writer writes nodes as canonical Pod text.
type Writer struct {
	w io.Writer

	// Decorate, if set, rewrites each piece of output before it is
	// written, for example to add color.  t is the value type of the node
	// being written.
	Decorate func(p Part, t Type, s string) string

	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes y as canonical Pod text.  An unparented, unnamed and untyped
// block node is written as a document: its children, flush left.
func (y *Node) Write(w io.Writer) error {
	return NewWriter(w).WriteNode(y)
}

func (w *Writer) WriteNode(y *Node) error {
	if isDocument(y) {
		for _, c := range y.Value.Block.Nodes {
			w.writeNode(c, 0)
		}
	} else {
		w.writeNode(y, 0)
	}
	return w.err
}

func isDocument(y *Node) bool {
	return y.Parent == nil && y.Name == "" && y.SemanticType == "" &&
		y.IsBlock() && y.Value.Block.ScopeType == ""
}

func (w *Writer) put(p Part, t Type, s string) {
	if w.err != nil {
		return
	}
	if w.Decorate != nil {
		s = w.Decorate(p, t, s)
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *Writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *Writer) writeNode(y *Node, depth int) {
	if y == nil || !y.IsValid() {
		return
	}
	t := y.ValueType()
	w.raw(strings.Repeat(indentUnit, depth))
	if y.SemanticType != "" {
		w.put(SemanticTypePart, t, y.SemanticType)
		if y.Name != "" || y.Value.IsDefined() {
			w.raw(" ")
		}
	}
	if y.Name != "" {
		w.put(NamePart, t, FormatName(y.Name))
	}
	if y.Value.IsDefined() {
		if y.Name != "" {
			w.raw(" ")
			w.put(SepPart, t, "=")
			w.raw(" ")
		}
		w.writeValue(y.Value, depth)
	}
	w.put(SepPart, t, ";")
	w.raw("\n")
}

func (w *Writer) writeValue(v *Value, depth int) {
	t := v.TypeOf()
	switch t {
	case StringType:
		w.put(ValuePart, t, token.Quote(v.String))
	case IntType:
		w.put(ValuePart, t, strconv.FormatInt(int64(v.Int), 10))
	case FloatType:
		w.put(ValuePart, t, FormatFloat(v.Float))
	case BoolType:
		w.put(ValuePart, t, strconv.FormatBool(v.Bool))
	case IdentifierType:
		w.put(ValuePart, t, v.String)
	case EmbedType:
		w.put(ValuePart, t, "<"+v.Lang+">"+v.String+"</"+v.Lang+">")
	case BlockType:
		b := v.Block
		if b != nil && b.ScopeType != "" {
			w.put(ScopeTypePart, t, b.ScopeType)
			w.raw(" ")
		}
		w.put(SepPart, t, "{")
		w.raw("\n")
		if b != nil {
			for _, c := range b.Nodes {
				w.writeNode(c, depth+1)
			}
		}
		w.raw(strings.Repeat(indentUnit, depth))
		w.put(SepPart, t, "}")
	}
}

// FormatName renders a node name, quoting it unless it reads back as an
// identifier.
func FormatName(name string) string {
	if token.IsIdentifier(name) {
		return name
	}
	return token.Quote(name)
}
