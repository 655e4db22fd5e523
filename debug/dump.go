package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/pod-format/ir"
)

// Dump writes a tab indented description of the tree rooted at y, one
// node per line, including value types, parents and source locations.
func Dump(w io.Writer, y *ir.Node) error {
	dw := &dumper{w: w}
	dw.node(y, 0)
	return dw.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (dp *dumper) printf(format string, args ...any) {
	if dp.err != nil {
		return
	}
	_, dp.err = fmt.Fprintf(dp.w, format, args...)
}

func (dp *dumper) node(y *ir.Node, indent int) {
	if y == nil {
		return
	}
	tabs := strings.Repeat("\t", indent)
	dp.printf("%sNode('%s'", tabs, y.Name)
	if y.SemanticType != "" {
		dp.printf(", type='%s'", y.SemanticType)
	}
	if y.Value == nil {
		dp.printf(", value=NULL")
	} else {
		dp.printf(", value=%s", valueRepr(y.Value))
	}
	parent := "NULL"
	if y.Parent != nil {
		parent = y.Parent.Name
	}
	dp.printf(", parent='%s'", parent)
	switch y.ValueType() {
	case ir.EmbedType:
		dp.printf(", lang='%s'", y.Value.Lang)
	case ir.BlockType:
		if s := y.Value.Block.ScopeType; s != "" {
			dp.printf(", scope='%s'", s)
		}
		dp.printf("\n")
		for _, c := range y.Value.Block.Nodes {
			dp.node(c, indent+1)
		}
		dp.printf("%s", tabs)
	}
	dp.printf(" [defined in '%s', line %d])\n", y.SourceFile, y.SourceLine)
}

func valueRepr(v *ir.Value) string {
	t := v.TypeOf()
	switch t {
	case ir.StringType, ir.IdentifierType, ir.EmbedType:
		return fmt.Sprintf("Value('%s', %s)", v.String, t)
	case ir.IntType:
		return fmt.Sprintf("Value(%d, %s)", v.Int, t)
	case ir.FloatType:
		return fmt.Sprintf("Value(%s, %s)", strconv.FormatFloat(float64(v.Float), 'g', 6, 32), t)
	case ir.BoolType:
		if v.Bool {
			return "Value(True, BOOL)"
		}
		return "Value(False, BOOL)"
	case ir.BlockType:
		return "Value(<BLOCK>, BLOCK)"
	}
	return "Value(UNDEFINED)"
}
