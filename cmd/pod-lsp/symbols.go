package main

import (
	"context"
	"strings"

	"github.com/signadot/pod-format/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	syms := symbols(doc, doc.root)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols lists the named statements in y's block.  Children of unnamed
// blocks are lifted into the enclosing list.
func symbols(doc *document, y *ir.Node) []protocol.DocumentSymbol {
	if !y.IsBlock() {
		return nil
	}
	res := []protocol.DocumentSymbol{}
	for _, c := range y.Value.Block.Nodes {
		if c == nil {
			continue
		}
		if c.Name == "" {
			res = append(res, symbols(doc, c)...)
			continue
		}
		res = append(res, symbol(doc, c))
	}
	return res
}

func symbol(doc *document, y *ir.Node) protocol.DocumentSymbol {
	var rng protocol.Range
	if pos := doc.positions[y]; pos != nil {
		l, c := pos.LineCol()
		rng.Start = lspPosition(doc.content, l, c)
		end := endLine(doc, y, l)
		rng.End = protocol.Position{
			Line:      uint32(end),
			Character: uint32(utf16Len(lineText(doc.content, end))),
		}
	}
	detail := []string{}
	if y.SemanticType != "" {
		detail = append(detail, y.SemanticType)
	}
	detail = append(detail, strings.ToLower(y.ValueTypeName()))
	return protocol.DocumentSymbol{
		Name:           y.Name,
		Detail:         strings.Join(detail, " "),
		Kind:           symbolKind(y.ValueType()),
		Range:          rng,
		SelectionRange: rng,
		Children:       symbols(doc, y),
	}
}

func symbolKind(t ir.Type) protocol.SymbolKind {
	switch t {
	case ir.BlockType:
		return protocol.SymbolKindNamespace
	case ir.StringType, ir.EmbedType:
		return protocol.SymbolKindString
	case ir.IntType, ir.FloatType:
		return protocol.SymbolKindNumber
	case ir.BoolType:
		return protocol.SymbolKindBoolean
	case ir.IdentifierType:
		return protocol.SymbolKindEnumMember
	default:
		return protocol.SymbolKindNull
	}
}

// endLine estimates the last line of the statement y starting on line: the
// line of the closing brace after its deepest statement for blocks.
func endLine(doc *document, y *ir.Node, line int) int {
	if !y.IsBlock() {
		return line
	}
	last := line
	y.Visit(func(c *ir.Node, isPost bool) (bool, error) {
		if pos := doc.positions[c]; pos != nil && pos.Line() > last {
			last = pos.Line()
		}
		return true, nil
	})
	n := strings.Count(doc.content, "\n")
	for l := last; l <= n; l++ {
		if strings.Contains(lineText(doc.content, l), "}") {
			return l
		}
	}
	return last
}
