package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	y := nodeAt(doc, int(params.Position.Line), int(params.Position.Character))
	if y == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(y),
		},
	}, nil
}

// nodeAt returns the statement starting last on line at or before the
// UTF-16 column char.
func nodeAt(doc *document, line, char int) *ir.Node {
	col := byteColumn(lineText(doc.content, line), char)
	var best *ir.Node
	bestCol := -1
	doc.root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Parent == nil {
			return true, nil
		}
		pos := doc.positions[y]
		if pos == nil {
			return true, nil
		}
		l, c := pos.LineCol()
		if l == line && c <= col && c >= bestCol {
			best, bestCol = y, c
		}
		return true, nil
	})
	return best
}

func hoverText(y *ir.Node) string {
	var parts []string
	if y.Name != "" {
		parts = append(parts, fmt.Sprintf("**Name:** `%s`", y.Name))
	}
	if y.SemanticType != "" {
		parts = append(parts, fmt.Sprintf("**Type:** `%s`", y.SemanticType))
	}
	parts = append(parts, fmt.Sprintf("**Kind:** %s", y.ValueTypeName()))
	if v := valueInfo(y); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	if y.SourceLine > 0 {
		parts = append(parts, fmt.Sprintf("defined at line %d", y.SourceLine))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(y *ir.Node) string {
	switch y.ValueType() {
	case ir.UndefinedType:
		return ""
	case ir.BlockType:
		b := y.Value.Block
		scope := ""
		if b != nil && b.ScopeType != "" {
			scope = " of scope `" + b.ScopeType + "`"
		}
		return fmt.Sprintf("block%s with %d statements", scope, b.Len())
	case ir.EmbedType:
		return fmt.Sprintf("`%s` embed, %d lines", y.Value.Lang, strings.Count(y.Value.String, "\n"))
	}
	val := encode.MustString(&ir.Node{Value: y.Value})
	val = strings.TrimSuffix(val, ";")
	if len(val) > 50 {
		val = val[:50] + "..."
	}
	return "`" + val + "`"
}
