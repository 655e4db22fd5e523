package main

import (
	"context"
	"sort"

	"github.com/signadot/pod-format/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.CompletionList{}, nil
	}
	return &protocol.CompletionList{Items: completions(doc.last)}, nil
}

// completions offers the semantic types and scope types used in root.
func completions(root *ir.Node) []protocol.CompletionItem {
	if root == nil {
		return []protocol.CompletionItem{}
	}
	types := map[string]int{}
	scopes := map[string]int{}
	root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if y.SemanticType != "" {
			types[y.SemanticType]++
		}
		if y.IsBlock() && y.Value.Block != nil && y.Value.Block.ScopeType != "" {
			scopes[y.Value.Block.ScopeType]++
		}
		return true, nil
	})
	res := make([]protocol.CompletionItem, 0, len(types)+len(scopes))
	for _, name := range sortedKeys(types) {
		res = append(res, protocol.CompletionItem{
			Label:  name,
			Kind:   protocol.CompletionItemKindClass,
			Detail: "semantic type",
		})
	}
	for _, name := range sortedKeys(scopes) {
		if types[name] != 0 {
			continue
		}
		res = append(res, protocol.CompletionItem{
			Label:  name,
			Kind:   protocol.CompletionItemKindModule,
			Detail: "scope type",
		})
	}
	return res
}

func sortedKeys(m map[string]int) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
