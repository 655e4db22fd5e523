package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/format"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns a single edit replacing the whole document by its
// canonical form, or no edits if it is already canonical or does not parse.
func formatEdits(doc *document) []protocol.TextEdit {
	if doc.root == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.root, &buf, encode.EncodeFormat(format.PodFormat)); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}
}
