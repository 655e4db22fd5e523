package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/parse"
	"github.com/signadot/pod-format/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	root      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error

	// last is the most recent successfully parsed tree.
	last *ir.Node
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := parseDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if doc.root == nil {
		if prev := ds.docs[uri]; prev != nil {
			doc.last = prev.last
		}
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func parseDocument(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	root, err := parse.Parse([]byte(content), parse.ParseSource(uri), parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		root:      root,
		positions: positions,
		err:       err,
		last:      root,
	}
	if err != nil {
		doc.positions = nil
	}
	return doc
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	msg := doc.err.Error()
	line, col := 0, 0
	var pe *parse.Error
	if errors.As(doc.err, &pe) {
		line, col = pe.LineCol()
		msg = pe.Message()
	}
	start := lspPosition(doc.content, line, col)
	end := start
	end.Character++
	res = append(res, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "pod",
		Message:  msg,
	})
	return res
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// DidChange expects full document content, as announced at initialization.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	content := params.ContentChanges[n-1].Text
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

// lineText returns the 0-based line ln of content without its newline.
func lineText(content string, ln int) string {
	for i := 0; i < ln; i++ {
		j := strings.IndexByte(content, '\n')
		if j < 0 {
			return ""
		}
		content = content[j+1:]
	}
	if j := strings.IndexByte(content, '\n'); j >= 0 {
		return content[:j]
	}
	return content
}

// lspPosition converts a 0-based line and byte column to a protocol
// position counted in UTF-16 code units.
func lspPosition(content string, line, col int) protocol.Position {
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(prefix(lineText(content, line), col))),
	}
}

// byteColumn converts a UTF-16 column on line to a byte column.
func byteColumn(line string, char int) int {
	n := 0
	for i, r := range line {
		if n >= char {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(line)
}

func prefix(s string, n int) string {
	if n > len(s) {
		return s
	}
	return s[:n]
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		s = s[sz:]
		if r == utf8.RuneError && sz == 1 {
			n++
			continue
		}
		n += utf16.RuneLen(r)
	}
	return n
}
