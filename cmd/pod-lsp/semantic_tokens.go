package main

import (
	"context"
	"math"

	"github.com/signadot/pod-format/token"
	"go.lsp.dev/protocol"
)

// token classes, indexes into tokenLegend
const (
	classNone = iota - 1
	classType
	className
	classScope
	classIdent
	classString
	classNumber
	classBool
	classEmbed
	classOperator
)

var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenType,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenNamespace,
	protocol.SemanticTokenEnumMember,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenMacro,
	protocol.SemanticTokenOperator,
}

// scan returns the tokens of content up to the first scanning error.
func scan(content string) []token.Token {
	tz := token.NewTokenizer([]byte(content))
	var res []token.Token
	for {
		tok, err := tz.Next()
		if err != nil || tok.Type == token.TEOF {
			return res
		}
		res = append(res, tok)
	}
}

// classify assigns a class to each token following the statement forms:
// the words before '=' are type and name, words before '{' are type, name
// and scope type, and identifiers after '=' are values or scope types.
func classify(toks []token.Token) []int {
	cls := make([]int, len(toks))
	for i := range cls {
		cls[i] = classNone
	}
	var head [][]int
	inValue := false
	flush := func(term token.TokenType) {
		setHead(toks, cls, head, term)
		head = nil
	}
	for i := 0; i < len(toks); i++ {
		tok := &toks[i]
		switch tok.Type {
		case token.TIdentifier, token.TString:
			word := []int{i}
			if tok.Type == token.TIdentifier {
				for i+2 < len(toks) && toks[i+1].Type == token.TPeriod && toks[i+2].Type == token.TIdentifier {
					cls[i+1] = classOperator
					word = append(word, i+2)
					i += 2
				}
			}
			if !inValue {
				head = append(head, word)
				continue
			}
			c := classString
			if tok.Type == token.TIdentifier {
				c = classIdent
				if i+1 < len(toks) && toks[i+1].Type == token.TLCurl {
					c = classScope
				}
			}
			for _, j := range word {
				cls[j] = c
			}
		case token.TEqual:
			flush(tok.Type)
			inValue = true
			cls[i] = classOperator
		case token.TLCurl, token.TRCurl, token.TSemicolon:
			if !inValue {
				flush(tok.Type)
			}
			inValue = false
			cls[i] = classOperator
		case token.TInteger, token.TFloat, token.TBool, token.TEmbed:
			if !inValue {
				flush(tok.Type)
			}
			cls[i] = literalClass(tok.Type)
		default:
			cls[i] = classOperator
		}
	}
	return cls
}

func literalClass(t token.TokenType) int {
	switch t {
	case token.TBool:
		return classBool
	case token.TEmbed:
		return classEmbed
	default:
		return classNumber
	}
}

// setHead classifies the words of a statement preceding the token type
// term.
func setHead(toks []token.Token, cls []int, head [][]int, term token.TokenType) {
	set := func(word []int, c int) {
		for _, j := range word {
			cls[j] = c
		}
	}
	isIdent := func(word []int) bool {
		return toks[word[0]].Type == token.TIdentifier
	}
	n := len(head)
	switch term {
	case token.TEqual:
		switch n {
		case 1:
			set(head[0], className)
		case 2:
			set(head[0], classType)
			set(head[1], className)
		}
	case token.TLCurl:
		switch n {
		case 1:
			if isIdent(head[0]) {
				set(head[0], classType)
			} else {
				set(head[0], className)
			}
		case 2:
			set(head[0], classType)
			if isIdent(head[1]) {
				set(head[1], classScope)
			} else {
				set(head[1], className)
			}
		case 3:
			set(head[0], classType)
			set(head[1], className)
			set(head[2], classScope)
		}
	case token.TSemicolon, token.TRCurl:
		if n == 0 || n > 2 {
			return
		}
		last := head[n-1]
		if n == 2 {
			set(head[0], classType)
		}
		if isIdent(last) {
			set(last, className)
		} else {
			set(last, classString)
		}
	default:
		switch n {
		case 1:
			set(head[0], classType)
		case 2:
			set(head[0], classType)
			set(head[1], className)
		}
	}
}

// semanticTokens encodes the classified tokens of content whose lines fall
// in [startLine, endLine].  Tokens spanning lines are split per line.
func semanticTokens(content string, startLine, endLine int) []uint32 {
	toks := scan(content)
	cls := classify(toks)
	data := []uint32{}
	prevLine, prevChar := 0, 0
	emit := func(line, col, end int, c int) {
		text := lineText(content, line)
		char := utf16Len(prefix(text, col))
		length := utf16Len(prefix(text, end)) - char
		if length <= 0 || line < startLine || line > endLine {
			return
		}
		dl := line - prevLine
		dc := char
		if dl == 0 {
			dc = char - prevChar
		}
		data = append(data, uint32(dl), uint32(dc), uint32(length), uint32(c), 0)
		prevLine, prevChar = line, char
	}
	for i := range toks {
		if cls[i] == classNone {
			continue
		}
		tok := &toks[i]
		l0, c0 := tok.Pos.LineCol()
		l1, c1 := tok.LastLineCol()
		for l := l0; l <= l1; l++ {
			start, end := 0, len(lineText(content, l))
			if l == l0 {
				start = c0
			}
			if l == l1 {
				end = c1 + 1
			}
			emit(l, start, end, cls[i])
		}
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(doc.content, 0, math.MaxInt),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(doc.content, int(params.Range.Start.Line), int(params.Range.End.Line)),
	}, nil
}
