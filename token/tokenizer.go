package token

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

type tokenOpts struct {
	source string
}

type TokenOpt func(*tokenOpts)

// TokenSource sets the source label reported in positions.
func TokenSource(s string) TokenOpt {
	return func(o *tokenOpts) { o.source = s }
}

// Tokenizer scans a Pod document one token at a time.
type Tokenizer struct {
	doc    []byte
	posDoc *PosDoc
	i      int
}

func NewTokenizer(src []byte, opts ...TokenOpt) *Tokenizer {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	return &Tokenizer{
		doc:    src,
		posDoc: NewPosDoc(src, o.source),
	}
}

func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// Tokenize appends all tokens of src, excluding the final TEOF, to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	tokenizer := NewTokenizer(src, opts...)
	for {
		tok, err := tokenizer.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TEOF {
			return dst, nil
		}
		dst = append(dst, tok)
	}
}

// Next returns the next token.  At end of input it returns a TEOF token, and
// keeps doing so on subsequent calls.
func (t *Tokenizer) Next() (Token, error) {
	if err := t.skip(); err != nil {
		return Token{}, err
	}
	d := t.doc
	n := len(d)
	i := t.i
	if i >= n {
		return t.mk(TEOF, n, n), nil
	}
	switch c := d[i]; c {
	case '=':
		return t.punct(TEqual), nil
	case '.':
		return t.punct(TPeriod), nil
	case ';':
		return t.punct(TSemicolon), nil
	case '{':
		return t.punct(TLCurl), nil
	case '}':
		return t.punct(TRCurl), nil
	case '[':
		return t.punct(TLSquare), nil
	case ']':
		return t.punct(TRSquare), nil
	case '"':
		return t.quoted()
	case '<':
		return t.embed()
	case '-', '+':
		if i+1 < n && asciiDigit(d[i+1]) {
			return t.number()
		}
		return Token{}, t.illegal(i)
	default:
		if asciiDigit(c) {
			return t.number()
		}
		if identLen(d[i:]) > 0 {
			return t.identifier(), nil
		}
		return Token{}, t.illegal(i)
	}
}

func (t *Tokenizer) mk(tt TokenType, start, end int) Token {
	return Token{
		Type:  tt,
		Pos:   t.posDoc.Pos(start),
		End:   t.posDoc.Pos(end),
		Bytes: t.doc[start:end],
	}
}

func (t *Tokenizer) punct(tt TokenType) Token {
	tok := t.mk(tt, t.i, t.i+1)
	t.i++
	return tok
}

func (t *Tokenizer) illegal(i int) error {
	r, _ := utf8.DecodeRune(t.doc[i:])
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrIllegalChar, r), t.posDoc.Pos(i))
}

// skip advances past whitespace and comments.
func (t *Tokenizer) skip() error {
	d := t.doc
	n := len(d)
	for t.i < n {
		switch d[t.i] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			t.i++
		case '#':
			t.skipLine()
		case '/':
			if t.i+1 < n && d[t.i+1] == '/' {
				t.skipLine()
				continue
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

func (t *Tokenizer) skipLine() {
	nl := bytes.IndexByte(t.doc[t.i:], '\n')
	if nl < 0 {
		t.i = len(t.doc)
		return
	}
	t.i += nl + 1
}

func (t *Tokenizer) identifier() Token {
	start := t.i
	t.i += identLen(t.doc[start:])
	tok := t.mk(TIdentifier, start, t.i)
	tok.Text = string(tok.Bytes)
	switch tok.Text {
	case "true", "false":
		tok.Type = TBool
		tok.Bool = tok.Text == "true"
	}
	return tok
}

func (t *Tokenizer) number() (Token, error) {
	d := t.doc
	start := t.i
	i := start
	if d[i] == '-' || d[i] == '+' {
		i++
	}
	sz, isFloat, err := number(d[i:])
	if err != nil {
		return Token{}, NewTokenizeErr(err, t.posDoc.Pos(start))
	}
	end := i + sz
	if end < len(d) && identLen(d[end:]) > 0 {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: %q", ErrNumber, d[start:end+1]), t.posDoc.Pos(start))
	}
	t.i = end
	text := string(d[start:end])
	if isFloat {
		tok := t.mk(TFloat, start, end)
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Token{}, t.numErr(err, text, start)
		}
		tok.Float = float32(f)
		return tok, nil
	}
	tok := t.mk(TInteger, start, end)
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Token{}, t.numErr(err, text, start)
	}
	tok.Int = int32(v)
	return tok, nil
}

func (t *Tokenizer) numErr(err error, text string, start int) error {
	if errors.Is(err, strconv.ErrRange) {
		return NewTokenizeErr(fmt.Errorf("%w: %s", ErrNumberRange, text), t.posDoc.Pos(start))
	}
	return NewTokenizeErr(fmt.Errorf("%w: %s", ErrNumber, text), t.posDoc.Pos(start))
}

func (t *Tokenizer) quoted() (Token, error) {
	d := t.doc
	start := t.i
	for j := start + 1; j < len(d); j++ {
		switch d[j] {
		case '\\':
			if j+1 < len(d) && d[j+1] == '"' {
				j++
			}
		case '"':
			t.i = j + 1
			tok := t.mk(TString, start, t.i)
			tok.Text = unquote(d[start+1 : j])
			return tok, nil
		}
	}
	return Token{}, UnterminatedErr("string", t.posDoc.Pos(start))
}

// embed scans <lang>text</lang>.
func (t *Tokenizer) embed() (Token, error) {
	d := t.doc
	start := t.i
	langStart := start + 1
	ln := identLen(d[langStart:])
	if ln == 0 || langStart+ln >= len(d) || d[langStart+ln] != '>' {
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: expected <language>", ErrMalformedEmbed), t.posDoc.Pos(start))
	}
	lang := string(d[langStart : langStart+ln])
	textStart := langStart + ln + 1
	closing := []byte("</" + lang + ">")
	idx := bytes.Index(d[textStart:], closing)
	if idx < 0 {
		return Token{}, UnterminatedErr(fmt.Sprintf("<%s> embed", lang), t.posDoc.Pos(start))
	}
	t.i = textStart + idx + len(closing)
	tok := t.mk(TEmbed, start, t.i)
	tok.Lang = lang
	tok.Text = string(d[textStart : textStart+idx])
	return tok, nil
}
