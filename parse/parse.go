package parse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/token"
)

// Parse parses a Pod document into a root node whose block holds the top
// level statements.  On failure no part of the tree is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		tz:   token.NewTokenizer(d, pOpts.TokenizeOpts()...),
		b:    newBuilder(pOpts),
		opts: pOpts,
	}
	return p.run()
}

// ParseText parses text labelled source.  Empty text yields a nil node and
// no error.
func ParseText(text, source string, opts ...ParseOption) (*ir.Node, error) {
	if text == "" {
		return nil, nil
	}
	return Parse([]byte(text), append([]ParseOption{ParseSource(source)}, opts...)...)
}

// ParseFile parses the file at path, which is also the default source
// label.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return Parse(d, append([]ParseOption{ParseSource(path)}, opts...)...)
}

// ParseReader parses everything read from r.
func ParseReader(r io.Reader, source string, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: source, Err: err}
	}
	return Parse(d, append([]ParseOption{ParseSource(source)}, opts...)...)
}

type word struct {
	tok  token.Token
	text string
}

func (w *word) isIdent() bool {
	return w.tok.Type == token.TIdentifier
}

// statement holds the parts of the statement being read.
type statement struct {
	start *token.Pos
	words []word
	eq    bool
	value *ir.Value
	// ident is an identifier following '=', which is a scope type if a
	// '{' follows and otherwise the value.
	ident *word
	// closed is set once a block value has been closed; only ';' may
	// follow.
	closed bool
}

func (s *statement) empty() bool {
	return s.start == nil
}

type parser struct {
	tz     *token.Tokenizer
	peeked *token.Token
	b      *builder
	opts   *parseOpts
	st     statement
}

func (p *parser) next() (token.Token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.tz.Next()
}

func (p *parser) peek() (*token.Token, error) {
	if p.peeked == nil {
		tok, err := p.tz.Next()
		if err != nil {
			return nil, err
		}
		p.peeked = &tok
	}
	return p.peeked, nil
}

func (p *parser) errAt(pos *token.Pos, err error) error {
	return &Error{Source: p.opts.source, Pos: pos, Err: err}
}

func (p *parser) unexpected(tok *token.Token, expected string) error {
	what := tok.Describe()
	if expected != "" {
		what += ", expected " + expected
	}
	return p.errAt(tok.Pos, token.UnexpectedErr(what, tok.Pos))
}

// wrap converts scanner failures to positioned parse errors.
func (p *parser) wrap(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		pos := te.Pos
		return &Error{Source: p.opts.source, Pos: &pos, Err: te}
	}
	return &Error{Source: p.opts.source, Err: err}
}

func (p *parser) begin(tok *token.Token) {
	if p.st.start == nil {
		p.st.start = tok.Pos
	}
}

func (p *parser) run() (*ir.Node, error) {
	for {
		tok, err := p.next()
		if err != nil {
			return nil, p.wrap(err)
		}
		switch typ := tok.Type; {
		case typ == token.TEOF:
			if !p.st.empty() {
				return nil, p.unexpected(&tok, "';'")
			}
			return p.b.finish(p.tz.PosDoc())
		case typ == token.TSemicolon:
			err = p.semicolon(&tok)
		case typ == token.TLCurl:
			err = p.openBlock(&tok)
		case typ == token.TRCurl:
			err = p.closeBlock(&tok)
		case typ.IsWord():
			err = p.word(&tok)
		case typ == token.TEqual:
			err = p.equal(&tok)
		case typ.IsLiteral():
			err = p.literal(&tok)
		case typ == token.TLSquare, typ == token.TRSquare:
			err = p.errAt(tok.Pos, fmt.Errorf("%w %s", ErrUnsupported, tok.Describe()))
		default:
			err = p.unexpected(&tok, "")
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) word(tok *token.Token) error {
	st := &p.st
	if st.closed || st.value != nil || st.ident != nil {
		return p.unexpected(tok, "';'")
	}
	if !st.eq && len(st.words) == 3 {
		return p.unexpected(tok, "'=', '{' or ';'")
	}
	p.begin(tok)
	w := word{tok: *tok, text: tok.Text}
	if tok.Type == token.TIdentifier {
		if err := p.dotted(&w); err != nil {
			return err
		}
	}
	switch {
	case !st.eq:
		st.words = append(st.words, w)
	case w.isIdent():
		st.ident = &w
	default:
		st.value = ir.FromString(w.text)
	}
	return nil
}

// dotted extends an identifier with any '.' separated identifiers
// following it.
func (p *parser) dotted(w *word) error {
	for {
		nt, err := p.peek()
		if err != nil {
			return p.wrap(err)
		}
		if nt.Type != token.TPeriod {
			return nil
		}
		p.peeked = nil
		seg, err := p.next()
		if err != nil {
			return p.wrap(err)
		}
		if seg.Type != token.TIdentifier {
			return p.unexpected(&seg, "identifier after '.'")
		}
		w.text += "." + seg.Text
	}
}

func (p *parser) equal(tok *token.Token) error {
	st := &p.st
	if st.eq || st.closed || st.value != nil || len(st.words) > 2 {
		return p.unexpected(tok, "';'")
	}
	if len(st.words) == 0 {
		return p.unexpected(tok, "name before '='")
	}
	p.begin(tok)
	st.eq = true
	return nil
}

func (p *parser) literal(tok *token.Token) error {
	st := &p.st
	if st.closed || st.value != nil || st.ident != nil || (!st.eq && len(st.words) > 2) {
		return p.unexpected(tok, "';'")
	}
	p.begin(tok)
	switch tok.Type {
	case token.TInteger:
		st.value = ir.FromInt(tok.Int)
	case token.TFloat:
		st.value = ir.FromFloat(tok.Float)
	case token.TBool:
		st.value = ir.FromBool(tok.Bool)
	case token.TEmbed:
		text := tok.Text
		if !p.opts.noDedent {
			text = token.Dedent(text)
		}
		st.value = ir.FromEmbed(text, tok.Lang)
	}
	return nil
}

func (p *parser) openBlock(tok *token.Token) error {
	st := &p.st
	if st.closed || st.value != nil {
		return p.unexpected(tok, "';'")
	}
	p.begin(tok)
	var typ, name, scope *word
	ws := st.words
	if st.eq {
		typ, name = typeAndName(ws)
		scope = st.ident
	} else {
		switch len(ws) {
		case 1:
			if ws[0].isIdent() {
				typ = &ws[0]
			} else {
				name = &ws[0]
			}
		case 2:
			typ = &ws[0]
			if ws[1].isIdent() {
				scope = &ws[1]
			} else {
				name = &ws[1]
			}
		case 3:
			typ, name, scope = &ws[0], &ws[1], &ws[2]
		}
	}
	if scope != nil && !scope.isIdent() {
		return p.unexpected(&scope.tok, "scope type identifier")
	}
	owner, err := p.node(typ, name)
	if err != nil {
		return err
	}
	scopeType := ""
	if scope != nil {
		scopeType = scope.text
	}
	p.b.push(owner, scopeType, tok.Pos)
	p.st = statement{}
	return nil
}

func (p *parser) closeBlock(tok *token.Token) error {
	if !p.st.empty() {
		return p.unexpected(tok, "';'")
	}
	if p.b.depth() == 0 {
		return p.unexpected(tok, "")
	}
	if _, err := p.b.pop(); err != nil {
		return p.errAt(tok.Pos, err)
	}
	p.st = statement{start: tok.Pos, closed: true}
	return nil
}

func (p *parser) semicolon(tok *token.Token) error {
	st := &p.st
	defer func() { p.st = statement{} }()
	switch {
	case st.empty(), st.closed:
		return nil
	case st.eq && st.value == nil && st.ident == nil:
		return p.unexpected(tok, "value after '='")
	}
	if st.ident != nil {
		st.value = ir.FromIdentifier(st.ident.text)
	}
	ws := st.words
	var typ, name *word
	switch {
	case st.eq:
		typ, name = typeAndName(ws)
	case st.value != nil:
		// a literal without '=': the words are the type and name
		if len(ws) > 0 {
			typ = &ws[0]
		}
		if len(ws) > 1 {
			name = &ws[1]
		}
	default:
		switch len(ws) {
		case 1:
			if ws[0].isIdent() {
				name = &ws[0]
			} else {
				st.value = ir.FromString(ws[0].text)
			}
		case 2:
			typ = &ws[0]
			if ws[1].isIdent() {
				name = &ws[1]
			} else {
				st.value = ir.FromString(ws[1].text)
			}
		default:
			return p.unexpected(&ws[2].tok, "'=' or '{'")
		}
	}
	y, err := p.node(typ, name)
	if err != nil {
		return err
	}
	y.Value = st.value
	p.b.add(y)
	return nil
}

// typeAndName interprets the words before '='.
func typeAndName(ws []word) (typ, name *word) {
	switch len(ws) {
	case 1:
		return nil, &ws[0]
	case 2:
		return &ws[0], &ws[1]
	}
	return nil, nil
}

func (p *parser) node(typ, name *word) (*ir.Node, error) {
	y := &ir.Node{}
	if typ != nil {
		if !typ.isIdent() {
			return nil, p.unexpected(&typ.tok, "semantic type identifier")
		}
		y.SemanticType = typ.text
	}
	if name != nil {
		y.Name = name.text
	}
	y.SetSource(p.opts.source, p.st.start.Line()+1)
	if p.opts.positions != nil {
		p.opts.positions[y] = p.st.start
	}
	return y, nil
}
