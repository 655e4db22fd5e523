package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TIdentifier
	TString
	TFloat
	TInteger
	TBool
	TEmbed
	TEqual
	TPeriod
	TSemicolon
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:        "TEOF",
		TIdentifier: "TIdentifier",
		TString:     "TString",
		TFloat:      "TFloat",
		TInteger:    "TInteger",
		TBool:       "TBool",
		TEmbed:      "TEmbed",
		TEqual:      "TEqual",
		TPeriod:     "TPeriod",
		TSemicolon:  "TSemicolon",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
		TLSquare:    "TLSquare",
		TRSquare:    "TRSquare",
	}[t]
}

// IsWord reports whether tokens of type t may name a node.
func (t TokenType) IsWord() bool {
	return t == TIdentifier || t == TString
}

// IsLiteral reports whether t carries a scalar value that is not a word.
func (t TokenType) IsLiteral() bool {
	switch t {
	case TFloat, TInteger, TBool, TEmbed:
		return true
	default:
		return false
	}
}

type Token struct {
	Type TokenType
	Pos  *Pos
	// End is the offset just past the last byte of the token.
	End   *Pos
	Bytes []byte

	// Text is the decoded payload of identifiers, strings and embeds.
	Text  string
	Lang  string
	Int   int32
	Float float32
	Bool  bool
}

// Describe renders t for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TString:
		return fmt.Sprintf("string %q", t.Text)
	case TEmbed:
		return fmt.Sprintf("<%s> embed", t.Lang)
	case TIdentifier:
		return fmt.Sprintf("identifier %q", t.Text)
	default:
		return fmt.Sprintf("%q", string(t.Bytes))
	}
}

// LastLineCol returns the 0-based line and column of the last byte of t.
func (t *Token) LastLineCol() (int, int) {
	if t.End == nil || t.End.I == t.Pos.I {
		return t.Pos.LineCol()
	}
	last := *t.End
	last.I--
	return last.LineCol()
}
