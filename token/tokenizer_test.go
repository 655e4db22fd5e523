package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type  TokenType
	Text  string
	Lang  string
	Int   int32
	Float float32
	Bool  bool
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		t := &toks[i]
		res[i] = tokSummary{Type: t.Type, Text: t.Text, Lang: t.Lang, Int: t.Int, Float: t.Float, Bool: t.Bool}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []tokSummary
	}{
		{
			in: `int port = 80;`,
			want: []tokSummary{
				{Type: TIdentifier, Text: "int"},
				{Type: TIdentifier, Text: "port"},
				{Type: TEqual},
				{Type: TInteger, Int: 80},
				{Type: TSemicolon},
			},
		},
		{
			in: `group "g 1" { y = -2.5e1; };`,
			want: []tokSummary{
				{Type: TIdentifier, Text: "group"},
				{Type: TString, Text: "g 1"},
				{Type: TLCurl},
				{Type: TIdentifier, Text: "y"},
				{Type: TEqual},
				{Type: TFloat, Float: -25},
				{Type: TSemicolon},
				{Type: TRCurl},
				{Type: TSemicolon},
			},
		},
		{
			in: "a.b = true; # comment\n// another\nc = false;",
			want: []tokSummary{
				{Type: TIdentifier, Text: "a"},
				{Type: TPeriod},
				{Type: TIdentifier, Text: "b"},
				{Type: TEqual},
				{Type: TBool, Text: "true", Bool: true},
				{Type: TSemicolon},
				{Type: TIdentifier, Text: "c"},
				{Type: TEqual},
				{Type: TBool, Text: "false"},
				{Type: TSemicolon},
			},
		},
		{
			in: `s = "a\"b\\c\n";`,
			want: []tokSummary{
				{Type: TIdentifier, Text: "s"},
				{Type: TEqual},
				{Type: TString, Text: `a"b\\c\n`},
				{Type: TSemicolon},
			},
		},
		{
			in: `x = <sh>echo "<b>"</sh>[]`,
			want: []tokSummary{
				{Type: TIdentifier, Text: "x"},
				{Type: TEqual},
				{Type: TEmbed, Text: `echo "<b>"`, Lang: "sh"},
				{Type: TLSquare},
				{Type: TRSquare},
			},
		},
		{
			in: `n = +7 -0 0.5 _u8;`,
			want: []tokSummary{
				{Type: TIdentifier, Text: "n"},
				{Type: TEqual},
				{Type: TInteger, Int: 7},
				{Type: TInteger},
				{Type: TFloat, Float: 0.5},
				{Type: TIdentifier, Text: "_u8"},
				{Type: TSemicolon},
			},
		},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, summarize(toks)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		is   error
		line int
		col  int
	}{
		{`x = "abc`, ErrUnterminated, 0, 4},
		{"x = <py>print()\n", ErrUnterminated, 0, 4},
		{"x = <py>a</sh>", ErrUnterminated, 0, 4},
		{`x = <>a</>`, ErrMalformedEmbed, 0, 4},
		{"\n  x = @", ErrIllegalChar, 1, 6},
		{`x = 4294967296;`, ErrNumberRange, 0, 4},
		{`x = 1e39;`, ErrNumberRange, 0, 4},
		{`x = 12ab;`, ErrNumber, 0, 4},
		{`x = 007;`, ErrNumberLeadingZero, 0, 4},
		{`x = -;`, ErrIllegalChar, 0, 4},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.is) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.is)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: %T is not a *TokenizeErr", tt.in, err)
			continue
		}
		if l, c := te.Pos.LineCol(); l != tt.line || c != tt.col {
			t.Errorf("%q: at %d:%d, want %d:%d", tt.in, l, c, tt.line, tt.col)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tz := NewTokenizer([]byte("a = 1;\n  bb = \"x\ny\";"), TokenSource("f.pod"))
	var toks []Token
	for {
		tok, err := tz.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type == TEOF {
			break
		}
		toks = append(toks, tok)
	}
	bb := toks[4]
	if got := bb.Pos.String(); got != "f.pod:2:3" {
		t.Errorf("bb at %s", got)
	}
	str := toks[6]
	if l, c := str.LastLineCol(); l != 2 || c != 1 {
		t.Errorf("string ends at %d:%d", l, c)
	}
	if tok, _ := tz.Next(); tok.Type != TEOF {
		t.Error("no repeated TEOF")
	}
}

func TestIsIdentifier(t *testing.T) {
	for s, want := range map[string]bool{
		"abc":     true,
		"_a1":     true,
		"a.b":     true,
		"a..b":    false,
		"1a":      false,
		"":        false,
		"a b":     false,
		"true":    false,
		"x.false": false,
		"héllo":   true,
	} {
		if got := IsIdentifier(s); got != want {
			t.Errorf("IsIdentifier(%q) = %t", s, got)
		}
	}
}

func TestQuote(t *testing.T) {
	if got, want := Quote(`say "hi"`), `"say \"hi\""`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ls", "ls\n"},
		{"  a\n    b\n  c\n", "a\n  b\nc\n"},
		{"\n\t\tx\n\t\ty\n\t", "\nx\ny\n\t\n"},
		{"  a\n\n  b", "a\n\nb\n"},
	}
	for _, tt := range tests {
		if got := Dedent(tt.in); got != tt.want {
			t.Errorf("Dedent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
