package parse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pod-format/ir"
	"github.com/signadot/pod-format/libdiff"
	"github.com/signadot/pod-format/token"
)

func canonical(t *testing.T, y *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := y.Write(buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestNestedBlock(t *testing.T) {
	root, err := Parse([]byte(`group "g1" { x = 1; y = 2.5; };`))
	if err != nil {
		t.Fatal(err)
	}
	kids, err := root.Children()
	if err != nil {
		t.Fatal(err)
	}
	if len(kids) != 1 {
		t.Fatalf("got %d top level nodes", len(kids))
	}
	g := kids[0]
	if g.Name != "g1" || g.SemanticType != "group" || !g.IsBlock() {
		t.Fatalf("unexpected node %s of type %s", g.Repr(), g.ValueTypeName())
	}
	if g.Parent != root || root.Parent != nil {
		t.Error("parents not set")
	}
	x, y := g.ChildByName("x"), g.ChildByName("y")
	if x == nil || y == nil {
		t.Fatal("missing children")
	}
	if i, err := x.AsInt(); err != nil || i != 1 || !x.IsInt() {
		t.Errorf("x = %d, %v", i, err)
	}
	if f, err := y.AsFloat(); err != nil || f != 2.5 || !y.IsFloat() {
		t.Errorf("y = %g, %v", f, err)
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"assign", `foo = 1;`, "foo = 1;\n"},
		{"name only", `flag;`, "flag;\n"},
		{"anonymous string", `"hi";`, "\"hi\";\n"},
		{"type and name", `int port;`, "int port;\n"},
		{"type and string", `path "/tmp";`, "path \"/tmp\";\n"},
		{"typed assign", `int port = 80;`, "int port = 80;\n"},
		{"typed literal", `count 3;`, "count 3;\n"},
		{"typed named literal", `float ratio 1.5;`, "float ratio = 1.5;\n"},
		{"identifier value", `mode = fast;`, "mode = fast;\n"},
		{"dotted name", `a.b.c = 1;`, "a.b.c = 1;\n"},
		{"bool", `on = true; off = false;`, "on = true;\noff = false;\n"},
		{"negative", `n = -3; f = -0.5;`, "n = -3;\nf = -0.5;\n"},
		{"float forced point", `f = 1.0; e = 1e3;`, "f = 1.0;\ne = 1000.0;\n"},
		{"escaped quote", `s = "say \"hi\"";`, "s = \"say \\\"hi\\\"\";\n"},
		{"backslashes", `path = "C:\dir\file";`, "path = \"C:\\dir\\file\";\n"},
		{"backslash before quote", `q = "a\\"b";`, "q = \"a\\\\\"b\";\n"},
		{"quoted name", `"two words" = 2;`, "\"two words\" = 2;\n"},
		{"embed", `run = <sh>ls</sh>;`, "run = <sh>ls\n</sh>;\n"},
		{"empty statements", `;; x = 1;;`, "x = 1;\n"},
		{"comments", "# c\nx = 1; // d\n", "x = 1;\n"},
		{"typed block", `group "g1" { x = 1; };`, "group g1 = {\n    x = 1;\n};\n"},
		{"anonymous typed block", `group { };`, "group {\n};\n"},
		{"scoped assign", `g = shot { f = 1; };`, "g = shot {\n    f = 1;\n};\n"},
		{"type and scope", `group sc { };`, "group sc {\n};\n"},
		{"type name scope", `group "g1" shot { };`, "group g1 = shot {\n};\n"},
		{"nested", `a = { b = { c = 1; }; };`, "a = {\n    b = {\n        c = 1;\n    };\n};\n"},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, canonical(t, root)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`foo = 1;`,
		`group "g1" { x = 1; y = 2.5; };`,
		`scene main = shot {
    int frames = 24;
    float fps 23.976;
    string title = "a \"quoted\" title";
    camera = persp;
    enabled = false;
    script = <python>
        for i in range(3):
            print(i)
    </python>;
    group lights { key = 1.0e+10; fill = -1.5e-05; };
};`,
		`a.b = { "c d" = 1; e; };`,
		`path = "C:\dir\file";`,
		`re = "\d+\.\d* \\"x\\"";`,
	}
	for _, doc := range docs {
		first, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("parse %q: %v", doc, err)
		}
		text := canonical(t, first)
		second, err := Parse([]byte(text))
		if err != nil {
			t.Fatalf("reparse %q: %v", text, err)
		}
		if !ir.Equal(first, second) {
			t.Errorf("round trip changed tree:\n%s", lineDiff(t, first, second))
		}
		if diff := cmp.Diff(text, canonical(t, second)); diff != "" {
			t.Errorf("canonical form not stable (-first +second):\n%s", diff)
		}
	}
}

func lineDiff(t *testing.T, a, b *ir.Node) string {
	t.Helper()
	lines, err := libdiff.Nodes(a, b)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := libdiff.Render(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEmbedDedent(t *testing.T) {
	in := "code = <py>\n  if x:\n    y()\n  z()\n</py>;"
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got, err := root.ChildByName("code").AsEmbed()
	if err != nil {
		t.Fatal(err)
	}
	if want := "\nif x:\n  y()\nz()\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	root, err = Parse([]byte(in), NoDedent())
	if err != nil {
		t.Fatal(err)
	}
	got, _ = root.ChildByName("code").AsEmbed()
	if want := "\n  if x:\n    y()\n  z()\n"; got != want {
		t.Errorf("NoDedent: got %q, want %q", got, want)
	}
	lang, _ := root.ChildByName("code").EmbedLanguage()
	if lang != "py" {
		t.Errorf("lang %q", lang)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		is   error
		line int
		col  int
	}{
		{"missing value", `x = ;`, ErrParse, 0, 4},
		{"missing semicolon", `x = 1`, ErrParse, 0, 5},
		{"unclosed block", "g {\n x = 1;\n", token.ErrUnterminated, 0, 2},
		{"stray close", `x = 1; }`, ErrParse, 0, 7},
		{"brackets", `x = [1];`, ErrUnsupported, 0, 4},
		{"unterminated string", "x = \"abc", token.ErrUnterminated, 0, 4},
		{"unterminated embed", "x = <sh>ls", token.ErrUnterminated, 0, 4},
		{"two values", `x = 1 2;`, ErrParse, 0, 6},
		{"too many words", `a b c d;`, ErrParse, 0, 6},
		{"three words", `a b c;`, ErrParse, 0, 4},
		{"int range", `x = 99999999999;`, token.ErrNumberRange, 0, 4},
		{"illegal char", "x = 1;\ny = @;", token.ErrIllegalChar, 1, 4},
		{"string type", `"t" x = 1;`, ErrParse, 0, 0},
		{"missing semicolon after block", "g { x = 1; }\n", ErrParse, 1, 0},
		{"dangling period", `a. = 1;`, ErrParse, 0, 3},
		{"value without name", `= fast;`, ErrParse, 0, 0},
		{"block without name", "x = 1;\n= shot { f = 1; };", ErrParse, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.in), ParseSource("t.pod"))
			if err == nil {
				t.Fatalf("expected error, got tree:\n%s", canonical(t, root))
			}
			if root != nil {
				t.Error("partial tree returned")
			}
			if !errors.Is(err, tt.is) || !errors.Is(err, ErrParse) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
			if ir.KindOf(err) != ir.ParseErrorKind {
				t.Errorf("kind %s", ir.KindOf(err))
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("not a *Error: %T", err)
			}
			line, col := pe.LineCol()
			if line != tt.line || col != tt.col {
				t.Errorf("position %d:%d, want %d:%d (%v)", line, col, tt.line, tt.col, err)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse([]byte("x = ;"), ParseSource("t.pod"))
	want := `t.pod:1:5: parse error: unexpected ";", expected value after '='`
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %s", err, want)
	}
}

func TestParseText(t *testing.T) {
	root, err := ParseText("", "buf")
	if root != nil || err != nil {
		t.Errorf("empty text: %v, %v", root, err)
	}
	root, err = ParseText("x = 1;\n\ny = 2;", "buf")
	if err != nil {
		t.Fatal(err)
	}
	y := root.ChildByName("y")
	if y.SourceFile != "buf" || y.SourceLine != 3 {
		t.Errorf("source %s:%d", y.SourceFile, y.SourceLine)
	}
	if root.SourceLine != 0 {
		t.Errorf("root line %d", root.SourceLine)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.pod")
	if err := os.WriteFile(path, []byte("int port = 80;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	port := root.ChildByName("port")
	if port == nil || port.SourceFile != path || port.SourceLine != 1 {
		t.Fatalf("unexpected %s", port.Repr())
	}

	empty := filepath.Join(t.TempDir(), "empty.pod")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	root, err = ParseFile(empty)
	if err != nil || root == nil {
		t.Fatalf("empty file: %v, %v", root, err)
	}
	if kids, _ := root.Children(); len(kids) != 0 {
		t.Errorf("got %d children", len(kids))
	}

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.pod"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
	if ir.KindOf(err) != ir.IOErrorKind {
		t.Errorf("kind %s", ir.KindOf(err))
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	root, err := Parse([]byte("a = 1;\ng {\n  b = 2;\n};"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	b := root.Lookup("g.b")
	if b == nil {
		t.Fatal("missing g.b")
	}
	p, ok := pos[b]
	if !ok {
		t.Fatal("no position for b")
	}
	if l, c := p.LineCol(); l != 2 || c != 2 {
		t.Errorf("b at %d:%d", l, c)
	}
	if _, ok := pos[root]; !ok {
		t.Error("no position for root")
	}
}

func TestParseEnviron(t *testing.T) {
	env := []string{"PORT=8080", "RATIO=1.5", "NAME=pod", "EMPTY=", "NOEQ", "EXPR=a=b"}
	root, err := ParseEnviron(env, true)
	if err != nil {
		t.Fatal(err)
	}
	if root.SourceFile != EnvironSource || root.SourceLine != 0 {
		t.Errorf("root source %s:%d", root.SourceFile, root.SourceLine)
	}
	port := root.ChildByName("PORT")
	if !port.IsInt() {
		t.Fatalf("PORT is %s", port.ValueTypeName())
	}
	if i, _ := port.AsInt(); i != 8080 {
		t.Errorf("PORT = %d", i)
	}
	if !root.ChildByName("RATIO").IsFloat() {
		t.Error("RATIO not a float")
	}
	for name, want := range map[string]string{"NAME": "pod", "EMPTY": "", "NOEQ": "", "EXPR": "a=b"} {
		y := root.ChildByName(name)
		if y == nil || !y.IsString() {
			t.Errorf("%s missing or not a string", name)
			continue
		}
		if s, _ := y.AsString(); s != want {
			t.Errorf("%s = %q, want %q", name, s, want)
		}
	}

	root, err = ParseEnviron(env, false)
	if err != nil {
		t.Fatal(err)
	}
	if !root.ChildByName("PORT").IsString() {
		t.Error("PORT inferred without inference")
	}
}
