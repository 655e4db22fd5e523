package debug

import (
	"strings"
	"testing"

	"github.com/signadot/pod-format/ir"
)

func TestDump(t *testing.T) {
	x := &ir.Node{Name: "x", Value: ir.FromInt(1), SourceFile: "t.pod", SourceLine: 2}
	run := &ir.Node{Name: "run", Value: ir.FromEmbed("ls\n", "sh"), SourceFile: "t.pod", SourceLine: 3}
	g, err := ir.NewNode("g1", "group", ir.FromBlock([]*ir.Node{x, run}, ""))
	if err != nil {
		t.Fatal(err)
	}
	g.SetSource("t.pod", 1)
	var b strings.Builder
	if err := Dump(&b, g); err != nil {
		t.Fatal(err)
	}
	want := "Node('g1', type='group', value=Value(<BLOCK>, BLOCK), parent='NULL'\n" +
		"\tNode('x', value=Value(1, INT), parent='g1' [defined in 't.pod', line 2])\n" +
		"\tNode('run', value=Value('ls\n', EMBED), parent='g1', lang='sh' [defined in 't.pod', line 3])\n" +
		" [defined in 't.pod', line 1])\n"
	if got := b.String(); got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
}

func TestDumpUndefined(t *testing.T) {
	var b strings.Builder
	if err := Dump(&b, &ir.Node{Name: "n"}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "Node('n', value=NULL, parent='NULL' [defined in '', line 0])\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
