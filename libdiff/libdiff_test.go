package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pod-format/ir"
)

func TestLines(t *testing.T) {
	from := "a = 1;\nb = 2;\nc = 3;\n"
	to := "a = 1;\nc = 3;\nd = 4;\n"
	got := Lines(from, to)
	want := []Line{
		{Op: Equal, Text: "a = 1;"},
		{Op: Delete, Text: "b = 2;"},
		{Op: Equal, Text: "c = 3;"},
		{Op: Insert, Text: "d = 4;"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("Changed false")
	}
	if Changed(Lines(from, from)) {
		t.Error("identical texts changed")
	}
	buf := bytes.NewBuffer(nil)
	if err := Render(buf, got, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("  a = 1;\n- b = 2;\n  c = 3;\n+ d = 4;\n", buf.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func block(t *testing.T, name string, nodes ...*ir.Node) *ir.Node {
	t.Helper()
	y, err := ir.NewNode(name, "", ir.FromBlock(nodes, ""))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestNodes(t *testing.T) {
	from := block(t, "", &ir.Node{Name: "x", Value: ir.FromInt(1)})
	to := block(t, "", &ir.Node{Name: "x", Value: ir.FromInt(2)})
	lines, err := Nodes(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{{Op: Delete, Text: "x = 1;"}, {Op: Insert, Text: "x = 2;"}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTree(t *testing.T) {
	from := block(t, "",
		block(t, "g", &ir.Node{Name: "x", Value: ir.FromInt(1)}, &ir.Node{Name: "y", Value: ir.FromInt(2)}),
		&ir.Node{Name: "gone", Value: ir.FromBool(true)},
	)
	to := block(t, "",
		block(t, "g", &ir.Node{Name: "x", Value: ir.FromInt(1)}, &ir.Node{Name: "y", Value: ir.FromInt(3)}),
		&ir.Node{Name: "new", Value: ir.FromString("s")},
	)
	changes := Tree(from, to)
	type summary struct {
		Path string
		Op   Op
	}
	var got []summary
	for _, c := range changes {
		got = append(got, summary{c.Path, c.Op})
	}
	want := []summary{
		{"g.y", Delete},
		{"g.y", Insert},
		{"gone", Delete},
		{"new", Insert},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(Tree(from, from.Clone())) != 0 {
		t.Error("clone differs")
	}
	buf := bytes.NewBuffer(nil)
	if err := RenderChanges(buf, changes[:2], false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("- g.y: y = 2;\n+ g.y: y = 3;\n", buf.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}
