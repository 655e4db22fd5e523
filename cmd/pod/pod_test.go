package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/parse"
)

func TestCanonical(t *testing.T) {
	cfg := &MainConfig{}
	got, err := canonical(cfg, "t.pod", []byte("int   x=1 ;g{ y = \"a\";};"))
	if err != nil {
		t.Fatal(err)
	}
	want := "int x = 1;\ng {\n    y = \"a\";\n};\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	again, err := canonical(cfg, "t.pod", got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, again) {
		t.Errorf("not stable: %q", again)
	}
	if _, err := canonical(cfg, "t.pod", []byte("x = ;")); err == nil {
		t.Error("no error for bad input")
	}
}

func TestLookup(t *testing.T) {
	root, err := parse.ParseText(`
a = {
    host h1 = "x";
    host h2 = "y";
    b = { c = 3; };
};
port p = 80;
`, "t.pod")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path, typ string
		want      string
	}{
		{"a.b.c", "", "c = 3;"},
		{"a.h2", "", `host h2 = "y";`},
		{"a", "host", `host h1 = "x";`},
		{".", "port", "port p = 80;"},
		{"a.nope", "", ""},
		{"a.nope", "host", ""},
		{"a", "nope", ""},
	}
	for _, tt := range tests {
		res := lookup(root, tt.path, tt.typ)
		got := ""
		if res != nil {
			got = encode.MustString(res)
		}
		if got != tt.want {
			t.Errorf("lookup(%q, %q) = %q, want %q", tt.path, tt.typ, got, tt.want)
		}
	}
}

func TestWriteSep(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	for i, f := range []string{"a.pod", "b.pod"} {
		if err := writeSep(buf, format.PodFormat, f, i); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff("# a.pod\n\n# b.pod\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	if err := writeSep(buf, format.JSONFormat, "a.pod", 1); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("json separator %q", buf.String())
	}
}
