package gomap

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/pod-format/encode"
	"github.com/signadot/pod-format/format"
	"github.com/signadot/pod-format/parse"
)

type server struct {
	Host    string   `yaml:"host"`
	Port    int      `yaml:"port"`
	Ratio   float64  `yaml:"ratio"`
	Debug   bool     `yaml:"debug"`
	Mode    string   `yaml:"mode"`
	Script  string   `yaml:"script"`
	Tags    []string `yaml:"tags"`
	Limits  limits   `yaml:"limits"`
	Missing string   `yaml:"missing"`
}

type limits struct {
	CPU int `yaml:"cpu"`
	Mem int `yaml:"mem"`
}

const serverDoc = `
host = "example.com";
int port = 8080;
ratio = 2.5;
debug = true;
mode = fast;
script = <sh>echo hi</sh>;
tags = { "a"; "b"; };
limits = { cpu = 2; mem = 512; cpu = 9; };
`

func TestLoad(t *testing.T) {
	var got server
	if err := Load([]byte(serverDoc), &got); err != nil {
		t.Fatal(err)
	}
	want := server{
		Host:   "example.com",
		Port:   8080,
		Ratio:  2.5,
		Debug:  true,
		Mode:   "fast",
		Script: "echo hi\n",
		Tags:   []string{"a", "b"},
		Limits: limits{CPU: 2, Mem: 512},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Load([]byte("x = ;"), &got); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestPlainKeys(t *testing.T) {
	y, err := parse.ParseText(`group { x = 1; }; "anon"; named = 0.1;`, "t.pod")
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := WritePlain(buf, y, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v in %s", err, buf.String())
	}
	want := map[string]any{
		"group": map[string]any{"x": 1.0},
		"named": 0.1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToIR(t *testing.T) {
	in := server{
		Host:   "h",
		Port:   80,
		Ratio:  0.5,
		Mode:   "m",
		Tags:   []string{"x"},
		Limits: limits{CPU: -1, Mem: 3},
	}
	y, err := ToIR(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `host = "h";
port = 80;
ratio = 0.5;
debug = false;
mode = "m";
script = "";
tags = {
    "x";
};
limits = {
    cpu = -1;
    mem = 3;
};
missing = "";
`
	if diff := cmp.Diff(want, encode.MustString(y)+"\n"); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var back server
	if err := FromIR(y, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestToIRErrors(t *testing.T) {
	if _, err := ToIR(map[string]any{"big": int64(1) << 40}); !errors.Is(err, ErrRange) {
		t.Errorf("got %v", err)
	}
	y, err := ToIR(7)
	if err != nil {
		t.Fatal(err)
	}
	if c := y.Value.Block.Nodes; len(c) != 1 || c[0].Value.Int != 7 || c[0].Parent != y {
		t.Errorf("scalar document %s", encode.MustString(y))
	}
	if _, err := ToIR(nil); err != nil {
		t.Fatal(err)
	}
}
