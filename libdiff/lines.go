package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/pod-format/ir"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines computes a line diff turning from into to.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			res = append(res, Line{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

// Nodes diffs the canonical Pod text of two trees.
func Nodes(from, to *ir.Node) ([]Line, error) {
	fromText, err := canonical(from)
	if err != nil {
		return nil, err
	}
	toText, err := canonical(to)
	if err != nil {
		return nil, err
	}
	return Lines(fromText, toText), nil
}

// Changed reports whether lines contain any insertion or deletion.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

func canonical(y *ir.Node) (string, error) {
	if y == nil {
		return "", nil
	}
	var b strings.Builder
	if err := y.Write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// mapLinesTo assigns each distinct line a rune, private use runes first,
// so that the rune diff of the documents is their line diff.
func mapLinesTo(m map[string]rune, im map[rune]string, text string) []rune {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	res := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(0xE000 + len(m))
			m[ln] = r
			im[r] = ln
		}
		res[i] = r
	}
	return res
}
