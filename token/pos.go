package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	n      []int
	Source string
}

func NewPosDoc(d []byte, source string) *PosDoc {
	p := &PosDoc{Source: source}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0-based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p *Pos) Source() string {
	if p.D == nil {
		return ""
	}
	return p.D.Source
}

// String renders p as source:line:col with 1-based line and column.
func (p Pos) String() string {
	l, c := p.LineCol()
	if src := p.Source(); src != "" {
		return fmt.Sprintf("%s:%d:%d", src, l+1, c+1)
	}
	return fmt.Sprintf("%d:%d", l+1, c+1)
}
