package parse

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc records the newline offsets seen so far in one input so that byte
// offsets can be reported as line/column pairs. The cursor feeds it as it
// advances; offsets past the cursor have not been line-indexed yet.
type PosDoc struct {
	d string
	n []int
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
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

func (p Pos) String() string {
	sample := p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	q := strconv.Quote(sample)
	q = q[1 : len(q)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", q, p.I, p.Line(), p.Col())
}
