package parse

import "unicode/utf8"

// cursor is a single-character-lookahead reader over the input. It is the
// only mutable state shared by the grammar productions. Input is treated as
// a sequence of characters, not bytes; multi-byte runes advance by their
// encoded width.
type cursor struct {
	doc *PosDoc
	off int
}

func newCursor(d string) *cursor {
	return &cursor{
		doc: &PosDoc{d: d},
	}
}

// peek returns the next character without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.off >= len(c.doc.d) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.doc.d[c.off:])
	return r, true
}

// next consumes and returns the next character.
func (c *cursor) next() (rune, bool) {
	if c.off >= len(c.doc.d) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(c.doc.d[c.off:])
	if r == '\n' {
		c.doc.nl(c.off)
	}
	c.off += sz
	return r, true
}

func (c *cursor) pos() *Pos {
	return c.doc.Pos(c.off)
}
