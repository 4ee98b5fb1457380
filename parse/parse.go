package parse

import (
	"errors"
	"strings"

	"github.com/gon-format/gon/ir"
)

// Parse parses a complete GON document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

// ParseString is Parse on a string.
//
// The top level of a document may be an explicit value ({...} or [...]), an
// implicit object (bare key/value pairs, the common case), or a single bare
// value. The last two cannot be told apart without parsing: the input is
// first attempted as an object, and if no key/value pair can even start the
// parse restarts from a fresh cursor and reads one value instead.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	p := newParser(s, pOpts)
	p.skipSpace()
	var (
		node *ir.Node
		err  error
	)
	if r, ok := p.c.peek(); ok && (r == '{' || r == '[') {
		node, err = p.parseVal()
	} else {
		node, err = p.parseObj()
		if errors.Is(err, ErrValueExpected) {
			p = newParser(s, pOpts)
			p.skipSpace()
			node, err = p.parseVal()
		}
	}
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if _, ok := p.c.peek(); ok {
		return nil, posErr(ErrEOFExpected, p.c.pos())
	}
	return node, nil
}

type parser struct {
	c    *cursor
	opts *parseOpts
}

func newParser(d string, opts *parseOpts) *parser {
	return &parser{
		c:    newCursor(d),
		opts: opts,
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isStructural(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}

// skipSpace consumes whitespace and, at this token boundary, any number of
// '#' line comments. A '#' reached while a bare token is being read is not
// a boundary and stays part of the token; see parseString.
func (p *parser) skipSpace() {
	for {
		r, ok := p.c.peek()
		if !ok {
			return
		}
		if isSpace(r) {
			p.c.next()
			continue
		}
		if r == '#' && p.opts.comments {
			for {
				r, ok := p.c.next()
				if !ok || r == '\n' {
					break
				}
			}
			continue
		}
		return
	}
}

// skipSpaceAndToken skips whitespace, then an optional occurrence of tok,
// then whitespace again, reporting whether tok was present. The ':' after a
// key and the ',' between entries go through here, which is what makes
// those separators optional.
func (p *parser) skipSpaceAndToken(tok rune) bool {
	p.skipSpace()
	r, ok := p.c.peek()
	skip := ok && r == tok
	if skip {
		p.c.next()
	}
	p.skipSpace()
	return skip
}

func (p *parser) parseEscape() (rune, error) {
	pos := p.c.pos()
	r, ok := p.c.next()
	if !ok {
		return 0, posErr(ErrEscapeExpected, pos)
	}
	switch r {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		// json's \uXXXX form is recognized but not decoded
		return 0, posErr(ErrHexEscape, pos)
	default:
		return 0, BadEscapeErr(r, pos)
	}
}

// parseString reads a quoted string or a bare token. Quoted strings may
// contain whitespace, structural characters and '#' literally. Bare tokens
// end, without consuming the terminator, at whitespace, a structural
// character or end of input; an empty result is an error only when not even
// one character was available.
func (p *parser) parseString() (string, error) {
	r, ok := p.c.peek()
	if !ok {
		return "", posErr(ErrStringExpected, p.c.pos())
	}
	buf := &strings.Builder{}
	if r == '"' {
		open := p.c.pos()
		p.c.next()
		for {
			r, ok := p.c.next()
			if !ok {
				return "", posErr(ErrQuoteExpected, open)
			}
			switch r {
			case '\\':
				e, err := p.parseEscape()
				if err != nil {
					return "", err
				}
				buf.WriteRune(e)
			case '"':
				return buf.String(), nil
			default:
				buf.WriteRune(r)
			}
		}
	}
	for {
		r, ok := p.c.peek()
		if !ok || isSpace(r) || isStructural(r) {
			return buf.String(), nil
		}
		if r == '\\' {
			p.c.next()
			e, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			buf.WriteRune(e)
			continue
		}
		p.c.next()
		buf.WriteRune(r)
	}
}

// parseVal dispatches on one character of lookahead to an object, an array
// or a string value.
func (p *parser) parseVal() (*ir.Node, error) {
	r, ok := p.c.peek()
	if !ok {
		return nil, posErr(ErrValueExpected, p.c.pos())
	}
	switch r {
	case '{':
		open := p.c.pos()
		p.c.next()
		p.skipSpace()
		val, err := p.parseObj()
		if err != nil {
			return nil, err
		}
		if r, ok := p.c.next(); !ok || r != '}' {
			return nil, posErr(ErrClosingBrace, open)
		}
		return val, nil
	case '[':
		open := p.c.pos()
		p.c.next()
		arr := &ir.Node{Type: ir.ArrayType}
		p.skipSpace()
		for {
			r, ok := p.c.peek()
			if !ok {
				return nil, posErr(ErrClosingBracket, open)
			}
			if r == ']' {
				p.c.next()
				return arr, nil
			}
			elt, err := p.parseVal()
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, elt)
			p.skipSpaceAndToken(',')
		}
	default:
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
}

// parseObj reads key/value pairs until '}' or end of input, neither of
// which it consumes. The caller decides whether end of input is acceptable:
// the document root allows it, a braced object requires the '}'.
func (p *parser) parseObj() (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	var seen map[string]struct{}
	for {
		r, ok := p.c.peek()
		if !ok || r == '}' {
			return obj, nil
		}
		keyPos := p.c.pos()
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpaceAndToken(':')
		val, err := p.parseVal()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, DuplicateKeyErr(key, keyPos)
		}
		if seen == nil {
			seen = map[string]struct{}{}
		}
		seen[key] = struct{}{}
		obj.Fields = append(obj.Fields, key)
		obj.Values = append(obj.Values, val)
		p.skipSpaceAndToken(',')
	}
}
