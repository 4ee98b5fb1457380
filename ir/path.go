package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed lookup path of the form "$.key.'quoted key'[3]". It is a
// linked chain of single steps, each either a field lookup or an array
// index.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			f := *x.Field
			if f != "" && strings.IndexAny(f, "'.$[] ") == -1 {
				buf.WriteString("." + f)
			} else {
				buf.WriteString(".'" + strings.Replace(f, "'", "\\'", -1) + "'")
			}
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseNext(rest, parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrPath)
		}
		idx, err := strconv.Atoi(frag[1 : i+1])
		if err != nil {
			return fmt.Errorf("%w: bad index %q: %v", ErrPath, frag[1:i+1], err)
		}
		parent.Index = &idx
		return parseNext(frag[i+2:], parent)
	default:
		return fmt.Errorf("%w: unexpected %q", ErrPath, frag[0])
	}
}

func parseNext(rest string, parent *Path) error {
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (string, string, error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: empty field", ErrPath)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	// quoted field, '\'' escapes a quote
	buf := &strings.Builder{}
	i := 1
	for i < len(frag) {
		switch frag[i] {
		case '\\':
			if i+1 < len(frag) && frag[i+1] == '\'' {
				buf.WriteByte('\'')
				i += 2
				continue
			}
			buf.WriteByte('\\')
			i++
		case '\'':
			return buf.String(), frag[i+1:], nil
		default:
			buf.WriteByte(frag[i])
			i++
		}
	}
	return "", "", fmt.Errorf("%w: unterminated quoted field", ErrPath)
}

// Get resolves the path against a tree, failing with the accessor error of
// the first step that does not apply.
func (p *Path) Get(node *Node) (*Node, error) {
	res := node
	for x := p; x != nil; x = x.Next {
		var err error
		switch {
		case x.Field != nil:
			res, err = res.Key(*x.Field)
		case x.Index != nil:
			res, err = res.Index(*x.Index)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// GetPath parses and resolves a path in one call.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return p.Get(y)
}
