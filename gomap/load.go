package gomap

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"strconv"

	"github.com/gon-format/gon/ir"
	"github.com/gon-format/gon/parse"
)

type fromOpts struct {
	comments bool
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseComments(do.comments),
	}
}

type FromOption func(*fromOpts)

func LoadComments(v bool) FromOption { return func(o *fromOpts) { o.comments = v } }

// Load parses GON text and converts it into p, which must be a pointer.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{comments: true}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromIR(node, p, opts...)
}

// FromIR converts a parsed tree into p. Types implementing Fromer convert
// themselves; anything else goes through a JSON token stream into
// encoding/json/v2 unmarshaling.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	if x, ok := p.(Fromer); ok {
		return x.FromGon(node)
	}
	b := bytes.NewBuffer(nil)
	jEnc := jsontext.NewEncoder(b)
	encErr := nodeToJEnc(node, jEnc)
	jDec := jsontext.NewDecoder(b)
	if err := json.UnmarshalDecode(jDec, p); err != nil {
		return err
	}
	return encErr
}

// ToJSON writes node as a JSON token stream to je.
func ToJSON(node *ir.Node, je *jsontext.Encoder) error {
	return nodeToJEnc(node, je)
}

func nodeToJEnc(node *ir.Node, je *jsontext.Encoder) error {
	switch node.Type {
	case ir.ObjectType:
		if err := je.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, field := range node.Fields {
			if err := je.WriteToken(jsontext.String(field)); err != nil {
				return err
			}
			if err := nodeToJEnc(node.Values[i], je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndObject)
	case ir.ArrayType:
		if err := je.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, val := range node.Values {
			if err := nodeToJEnc(val, je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndArray)
	default:
		return je.WriteToken(scalarToken(node.String))
	}
}

// scalarToken types an uninterpreted GON value by shape.
func scalarToken(s string) jsontext.Token {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return jsontext.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return jsontext.Float(f)
	}
	switch s {
	case "true":
		return jsontext.True
	case "false":
		return jsontext.False
	case "null":
		return jsontext.Null
	}
	return jsontext.String(s)
}
