package gomap

import (
	"strconv"

	"github.com/gon-format/gon/ir"
)

// ToAny converts a tree into plain Go values: objects become
// map[string]any, arrays []any, and scalars are typed by shape the same
// way the json bridge types them (int64, float64, bool, nil, or string).
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, v := range node.Values {
			res = append(res, ToAny(v))
		}
		return res
	default:
		return scalarAny(node.String)
	}
}

func scalarAny(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	return s
}
