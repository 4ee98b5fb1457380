package gomap

import (
	"fmt"
	"strconv"

	"github.com/gon-format/gon/ir"
)

// Fromer is implemented by types that convert themselves from a GON tree.
// A conversion either fully succeeds or leaves an error; there is no
// partial success.
type Fromer interface {
	FromGon(node *ir.Node) error
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type floating interface {
	~float32 | ~float64
}

func valueText(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return "", fmt.Errorf("%w, got %s", ErrExpectedValue, node.Type)
	}
	return node.String, nil
}

func Int[T integer](node *ir.Node) (T, error) {
	s, err := valueText(node)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ScalarError{Value: s, Err: err}
	}
	v := T(i)
	if int64(v) != i {
		return 0, &ScalarError{Value: s, Err: strconv.ErrRange}
	}
	return v, nil
}

func Uint[T unsigned](node *ir.Node) (T, error) {
	s, err := valueText(node)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ScalarError{Value: s, Err: err}
	}
	v := T(u)
	if uint64(v) != u {
		return 0, &ScalarError{Value: s, Err: strconv.ErrRange}
	}
	return v, nil
}

func Float[T floating](node *ir.Node) (T, error) {
	s, err := valueText(node)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ScalarError{Value: s, Err: err}
	}
	return T(f), nil
}

func String(node *ir.Node) (string, error) {
	return valueText(node)
}

func Bool(node *ir.Node) (bool, error) {
	s, err := valueText(node)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &ScalarError{Value: s, Err: err}
	}
	return b, nil
}

// Slice converts an array node element-wise.
func Slice[T any](node *ir.Node, from func(*ir.Node) (T, error)) ([]T, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w, got %s", ErrExpectedArray, node.Type)
	}
	res := make([]T, 0, len(node.Values))
	for _, v := range node.Values {
		t, err := from(v)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// Fixed converts an array node of exactly n elements.
func Fixed[T any](node *ir.Node, n int, from func(*ir.Node) (T, error)) ([]T, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w, got %s", ErrExpectedArray, node.Type)
	}
	if len(node.Values) != n {
		return nil, &ArityError{Expected: n, Found: len(node.Values)}
	}
	return Slice(node, from)
}

// Map converts an object node value-wise into a string-keyed map.
func Map[T any](node *ir.Node, from func(*ir.Node) (T, error)) (map[string]T, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w, got %s", ErrExpectedObject, node.Type)
	}
	res := make(map[string]T, len(node.Fields))
	for i, f := range node.Fields {
		t, err := from(node.Values[i])
		if err != nil {
			return nil, err
		}
		res[f] = t
	}
	return res, nil
}

// Field reads a required member of an object node.
func Field[T any](node *ir.Node, name string, from func(*ir.Node) (T, error)) (T, error) {
	var zero T
	if node.Type != ir.ObjectType {
		return zero, fmt.Errorf("%w, got %s", ErrExpectedObject, node.Type)
	}
	for i, f := range node.Fields {
		if f == name {
			return from(node.Values[i])
		}
	}
	return zero, &MissingFieldError{Field: name}
}

// Variant matches a value node against a closed set of named variants.
func Variant[T any](node *ir.Node, vals map[string]T) (T, error) {
	var zero T
	s, err := valueText(node)
	if err != nil {
		return zero, err
	}
	v, ok := vals[s]
	if !ok {
		return zero, &VariantError{Name: s}
	}
	return v, nil
}
