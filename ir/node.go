package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a GON document: exactly one of object, array or
// scalar value, per Type. For ObjectType, Fields[i] is the key for
// Values[i] and the two slices always have the same length. For ArrayType
// only Values is populated. For ValueType only String is populated.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node
	String string
}

// KeyVal is a single object entry.
type KeyVal struct {
	Key string
	Val *Node
}

func FromString(v string) *Node {
	return &Node{
		Type:   ValueType,
		String: v,
	}
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

// FromPairs builds an object node, rejecting duplicate keys the same way
// the parser does.
func FromPairs(kvs []KeyVal) (*Node, error) {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	seen := make(map[string]struct{}, len(kvs))
	for _, kv := range kvs {
		if _, ok := seen[kv.Key]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, kv.Key)
		}
		seen[kv.Key] = struct{}{}
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res, nil
}

// FromMap builds an object node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// ToMap returns the object entries as a map, or nil for non-objects.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// Len reports the number of object entries or array elements; it is 0 for
// scalar values.
func (y *Node) Len() int {
	return len(y.Values)
}

// Key looks up an object member.
func (y *Node) Key(k string) (*Node, error) {
	switch y.Type {
	case ObjectType:
		for i, f := range y.Fields {
			if f == k {
				return y.Values[i], nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrNoSuchKey, k)
	case ArrayType:
		return nil, fmt.Errorf("%w: cannot key into array", ErrUnexpectedArray)
	default:
		return nil, fmt.Errorf("%w: cannot key into value", ErrUnexpectedValue)
	}
}

// Index looks up an array element.
func (y *Node) Index(i int) (*Node, error) {
	switch y.Type {
	case ArrayType:
		if i < 0 || i >= len(y.Values) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(y.Values))
		}
		return y.Values[i], nil
	case ObjectType:
		return nil, fmt.Errorf("%w: cannot index into object", ErrUnexpectedObject)
	default:
		return nil, fmt.Errorf("%w: cannot index into value", ErrUnexpectedValue)
	}
}

// Str returns the scalar text of a value node.
func (y *Node) Str() (string, error) {
	switch y.Type {
	case ValueType:
		return y.String, nil
	case ArrayType:
		return "", fmt.Errorf("%w: wanted value", ErrUnexpectedArray)
	default:
		return "", fmt.Errorf("%w: wanted value", ErrUnexpectedObject)
	}
}

func (y *Node) Int64() (int64, error) {
	s, err := y.Str()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrConvert, s, err)
	}
	return i, nil
}

func (y *Node) Float64() (float64, error) {
	s, err := y.Str()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrConvert, s, err)
	}
	return f, nil
}

func (y *Node) Bool() (bool, error) {
	s, err := y.Str()
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrConvert, s, err)
	}
	return b, nil
}
