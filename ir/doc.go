// Package ir provides the in-memory representation of parsed GON documents.
//
// A GON document is a tree of [Node] values. Every node is exactly one of
// three kinds:
//
//   - ValueType: a scalar holding the decoded literal text. The text is not
//     interpreted further at parse time; converting it to a number or boolean
//     is the consumer's business (see the accessors here and package gomap).
//   - ArrayType: an ordered sequence of child nodes. Order is significant
//     and preserved exactly as encountered in the source.
//   - ObjectType: a mapping from string keys to child nodes. Keys are unique
//     within one object; the parser rejects duplicates rather than
//     overwriting. Objects are stored as parallel Fields/Values slices,
//     which happens to retain encounter order, but key order is not part of
//     the contract and callers must not rely on it.
//
// Trees are constructed bottom-up during parsing and are not mutated
// afterwards. A returned tree may be read concurrently from any number of
// goroutines without synchronization.
//
// # Creating Nodes
//
// Parsed trees come from github.com/gon-format/gon/parse. For programmatic
// construction use the constructors:
//
//	v := ir.FromString("10")
//	a := ir.FromSlice([]*ir.Node{ir.FromString("A"), ir.FromString("B")})
//	o, err := ir.FromPairs([]ir.KeyVal{{Key: "widgets", Val: v}})
//
// # Navigating Nodes
//
// Key, Index and the scalar accessors (Str, Int64, Float64, Bool) fail with
// distinct errors when the node's kind does not match the request. For
// path-style navigation use [ParsePath] and [Node.GetPath]:
//
//	n, err := doc.GetPath("$.little_factory.twirly_widgets")
package ir
