// Package parse parses GON text into ir nodes.
//
// GON is a loose, human-friendly relative of JSON: object keys and scalar
// values may be bare tokens, the outer braces of the top-level object are
// optional, ':' and ',' separators are optional, and '#' starts a line
// comment at any token boundary.
//
//	node, err := parse.Parse([]byte(`
//	    whirly_widgets 10
//	    twirly_widgets 15
//	`))
//
// A document whose top level is not an object parses to a single bare
// value, so `parse.Parse([]byte("123.456"))` yields a value node. The
// parser decides between the two readings by first attempting an object
// parse and falling back when no key/value pair can start.
//
// Parsing either fully succeeds or fails atomically with an error wrapping
// [ErrParse]; there is no partial tree.
package parse
