// Package gomap converts GON trees to Go values.
//
// Two paths exist. Types that implement [Fromer] convert themselves; the
// helpers in this package (Int, String, Slice, Fixed, Map, Field, Variant)
// carry the shape and arity checks so that a FromGon method is a flat list
// of field reads:
//
//	func (e *Example) FromGon(node *ir.Node) error {
//	    a, err := gomap.Field(node, "a", gomap.Int[int32])
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// GON scalars are uninterpreted strings, so every scalar helper parses the
// value text itself and reports the parse failure when it does not fit.
//
// For everything else, [FromIR] and [Load] bridge the tree through a JSON
// token stream into encoding/json/v2 unmarshaling. The bridge types scalars
// by shape: value text that parses as an integer, float or boolean is
// bridged as the corresponding JSON kind, anything else as a JSON string.
// Use a FromGon method when a field needs, say, the literal string "10".
package gomap
