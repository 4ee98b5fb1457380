// Package eval evaluates expressions against parsed GON documents.
//
// Expressions use github.com/expr-lang/expr syntax. The environment is the
// document itself: for an object document each top-level field is a
// variable; any other document is bound to the single variable "value".
//
//	node, _ := parse.Parse([]byte("whirly_widgets 10"))
//	out, _ := eval.Eval(node, "whirly_widgets > 5") // true
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gon-format/gon/gomap"
	"github.com/gon-format/gon/ir"
)

// Env builds the evaluation environment for a document.
func Env(node *ir.Node) map[string]any {
	if node.Type == ir.ObjectType {
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = gomap.ToAny(node.Values[i])
		}
		return res
	}
	return map[string]any{"value": gomap.ToAny(node)}
}

// Compile compiles an expression without binding it to a document.
func Compile(src string) (*vm.Program, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return program, nil
}

// Run evaluates a compiled expression against a document.
func Run(program *vm.Program, node *ir.Node) (any, error) {
	out, err := vm.Run(program, Env(node))
	if err != nil {
		return nil, fmt.Errorf("error evaluating: %w", err)
	}
	return out, nil
}

// Eval compiles and runs src against a document.
func Eval(node *ir.Node, src string) (any, error) {
	program, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return Run(program, node)
}
