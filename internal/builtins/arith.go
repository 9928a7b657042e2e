// Package builtins is the native operation catalog plus the bootstrap
// Aocla-defined procedures, wired into an interp.Context uniformly
// (spec.md §4.6, SPEC_FULL.md §10).
package builtins

import (
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

var intPair = []value.TypeMask{value.MaskOf(value.Int), value.MaskOf(value.Int)}

// arith implements +, -, *, / uniformly, reading the operator from the
// currently-executing procedure's name (spec.md §9 "Name disambiguation
// inside shared handlers"). Popping order: first popped is a, second is
// b, result is a OP b (spec.md §4.6 — preserved exactly so `3 2 -`
// evaluates to `2 - 3 = -1`).
func arith(ctx *interp.Context) int {
	if !ctx.CheckStackType(intPair...) {
		return 1
	}
	a := ctx.Pop()
	b := ctx.Pop()
	ai, bi := a.AsInt(), b.AsInt()
	value.Release(a)
	value.Release(b)

	var res int64
	switch ctx.CurrentProcName() {
	case "+":
		res = ai + bi
	case "-":
		res = ai - bi
	case "*":
		res = ai * bi
	case "/":
		res = ai / bi // integer division by zero panics; recovered by the evaluator
	}
	ctx.Push(value.NewInt(res))
	return 0
}

func registerArith(ctx *interp.Context) {
	for _, name := range []string{"+", "-", "*", "/"} {
		ctx.DefNative(name, arith)
	}
}
