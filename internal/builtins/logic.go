package builtins

import (
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

var boolPair = []value.TypeMask{value.MaskOf(value.Bool), value.MaskOf(value.Bool)}

// notOp negates a Bool. Supplements the spec's comparison/arithmetic set
// with the Boolean connective original_source/aocla.c's caller code relied
// on instead of deriving it from `==`/`ifelse` every time (SPEC_FULL.md §10.1).
func notOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.Bool)) {
		return 1
	}
	v := ctx.Pop()
	res := !v.AsBool()
	value.Release(v)
	ctx.Push(value.NewBool(res))
	return 0
}

// andOrOp implements `and`/`or`, both strict (no short-circuit — both
// operands are already on the stack by the time the operation runs).
func andOrOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(boolPair...) {
		return 1
	}
	a := ctx.Pop()
	b := ctx.Pop()
	var res bool
	if ctx.CurrentProcName() == "and" {
		res = a.AsBool() && b.AsBool()
	} else {
		res = a.AsBool() || b.AsBool()
	}
	value.Release(a)
	value.Release(b)
	ctx.Push(value.NewBool(res))
	return 0
}

func registerLogic(ctx *interp.Context) {
	ctx.DefNative("not", notOp)
	ctx.DefNative("and", andOrOp)
	ctx.DefNative("or", andOrOp)
}
