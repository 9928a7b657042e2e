package builtins

import (
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

// compareOp implements ==, !=, >, <, >=, <= uniformly. Popping order is b
// (top) then a (below the top) and the comparison applies as a OP b, so
// `2 3 <` pushes #t and `3 2 <` pushes #f (spec.md §4.6). On a type mismatch both operands are
// restored to the stack before the failure is recorded, matching the
// original's "push them back before bailing" behavior.
func compareOp(ctx *interp.Context) int {
	if !ctx.CheckStackLen(2) {
		return 1
	}
	b := ctx.Pop()
	a := ctx.Pop()
	cmp, err := value.Compare(a, b)
	if err != nil {
		ctx.Push(a)
		ctx.Push(b)
		return ctx.Fail(interp.KindMismatch, "", "Type mismatch in comparison")
	}

	var res bool
	switch ctx.CurrentProcName() {
	case "==":
		res = cmp == 0
	case "!=":
		res = cmp != 0
	case ">":
		res = cmp > 0
	case "<":
		res = cmp < 0
	case ">=":
		res = cmp >= 0
	case "<=":
		res = cmp <= 0
	}
	value.Release(a)
	value.Release(b)
	ctx.Push(value.NewBool(res))
	return 0
}

func registerCompare(ctx *interp.Context) {
	for _, name := range []string{"==", "!=", ">", "<", ">=", "<="} {
		ctx.DefNative(name, compareOp)
	}
}
