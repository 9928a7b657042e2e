package builtins

import (
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

// defOp binds the List below the top to the Symbol name on top of the
// stack (spec.md §4.6 def): "[...] 'name def".
func defOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.Symbol), value.MaskOf(value.List)) {
		return 1
	}
	sym := ctx.Pop()
	list := ctx.Pop()
	ctx.DefList(string(sym.Bytes()), list)
	value.Release(sym)
	return 0
}

// execBlock runs v as code: a List is evaluated as a program (its body
// runs), anything else is simply pushed back, which is exactly what
// evaluating a single non-List program element would do (spec.md §4.4).
// Callers retain ownership of v and must Release it themselves.
func execBlock(ctx *interp.Context, v *value.Value) int {
	if v.Type == value.List {
		return ctx.Eval(v)
	}
	ctx.Push(value.Retain(v))
	return 0
}

// evalCond runs cond via execBlock and pops the Bool it must leave on top
// (spec.md §4.6 "evaluate cond; it must leave exactly one Bool on top").
func evalCond(ctx *interp.Context, cond *value.Value) (bool, int) {
	if code := execBlock(ctx, cond); code != 0 {
		return false, code
	}
	top := ctx.Peek(0)
	if top == nil || top.Type != value.Bool {
		return false, ctx.Fail(interp.KindType, "", "Type mismatch")
	}
	b := ctx.Pop()
	res := b.AsBool()
	value.Release(b)
	return res, 0
}

// ifOp implements "(cond-list then-list) -> ()".
func ifOp(ctx *interp.Context) int {
	if !ctx.CheckStackLen(2) {
		return 1
	}
	thenList := ctx.Pop()
	cond := ctx.Pop()

	ok, code := evalCond(ctx, cond)
	value.Release(cond)
	if code == 0 && ok {
		code = execBlock(ctx, thenList)
	}
	value.Release(thenList)
	return code
}

// ifelseOp implements "(cond then else) -> ()".
func ifelseOp(ctx *interp.Context) int {
	if !ctx.CheckStackLen(3) {
		return 1
	}
	elseList := ctx.Pop()
	thenList := ctx.Pop()
	cond := ctx.Pop()

	ok, code := evalCond(ctx, cond)
	value.Release(cond)
	if code == 0 {
		if ok {
			code = execBlock(ctx, thenList)
		} else {
			code = execBlock(ctx, elseList)
		}
	}
	value.Release(thenList)
	value.Release(elseList)
	return code
}

// whileOp implements "(cond body) -> ()": re-evaluates cond before each
// iteration, stopping at the first #f (spec.md §4.6).
func whileOp(ctx *interp.Context) int {
	if !ctx.CheckStackLen(2) {
		return 1
	}
	body := ctx.Pop()
	cond := ctx.Pop()

	var code int
	for {
		ok, c := evalCond(ctx, cond)
		if c != 0 {
			code = c
			break
		}
		if !ok {
			code = 0
			break
		}
		if c = execBlock(ctx, body); c != 0 {
			code = c
			break
		}
	}
	value.Release(cond)
	value.Release(body)
	return code
}

// evalOp implements `eval`: pop a List and run it in the current frame.
func evalOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.List)) {
		return 1
	}
	l := ctx.Pop()
	code := ctx.Eval(l)
	value.Release(l)
	return code
}

// upevalOp implements `upeval`: pop a List and run it with the frame
// retargeted one level up, giving the block access to the caller's
// locals (spec.md §4.6; this is how the block the bootstrap `rest` passes
// to `foreach` reads and updates `rest`'s own `f` and `n` locals).
func upevalOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.List)) {
		return 1
	}
	l := ctx.Pop()
	code := ctx.EvalUp(l)
	value.Release(l)
	return code
}

func registerControl(ctx *interp.Context) {
	ctx.DefNative("def", defOp)
	ctx.DefNative("if", ifOp)
	ctx.DefNative("ifelse", ifelseOp)
	ctx.DefNative("while", whileOp)
	ctx.DefNative("eval", evalOp)
	ctx.DefNative("upeval", upevalOp)
}
