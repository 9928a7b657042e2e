package builtins

import (
	"fmt"

	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

// printImpl backs both `print` and `printnl`, telling them apart by the
// currently-executing procedure's name (spec.md §9). Output uses the raw
// (non-repr) form: strings and symbols are written unescaped.
func printImpl(ctx *interp.Context) int {
	if !ctx.CheckStackLen(1) {
		return 1
	}
	v := ctx.Pop()
	fmt.Fprint(ctx.Out, value.Format(v, false, ctx.Color))
	if ctx.CurrentProcName() == "printnl" {
		fmt.Fprintln(ctx.Out)
	}
	value.Release(v)
	return 0
}

// showStackOp prints the stack preview, writing nothing at all when the
// stack is empty (spec.md §4.3 showStack).
func showStackOp(ctx *interp.Context) int {
	if ctx.StackLen() == 0 {
		return 0
	}
	fmt.Fprintln(ctx.Out, ctx.ShowStack())
	return 0
}

func registerIO(ctx *interp.Context) {
	ctx.DefNative("print", printImpl)
	ctx.DefNative("printnl", printImpl)
	ctx.DefNative("showstack", showStackOp)
}
