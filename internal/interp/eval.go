package interp

import "github.com/aocla-lang/aocla/internal/value"

// Eval walks program (which must be a List) left to right, dispatching
// each element by variant (spec.md §4.4). It returns 0 on success, 1 on
// failure, leaving a structured error retrievable via ctx.Err().
func (ctx *Context) Eval(program *value.Value) int {
	for _, o := range program.Items() {
		ctx.Frame.line = o.Line

		switch o.Type {
		case value.Tuple:
			if o.Quoted() {
				cp := value.DeepCopy(o)
				cp.SetQuoted(false)
				ctx.Push(cp)
				continue
			}
			if code := ctx.captureTuple(o); code != 0 {
				return code
			}

		case value.Symbol:
			if o.Quoted() {
				cp := value.DeepCopy(o)
				cp.SetQuoted(false)
				ctx.Push(cp)
				continue
			}
			name := o.Bytes()
			if len(name) > 0 && name[0] == '$' {
				if code := ctx.pushLocal(name); code != 0 {
					return code
				}
				continue
			}
			if code := ctx.callProcedure(string(name)); code != 0 {
				return code
			}

		default:
			ctx.Push(value.Retain(o))
		}
	}
	return 0
}

// captureTuple implements unquoted-Tuple evaluation: move the top o.Len()
// stack values into the current frame's locals, indexed by each tuple
// member's single byte (spec.md §4.4 Tuple capture).
func (ctx *Context) captureTuple(o *value.Value) int {
	n := o.Len()
	if ctx.stack.Len() < n {
		// Attribute the failure to the tuple member that would have
		// consumed the missing stack position: the first (leftmost)
		// member, since it receives the deepest requested slot and that
		// slot is the one that doesn't exist.
		missing := o.Items()[0]
		return ctx.Fail(KindArity, string(missing.Bytes()), "Out of stack while capturing local")
	}
	captured := ctx.stack.popN(n)
	for i, member := range o.Items() {
		idx := member.Bytes()[0]
		ctx.Frame.setLocal(idx, captured[i])
	}
	return 0
}

// pushLocal implements "$x": push the value captured at local slot
// name[1] (spec.md §4.4 $-local push).
func (ctx *Context) pushLocal(name []byte) int {
	if len(name) < 2 {
		return ctx.Fail(KindLocals, string(name), "Unbound local var")
	}
	idx := name[1]
	local := ctx.Frame.local(idx)
	if local == nil {
		return ctx.Fail(KindLocals, string(name), "Unbound local var")
	}
	ctx.Push(value.Retain(local))
	return 0
}

// callProcedure looks up name in the procedure table and dispatches to its
// native handler or evaluates its bound List in a fresh frame (spec.md
// §4.4 procedure call).
func (ctx *Context) callProcedure(name string) int {
	proc := ctx.Procs.lookup(name)
	if proc == nil {
		return ctx.Fail(KindLookup, name, "Symbol not bound to procedure")
	}
	if proc.Native != nil {
		prevProc := ctx.Frame.proc
		ctx.Frame.proc = proc
		code := ctx.callNative(proc)
		ctx.Frame.proc = prevProc
		return code
	}
	prevFrame := ctx.Frame
	newFr := newFrame(prevFrame)
	newFr.proc = proc
	ctx.Frame = newFr
	code := ctx.Eval(proc.List)
	newFr.free()
	ctx.Frame = prevFrame
	return code
}

// EvalUp evaluates list with the frame temporarily retargeted to the
// current frame's parent, restoring it afterward (spec.md §4.6 upeval). If
// the current frame has no parent it behaves exactly like Eval.
func (ctx *Context) EvalUp(list *value.Value) int {
	target := ctx.Frame.Prev()
	if target == nil {
		return ctx.Eval(list)
	}
	saved := ctx.Frame
	ctx.Frame = target
	code := ctx.Eval(list)
	ctx.Frame = saved
	return code
}

// callNative invokes a native operation, converting an uncaught panic
// (e.g. Go's native integer-division-by-zero panic, spec.md §9 "Division
// by zero ... inherit the target's native integer-division trap") into a
// Guest-kind evaluation error rather than crashing the process. This is
// the single recover() point the evaluator needs: without it a panicking
// built-in would violate spec.md §5's guarantee that every call runs to
// completion or failure.
func (ctx *Context) callNative(proc *Procedure) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = ctx.Fail(KindGuest, proc.Name, "%v", r)
		}
	}()
	return proc.Native(ctx)
}
