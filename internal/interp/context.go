// Package interp implements Aocla's evaluator: the operand stack, linked
// stack frames with byte-indexed locals, the procedure table, and the
// dispatch loop that walks a program list (SPEC_FULL.md §7-§9).
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/aocla-lang/aocla/internal/parser"
	"github.com/aocla-lang/aocla/internal/value"
)

// Context is the interpreter's single piece of process-scoped state: the
// operand stack, the procedure table, the current frame, and the last
// recorded error (spec.md §3 "Interpreter context"; see EvalError). It is owned by exactly
// one caller and is not safe for concurrent use (spec.md §5) — tests must
// still be able to construct several independent Contexts at once
// (spec.md §9), which New satisfies by allocating everything fresh.
type Context struct {
	stack *Stack
	Procs *ProcTable
	Frame *Frame

	// StackPreview bounds how many top elements `showstack` / the REPL
	// print; defaults to 10 (spec.md §4.3) but is overridable from
	// internal/config (SPEC_FULL.md §3.2).
	StackPreview int
	Color        bool
	Out          io.Writer

	// SessionID is an ambient tracing concern (SPEC_FULL.md §4): never
	// consulted by core evaluation semantics.
	SessionID uuid.UUID

	err *EvalError
}

// New creates an interpreter context with an empty stack, empty procedure
// table, and a top-level frame (no current procedure, no parent).
func New() *Context {
	return &Context{
		stack:        &Stack{},
		Procs:        newProcTable(),
		Frame:        newFrame(nil),
		StackPreview: 10,
		Out:          os.Stdout,
		SessionID:    uuid.New(),
	}
}

// Err returns the last recorded evaluation error, or nil.
func (ctx *Context) Err() *EvalError { return ctx.err }

// ClearErr discards the last recorded error (the REPL calls this before
// evaluating the next line).
func (ctx *Context) ClearErr() { ctx.err = nil }

// Push transfers ownership of v onto the operand stack.
func (ctx *Context) Push(v *value.Value) { ctx.stack.push(v) }

// Pop transfers ownership of the top value to the caller, or returns nil
// if the stack is empty.
func (ctx *Context) Pop() *value.Value { return ctx.stack.pop() }

// Peek returns the element `offset` from the top without transferring
// ownership.
func (ctx *Context) Peek(offset int) *value.Value { return ctx.stack.peek(offset) }

// StackLen reports the current operand stack depth.
func (ctx *Context) StackLen() int { return ctx.stack.Len() }

// ShowStack renders the top StackPreview elements (spec.md §4.3).
func (ctx *Context) ShowStack() string { return ctx.stack.show(ctx.StackPreview, ctx.Color) }

// Fail records a structured error (kind, offending context, message) with
// a back-trace captured from the current frame outward, and returns 1 —
// the native-operation failure convention (spec.md §4.6).
func (ctx *Context) Fail(kind Kind, context string, format string, args ...any) int {
	ctx.err = &EvalError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Context: context,
		Trace:   captureTrace(ctx.Frame),
	}
	return 1
}

// CheckStackLen fails "Out of stack" if fewer than min operands are
// present (spec.md §4.6 checkStackLen).
func (ctx *Context) CheckStackLen(min int) bool {
	if ctx.stack.Len() < min {
		ctx.Fail(KindArity, "", "Out of stack")
		return false
	}
	return true
}

// CheckStackType fails "Type mismatch" unless the top `len(masks)`
// operands (innermost/top-most first) each match their mask (spec.md §4.6
// checkStackType). Use value.AnyType for a catch-all position.
func (ctx *Context) CheckStackType(masks ...value.TypeMask) bool {
	if !ctx.CheckStackLen(len(masks)) {
		return false
	}
	for i, mask := range masks {
		v := ctx.stack.peek(i)
		if !mask.Has(v.Type) {
			ctx.Fail(KindType, "", "Type mismatch")
			return false
		}
	}
	return true
}

// DefNative binds name to a native operation in the procedure table,
// replacing any prior binding (spec.md §4.5 add).
func (ctx *Context) DefNative(name string, fn NativeFunc) { ctx.Procs.addNative(name, fn) }

// DefList binds name to a List to be evaluated as Aocla code, replacing
// any prior binding (spec.md §4.5 add, §4.6 def).
func (ctx *Context) DefList(name string, list *value.Value) { ctx.Procs.addList(name, list) }

// DefFromText parses src as a single value and binds name to it if it is a
// List (spec.md §4.5 addFromText); returns an error otherwise.
func (ctx *Context) DefFromText(name string, src []byte) error {
	v, _, err := parser.ParseObject(src)
	if err != nil {
		return err
	}
	if v.Type != value.List {
		return fmt.Errorf("addFromText: %q did not parse to a List", name)
	}
	ctx.Procs.addList(name, v)
	return nil
}

// CurrentProcName returns the name of the procedure currently executing in
// the current frame, or "" at the top level (spec.md §9 "Name
// disambiguation inside shared handlers").
func (ctx *Context) CurrentProcName() string {
	if ctx.Frame.proc == nil {
		return ""
	}
	return ctx.Frame.proc.Name
}
