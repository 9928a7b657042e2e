package interp

import (
	"testing"

	"github.com/aocla-lang/aocla/internal/value"
)

func prog(items ...*value.Value) *value.Value {
	l := value.NewList(len(items))
	for _, it := range items {
		l.Append(it)
	}
	return l
}

func TestEvalPushesLiterals(t *testing.T) {
	ctx := New()
	code := ctx.Eval(prog(value.NewInt(1), value.NewBool(true), value.NewString([]byte("s"))))
	if code != 0 {
		t.Fatalf("eval failed: %v", ctx.Err())
	}
	if ctx.StackLen() != 3 {
		t.Fatalf("stack len = %d, want 3", ctx.StackLen())
	}
}

func TestEvalQuotedSymbolPushesData(t *testing.T) {
	ctx := New()
	qs := value.NewSymbol([]byte("foo"), true)
	code := ctx.Eval(prog(qs))
	if code != 0 {
		t.Fatalf("eval failed: %v", ctx.Err())
	}
	top := ctx.Peek(0)
	if top.Type != value.Symbol || top.Quoted() {
		t.Fatalf("expected unquoted data symbol, got %+v", top)
	}
}

func TestEvalQuotedTuplePushesData(t *testing.T) {
	ctx := New()
	qt := value.NewTuple(1, true)
	qt.Append(value.NewSymbol([]byte("x"), false))
	code := ctx.Eval(prog(qt))
	if code != 0 {
		t.Fatalf("eval failed: %v", ctx.Err())
	}
	top := ctx.Peek(0)
	if top.Type != value.Tuple || top.Quoted() {
		t.Fatalf("expected unquoted data tuple, got %+v", top)
	}
}

func TestEvalTupleCaptureAndLocalPush(t *testing.T) {
	ctx := New()
	tup := value.NewTuple(1, false)
	tup.Append(value.NewSymbol([]byte("x"), false))
	dollar := value.NewSymbol([]byte("$x"), false)

	code := ctx.Eval(prog(value.NewInt(5), tup, dollar, dollar))
	if code != 0 {
		t.Fatalf("eval failed: %v", ctx.Err())
	}
	if ctx.StackLen() != 2 {
		t.Fatalf("stack len = %d, want 2", ctx.StackLen())
	}
	if ctx.Peek(0).AsInt() != 5 || ctx.Peek(1).AsInt() != 5 {
		t.Fatalf("expected both locals pushes to read back 5")
	}
}

func TestEvalTupleCaptureUnderStack(t *testing.T) {
	ctx := New()
	tup := value.NewTuple(2, false)
	tup.Append(value.NewSymbol([]byte("a"), false))
	tup.Append(value.NewSymbol([]byte("b"), false))

	code := ctx.Eval(prog(tup))
	if code != 1 {
		t.Fatalf("expected failure, got code %d", code)
	}
	if ctx.Err().Message != "Out of stack while capturing local" {
		t.Fatalf("unexpected message: %q", ctx.Err().Message)
	}
}

func TestEvalUnboundLocal(t *testing.T) {
	ctx := New()
	dollar := value.NewSymbol([]byte("$z"), false)
	code := ctx.Eval(prog(dollar))
	if code != 1 || ctx.Err().Message != "Unbound local var" {
		t.Fatalf("expected unbound local failure, got code=%d err=%v", code, ctx.Err())
	}
}

func TestEvalUnboundProcedure(t *testing.T) {
	ctx := New()
	sym := value.NewSymbol([]byte("nope"), false)
	code := ctx.Eval(prog(sym))
	if code != 1 || ctx.Err().Message != "Symbol not bound to procedure" {
		t.Fatalf("expected lookup failure, got code=%d err=%v", code, ctx.Err())
	}
}

func TestEvalNativeProcedureDispatch(t *testing.T) {
	ctx := New()
	ctx.Procs.addNative("double", func(c *Context) int {
		v := c.Pop()
		c.Push(value.NewInt(v.AsInt() * 2))
		value.Release(v)
		return 0
	})
	sym := value.NewSymbol([]byte("double"), false)
	code := ctx.Eval(prog(value.NewInt(21), sym))
	if code != 0 {
		t.Fatalf("eval failed: %v", ctx.Err())
	}
	if ctx.Peek(0).AsInt() != 42 {
		t.Fatalf("got %d, want 42", ctx.Peek(0).AsInt())
	}
}

func TestEvalListBoundProcedureGetsFreshFrame(t *testing.T) {
	ctx := New()
	body := prog(value.NewSymbol([]byte("$x"), false))
	ctx.Procs.addList("getx", body)

	tup := value.NewTuple(1, false)
	tup.Append(value.NewSymbol([]byte("x"), false))
	sym := value.NewSymbol([]byte("getx"), false)

	code := ctx.Eval(prog(value.NewInt(9), tup, sym))
	if code != 1 {
		t.Fatalf("expected unbound local in the callee's fresh frame, got code=%d", code)
	}
	if ctx.Err().Message != "Unbound local var" {
		t.Fatalf("unexpected error: %v", ctx.Err())
	}
}

func TestProcTableRedefineReplaces(t *testing.T) {
	pt := newProcTable()
	pt.addNative("f", func(c *Context) int { return 0 })
	first := pt.lookup("f")
	pt.addNative("f", func(c *Context) int { return 1 })
	second := pt.lookup("f")
	if first != second {
		t.Fatalf("redefinition should replace in place, not create a new binding")
	}
	if pt.Len() != 1 {
		t.Fatalf("table len = %d, want 1 after redefinition", pt.Len())
	}
}

func TestBackTraceMultiFrame(t *testing.T) {
	ctx := New()
	ctx.Procs.addList("inner", prog(value.NewSymbol([]byte("boom"), false)))
	ctx.Procs.addNative("boom", func(c *Context) int {
		return c.Fail(KindGuest, "", "kaboom")
	})
	outer := prog(value.NewSymbol([]byte("inner"), false))
	code := ctx.Eval(outer)
	if code != 1 {
		t.Fatalf("expected failure")
	}
	if len(ctx.Err().Trace) < 2 {
		t.Fatalf("expected a multi-frame trace, got %v", ctx.Err().Trace)
	}
}

func TestDivisionByZeroPanicBecomesGuestError(t *testing.T) {
	ctx := New()
	ctx.Procs.addNative("boom", func(c *Context) int {
		a, b := 1, 0
		_ = a / b // triggers Go's runtime divide-by-zero panic
		return 0
	})
	code := ctx.Eval(prog(value.NewSymbol([]byte("boom"), false)))
	if code != 1 {
		t.Fatalf("expected the panic to be converted into a failure")
	}
	if ctx.Err().Kind != KindGuest {
		t.Fatalf("expected KindGuest, got %v", ctx.Err().Kind)
	}
}
