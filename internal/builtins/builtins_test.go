package builtins

import (
	"bytes"
	"testing"

	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/parser"
	"github.com/aocla-lang/aocla/internal/value"
)

func run(t *testing.T, src string) (*interp.Context, *bytes.Buffer) {
	t.Helper()
	ctx := interp.New()
	var out bytes.Buffer
	ctx.Out = &out
	if err := Register(ctx); err != nil {
		t.Fatalf("Register: %v", err)
	}
	prog, err := parser.ParseProgram([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if code := ctx.Eval(prog); code != 0 {
		t.Fatalf("eval %q failed: %v", src, ctx.Err())
	}
	return ctx, &out
}

func TestArithSubtractionPopOrder(t *testing.T) {
	ctx, _ := run(t, "3 2 -")
	if ctx.Peek(0).AsInt() != -1 {
		t.Fatalf("3 2 - = %d, want -1", ctx.Peek(0).AsInt())
	}
}

func TestMapSquaresEachElement(t *testing.T) {
	ctx, _ := run(t, "[1 2 3] [dup *] map")
	top := ctx.Peek(0)
	if top.Type != value.List || top.Len() != 3 {
		t.Fatalf("unexpected result %+v", top)
	}
	want := []int64{1, 4, 9}
	for i, it := range top.Items() {
		if it.AsInt() != want[i] {
			t.Fatalf("element %d = %d, want %d", i, it.AsInt(), want[i])
		}
	}
}

func TestLocalCaptureAndReadback(t *testing.T) {
	ctx, _ := run(t, "5 (x) $x $x +")
	if ctx.Peek(0).AsInt() != 10 {
		t.Fatalf("got %d, want 10", ctx.Peek(0).AsInt())
	}
}

func TestStringLen(t *testing.T) {
	ctx, _ := run(t, `"hello" len`)
	if ctx.Peek(0).AsInt() != 5 {
		t.Fatalf("got %d, want 5", ctx.Peek(0).AsInt())
	}
}

func TestGetAtPositiveNegativeOutOfRange(t *testing.T) {
	ctx, _ := run(t, "[10 20 30] 1 get@")
	if ctx.Peek(0).AsInt() != 20 {
		t.Fatalf("index 1 = %d, want 20", ctx.Peek(0).AsInt())
	}
	ctx, _ = run(t, "[10 20 30] -1 get@")
	if ctx.Peek(0).AsInt() != 30 {
		t.Fatalf("index -1 = %d, want 30", ctx.Peek(0).AsInt())
	}
	ctx, _ = run(t, "[10 20 30] 5 get@")
	if ctx.Peek(0).Type != value.Bool || ctx.Peek(0).AsBool() {
		t.Fatalf("out-of-range get@ should push #f, got %+v", ctx.Peek(0))
	}
}

func TestIfelseBranches(t *testing.T) {
	ctx, _ := run(t, "#t [1] [2] ifelse")
	if ctx.Peek(0).AsInt() != 1 {
		t.Fatalf("true branch = %d, want 1", ctx.Peek(0).AsInt())
	}
	ctx, _ = run(t, "#f [1] [2] ifelse")
	if ctx.Peek(0).AsInt() != 2 {
		t.Fatalf("false branch = %d, want 2", ctx.Peek(0).AsInt())
	}
}

func TestTupleCaptureUnderStackFails(t *testing.T) {
	ctx := interp.New()
	if err := Register(ctx); err != nil {
		t.Fatalf("Register: %v", err)
	}
	prog, err := parser.ParseProgram([]byte("(a b)"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if code := ctx.Eval(prog); code != 1 {
		t.Fatalf("expected failure capturing locals on an empty stack")
	}
	if ctx.Err().Message != "Out of stack while capturing local" {
		t.Fatalf("unexpected message: %q", ctx.Err().Message)
	}
}

func TestSortOrdersAscending(t *testing.T) {
	ctx, _ := run(t, "[3 1 2] sort")
	top := ctx.Peek(0)
	want := []int64{1, 2, 3}
	for i, it := range top.Items() {
		if it.AsInt() != want[i] {
			t.Fatalf("element %d = %d, want %d", i, it.AsInt(), want[i])
		}
	}
}

func TestDupSwapDropBootstrap(t *testing.T) {
	ctx, _ := run(t, "1 2 swap")
	if ctx.Peek(0).AsInt() != 1 || ctx.Peek(1).AsInt() != 2 {
		t.Fatalf("swap failed: top=%d next=%d", ctx.Peek(0).AsInt(), ctx.Peek(1).AsInt())
	}
	ctx, _ = run(t, "7 dup")
	if ctx.StackLen() != 2 || ctx.Peek(0).AsInt() != 7 || ctx.Peek(1).AsInt() != 7 {
		t.Fatalf("dup failed")
	}
	ctx, _ = run(t, "1 2 drop")
	if ctx.StackLen() != 1 || ctx.Peek(0).AsInt() != 1 {
		t.Fatalf("drop failed")
	}
}

func TestRestDropsFirstElement(t *testing.T) {
	ctx, _ := run(t, "[1 2 3] rest")
	top := ctx.Peek(0)
	want := []int64{2, 3}
	if top.Len() != len(want) {
		t.Fatalf("rest result len = %d, want %d", top.Len(), len(want))
	}
	for i, it := range top.Items() {
		if it.AsInt() != want[i] {
			t.Fatalf("element %d = %d, want %d", i, it.AsInt(), want[i])
		}
	}
}

func TestDipPreservesStashedValue(t *testing.T) {
	ctx, _ := run(t, "100 20 [1 +] dip")
	if ctx.Peek(0).AsInt() != 20 {
		t.Fatalf("dip did not restore stashed value on top: got %d", ctx.Peek(0).AsInt())
	}
	if ctx.Peek(1).AsInt() != 101 {
		t.Fatalf("dip's body should run on the value beneath the stash: got %d, want 101", ctx.Peek(1).AsInt())
	}
}

func TestPrintWritesRawForm(t *testing.T) {
	_, out := run(t, `"hi" print`)
	if out.String() != "hi" {
		t.Fatalf("print output = %q, want %q", out.String(), "hi")
	}
}

func TestDefBindsListToSymbol(t *testing.T) {
	ctx, _ := run(t, "[1 2] 'two def two")
	if ctx.Peek(0).AsInt() != 2 || ctx.Peek(1).AsInt() != 1 {
		t.Fatalf("redefined proc did not push its list contents")
	}
}
