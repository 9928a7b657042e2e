package builtins

import (
	"sort"

	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/value"
)

var textualContainerMask = value.MaskOf(value.List) | value.MaskOf(value.Tuple) |
	value.MaskOf(value.String) | value.MaskOf(value.Symbol)

// lenOp reports element count (List/Tuple) or byte length (String/Symbol).
func lenOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(textualContainerMask) {
		return 1
	}
	v := ctx.Pop()
	n := int64(v.Len())
	value.Release(v)
	ctx.Push(value.NewInt(n))
	return 0
}

// sortOp sorts a List's elements in place (after an Unshare copy-on-write
// gate), ordering by value.Compare. Mismatched element pairs have no
// defined order and are simply treated as equal rather than failing —
// sort never raises a comparison error (SPEC_FULL.md §10).
func sortOp(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.List)) {
		return 1
	}
	l := value.Unshare(ctx.Pop())
	items := l.Items()
	sort.SliceStable(items, func(i, j int) bool {
		cmp, err := value.Compare(items[i], items[j])
		return err == nil && cmp < 0
	})
	ctx.Push(l)
	return 0
}

// appendTail implements `->`: "(x List) -> (List)", appending x to the
// List's tail. The List must already be the top operand, x the one below
// it (spec.md §4.6).
func appendTail(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.List), value.AnyType) {
		return 1
	}
	l := value.Unshare(ctx.Pop())
	x := ctx.Pop()
	l.Append(x)
	ctx.Push(l)
	return 0
}

// appendHead implements `<-`: same operands as `->` but x is prepended.
func appendHead(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.List), value.AnyType) {
		return 1
	}
	l := value.Unshare(ctx.Pop())
	x := ctx.Pop()
	l.Prepend(x)
	ctx.Push(l)
	return 0
}

// getAt implements `get@`: "(collection index) -> (element|#f)", with
// negative indices counting from the end and out-of-range indices
// producing #f rather than failing (spec.md §4.6).
func getAt(ctx *interp.Context) int {
	if !ctx.CheckStackType(value.MaskOf(value.Int), textualContainerMask) {
		return 1
	}
	idx := ctx.Pop()
	coll := ctx.Pop()
	i := int(idx.AsInt())
	value.Release(idx)

	n := coll.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		value.Release(coll)
		ctx.Push(value.NewBool(false))
		return 0
	}

	var result *value.Value
	switch coll.Type {
	case value.List, value.Tuple:
		result = value.Retain(coll.Items()[i])
	case value.String, value.Symbol:
		result = value.NewString(coll.Bytes()[i : i+1])
	}
	value.Release(coll)
	ctx.Push(result)
	return 0
}

// typeOp pushes a data Symbol naming the popped value's variant.
func typeOp(ctx *interp.Context) int {
	if !ctx.CheckStackLen(1) {
		return 1
	}
	v := ctx.Pop()
	name := v.Type.String()
	value.Release(v)
	ctx.Push(value.NewSymbol([]byte(name), false))
	return 0
}

func registerCollections(ctx *interp.Context) {
	ctx.DefNative("len", lenOp)
	ctx.DefNative("sort", sortOp)
	ctx.DefNative("->", appendTail)
	ctx.DefNative("<-", appendHead)
	ctx.DefNative("get@", getAt)
	ctx.DefNative("type", typeOp)
}
