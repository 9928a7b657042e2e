package interp

import "github.com/aocla-lang/aocla/internal/value"

// numLocals is the width of a frame's locals table: one slot per possible
// byte value, addressed by a symbol name's first byte (spec.md §3, §4.3).
const numLocals = 256

// Frame is a stack frame: a locals table, the procedure currently
// executing in it (nil at the top level), the line being executed, and a
// link to the enclosing frame (for back-traces and upeval).
//
// Aocla frames are single-owner (spec.md §5 explicitly scopes out
// concurrency), so — unlike the teacher's evaluator.Environment, which
// guards its scope map with a sync.RWMutex for goroutine-safe closures —
// this has no locking. Adding one here would guard against a caller that
// the spec says does not exist (see DESIGN.md).
type Frame struct {
	locals [numLocals]*value.Value
	proc   *Procedure
	line   int
	prev   *Frame
}

// newFrame creates a frame linked to prev, with zeroed locals and no
// current procedure (spec.md §4.3 newStackFrame).
func newFrame(prev *Frame) *Frame {
	return &Frame{prev: prev}
}

// free releases every local held by the frame (spec.md §4.3
// freeStackFrame).
func (f *Frame) free() {
	for i := range f.locals {
		value.Release(f.locals[i])
		f.locals[i] = nil
	}
}

// setLocal releases whatever was bound at idx and stores v, taking
// ownership (spec.md §4.4 Tuple-capture).
func (f *Frame) setLocal(idx byte, v *value.Value) {
	value.Release(f.locals[idx])
	f.locals[idx] = v
}

func (f *Frame) local(idx byte) *value.Value { return f.locals[idx] }

// Prev returns the enclosing frame, or nil at the top level. Exported for
// upeval (spec.md §4.6), the one operation allowed to retarget a frame
// other than the current one.
func (f *Frame) Prev() *Frame { return f.prev }
