package interp

import (
	"fmt"
	"strings"
)

// Kind classifies a runtime failure (SPEC_FULL.md §13 / spec.md §7).
type Kind int

const (
	KindLookup Kind = iota
	KindArity
	KindType
	KindMismatch
	KindLocals
	KindGuest
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindArity:
		return "arity"
	case KindType:
		return "type"
	case KindMismatch:
		return "mismatch"
	case KindLocals:
		return "locals"
	case KindGuest:
		return "guest"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// EvalError is the structured error the interpreter context carries
// (spec.md §7): a kind, an offending-context string (symbol name, input
// prefix, or empty for NULL), and a dotted proc:line back-trace from
// innermost frame to outermost. Message and Context are stored as given;
// their length is not bounded or truncated.
type EvalError struct {
	Kind    Kind
	Message string
	Context string
	Trace   []TraceEntry
}

// TraceEntry names one stack frame in the back-trace.
type TraceEntry struct {
	Proc string // "unknown" for the top-level frame
	Line int
}

func (e *EvalError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Context != "" {
		b.WriteString(": ")
		b.WriteString(e.Context)
	}
	for _, t := range e.Trace {
		fmt.Fprintf(&b, " in %s:%d", t.Proc, t.Line)
	}
	return b.String()
}

// captureTrace walks frames from innermost (f) to outermost, rendering
// each as "<proc-name-or-unknown>:<line>" (spec.md §4.4 Return code).
func captureTrace(f *Frame) []TraceEntry {
	var trace []TraceEntry
	for fr := f; fr != nil; fr = fr.prev {
		name := "unknown"
		if fr.proc != nil {
			name = fr.proc.Name
		}
		trace = append(trace, TraceEntry{Proc: name, Line: fr.line})
	}
	return trace
}
