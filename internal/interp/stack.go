package interp

import (
	"strconv"
	"strings"

	"github.com/aocla-lang/aocla/internal/value"
)

// Stack is a grow-on-demand operand stack. push takes ownership of the
// handle it is given (no refcount change); pop transfers ownership to the
// caller, who must Release it (spec.md §4.3).
type Stack struct {
	items []*value.Value
}

func (s *Stack) push(v *value.Value) {
	s.items = append(s.items, v)
}

func (s *Stack) pop() *value.Value {
	if len(s.items) == 0 {
		return nil
	}
	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = nil
	s.items = s.items[:n]
	return v
}

// peek returns the element `offset` positions from the top (0 = top)
// without transferring ownership; nil if out of range.
func (s *Stack) peek(offset int) *value.Value {
	idx := len(s.items) - 1 - offset
	if idx < 0 || idx >= len(s.items) {
		return nil
	}
	return s.items[idx]
}

func (s *Stack) Len() int { return len(s.items) }

// popN removes and returns the top n values (bottom-to-top order),
// transferring ownership to the caller. Caller must ensure Len() >= n.
func (s *Stack) popN(n int) []*value.Value {
	base := len(s.items) - n
	captured := make([]*value.Value, n)
	copy(captured, s.items[base:])
	for i := base; i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = s.items[:base]
	return captured
}

// show renders the top `max` elements (most recent last), space-separated,
// each in repr+color form, prefixing "[... N more object ...]" when the
// stack holds more than that (spec.md §4.3 Stack show).
func (s *Stack) show(max int, color bool) string {
	n := len(s.items)
	start := n - max
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	if n > max {
		b.WriteString("[... ")
		b.WriteString(strconv.Itoa(start))
		b.WriteString(" more object ...]")
	}
	for i := start; i < n; i++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value.Format(s.items[i], true, color))
	}
	return b.String()
}
