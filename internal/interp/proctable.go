package interp

import "github.com/aocla-lang/aocla/internal/value"

// NativeFunc is a built-in operation: uniform signature, acting on the
// interpreter Context, returning 0 on success or 1 on failure having
// already populated ctx's error (spec.md §4.5, §9 "Built-in handlers").
type NativeFunc func(ctx *Context) int

// Procedure binds a name to either a NativeFunc or a value.Value List to
// be evaluated as Aocla code — never both, never neither (spec.md §3).
type Procedure struct {
	Name   string
	Native NativeFunc
	List   *value.Value
}

// ProcTable is the name -> binding index. Lookup is by name; redefining an
// existing name replaces its binding in place rather than appending
// (spec.md §4.5). Order of insertion is preserved for introspection
// (e.g. the --stats CLI flag, SPEC_FULL.md §12).
type ProcTable struct {
	byName map[string]*Procedure
	order  []*Procedure
}

func newProcTable() *ProcTable {
	return &ProcTable{byName: make(map[string]*Procedure)}
}

func (t *ProcTable) lookup(name string) *Procedure {
	return t.byName[name]
}

// addNative binds name to a native operation, replacing any prior binding.
func (t *ProcTable) addNative(name string, fn NativeFunc) {
	if p, ok := t.byName[name]; ok {
		p.Native = fn
		p.List = nil
		return
	}
	p := &Procedure{Name: name, Native: fn}
	t.byName[name] = p
	t.order = append(t.order, p)
}

// addList binds name to a List to be evaluated as Aocla code (spec.md
// §4.6 def), replacing any prior binding and releasing its previous list.
func (t *ProcTable) addList(name string, list *value.Value) {
	if p, ok := t.byName[name]; ok {
		if p.List != nil {
			value.Release(p.List)
		}
		p.Native = nil
		p.List = list
		return
	}
	p := &Procedure{Name: name, List: list}
	t.byName[name] = p
	t.order = append(t.order, p)
}

// Names returns procedure names in insertion order.
func (t *ProcTable) Names() []string {
	names := make([]string, len(t.order))
	for i, p := range t.order {
		names[i] = p.Name
	}
	return names
}

func (t *ProcTable) Len() int { return len(t.order) }
