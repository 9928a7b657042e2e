package builtins

import "github.com/aocla-lang/aocla/internal/interp"

// bootstrapDef pairs a procedure name with its Aocla source, a List
// literal read through DefFromText exactly as the REPL would read one
// typed at the prompt.
type bootstrapDef struct {
	name string
	src  string
}

// bootstrapSource holds every procedure implemented in Aocla itself rather
// than as a Go native (spec.md §4.6 "Bootstrap library"), plus `dip`
// (SPEC_FULL.md §10.1), which original_source/aocla.c's callers hand-rolled
// inline every time they needed to preserve a value underneath a block.
var bootstrapSource = []bootstrapDef{
	{"dup", `[ (x) $x $x ]`},
	{"swap", `[ (x y) $y $x ]`},
	{"drop", `[ (_) ]`},
	{"map", `[ (l f) $l len (e) 0 (j) [] [ $j $e < ] [ $l $j get@ $f upeval swap -> $j 1 + (j) ] while ]`},
	{"foreach", `[ (l f) $l len (e) 0 (j) [ $j $e < ] [ $l $j get@ $f upeval $j 1 + (j) ] while ]`},
	{"first", `[ 0 get@ ]`},
	{"rest", `[ #t (f) [] (n) [ [ $f ] [ #f (f) drop ] [ $n -> (n) ] ifelse ] foreach $n ]`},
	{"cat", `[ (a b) $b [ $a -> (a) ] foreach $a ]`},
	{"dip", `[ (b) (v) $b eval $v ]`},
}

// loadBootstrap parses and defines every bootstrap procedure, in order
// (later ones may call earlier ones, e.g. rest calls foreach).
func loadBootstrap(ctx *interp.Context) error {
	for _, d := range bootstrapSource {
		if err := ctx.DefFromText(d.name, []byte(d.src)); err != nil {
			return err
		}
	}
	return nil
}

// Register installs every native operation and the bootstrap library into
// ctx (spec.md §4.6). Call this once on a freshly-constructed
// interp.Context before evaluating any user program.
func Register(ctx *interp.Context) error {
	registerArith(ctx)
	registerCompare(ctx)
	registerLogic(ctx)
	registerCollections(ctx)
	registerControl(ctx)
	registerIO(ctx)
	return loadBootstrap(ctx)
}
