// Package replio is the REPL/file-run glue: reading lines, driving color
// detection, writing the history file, and running whole scripts
// (SPEC_FULL.md §12). It owns no interpreter semantics of its own — every
// line or file is just text handed to internal/parser and internal/interp.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/aocla-lang/aocla/internal/config"
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/parser"
)

// ResolveColor turns cfg.Color ("auto"/"always"/"never") into a concrete
// bool by checking whether out is a real terminal when set to "auto"
// (SPEC_FULL.md §4, teacher's internal/evaluator/builtins_term.go pattern).
func ResolveColor(cfg *config.Config, out *os.File) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}

// Banner writes a one-line summary: the total number of registered
// procedures (native ops and bootstrap definitions counted together) and
// the session ID (SPEC_FULL.md §4, §12). It is printed by the --stats
// flag; REPL does not print it.
func Banner(ctx *interp.Context, out io.Writer) {
	fmt.Fprintf(out, "aocla — %s procedures loaded (session %s)\n",
		humanize.Comma(int64(ctx.Procs.Len())), ctx.SessionID)
}

// REPL reads one line at a time from in, evaluates it, and prints the top
// of the stack or the error, resuming after a failure (spec.md §6, §7). It
// returns when in reaches EOF.
func REPL(ctx *interp.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	color := ResolveColor(cfg, os.Stdout)
	ctx.Color = color
	ctx.StackPreview = cfg.StackPreview

	var history *os.File
	if cfg.HistoryFile != "" {
		if f, err := os.OpenFile(config.ExpandHome(cfg.HistoryFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			history = f
			defer history.Close()
			fmt.Fprintf(history, "# session %s\n", ctx.SessionID)
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "aocla> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if history != nil {
			fmt.Fprintln(history, line)
		}

		prog, err := parser.ParseProgram([]byte(line))
		if err != nil {
			fmt.Fprintf(out, "Parse error: %v\n", err)
			continue
		}
		ctx.ClearErr()
		if code := ctx.Eval(prog); code != 0 {
			fmt.Fprintf(out, "Runtime error: %v\n", ctx.Err())
			continue
		}
		fmt.Fprintln(out, ctx.ShowStack())
	}
}

// RunFile parses path as a whole program, pushes argv (each parsed as a
// single object per spec.md §6) onto the stack ahead of it, and evaluates
// it. It returns the process exit code: 0 on success, 1 on parse or
// runtime failure.
func RunFile(ctx *interp.Context, path string, argv []string, out io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "Error reading %s: %v\n", path, err)
		return 1
	}
	for _, a := range argv {
		v, _, err := parser.ParseObject([]byte(a))
		if err != nil {
			fmt.Fprintf(out, "Parse error in argument %q: %v\n", a, err)
			return 1
		}
		ctx.Push(v)
	}
	prog, err := parser.ParseProgram(src)
	if err != nil {
		fmt.Fprintf(out, "Parse error: %v\n", err)
		return 1
	}
	if code := ctx.Eval(prog); code != 0 {
		fmt.Fprintf(out, "Runtime error: %v\n", ctx.Err())
		return 1
	}
	return 0
}
