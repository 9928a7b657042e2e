// Command aocla is the Aocla CLI: run a script file with the remaining
// arguments pushed as pre-parsed values, or drop into a REPL when given no
// file (spec.md §6, SPEC_FULL.md §12).
package main

import (
	"fmt"
	"os"

	"github.com/aocla-lang/aocla/internal/builtins"
	"github.com/aocla-lang/aocla/internal/config"
	"github.com/aocla-lang/aocla/internal/interp"
	"github.com/aocla-lang/aocla/internal/replio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Load()
	ctx := interp.New()
	if err := builtins.Register(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "aocla: %v\n", err)
		return 1
	}

	for _, flag := range args {
		switch flag {
		case "--stats":
			replio.Banner(ctx, os.Stdout)
			return 0
		case "--session-id":
			fmt.Println(ctx.SessionID)
			return 0
		}
	}

	if err := loadPrelude(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aocla: prelude: %v\n", err)
		return 1
	}

	if len(args) == 0 {
		if err := replio.REPL(ctx, cfg, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "aocla: %v\n", err)
			return 1
		}
		return 0
	}

	return replio.RunFile(ctx, args[0], args[1:], os.Stdout)
}

// loadPrelude evaluates every file named in cfg.Prelude, in order, before
// the REPL or the requested script runs (SPEC_FULL.md §3.2).
func loadPrelude(ctx *interp.Context, cfg *config.Config) error {
	for _, p := range cfg.Prelude {
		if code := replio.RunFile(ctx, config.ExpandHome(p), nil, os.Stdout); code != 0 {
			return fmt.Errorf("%s", ctx.Err())
		}
	}
	return nil
}
