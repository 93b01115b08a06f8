package main

import (
	"os"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/build"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/check"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/term"
)

/* ---------- check ---------- */

func cmdCheck(args []string) int {
	if len(args) != 1 {
		term.Eprintln("usage: scopec check <program.json>")
		return 2
	}
	prog, err := build.LoadProgram(args[0])
	if err != nil {
		term.Eprintf("%v\n", err)
		return 2
	}

	a := check.New(check.WithDiagnostics(os.Stderr))
	if a.Check(prog) {
		term.Printf("ok: %d global(s), %d function(s), no scope errors\n",
			len(prog.Globals), len(prog.Funcs))
		return 0
	}
	term.Eprintf("%d scope error(s)\n", a.ErrorCount())
	return 1
}
