package main

import (
	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/build"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/term"
)

/* ---------- dump ---------- */

func cmdDump(args []string) int {
	if len(args) != 1 {
		term.Eprintln("usage: scopec dump <program.json>")
		return 2
	}
	prog, err := build.LoadProgram(args[0])
	if err != nil {
		term.Eprintf("%v\n", err)
		return 2
	}
	term.Printf("%s", ast.DumpProgram(prog))
	return 0
}
