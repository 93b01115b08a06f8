package main

import "github.com/hassanbabar78/scope-analysis/compiler/internal/term"

func usage() {
	term.Eprintln("scopec — lexical scope analyzer")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  scopec <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                 Print version")
	term.Eprintln("  help                    Show this help")
	term.Eprintln("  check <program.json>    Analyze a serialized program tree; exit 0 on pass, 1 on fail")
	term.Eprintln("  dump <program.json>     Print the program's AST outline")
	term.Eprintln("  demo                    Analyze the built-in showcase program")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - Programs are kind-tagged JSON trees; scopec does not parse source text.")
	term.Eprintln("  - check prints one line per scope error (codes SCE0001..SCE0004) to stderr.")
}
