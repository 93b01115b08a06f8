package check

import (
	"io"
	"os"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/diag"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/term"
)

// Analyzer verifies lexical-scope correctness over a program tree: every
// referenced variable and called function must be declared in a visible
// scope, and no name may be declared twice in the same scope. Shadowing
// across nested scopes is legal.
//
// An Analyzer owns one live frame chain and one error list, so it is
// single-use and not safe for concurrent Check calls; construct a fresh
// one per run.
type Analyzer struct {
	global  *frame
	current *frame
	errs    []Record
	diagW   io.Writer
}

// Option configures a new Analyzer.
type Option func(*Analyzer)

// WithDiagnostics redirects the one-line message emitted as each error
// is detected. The default sink is stderr; pass io.Discard to silence.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Analyzer) { a.diagW = w }
}

// New returns an Analyzer with just the global frame on its chain.
func New(opts ...Option) *Analyzer {
	g := newFrame(nil)
	a := &Analyzer{global: g, current: g, diagW: os.Stderr}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Check runs the full analysis over program and reports whether it
// passed with zero errors. No error aborts the run: every detectable
// violation in the tree is collected in one pass. The three phases run
// in strict order so that declaration order of top-level names never
// matters for resolution.
func (a *Analyzer) Check(program *ast.Program) bool {
	// phase 1: register every global variable and function name in the
	// global frame, making forward references legal everywhere
	for _, g := range program.Globals {
		if !a.global.declare(g.Name, g.Type) {
			a.record(VariableRedefined, g.Name, g.Pos)
		}
	}
	for _, fn := range program.Funcs {
		if !a.global.declare(fn.Name, funcTag) {
			a.record(FunctionRedefined, fn.Name, fn.Pos)
		}
	}

	// phase 2: each function body under its own frame; bodies interact
	// only through the shared global frame
	for _, fn := range program.Funcs {
		a.checkFunc(fn)
	}

	// phase 3: global initializers, against the global frame alone, so
	// they may reference any global or function but never a local
	for _, g := range program.Globals {
		if g.Init != nil {
			a.checkExpr(g.Init)
		}
	}

	return len(a.errs) == 0
}

// Errors returns the accumulated records in discovery order.
func (a *Analyzer) Errors() []Record { return a.errs }

// ErrorCount returns how many errors the run recorded.
func (a *Analyzer) ErrorCount() int { return len(a.errs) }

// Passed reports whether the last Check recorded zero errors.
func (a *Analyzer) Passed() bool { return len(a.errs) == 0 }

func (a *Analyzer) checkFunc(fn *ast.FuncDecl) {
	a.enterFrame()
	for _, p := range fn.Params {
		// parameters shadow globals freely; only a duplicate parameter
		// name collides
		if !a.current.declare(p.Name, p.Type) {
			a.record(VariableRedefined, p.Name, fn.Pos)
		}
	}
	if fn.Body != nil {
		a.checkStmt(fn.Body)
	}
	a.leaveFrame()
}

func (a *Analyzer) enterFrame() { a.current = newFrame(a.current) }
func (a *Analyzer) leaveFrame() { a.current = a.current.parent }

// record appends the error and emits its one-line message to the
// diagnostic sink at detection time.
func (a *Analyzer) record(kind ErrorKind, name string, pos diag.Pos) {
	r := Record{Kind: kind, Name: name, Pos: pos}
	a.errs = append(a.errs, r)
	term.Wprintf(a.diagW, "%s\n", r.Message())
}
