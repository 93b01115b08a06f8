package check

import (
	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
)

// checkExpr dispatches over the closed expression set. A nil expression
// is an absent optional child and checks as empty.
func (a *Analyzer) checkExpr(e ast.Expr) {
	switch v := e.(type) {
	case nil:
	case *ast.Call:
		// callees live in the global frame only, never the local chain,
		// and must carry the function tag — a global variable sharing
		// the name does not satisfy a call
		if t, ok := a.global.resolve(v.Name); !ok || t != funcTag {
			a.record(UndefinedFunction, v.Name, v.Pos)
		}
		for _, arg := range v.Args {
			a.checkExpr(arg)
		}
	case *ast.NameRef:
		if _, ok := a.current.resolve(v.Name); !ok {
			a.record(UndeclaredVariable, v.Name, v.Pos)
		}
	case *ast.BinaryOp:
		a.checkExpr(v.Left)
		a.checkExpr(v.Right)
	case *ast.Literal:
		// always well formed
	}
}
