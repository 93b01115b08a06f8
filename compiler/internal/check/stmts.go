package check

import (
	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
)

// checkStmt dispatches over the closed statement set. A nil statement is
// an absent optional child and checks as empty.
func (a *Analyzer) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case nil:
	case *ast.Block:
		a.enterFrame()
		for _, inner := range st.Stmts {
			a.checkStmt(inner)
		}
		a.leaveFrame()
	case *ast.VarDecl:
		if a.current.containsLocal(st.Name) {
			// keep the first binding; the redeclaration does not overwrite
			a.record(VariableRedefined, st.Name, st.Pos)
		} else {
			a.current.declare(st.Name, st.Type)
		}
		// the initializer is checked after the declaration attempt, so
		// it sees the name it declares (and, on error, the old binding)
		if st.Init != nil {
			a.checkExpr(st.Init)
		}
	case *ast.Assign:
		a.checkExpr(st.Value)
		// assignment never declares its target
		if _, ok := a.current.resolve(st.Name); !ok {
			a.record(UndeclaredVariable, st.Name, st.Pos)
		}
	case *ast.Return:
		if st.Value != nil {
			a.checkExpr(st.Value)
		}
	case *ast.If:
		// the If introduces no frame; a Block branch opens its own
		a.checkExpr(st.Cond)
		a.checkStmt(st.Then)
		a.checkStmt(st.Else)
	case *ast.While:
		a.checkExpr(st.Cond)
		a.checkStmt(st.Body)
	case *ast.For:
		// one frame spans header and body: an Init-declared variable is
		// visible to Cond/Post/Body and gone after the loop
		a.enterFrame()
		a.checkStmt(st.Init)
		if st.Cond != nil {
			a.checkExpr(st.Cond)
		}
		a.checkStmt(st.Post)
		a.checkStmt(st.Body)
		a.leaveFrame()
	case *ast.ExprStmt:
		a.checkExpr(st.X)
	}
}
