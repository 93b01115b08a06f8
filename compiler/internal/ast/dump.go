package ast

import (
	"fmt"
	"strings"
)

/*** DUMP (pretty outline for CLI) ***/

// DumpProgram renders a C-like outline of the tree, one construct per
// line. It is for humans inspecting input programs, not a serializer.
func DumpProgram(p *Program) string {
	var b strings.Builder
	for _, g := range p.Globals {
		b.WriteString(varString(g))
		b.WriteString("\n")
	}
	for _, fn := range p.Funcs {
		fmt.Fprintf(&b, "\n%s %s(", fn.Ret, fn.Name)
		for i, pr := range fn.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s %s", pr.Type, pr.Name)
		}
		b.WriteString(")")
		if fn.Body == nil {
			b.WriteString(";\n")
			continue
		}
		b.WriteString("\n")
		writeStmt(&b, fn.Body, 0)
	}
	return b.String()
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	ind := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case *Block:
		fmt.Fprintf(b, "%s{\n", ind)
		for _, inner := range st.Stmts {
			writeStmt(b, inner, depth+1)
		}
		fmt.Fprintf(b, "%s}\n", ind)
	case *VarDecl:
		fmt.Fprintf(b, "%s%s\n", ind, varString(st))
	case *Assign:
		fmt.Fprintf(b, "%s%s = %s\n", ind, st.Name, exprString(st.Value))
	case *Return:
		if st.Value == nil {
			fmt.Fprintf(b, "%sreturn\n", ind)
		} else {
			fmt.Fprintf(b, "%sreturn %s\n", ind, exprString(st.Value))
		}
	case *If:
		fmt.Fprintf(b, "%sif %s\n", ind, exprString(st.Cond))
		writeStmt(b, st.Then, depth+1)
		if st.Else != nil {
			fmt.Fprintf(b, "%selse\n", ind)
			writeStmt(b, st.Else, depth+1)
		}
	case *While:
		fmt.Fprintf(b, "%swhile %s\n", ind, exprString(st.Cond))
		writeStmt(b, st.Body, depth+1)
	case *For:
		fmt.Fprintf(b, "%sfor %s; %s; %s\n",
			ind, optStmtString(st.Init), optExprString(st.Cond), optStmtString(st.Post))
		writeStmt(b, st.Body, depth+1)
	case *ExprStmt:
		fmt.Fprintf(b, "%s%s\n", ind, exprString(st.X))
	}
}

func varString(v *VarDecl) string {
	if v.Init == nil {
		return fmt.Sprintf("%s %s", v.Type, v.Name)
	}
	return fmt.Sprintf("%s %s = %s", v.Type, v.Name, exprString(v.Init))
}

// optStmtString renders a for-header slot; only the statement kinds that
// fit on one line show up there.
func optStmtString(s Stmt) string {
	switch st := s.(type) {
	case nil:
		return ""
	case *VarDecl:
		return varString(st)
	case *Assign:
		return st.Name + " = " + exprString(st.Value)
	case *ExprStmt:
		return exprString(st.X)
	default:
		return "…"
	}
}

func optExprString(e Expr) string {
	if e == nil {
		return ""
	}
	return exprString(e)
}

func exprString(e Expr) string {
	switch v := e.(type) {
	case *NameRef:
		return v.Name
	case *Literal:
		return v.Value
	case *Call:
		var parts []string
		for _, a := range v.Args {
			parts = append(parts, exprString(a))
		}
		return v.Name + "(" + strings.Join(parts, ", ") + ")"
	case *BinaryOp:
		return "(" + exprString(v.Left) + " " + v.Op + " " + exprString(v.Right) + ")"
	default:
		return "<expr>"
	}
}
