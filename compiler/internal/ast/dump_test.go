package ast

import (
	"strings"
	"testing"
)

func TestDumpProgram(t *testing.T) {
	p := &Program{
		Globals: []*VarDecl{
			{Name: "MAX_SIZE", Type: "int", Init: &Literal{Type: "int", Value: "100"}},
		},
		Funcs: []*FuncDecl{
			{
				Name: "calculate", Ret: "int",
				Params: []Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
				Body: &Block{Stmts: []Stmt{
					&Return{Value: &BinaryOp{Op: "*", Left: &NameRef{Name: "a"}, Right: &NameRef{Name: "b"}}},
				}},
			},
		},
	}

	out := DumpProgram(p)
	for _, want := range []string{
		"int MAX_SIZE = 100",
		"int calculate(int a, int b)",
		"return (a * b)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpForAndCall(t *testing.T) {
	p := &Program{
		Funcs: []*FuncDecl{
			{
				Name: "loop", Ret: "void",
				Body: &Block{Stmts: []Stmt{
					&For{
						Init: &VarDecl{Name: "i", Type: "int", Init: &Literal{Type: "int", Value: "0"}},
						Cond: &BinaryOp{Op: "<", Left: &NameRef{Name: "i"}, Right: &Literal{Type: "int", Value: "10"}},
						Post: &Assign{Name: "i", Value: &BinaryOp{Op: "+", Left: &NameRef{Name: "i"}, Right: &Literal{Type: "int", Value: "1"}}},
						Body: &Block{Stmts: []Stmt{
							&ExprStmt{X: &Call{Name: "emit", Args: []Expr{&NameRef{Name: "i"}}}},
						}},
					},
				}},
			},
		},
	}

	out := DumpProgram(p)
	if !strings.Contains(out, "for int i = 0; (i < 10); i = (i + 1)") {
		t.Errorf("for header not rendered:\n%s", out)
	}
	if !strings.Contains(out, "emit(i)") {
		t.Errorf("call not rendered:\n%s", out)
	}
}
