package main

import (
	"io"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/check"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/term"
)

/* ---------- demo ---------- */

// cmdDemo analyzes the built-in showcase program: valid declarations and
// control flow next to one of each scope error. Everything prints to out
// so the test can capture it.
func cmdDemo(out io.Writer) int {
	prog := demoProgram()
	term.Wprintf(out, "%s\n", ast.DumpProgram(prog))

	a := check.New(check.WithDiagnostics(out))
	a.Check(prog)
	if a.Passed() {
		term.Wprintf(out, "\nresult: pass (no scope errors)\n")
		return 0
	}
	term.Wprintf(out, "\nresult: fail (%d scope errors)\n", a.ErrorCount())
	return 1
}

// demoProgram hand-assembles the tree for roughly this source:
//
//	int MAX_SIZE = 100;
//	float PI = 3.14;
//	int result = unknown_var * 2;          // undeclared variable
//	int value = unknown_func();            // undefined function
//
//	int calculate(int a, int b) { return a * b; }
//	int calculate() { return 0; }          // function redefined
//	int main() { int x = 5; int y = calculate(x, 10); return y; }
//	void test_redefinition() { int x = 5; int x = 10; }   // variable redefined
//	int test_shadowing() { int MAX_SIZE = 1; return MAX_SIZE; }
//	int test_control_flow(int n) { ... if/while/for ... }
func demoProgram() *ast.Program {
	intLit := func(v string) *ast.Literal { return &ast.Literal{Type: "int", Value: v} }
	name := func(n string) *ast.NameRef { return &ast.NameRef{Name: n} }

	return &ast.Program{
		Globals: []*ast.VarDecl{
			{Name: "MAX_SIZE", Type: "int", Init: intLit("100")},
			{Name: "PI", Type: "float", Init: &ast.Literal{Type: "float", Value: "3.14"}},
			{Name: "result", Type: "int", Init: &ast.BinaryOp{
				Op: "*", Left: name("unknown_var"), Right: intLit("2"),
			}},
			{Name: "value", Type: "int", Init: &ast.Call{Name: "unknown_func"}},
		},
		Funcs: []*ast.FuncDecl{
			{
				Name: "calculate", Ret: "int",
				Params: []ast.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.Return{Value: &ast.BinaryOp{Op: "*", Left: name("a"), Right: name("b")}},
				}},
			},
			{
				Name: "calculate", Ret: "int",
				Body: &ast.Block{Stmts: []ast.Stmt{&ast.Return{Value: intLit("0")}}},
			},
			{
				Name: "main", Ret: "int",
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.VarDecl{Name: "x", Type: "int", Init: intLit("5")},
					&ast.VarDecl{Name: "y", Type: "int", Init: &ast.Call{
						Name: "calculate",
						Args: []ast.Expr{name("x"), intLit("10")},
					}},
					&ast.Return{Value: name("y")},
				}},
			},
			{
				Name: "test_redefinition", Ret: "void",
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.VarDecl{Name: "x", Type: "int", Init: intLit("5")},
					&ast.VarDecl{Name: "x", Type: "int", Init: intLit("10")},
				}},
			},
			{
				Name: "test_shadowing", Ret: "int",
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.VarDecl{Name: "MAX_SIZE", Type: "int", Init: intLit("1")},
					&ast.Return{Value: name("MAX_SIZE")},
				}},
			},
			{
				Name: "test_control_flow", Ret: "int",
				Params: []ast.Param{{Name: "n", Type: "int"}},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.If{
						Cond: &ast.BinaryOp{Op: "<", Left: name("n"), Right: name("MAX_SIZE")},
						Then: &ast.Block{Stmts: []ast.Stmt{
							&ast.VarDecl{Name: "m", Type: "int", Init: name("n")},
						}},
						Else: &ast.Block{Stmts: []ast.Stmt{
							&ast.Assign{Name: "n", Value: intLit("0")},
						}},
					},
					&ast.While{
						Cond: &ast.BinaryOp{Op: ">", Left: name("n"), Right: intLit("0")},
						Body: &ast.Block{Stmts: []ast.Stmt{
							&ast.Assign{Name: "n", Value: &ast.BinaryOp{
								Op: "-", Left: name("n"), Right: intLit("1"),
							}},
						}},
					},
					&ast.For{
						Init: &ast.VarDecl{Name: "i", Type: "int", Init: intLit("0")},
						Cond: &ast.BinaryOp{Op: "<", Left: name("i"), Right: name("n")},
						Post: &ast.Assign{Name: "i", Value: &ast.BinaryOp{
							Op: "+", Left: name("i"), Right: intLit("1"),
						}},
						Body: &ast.Block{Stmts: []ast.Stmt{
							&ast.ExprStmt{X: &ast.Call{
								Name: "calculate",
								Args: []ast.Expr{name("i"), name("n")},
							}},
						}},
					},
					&ast.Return{Value: name("n")},
				}},
			},
		},
	}
}
