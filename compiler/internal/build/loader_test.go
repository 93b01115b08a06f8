package build

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/check"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/diag"
)

func TestLoadProgram(t *testing.T) {
	p, err := LoadProgram(filepath.Join("testdata", "calc.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &ast.Program{
		Globals: []*ast.VarDecl{
			{
				Name: "MAX_SIZE", Type: "int",
				Init: &ast.Literal{Type: "int", Value: "100"},
				Pos:  diag.Pos{Line: 1, Col: 1},
			},
		},
		Funcs: []*ast.FuncDecl{
			{
				Name: "calculate", Ret: "int",
				Params: []ast.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
				Pos:    diag.Pos{Line: 3, Col: 1},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.Return{Value: &ast.BinaryOp{
						Op:    "*",
						Left:  &ast.NameRef{Name: "a", Pos: diag.Pos{Line: 4, Col: 10}},
						Right: &ast.NameRef{Name: "b", Pos: diag.Pos{Line: 4, Col: 14}},
					}},
				}},
			},
			{
				Name: "main", Ret: "int",
				Pos: diag.Pos{Line: 7, Col: 1},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.VarDecl{
						Name: "x", Type: "int",
						Init: &ast.Literal{Type: "int", Value: "5"},
						Pos:  diag.Pos{Line: 8, Col: 3},
					},
					&ast.VarDecl{
						Name: "y", Type: "int",
						Pos: diag.Pos{Line: 9, Col: 3},
						Init: &ast.Call{
							Name: "calculate",
							Pos:  diag.Pos{Line: 9, Col: 11},
							Args: []ast.Expr{
								&ast.NameRef{Name: "x", Pos: diag.Pos{Line: 9, Col: 21}},
								&ast.Literal{Type: "int", Value: "10"},
							},
						},
					},
					&ast.Return{Value: &ast.NameRef{Name: "y", Pos: diag.Pos{Line: 10, Col: 10}}},
				}},
			},
		},
	}
	if diff := deep.Equal(p, want); diff != nil {
		t.Fatal(diff)
	}
}

// A loaded tree must be analyzable as-is.
func TestLoadedProgramChecks(t *testing.T) {
	p, err := LoadProgram(filepath.Join("testdata", "calc.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := check.New(check.WithDiagnostics(io.Discard))
	if !a.Check(p) {
		t.Fatalf("fixture should pass, got %v", a.Errors())
	}
}

func TestUnknownStatementKind(t *testing.T) {
	_, err := LoadProgram(filepath.Join("testdata", "broken.json"))
	if err == nil {
		t.Fatal("want decode error for unknown kind")
	}
	if !strings.Contains(err.Error(), `unknown statement kind "switch"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"not_json", `{`, "decode program"},
		{"missing_kind", `{"funcs":[{"name":"f","body":{"stmts":[]}}]}`, "without a kind"},
		{"nameless_global", `{"globals":[{"type":"int"}]}`, "without a name"},
		{"nameless_call", `{"globals":[{"name":"g","type":"int","init":{"kind":"call"}}]}`, "without a callee name"},
		{"bad_expr_kind", `{"globals":[{"name":"g","type":"int","init":{"kind":"ternary"}}]}`, `unknown expression kind "ternary"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeProgram([]byte(c.src))
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestDecodeEmptyProgram(t *testing.T) {
	p, err := DecodeProgram([]byte(`{}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Globals) != 0 || len(p.Funcs) != 0 {
		t.Fatalf("empty program decoded as %+v", p)
	}
}
