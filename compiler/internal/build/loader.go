// Package build loads serialized program trees for the CLI. Programs
// arrive as kind-tagged JSON objects; there is no source-text parser in
// this tool, the tree is the input format.
package build

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/ast"
	"github.com/hassanbabar78/scope-analysis/compiler/internal/diag"
)

// LoadProgram reads path and decodes it into a program tree.
func LoadProgram(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := DecodeProgram(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// DecodeProgram decodes one kind-tagged JSON program.
//
// Top level: {"globals": [...], "funcs": [...]}. Statement and
// expression nodes carry a "kind" discriminator: block, var, assign,
// return, if, while, for, expr / call, name, literal, binary. Optional
// children are simply omitted.
func DecodeProgram(data []byte) (*ast.Program, error) {
	var raw struct {
		Globals []rawVar  `json:"globals"`
		Funcs   []rawFunc `json:"funcs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}

	p := &ast.Program{}
	for i, g := range raw.Globals {
		v, err := g.decl()
		if err != nil {
			return nil, fmt.Errorf("global %d: %w", i, err)
		}
		p.Globals = append(p.Globals, v)
	}
	for i, f := range raw.Funcs {
		fn, err := f.decl()
		if err != nil {
			return nil, fmt.Errorf("func %d (%s): %w", i, f.Name, err)
		}
		p.Funcs = append(p.Funcs, fn)
	}
	return p, nil
}

type rawVar struct {
	Name string          `json:"name"`
	Type string          `json:"type"`
	Init json.RawMessage `json:"init,omitempty"`
	Line int             `json:"line,omitempty"`
	Col  int             `json:"col,omitempty"`
}

func (r rawVar) decl() (*ast.VarDecl, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("variable without a name")
	}
	init, err := decodeExpr(r.Init)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{
		Name: r.Name, Type: r.Type, Init: init,
		Pos: diag.Pos{Line: r.Line, Col: r.Col},
	}, nil
}

type rawFunc struct {
	Name   string          `json:"name"`
	Ret    string          `json:"ret"`
	Params []rawParam      `json:"params,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
	Line   int             `json:"line,omitempty"`
	Col    int             `json:"col,omitempty"`
}

type rawParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r rawFunc) decl() (*ast.FuncDecl, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("function without a name")
	}
	body, err := decodeStmt(r.Body)
	if err != nil {
		return nil, err
	}
	fn := &ast.FuncDecl{
		Name: r.Name, Ret: r.Ret, Body: body,
		Pos: diag.Pos{Line: r.Line, Col: r.Col},
	}
	for _, p := range r.Params {
		fn.Params = append(fn.Params, ast.Param{Name: p.Name, Type: p.Type})
	}
	return fn, nil
}

// rawNode is the union of every node shape; kind picks the fields that
// matter.
type rawNode struct {
	Kind string `json:"kind"`

	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
	Op   string `json:"op,omitempty"`
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`

	Value json.RawMessage   `json:"value,omitempty"`
	Init  json.RawMessage   `json:"init,omitempty"`
	Cond  json.RawMessage   `json:"cond,omitempty"`
	Post  json.RawMessage   `json:"post,omitempty"`
	Body  json.RawMessage   `json:"body,omitempty"`
	Then  json.RawMessage   `json:"then,omitempty"`
	Else  json.RawMessage   `json:"else,omitempty"`
	Left  json.RawMessage   `json:"left,omitempty"`
	Right json.RawMessage   `json:"right,omitempty"`
	Stmts []json.RawMessage `json:"stmts,omitempty"`
	Args  []json.RawMessage `json:"args,omitempty"`
}

func (r rawNode) pos() diag.Pos { return diag.Pos{Line: r.Line, Col: r.Col} }

func decodeStmt(data json.RawMessage) (ast.Stmt, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var n rawNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}
	switch n.Kind {
	case "block":
		b := &ast.Block{}
		for i, raw := range n.Stmts {
			s, err := decodeStmt(raw)
			if err != nil {
				return nil, fmt.Errorf("block stmt %d: %w", i, err)
			}
			b.Stmts = append(b.Stmts, s)
		}
		return b, nil
	case "var":
		v := rawVar{Name: n.Name, Type: n.Type, Init: n.Init, Line: n.Line, Col: n.Col}
		return v.decl()
	case "assign":
		if n.Name == "" {
			return nil, fmt.Errorf("assign without a target name")
		}
		value, err := decodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: n.Name, Value: value, Pos: n.pos()}, nil
	case "return":
		value, err := decodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: value}, nil
	case "if":
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeStmt(n.Else)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil
	case "while":
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.While{Cond: cond, Body: body}, nil
	case "for":
		init, err := decodeStmt(n.Init)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		post, err := decodeStmt(n.Post)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.For{Init: init, Cond: cond, Post: post, Body: body}, nil
	case "expr":
		x, err := decodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: x}, nil
	case "":
		return nil, fmt.Errorf("statement without a kind")
	default:
		return nil, fmt.Errorf("unknown statement kind %q", n.Kind)
	}
}

func decodeExpr(data json.RawMessage) (ast.Expr, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var n rawNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode expression: %w", err)
	}
	switch n.Kind {
	case "call":
		if n.Name == "" {
			return nil, fmt.Errorf("call without a callee name")
		}
		c := &ast.Call{Name: n.Name, Pos: n.pos()}
		for i, raw := range n.Args {
			arg, err := decodeExpr(raw)
			if err != nil {
				return nil, fmt.Errorf("arg %d of %s: %w", i, n.Name, err)
			}
			c.Args = append(c.Args, arg)
		}
		return c, nil
	case "name":
		if n.Name == "" {
			return nil, fmt.Errorf("name reference without a name")
		}
		return &ast.NameRef{Name: n.Name, Pos: n.pos()}, nil
	case "literal":
		return &ast.Literal{Type: n.Type, Value: n.Text}, nil
	case "binary":
		left, err := decodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: n.Op, Left: left, Right: right}, nil
	case "":
		return nil, fmt.Errorf("expression without a kind")
	default:
		return nil, fmt.Errorf("unknown expression kind %q", n.Kind)
	}
}
