package ast

import (
	"github.com/hassanbabar78/scope-analysis/compiler/internal/diag"
)

/*** NODES ***/

// The node set is closed: the analyzer type-switches over exactly these
// kinds and nothing else is a legal tree. Trees are inputs only; the
// analyzer never mutates or retains them.

type Node interface{ node() }

// Program is one translation unit: its global variables and functions,
// in file order. Order matters only for error reporting — resolution of
// top-level names is order-independent.
type Program struct {
	Globals []*VarDecl
	Funcs   []*FuncDecl
}

func (*Program) node() {}

// FuncDecl declares a function. Body is usually a *Block and may be nil
// for a bare declaration.
type FuncDecl struct {
	Name   string
	Ret    string // textual type tag, e.g. "int"
	Params []Param
	Body   Stmt
	Pos    diag.Pos
}

func (*FuncDecl) node() {}

type Param struct {
	Name string
	Type string
}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

// VarDecl declares a variable. It serves both as a global declaration
// (Program.Globals) and as a statement inside a body. Init may be nil.
type VarDecl struct {
	Name string
	Type string
	Init Expr
	Pos  diag.Pos
}

func (*VarDecl) node() {}
func (*VarDecl) stmt() {}

// Block is a `{ ... }` statement sequence with its own scope.
type Block struct {
	Stmts []Stmt
}

func (*Block) node() {}
func (*Block) stmt() {}

// Assign writes an expression into an already-declared name; it never
// declares the target.
type Assign struct {
	Name  string
	Value Expr
	Pos   diag.Pos
}

func (*Assign) node() {}
func (*Assign) stmt() {}

type Return struct {
	Value Expr // nil for a bare return
}

func (*Return) node() {}
func (*Return) stmt() {}

// If carries its branches as statements; only a *Block branch opens a
// scope, the If itself does not.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (*If) node() {}
func (*If) stmt() {}

type While struct {
	Cond Expr
	Body Stmt
}

func (*While) node() {}
func (*While) stmt() {}

// For opens one scope spanning Init/Cond/Post and the body, so an
// Init-declared variable is visible through the whole loop but not after
// it. All of Init, Cond, Post are optional.
type For struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body Stmt
}

func (*For) node() {}
func (*For) stmt() {}

// ExprStmt wraps an expression used in statement position, e.g. a bare
// call.
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) node() {}
func (*ExprStmt) stmt() {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

// Call names a function directly; callees are not expressions in this
// language (no function values).
type Call struct {
	Name string
	Args []Expr
	Pos  diag.Pos
}

func (*Call) node() {}
func (*Call) expr() {}

// NameRef is an identifier used as a value.
type NameRef struct {
	Name string
	Pos  diag.Pos
}

func (*NameRef) node() {}
func (*NameRef) expr() {}

// Literal is always well formed; the analyzer never inspects it.
type Literal struct {
	Type  string // e.g. "int", "float"
	Value string // source text, e.g. "100"
}

func (*Literal) node() {}
func (*Literal) expr() {}

type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryOp) node() {}
func (*BinaryOp) expr() {}
