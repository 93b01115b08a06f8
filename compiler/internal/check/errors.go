package check

import (
	"fmt"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/diag"
)

// ErrorKind classifies a scope violation.
type ErrorKind int

const (
	UndeclaredVariable ErrorKind = iota
	UndefinedFunction
	VariableRedefined
	FunctionRedefined
)

func (k ErrorKind) String() string {
	switch k {
	case UndeclaredVariable:
		return "undeclared variable"
	case UndefinedFunction:
		return "undefined function"
	case VariableRedefined:
		return "variable redefined"
	case FunctionRedefined:
		return "function redefined"
	default:
		return "unknown"
	}
}

// catalogKey is the kind's key in the embedded diag catalog.
func (k ErrorKind) catalogKey() string {
	switch k {
	case UndeclaredVariable:
		return "undeclared_variable"
	case UndefinedFunction:
		return "undefined_function"
	case VariableRedefined:
		return "variable_redefined"
	case FunctionRedefined:
		return "function_redefined"
	default:
		return ""
	}
}

func (k ErrorKind) fallbackID() string {
	return fmt.Sprintf("SCE%04d", int(k)+1)
}

// Record is one detected scope error: what went wrong and the offending
// name. Pos is the zero value when the tree carried no position.
type Record struct {
	Kind ErrorKind
	Name string
	Pos  diag.Pos
}

// Message renders the one-line diagnostic for this record, resolving the
// code and title through the diag catalog.
func (r Record) Message() string {
	ce := diag.MustLookup("scope", r.Kind.catalogKey(), r.Kind.fallbackID(), r.Kind.String())
	msg := fmt.Sprintf("%s: %s: %s", ce.ID, ce.Title, r.Name)
	if r.Pos.Known() {
		return diag.Diagnostic{Pos: r.Pos, Msg: msg}.Error()
	}
	return msg
}
