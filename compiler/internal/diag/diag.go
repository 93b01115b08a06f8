package diag

import "fmt"

// Pos marks a 1-based line/column location in a source file. The zero
// value means the position is unknown, which is common for trees that
// were assembled by hand rather than parsed.
type Pos struct{ Line, Col int }

// Known reports whether p carries a real location.
func (p Pos) Known() bool { return p.Line > 0 }

// Diagnostic is an analyzer message with an optional position.
type Diagnostic struct {
	Pos Pos
	Msg string
}

func (d Diagnostic) Error() string {
	if !d.Pos.Known() {
		return d.Msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Col, d.Msg)
}
