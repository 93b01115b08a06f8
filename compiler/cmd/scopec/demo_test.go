package main

import (
	"io"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/hassanbabar78/scope-analysis/compiler/internal/check"
)

func TestDemoProgramErrors(t *testing.T) {
	a := check.New(check.WithDiagnostics(io.Discard))
	if a.Check(demoProgram()) {
		t.Fatal("demo program should fail analysis")
	}

	var got []struct {
		Kind check.ErrorKind
		Name string
	}
	for _, r := range a.Errors() {
		got = append(got, struct {
			Kind check.ErrorKind
			Name string
		}{r.Kind, r.Name})
	}
	want := []struct {
		Kind check.ErrorKind
		Name string
	}{
		{check.FunctionRedefined, "calculate"},
		{check.VariableRedefined, "x"},
		{check.UndeclaredVariable, "unknown_var"},
		{check.UndefinedFunction, "unknown_func"},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestCmdDemoOutput(t *testing.T) {
	var out strings.Builder
	if code := cmdDemo(&out); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}

	text := out.String()
	for _, line := range []string{
		"SCE0004: function redefined: calculate",
		"SCE0003: variable redefined: x",
		"SCE0001: undeclared variable: unknown_var",
		"SCE0002: undefined function: unknown_func",
		"result: fail (4 scope errors)",
	} {
		if !strings.Contains(text, line) {
			t.Errorf("demo output missing %q:\n%s", line, text)
		}
	}
	if !strings.Contains(text, "int calculate(int a, int b)") {
		t.Errorf("demo output missing program outline:\n%s", text)
	}
}
