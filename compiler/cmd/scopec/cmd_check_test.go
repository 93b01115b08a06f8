package main

import (
	"path/filepath"
	"testing"
)

func TestCmdCheckExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"pass", []string{filepath.Join("testdata", "valid.json")}, 0},
		{"fail", []string{filepath.Join("testdata", "redef.json")}, 1},
		{"missing_file", []string{filepath.Join("testdata", "nope.json")}, 2},
		{"no_args", nil, 2},
		{"too_many_args", []string{"a.json", "b.json"}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cmdCheck(c.args); got != c.want {
				t.Fatalf("cmdCheck(%v) = %d, want %d", c.args, got, c.want)
			}
		})
	}
}

func TestCmdDumpExitCodes(t *testing.T) {
	if got := cmdDump([]string{filepath.Join("testdata", "valid.json")}); got != 0 {
		t.Fatalf("dump valid = %d, want 0", got)
	}
	if got := cmdDump(nil); got != 2 {
		t.Fatalf("dump no args = %d, want 2", got)
	}
}
