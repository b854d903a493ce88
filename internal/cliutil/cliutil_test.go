package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil || len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}

func TestInputs(t *testing.T) {
	got, err := Inputs(nil)
	if err != nil || len(got) != 1 || got[0] != "-" {
		t.Fatalf("default stdin: err=%v got=%v", err, got)
	}
	if _, err := Inputs([]string{"-", "x.fa", "-"}); err == nil {
		t.Fatalf("expected error for repeated stdin")
	}
	got, err = Inputs([]string{"x.fa"})
	if err != nil || len(got) != 1 || got[0] != "x.fa" {
		t.Fatalf("plain path: err=%v got=%v", err, got)
	}
}
