package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seafloor/puzzles/internal/alu"
)

func TestSession(t *testing.T) {
	var out bytes.Buffer
	r := &repl{out: &out}
	for _, line := range []string{
		":input 5 -2",
		"inp x",
		"",
		"inp y",
		"mul x y",
		":regs",
	} {
		quit, err := r.handle(line)
		if err != nil {
			t.Fatalf("%q: %s", line, err)
		}
		if quit {
			t.Fatalf("%q: unexpected quit", line)
		}
	}
	want := `2 value(s) queued
w=0 x=5 y=0 z=0
w=0 x=5 y=-2 z=0
w=0 x=-10 y=-2 z=0
w=0 x=-10 y=-2 z=0
`
	if got := out.String(); got != want {
		t.Errorf("got output\n%s\nwant\n%s", got, want)
	}
}

func TestErrors(t *testing.T) {
	r := &repl{out: new(bytes.Buffer)}
	if _, err := r.handle("inp w"); !errors.Is(err, alu.ErrNoInput) {
		t.Errorf("inp with empty queue: got %v", err)
	}
	for _, line := range []string{"frob x 1", ":input", ":input x", ":load", ":nope"} {
		if _, err := r.handle(line); err == nil {
			t.Errorf("%q: got nil error", line)
		}
	}
	if quit, _ := r.handle(":quit"); !quit {
		t.Error(":quit did not quit")
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.alu")
	if err := os.WriteFile(name, []byte("inp z\nmul z 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := &repl{out: &out}
	for _, line := range []string{":input 7", ":load " + name} {
		if _, err := r.handle(line); err != nil {
			t.Fatal(err)
		}
	}
	if r.m.Regs[alu.Z] != 21 {
		t.Errorf("got %s; want z=21", &r.m)
	}
	if !strings.Contains(out.String(), "ran 2 instructions") {
		t.Errorf("output %q missing instruction count", out.String())
	}
	if _, err := r.handle(":load " + filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("load of missing file: got nil error")
	}
	r.handle(":reset")
	if r.m.Regs != [4]int64{} || r.m.Pending() != 0 {
		t.Errorf("after reset: %s with %d pending", &r.m, r.m.Pending())
	}
}
