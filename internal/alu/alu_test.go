package alu

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, src string) []Instruction {
	t.Helper()
	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestNegate(t *testing.T) {
	prog := mustParse(t, "inp x\nmul x -1\n")
	var m Machine
	m.Feed(7)
	if err := m.Run(prog); err != nil {
		t.Fatal(err)
	}
	if got := m.Regs[X]; got != -7 {
		t.Errorf("got x=%d; want -7", got)
	}
}

func TestTriple(t *testing.T) {
	prog := mustParse(t, "inp z\ninp x\nmul z 3\neql z x\n")
	for _, tt := range []struct {
		a, b int64
		want int64
	}{
		{2, 6, 1},
		{2, 5, 0},
		{0, 0, 1},
	} {
		var m Machine
		m.Feed(tt.a, tt.b)
		if err := m.Run(prog); err != nil {
			t.Fatal(err)
		}
		if got := m.Regs[Z]; got != tt.want {
			t.Errorf("(%d, %d): got z=%d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBinary(t *testing.T) {
	prog := mustParse(t, `inp w
add z w
mod z 2
div w 2
add y w
mod y 2
div w 2
add x w
mod x 2
div w 2
mod w 2
`)
	var m Machine
	m.Feed(11)
	if err := m.Run(prog); err != nil {
		t.Fatal(err)
	}
	want := [4]int64{1, 0, 1, 1}
	if m.Regs != want {
		t.Errorf("got %s; want w=1 x=0 y=1 z=1", &m)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"foo x 1",
		"add q 1",
		"add x",
		"inp x y",
		"mul x banana",
	} {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("Parse(%q): got nil error", src)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	src := "inp w\nadd x -12\nmul y z\neql x w"
	prog := mustParse(t, src)
	var lines []string
	for _, inst := range prog {
		lines = append(lines, inst.String())
	}
	if got := strings.Join(lines, "\n"); got != src {
		t.Errorf("got %q; want %q", got, src)
	}
}

func TestExecErrors(t *testing.T) {
	var m Machine
	if err := m.Run(mustParse(t, "inp w")); !errors.Is(err, ErrNoInput) {
		t.Errorf("inp with no input: got %v; want ErrNoInput", err)
	}
	if err := m.Run(mustParse(t, "div x 0")); !errors.Is(err, ErrDivZero) {
		t.Errorf("div by zero: got %v; want ErrDivZero", err)
	}
	if err := m.Run(mustParse(t, "add x -3\nmod x 2")); !errors.Is(err, ErrBadMod) {
		t.Errorf("mod of negative: got %v; want ErrBadMod", err)
	}
	if m.Regs[X] != -3 {
		t.Errorf("failed mod changed x to %d", m.Regs[X])
	}
}

func TestSplit(t *testing.T) {
	prog := mustParse(t, "add z 1\ninp w\nadd x w\ninp w\nmul x w")
	var got []int
	for _, chunk := range Split(prog) {
		got = append(got, len(chunk))
	}
	if diff := cmp.Diff([]int{1, 2, 2}, got); diff != "" {
		t.Errorf("chunk lengths (-want +got):\n%s", diff)
	}
}
