package puzzle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	s := NewSet()
	for _, name := range []string{"10", "2", "1b", "1a", "25", "3"} {
		s.Register(name, nil)
	}
	want := []string{"1a", "1b", "2", "3", "10", "25"}
	if diff := cmp.Diff(want, s.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := NewSet()
	s.Register("1", nil)
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	s.Register("1", nil)
}

func TestLookupPadded(t *testing.T) {
	s := NewSet()
	s.Register("7", func(*Input) (Result, error) { return Answer(1, 2), nil })
	for _, name := range []string{"7", "07"} {
		if _, ok := s.Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := s.Lookup("8"); ok {
		t.Error("Lookup of unregistered day succeeded")
	}
}

func TestInputLines(t *testing.T) {
	in := NewInput([]byte("a\r\nb\n\nc\nd\n\n\n"))
	if diff := cmp.Diff([]string{"a", "b", "", "c", "d"}, in.Lines()); diff != "" {
		t.Errorf("Lines (-want +got):\n%s", diff)
	}
	want := [][]string{{"a", "b"}, {"c", "d"}}
	if diff := cmp.Diff(want, in.Blocks()); diff != "" {
		t.Errorf("Blocks (-want +got):\n%s", diff)
	}
	if got := NewInput(nil).Lines(); got != nil {
		t.Errorf("Lines of empty input: got %q", got)
	}
}

func TestInts(t *testing.T) {
	got, err := NewInput([]byte("1\n-2\n 30\n")).Ints()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, -2, 30}, got); diff != "" {
		t.Errorf("Ints (-want +got):\n%s", diff)
	}
	if _, err := NewInput([]byte("1\nx\n")).Ints(); err == nil {
		t.Error("Ints with a bad line: got nil error")
	}

	got, err = SplitInts("3,4, 5 6")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 4, 5, 6}, got); diff != "" {
		t.Errorf("SplitInts (-want +got):\n%s", diff)
	}
}

func TestTrace(t *testing.T) {
	in := NewInput(nil)
	in.Tracef("dropped %d", 1)
	var buf bytes.Buffer
	in.SetTrace(&buf, "[x] ")
	in.Tracef("kept %s", Count(1234567))
	if got, want := buf.String(), "[x] kept 1,234,567\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestDump(t *testing.T) {
	in := NewInput(nil)
	in.Dump("dropped", 1)
	var buf bytes.Buffer
	in.SetTrace(&buf, "")
	in.Dump("pos", struct{ X, Y int }{3, -4})
	got := buf.String()
	for _, want := range []string{"pos: ", "X:", "3", "Y:", "-4"} {
		if !strings.Contains(got, want) {
			t.Errorf("dump %q missing %q", got, want)
		}
	}
}

func TestConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(`
[2021]
inputs = /data/aoc

[2021.answers]
1 = 7 5
13 = 17
`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.InputPath(2021, "3"), filepath.Join("/data/aoc", "03.txt"); got != want {
		t.Errorf("InputPath: got %q; want %q", got, want)
	}
	if got, want := cfg.InputPath(2020, "3"), filepath.Join("input", "2020", "03.txt"); got != want {
		t.Errorf("InputPath default: got %q; want %q", got, want)
	}
	if err := cfg.Check(2021, "01", Answer(7, 5)); err != nil {
		t.Errorf("Check of matching answers: %s", err)
	}
	if err := cfg.Check(2021, "1", Answer(7, 6)); err == nil {
		t.Error("Check of wrong part 2: got nil error")
	}
	if err := cfg.Check(2021, "13", Answer(17, "#.#\n.#.")); err != nil {
		t.Errorf("Check with rendered part 2: %s", err)
	}
	if err := cfg.Check(2021, "2", Answer(0, 0)); err != nil {
		t.Errorf("Check with no recorded answers: %s", err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Answers(2021, "1"); ok {
		t.Error("empty config has answers")
	}
}

func testRunner(t *testing.T, dir string) (*runner, *bytes.Buffer) {
	t.Helper()
	cfg, err := ParseConfig(strings.NewReader("[2021]\ninputs = " + dir + "\n[2021.answers]\n1 = 6 6\n"))
	if err != nil {
		t.Fatal(err)
	}
	set := NewSet()
	set.Register("1", func(in *Input) (Result, error) {
		nums, err := in.Ints()
		if err != nil {
			return Result{}, err
		}
		var sum, prod int = 0, 1
		for _, n := range nums {
			sum += n
			prod *= n
		}
		return Answer(sum, prod), nil
	})
	set.Register("2", func(in *Input) (Result, error) {
		return Result{}, errors.New("boom")
	})
	set.Register("3", func(in *Input) (Result, error) {
		return Answer(len(in.Lines()), ""), nil
	})
	var out bytes.Buffer
	return &runner{year: 2021, set: set, cfg: cfg, out: &out, check: true}, &out
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "01.txt"), []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "03.txt"), []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, out := testRunner(t, dir)
	if err := r.runAll(2); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "day 1:\n6\n6\nday 3:\n2\n"; got != want {
		t.Errorf("got output %q; want %q", got, want)
	}
}

func TestRunAllError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "02.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, _ := testRunner(t, dir)
	err := r.runAll(4)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("got error %v; want one mentioning boom", err)
	}
}

func TestSaveAndRunOne(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "mine.txt")
	if err := os.WriteFile(src, []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, out := testRunner(t, dir)
	if err := r.saveInput("1", src); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "01.txt")); err != nil {
		t.Fatalf("saved input missing: %s", err)
	}
	if err := r.runOne("1", ""); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "6\n6\n"; got != want {
		t.Errorf("got output %q; want %q", got, want)
	}
	if err := r.saveInput("1", "-"); err == nil {
		t.Error("saveInput from stdin: got nil error")
	}
}

func TestCheckArgs(t *testing.T) {
	for _, tt := range []struct {
		all, save bool
		nargs     int
		ok        bool
	}{
		{false, false, 1, true},
		{false, true, 1, true},
		{true, false, 0, true},
		{false, false, 0, false},
		{false, false, 2, false},
		{true, false, 1, false},
		{true, true, 0, false},
	} {
		err := checkArgs(tt.all, tt.save, tt.nargs)
		if got := err == nil; got != tt.ok {
			t.Errorf("checkArgs(all=%t, save=%t, %d args): got error %v", tt.all, tt.save, tt.nargs, err)
		}
	}
}

func TestStatsString(t *testing.T) {
	s := &Stats{Elapsed: 1500e6, MaxRSSBytes: 2 << 20}
	if got, want := s.String(), "elapsed: 1.5s, max RSS: 2.1 MB"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
