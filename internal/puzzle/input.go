package puzzle

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

// An Input is one puzzle input plus a trace logger for debug output.
type Input struct {
	raw   []byte
	trace *log.Logger
}

// NewInput wraps b. Tracing is off until SetTrace is called.
func NewInput(b []byte) *Input {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return &Input{raw: b}
}

// ReadInput reads the named file, or stdin if name is "-".
func ReadInput(name string) (*Input, error) {
	var b []byte
	var err error
	if name == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return NewInput(b), nil
}

// SetTrace sends trace output to w, each line starting with prefix.
func (in *Input) SetTrace(w io.Writer, prefix string) {
	in.trace = log.New(w, prefix, 0)
}

// Tracing reports whether trace output is enabled.
func (in *Input) Tracing() bool { return in.trace != nil }

// Tracef logs a debug line if tracing is enabled.
func (in *Input) Tracef(format string, args ...any) {
	if in.trace == nil {
		return
	}
	in.trace.Printf(format, args...)
}

// Dump pretty-prints v to the trace output.
func (in *Input) Dump(label string, v any) {
	if in.trace == nil {
		return
	}
	in.trace.Printf("%s: %s", label, pretty.Sprint(v))
}

// Count formats a (possibly large) count for trace lines.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Text returns the input without trailing newlines.
func (in *Input) Text() string {
	return strings.TrimRight(string(in.raw), "\n")
}

// Lines splits the input into lines, dropping trailing blank lines.
func (in *Input) Lines() []string {
	text := in.Text()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Blocks splits the input into groups of lines separated by blank lines.
func (in *Input) Blocks() [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range in.Lines() {
		if strings.TrimSpace(line) == "" {
			if cur != nil {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if cur != nil {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints parses one integer per line.
func (in *Input) Ints() ([]int, error) {
	var nums []int
	for i, line := range in.Lines() {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// SplitInts parses the integers in s separated by commas and/or spaces.
func SplitInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
