// Package alu parses and runs programs for the submarine's four-register
// arithmetic logic unit (w, x, y, z) from Advent of Code 2021 day 24.
package alu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Reg uint8

const (
	W Reg = iota
	X
	Y
	Z
)

func (r Reg) String() string { return string("wxyz"[r]) }

func parseReg(s string) (Reg, bool) {
	if len(s) != 1 {
		return 0, false
	}
	i := strings.IndexByte("wxyz", s[0])
	if i < 0 {
		return 0, false
	}
	return Reg(i), true
}

type Op uint8

const (
	Inp Op = iota
	Add
	Mul
	Div
	Mod
	Eql
)

var opNames = [...]string{"inp", "add", "mul", "div", "mod", "eql"}

func (op Op) String() string { return opNames[op] }

// An Operand is the second argument of a binary instruction: either a
// register or an integer literal.
type Operand struct {
	Reg   Reg
	Lit   int64
	IsLit bool
}

func (o Operand) String() string {
	if o.IsLit {
		return strconv.FormatInt(o.Lit, 10)
	}
	return o.Reg.String()
}

type Instruction struct {
	Op Op
	A  Reg
	B  Operand // unused for inp
}

func (inst Instruction) String() string {
	if inst.Op == Inp {
		return fmt.Sprintf("%s %s", inst.Op, inst.A)
	}
	return fmt.Sprintf("%s %s %s", inst.Op, inst.A, inst.B)
}

// ParseInstruction parses one line such as "add z y" or "mul x -1".
func ParseInstruction(s string) (Instruction, error) {
	var inst Instruction
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return inst, errors.New("empty instruction")
	}
	op := -1
	for i, name := range opNames {
		if fields[0] == name {
			op = i
			break
		}
	}
	if op < 0 {
		return inst, fmt.Errorf("invalid instruction name %q", fields[0])
	}
	inst.Op = Op(op)
	want := 3
	if inst.Op == Inp {
		want = 2
	}
	if len(fields) != want {
		return inst, fmt.Errorf("%s takes %d operands; got %d", inst.Op, want-1, len(fields)-1)
	}
	var ok bool
	if inst.A, ok = parseReg(fields[1]); !ok {
		return inst, fmt.Errorf("bad register %q", fields[1])
	}
	if inst.Op == Inp {
		return inst, nil
	}
	if r, ok := parseReg(fields[2]); ok {
		inst.B = Operand{Reg: r}
		return inst, nil
	}
	n, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return inst, fmt.Errorf("bad operand %q", fields[2])
	}
	inst.B = Operand{Lit: n, IsLit: true}
	return inst, nil
}

// Parse reads a program, one instruction per line. Blank lines are
// skipped.
func Parse(r io.Reader) ([]Instruction, error) {
	var prog []Instruction
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		inst, err := ParseInstruction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		prog = append(prog, inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Split cuts a program into chunks, each starting at an inp instruction.
// Instructions before the first inp form their own chunk.
func Split(prog []Instruction) [][]Instruction {
	var chunks [][]Instruction
	start := 0
	for i, inst := range prog {
		if inst.Op == Inp && i > start {
			chunks = append(chunks, prog[start:i])
			start = i
		}
	}
	if start < len(prog) {
		chunks = append(chunks, prog[start:])
	}
	return chunks
}

var (
	ErrNoInput = errors.New("inp with no input remaining")
	ErrDivZero = errors.New("division by zero")
	ErrBadMod  = errors.New("mod with negative dividend or non-positive divisor")
)

// A Machine holds register state and a queue of pending input values.
type Machine struct {
	Regs  [4]int64
	input []int64
}

// Feed queues values for subsequent inp instructions.
func (m *Machine) Feed(vals ...int64) {
	m.input = append(m.input, vals...)
}

// Pending is the number of queued input values.
func (m *Machine) Pending() int { return len(m.input) }

// Reset zeroes the registers and drops any queued input.
func (m *Machine) Reset() {
	m.Regs = [4]int64{}
	m.input = m.input[:0]
}

// Exec executes a single instruction. On error the registers are unchanged.
func (m *Machine) Exec(inst Instruction) error {
	if inst.Op == Inp {
		if len(m.input) == 0 {
			return ErrNoInput
		}
		m.Regs[inst.A] = m.input[0]
		m.input = m.input[1:]
		return nil
	}
	a := m.Regs[inst.A]
	b := inst.B.Lit
	if !inst.B.IsLit {
		b = m.Regs[inst.B.Reg]
	}
	switch inst.Op {
	case Add:
		a += b
	case Mul:
		a *= b
	case Div:
		if b == 0 {
			return ErrDivZero
		}
		a /= b
	case Mod:
		if a < 0 || b <= 0 {
			return ErrBadMod
		}
		a %= b
	case Eql:
		if a == b {
			a = 1
		} else {
			a = 0
		}
	default:
		return fmt.Errorf("unknown op %d", inst.Op)
	}
	m.Regs[inst.A] = a
	return nil
}

// Run executes prog from the current state.
func (m *Machine) Run(prog []Instruction) error {
	for i, inst := range prog {
		if err := m.Exec(inst); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", i+1, inst, err)
		}
	}
	return nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("w=%d x=%d y=%d z=%d", m.Regs[W], m.Regs[X], m.Regs[Y], m.Regs[Z])
}
