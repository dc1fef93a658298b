// Command alurepl is an interactive interpreter for ALU programs.
//
// Each line is an instruction such as "add x 3", run against a machine
// that persists between lines. Lines starting with ':' are commands:
//
//	:input N...  queue values for inp
//	:regs        print the registers
//	:reset       zero the registers and drop queued input
//	:load FILE   run the program in FILE
//	:quit        exit
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/seafloor/puzzles/internal/alu"
)

func main() {
	log.SetFlags(0)
	cfg := &readline.Config{Prompt: "alu> "}
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, "alurepl_history")
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	r := &repl{out: l.Stdout()}
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		quit, err := r.handle(line)
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
		if quit {
			return
		}
	}
}

type repl struct {
	m   alu.Machine
	out io.Writer
}

var errUsage = errors.New("usage: :input N... | :regs | :reset | :load FILE | :quit")

// handle runs one line of input. It reports whether the REPL should
// exit.
func (r *repl) handle(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		inst, err := alu.ParseInstruction(line)
		if err != nil {
			return false, err
		}
		if err := r.m.Exec(inst); err != nil {
			return false, err
		}
		r.printRegs()
		return false, nil
	}

	fields := strings.Fields(line)
	switch cmd, args := fields[0], fields[1:]; cmd {
	case ":quit", ":q":
		return true, nil
	case ":regs":
		r.printRegs()
	case ":reset":
		r.m.Reset()
		r.printRegs()
	case ":input":
		if len(args) == 0 {
			return false, errUsage
		}
		vals := make([]int64, len(args))
		for i, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return false, fmt.Errorf("bad input value %q", arg)
			}
			vals[i] = n
		}
		r.m.Feed(vals...)
		fmt.Fprintf(r.out, "%d value(s) queued\n", r.m.Pending())
	case ":load":
		if len(args) != 1 {
			return false, errUsage
		}
		return false, r.load(args[0])
	default:
		return false, errUsage
	}
	return false, nil
}

func (r *repl) load(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	prog, err := alu.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %s", name, err)
	}
	if err := r.m.Run(prog); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "ran %d instructions\n", len(prog))
	r.printRegs()
	return nil
}

func (r *repl) printRegs() {
	fmt.Fprintln(r.out, &r.m)
}
