// Package shell is the interactive debugger shell (spec §6.3): a
// line-oriented command loop wrapped around an *vm.Interpreter. A command
// that succeeds prints "OK", except help, print, and a run that stops at a
// breakpoint, which print their result instead; a failure prints a
// one-line diagnostic.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/lcox74/bfx/internal/core"
	"github.com/lcox74/bfx/internal/vm"
)

// Shell drives one debugging session over a single program.
type Shell struct {
	interp *vm.Interpreter
	ops    []core.Op

	in  *bufio.Scanner
	out io.Writer
	err io.Writer

	// prompt is suppressed when stdin isn't a terminal, so a scripted
	// session (input piped from a file) doesn't interleave "> " into
	// its transcript the way gmofishsauce-wut4/emul/main.go checks
	// term.IsTerminal before touching the terminal at all.
	prompt bool
}

// New builds a shell around an already-constructed interpreter. ops is the
// same program the interpreter was built from, kept here only so `run` can
// print the instruction a breakpoint landed on.
func New(interp *vm.Interpreter, ops []core.Op, in io.Reader, out, errw io.Writer) *Shell {
	isTerm := false
	if f, ok := in.(*os.File); ok {
		isTerm = term.IsTerminal(int(f.Fd()))
	}
	return &Shell{
		interp: interp,
		ops:    ops,
		in:     bufio.NewScanner(in),
		out:    out,
		err:    errw,
		prompt: isTerm,
	}
}

// Run reads commands until "quit"/"q" or EOF.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "Welcome to bfx! Type `help` for more information.")
	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !s.in.Scan() {
			return
		}
		if s.dispatch(strings.TrimSpace(s.in.Text())) {
			return
		}
	}
}

// dispatch runs one command line and reports whether the shell should
// exit.
func (s *Shell) dispatch(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case "help", "h":
		s.help()
	case "quit", "q":
		fmt.Fprintln(s.out, "OK")
		return true
	case "run", "r":
		s.cmdRun()
	case "break", "b":
		s.cmdBreak(parts)
	case "delete", "d":
		s.cmdDelete(parts)
	case "step", "s":
		s.cmdStep()
	case "print", "p":
		s.cmdPrint(parts)
	case "assign", "a":
		s.cmdAssign(parts)
	case "jump", "j":
		s.cmdJump(parts)
	case "select":
		s.cmdSelect(parts)
	default:
		fmt.Fprintf(s.err, "Unrecognized command: %s\n", line)
	}
	return false
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "    help (h)")
	fmt.Fprintln(s.out, "    quit (q)")
	fmt.Fprintln(s.out, "    run (r)")
	fmt.Fprintln(s.out, "    break (b) <addr>")
	fmt.Fprintln(s.out, "    delete (d) <addr>")
	fmt.Fprintln(s.out, "    step (s)")
	fmt.Fprintln(s.out, "    print (p) <addr>")
	fmt.Fprintln(s.out, "    assign (a) <addr> <byte>")
	fmt.Fprintln(s.out, "    jump (j) <addr>")
	fmt.Fprintln(s.out, "    select <addr>")
}

func (s *Shell) cmdRun() {
	outcome, err := s.interp.Run()
	if err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	switch outcome.Kind {
	case vm.StopBreakpoint:
		fmt.Fprintf(s.out, "Hit breakpoint at %d (%s)\n", outcome.Address, s.ops[outcome.Address])
	case vm.StopDone:
		fmt.Fprintln(s.out, "OK")
	}
}

func (s *Shell) cmdBreak(parts []string) {
	addr, ok := s.parseAddr(parts)
	if !ok {
		return
	}
	if _, err := s.interp.SetBreakpoint(addr); err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdDelete(parts []string) {
	addr, ok := s.parseAddr(parts)
	if !ok {
		return
	}
	s.interp.DeleteBreakpoint(addr)
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdStep() {
	if err := s.interp.Step(); err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdPrint(parts []string) {
	addr, ok := s.parseAddr(parts)
	if !ok {
		return
	}
	value, err := s.interp.Get(addr)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, value)
}

func (s *Shell) cmdAssign(parts []string) {
	if len(parts) != 3 {
		fmt.Fprintln(s.err, "Invalid syntax!")
		return
	}
	addr, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintf(s.err, "Invalid address: %s\n", parts[1])
		return
	}
	value, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		fmt.Fprintf(s.err, "Invalid byte: %s\n", parts[2])
		return
	}
	if _, err := s.interp.Set(addr, byte(value)); err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdJump(parts []string) {
	addr, ok := s.parseAddr(parts)
	if !ok {
		return
	}
	if err := s.interp.Jump(addr); err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdSelect(parts []string) {
	addr, ok := s.parseAddr(parts)
	if !ok {
		return
	}
	if err := s.interp.Select(addr); err != nil {
		fmt.Fprintln(s.err, err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

// parseAddr validates the common "<cmd> <addr>" shape and reports failures
// the way the rest of the shell does, returning ok=false when it already
// printed a diagnostic.
func (s *Shell) parseAddr(parts []string) (int, bool) {
	if len(parts) != 2 {
		fmt.Fprintln(s.err, "Invalid syntax!")
		return 0, false
	}
	addr, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintf(s.err, "Invalid address: %s\n", parts[1])
		return 0, false
	}
	return addr, true
}
