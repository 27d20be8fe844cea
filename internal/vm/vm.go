// Package vm is the debuggable Brainfuck interpreter: tape, data pointer,
// instruction pointer, breakpoints, and a precomputed jump table (spec
// §4.4). It runs synchronously in the caller's goroutine; Read and Write
// may block on stdin/stdout.
package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/lcox74/bfx/internal/core"
)

// DefaultTapeSize is the reference tape size: 3000 cells (spec §3.3). This
// is deliberately smaller than the C backend's 30000-cell default -- the
// two backends are allowed to disagree on tape size since neither's
// contract promises interoperable tape layouts.
const DefaultTapeSize = 3000

// StopKind classifies why Run returned.
type StopKind int

const (
	StopDone       StopKind = iota // instruction pointer ran off the end
	StopBreakpoint                 // halted after stepping onto a breakpoint
)

// RunOutcome is the result of Run. Address is only meaningful when Kind is
// StopBreakpoint.
type RunOutcome struct {
	Kind    StopKind
	Address int
}

// Interpreter executes IR with breakpoints and tape/program inspection.
type Interpreter struct {
	ops         []core.Op
	tape        []byte
	dataPointer int
	ip          int
	breakpoints map[int]bool
	jumpTable   []int // dense, sentinel -1 at non-branch indices

	input  io.Reader
	output io.Writer
	ioBuf  [1]byte
}

// Option configures an Interpreter at construction.
type Option func(*Interpreter)

// WithTapeSize overrides the default 3000-cell tape.
func WithTapeSize(n int) Option {
	return func(v *Interpreter) { v.tape = make([]byte, n) }
}

// WithInput overrides stdin as the source for Read.
func WithInput(r io.Reader) Option {
	return func(v *Interpreter) { v.input = r }
}

// WithOutput overrides stdout as the sink for Write.
func WithOutput(w io.Writer) Option {
	return func(v *Interpreter) { v.output = w }
}

// New builds an Interpreter over ops, computing the jump table in one pass.
// It fails with *BracketError if ops is not bracket-balanced -- the parser
// never checks this, so it's the interpreter's job (spec §3.2, §4.4).
func New(ops []core.Op, opts ...Option) (*Interpreter, error) {
	v := &Interpreter{
		ops:         ops,
		tape:        make([]byte, DefaultTapeSize),
		breakpoints: make(map[int]bool),
		input:       os.Stdin,
		output:      os.Stdout,
	}
	for _, opt := range opts {
		opt(v)
	}

	jt, err := buildJumpTable(ops)
	if err != nil {
		return nil, err
	}
	v.jumpTable = jt
	return v, nil
}

// buildJumpTable pairs every Open with its matching Close: jump[open] =
// close+1 and jump[close] = open+1. A stack of Open indices does the
// pairing; a Close with an empty stack, or Opens left over at the end, is
// an unbalanced program.
func buildJumpTable(ops []core.Op) ([]int, error) {
	jt := make([]int, len(ops))
	for i := range jt {
		jt[i] = -1
	}

	stack := make([]int, 0, 8)
	for i, op := range ops {
		switch op.Kind {
		case core.OpOpen:
			stack = append(stack, i)
		case core.OpClose:
			if len(stack) == 0 {
				return nil, &BracketError{Msg: "unmatched ']'", Pos: op.Pos}
			}
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jt[o] = i + 1
			jt[i] = o + 1
		}
	}
	if len(stack) > 0 {
		return nil, &BracketError{Msg: "unmatched '['", Pos: ops[stack[0]].Pos}
	}
	return jt, nil
}

// SetBreakpoint adds addr to the breakpoint set. Returns whether the set
// changed, or an *AddressError if addr is not a valid program index.
func (v *Interpreter) SetBreakpoint(addr int) (bool, error) {
	if addr < 0 || addr >= len(v.ops) {
		return false, &AddressError{Space: "program", Addr: addr, Limit: len(v.ops)}
	}
	changed := !v.breakpoints[addr]
	v.breakpoints[addr] = true
	return changed, nil
}

// DeleteBreakpoint removes addr from the breakpoint set and reports
// whether it was present.
func (v *Interpreter) DeleteBreakpoint(addr int) bool {
	changed := v.breakpoints[addr]
	delete(v.breakpoints, addr)
	return changed
}

// Step executes exactly one instruction at the current instruction
// pointer and advances it. Returns an *AddressError, not a panic, if the
// instruction pointer has already run off the end of the program -- a
// debugger session can always call Step again after Run reports Done.
func (v *Interpreter) Step() error {
	if v.ip < 0 || v.ip >= len(v.ops) {
		return &AddressError{Space: "program", Addr: v.ip, Limit: len(v.ops)}
	}

	next := v.ip + 1
	op := v.ops[v.ip]

	switch op.Kind {
	case core.OpAdd:
		v.tape[v.dataPointer] += byte(op.Arg)
	case core.OpSub:
		v.tape[v.dataPointer] -= byte(op.Arg)
	case core.OpRight:
		v.dataPointer += op.Arg
	case core.OpLeft:
		v.dataPointer -= op.Arg
	case core.OpRead:
		n, err := v.input.Read(v.ioBuf[:])
		if err != nil && err != io.EOF {
			return &IOError{Op: "read", Err: err}
		}
		if n == 0 {
			v.tape[v.dataPointer] = 0
		} else {
			v.tape[v.dataPointer] = v.ioBuf[0]
		}
	case core.OpWrite:
		v.ioBuf[0] = v.tape[v.dataPointer]
		if _, err := v.output.Write(v.ioBuf[:]); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	case core.OpOpen:
		if v.tape[v.dataPointer] == 0 {
			next = v.jumpTable[v.ip]
		}
	case core.OpClose:
		if v.tape[v.dataPointer] != 0 {
			next = v.jumpTable[v.ip]
		}
	case core.OpSet:
		v.tape[v.dataPointer] = byte(op.Arg)
	case core.OpScanRight:
		for v.dataPointer < len(v.tape)-1 && v.tape[v.dataPointer] != 0 {
			v.dataPointer++
		}
	case core.OpScanLeft:
		for v.dataPointer > 0 && v.tape[v.dataPointer] != 0 {
			v.dataPointer--
		}
	}

	v.ip = next
	return nil
}

// Run repeats Step until the instruction pointer runs off the program
// (StopDone) or, after a step, the new instruction pointer is a breakpoint
// (StopBreakpoint). Checking the breakpoint *after* stepping -- not before
// -- means a paused debugger can always make forward progress by calling
// Run again (spec §9, Property 7).
func (v *Interpreter) Run() (RunOutcome, error) {
	for v.ip < len(v.ops) {
		if err := v.Step(); err != nil {
			return RunOutcome{}, err
		}
		if v.ip < len(v.ops) && v.breakpoints[v.ip] {
			return RunOutcome{Kind: StopBreakpoint, Address: v.ip}, nil
		}
	}
	return RunOutcome{Kind: StopDone}, nil
}

// Get reads tape cell addr.
func (v *Interpreter) Get(addr int) (byte, error) {
	if addr < 0 || addr >= len(v.tape) {
		return 0, &AddressError{Space: "tape", Addr: addr, Limit: len(v.tape)}
	}
	return v.tape[addr], nil
}

// Set writes value to tape cell addr and returns the previous value.
func (v *Interpreter) Set(addr int, value byte) (byte, error) {
	if addr < 0 || addr >= len(v.tape) {
		return 0, &AddressError{Space: "tape", Addr: addr, Limit: len(v.tape)}
	}
	old := v.tape[addr]
	v.tape[addr] = value
	return old, nil
}

// Jump sets the instruction pointer to addr.
func (v *Interpreter) Jump(addr int) error {
	if addr < 0 || addr >= len(v.ops) {
		return &AddressError{Space: "program", Addr: addr, Limit: len(v.ops)}
	}
	v.ip = addr
	return nil
}

// Select sets the data pointer to addr.
func (v *Interpreter) Select(addr int) error {
	if addr < 0 || addr >= len(v.tape) {
		return &AddressError{Space: "tape", Addr: addr, Limit: len(v.tape)}
	}
	v.dataPointer = addr
	return nil
}

// IP returns the current instruction pointer.
func (v *Interpreter) IP() int { return v.ip }

// DataPointer returns the current data pointer.
func (v *Interpreter) DataPointer() int { return v.dataPointer }

// Op returns the instruction at addr. addr must be a valid program index.
func (v *Interpreter) Op(addr int) core.Op { return v.ops[addr] }

// Len returns the number of instructions in the program.
func (v *Interpreter) Len() int { return len(v.ops) }

// String implements fmt.Stringer for diagnostics.
func (v *Interpreter) String() string {
	return fmt.Sprintf("ip=%d dp=%d", v.ip, v.dataPointer)
}
