package vm

import (
	"fmt"

	"github.com/lcox74/bfx/internal/core"
)

// AddressError is returned by every accessor given an index beyond the
// tape or program bounds (spec §7, kind 1). Always recoverable -- the
// caller may retry with a valid address.
type AddressError struct {
	Space string // "tape" or "program"
	Addr  int
	Limit int // exclusive upper bound
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s address out of bounds: %d (valid range 0-%d)", e.Space, e.Addr, e.Limit-1)
}

// BracketError is raised at interpreter construction when the jump-table
// pass finds a Close with no matching Open, or ends with unmatched Opens
// (spec §7, kind 2). Fatal for that program: the interpreter cannot be
// built.
type BracketError struct {
	Msg string
	Pos core.Position
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%s at line %d col %d (offset %d)", e.Msg, e.Pos.Line, e.Pos.Column, e.Pos.Offset)
}

// IOError wraps a Read/Write failure. Per spec these propagate to the host
// unhandled; the interpreter just bubbles them up rather than panicking so
// the CLI can print them and exit with a status code instead of crashing.
type IOError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
