// Package c lowers IR to C source through a fixed macro template (spec
// §4.3, §6.2). It is intentionally thin: each instruction maps to one line
// invoking a macro, and the macros themselves -- tape allocation, cell
// size, I/O -- live in the template and are the host C compiler's problem,
// not this package's.
package c

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lcox74/bfx/internal/core"
)

// DefaultTapeSize is substituted for __TAPE_SIZE__ when the caller doesn't
// override it.
const DefaultTapeSize = 30000

// Generator produces C source from IR operations.
type Generator struct {
	ops   []core.Op
	out   strings.Builder
	level int
}

// NewGenerator creates a C generator for ops. The first emitted instruction
// is indented one level (four spaces) to align with the template's
// insertion point inside a function body.
func NewGenerator(ops []core.Op) *Generator {
	return &Generator{ops: ops, level: 1}
}

// Generate produces the emitted body -- one macro invocation per
// instruction, not yet substituted into the template.
func (g *Generator) Generate() string {
	for _, op := range g.ops {
		g.emitOp(op)
	}
	return g.out.String()
}

// emitOp outputs one line for a single IR instruction. open increases the
// indent after emitting; close decreases it before emitting.
func (g *Generator) emitOp(op core.Op) {
	switch op.Kind {
	case core.OpAdd:
		g.emitLine(fmt.Sprintf("ADJUST(0, %d)", op.Arg))
	case core.OpSub:
		g.emitLine(fmt.Sprintf("ADJUST(0, -%d)", op.Arg))
	case core.OpRight:
		g.emitLine(fmt.Sprintf("SELECT(%d)", op.Arg))
	case core.OpLeft:
		g.emitLine(fmt.Sprintf("SELECT(-%d)", op.Arg))
	case core.OpRead:
		g.emitLine("READ(0)")
	case core.OpWrite:
		g.emitLine("WRITE(0)")
	case core.OpOpen:
		g.emitLine("OPEN()")
		g.level++
	case core.OpClose:
		if g.level > 1 {
			g.level--
		}
		g.emitLine("CLOSE()")
	case core.OpSet:
		g.emitLine(fmt.Sprintf("SET(0, %d)", op.Arg))
	case core.OpScanLeft:
		g.emitLine("SCAN_LEFT()")
	case core.OpScanRight:
		g.emitLine("SCAN_RIGHT()")
	}
}

// emitLine writes one indented macro invocation.
func (g *Generator) emitLine(s string) {
	fmt.Fprintf(&g.out, "%s%s\n", strings.Repeat("    ", g.level), s)
}

// Emit lowers ops to a complete, compilable C source file with tapeSize
// substituted for __TAPE_SIZE__.
func Emit(ops []core.Op, tapeSize int) string {
	body := strings.TrimRight(NewGenerator(ops).Generate(), "\n")
	out := strings.ReplaceAll(Template, "__CODE__", body)
	out = strings.ReplaceAll(out, "__TAPE_SIZE__", strconv.Itoa(tapeSize))
	return out
}
