// Command bfx is the Brainfuck development toolkit: tokenizer, IR dump,
// peephole optimizer, C emitter, interpreter, and interactive debugger.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcox74/bfx/internal/core"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bfx <command> [options] <file>

commands:
  run [-O level] <file>        Run the program (default -O 2)
  tokens <file>                Dump tokenizer output
  ir [-O level] <file>         Dump IR (default -O 0)
  cc [-O level] [-o out] <file> Emit C source (default -O 2, stdout)
  debug [-O level] <file>      Launch the interactive debugger`)
	os.Exit(1)
}

func parseOptLevel(level int) core.OptLevel {
	switch level {
	case 0:
		return core.O0
	case 1:
		return core.O1
	case 2:
		return core.O2
	default:
		fmt.Fprintf(os.Stderr, "invalid optimization level: %d (must be 0, 1, or 2)\n", level)
		os.Exit(1)
	}
	return core.O0
}

func readSource(file string) []byte {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return src
}

func compile(file string, level core.OptLevel) []core.Op {
	src := readSource(filepath.Clean(file))
	ops := core.ParseSource(src)
	return core.OptimiseWithLevel(ops, level)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "tokens":
		cmdTokens(args)
	case "ir":
		cmdIR(args)
	case "run":
		cmdRun(args)
	case "cc":
		cmdCC(args)
	case "debug":
		cmdDebug(args)
	default:
		usage()
	}
}
