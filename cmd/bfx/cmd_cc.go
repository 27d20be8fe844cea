package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lcox74/bfx/internal/codegen/c"
)

func cmdCC(args []string) {
	fs := flag.NewFlagSet("cc", flag.ExitOnError)
	optLevel := fs.Int("O", 2, "optimization level (0, 1, or 2)")
	tapeSize := fs.Int("tape", c.DefaultTapeSize, "tape size for the generated program")
	output := fs.String("o", "", "output file (default: stdout)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfx cc [-O level] [-tape n] [-o output] <file>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
	}

	level := parseOptLevel(*optLevel)
	ops := compile(fs.Arg(0), level)
	src := c.Emit(ops, *tapeSize)

	if *output == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*output, []byte(src), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
