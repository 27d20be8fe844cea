package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lcox74/bfx/internal/core"
)

func cmdIR(args []string) {
	fs := flag.NewFlagSet("ir", flag.ExitOnError)
	optLevel := fs.Int("O", 0, "optimization level (0, 1, or 2)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfx ir [-O level] <file>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
	}

	level := parseOptLevel(*optLevel)
	ops := compile(fs.Arg(0), level)
	fmt.Print(core.Dump(ops))
}
