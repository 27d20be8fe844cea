package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lcox74/bfx/internal/shell"
	"github.com/lcox74/bfx/internal/vm"
)

func cmdDebug(args []string) {
	fs := flag.NewFlagSet("debug", flag.ExitOnError)
	optLevel := fs.Int("O", 0, "optimization level (0, 1, or 2)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: bfx debug [-O level] <file>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
	}

	level := parseOptLevel(*optLevel)
	ops := compile(fs.Arg(0), level)

	interp, err := vm.New(ops)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	shell.New(interp, ops, os.Stdin, os.Stdout, os.Stderr).Run()
}
