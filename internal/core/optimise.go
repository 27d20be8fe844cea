package core

// Optimise applies the four mandatory peephole passes to ops, in order, up
// to maxPasses times. It stops at the first iteration whose output is not
// strictly shorter than its input -- the convergence metric is length only.
// maxPasses must be >= 1; a caller wanting "run to convergence" should pass
// a large bound (see OptimiseWithLevel's O2).
func Optimise(ops []Op, maxPasses int) []Op {
	if maxPasses < 1 {
		maxPasses = 1
	}
	if len(ops) == 0 {
		return ops
	}

	current := ops
	for pass := 0; pass < maxPasses; pass++ {
		prevLen := len(current)

		current = removeLeadingDeadLoop(current)
		current = contract(current)
		current = removeClearLoops(current)
		current = removeScanLoops(current)

		if len(current) >= prevLen {
			break
		}
	}
	return current
}

// removeLeadingDeadLoop deletes a loop that opens the program: if ops
// begins with Open, everything up to and including its matching Close can
// never run on a zeroed tape. Only the outermost leading loop is stripped
// per call; a loop newly exposed at the front is caught by the next driver
// iteration, not by recursing here.
func removeLeadingDeadLoop(ops []Op) []Op {
	if len(ops) == 0 || ops[0].Kind != OpOpen {
		return ops
	}

	depth := 0
	for i, op := range ops {
		switch op.Kind {
		case OpOpen:
			depth++
		case OpClose:
			depth--
			if depth == 0 {
				return ops[i+1:]
			}
		}
	}
	// Unbalanced input: Optimise assumes well-formed IR, so leave it alone
	// rather than guess.
	return ops
}

// contract collapses adjacent runs of the same counted variant
// (Add/Sub/Right/Left) into a single instruction, wrapping at each
// variant's width: 8-bit for Add/Sub, machine word for Right/Left.
func contract(ops []Op) []Op {
	if len(ops) < 2 {
		return ops
	}

	result := make([]Op, 0, len(ops))
	for _, op := range ops {
		if len(result) > 0 {
			last := &result[len(result)-1]
			if last.Kind == op.Kind {
				switch op.Kind {
				case OpAdd, OpSub:
					last.Arg = (last.Arg + op.Arg) & 0xff
					continue
				case OpRight, OpLeft:
					last.Arg += op.Arg
					continue
				}
			}
		}
		result = append(result, op)
	}
	return result
}

// removeClearLoops rewrites the exact triple Open, Sub(1), Close -- the
// "[-]" idiom -- into Set(0). Must run after contract each pass, so "[--]"
// first becomes Open, Sub(2), Close (no match) while "[-]" becomes Open,
// Sub(1), Close (matched).
func removeClearLoops(ops []Op) []Op {
	if len(ops) < 3 {
		return ops
	}

	result := make([]Op, 0, len(ops))
	i := 0
	for i < len(ops) {
		if matchesTriple(ops, i) && ops[i+1].Kind == OpSub && ops[i+1].Arg == 1 {
			result = append(result, Op{Kind: OpSet, Arg: 0, Pos: ops[i].Pos})
			i += 3
			continue
		}
		result = append(result, ops[i])
		i++
	}
	return result
}

// removeScanLoops rewrites Open, Left(1), Close into ScanLeft and
// Open, Right(1), Close into ScanRight.
func removeScanLoops(ops []Op) []Op {
	if len(ops) < 3 {
		return ops
	}

	result := make([]Op, 0, len(ops))
	i := 0
	for i < len(ops) {
		if matchesTriple(ops, i) {
			switch {
			case ops[i+1].Kind == OpLeft && ops[i+1].Arg == 1:
				result = append(result, Op{Kind: OpScanLeft, Pos: ops[i].Pos})
				i += 3
				continue
			case ops[i+1].Kind == OpRight && ops[i+1].Arg == 1:
				result = append(result, Op{Kind: OpScanRight, Pos: ops[i].Pos})
				i += 3
				continue
			}
		}
		result = append(result, ops[i])
		i++
	}
	return result
}

// matchesTriple reports whether ops[i:i+3] is Open, <anything>, Close.
func matchesTriple(ops []Op, i int) bool {
	return i+2 < len(ops) && ops[i].Kind == OpOpen && ops[i+2].Kind == OpClose
}

// OptLevel selects a pass budget for the CLI's -O flag.
type OptLevel int

const (
	O0 OptLevel = iota // no optimisation
	O1                 // a handful of passes
	O2                 // run to convergence
)

// optimiseUnboundedPasses is large enough that no realistic program needs
// more fixed-point iterations than this to converge.
const optimiseUnboundedPasses = 1 << 20

// OptimiseWithLevel maps a CLI optimisation level to a pass budget.
func OptimiseWithLevel(ops []Op, level OptLevel) []Op {
	switch level {
	case O0:
		return ops
	case O1:
		return Optimise(ops, 4)
	default:
		return Optimise(ops, optimiseUnboundedPasses)
	}
}
