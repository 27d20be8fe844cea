package core

// tokToOp maps a foldable token kind to the IR op it produces. Every
// Add/Sub/Right/Left token is lowered 1:1, never folded -- Property 1
// requires one instruction per source character; run-length folding is the
// optimizer's Contraction pass, not the parser's job.
var tokToOp = [...]OpKind{
	TokShiftRight: OpRight,
	TokShiftLeft:  OpLeft,
	TokAdd:        OpAdd,
	TokSub:        OpSub,
}

// Parse lowers a token stream into IR. It never fails: non-Brainfuck bytes
// were already dropped by Tokenize, and bracket matching is deferred to
// whichever consumer needs it (internal/vm builds the real jump table).
func Parse(toks []Token) []Op {
	ops := make([]Op, 0, len(toks))

	for _, tok := range toks {
		switch tok.Kind {
		case TokEOF:
			return ops
		case TokShiftRight, TokShiftLeft, TokAdd, TokSub:
			ops = append(ops, Op{Kind: tokToOp[tok.Kind], Arg: 1, Pos: tok.Pos})
		case TokIn:
			ops = append(ops, Op{Kind: OpRead, Pos: tok.Pos})
		case TokOut:
			ops = append(ops, Op{Kind: OpWrite, Pos: tok.Pos})
		case TokLBracket:
			ops = append(ops, Op{Kind: OpOpen, Pos: tok.Pos})
		case TokRBracket:
			ops = append(ops, Op{Kind: OpClose, Pos: tok.Pos})
		}
	}
	return ops
}

// ParseSource tokenizes and parses Brainfuck source in one step.
func ParseSource(src []byte) []Op {
	return Parse(Tokenize(src))
}
