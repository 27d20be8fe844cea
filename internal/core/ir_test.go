package core

import "testing"

func TestParseSourceInstructionCount(t *testing.T) {
	// Scenario 1: one instruction per Brainfuck character, no folding.
	ops := ParseSource([]byte("++--,.[]<<>> [-]"))

	want := []Op{
		Add(1), Add(1), Sub(1), Sub(1), Read(), Write(), Open(), Close(),
		Left(1), Left(1), Right(1), Right(1), Open(), Sub(1), Close(),
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i].Kind != want[i].Kind || ops[i].Arg != want[i].Arg {
			t.Errorf("op %d: got {%v %d}, want {%v %d}", i, ops[i].Kind, ops[i].Arg, want[i].Kind, want[i].Arg)
		}
	}
}

func TestParseSourceCommentInvariance(t *testing.T) {
	// Property 2: non-Brainfuck bytes are ignored entirely.
	plain := ParseSource([]byte("++[>+<-]"))
	commented := ParseSource([]byte("++ this is commentary [>+<-] done"))

	if len(plain) != len(commented) {
		t.Fatalf("lengths differ: %d vs %d", len(plain), len(commented))
	}
	for i := range plain {
		if plain[i].Kind != commented[i].Kind || plain[i].Arg != commented[i].Arg {
			t.Errorf("op %d differs: {%v %d} vs {%v %d}", i, plain[i].Kind, plain[i].Arg, commented[i].Kind, commented[i].Arg)
		}
	}
}

func TestDump(t *testing.T) {
	ops := []Op{Add(3), Open(), Right(1), Set(0), Close()}
	want := "add 3\nopen\n    right 1\n    set 0\nclose\n"
	if got := Dump(ops); got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

// TestDumpUnmatchedCloseDoesNotPanic guards against a stray ']' (which the
// parser never rejects -- bracket matching is deferred to the consumer)
// driving the indent level negative.
func TestDumpUnmatchedCloseDoesNotPanic(t *testing.T) {
	ops := []Op{Close(), Close(), Add(1)}
	want := "close\nclose\nadd 1\n"
	if got := Dump(ops); got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}
