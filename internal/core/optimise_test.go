package core

import "testing"

type optTest struct {
	name  string
	input []Op
	want  []Op
}

func sameOps(a, b []Op) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Arg != b[i].Arg {
			return false
		}
	}
	return true
}

func TestOptimise(t *testing.T) {
	tests := []optTest{
		{
			// Scenario 2.
			name:  "dead_loop_contract_clear_scan",
			input: ParseSource([]byte("[lol]+++[>+++<-][-][>]+[<]")),
			want: []Op{
				Add(3), Open(), Right(1), Add(3), Left(1), Sub(1), Close(),
				Set(0), ScanRight(), Add(1), ScanLeft(),
			},
		},
		{
			// Scenario 5: pure contraction, no loops to touch.
			name:  "contraction_only",
			input: ParseSource([]byte("++--->>>><<<<<")),
			want:  []Op{Add(2), Sub(3), Right(4), Left(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimise(tt.input, 10)
			if !sameOps(got, tt.want) {
				t.Errorf("Optimise() = %s\nwant %s", Dump(got), Dump(tt.want))
			}
		})
	}
}

// TestRemoveScanLoops is scenario 6: the scan-loop pass run directly after
// contraction, isolated from the leading-dead-loop pass that would
// otherwise strip a loop opening the program on a zeroed tape.
func TestRemoveScanLoops(t *testing.T) {
	ops := ParseSource([]byte("[>][<]"))
	got := removeScanLoops(contract(ops))
	want := []Op{ScanRight(), ScanLeft()}
	if !sameOps(got, want) {
		t.Errorf("removeScanLoops(contract(ops)) = %s\nwant %s", Dump(got), Dump(want))
	}
}

// TestOptimiseShrinksOrHalts is Property 4: each bounded pass count never
// grows the program, and the driver stops at the first non-shrinking pass.
func TestOptimiseShrinksOrHalts(t *testing.T) {
	ops := ParseSource([]byte("+++[>+++<-][-][>]+[<]>>>+++---<<<"))
	prev := len(ops)
	for k := 1; k <= 8; k++ {
		out := Optimise(ops, k)
		if len(out) > prev && k > 1 {
			t.Fatalf("pass budget %d grew output to %d from %d", k, len(out), prev)
		}
		prev = len(out)
	}
}

// TestOptimisePreservesBracketBalance is Property 5.
func TestOptimisePreservesBracketBalance(t *testing.T) {
	ops := ParseSource([]byte("+++[>+++<-][[-]][>]+[<]"))
	out := Optimise(ops, optimiseUnboundedPasses)

	depth := 0
	for _, op := range out {
		switch op.Kind {
		case OpOpen:
			depth++
		case OpClose:
			depth--
			if depth < 0 {
				t.Fatalf("unbalanced close in optimizer output: %s", Dump(out))
			}
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced open in optimizer output: %s", Dump(out))
	}
}

func TestOptimiseWithLevelO0IsNoop(t *testing.T) {
	ops := ParseSource([]byte("+++>>><<<"))
	out := OptimiseWithLevel(ops, O0)
	if !sameOps(ops, out) {
		t.Errorf("O0 changed the program: got %s, want %s", Dump(out), Dump(ops))
	}
}
