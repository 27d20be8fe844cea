package core

import "testing"

func TestTokenizeIgnoresComments(t *testing.T) {
	toks := Tokenize([]byte("+x-"))
	if len(toks) != 3 { // Add, Sub, EOF
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Kind != TokAdd || toks[1].Kind != TokSub || toks[2].Kind != TokEOF {
		t.Errorf("got kinds %v %v %v, want TokAdd TokSub TokEOF", toks[0].Kind, toks[1].Kind, toks[2].Kind)
	}
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks := Tokenize([]byte("+\n-"))
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("first token pos = %+v, want line 1 col 1", toks[0].Pos)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Errorf("second token pos = %+v, want line 2 col 1", toks[1].Pos)
	}
}
