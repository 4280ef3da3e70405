package table

import "testing"

func TestTokenizeRow(t *testing.T) {
	toks, err := tokenize("|0x01|VOUT_MODE|write: u8|read: u8|1|")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}

	want := []struct {
		tt     TokenType
		lexeme string
	}{
		{PIPE, "|"},
		{INT, "0x01"},
		{PIPE, "|"},
		{IDENT, "VOUT_MODE"},
		{PIPE, "|"},
		{IDENT, "write"},
		{COLON, ":"},
		{IDENT, "u8"},
		{PIPE, "|"},
		{IDENT, "read"},
		{COLON, ":"},
		{IDENT, "u8"},
		{PIPE, "|"},
		{INT, "1"},
		{PIPE, "|"},
		{EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.tt || toks[i].Lexeme != w.lexeme {
			t.Errorf("token[%d] = %s %q, want %s %q", i, toks[i].Type, toks[i].Lexeme, w.tt, w.lexeme)
		}
	}
}

func TestTokenizeUnderscore(t *testing.T) {
	toks, err := tokenize("_ _x x_")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if toks[0].Type != UNDERSCORE {
		t.Errorf("toks[0] = %s, want UNDERSCORE", toks[0])
	}
	if toks[1].Type != IDENT || toks[1].Lexeme != "_x" {
		t.Errorf("toks[1] = %s, want IDENT _x", toks[1])
	}
	if toks[2].Type != IDENT || toks[2].Lexeme != "x_" {
		t.Errorf("toks[2] = %s, want IDENT x_", toks[2])
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := tokenize("|1|\n  | 2 |")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}

	// Second row's opening pipe.
	got := toks[3].Pos
	if got.Line != 2 || got.Column != 3 || got.Offset != 6 {
		t.Errorf("pos = %+v, want line 2 col 3 offset 6", got)
	}
	if toks[4].Lexeme != "2" || toks[4].Pos.Column != 5 {
		t.Errorf("toks[4] = %+v, want '2' at column 5", toks[4])
	}
}

func TestTokenizeComments(t *testing.T) {
	src := `// leading comment
| 1 /* inline */ | A | _ | _ | _ |, // trailing
`
	toks, err := tokenize(src)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(toks) != 13 {
		t.Errorf("len(tokens) = %d, want 13: %v", len(toks), toks)
	}
	if toks[0].Pos.Line != 2 {
		t.Errorf("first token line = %d, want 2", toks[0].Pos.Line)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		col  int
	}{
		{"unexpected character", "| 1 | A # B |", 1, 9},
		{"unterminated block comment", "| 1 /* oops", 1, 5},
		{"unexpected symbol on second line", "|\n  §", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			se, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}
			if se.Pos.Line != tt.line || se.Pos.Column != tt.col {
				t.Errorf("pos = %s, want %d:%d", se.Pos, tt.line, tt.col)
			}
		})
	}
}
