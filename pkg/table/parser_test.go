package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseScenarioRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want Entry
	}{
		{
			name: "byte width",
			row:  "|0x01|VOUT_MODE|write: u8|read: u8|1|",
			want: Entry{Byte: 0x01, Ident: Named("VOUT_MODE"), Write: Write("u8"), Read: Read("u8"), Count: Count(1)},
		},
		{
			name: "word width",
			row:  "|0x02|VOUT_COMMAND|write: u16|read: u16|2|",
			want: Entry{Byte: 0x02, Ident: Named("VOUT_COMMAND"), Write: Write("u16"), Read: Read("u16"), Count: Count(2)},
		},
		{
			name: "send only",
			row:  "|0x03|STORE_DEFAULT_ALL|send|_|0|",
			want: Entry{Byte: 0x03, Ident: Named("STORE_DEFAULT_ALL"), Write: Send(), Read: ReadKind{Shape: ReadReserved}, Count: Count(0)},
		},
		{
			name: "variable block",
			row:  "|0x04|MFR_ID|write: bytes|read: bytes|_|",
			want: Entry{Byte: 0x04, Ident: Named("MFR_ID"), Write: Write("bytes"), Read: Read("bytes"), Count: Variable},
		},
		{
			name: "fully reserved",
			row:  "|0x05|_|_|_|_|",
			want: Entry{Byte: 0x05, Ident: ReservedIdent, Count: Variable},
		},
		{
			name: "unimplemented markers",
			row:  "| 208 | _ | ! | ! | ! |",
			want: Entry{Byte: 208, Ident: ReservedIdent, Write: WriteKind{Shape: WriteUnimplemented}, Read: ReadKind{Shape: ReadUnimplemented}, Count: ByteCount{Shape: CountUnimplemented}},
		},
		{
			name: "process call",
			row:  "| 0x30 | COEFFICIENTS | _ | call: bytes | 5 |",
			want: Entry{Byte: 0x30, Ident: Named("COEFFICIENTS"), Read: Call("bytes"), Count: Count(5)},
		},
		{
			name: "slice and qualified types",
			row:  "| 1 | A | write: []byte | read: units.Linear11 | 2 |",
			want: Entry{Byte: 1, Ident: Named("A"), Write: Write("[]byte"), Read: Read("units.Linear11"), Count: Count(2)},
		},
		{
			name: "binary and separators",
			row:  "| 0b1000_0001 | Mixed_Case | _ | _ | 1_0 |",
			want: Entry{Byte: 0x81, Ident: Named("Mixed_Case"), Count: Count(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.row)
			if err != nil {
				t.Fatalf("ParseRow failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("entry = %s, want %s", got, tt.want)
			}
			if got.Pos.Line != 1 || got.Pos.Column != strings.Index(tt.row, "|")+1 {
				t.Errorf("pos = %s, want row start", got.Pos)
			}
		})
	}
}

func TestParseTablePreservesOrder(t *testing.T) {
	src := `
| 0x02 | B | _ | _ | _ |,
| 0x01 | A | _ | _ | _ |,
| 0x02 | B | _ | _ | _ |
`
	tbl, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("len = %d, want 3", tbl.Len())
	}
	order := []uint8{0x02, 0x01, 0x02}
	for i, b := range order {
		if tbl.Entries[i].Byte != b {
			t.Errorf("entries[%d].Byte = %d, want %d", i, tbl.Entries[i].Byte, b)
		}
	}
	if tbl.Entries[2].Pos.Line != 4 {
		t.Errorf("entries[2] line = %d, want 4", tbl.Entries[2].Pos.Line)
	}
}

func TestParseTrailingComma(t *testing.T) {
	for _, src := range []string{
		"|1|A|_|_|_|",
		"|1|A|_|_|_|,",
		"|1|A|_|_|_|,\n",
	} {
		tbl, err := ParseString(src)
		if err != nil {
			t.Errorf("ParseString(%q) failed: %v", src, err)
			continue
		}
		if tbl.Len() != 1 {
			t.Errorf("ParseString(%q) len = %d, want 1", src, tbl.Len())
		}
	}
}

func TestParseEmpty(t *testing.T) {
	tbl, err := ParseString("  // nothing here\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("len = %d, want 0", tbl.Len())
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		col     int
		wantMsg string
	}{
		{"byte out of range", "| 256 | A | _ | _ | _ |", 1, 3, "out of range"},
		{"count out of range", "| 1 | A | _ | _ | 0x100 |", 1, 19, "out of range"},
		{"bad literal", "| 0xZZ | A | _ | _ | _ |", 1, 3, "invalid integer literal"},
		{"bad separator", "| 1__0 | A | _ | _ | _ |", 1, 3, "invalid integer literal"},
		{"missing row comma", "|1|A|_|_|_|\n|2|B|_|_|_|", 2, 1, "expected ','"},
		{"unknown write keyword", "| 1 | A | put: u8 | _ | 1 |", 1, 11, "expected '_', '!', 'write: <type>' or 'send'"},
		{"read keyword in write column", "| 1 | A | read: u8 | _ | 1 |", 1, 11, "'send'"},
		{"send in read column", "| 1 | A | _ | send | 0 |", 1, 15, "'call: <type>'"},
		{"missing colon", "| 1 | A | write u8 | _ | 1 |", 1, 17, "expected ':'"},
		{"missing type", "| 1 | A | write: | _ | 1 |", 1, 18, "payload type"},
		{"identifier is number", "| 1 | 2 | _ | _ | _ |", 1, 7, "expected '_' or identifier"},
		{"byte count is name", "| 1 | A | _ | _ | N |", 1, 19, "byte count"},
		{"missing closing pipe", "| 1 | A | _ | _ | _", 1, 20, "at end of row"},
		{"too many fields", "| 1 | A | _ | _ | _ | _ |", 1, 23, "expected ','"},
		{"missing opening pipe", "1 | A | _ | _ | _ |", 1, 1, "at start of row"},
		{"leading comma", ", | 1 | A | _ | _ | _ |", 1, 1, "at start of row"},
		{"double comma", "| 1 | A | _ | _ | _ |,,", 1, 23, "at start of row"},
		{"unclosed slice type", "| 1 | A | write: [ | _ | 1 |", 1, 20, "slice type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ParseString(tt.src)
			if err == nil {
				t.Fatalf("expected error, got table with %d entries", tbl.Len())
			}
			if tbl != nil {
				t.Error("partial table returned alongside error")
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}
			if se.Pos.Line != tt.line || se.Pos.Column != tt.col {
				t.Errorf("pos = %s, want %d:%d (%v)", se.Pos, tt.line, tt.col, err)
			}
			if !strings.Contains(se.Msg, tt.wantMsg) {
				t.Errorf("msg = %q, want it to contain %q", se.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParseRowRejectsSecondRow(t *testing.T) {
	_, err := ParseRow("|1|A|_|_|_|, |2|B|_|_|_|")
	if err == nil {
		t.Fatal("expected error for two rows")
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	src := `
| 0x00 | PAGE | write: u8 | read: u8 | 1 |,
| 0x03 | CLEAR_FAULTS | send | _ | 0 |,
| 0x04 | _ | _ | _ | _ |,
| 0x30 | COEFFICIENTS | ! | call: bytes | 5 |,
| 0x9A | MFR_MODEL | write: []byte | read: []byte | _ |,
| 0xD0 | _ | ! | ! | ! |,
| 0xFF | VendorX | write: pkg.T | read: pkg.T | 40 |,
`

	first, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	canonical := first.String()
	second, err := ParseString(canonical)
	if err != nil {
		t.Fatalf("reparse of canonical form failed: %v\n%s", err, canonical)
	}

	if first.Len() != second.Len() {
		t.Fatalf("len = %d after round trip, want %d", second.Len(), first.Len())
	}
	for i := range first.Entries {
		if !first.Entries[i].Equal(second.Entries[i]) {
			t.Errorf("entry %d: %s != %s", i, first.Entries[i], second.Entries[i])
		}
	}

	// Canonical form is a fixed point.
	if second.String() != canonical {
		t.Errorf("canonical form not stable:\n%s\nvs\n%s", canonical, second.String())
	}
}

func TestRoundTripEveryRowShape(t *testing.T) {
	types := []string{"u8", "[]byte", "units.Linear11"}

	writes := []WriteKind{{Shape: WriteReserved}, {Shape: WriteUnimplemented}, Send()}
	reads := []ReadKind{{Shape: ReadReserved}, {Shape: ReadUnimplemented}}
	for _, typ := range types {
		writes = append(writes, Write(typ))
		reads = append(reads, Read(typ), Call(typ))
	}
	counts := []ByteCount{Variable, {Shape: CountUnimplemented}, Count(0), Count(1), Count(2), Count(3), Count(32), Count(255)}
	idents := []Ident{ReservedIdent, Named("VOUT_MODE"), Named("x1")}
	codes := []uint8{0, 0x20, 255}

	var entries []Entry
	for _, code := range codes {
		for _, id := range idents {
			for _, w := range writes {
				for _, r := range reads {
					for _, c := range counts {
						entries = append(entries, Entry{Byte: code, Ident: id, Write: w, Read: r, Count: c})
					}
				}
			}
		}
	}

	for _, e := range entries {
		got, err := ParseRow(e.String())
		if err != nil {
			t.Errorf("ParseRow(%q): %v", e.String(), err)
			continue
		}
		if !got.Equal(e) {
			t.Errorf("round trip of %q gave %s", e.String(), got)
		}
	}

	// The same rows as one table.
	tbl := &Table{Entries: entries}
	reparsed, err := ParseString(tbl.String())
	if err != nil {
		t.Fatalf("reparse of %d rows failed: %v", len(entries), err)
	}
	if reparsed.Len() != len(entries) {
		t.Fatalf("len = %d after round trip, want %d", reparsed.Len(), len(entries))
	}
	for i := range entries {
		if !reparsed.Entries[i].Equal(entries[i]) {
			t.Errorf("entry %d: %s != %s", i, reparsed.Entries[i], entries[i])
		}
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{Byte: 0x20, Ident: Named("VOUT_MODE"), Write: Write("u8"), Read: Read("u8"), Count: Count(1)}
	want := "| 32 | VOUT_MODE | write: u8 | read: u8 | 1 |"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableLookupAndNamed(t *testing.T) {
	tbl, err := ParseString("|1|A|_|_|_|,|2|_|_|_|_|,|3|C|_|_|_|")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	named := tbl.Named()
	if len(named) != 2 || named[0].Ident.Name != "A" || named[1].Ident.Name != "C" {
		t.Errorf("Named() = %v, want [A C]", named)
	}
	e, ok := tbl.Lookup("C")
	if !ok || e.Byte != 3 {
		t.Errorf("Lookup(C) = %v, %v", e, ok)
	}
	if _, ok := tbl.Lookup("_"); ok {
		t.Error("Lookup(_) should not match reserved entries")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.tbl")
	if err := os.WriteFile(good, []byte("| 1 | A | send | _ | 0 |,\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if tbl.Source != good {
		t.Errorf("Source = %q, want %q", tbl.Source, good)
	}

	bad := filepath.Join(dir, "bad.tbl")
	if err := os.WriteFile(bad, []byte("| 1 | A | send | _ | x |\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), bad+":1:") {
		t.Errorf("error = %q, want it prefixed with file position", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.tbl")); err == nil {
		t.Error("expected error for missing file")
	}
}
