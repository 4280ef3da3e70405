package resolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/powerwire/pmbus-go/pkg/table"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.expected {
				t.Errorf("Severity.String() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{
		"error":   SeverityError,
		"WARNING": SeverityWarning,
		"warn":    SeverityWarning,
		"info":    SeverityInfo,
	} {
		got, err := ParseSeverity(in)
		if err != nil {
			t.Fatalf("ParseSeverity(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}

func TestViolation_String(t *testing.T) {
	tests := []struct {
		name     string
		v        Violation
		contains []string
	}{
		{
			name: "basic violation",
			v: Violation{
				RuleID:   "TEST-001",
				Severity: SeverityError,
				Message:  "test message",
				Byte:     0x1B,
				Ident:    "SMBALERT_MASK",
			},
			contains: []string{"TEST-001", "error", "test message", "0x1B", "SMBALERT_MASK"},
		},
		{
			name: "with related rows",
			v: Violation{
				RuleID:   "TEST-002",
				Severity: SeverityWarning,
				Message:  "duplicate",
				Related:  []table.Position{{Line: 4, Column: 1}, {Line: 9, Column: 3}},
			},
			contains: []string{"TEST-002", "warning", "see 4:1, 9:3"},
		},
		{
			name: "with suggestion",
			v: Violation{
				RuleID:     "TEST-003",
				Severity:   SeverityInfo,
				Message:    "partially unimplemented",
				Suggestion: "mark every column '!'",
			},
			contains: []string{"TEST-003", "info", "-> mark every column '!'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.v.String()
			for _, substr := range tt.contains {
				if !strings.Contains(s, substr) {
					t.Errorf("Violation.String() = %q, expected to contain %q", s, substr)
				}
			}
		})
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors(nil) {
		t.Error("HasErrors(nil) = true")
	}
	if HasErrors([]Violation{{Severity: SeverityWarning}, {Severity: SeverityInfo}}) {
		t.Error("HasErrors() = true without errors")
	}
	if !HasErrors([]Violation{{Severity: SeverityWarning}, {Severity: SeverityError}}) {
		t.Error("HasErrors() = false with an error")
	}
}

func TestFilterBySeverity(t *testing.T) {
	violations := []Violation{
		{RuleID: "E", Severity: SeverityError},
		{RuleID: "W", Severity: SeverityWarning},
		{RuleID: "I", Severity: SeverityInfo},
	}

	if got := FilterBySeverity(violations, SeverityError); len(got) != 1 || got[0].RuleID != "E" {
		t.Errorf("FilterBySeverity(error) = %v", got)
	}
	if got := FilterBySeverity(violations, SeverityWarning); len(got) != 2 {
		t.Errorf("FilterBySeverity(warning) returned %d, want 2", len(got))
	}
	if got := FilterBySeverity(violations, SeverityInfo); len(got) != 3 {
		t.Errorf("FilterBySeverity(info) returned %d, want 3", len(got))
	}
}

func TestRuleRegistry(t *testing.T) {
	reg := NewDefaultRegistry()

	if reg.Count() != 6 {
		t.Fatalf("Count() = %d, want 6", reg.Count())
	}

	var ids []string
	for _, r := range reg.AllRules() {
		ids = append(ids, r.ID())
	}
	if got := strings.Join(ids, ","); got != "TBL-001,TBL-002,TBL-003,BLK-001,NAM-001,NAM-002" {
		t.Errorf("rule order = %s", got)
	}

	if got := strings.Join(reg.Categories(), ","); got != "block,naming,table" {
		t.Errorf("Categories() = %s", got)
	}

	reg.Disable("TBL-003")
	if reg.IsEnabled("TBL-003") {
		t.Error("TBL-003 still enabled after Disable")
	}
	if n := len(reg.EnabledRules()); n != 5 {
		t.Errorf("EnabledRules() = %d, want 5", n)
	}
	reg.Enable("TBL-003")
	if !reg.IsEnabled("TBL-003") {
		t.Error("TBL-003 disabled after Enable")
	}

	if reg.GetSeverity("TBL-001") != SeverityWarning {
		t.Errorf("GetSeverity(TBL-001) = %v", reg.GetSeverity("TBL-001"))
	}
	reg.SetSeverity("TBL-001", SeverityError)
	if reg.GetSeverity("TBL-001") != SeverityError {
		t.Error("SetSeverity did not take effect")
	}
	if reg.GetSeverity("NOPE") != SeverityError {
		t.Error("unknown rules default to error")
	}
	if reg.GetRule("NOPE") != nil {
		t.Error("GetRule returned a rule for an unknown ID")
	}
}

func TestTableRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		src   string
		lines []int
	}{
		{
			name:  "TBL-001 duplicate byte",
			rule:  NewTBL001(),
			src:   "|1|A|send|_|0|,\n|2|B|send|_|0|,\n|1|C|send|_|0|",
			lines: []int{3},
		},
		{
			name:  "TBL-001 reserved rows count",
			rule:  NewTBL001(),
			src:   "|1|_|_|_|_|,\n|1|_|_|_|_|",
			lines: []int{2},
		},
		{
			name:  "TBL-002 duplicate identifier",
			rule:  NewTBL002(),
			src:   "|1|A|send|_|0|,\n|2|A|send|_|0|,\n|3|A|send|_|0|",
			lines: []int{2, 3},
		},
		{
			name: "TBL-002 ignores reserved",
			rule: NewTBL002(),
			src:  "|1|_|_|_|_|,\n|2|_|_|_|_|",
		},
		{
			name:  "TBL-003 mixed markers",
			rule:  NewTBL003(),
			src:   "|1|A|!|!|!|,\n|2|B|!|read: u8|1|,\n|3|C|write: u8|_|!|",
			lines: []int{2, 3},
		},
		{
			name:  "BLK-001 oversized block",
			rule:  NewBLK001(),
			src:   "|1|A|write: bytes|_|32|,\n|2|B|_|read: bytes|33|,\n|3|C|_|call: bytes|200|,\n|4|D|send|_|0|",
			lines: []int{2, 3},
		},
		{
			name:  "NAM-001 shadows a bus primitive",
			rule:  NewNAM001(),
			src:   "|1|BYTE|write: u8|read: u8|1|,\n|2|WORD_X|write: u16|_|2|",
			lines: []int{1, 1},
		},
		{
			name:  "NAM-001 differently spelled identifiers",
			rule:  NewNAM001(),
			src:   "|1|VOUT_MODE|write: u8|read: u8|1|,\n|2|VoutMode|write: u8|_|1|",
			lines: []int{2},
		},
		{
			name: "NAM-001 leaves verbatim repeats to TBL-002",
			rule: NewNAM001(),
			src:  "|1|A|write: u8|_|1|,\n|2|A|write: u8|_|1|",
		},
		{
			name:  "NAM-002 keywords",
			rule:  NewNAM002(),
			src:   "|1|type|send|_|0|,\n|2|TYPE|send|_|0|,\n|3|func|_|read: u8|1|",
			lines: []int{1, 3},
		},
		{
			name:  "NAM-002 predeclared identifiers",
			rule:  NewNAM002(),
			src:   "|1|uint8|send|_|0|,\n|2|nil|send|_|0|,\n|3|error|send|_|0|,\n|4|Uint8|send|_|0|",
			lines: []int{1, 2, 3},
		},
		{
			name:  "NAM-002 generated declarations",
			rule:  NewNAM002(),
			src:   "|1|New|write: u8|read: u8|1|,\n|2|Client|send|_|0|,\n|3|PMBus|send|_|0|,\n|4|NEW|send|_|0|",
			lines: []int{1, 2, 3},
		},
		{
			name:  "NAM-002 imported packages",
			rule:  NewNAM002(),
			src:   "|1|context|send|_|0|,\n|2|smbus|send|_|0|",
			lines: []int{1, 2},
		},
		{
			name:  "NAM-002 method parameters",
			rule:  NewNAM002(),
			src:   "|1|addr|send|_|0|,\n|2|data|write: u8|_|1|,\n|3|A|send|_|0|,\n|4|ADDR|send|_|0|",
			lines: []int{1, 2, 3},
		},
		{
			name: "NAM-002 ignores reserved rows",
			rule: NewNAM002(),
			src:  "|1|_|_|_|_|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := table.ParseString(tt.src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := tt.rule.Check(tbl)
			if len(got) != len(tt.lines) {
				t.Fatalf("got %d violations, want %d: %v", len(got), len(tt.lines), got)
			}
			for i, v := range got {
				if v.RuleID != tt.rule.ID() {
					t.Errorf("violation %d has rule %s", i, v.RuleID)
				}
				if v.Pos.Line != tt.lines[i] {
					t.Errorf("violation %d at line %d, want %d", i, v.Pos.Line, tt.lines[i])
				}
			}
		})
	}
}

func TestNAM002Scope(t *testing.T) {
	tbl, err := table.ParseString("|1|Device|send|_|0|,\n|2|PMBus|send|_|0|,\n|3|mode|send|_|0|,\n|4|cbor|send|_|0|")
	if err != nil {
		t.Fatal(err)
	}

	scope := Scope{
		Interface: "Device",
		Imports:   []string{"example.com/psu/mode", "github.com/fxamacker/cbor/v2"},
	}
	got := NewNAM002().CheckScope(tbl, scope)

	var idents []string
	for _, v := range got {
		idents = append(idents, v.Ident)
	}
	if s := strings.Join(idents, ","); s != "Device,mode,cbor" {
		t.Errorf("violations for %s, want Device,mode,cbor", s)
	}
	if len(got) > 0 && !strings.Contains(got[0].Message, "generated interface") {
		t.Errorf("message = %q", got[0].Message)
	}
}

func TestResolveUsesScope(t *testing.T) {
	tbl, err := table.ParseString("|1|Device|write: u8|read: u8|1|")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(tbl, Options{}); err != nil {
		t.Fatalf("Device is free under the default interface: %v", err)
	}

	_, err = Resolve(tbl, Options{Interface: "Device"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Resolve error = %v, want *ValidationError", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].RuleID != "NAM-002" || verr.Violations[0].Pos.Line != 1 {
		t.Errorf("violations = %v", verr.Violations)
	}
}
