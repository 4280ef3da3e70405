package interactive

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newSession() (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSession(&buf), &buf
}

func exec(t *testing.T, s *Session, buf *bytes.Buffer, line string) string {
	t.Helper()
	buf.Reset()
	if !s.Exec(line) {
		t.Fatalf("Exec(%q) ended the session", line)
	}
	return buf.String()
}

func mustContain(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func writeTable(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.tbl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const deviceTable = `|0x03|CLEAR_FAULTS|send|_|0|,
|0x20|VOUT_MODE|write: u8|read: u8|1|,
|0x20|VOUT_MODE_ALIAS|_|read: u8|1|`

func TestExecRow(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "|0x20|VOUT_MODE|write: u8|read: u8|1|")
	mustContain(t, out, "VOUT_MODE = 0x20")
	mustContain(t, out, "WriteVoutMode")
	mustContain(t, out, "ReadVoutMode")
	mustContain(t, out, "WriteByte")
	mustContain(t, out, "W1")
	mustContain(t, out, "R1")
}

func TestExecRowViolation(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "|0x03|CLEAR_FAULTS|send|_|1|,")
	mustContain(t, out, "CLEAR_FAULTS = 0x03")
	mustContain(t, out, "[RES-W]")
}

func TestExecRowReserved(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "|0x09|_|_|_|_|")
	mustContain(t, out, "0x09 reserved")
	mustContain(t, out, "no accessors")
}

func TestExecRowSyntaxError(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "|0x20|VOUT_MODE|write|")
	mustContain(t, out, "Syntax error")
}

func TestExecLoadAndShow(t *testing.T) {
	s, buf := newSession()
	path := writeTable(t, deviceTable)

	out := exec(t, s, buf, "load "+path)
	mustContain(t, out, "3 rows, 3 commands, 4 accessors")
	mustContain(t, out, "[TBL-001]")

	out = exec(t, s, buf, "show clear_faults")
	mustContain(t, out, "CLEAR_FAULTS = 0x03")
	mustContain(t, out, "SendClearFaults")

	out = exec(t, s, buf, "show 0x20")
	mustContain(t, out, "VOUT_MODE = 0x20")
	mustContain(t, out, "VOUT_MODE_ALIAS = 0x20")

	out = exec(t, s, buf, "show 0x7F")
	mustContain(t, out, "No row for 0x7F")
}

func TestExecStrict(t *testing.T) {
	s, buf := newSession()
	path := writeTable(t, deviceTable)
	exec(t, s, buf, "load "+path)

	out := exec(t, s, buf, "emit manifest")
	mustContain(t, out, "write_vout_mode")

	out = exec(t, s, buf, "strict on")
	mustContain(t, out, "strict: true")
	mustContain(t, out, "errors")

	out = exec(t, s, buf, "emit")
	mustContain(t, out, "Table has errors")

	out = exec(t, s, buf, "disable TBL-001")
	if strings.Contains(out, "[TBL-001]") {
		t.Errorf("disabled rule still reported:\n%s", out)
	}

	out = exec(t, s, buf, "emit go")
	mustContain(t, out, "package pmbus")
	mustContain(t, out, "func (c *Client[A]) ReadVoutModeAlias(")
}

func TestExecRules(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "rules")
	for _, id := range []string{"TBL-001", "TBL-002", "TBL-003", "BLK-001", "NAM-001"} {
		mustContain(t, out, id)
	}

	exec(t, s, buf, "disable TBL-003")
	out = exec(t, s, buf, "rules")
	mustContain(t, out, "disabled")

	out = exec(t, s, buf, "severity TBL-002 error")
	if out != "" {
		t.Errorf("severity without a table printed %q", out)
	}
	out = exec(t, s, buf, "rules")
	mustContain(t, out, "TBL-002  error")

	out = exec(t, s, buf, "severity TBL-002 loud")
	mustContain(t, out, "Error:")

	out = exec(t, s, buf, "enable NOPE")
	mustContain(t, out, "Usage:")
}

func TestExecWithoutTable(t *testing.T) {
	s, buf := newSession()

	for _, line := range []string{"show VOUT_MODE", "check", "emit"} {
		out := exec(t, s, buf, line)
		mustContain(t, out, "No table loaded")
	}

	out := exec(t, s, buf, "load /does/not/exist.tbl")
	mustContain(t, out, "Error:")
}

func TestExecUnknownAndQuit(t *testing.T) {
	s, buf := newSession()

	out := exec(t, s, buf, "frobnicate")
	mustContain(t, out, "Unknown command: frobnicate")

	if out := exec(t, s, buf, "   "); out != "" {
		t.Errorf("blank line printed %q", out)
	}

	for _, line := range []string{"quit", "exit", "q"} {
		if s.Exec(line) {
			t.Errorf("Exec(%q) should end the session", line)
		}
	}
}
