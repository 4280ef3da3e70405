package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwire/pmbus-go/pkg/table"
)

func mustParse(t *testing.T, src string) *table.Table {
	t.Helper()
	tbl, err := table.ParseString(src)
	require.NoError(t, err)
	return tbl
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		write *Accessor
		read  *Accessor
	}{
		{
			name:  "single byte",
			row:   "|0x01|VOUT_MODE|write: u8|read: u8|1|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W1", Name: "write_vout_mode", GoName: "WriteVoutMode", Command: "VOUT_MODE", Byte: 0x01, Op: OpWriteByte, PayloadType: "u8"},
			read:  &Accessor{Direction: DirectionRead, Rule: "R1", Name: "read_vout_mode", GoName: "ReadVoutMode", Command: "VOUT_MODE", Byte: 0x01, Op: OpReadByte, PayloadType: "u8"},
		},
		{
			name:  "word",
			row:   "|0x02|VOUT_COMMAND|write: u16|read: u16|2|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W2", Name: "write_vout_command", GoName: "WriteVoutCommand", Command: "VOUT_COMMAND", Byte: 0x02, Op: OpWriteWord, PayloadType: "u16"},
			read:  &Accessor{Direction: DirectionRead, Rule: "R2", Name: "read_vout_command", GoName: "ReadVoutCommand", Command: "VOUT_COMMAND", Byte: 0x02, Op: OpReadWord, PayloadType: "u16"},
		},
		{
			name:  "send only",
			row:   "|0x03|STORE_DEFAULT_ALL|send|_|0|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W5", Name: "send_store_default_all", GoName: "SendStoreDefaultAll", Command: "STORE_DEFAULT_ALL", Byte: 0x03, Op: OpSendByte},
		},
		{
			name:  "variable block",
			row:   "|0x04|MFR_ID|write: bytes|read: bytes|_|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W4", Name: "write_mfr_id", GoName: "WriteMfrId", Command: "MFR_ID", Byte: 0x04, Op: OpBlockWrite, PayloadType: "bytes"},
			read:  &Accessor{Direction: DirectionRead, Rule: "R4", Name: "read_mfr_id", GoName: "ReadMfrId", Command: "MFR_ID", Byte: 0x04, Op: OpBlockRead, PayloadType: "bytes"},
		},
		{
			name: "reserved row",
			row:  "|0x05|_|_|_|_|",
		},
		{
			name: "unimplemented row",
			row:  "|0x07|SMBALERT_MASK|!|!|!|",
		},
		{
			name:  "fixed block",
			row:   "|0x30|COEFFICIENTS|write: bytes|read: bytes|5|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W3", Name: "write_coefficients", GoName: "WriteCoefficients", Command: "COEFFICIENTS", Byte: 0x30, Op: OpBlockWrite, PayloadType: "bytes"},
			read:  &Accessor{Direction: DirectionRead, Rule: "R3", Name: "read_coefficients", GoName: "ReadCoefficients", Command: "COEFFICIENTS", Byte: 0x30, Op: OpBlockRead, PayloadType: "bytes"},
		},
		{
			name: "process call",
			row:  "|0x06|QUERY|write: u8|call: u8|1|",
			write: &Accessor{Direction: DirectionWrite, Rule: "W1", Name: "write_query", GoName: "WriteQuery", Command: "QUERY", Byte: 0x06, Op: OpWriteByte, PayloadType: "u8"},
			read:  &Accessor{Direction: DirectionRead, Rule: "R5", Name: "call_query", GoName: "CallQuery", Command: "QUERY", Byte: 0x06, Op: OpBlockProcessCall, PayloadType: "u8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := table.ParseRow(tt.row)
			require.NoError(t, err)

			er := ResolveEntry(e)
			assert.Empty(t, er.Violations)

			// Positions come from the parser; compare everything else.
			if tt.write != nil {
				tt.write.Pos = e.Pos
			}
			if tt.read != nil {
				tt.read.Pos = e.Pos
			}
			assert.Equal(t, tt.write, er.Write)
			assert.Equal(t, tt.read, er.Read)
		})
	}
}

func TestResolveSendWithPayloadFails(t *testing.T) {
	tbl := mustParse(t, "|0x06|BAD_SEND|send|_|1|")

	res, err := Resolve(tbl, Options{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)

	v := verr.Violations[0]
	assert.Equal(t, RuleInvalidWrite, v.RuleID)
	assert.Equal(t, SeverityError, v.Severity)
	assert.Equal(t, uint8(0x06), v.Byte)
	assert.Equal(t, "BAD_SEND", v.Ident)
	assert.Equal(t, 1, v.Pos.Line)
	assert.Contains(t, v.Suggestion, "byte count to 0")

	require.NotNil(t, res)
	assert.Empty(t, res.Accessors())
}

func TestResolveCollectsAllViolations(t *testing.T) {
	tbl := mustParse(t, `
|0x01|P|send|_|1|,
|0x02|B|write: u8|read: u8|1|,
|0x03|C|write: u8|!|!|,
|0x04|_|write: u8|_|1|,
`)

	res, err := Resolve(tbl, Options{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	var ids []string
	for _, v := range verr.Violations {
		ids = append(ids, v.RuleID)
	}
	assert.Equal(t, []string{RuleInvalidWrite, RuleInvalidWrite, RuleReservedAccessor}, ids)

	assert.Equal(t, 2, verr.Violations[0].Pos.Line)
	assert.Equal(t, 4, verr.Violations[1].Pos.Line)
	assert.Equal(t, 5, verr.Violations[2].Pos.Line)

	// The valid row still resolves.
	names := []string{}
	for _, a := range res.Accessors() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"write_b", "read_b"}, names)

	// TBL-003 notes the mixed row as info without failing it further.
	var infos []string
	for _, v := range res.Warnings() {
		infos = append(infos, v.RuleID)
	}
	assert.Contains(t, infos, "TBL-003")
}

func TestResolveAccessorOrder(t *testing.T) {
	tbl := mustParse(t, `
|0x20|VOUT_MODE|write: u8|read: u8|1|,
|0x03|CLEAR_FAULTS|send|_|0|,
|0x99|MFR_ID|write: bytes|read: bytes|_|,
`)

	res, err := Resolve(tbl, Options{})
	require.NoError(t, err)

	var names []string
	for _, a := range res.Accessors() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"write_vout_mode", "read_vout_mode",
		"send_clear_faults",
		"write_mfr_id", "read_mfr_id",
	}, names)
}

func TestResolveDeterministic(t *testing.T) {
	src := `
|0x01|OPERATION|write: u8|read: u8|1|,
|0x02|ON_OFF_CONFIG|write: u8|read: u8|1|,
|0x03|CLEAR_FAULTS|send|_|0|,
|0x1B|SMBALERT_MASK|write: u16|call: u8|2|,
|0x99|MFR_ID|write: bytes|read: bytes|_|,
|0xAB|_|_|_|_|,
`
	first, err := Resolve(mustParse(t, src), Options{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Resolve(mustParse(t, src), Options{})
		require.NoError(t, err)
		assert.Equal(t, first.Accessors(), again.Accessors())
		assert.Equal(t, first.Violations, again.Violations)
	}
}

func TestResolveReservedAndUnimplementedNeverYieldAccessors(t *testing.T) {
	for _, w := range []table.WriteKind{{Shape: table.WriteReserved}, {Shape: table.WriteUnimplemented}} {
		for _, c := range countClasses {
			e := table.Entry{Byte: 1, Ident: table.Named("X"), Write: w, Count: c}
			a, v := ResolveWrite(e)
			assert.Nil(t, a, "write %s / %s", w, c)
			assert.Nil(t, v, "write %s / %s", w, c)
		}
	}
	for _, r := range []table.ReadKind{{Shape: table.ReadReserved}, {Shape: table.ReadUnimplemented}} {
		for _, c := range countClasses {
			e := table.Entry{Byte: 1, Ident: table.Named("X"), Read: r, Count: c}
			a, v := ResolveRead(e)
			assert.Nil(t, a, "read %s / %s", r, c)
			assert.Nil(t, v, "read %s / %s", r, c)
		}
	}
}

func TestResolveDuplicates(t *testing.T) {
	src := `
|0x01|P|write: u8|read: u8|1|,
|0x01|B|write: u8|read: u8|1|,
|0x02|P|send|_|0|,
`

	t.Run("warnings by default", func(t *testing.T) {
		res, err := Resolve(mustParse(t, src), Options{})
		require.NoError(t, err)

		var ids []string
		for _, v := range res.Warnings() {
			ids = append(ids, v.RuleID)
		}
		assert.Equal(t, []string{"TBL-001", "TBL-002"}, ids)
		assert.Equal(t, []table.Position{{Line: 2, Column: 1, Offset: 1}}, res.Violations[0].Related)
	})

	t.Run("errors when strict", func(t *testing.T) {
		_, err := Resolve(mustParse(t, src), Options{Strict: true})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Violations, 2)
		assert.Contains(t, err.Error(), "2 validation errors")
	})

	t.Run("rule disabled", func(t *testing.T) {
		reg := NewDefaultRegistry()
		reg.Disable("TBL-001")
		reg.Disable("TBL-002")
		res, err := Resolve(mustParse(t, src), Options{Registry: reg, Strict: true})
		require.NoError(t, err)
		assert.Empty(t, res.Violations)
	})

	t.Run("severity override", func(t *testing.T) {
		reg := NewDefaultRegistry()
		reg.SetSeverity("TBL-002", SeverityError)
		_, err := Resolve(mustParse(t, src), Options{Registry: reg})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Violations, 1)
		assert.Equal(t, "TBL-002", verr.Violations[0].RuleID)
	})
}

func TestResolveOversizedBlock(t *testing.T) {
	res, err := Resolve(mustParse(t, "|0x40|BIG|write: bytes|read: bytes|40|"), Options{})
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "BLK-001", res.Violations[0].RuleID)
	assert.Equal(t, SeverityWarning, res.Violations[0].Severity)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{
		Source: "commands.tbl",
		Violations: []Violation{{
			RuleID:   RuleInvalidRead,
			Severity: SeverityError,
			Message:  "bad read",
			Pos:      table.Position{Line: 3, Column: 1},
			Byte:     0x10,
			Ident:    "X",
		}},
	}
	assert.Equal(t, "commands.tbl: 1 validation error\n  3:1: [RES-R] error: 0x10 X: bad read", err.Error())
}
