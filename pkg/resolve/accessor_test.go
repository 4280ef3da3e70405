package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwire/pmbus-go/pkg/table"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"VOUT_MODE", "vout_mode"},
		{"VoutMode", "vout_mode"},
		{"READ_TEMPERATURE_1", "read_temperature_1"},
		{"MFRModel2", "mfr_model_2"},
		{"PMBUS_REVISION", "pmbus_revision"},
		{"IOUT_OC_FAULT_LIMIT", "iout_oc_fault_limit"},
		{"A", "a"},
		{"__X__Y_", "x_y"},
		{"readEIN", "read_ein"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.in))
		})
	}
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "WriteVoutMode", GoName("write_vout_mode"))
	assert.Equal(t, "ReadTemperature1", GoName("read_temperature_1"))
	assert.Equal(t, "SendClearFaults", GoName("send_clear_faults"))
	assert.Equal(t, "CallPageQuery", GoName("call_page__query"))
}

func TestOperation(t *testing.T) {
	tests := []struct {
		op      Operation
		name    string
		payload bool
		returns bool
		isBlock bool
	}{
		{OpSendByte, "SendByte", false, false, false},
		{OpWriteByte, "WriteByte", true, false, false},
		{OpWriteWord, "WriteWord", true, false, false},
		{OpBlockWrite, "BlockWrite", true, false, true},
		{OpReadByte, "ReadByte", false, true, false},
		{OpReadWord, "ReadWord", false, true, false},
		{OpBlockRead, "BlockRead", false, true, true},
		{OpBlockProcessCall, "BlockProcessCall", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.op.String())
			assert.Equal(t, tt.payload, tt.op.TakesPayload())
			assert.Equal(t, tt.returns, tt.op.ReturnsData())
			assert.Equal(t, tt.isBlock, tt.op.IsBlock())

			parsed, err := ParseOperation(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.op, parsed)
		})
	}

	_, err := ParseOperation("QuickCommand")
	assert.Error(t, err)
	assert.Equal(t, "Operation(99)", Operation(99).String())
}

func TestAccessorPrefix(t *testing.T) {
	e, err := table.ParseRow("|0x03|CLEAR_FAULTS|send|_|0|")
	require.NoError(t, err)

	a, v := ResolveWrite(e)
	require.Nil(t, v)
	require.NotNil(t, a)
	assert.Equal(t, "send", a.Prefix())
	assert.Equal(t, "send_clear_faults -> SendByte(CLEAR_FAULTS)", a.String())
}
