package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestBackend(t *testing.T) {
	p := mustCompile(t, scenarioTable+",\n|0x06|QUERY|_|call: u8|1|")
	p.Source = "commands.tbl"

	out, err := ManifestBackend{}.Render(p)
	require.NoError(t, err)

	m, err := ParseManifest(out)
	require.NoError(t, err)

	assert.Equal(t, "pmbus", m.Package)
	assert.Equal(t, "PMBus", m.Interface)
	assert.Equal(t, "commands.tbl", m.Source)
	assert.Equal(t, []ManifestCommand{
		{Name: "VOUT_MODE", Code: "0x01", Line: 1},
		{Name: "VOUT_COMMAND", Code: "0x02", Line: 2},
		{Name: "STORE_DEFAULT_ALL", Code: "0x03", Line: 3},
		{Name: "MFR_ID", Code: "0x04", Line: 4},
		{Name: "QUERY", Code: "0x06", Line: 6},
	}, m.Commands)

	require.Len(t, m.Accessors, 8)
	assert.Equal(t, ManifestAccessor{
		Name:    "write_vout_mode",
		Method:  "WriteVoutMode",
		Command: "VOUT_MODE",
		Rule:    p.Methods[0].Accessor.Rule,
		Op:      "WriteByte",
		Type:    "uint8",
		Body:    "return WriteByte(VOUT_MODE, data as byte)",
	}, m.Accessors[0])
	assert.Equal(t, "v, err = ReadWord(VOUT_COMMAND); return v as uint16, err", m.Accessors[3].Body)
	assert.Equal(t, "return SendByte(STORE_DEFAULT_ALL)", m.Accessors[4].Body)
	assert.Equal(t, "", m.Accessors[4].Type)
	assert.Equal(t, "return BlockProcessCall(QUERY, block)", m.Accessors[7].Body)
}

func TestManifestIsDeterministic(t *testing.T) {
	a, err := ManifestBackend{}.Render(mustCompile(t, scenarioTable))
	require.NoError(t, err)
	b, err := ManifestBackend{}.Render(mustCompile(t, scenarioTable))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), "- name: write_vout_mode\n")
}

func TestManifestEmptyProgram(t *testing.T) {
	out, err := ManifestBackend{}.Render(mustCompile(t, "|0x05|_|_|_|_|"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "commands: []")
	assert.Contains(t, string(out), "accessors: []")
}

func TestParseManifestInvalid(t *testing.T) {
	_, err := ParseManifest([]byte("commands: [unterminated"))
	assert.Error(t, err)
}
