package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwire/pmbus-go/pkg/resolve"
	"github.com/powerwire/pmbus-go/pkg/table"
)

func compile(t *testing.T, src string, opts Options) (*Program, error) {
	t.Helper()
	tbl, err := table.ParseString(src)
	require.NoError(t, err)
	res, err := resolve.Resolve(tbl, resolve.Options{})
	require.NoError(t, err)
	return Build(res, opts)
}

func mustCompile(t *testing.T, src string) *Program {
	t.Helper()
	p, err := compile(t, src, Options{})
	require.NoError(t, err)
	return p
}

func methodNames(p *Program) []string {
	var names []string
	for _, m := range p.Methods {
		names = append(names, m.Name())
	}
	return names
}

func TestBuildDefaults(t *testing.T) {
	p := mustCompile(t, "|0x01|VOUT_MODE|write: u8|read: u8|1|")

	assert.Equal(t, DefaultPackage, p.Package)
	assert.Equal(t, DefaultInterface, p.Interface)
	assert.Equal(t, DefaultSMBusImport, p.SMBusImport)
	assert.Equal(t, []Constant{{Name: "VOUT_MODE", Value: 0x01, Pos: table.Position{Line: 1, Column: 1}}}, p.Constants)
}

func TestBuildScenarios(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		constants int
		methods   []string
		convs     []Conversion
	}{
		{
			name:      "byte",
			row:       "|0x01|VOUT_MODE|write: u8|read: u8|1|",
			constants: 1,
			methods:   []string{"WriteVoutMode", "ReadVoutMode"},
			convs: []Conversion{
				{Class: ClassInteger, Type: "uint8", Wire: WireByte},
				{Class: ClassInteger, Type: "uint8", Wire: WireByte},
			},
		},
		{
			name:      "word",
			row:       "|0x02|VOUT_COMMAND|write: u16|read: u16|2|",
			constants: 1,
			methods:   []string{"WriteVoutCommand", "ReadVoutCommand"},
			convs: []Conversion{
				{Class: ClassInteger, Type: "uint16", Wire: WireWord},
				{Class: ClassInteger, Type: "uint16", Wire: WireWord},
			},
		},
		{
			name:      "send",
			row:       "|0x03|STORE_DEFAULT_ALL|send|_|0|",
			constants: 1,
			methods:   []string{"SendStoreDefaultAll"},
			convs:     []Conversion{{Wire: WireNone}},
		},
		{
			name:      "variable block",
			row:       "|0x04|MFR_ID|write: bytes|read: bytes|_|",
			constants: 1,
			methods:   []string{"WriteMfrId", "ReadMfrId"},
			convs: []Conversion{
				{Class: ClassBlock, Type: "[]byte", Wire: WireBlock},
				{Class: ClassBlock, Type: "[]byte", Wire: WireBlock},
			},
		},
		{
			name: "reserved",
			row:  "|0x05|_|_|_|_|",
		},
		{
			name:      "unimplemented",
			row:       "|0x07|SMBALERT_MASK|!|!|!|",
			constants: 1,
		},
		{
			name:      "integer in fixed block",
			row:       "|0x30|READ_EIN|_|read: u32|6|",
			constants: 1,
			methods:   []string{"ReadReadEin"},
			convs:     []Conversion{{Class: ClassInteger, Type: "uint32", Wire: WireBlock, Width: 6}},
		},
		{
			name:      "process call",
			row:       "|0x06|QUERY|write: u8|call: u8|1|",
			constants: 1,
			methods:   []string{"WriteQuery", "CallQuery"},
			convs: []Conversion{
				{Class: ClassInteger, Type: "uint8", Wire: WireByte},
				{Class: ClassRaw, Type: "[]byte", Wire: WireBlock},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, tt.row)
			assert.Len(t, p.Constants, tt.constants)
			assert.Equal(t, tt.methods, methodNames(p))
			for i, m := range p.Methods {
				assert.Equal(t, tt.convs[i], m.Conv, m.Name())
				assert.NotNil(t, m.Body, m.Name())
			}
		})
	}
}

func TestBuildParamsAndResults(t *testing.T) {
	p := mustCompile(t, "|0x01|VOUT_MODE|write: u8|read: u8|1|,\n|0x03|CLEAR_FAULTS|send|_|0|,\n|0x06|QUERY|_|call: u8|1|")
	require.Len(t, p.Methods, 4)

	write, read, send, call := p.Methods[0], p.Methods[1], p.Methods[2], p.Methods[3]
	assert.Equal(t, []Param{{Name: "data", Type: "uint8"}}, write.Params)
	assert.Empty(t, write.Results)
	assert.Empty(t, read.Params)
	assert.Equal(t, []Param{{Name: "value", Type: "uint8"}}, read.Results)
	assert.Empty(t, send.Params)
	assert.Empty(t, send.Results)
	assert.Equal(t, []Param{{Name: "block", Type: "[]byte"}}, call.Params)
	assert.Equal(t, []Param{{Name: "response", Type: "[]byte"}}, call.Results)
}

func TestBuildCustomTypes(t *testing.T) {
	p, err := compile(t, "|0x20|VOUT_MODE|write: VoutMode|read: VoutMode|1|,\n|0x99|MFR_ID|_|read: string|_|", Options{
		Types: TypeMap{"VoutMode": {Go: "mode.VoutMode", Class: ClassInteger, Size: 1}},
	})
	require.NoError(t, err)
	require.Len(t, p.Methods, 3)
	assert.Equal(t, "mode.VoutMode", p.Methods[0].Conv.Type)
	assert.Equal(t, Conversion{Class: ClassBlock, Type: "string", Wire: WireBlock}, p.Methods[2].Conv)
}

func TestBuildTypeProblems(t *testing.T) {
	src := "|0x01|P|write: bytes|_|1|,\n" +
		"|0x02|B|_|read: bool|_|,\n" +
		"|0x03|C|write: Custom|_|_|,\n" +
		"|0x04|D|write: u8|read: u8|1|"
	p, err := compile(t, src, Options{
		Types: TypeMap{"Custom": {Go: "Custom", Class: ClassInteger}},
	})

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Len(t, typeErr.Problems, 3)
	assert.Equal(t, "write_p", typeErr.Problems[0].Accessor)
	assert.Equal(t, "read_b", typeErr.Problems[1].Accessor)
	assert.Equal(t, "write_c", typeErr.Problems[2].Accessor)
	assert.Contains(t, err.Error(), "1:1: write_p: type bytes is a block type and cannot be carried by WriteByte")
	assert.Contains(t, err.Error(), "has no known width")

	// The rest of the table still builds.
	require.NotNil(t, p)
	assert.Equal(t, []string{"WriteD", "ReadD"}, methodNames(p))
	assert.Len(t, p.Constants, 4)
}

func TestBuildKeepsFirstOfRepeatedNames(t *testing.T) {
	p := mustCompile(t, "|0x01|P|write: u8|_|1|,\n|0x02|P|write: u16|read: u16|2|")

	require.Len(t, p.Constants, 1)
	assert.Equal(t, uint8(0x01), p.Constants[0].Value)
	assert.Equal(t, []string{"WriteP", "ReadP"}, methodNames(p))
	assert.Equal(t, "uint8", p.Methods[0].Conv.Type)
}

func TestMethodDoc(t *testing.T) {
	p := mustCompile(t, "|0x01|VOUT_MODE|write: u8|read: u8|1|,\n|0x03|CLEAR_FAULTS|send|_|0|,\n|0x06|QUERY|_|call: u8|1|")

	var docs []string
	for _, m := range p.Methods {
		docs = append(docs, m.Doc())
	}
	assert.Equal(t, []string{
		"WriteVoutMode writes VOUT_MODE (0x01) using WriteByte.",
		"ReadVoutMode reads VOUT_MODE (0x01) using ReadByte.",
		"SendClearFaults sends CLEAR_FAULTS (0x03) using SendByte.",
		"CallQuery calls QUERY (0x06) using BlockProcessCall.",
	}, docs)
}

func TestTypeMapLookup(t *testing.T) {
	types := DefaultTypes()

	assert.Equal(t, TypeInfo{Go: "uint16", Class: ClassInteger, Size: 2}, types.Lookup("u16", resolve.OpWriteWord))
	assert.Equal(t, TypeInfo{Go: "Mode", Class: ClassInteger}, types.Lookup("Mode", resolve.OpReadByte))
	assert.Equal(t, TypeInfo{Go: "Model", Class: ClassBlock}, types.Lookup("Model", resolve.OpBlockRead))
	assert.Equal(t, TypeInfo{Go: "[]uint8", Class: ClassBlock}, types.Lookup("[]uint8", resolve.OpReadWord))

	overlaid := types.With(TypeMap{"u16": {Go: "Linear16", Class: ClassInteger, Size: 2}})
	assert.Equal(t, "Linear16", overlaid["u16"].Go)
	assert.Equal(t, "uint16", types["u16"].Go, "With must not modify the receiver")
}

func TestParseClass(t *testing.T) {
	for _, c := range []Class{ClassInteger, ClassBool, ClassBlock, ClassRaw} {
		got, err := ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseClass("BLOCK")
	require.NoError(t, err)
	assert.Equal(t, ClassBlock, got)

	_, err = ParseClass("float")
	assert.Error(t, err)
	assert.Equal(t, "Class(9)", Class(9).String())
}
