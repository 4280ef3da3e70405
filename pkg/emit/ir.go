package emit

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// IRVersion is bumped whenever the encoded Program layout changes.
const IRVersion = 1

type irEnvelope struct {
	Version int      `cbor:"1,keyasint"`
	Program *Program `cbor:"2,keyasint"`
}

var irEncMode cbor.EncMode

func init() {
	var err error
	irEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create IR CBOR encoder mode: %v", err))
	}
}

// EncodeIR encodes the data part of p. Body closures are not encoded.
// Equal programs encode to identical bytes.
func EncodeIR(p *Program) ([]byte, error) {
	data, err := irEncMode.Marshal(irEnvelope{Version: IRVersion, Program: p})
	if err != nil {
		return nil, fmt.Errorf("encoding IR: %w", err)
	}
	return data, nil
}

// DecodeIR decodes a program encoded by EncodeIR and binds its bodies.
func DecodeIR(data []byte) (*Program, error) {
	var env irEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding IR: %w", err)
	}
	if env.Version != IRVersion {
		return nil, fmt.Errorf("decoding IR: version %d, want %d", env.Version, IRVersion)
	}
	if env.Program == nil {
		return nil, fmt.Errorf("decoding IR: missing program")
	}
	env.Program.Bind()
	return env.Program, nil
}
