package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents one SMBus transaction.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the transaction started (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// BusID identifies the traced bus handle (UUID).
	BusID string `cbor:"2,keyasint"`

	// Direction indicates data flow.
	Direction Direction `cbor:"3,keyasint"`

	// Op is the bus primitive performed.
	Op Op `cbor:"4,keyasint"`

	// Address is the target device address.
	Address uint16 `cbor:"5,keyasint"`

	// Command is the command code. Nil for primitives that carry none
	// (quick command, send byte, receive byte).
	Command *uint8 `cbor:"6,keyasint,omitempty"`

	// Sent is the payload written after the command code.
	Sent []byte `cbor:"7,keyasint,omitempty"`

	// Received is the data returned by the device.
	Received []byte `cbor:"8,keyasint,omitempty"`

	// Duration is how long the transaction took.
	Duration time.Duration `cbor:"9,keyasint,omitempty"`

	// Error is the transport error message, if the transaction failed.
	Error string `cbor:"10,keyasint,omitempty"`
}

// Failed reports whether the transaction returned an error.
func (e Event) Failed() bool { return e.Error != "" }

// CommandString returns the command code as hex, or "-" when absent.
func (e Event) CommandString() string {
	if e.Command == nil {
		return "-"
	}
	return fmt.Sprintf("0x%02X", *e.Command)
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionOut indicates data written to the device.
	DirectionOut Direction = 0
	// DirectionIn indicates data read from the device.
	DirectionIn Direction = 1
	// DirectionBoth indicates a process call: written then read back.
	DirectionBoth Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	case DirectionBoth:
		return "CALL"
	default:
		return "UNKNOWN"
	}
}

// Op identifies an SMBus primitive.
type Op uint8

const (
	OpQuickCommand Op = iota
	OpSendByte
	OpReceiveByte
	OpWriteByte
	OpWriteWord
	OpReadByte
	OpReadWord
	OpProcessCall
	OpBlockWrite
	OpBlockRead
	OpBlockProcessCall
)

var opNames = [...]string{
	OpQuickCommand:     "QuickCommand",
	OpSendByte:         "SendByte",
	OpReceiveByte:      "ReceiveByte",
	OpWriteByte:        "WriteByte",
	OpWriteWord:        "WriteWord",
	OpReadByte:         "ReadByte",
	OpReadWord:         "ReadWord",
	OpProcessCall:      "ProcessCall",
	OpBlockWrite:       "BlockWrite",
	OpBlockRead:        "BlockRead",
	OpBlockProcessCall: "BlockProcessCall",
}

// String returns the primitive name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "UNKNOWN"
}

// Direction returns the data flow of the primitive.
func (o Op) Direction() Direction {
	switch o {
	case OpReceiveByte, OpReadByte, OpReadWord, OpBlockRead:
		return DirectionIn
	case OpProcessCall, OpBlockProcessCall:
		return DirectionBoth
	default:
		return DirectionOut
	}
}

// ParseOp parses a primitive name, case-insensitively.
func ParseOp(s string) (Op, error) {
	for i, name := range opNames {
		if strings.EqualFold(name, s) {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bus operation %q", s)
}

// Ops returns every primitive in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opNames))
	for i := range opNames {
		ops[i] = Op(i)
	}
	return ops
}
