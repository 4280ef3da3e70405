package resolve

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// Direction is the data direction of an accessor.
type Direction uint8

const (
	DirectionWrite Direction = iota
	DirectionRead
)

func (d Direction) String() string {
	switch d {
	case DirectionWrite:
		return "write"
	case DirectionRead:
		return "read"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Operation is the SMBus primitive an accessor forwards to.
type Operation uint8

const (
	OpNone Operation = iota
	OpSendByte
	OpWriteByte
	OpWriteWord
	OpBlockWrite
	OpReadByte
	OpReadWord
	OpBlockRead
	OpBlockProcessCall
)

// opNames holds the bus method name for each operation.
var opNames = map[Operation]string{
	OpNone:             "None",
	OpSendByte:         "SendByte",
	OpWriteByte:        "WriteByte",
	OpWriteWord:        "WriteWord",
	OpBlockWrite:       "BlockWrite",
	OpReadByte:         "ReadByte",
	OpReadWord:         "ReadWord",
	OpBlockRead:        "BlockRead",
	OpBlockProcessCall: "BlockProcessCall",
}

// String returns the name of the bus method implementing the operation.
func (o Operation) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Operation(%d)", uint8(o))
}

// ParseOperation returns the operation with the given bus method name.
func ParseOperation(s string) (Operation, error) {
	for op, name := range opNames {
		if name == s {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("unknown operation %q", s)
}

// TakesPayload reports whether the operation sends data after the command.
func (o Operation) TakesPayload() bool {
	switch o {
	case OpWriteByte, OpWriteWord, OpBlockWrite, OpBlockProcessCall:
		return true
	}
	return false
}

// ReturnsData reports whether the operation returns data to the caller.
func (o Operation) ReturnsData() bool {
	switch o {
	case OpReadByte, OpReadWord, OpBlockRead, OpBlockProcessCall:
		return true
	}
	return false
}

// IsBlock reports whether the operation moves a length-prefixed block.
func (o Operation) IsBlock() bool {
	switch o {
	case OpBlockWrite, OpBlockRead, OpBlockProcessCall:
		return true
	}
	return false
}

// Accessor is a resolved accessor method for one entry and direction.
// Accessors are computed once per compilation and never modified.
type Accessor struct {
	Direction Direction

	// Rule is the decision table row that produced the accessor (e.g. "W1").
	Rule string

	// Name is the protocol-level name, e.g. "write_vout_mode".
	Name string

	// GoName is the exported method name, e.g. "WriteVoutMode".
	GoName string

	// Command is the constant the accessor forwards, e.g. "VOUT_MODE".
	Command string

	// Byte is the command code value.
	Byte uint8

	// Op is the bus primitive the accessor calls.
	Op Operation

	// PayloadType is the declared table type. Empty for send. For process
	// calls it is advisory only: call payloads are raw blocks.
	PayloadType string

	// Pos is the position of the source row.
	Pos table.Position
}

// Prefix returns the accessor name prefix ("write", "send", "read" or "call").
func (a *Accessor) Prefix() string {
	i := strings.IndexByte(a.Name, '_')
	if i < 0 {
		return a.Name
	}
	return a.Name[:i]
}

func (a *Accessor) String() string {
	return fmt.Sprintf("%s -> %s(%s)", a.Name, a.Op, a.Command)
}

// SnakeCase lower-cases an identifier and separates its words with
// underscores. Word boundaries are existing underscores, lower-to-upper case
// changes, the last capital of an acronym run, and letter/digit changes.
//
//	VOUT_MODE     -> vout_mode
//	VoutMode      -> vout_mode
//	READ_TEMPERATURE_1 -> read_temperature_1
//	MFRModel2     -> mfr_model_2
func SnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	lastUnderscore := true
	for i, r := range runes {
		if r == '_' {
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
			continue
		}
		if i > 0 && !lastUnderscore && isWordBoundary(runes, i) {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToLower(r))
		lastUnderscore = false
	}
	return strings.TrimSuffix(sb.String(), "_")
}

func isWordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}

// GoName converts a snake_case accessor name to an exported Go identifier.
//
//	write_vout_mode -> WriteVoutMode
//	read_temperature_1 -> ReadTemperature1
func GoName(snake string) string {
	var sb strings.Builder
	for _, word := range strings.Split(snake, "_") {
		if word == "" {
			continue
		}
		r := []rune(word)
		sb.WriteRune(unicode.ToUpper(r[0]))
		sb.WriteString(string(r[1:]))
	}
	return sb.String()
}

func newAccessor(dir Direction, rule, prefix string, e table.Entry, op Operation, typ string) *Accessor {
	name := prefix + "_" + SnakeCase(e.Ident.Name)
	return &Accessor{
		Direction:   dir,
		Rule:        rule,
		Name:        name,
		GoName:      GoName(name),
		Command:     e.Ident.Name,
		Byte:        e.Byte,
		Op:          op,
		PayloadType: typ,
		Pos:         e.Pos,
	}
}
