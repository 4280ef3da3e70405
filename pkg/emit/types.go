package emit

import (
	"fmt"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/resolve"
)

// Class is how a payload type converts to and from the wire.
type Class uint8

const (
	// ClassInteger types convert with a numeric conversion.
	ClassInteger Class = iota
	// ClassBool types are zero or non-zero.
	ClassBool
	// ClassBlock types are byte slices or strings.
	ClassBlock
	// ClassRaw payloads are passed through as []byte (process calls).
	ClassRaw
)

var classNames = map[Class]string{
	ClassInteger: "integer",
	ClassBool:    "bool",
	ClassBlock:   "block",
	ClassRaw:     "raw",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// ParseClass parses a class name as used in configuration files.
func ParseClass(s string) (Class, error) {
	for c, name := range classNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown type class %q", s)
}

// TypeInfo maps a table type to a Go type.
type TypeInfo struct {
	Go    string `yaml:"go" cbor:"1,keyasint"`
	Class Class  `yaml:"class" cbor:"2,keyasint"`

	// Size is the encoded width in bytes, 0 when unknown.
	Size int `yaml:"size,omitempty" cbor:"3,keyasint,omitempty"`
}

// TypeMap maps table type names to Go types.
type TypeMap map[string]TypeInfo

// DefaultTypes returns the built-in type mappings.
func DefaultTypes() TypeMap {
	return TypeMap{
		"u8":     {Go: "uint8", Class: ClassInteger, Size: 1},
		"u16":    {Go: "uint16", Class: ClassInteger, Size: 2},
		"u32":    {Go: "uint32", Class: ClassInteger, Size: 4},
		"u64":    {Go: "uint64", Class: ClassInteger, Size: 8},
		"i8":     {Go: "int8", Class: ClassInteger, Size: 1},
		"i16":    {Go: "int16", Class: ClassInteger, Size: 2},
		"i32":    {Go: "int32", Class: ClassInteger, Size: 4},
		"i64":    {Go: "int64", Class: ClassInteger, Size: 8},
		"bool":   {Go: "bool", Class: ClassBool, Size: 1},
		"bytes":  {Go: "[]byte", Class: ClassBlock},
		"string": {Go: "string", Class: ClassBlock},
		"[]byte": {Go: "[]byte", Class: ClassBlock},
	}
}

// With returns a copy of m overlaid with extra.
func (m TypeMap) With(extra TypeMap) TypeMap {
	out := make(TypeMap, len(m)+len(extra))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Lookup returns the mapping for a table type. Unknown names pass through
// verbatim: slices are blocks, anything else is an integer on byte and word
// operations and a block on block operations.
func (m TypeMap) Lookup(name string, op resolve.Operation) TypeInfo {
	if info, ok := m[name]; ok {
		return info
	}
	if strings.HasPrefix(name, "[]") {
		return TypeInfo{Go: name, Class: ClassBlock}
	}
	if op.IsBlock() {
		return TypeInfo{Go: name, Class: ClassBlock}
	}
	return TypeInfo{Go: name, Class: ClassInteger}
}
