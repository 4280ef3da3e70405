package table

import (
	"fmt"
	"strings"
)

// Ident is the identifier column of a row.
type Ident struct {
	// Reserved is true for "_": the command code has no name.
	Reserved bool

	// Name is the constant name with its original casing.
	Name string
}

// Named returns an identifier for name.
func Named(name string) Ident { return Ident{Name: name} }

// ReservedIdent is the "_" identifier.
var ReservedIdent = Ident{Reserved: true}

func (i Ident) String() string {
	if i.Reserved {
		return "_"
	}
	return i.Name
}

// WriteShape is the tag of the write-kind column.
type WriteShape uint8

const (
	WriteReserved      WriteShape = iota // _
	WriteUnimplemented                   // !
	WriteData                            // write: <Type>
	WriteSend                            // send
)

func (s WriteShape) String() string {
	switch s {
	case WriteReserved:
		return "reserved"
	case WriteUnimplemented:
		return "unimplemented"
	case WriteData:
		return "write"
	case WriteSend:
		return "send"
	default:
		return fmt.Sprintf("WriteShape(%d)", uint8(s))
	}
}

// WriteKind is the write-kind column of a row.
type WriteKind struct {
	Shape WriteShape

	// Type is the payload type for WriteData, empty otherwise.
	Type string
}

// Write returns a WriteData kind carrying typ.
func Write(typ string) WriteKind { return WriteKind{Shape: WriteData, Type: typ} }

// Send returns the zero-payload write kind.
func Send() WriteKind { return WriteKind{Shape: WriteSend} }

func (k WriteKind) String() string {
	switch k.Shape {
	case WriteReserved:
		return "_"
	case WriteUnimplemented:
		return "!"
	case WriteData:
		return "write: " + k.Type
	case WriteSend:
		return "send"
	default:
		return k.Shape.String()
	}
}

// ReadShape is the tag of the read-kind column.
type ReadShape uint8

const (
	ReadReserved      ReadShape = iota // _
	ReadUnimplemented                  // !
	ReadData                           // read: <Type>
	ReadCall                           // call: <Type>
)

func (s ReadShape) String() string {
	switch s {
	case ReadReserved:
		return "reserved"
	case ReadUnimplemented:
		return "unimplemented"
	case ReadData:
		return "read"
	case ReadCall:
		return "call"
	default:
		return fmt.Sprintf("ReadShape(%d)", uint8(s))
	}
}

// ReadKind is the read-kind column of a row.
type ReadKind struct {
	Shape ReadShape

	// Type is the payload type for ReadData and ReadCall, empty otherwise.
	Type string
}

// Read returns a ReadData kind carrying typ.
func Read(typ string) ReadKind { return ReadKind{Shape: ReadData, Type: typ} }

// Call returns a process-call kind carrying typ.
func Call(typ string) ReadKind { return ReadKind{Shape: ReadCall, Type: typ} }

func (k ReadKind) String() string {
	switch k.Shape {
	case ReadReserved:
		return "_"
	case ReadUnimplemented:
		return "!"
	case ReadData:
		return "read: " + k.Type
	case ReadCall:
		return "call: " + k.Type
	default:
		return k.Shape.String()
	}
}

// CountShape is the tag of the byte-count column.
type CountShape uint8

const (
	CountVariable      CountShape = iota // _
	CountUnimplemented                   // !
	CountFixed                           // n
)

func (s CountShape) String() string {
	switch s {
	case CountVariable:
		return "variable"
	case CountUnimplemented:
		return "unimplemented"
	case CountFixed:
		return "fixed"
	default:
		return fmt.Sprintf("CountShape(%d)", uint8(s))
	}
}

// ByteCount is the byte-count column of a row.
type ByteCount struct {
	Shape CountShape

	// N is the byte count for CountFixed.
	N uint8
}

// Count returns a fixed byte count.
func Count(n uint8) ByteCount { return ByteCount{Shape: CountFixed, N: n} }

// Variable is the "_" byte count.
var Variable = ByteCount{Shape: CountVariable}

// Is reports whether the count is fixed at n.
func (c ByteCount) Is(n uint8) bool {
	return c.Shape == CountFixed && c.N == n
}

func (c ByteCount) String() string {
	switch c.Shape {
	case CountVariable:
		return "_"
	case CountUnimplemented:
		return "!"
	case CountFixed:
		return fmt.Sprintf("%d", c.N)
	default:
		return c.Shape.String()
	}
}

// Entry is one row of a command table.
type Entry struct {
	// Pos is the position of the row's opening pipe.
	Pos Position

	// Byte is the command code.
	Byte uint8

	Ident Ident
	Write WriteKind
	Read  ReadKind
	Count ByteCount
}

// String returns the canonical single-row form of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("| %d | %s | %s | %s | %s |", e.Byte, e.Ident, e.Write, e.Read, e.Count)
}

// Equal reports whether two entries carry the same field values.
// Source positions are ignored.
func (e Entry) Equal(o Entry) bool {
	return e.Byte == o.Byte &&
		e.Ident == o.Ident &&
		e.Write == o.Write &&
		e.Read == o.Read &&
		e.Count == o.Count
}

// Table is an ordered list of command entries. Declaration order is
// significant and duplicate codes or identifiers are kept as written.
type Table struct {
	// Source is the file the table was loaded from, if any.
	Source string

	Entries []Entry
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.Entries) }

// Named returns the entries that carry a name, in table order.
func (t *Table) Named() []Entry {
	var named []Entry
	for _, e := range t.Entries {
		if !e.Ident.Reserved {
			named = append(named, e)
		}
	}
	return named
}

// Lookup returns the first entry with the given identifier.
func (t *Table) Lookup(name string) (Entry, bool) {
	for _, e := range t.Entries {
		if !e.Ident.Reserved && e.Ident.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// String returns the canonical form of the table, one row per line, each
// followed by a comma.
func (t *Table) String() string {
	var sb strings.Builder
	for _, e := range t.Entries {
		sb.WriteString(e.String())
		sb.WriteString(",\n")
	}
	return sb.String()
}
