package resolve

import (
	"fmt"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// writeDecision is one row of the write-path decision table.
type writeDecision struct {
	ID    string
	Desc  string
	Match func(w table.WriteKind, c table.ByteCount) bool
	// Op is OpNone for rows that deliberately produce no accessor.
	Op Operation
}

// readDecision is one row of the read-path decision table.
type readDecision struct {
	ID    string
	Desc  string
	Match func(r table.ReadKind, c table.ByteCount) bool
	Op    Operation
}

func isOtherFixed(c table.ByteCount) bool {
	return c.Shape == table.CountFixed && c.N != 1 && c.N != 2
}

var writeDecisions = []writeDecision{
	{
		ID:   "W0",
		Desc: "reserved or unimplemented write: no accessor",
		Match: func(w table.WriteKind, _ table.ByteCount) bool {
			return w.Shape == table.WriteReserved || w.Shape == table.WriteUnimplemented
		},
		Op: OpNone,
	},
	{
		ID:    "W1",
		Desc:  "write: T with 1 byte",
		Match: func(w table.WriteKind, c table.ByteCount) bool { return w.Shape == table.WriteData && c.Is(1) },
		Op:    OpWriteByte,
	},
	{
		ID:    "W2",
		Desc:  "write: T with 2 bytes",
		Match: func(w table.WriteKind, c table.ByteCount) bool { return w.Shape == table.WriteData && c.Is(2) },
		Op:    OpWriteWord,
	},
	{
		ID:    "W3",
		Desc:  "write: T with a fixed block size",
		Match: func(w table.WriteKind, c table.ByteCount) bool { return w.Shape == table.WriteData && isOtherFixed(c) },
		Op:    OpBlockWrite,
	},
	{
		ID:   "W4",
		Desc: "write: T with variable size",
		Match: func(w table.WriteKind, c table.ByteCount) bool {
			return w.Shape == table.WriteData && c.Shape == table.CountVariable
		},
		Op: OpBlockWrite,
	},
	{
		ID:    "W5",
		Desc:  "send with 0 bytes",
		Match: func(w table.WriteKind, c table.ByteCount) bool { return w.Shape == table.WriteSend && c.Is(0) },
		Op:    OpSendByte,
	},
}

var readDecisions = []readDecision{
	{
		ID:   "R0",
		Desc: "reserved or unimplemented read: no accessor",
		Match: func(r table.ReadKind, _ table.ByteCount) bool {
			return r.Shape == table.ReadReserved || r.Shape == table.ReadUnimplemented
		},
		Op: OpNone,
	},
	{
		ID:    "R1",
		Desc:  "read: T with 1 byte",
		Match: func(r table.ReadKind, c table.ByteCount) bool { return r.Shape == table.ReadData && c.Is(1) },
		Op:    OpReadByte,
	},
	{
		ID:    "R2",
		Desc:  "read: T with 2 bytes",
		Match: func(r table.ReadKind, c table.ByteCount) bool { return r.Shape == table.ReadData && c.Is(2) },
		Op:    OpReadWord,
	},
	{
		ID:    "R3",
		Desc:  "read: T with a fixed block size",
		Match: func(r table.ReadKind, c table.ByteCount) bool { return r.Shape == table.ReadData && isOtherFixed(c) },
		Op:    OpBlockRead,
	},
	{
		ID:   "R4",
		Desc: "read: T with variable size",
		Match: func(r table.ReadKind, c table.ByteCount) bool {
			return r.Shape == table.ReadData && c.Shape == table.CountVariable
		},
		Op: OpBlockRead,
	},
	{
		ID:   "R5",
		Desc: "call: T with fixed or variable size",
		Match: func(r table.ReadKind, c table.ByteCount) bool {
			return r.Shape == table.ReadCall && (c.Shape == table.CountFixed || c.Shape == table.CountVariable)
		},
		Op: OpBlockProcessCall,
	},
}

// MatchingWriteRules returns the IDs of every write decision row that
// matches e. For a well-formed table at most one ID is returned.
func MatchingWriteRules(e table.Entry) []string {
	var ids []string
	for _, d := range writeDecisions {
		if d.Match(e.Write, e.Count) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// MatchingReadRules returns the IDs of every read decision row that
// matches e.
func MatchingReadRules(e table.Entry) []string {
	var ids []string
	for _, d := range readDecisions {
		if d.Match(e.Read, e.Count) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// ResolveWrite resolves the write accessor for e. It returns (nil, nil)
// when the entry deliberately has no write accessor, and a violation when
// the combination of write kind and byte count is not allowed.
func ResolveWrite(e table.Entry) (*Accessor, *Violation) {
	for _, d := range writeDecisions {
		if !d.Match(e.Write, e.Count) {
			continue
		}
		if d.Op == OpNone {
			return nil, nil
		}
		if e.Ident.Reserved {
			return nil, reservedIdentViolation(e, DirectionWrite)
		}
		prefix := "write"
		if d.Op == OpSendByte {
			prefix = "send"
		}
		return newAccessor(DirectionWrite, d.ID, prefix, e, d.Op, e.Write.Type), nil
	}

	v := &Violation{
		RuleID:   RuleInvalidWrite,
		Severity: SeverityError,
		Message:  fmt.Sprintf("write kind %q cannot be combined with byte count %q", e.Write, e.Count),
		Pos:      e.Pos,
		Byte:     e.Byte,
		Ident:    e.Ident.String(),
	}
	switch {
	case e.Write.Shape == table.WriteSend:
		v.Suggestion = "send takes no payload: set the byte count to 0"
	case e.Count.Shape == table.CountUnimplemented:
		v.Suggestion = "give the byte count as a number or _ for variable length"
	}
	return nil, v
}

// ResolveRead resolves the read accessor for e.
func ResolveRead(e table.Entry) (*Accessor, *Violation) {
	for _, d := range readDecisions {
		if !d.Match(e.Read, e.Count) {
			continue
		}
		if d.Op == OpNone {
			return nil, nil
		}
		if e.Ident.Reserved {
			return nil, reservedIdentViolation(e, DirectionRead)
		}
		prefix := "read"
		if d.Op == OpBlockProcessCall {
			prefix = "call"
		}
		return newAccessor(DirectionRead, d.ID, prefix, e, d.Op, e.Read.Type), nil
	}

	return nil, &Violation{
		RuleID:     RuleInvalidRead,
		Severity:   SeverityError,
		Message:    fmt.Sprintf("read kind %q cannot be combined with byte count %q", e.Read, e.Count),
		Pos:        e.Pos,
		Byte:       e.Byte,
		Ident:      e.Ident.String(),
		Suggestion: "give the byte count as a number or _ for variable length",
	}
}

func reservedIdentViolation(e table.Entry, dir Direction) *Violation {
	return &Violation{
		RuleID:     RuleReservedAccessor,
		Severity:   SeverityError,
		Message:    fmt.Sprintf("reserved identifier '_' cannot have a %s accessor", dir),
		Pos:        e.Pos,
		Byte:       e.Byte,
		Ident:      e.Ident.String(),
		Suggestion: "name the command or mark the column '_' or '!'",
	}
}
