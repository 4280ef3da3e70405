package resolve

import (
	"fmt"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// MaxBlockSize is the largest SMBus block payload in bytes.
const MaxBlockSize = 32

// RegisterTableRules registers the table-wide rules with the registry.
func RegisterTableRules(registry *RuleRegistry) {
	registry.Register(NewTBL001())
	registry.Register(NewTBL002())
	registry.Register(NewTBL003())
	registry.Register(NewBLK001())
	registry.Register(NewNAM001())
	registry.Register(NewNAM002())
}

// NewDefaultRegistry creates a registry with every table rule registered.
func NewDefaultRegistry() *RuleRegistry {
	registry := NewRuleRegistry()
	RegisterTableRules(registry)
	return registry
}

// TBL001 reports command codes declared by more than one row.
type TBL001 struct {
	*BaseRule
}

func NewTBL001() *TBL001 {
	return &TBL001{
		BaseRule: NewBaseRule("TBL-001", "duplicate command code", "table", SeverityWarning),
	}
}

func (r *TBL001) Check(t *table.Table) []Violation {
	var violations []Violation
	first := make(map[uint8]table.Entry)

	for _, e := range t.Entries {
		prev, seen := first[e.Byte]
		if !seen {
			first[e.Byte] = e
			continue
		}
		violations = append(violations, Violation{
			RuleID:     r.ID(),
			Severity:   r.DefaultSeverity(),
			Message:    fmt.Sprintf("command code 0x%02X already declared as %s", e.Byte, prev.Ident),
			Pos:        e.Pos,
			Byte:       e.Byte,
			Ident:      e.Ident.String(),
			Related:    []table.Position{prev.Pos},
			Suggestion: "remove or renumber one of the rows",
		})
	}

	return violations
}

// TBL002 reports identifiers used by more than one row. Two rows with the
// same name would emit the same constant and accessor names.
type TBL002 struct {
	*BaseRule
}

func NewTBL002() *TBL002 {
	return &TBL002{
		BaseRule: NewBaseRule("TBL-002", "duplicate identifier", "table", SeverityWarning),
	}
}

func (r *TBL002) Check(t *table.Table) []Violation {
	var violations []Violation
	first := make(map[string]table.Entry)

	for _, e := range t.Entries {
		if e.Ident.Reserved {
			continue
		}
		prev, seen := first[e.Ident.Name]
		if !seen {
			first[e.Ident.Name] = e
			continue
		}
		violations = append(violations, Violation{
			RuleID:     r.ID(),
			Severity:   r.DefaultSeverity(),
			Message:    fmt.Sprintf("identifier %s already used for command code 0x%02X", e.Ident.Name, prev.Byte),
			Pos:        e.Pos,
			Byte:       e.Byte,
			Ident:      e.Ident.String(),
			Related:    []table.Position{prev.Pos},
			Suggestion: "rename one of the commands",
		})
	}

	return violations
}

// TBL003 checks the unimplemented marker convention: a row that marks any
// column '!' is expected to mark the remaining columns '!' or '_'.
type TBL003 struct {
	*BaseRule
}

func NewTBL003() *TBL003 {
	return &TBL003{
		BaseRule: NewBaseRule("TBL-003", "partially unimplemented row", "table", SeverityInfo),
	}
}

func (r *TBL003) Check(t *table.Table) []Violation {
	var violations []Violation

	for _, e := range t.Entries {
		bangs := 0
		concrete := 0
		switch e.Write.Shape {
		case table.WriteUnimplemented:
			bangs++
		case table.WriteData, table.WriteSend:
			concrete++
		}
		switch e.Read.Shape {
		case table.ReadUnimplemented:
			bangs++
		case table.ReadData, table.ReadCall:
			concrete++
		}
		if e.Count.Shape == table.CountUnimplemented {
			bangs++
		}

		if bangs > 0 && concrete > 0 {
			violations = append(violations, Violation{
				RuleID:     r.ID(),
				Severity:   r.DefaultSeverity(),
				Message:    "row mixes '!' with implemented columns",
				Pos:        e.Pos,
				Byte:       e.Byte,
				Ident:      e.Ident.String(),
				Suggestion: "mark every column '!' for unimplemented commands",
			})
		}
	}

	return violations
}

// BLK001 reports fixed byte counts above the SMBus block limit on rows
// that resolve to block transfers.
type BLK001 struct {
	*BaseRule
}

func NewBLK001() *BLK001 {
	return &BLK001{
		BaseRule: NewBaseRule("BLK-001", "block larger than 32 bytes", "block", SeverityWarning),
	}
}

func (r *BLK001) Check(t *table.Table) []Violation {
	var violations []Violation

	for _, e := range t.Entries {
		if e.Count.Shape != table.CountFixed || e.Count.N <= MaxBlockSize {
			continue
		}
		block := e.Write.Shape == table.WriteData || e.Read.Shape == table.ReadData || e.Read.Shape == table.ReadCall
		if !block {
			continue
		}
		violations = append(violations, Violation{
			RuleID:     r.ID(),
			Severity:   r.DefaultSeverity(),
			Message:    fmt.Sprintf("byte count %d exceeds the %d byte block limit", e.Count.N, MaxBlockSize),
			Pos:        e.Pos,
			Byte:       e.Byte,
			Ident:      e.Ident.String(),
			Suggestion: "split the payload or use _ for a variable block",
		})
	}

	return violations
}

// busMethods are the SMBus interface methods a generated accessor would
// shadow.
var busMethods = map[string]bool{
	"QuickCommand":     true,
	"SendByte":         true,
	"ReceiveByte":      true,
	"WriteByte":        true,
	"ReadByte":         true,
	"WriteWord":        true,
	"ReadWord":         true,
	"ProcessCall":      true,
	"BlockWrite":       true,
	"BlockRead":        true,
	"BlockProcessCall": true,
}

// NAM001 reports accessor names that collide with an SMBus primitive or
// with the accessor of a differently spelled identifier. Rows repeating an
// identifier verbatim are left to TBL-002.
type NAM001 struct {
	*BaseRule
}

func NewNAM001() *NAM001 {
	return &NAM001{
		BaseRule: NewBaseRule("NAM-001", "accessor name collision", "naming", SeverityError),
	}
}

func (r *NAM001) Check(t *table.Table) []Violation {
	var violations []Violation
	type owner struct {
		entry table.Entry
		ident string
	}
	seen := make(map[string]owner)

	for _, e := range t.Entries {
		if e.Ident.Reserved {
			continue
		}
		for _, a := range ResolveEntry(e).Accessors() {
			v := Violation{
				RuleID:   r.ID(),
				Severity: r.DefaultSeverity(),
				Pos:      e.Pos,
				Byte:     e.Byte,
				Ident:    e.Ident.String(),
			}
			if busMethods[a.GoName] {
				v.Message = fmt.Sprintf("accessor %s shadows the bus primitive of the same name", a.GoName)
				v.Suggestion = "rename the command"
				violations = append(violations, v)
				continue
			}
			prev, dup := seen[a.GoName]
			if !dup {
				seen[a.GoName] = owner{entry: e, ident: e.Ident.Name}
				continue
			}
			if prev.ident == e.Ident.Name {
				continue
			}
			v.Message = fmt.Sprintf("accessor %s also generated for %s", a.GoName, prev.ident)
			v.Related = []table.Position{prev.entry.Pos}
			v.Suggestion = "rename one of the commands"
			violations = append(violations, v)
		}
	}

	return violations
}
