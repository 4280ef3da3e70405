package resolve

import (
	"fmt"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// Severity represents the severity level of a validation issue.
type Severity int

const (
	// SeverityError fails the compilation.
	SeverityError Severity = iota
	// SeverityWarning is reported but does not fail the compilation.
	SeverityWarning
	// SeverityInfo is an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ParseSeverity parses "error", "warning" or "info".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// Rule IDs produced by entry resolution.
const (
	RuleInvalidWrite     = "RES-W"
	RuleInvalidRead      = "RES-R"
	RuleReservedAccessor = "RES-ID"
)

// Violation is a single validation finding positioned at a table row.
type Violation struct {
	RuleID   string
	Severity Severity
	Message  string

	// Pos is the row position. Byte and Ident identify the row.
	Pos   table.Position
	Byte  uint8
	Ident string

	// Related lists other rows involved (e.g. the first of two duplicates).
	Related []table.Position

	// Suggestion provides a suggested fix (if applicable).
	Suggestion string
}

// String returns a formatted representation of the violation.
func (v Violation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: [%s] %s: 0x%02X %s: %s", v.Pos, v.RuleID, v.Severity, v.Byte, v.Ident, v.Message)

	if len(v.Related) > 0 {
		lines := make([]string, len(v.Related))
		for i, p := range v.Related {
			lines[i] = p.String()
		}
		fmt.Fprintf(&sb, " (see %s)", strings.Join(lines, ", "))
	}

	if v.Suggestion != "" {
		fmt.Fprintf(&sb, " -> %s", v.Suggestion)
	}

	return sb.String()
}

// HasErrors returns true if any violation has severity Error.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FilterBySeverity returns violations at or above the given severity level.
func FilterBySeverity(violations []Violation, minSeverity Severity) []Violation {
	var filtered []Violation
	for _, v := range violations {
		if v.Severity <= minSeverity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Rule is a table-wide validation check.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g. "TBL-001").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// Category returns the rule category (e.g. "table", "block").
	Category() string
	// DefaultSeverity returns the default severity level.
	DefaultSeverity() Severity
	// Check applies the rule to a table and returns any violations.
	Check(t *table.Table) []Violation
}

// BaseRule provides a default implementation of common Rule methods.
type BaseRule struct {
	id              string
	name            string
	category        string
	defaultSeverity Severity
}

// ID returns the rule ID.
func (r *BaseRule) ID() string { return r.id }

// Name returns the rule name.
func (r *BaseRule) Name() string { return r.name }

// Category returns the rule category.
func (r *BaseRule) Category() string { return r.category }

// DefaultSeverity returns the default severity.
func (r *BaseRule) DefaultSeverity() Severity { return r.defaultSeverity }

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name, category string, severity Severity) *BaseRule {
	return &BaseRule{
		id:              id,
		name:            name,
		category:        category,
		defaultSeverity: severity,
	}
}
