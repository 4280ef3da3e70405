package resolve

import (
	"fmt"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// Options configures table resolution.
type Options struct {
	// Registry holds the table-wide rules. If nil, NewDefaultRegistry is used.
	Registry *RuleRegistry

	// Strict promotes every warning to an error.
	Strict bool

	// Interface and Imports describe the generated package for the naming
	// rules. An empty Interface means DefaultInterface.
	Interface string
	Imports   []string
}

// EntryResolution is the outcome of resolving a single entry.
type EntryResolution struct {
	Entry table.Entry

	// Write and Read are nil when the entry has no accessor in that direction.
	Write *Accessor
	Read  *Accessor

	Violations []Violation
}

// Accessors returns the resolved accessors, write before read.
func (r EntryResolution) Accessors() []*Accessor {
	var out []*Accessor
	if r.Write != nil {
		out = append(out, r.Write)
	}
	if r.Read != nil {
		out = append(out, r.Read)
	}
	return out
}

// ResolveEntry resolves both directions of e. The two directions are
// independent; a violation in one does not suppress the other.
func ResolveEntry(e table.Entry) EntryResolution {
	res := EntryResolution{Entry: e}

	w, wv := ResolveWrite(e)
	res.Write = w
	if wv != nil {
		res.Violations = append(res.Violations, *wv)
	}

	r, rv := ResolveRead(e)
	res.Read = r
	if rv != nil {
		res.Violations = append(res.Violations, *rv)
	}

	return res
}

// Result is the outcome of resolving a whole table.
type Result struct {
	Table *table.Table

	// Entries holds one resolution per table entry, in table order.
	Entries []EntryResolution

	// Violations holds every violation, entry violations first in table
	// order, then table-wide rule violations.
	Violations []Violation
}

// Accessors returns all resolved accessors in table order, each entry's
// write accessor before its read accessor.
func (r *Result) Accessors() []*Accessor {
	var out []*Accessor
	for _, er := range r.Entries {
		out = append(out, er.Accessors()...)
	}
	return out
}

// Errors returns the error-severity violations.
func (r *Result) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns the warning and info violations.
func (r *Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity != SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// ValidationError reports every error-severity violation in a table.
type ValidationError struct {
	Source     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	src := e.Source
	if src == "" {
		src = "command table"
	}
	noun := "errors"
	if len(e.Violations) == 1 {
		noun = "error"
	}
	fmt.Fprintf(&sb, "%s: %d validation %s", src, len(e.Violations), noun)
	for _, v := range e.Violations {
		sb.WriteString("\n  ")
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Resolve resolves every entry in t and runs the table-wide rules. All
// violations are collected. When any violation has error severity the
// returned error is a *ValidationError and the Result is still returned
// for inspection.
func Resolve(t *table.Table, opts Options) (*Result, error) {
	registry := opts.Registry
	if registry == nil {
		registry = NewDefaultRegistry()
	}

	res := &Result{Table: t}
	for _, e := range t.Entries {
		er := ResolveEntry(e)
		res.Entries = append(res.Entries, er)
		res.Violations = append(res.Violations, er.Violations...)
	}
	res.Violations = append(res.Violations, registry.RunRules(t, Scope{Interface: opts.Interface, Imports: opts.Imports})...)

	if opts.Strict {
		for i := range res.Violations {
			if res.Violations[i].Severity == SeverityWarning {
				res.Violations[i].Severity = SeverityError
			}
		}
	}

	if errs := res.Errors(); len(errs) > 0 {
		return res, &ValidationError{Source: t.Source, Violations: errs}
	}
	return res, nil
}
