package resolve

import (
	"fmt"
	"go/token"
	"go/types"
	"path"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// DefaultInterface is the interface name used when a Scope names none.
const DefaultInterface = "PMBus"

// Scope describes the generated package the command constants live in.
type Scope struct {
	// Interface is the name of the generated interface.
	Interface string

	// Imports are the extra import paths of the generated file.
	Imports []string
}

// ScopedRule is a Rule whose check depends on the generated package.
// RunRules calls CheckScope instead of Check for such rules.
type ScopedRule interface {
	Rule
	CheckScope(t *table.Table, scope Scope) []Violation
}

// generatedParams are the parameter names of every generated method. A
// constant of the same name is shadowed inside the method body.
var generatedParams = []string{"c", "ctx", "addr", "data", "block", "A"}

// Declared returns every identifier the generated file declares or imports
// at package level, or refers to inside method bodies, mapped to a
// description of its origin.
func (s Scope) Declared() map[string]string {
	iface := s.Interface
	if iface == "" {
		iface = DefaultInterface
	}
	names := map[string]string{
		"New":     "the generated constructor",
		"Client":  "the generated client type",
		iface:     "the generated interface",
		"context": "the imported package context",
		"smbus":   "the imported package smbus",
	}
	for _, imp := range s.Imports {
		name := importName(imp)
		names[name] = "the imported package " + name
	}
	for _, p := range generatedParams {
		names[p] = "a parameter of the generated methods"
	}
	return names
}

// importName returns the default package name of an import path, skipping
// a trailing major version element.
func importName(p string) string {
	name := path.Base(p)
	if len(name) > 1 && name[0] == 'v' && strings.Trim(name[1:], "0123456789") == "" {
		if dir := path.Dir(p); dir != "." {
			name = path.Base(dir)
		}
	}
	return name
}

// NAM002 reports identifiers that cannot be declared as a constant of the
// generated package: Go keywords, predeclared identifiers and the names the
// generated file itself uses.
type NAM002 struct {
	*BaseRule
}

func NewNAM002() *NAM002 {
	return &NAM002{
		BaseRule: NewBaseRule("NAM-002", "constant name not declarable", "naming", SeverityError),
	}
}

// Check uses the default Scope.
func (r *NAM002) Check(t *table.Table) []Violation {
	return r.CheckScope(t, Scope{})
}

func (r *NAM002) CheckScope(t *table.Table, scope Scope) []Violation {
	var violations []Violation
	declared := scope.Declared()

	for _, e := range t.Entries {
		if e.Ident.Reserved {
			continue
		}
		name := e.Ident.Name

		var msg string
		switch {
		case token.IsKeyword(name):
			msg = fmt.Sprintf("%s is a Go keyword", name)
		case types.Universe.Lookup(name) != nil:
			msg = fmt.Sprintf("%s shadows the predeclared identifier", name)
		case declared[name] != "":
			msg = fmt.Sprintf("%s collides with %s", name, declared[name])
		default:
			continue
		}

		violations = append(violations, Violation{
			RuleID:     r.ID(),
			Severity:   r.DefaultSeverity(),
			Message:    msg,
			Pos:        e.Pos,
			Byte:       e.Byte,
			Ident:      e.Ident.String(),
			Suggestion: "rename the command",
		})
	}

	return violations
}
