package emit

import (
	"fmt"
	"sort"

	"github.com/powerwire/pmbus-go/pkg/resolve"
)

// Backend renders a Program.
type Backend interface {
	// Name identifies the backend, e.g. "go".
	Name() string

	// Render returns the rendered program.
	Render(p *Program) ([]byte, error)
}

// Primitives is the vocabulary a BodyFunc renders with.
type Primitives interface {
	// Forward is a call of bus primitive op with the command constant and
	// argument expressions.
	Forward(op resolve.Operation, command string, args ...string) string

	// ToWire converts a payload expression to the primitive's argument type.
	ToWire(c Conversion, expr string) string

	// FromWire converts a primitive's result expression to the payload type.
	FromWire(c Conversion, expr string) string

	// Assign binds names to the results of expr.
	Assign(names []string, expr string) string

	// Return returns exprs from the method.
	Return(exprs ...string) string

	// Lines joins statements.
	Lines(stmts ...string) string
}

var backends = map[string]func() Backend{
	"go":       func() Backend { return NewGoBackend() },
	"manifest": func() Backend { return ManifestBackend{} },
}

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (have %v)", name, BackendNames())
	}
	return f(), nil
}

// BackendNames returns the registered backend names, sorted.
func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
