package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/resolve"
	"github.com/powerwire/pmbus-go/pkg/table"
)

// Defaults for Options.
const (
	DefaultPackage     = "pmbus"
	DefaultInterface   = resolve.DefaultInterface
	DefaultSMBusImport = "github.com/powerwire/pmbus-go/pkg/smbus"
)

// Options configures Build.
type Options struct {
	Package   string
	Interface string

	// Types overlays DefaultTypes.
	Types TypeMap

	// Imports are extra import paths for types named in the table.
	Imports []string

	// SMBusImport is the import path of the smbus package.
	SMBusImport string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Interface == "" {
		o.Interface = DefaultInterface
	}
	if o.SMBusImport == "" {
		o.SMBusImport = DefaultSMBusImport
	}
	return o
}

// Program is the neutral form handed to a Backend.
type Program struct {
	Package   string `cbor:"1,keyasint"`
	Interface string `cbor:"2,keyasint"`

	// Source is the base name of the table file, if known.
	Source string `cbor:"3,keyasint,omitempty"`

	Imports     []string `cbor:"4,keyasint,omitempty"`
	SMBusImport string   `cbor:"5,keyasint"`

	Constants []Constant `cbor:"6,keyasint"`
	Methods   []Method   `cbor:"7,keyasint"`
}

// Constant binds a command name to its code.
type Constant struct {
	Name  string         `cbor:"1,keyasint"`
	Value uint8          `cbor:"2,keyasint"`
	Pos   table.Position `cbor:"3,keyasint"`
}

// Param is a named, typed payload parameter or result.
type Param struct {
	Name string `cbor:"1,keyasint"`
	Type string `cbor:"2,keyasint"`
}

// Wire is the width class of the bus primitive a method forwards to.
type Wire uint8

const (
	WireNone Wire = iota
	WireByte
	WireWord
	WireBlock
)

// Conversion describes how a method's payload reaches the wire.
type Conversion struct {
	Class Class  `cbor:"1,keyasint"`
	Type  string `cbor:"2,keyasint,omitempty"`
	Wire  Wire   `cbor:"3,keyasint"`

	// Width is the encoded size of an integer carried in a block.
	Width int `cbor:"4,keyasint,omitempty"`
}

// BodyFunc renders a method body using a backend's vocabulary.
type BodyFunc func(p Primitives) string

// Method is one accessor method.
type Method struct {
	Accessor resolve.Accessor `cbor:"1,keyasint"`

	// Params are the payload parameters, not counting context or address.
	Params []Param `cbor:"2,keyasint,omitempty"`

	// Results are the data results, not counting the error.
	Results []Param `cbor:"3,keyasint,omitempty"`

	Conv Conversion `cbor:"4,keyasint"`

	Body BodyFunc `cbor:"-"`
}

// Name returns the exported method name.
func (m Method) Name() string { return m.Accessor.GoName }

// Doc returns a one-line description of the method.
func (m Method) Doc() string {
	a := m.Accessor
	var verb string
	switch a.Op {
	case resolve.OpSendByte:
		verb = "sends"
	case resolve.OpBlockProcessCall:
		verb = "calls"
	default:
		if a.Direction == resolve.DirectionWrite {
			verb = "writes"
		} else {
			verb = "reads"
		}
	}
	return fmt.Sprintf("%s %s %s (0x%02X) using %s.", a.GoName, verb, a.Command, a.Byte, a.Op)
}

// TypeProblem is an accessor whose payload type cannot be carried by the
// bus primitive it resolved to.
type TypeProblem struct {
	Pos      table.Position
	Accessor string
	Type     string
	Msg      string
}

func (p TypeProblem) String() string {
	return fmt.Sprintf("%s: %s: type %s %s", p.Pos, p.Accessor, p.Type, p.Msg)
}

// TypeError reports every TypeProblem found by Build.
type TypeError struct {
	Problems []TypeProblem
}

func (e *TypeError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return "payload types:\n  " + strings.Join(lines, "\n  ")
}

// Build converts a resolution result into a Program.
func Build(res *resolve.Result, opts Options) (*Program, error) {
	opts = opts.withDefaults()
	types := DefaultTypes().With(opts.Types)

	p := &Program{
		Package:     opts.Package,
		Interface:   opts.Interface,
		Imports:     opts.Imports,
		SMBusImport: opts.SMBusImport,
	}
	if res.Table != nil && res.Table.Source != "" {
		p.Source = filepath.Base(res.Table.Source)
	}

	// Repeated names keep their first row; resolve reports the rest.
	constants := make(map[string]bool)
	methods := make(map[string]bool)

	var problems []TypeProblem
	for _, er := range res.Entries {
		if er.Entry.Ident.Reserved || constants[er.Entry.Ident.Name] {
			continue
		}
		constants[er.Entry.Ident.Name] = true
		p.Constants = append(p.Constants, Constant{
			Name:  er.Entry.Ident.Name,
			Value: er.Entry.Byte,
			Pos:   er.Entry.Pos,
		})

		for _, a := range er.Accessors() {
			if methods[a.GoName] {
				continue
			}
			methods[a.GoName] = true
			m, problem := newMethod(*a, er.Entry.Count, types)
			if problem != nil {
				problems = append(problems, *problem)
				continue
			}
			p.Methods = append(p.Methods, m)
		}
	}

	p.Bind()

	if len(problems) > 0 {
		return p, &TypeError{Problems: problems}
	}
	return p, nil
}

func wireOf(op resolve.Operation) Wire {
	switch op {
	case resolve.OpWriteByte, resolve.OpReadByte:
		return WireByte
	case resolve.OpWriteWord, resolve.OpReadWord:
		return WireWord
	case resolve.OpBlockWrite, resolve.OpBlockRead, resolve.OpBlockProcessCall:
		return WireBlock
	}
	return WireNone
}

func newMethod(a resolve.Accessor, count table.ByteCount, types TypeMap) (Method, *TypeProblem) {
	m := Method{Accessor: a}
	conv := Conversion{Wire: wireOf(a.Op)}

	switch a.Op {
	case resolve.OpSendByte:
		m.Conv = conv
		return m, nil
	case resolve.OpBlockProcessCall:
		// The declared type is advisory; call payloads stay raw blocks.
		conv.Class = ClassRaw
		conv.Type = "[]byte"
		m.Conv = conv
		m.Params = []Param{{Name: "block", Type: "[]byte"}}
		m.Results = []Param{{Name: "response", Type: "[]byte"}}
		return m, nil
	}

	info := types.Lookup(a.PayloadType, a.Op)
	conv.Class = info.Class
	conv.Type = info.Go

	problem := func(msg string) *TypeProblem {
		return &TypeProblem{Pos: a.Pos, Accessor: a.Name, Type: a.PayloadType, Msg: msg}
	}

	switch {
	case conv.Wire != WireBlock && info.Class == ClassBlock:
		return m, problem(fmt.Sprintf("is a block type and cannot be carried by %s", a.Op))
	case conv.Wire == WireBlock && info.Class == ClassBool:
		return m, problem(fmt.Sprintf("is a bool and cannot be carried by %s", a.Op))
	case conv.Wire == WireBlock && info.Class == ClassInteger:
		conv.Width = info.Size
		if count.Shape == table.CountFixed {
			conv.Width = int(count.N)
		}
		if conv.Width == 0 {
			return m, problem("has no known width for a variable length block")
		}
	}

	m.Conv = conv
	if a.Direction == resolve.DirectionWrite {
		m.Params = []Param{{Name: "data", Type: info.Go}}
	} else {
		m.Results = []Param{{Name: "value", Type: info.Go}}
	}
	return m, nil
}

// Bind attaches body closures to every method. Build calls it; programs
// decoded with DecodeIR need it before rendering.
func (p *Program) Bind() {
	for i := range p.Methods {
		p.Methods[i].Body = bodyFor(p.Methods[i])
	}
}

func bodyFor(m Method) BodyFunc {
	a := m.Accessor
	conv := m.Conv

	switch {
	case a.Op == resolve.OpSendByte:
		return func(p Primitives) string {
			return p.Return(p.Forward(a.Op, a.Command))
		}
	case a.Op == resolve.OpBlockProcessCall:
		return func(p Primitives) string {
			return p.Return(p.Forward(a.Op, a.Command, m.Params[0].Name))
		}
	case a.Direction == resolve.DirectionWrite:
		return func(p Primitives) string {
			return p.Return(p.Forward(a.Op, a.Command, p.ToWire(conv, m.Params[0].Name)))
		}
	default:
		return func(p Primitives) string {
			return p.Lines(
				p.Assign([]string{"v", "err"}, p.Forward(a.Op, a.Command)),
				p.Return(p.FromWire(conv, "v"), "err"),
			)
		}
	}
}
