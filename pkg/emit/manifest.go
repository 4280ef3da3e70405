package emit

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/powerwire/pmbus-go/pkg/resolve"
)

// Manifest is the YAML summary of a Program.
type Manifest struct {
	Package   string             `yaml:"package"`
	Interface string             `yaml:"interface"`
	Source    string             `yaml:"source,omitempty"`
	Commands  []ManifestCommand  `yaml:"commands"`
	Accessors []ManifestAccessor `yaml:"accessors"`
}

// ManifestCommand is one command constant.
type ManifestCommand struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
	Line int    `yaml:"line,omitempty"`
}

// ManifestAccessor is one accessor method.
type ManifestAccessor struct {
	Name    string `yaml:"name"`
	Method  string `yaml:"method"`
	Command string `yaml:"command"`
	Rule    string `yaml:"rule"`
	Op      string `yaml:"op"`
	Type    string `yaml:"type,omitempty"`
	Body    string `yaml:"body"`
}

// ManifestBackend renders a Program as a YAML manifest.
type ManifestBackend struct{}

func (ManifestBackend) Name() string { return "manifest" }

func (ManifestBackend) Render(p *Program) ([]byte, error) {
	m := BuildManifest(p)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildManifest returns the manifest for p.
func BuildManifest(p *Program) Manifest {
	m := Manifest{
		Package:   p.Package,
		Interface: p.Interface,
		Source:    p.Source,
		Commands:  []ManifestCommand{},
		Accessors: []ManifestAccessor{},
	}
	for _, c := range p.Constants {
		m.Commands = append(m.Commands, ManifestCommand{
			Name: c.Name,
			Code: fmt.Sprintf("0x%02X", c.Value),
			Line: c.Pos.Line,
		})
	}
	prims := manifestPrimitives{}
	for _, meth := range p.Methods {
		a := meth.Accessor
		ma := ManifestAccessor{
			Name:    a.Name,
			Method:  a.GoName,
			Command: a.Command,
			Rule:    a.Rule,
			Op:      a.Op.String(),
			Type:    meth.Conv.Type,
		}
		if meth.Body != nil {
			ma.Body = meth.Body(prims)
		}
		m.Accessors = append(m.Accessors, ma)
	}
	return m
}

// ParseManifest parses a manifest produced by ManifestBackend.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// manifestPrimitives renders bodies as one-line pseudo code.
type manifestPrimitives struct{}

func (manifestPrimitives) Forward(op resolve.Operation, command string, args ...string) string {
	return fmt.Sprintf("%s(%s)", op, strings.Join(append([]string{command}, args...), ", "))
}

func (manifestPrimitives) ToWire(c Conversion, expr string) string {
	if c.Class == ClassRaw {
		return expr
	}
	return fmt.Sprintf("%s as %s", expr, wireNames[c.Wire])
}

func (manifestPrimitives) FromWire(c Conversion, expr string) string {
	if c.Class == ClassRaw {
		return expr
	}
	return fmt.Sprintf("%s as %s", expr, c.Type)
}

func (manifestPrimitives) Assign(names []string, expr string) string {
	return strings.Join(names, ", ") + " = " + expr
}

func (manifestPrimitives) Return(exprs ...string) string {
	return "return " + strings.Join(exprs, ", ")
}

func (manifestPrimitives) Lines(stmts ...string) string {
	return strings.Join(stmts, "; ")
}

var wireNames = map[Wire]string{
	WireNone:  "none",
	WireByte:  "byte",
	WireWord:  "word",
	WireBlock: "block",
}
