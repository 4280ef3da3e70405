package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/powerwire/pmbus-go/pkg/resolve"
)

// DefaultGoFilename is the file name passed to the formatter.
const DefaultGoFilename = "commands_gen.go"

// FormatSource runs goimports over src.
func FormatSource(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

// FormatError is returned when rendered source does not format. Source
// holds the unformatted output for debugging the generator.
type FormatError struct {
	Source []byte
	Err    error
}

func (e *FormatError) Error() string { return "formatting generated source: " + e.Err.Error() }

func (e *FormatError) Unwrap() error { return e.Err }

// GoBackend renders a Program as a Go package.
type GoBackend struct {
	// Filename is passed to Format. Defaults to DefaultGoFilename.
	Filename string

	// Format post-processes the rendered source. Nil leaves it unformatted.
	Format func(filename string, src []byte) ([]byte, error)
}

// NewGoBackend returns a GoBackend that formats with goimports.
func NewGoBackend() *GoBackend {
	return &GoBackend{Filename: DefaultGoFilename, Format: FormatSource}
}

func (b *GoBackend) Name() string { return "go" }

// Render renders p. When formatting fails the error is a *FormatError.
func (b *GoBackend) Render(p *Program) ([]byte, error) {
	data := goFile{Program: p}
	prims := goPrimitives{}
	for _, m := range p.Methods {
		if m.Body == nil {
			return nil, fmt.Errorf("method %s has no body; call Program.Bind", m.Name())
		}
		data.Methods = append(data.Methods, goMethod{
			Doc:       m.Doc(),
			Name:      m.Name(),
			Signature: goSignature(m),
			Body:      m.Body(prims),
		})
	}

	var buf bytes.Buffer
	if err := goTemplates.ExecuteTemplate(&buf, "file", data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	if b.Format == nil {
		return buf.Bytes(), nil
	}
	filename := b.Filename
	if filename == "" {
		filename = DefaultGoFilename
	}
	formatted, err := b.Format(filename, buf.Bytes())
	if err != nil {
		return nil, &FormatError{Source: buf.Bytes(), Err: err}
	}
	return formatted, nil
}

type goFile struct {
	*Program
	Methods []goMethod
}

type goMethod struct {
	Doc       string
	Name      string
	Signature string
	Body      string
}

func goSignature(m Method) string {
	params := []string{"ctx context.Context", "addr A"}
	for _, p := range m.Params {
		params = append(params, p.Name+" "+p.Type)
	}

	var results []string
	for _, r := range m.Results {
		results = append(results, r.Type)
	}
	results = append(results, "error")

	res := results[0]
	if len(results) > 1 {
		res = "(" + strings.Join(results, ", ") + ")"
	}
	return fmt.Sprintf("(%s) %s", strings.Join(params, ", "), res)
}

// goPrimitives renders method bodies as Go statements.
type goPrimitives struct{}

func (goPrimitives) Forward(op resolve.Operation, command string, args ...string) string {
	all := append([]string{"ctx", "addr", command}, args...)
	return fmt.Sprintf("c.SMBus.%s(%s)", op, strings.Join(all, ", "))
}

func (goPrimitives) ToWire(c Conversion, expr string) string {
	switch c.Class {
	case ClassInteger:
		switch c.Wire {
		case WireByte:
			return "smbus.ByteFrom(" + expr + ")"
		case WireWord:
			return "smbus.WordFrom(" + expr + ")"
		case WireBlock:
			return fmt.Sprintf("smbus.EncodeLE(%s, %d)", expr, c.Width)
		}
	case ClassBool:
		if c.Wire == WireWord {
			return "smbus.BoolAs[uint16](" + expr + ")"
		}
		return "smbus.BoolAs[uint8](" + expr + ")"
	case ClassBlock:
		return "smbus.BlockFrom(" + expr + ")"
	}
	return expr
}

func (goPrimitives) FromWire(c Conversion, expr string) string {
	switch c.Class {
	case ClassInteger:
		switch c.Wire {
		case WireByte:
			return fmt.Sprintf("smbus.ConvertByte[%s](%s)", c.Type, expr)
		case WireWord:
			return fmt.Sprintf("smbus.ConvertWord[%s](%s)", c.Type, expr)
		case WireBlock:
			return fmt.Sprintf("smbus.DecodeLE[%s](%s)", c.Type, expr)
		}
	case ClassBool:
		return "smbus.ConvertBool(" + expr + ")"
	case ClassBlock:
		return fmt.Sprintf("smbus.ConvertBlock[%s](%s)", c.Type, expr)
	}
	return expr
}

func (goPrimitives) Assign(names []string, expr string) string {
	return strings.Join(names, ", ") + " := " + expr
}

func (goPrimitives) Return(exprs ...string) string {
	return "return " + strings.Join(exprs, ", ")
}

func (goPrimitives) Lines(stmts ...string) string {
	return strings.Join(stmts, "\n")
}

var goFuncMap = template.FuncMap{
	"hexByte": func(v uint8) string { return fmt.Sprintf("0x%02X", v) },
	"indent": func(s string) string {
		return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
	},
}

var goTemplates = template.Must(template.New("").Funcs(goFuncMap).Parse(
	goFileTmpl + goConstantsTmpl + goInterfaceTmpl + goClientTmpl,
))

const goFileTmpl = `{{define "file" -}}
// Code generated by pmbus-gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"context"

	smbus "{{.SMBusImport}}"
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{template "constants" .}}
{{template "interface" .}}
{{template "client" .}}
{{- end}}`

const goConstantsTmpl = `{{define "constants"}}
{{- if .Constants}}
// Command codes.
const (
{{- range .Constants}}
	{{.Name}} uint8 = {{hexByte .Value}}
{{- end}}
)
{{end}}
{{- end}}`

const goInterfaceTmpl = `{{define "interface"}}
// {{.Interface}} is the set of typed command accessors over the SMBus
// transfer primitives.
type {{.Interface}}[A smbus.AddressMode] interface {
	smbus.SMBus[A]
{{range .Methods}}
	// {{.Doc}}
	{{.Name}}{{.Signature}}
{{- end}}
}
{{end}}`

const goClientTmpl = `{{define "client"}}
// Client implements {{.Interface}} by forwarding to an SMBus.
type Client[A smbus.AddressMode] struct {
	smbus.SMBus[A]
}

// New returns a Client forwarding to bus.
func New[A smbus.AddressMode](bus smbus.SMBus[A]) *Client[A] {
	return &Client[A]{SMBus: bus}
}

var _ {{.Interface}}[smbus.SevenBitAddress] = (*Client[smbus.SevenBitAddress])(nil)
{{range .Methods}}
// {{.Doc}}
func (c *Client[A]) {{.Name}}{{.Signature}} {
{{indent .Body}}
}
{{end}}
{{- end}}`
