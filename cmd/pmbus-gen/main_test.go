package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powerwire/pmbus-go/pkg/emit"
)

const testTable = `|0x01|VOUT_MODE|write: u8|read: u8|1|,
|0x03|CLEAR_FAULTS|send|_|0|,
|0x99|MFR_ID|write: bytes|read: bytes|_|,
|0x99|MFR_ID_ALIAS|_|read: bytes|_|,
|0xAB|_|_|_|_|
`

func writeTable(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "commands.tbl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGeneratesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		table:    writeTable(t, dir, testTable),
		output:   filepath.Join(dir, "out", "commands_gen.go"),
		manifest: filepath.Join(dir, "commands.yaml"),
		ir:       filepath.Join(dir, "commands.ir"),
		pkg:      "psu",
	}

	var stdout, stderr bytes.Buffer
	if err := run(opts, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	code, err := os.ReadFile(opts.output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by pmbus-gen from commands.tbl. DO NOT EDIT.",
		"package psu",
		"func (c *Client[A]) WriteVoutMode(ctx context.Context, addr A, data uint8) error {",
		"func (c *Client[A]) SendClearFaults(ctx context.Context, addr A) error {",
		"func (c *Client[A]) ReadMfrIdAlias(ctx context.Context, addr A) ([]byte, error) {",
	} {
		if !strings.Contains(string(code), want) {
			t.Errorf("generated code does not contain %q", want)
		}
	}

	manifest, err := os.ReadFile(opts.manifest)
	if err != nil {
		t.Fatal(err)
	}
	if m, err := emit.ParseManifest(manifest); err != nil || len(m.Accessors) != 6 {
		t.Errorf("manifest = %+v, %v", m, err)
	}

	ir, err := os.ReadFile(opts.ir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := emit.DecodeIR(ir); err != nil {
		t.Errorf("DecodeIR: %v", err)
	}

	if n := strings.Count(stdout.String(), "  generated "); n != 3 {
		t.Errorf("stdout reports %d generated files:\n%s", n, stdout.String())
	}
	if !strings.Contains(stderr.String(), "TBL-001") {
		t.Errorf("duplicate code warning not printed:\n%s", stderr.String())
	}
}

func TestRunStrictFailsOnWarnings(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		table:  writeTable(t, dir, testTable),
		output: filepath.Join(dir, "commands_gen.go"),
		strict: true,
	}

	err := run(opts, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "TBL-001") {
		t.Fatalf("run() error = %v, want TBL-001 validation error", err)
	}
	if _, err := os.Stat(opts.output); !os.IsNotExist(err) {
		t.Error("output written despite validation failure")
	}
}

func TestRunInvalidTable(t *testing.T) {
	dir := t.TempDir()
	opts := options{table: writeTable(t, dir, "|0x03|CLEAR_FAULTS|send|_|1|"), output: filepath.Join(dir, "x.go")}

	err := run(opts, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "RES-W") {
		t.Fatalf("run() error = %v, want RES-W", err)
	}
}

func TestRunUndeclarableConstants(t *testing.T) {
	dir := t.TempDir()
	src := "|0x01|New|write: u8|read: u8|1|,\n|0x02|Device|send|_|0|,\n|0x03|type|send|_|0|"
	out := filepath.Join(dir, "x.go")
	opts := options{table: writeTable(t, dir, src), output: out, iface: "Device"}

	err := run(opts, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected NAM-002 errors")
	}
	for _, want := range []string{"3 validation errors", "[NAM-002]", "generated constructor", "generated interface", "Go keyword"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output written despite errors: %v", statErr)
	}
}

func TestRunSyntaxError(t *testing.T) {
	dir := t.TempDir()
	opts := options{table: writeTable(t, dir, "|0x03|CLEAR_FAULTS|send|_|"), output: filepath.Join(dir, "x.go")}

	if err := run(opts, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestRunWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, testTable)
	config := `table: commands.tbl
package: device
interface: Device
rules:
  disable: [TBL-001]
outputs:
  go: gen/device_gen.go
`
	configPath := filepath.Join(dir, "pmbus-gen.yaml")
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	if err := run(options{config: configPath, strict: true}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	code, err := os.ReadFile(filepath.Join(dir, "gen", "device_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "type Device[A smbus.AddressMode] interface {") {
		t.Error("interface name from config not applied")
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected warnings:\n%s", stderr.String())
	}
}

func TestRunWritesBrokenFileOnFormatFailure(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "|0x01|VOUT_MODE|_|read: Mode|1|")
	config := `table: commands.tbl
types:
  Mode:
    go: "func("
`
	configPath := filepath.Join(dir, "pmbus-gen.yaml")
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "commands_gen.go")

	err := run(options{config: configPath, output: output}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "goimports commands_gen.go") {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(output + ".broken"); err != nil {
		t.Errorf("broken file not written: %v", err)
	}
}

func TestLoadConfigRequiresTable(t *testing.T) {
	if _, err := loadConfig(options{output: "x.go"}); err == nil {
		t.Fatal("expected error without a table")
	}
}
