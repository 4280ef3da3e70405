// Command pmbus-gen compiles a PMBus command table into Go accessors.
//
// Usage:
//
//	pmbus-gen -table commands.tbl -output commands_gen.go [-manifest commands.yaml] [-ir commands.ir]
//	pmbus-gen -config pmbus-gen.yaml
//
// Flags override values from the config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/powerwire/pmbus-go/pkg/emit"
	"github.com/powerwire/pmbus-go/pkg/genconfig"
	"github.com/powerwire/pmbus-go/pkg/resolve"
	"github.com/powerwire/pmbus-go/pkg/table"
)

type options struct {
	table    string
	config   string
	output   string
	pkg      string
	iface    string
	manifest string
	ir       string
	strict   bool
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.table, "table", "", "Path to the command table")
	flag.StringVar(&opts.config, "config", "", "Path to a pmbus-gen YAML config")
	flag.StringVar(&opts.output, "output", "", "Output path for the generated Go file")
	flag.StringVar(&opts.pkg, "package", "", "Go package name (default pmbus)")
	flag.StringVar(&opts.iface, "interface", "", "Name of the generated interface (default PMBus)")
	flag.StringVar(&opts.manifest, "manifest", "", "Output path for the YAML manifest")
	flag.StringVar(&opts.ir, "ir", "", "Output path for the CBOR intermediate form")
	flag.BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	flag.BoolVar(&opts.verbose, "v", false, "Print info-level findings")
	flag.Parse()

	if opts.table == "" && opts.config == "" {
		fmt.Fprintln(os.Stderr, "Usage: pmbus-gen -table <path> [-output <path>] [-manifest <path>] [-ir <path>] [-package <name>] [-interface <name>] [-strict]")
		fmt.Fprintln(os.Stderr, "       pmbus-gen -config <path>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the config file, or the defaults, with flags applied.
func loadConfig(opts options) (*genconfig.Config, error) {
	cfg := genconfig.Default()
	if opts.config != "" {
		var err error
		if cfg, err = genconfig.Load(opts.config); err != nil {
			return nil, err
		}
	}

	if opts.table != "" {
		cfg.Table = opts.table
	}
	if opts.output != "" {
		cfg.Outputs.Go = opts.output
	}
	if opts.manifest != "" {
		cfg.Outputs.Manifest = opts.manifest
	}
	if opts.ir != "" {
		cfg.Outputs.IR = opts.ir
	}
	if opts.pkg != "" {
		cfg.Package = opts.pkg
	}
	if opts.iface != "" {
		cfg.Interface = opts.iface
	}
	if opts.strict {
		cfg.Strict = true
	}

	if cfg.Table == "" {
		return nil, fmt.Errorf("no command table given")
	}
	return cfg, nil
}

func run(opts options, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	tbl, err := table.LoadFile(cfg.Table)
	if err != nil {
		return err
	}

	resolveOpts, err := cfg.ResolveOptions()
	if err != nil {
		return fmt.Errorf("configuring rules: %w", err)
	}
	res, err := resolve.Resolve(tbl, resolveOpts)
	if err != nil {
		return err
	}
	for _, v := range res.Warnings() {
		if v.Severity == resolve.SeverityInfo && !opts.verbose {
			continue
		}
		fmt.Fprintf(stderr, "%s: %s\n", cfg.Table, v)
	}

	emitOpts, err := cfg.EmitOptions()
	if err != nil {
		return err
	}
	prog, err := emit.Build(res, emitOpts)
	if err != nil {
		return err
	}

	if cfg.Outputs.Go != "" {
		if err := writeGo(cfg.Outputs.Go, prog); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  generated %s\n", cfg.Outputs.Go)
	}

	if cfg.Outputs.Manifest != "" {
		data, err := emit.ManifestBackend{}.Render(prog)
		if err != nil {
			return err
		}
		if err := writeFile(cfg.Outputs.Manifest, data); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Fprintf(stdout, "  generated %s\n", cfg.Outputs.Manifest)
	}

	if cfg.Outputs.IR != "" {
		data, err := emit.EncodeIR(prog)
		if err != nil {
			return err
		}
		if err := writeFile(cfg.Outputs.IR, data); err != nil {
			return fmt.Errorf("writing IR: %w", err)
		}
		fmt.Fprintf(stdout, "  generated %s\n", cfg.Outputs.IR)
	}

	return nil
}

// writeGo renders prog with goimports formatting and writes it to path.
func writeGo(path string, prog *emit.Program) error {
	backend := emit.NewGoBackend()
	backend.Filename = path
	code, err := backend.Render(prog)
	if err != nil {
		var fe *emit.FormatError
		if errors.As(err, &fe) {
			// Write unformatted so you can debug the generator output
			_ = writeFile(path+".broken", fe.Source)
			return fmt.Errorf("goimports %s: %w", filepath.Base(path), fe.Err)
		}
		return err
	}
	if err := writeFile(path, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
