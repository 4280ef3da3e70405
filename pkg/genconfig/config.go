// Package genconfig loads pmbus-gen configuration files.
package genconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/powerwire/pmbus-go/pkg/emit"
	"github.com/powerwire/pmbus-go/pkg/resolve"
)

// Config is the top-level structure of a pmbus-gen YAML file.
type Config struct {
	// Table is the command table to compile.
	Table string `yaml:"table"`

	Package     string   `yaml:"package"`
	Interface   string   `yaml:"interface"`
	SMBusImport string   `yaml:"smbusImport"`
	Imports     []string `yaml:"imports"`

	// Strict promotes every warning to an error.
	Strict bool `yaml:"strict"`

	Types   map[string]RawType `yaml:"types"`
	Rules   RawRules           `yaml:"rules"`
	Outputs RawOutputs         `yaml:"outputs"`
}

// RawType maps a table type name to a Go type.
type RawType struct {
	Go    string `yaml:"go"`
	Class string `yaml:"class"`
	Size  int    `yaml:"size"`
}

// RawRules adjusts the table rule registry.
type RawRules struct {
	Disable  []string          `yaml:"disable"`
	Severity map[string]string `yaml:"severity"`
}

// RawOutputs names the files to write. Empty entries are skipped.
type RawOutputs struct {
	Go       string `yaml:"go"`
	Manifest string `yaml:"manifest"`
	IR       string `yaml:"ir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Package:     emit.DefaultPackage,
		Interface:   emit.DefaultInterface,
		SMBusImport: emit.DefaultSMBusImport,
		Outputs:     RawOutputs{Go: emit.DefaultGoFilename},
	}
}

// Parse parses a configuration from YAML bytes. Unset fields take their
// Default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads a configuration file. Relative paths in the file are taken
// relative to the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.RelativeTo(filepath.Dir(path))
	return cfg, nil
}

// RelativeTo joins dir to every relative path in c.
func (c *Config) RelativeTo(dir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Table = join(c.Table)
	c.Outputs.Go = join(c.Outputs.Go)
	c.Outputs.Manifest = join(c.Outputs.Manifest)
	c.Outputs.IR = join(c.Outputs.IR)
}

// Validate checks the type classes and rule severities.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config missing package")
	}
	if c.Interface == "" {
		return fmt.Errorf("config missing interface")
	}
	if _, err := c.TypeMap(); err != nil {
		return err
	}
	for id, s := range c.Rules.Severity {
		if _, err := resolve.ParseSeverity(s); err != nil {
			return fmt.Errorf("rule %s: %w", id, err)
		}
	}
	return nil
}

// TypeMap converts the configured types.
func (c *Config) TypeMap() (emit.TypeMap, error) {
	if len(c.Types) == 0 {
		return nil, nil
	}
	out := make(emit.TypeMap, len(c.Types))
	for _, name := range sortedKeys(c.Types) {
		raw := c.Types[name]
		if raw.Go == "" {
			return nil, fmt.Errorf("type %s: missing go type", name)
		}
		class := emit.ClassInteger
		if raw.Class != "" {
			var err error
			if class, err = emit.ParseClass(raw.Class); err != nil {
				return nil, fmt.Errorf("type %s: %w", name, err)
			}
		}
		out[name] = emit.TypeInfo{Go: raw.Go, Class: class, Size: raw.Size}
	}
	return out, nil
}

// Registry returns the default rule registry with the configured rules
// disabled and severities overridden. Unknown rule IDs are an error.
func (c *Config) Registry() (*resolve.RuleRegistry, error) {
	registry := resolve.NewDefaultRegistry()
	for _, id := range c.Rules.Disable {
		if registry.GetRule(id) == nil {
			return nil, fmt.Errorf("disable: unknown rule %s", id)
		}
		registry.Disable(id)
	}
	for _, id := range sortedKeys(c.Rules.Severity) {
		if registry.GetRule(id) == nil {
			return nil, fmt.Errorf("severity: unknown rule %s", id)
		}
		sev, err := resolve.ParseSeverity(c.Rules.Severity[id])
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", id, err)
		}
		registry.SetSeverity(id, sev)
	}
	return registry, nil
}

// ResolveOptions returns the resolve options described by c.
func (c *Config) ResolveOptions() (resolve.Options, error) {
	registry, err := c.Registry()
	if err != nil {
		return resolve.Options{}, err
	}
	return resolve.Options{
		Registry:  registry,
		Strict:    c.Strict,
		Interface: c.Interface,
		Imports:   c.Imports,
	}, nil
}

// EmitOptions returns the emit options described by c.
func (c *Config) EmitOptions() (emit.Options, error) {
	types, err := c.TypeMap()
	if err != nil {
		return emit.Options{}, err
	}
	return emit.Options{
		Package:     c.Package,
		Interface:   c.Interface,
		Types:       types,
		Imports:     c.Imports,
		SMBusImport: c.SMBusImport,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
