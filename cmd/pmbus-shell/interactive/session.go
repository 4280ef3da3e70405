// Package interactive provides the pmbus-shell command loop.
package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/emit"
	"github.com/powerwire/pmbus-go/pkg/resolve"
	"github.com/powerwire/pmbus-go/pkg/table"
)

// Session holds the state of a shell: the loaded table and the rule
// configuration. It is independent of the terminal.
type Session struct {
	out      io.Writer
	registry *resolve.RuleRegistry
	strict   bool

	table  *table.Table
	result *resolve.Result
}

// NewSession creates a session writing to out.
func NewSession(out io.Writer) *Session {
	return &Session{
		out:      out,
		registry: resolve.NewDefaultRegistry(),
	}
}

// SetStrict promotes warnings to errors for subsequent loads.
func (s *Session) SetStrict(strict bool) { s.strict = strict }

// Exec runs one input line. It returns false when the session should end.
func (s *Session) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" || strings.HasPrefix(input, "//") {
		return true
	}

	if strings.HasPrefix(input, "|") {
		s.cmdRow(input)
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "load", "l":
		s.cmdLoad(args)
	case "show", "s":
		s.cmdShow(args)
	case "check":
		s.cmdCheck()
	case "rules":
		s.cmdRules()
	case "enable":
		s.cmdToggle(args, true)
	case "disable":
		s.cmdToggle(args, false)
	case "severity":
		s.cmdSeverity(args)
	case "strict":
		s.cmdStrict(args)
	case "emit":
		s.cmdEmit(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
pmbus-shell Commands:
  Rows:
    |0x20|VOUT_MODE|write: u8|read: u8|1|
                       - Resolve a single row and show its accessors

  Tables:
    load <file>        - Load and check a command table
    show <name|code>   - Show a row of the loaded table
    check              - Re-run the rules on the loaded table
    emit [go|manifest] - Print the generated output for the loaded table

  Rules:
    rules              - List rules with severity and state
    enable <id>        - Enable a rule
    disable <id>       - Disable a rule
    severity <id> <s>  - Set a rule's severity (error, warning, info)
    strict [on|off]    - Treat warnings as errors

  General:
    help               - Show this help
    quit               - Exit`)
}

// cmdRow resolves one row on its own, without table-wide rules.
func (s *Session) cmdRow(input string) {
	e, err := table.ParseRow(input)
	if err != nil {
		fmt.Fprintf(s.out, "Syntax error: %v\n", err)
		return
	}
	s.printResolution(resolve.ResolveEntry(e))
}

func (s *Session) printResolution(er resolve.EntryResolution) {
	e := er.Entry
	if e.Ident.Reserved {
		fmt.Fprintf(s.out, "0x%02X reserved\n", e.Byte)
	} else {
		fmt.Fprintf(s.out, "%s = 0x%02X\n", e.Ident.Name, e.Byte)
	}

	accessors := er.Accessors()
	if len(accessors) == 0 && len(er.Violations) == 0 {
		fmt.Fprintln(s.out, "  no accessors")
	}
	for _, a := range accessors {
		typ := a.PayloadType
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(s.out, "  %-3s %-28s %-16s %s\n", a.Rule, a.GoName, a.Op, typ)
	}
	for _, v := range er.Violations {
		fmt.Fprintf(s.out, "  %s\n", v)
	}
}

func (s *Session) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: load <file>")
		return
	}
	s.Load(args[0])
}

// Load reads and checks a table file, replacing the current table.
// It reports false if the file could not be read or parsed.
func (s *Session) Load(path string) bool {
	t, err := table.LoadFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	s.table = t
	s.check()
	return true
}

func (s *Session) cmdCheck() {
	if s.table == nil {
		fmt.Fprintln(s.out, "No table loaded (use 'load <file>')")
		return
	}
	s.check()
}

func (s *Session) check() {
	res, err := resolve.Resolve(s.table, resolve.Options{Registry: s.registry, Strict: s.strict})
	s.result = res

	named := 0
	for _, e := range s.table.Entries {
		if !e.Ident.Reserved {
			named++
		}
	}
	fmt.Fprintf(s.out, "%s: %d rows, %d commands, %d accessors\n",
		s.table.Source, len(s.table.Entries), named, len(res.Accessors()))
	for _, v := range res.Violations {
		fmt.Fprintf(s.out, "  %s\n", v)
	}
	if err != nil {
		fmt.Fprintf(s.out, "%d errors\n", len(res.Errors()))
	}
}

func (s *Session) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: show <name|code>")
		return
	}
	if s.result == nil {
		fmt.Fprintln(s.out, "No table loaded (use 'load <file>')")
		return
	}

	code, isCode := parseCode(args[0])
	found := false
	for _, er := range s.result.Entries {
		e := er.Entry
		if (isCode && e.Byte == code) || (!e.Ident.Reserved && strings.EqualFold(e.Ident.Name, args[0])) {
			fmt.Fprintf(s.out, "%s: %s\n", e.Pos, e)
			s.printResolution(er)
			found = true
		}
	}
	if !found {
		fmt.Fprintf(s.out, "No row for %s\n", args[0])
	}
}

func parseCode(s string) (uint8, bool) {
	if !strings.HasPrefix(strings.ToLower(s), "0x") {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func (s *Session) cmdRules() {
	for _, r := range s.registry.AllRules() {
		state := "enabled"
		if !s.registry.IsEnabled(r.ID()) {
			state = "disabled"
		}
		fmt.Fprintf(s.out, "  %-8s %-8s %-8s %s\n", r.ID(), s.registry.GetSeverity(r.ID()), state, r.Name())
	}
	if s.strict {
		fmt.Fprintln(s.out, "  strict: warnings are errors")
	}
}

func (s *Session) cmdToggle(args []string, enable bool) {
	if len(args) != 1 || s.registry.GetRule(args[0]) == nil {
		fmt.Fprintln(s.out, "Usage: enable|disable <rule-id> (see 'rules')")
		return
	}
	if enable {
		s.registry.Enable(args[0])
	} else {
		s.registry.Disable(args[0])
	}
	s.recheck()
}

func (s *Session) cmdSeverity(args []string) {
	if len(args) != 2 || s.registry.GetRule(args[0]) == nil {
		fmt.Fprintln(s.out, "Usage: severity <rule-id> <error|warning|info>")
		return
	}
	sev, err := resolve.ParseSeverity(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.registry.SetSeverity(args[0], sev)
	s.recheck()
}

func (s *Session) cmdStrict(args []string) {
	switch {
	case len(args) == 0:
		s.strict = !s.strict
	case args[0] == "on":
		s.strict = true
	case args[0] == "off":
		s.strict = false
	default:
		fmt.Fprintln(s.out, "Usage: strict [on|off]")
		return
	}
	fmt.Fprintf(s.out, "strict: %t\n", s.strict)
	s.recheck()
}

func (s *Session) recheck() {
	if s.table != nil {
		s.check()
	}
}

func (s *Session) cmdEmit(args []string) {
	if s.result == nil {
		fmt.Fprintln(s.out, "No table loaded (use 'load <file>')")
		return
	}
	if len(s.result.Errors()) > 0 {
		fmt.Fprintln(s.out, "Table has errors (see 'check')")
		return
	}

	name := "go"
	if len(args) > 0 {
		name = args[0]
	}
	backend, err := emit.NewBackend(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	prog, err := emit.Build(s.result, emit.Options{})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	out, err := backend.Render(prog)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.out.Write(out)
}
