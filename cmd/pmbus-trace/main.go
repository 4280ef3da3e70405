// Command pmbus-trace views and analyzes SMBus trace files.
//
// Trace files are written by a log.FileLogger attached to a bus with
// smbus.Trace.
//
// Usage:
//
//	pmbus-trace <command> [flags] <file.blog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all transactions
//	pmbus-trace view psu.blog
//
//	# View failed transactions to one device
//	pmbus-trace view -addr 0x58 -errors psu.blog
//
//	# Export block reads to CSV
//	pmbus-trace export -format csv -op BlockRead psu.blog
//
//	# Show statistics
//	pmbus-trace stats psu.blog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/powerwire/pmbus-go/cmd/pmbus-trace/commands"
	"github.com/powerwire/pmbus-go/pkg/pmbus"
	"github.com/powerwire/pmbus-go/pkg/table"
)

const usage = `pmbus-trace - SMBus Trace Analyzer

Usage:
  pmbus-trace <command> [flags] <file.blog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "pmbus-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet returns a flag set whose usage text names the command.
func newFlagSet(name, summary, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "pmbus-trace %s - %s\n\nUsage:\n  pmbus-trace %s\n\nFlags:\n", name, summary, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	var o commands.FilterOptions
	fs.StringVar(&o.BusID, "bus", "", "Filter by bus ID")
	fs.StringVar(&o.Direction, "direction", "", "Filter by direction (out, in, call)")
	fs.StringVar(&o.Op, "op", "", "Filter by bus operation (e.g. ReadWord)")
	fs.StringVar(&o.Address, "addr", "", "Filter by device address (e.g. 0x58)")
	fs.StringVar(&o.Command, "cmd", "", "Filter by command code (e.g. 0x8B)")
	fs.BoolVar(&o.Errors, "errors", false, "Show only failed transactions")
	fs.StringVar(&o.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&o.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return &o
}

// namer returns command names from tablePath, or from the standard PMBus
// table when tablePath is empty.
func namer(tablePath string) (commands.Namer, error) {
	if tablePath == "" {
		return pmbus.CommandName, nil
	}
	t, err := table.LoadFile(tablePath)
	if err != nil {
		return nil, err
	}
	names := make(map[uint8]string)
	for _, e := range t.Entries {
		if _, seen := names[e.Byte]; !seen && !e.Ident.Reserved {
			names[e.Byte] = e.Ident.Name
		}
	}
	return func(code uint8) string { return names[code] }, nil
}

func traceArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("trace file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := newFlagSet("view", "View trace file in human-readable format", "view [flags] <file.blog>")
	opts := filterFlags(fs)
	tablePath := fs.String("table", "", "Command table for command names (default: PMBus standard commands)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := traceArg(fs)
	if err != nil {
		return err
	}
	filter, err := opts.Build()
	if err != nil {
		return err
	}
	names, err := namer(*tablePath)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, names, os.Stdout)
}

func runExport(args []string) error {
	fs := newFlagSet("export", "Export trace file to JSON or CSV format", "export [flags] <file.blog>")
	opts := filterFlags(fs)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := traceArg(fs)
	if err != nil {
		return err
	}
	filter, err := opts.Build()
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output, filter, os.Stdout)
}

func runFilter(args []string) error {
	fs := newFlagSet("filter", "Filter trace file and write to new file", "filter -o <out.blog> [flags] <file.blog>")
	opts := filterFlags(fs)
	output := fs.String("o", "", "Output file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := traceArg(fs)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	n, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		return err
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
	return nil
}

func runStats(args []string) error {
	fs := newFlagSet("stats", "Show statistics about the trace file", "stats [flags] <file.blog>")
	tablePath := fs.String("table", "", "Command table for command names (default: PMBus standard commands)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := traceArg(fs)
	if err != nil {
		return err
	}
	names, err := namer(*tablePath)
	if err != nil {
		return err
	}
	return commands.RunStats(path, names, os.Stdout)
}
