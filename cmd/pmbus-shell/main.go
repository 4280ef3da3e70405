// Command pmbus-shell is an interactive explorer for PMBus command tables.
//
// Rows typed at the prompt are resolved on their own, showing the
// accessors the compiler would generate. A whole table can be loaded,
// checked against the rule set, and rendered with any backend.
//
// Usage:
//
//	pmbus-shell [-table commands.tbl] [-strict]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/powerwire/pmbus-go/cmd/pmbus-shell/interactive"
)

func main() {
	tablePath := flag.String("table", "", "Command table to load at startup")
	strict := flag.Bool("strict", false, "Treat warnings as errors")
	history := flag.String("history", defaultHistory(), "History file (empty disables history)")
	flag.Parse()

	shell, err := interactive.New(*history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	session := shell.Session()
	session.SetStrict(*strict)
	if *tablePath != "" && !session.Load(*tablePath) {
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	shell.Run(ctx)
}

func defaultHistory() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pmbus-shell_history")
}
