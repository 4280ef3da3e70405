package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/powerwire/pmbus-go/pkg/emit"
)

// Shell runs a Session on a terminal.
type Shell struct {
	rl      *readline.Instance
	session *Session
}

// New creates a shell. History is kept in historyFile when it is not empty.
func New(historyFile string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pmbus> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		rl:      rl,
		session: NewSession(rl.Stdout()),
	}, nil
}

// Session returns the shell's session.
func (s *Shell) Session() *Session { return s.session }

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.session.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		if !s.session.Exec(line) {
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}
	}
}

func completer() *readline.PrefixCompleter {
	backends := make([]readline.PrefixCompleterInterface, 0, len(emit.BackendNames()))
	for _, name := range emit.BackendNames() {
		backends = append(backends, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("load", readline.PcItemDynamic(listTables)),
		readline.PcItem("show"),
		readline.PcItem("check"),
		readline.PcItem("emit", backends...),
		readline.PcItem("rules"),
		readline.PcItem("enable"),
		readline.PcItem("disable"),
		readline.PcItem("severity"),
		readline.PcItem("strict", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("quit"),
	)
}

// listTables offers the .tbl files in the current directory.
func listTables(string) []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".tbl") {
			names = append(names, e.Name())
		}
	}
	return names
}
