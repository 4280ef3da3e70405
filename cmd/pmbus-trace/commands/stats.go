package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents int
	EventsByOp  map[log.Op]int
	Commands    map[uint8]*CommandStats
	Devices     map[uint16]int
	Buses       map[string]int
	Errors      int
	BusyTime    time.Duration
	TimeRange   struct {
		Start time.Time
		End   time.Time
	}
}

// CommandStats holds statistics for a single command code.
type CommandStats struct {
	Events   int
	Errors   int
	MaxTime  time.Duration
	LastSeen time.Time
}

// Collect reads every event in path.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOp: make(map[log.Op]int),
		Commands:   make(map[uint8]*CommandStats),
		Devices:    make(map[uint16]int),
		Buses:      make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOp[event.Op]++
		stats.Devices[event.Address]++
		stats.Buses[event.BusID]++
		stats.BusyTime += event.Duration

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Failed() {
			stats.Errors++
		}

		if event.Command == nil {
			continue
		}
		cs, ok := stats.Commands[*event.Command]
		if !ok {
			cs = &CommandStats{}
			stats.Commands[*event.Command] = cs
		}
		cs.Events++
		if event.Failed() {
			cs.Errors++
		}
		if event.Duration > cs.MaxTime {
			cs.MaxTime = event.Duration
		}
		if event.Timestamp.After(cs.LastSeen) {
			cs.LastSeen = event.Timestamp
		}
	}

	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, names Namer, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats, names)
	return nil
}

func printStats(w io.Writer, stats *Stats, names Namer) {
	fmt.Fprintln(w, "=== SMBus Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintf(w, "Bus Time:   %s\n", formatDuration(stats.BusyTime))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Buses:        %d\n", len(stats.Buses))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range log.Ops() {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Devices: %d\n", len(stats.Devices))
	addrs := make([]uint16, 0, len(stats.Devices))
	for a := range stats.Devices {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for _, a := range addrs {
		fmt.Fprintf(w, "  %-6s %d events\n", formatAddress(a), stats.Devices[a])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Commands: %d\n", len(stats.Commands))
	codes := make([]uint8, 0, len(stats.Commands))
	for c := range stats.Commands {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, c := range codes {
		cs := stats.Commands[c]
		label := fmt.Sprintf("0x%02X", c)
		if names != nil {
			if name := names(c); name != "" {
				label += " " + name
			}
		}
		fmt.Fprintf(w, "  %-30s %d events, max %s", label, cs.Events, formatDuration(cs.MaxTime))
		if cs.Errors > 0 {
			fmt.Fprintf(w, ", %d errors", cs.Errors)
		}
		fmt.Fprintln(w)
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
