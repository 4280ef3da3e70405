package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// Namer maps a command code to a display name. It returns "" when the code
// has no name.
type Namer func(code uint8) string

// RunView prints the events in path that match filter.
func RunView(path string, filter log.Filter, names Namer, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event, names)
	}
}

// formatEvent writes one line per transaction, plus an error line when the
// transaction failed.
func formatEvent(w io.Writer, event log.Event, names Namer) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	fmt.Fprintf(w, "%s [bus:%s] %-4s %s %-16s %s",
		ts, shortenBusID(event.BusID), event.Direction, formatAddress(event.Address), event.Op, event.CommandString())
	if event.Command != nil && names != nil {
		if name := names(*event.Command); name != "" {
			fmt.Fprintf(w, " %s", name)
		}
	}
	if len(event.Sent) > 0 {
		fmt.Fprintf(w, " sent=%s", hex.EncodeToString(event.Sent))
	}
	if len(event.Received) > 0 {
		fmt.Fprintf(w, " recv=%s", hex.EncodeToString(event.Received))
	}
	if event.Duration > 0 {
		fmt.Fprintf(w, " (%s)", formatDuration(event.Duration))
	}
	fmt.Fprintln(w)

	if event.Failed() {
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}
}

// shortenBusID returns the first 8 characters of the bus ID.
func shortenBusID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatAddress(addr uint16) string {
	if addr > 0x7F {
		return fmt.Sprintf("0x%03X", addr)
	}
	return fmt.Sprintf("0x%02X", addr)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(time.Millisecond).String()
	}
}
