package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// RunExport exports the matching events in path to the specified format.
func RunExport(path, format, output string, filter log.Filter, stdout io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

// jsonEvent is the JSON form of an event. Payloads are hex strings.
type jsonEvent struct {
	Timestamp string `json:"timestamp"`
	BusID     string `json:"bus_id"`
	Direction string `json:"direction"`
	Op        string `json:"op"`
	Address   uint16 `json:"address"`
	Command   *uint8 `json:"command,omitempty"`
	Sent      string `json:"sent,omitempty"`
	Received  string `json:"received,omitempty"`
	Duration  int64  `json:"duration_ns,omitempty"`
	Error     string `json:"error,omitempty"`
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		je := jsonEvent{
			Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			BusID:     event.BusID,
			Direction: event.Direction.String(),
			Op:        event.Op.String(),
			Address:   event.Address,
			Command:   event.Command,
			Sent:      hex.EncodeToString(event.Sent),
			Received:  hex.EncodeToString(event.Received),
			Duration:  event.Duration.Nanoseconds(),
			Error:     event.Error,
		}
		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "bus_id", "direction", "op", "address", "command", "sent", "received", "duration_ns", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		command := ""
		if event.Command != nil {
			command = event.CommandString()
		}
		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.BusID,
			event.Direction.String(),
			event.Op.String(),
			formatAddress(event.Address),
			command,
			hex.EncodeToString(event.Sent),
			hex.EncodeToString(event.Received),
			strconv.FormatInt(event.Duration.Nanoseconds(), 10),
			event.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
