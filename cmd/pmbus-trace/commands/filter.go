package commands

import (
	"fmt"
	"io"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// RunFilter copies the events in path that match filter to output and
// returns how many were copied.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	written, dropped := logger.Stats()
	if dropped > 0 {
		return written, fmt.Errorf("failed to write %d events to %s", dropped, output)
	}
	return written, nil
}
