package log

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// SlogAdapter writes bus events to an slog.Logger.
// Useful for development when you want to see bus traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Successful transactions are
// logged at Debug level, failed ones at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("bus_id", event.BusID),
		slog.String("op", event.Op.String()),
		slog.String("direction", event.Direction.String()),
		slog.String("addr", hexAddr(event.Address)),
	}

	if event.Command != nil {
		attrs = append(attrs, slog.String("command", event.CommandString()))
	}
	if len(event.Sent) > 0 {
		attrs = append(attrs, slog.String("sent", hex.EncodeToString(event.Sent)))
	}
	if len(event.Received) > 0 {
		attrs = append(attrs, slog.String("received", hex.EncodeToString(event.Received)))
	}
	attrs = append(attrs, slog.Duration("duration", event.Duration))

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), level, "smbus", attrs...)
}

func hexAddr(addr uint16) string {
	if addr <= 0xFF {
		return fmt.Sprintf("0x%02x", addr)
	}
	return fmt.Sprintf("0x%03x", addr)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
