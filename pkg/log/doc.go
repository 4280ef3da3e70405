// Package log provides structured bus transaction logging.
//
// This package defines the Logger interface and the Event type for capturing
// every SMBus transaction a host performs. It is separate from operational
// logging (slog): bus capture provides a complete machine-readable trace of
// what went over the wire, for debugging devices and replaying sessions.
//
// # Basic Usage
//
// A bus is traced by wrapping it with smbus.Trace and a Logger:
//
//	// For development: log to console via slog
//	bus := smbus.Trace(host, log.NewSlogAdapter(slog.Default()))
//
//	// For bench captures: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/psu/bus0.blog")
//	bus := smbus.Trace(host, fl)
//
//	// Both: use MultiLogger
//	bus := smbus.Trace(host, log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Trace files are a stream of CBOR encoded events with the .blog extension.
// The pmbus-trace CLI tool provides viewing, filtering and statistics.
package log
