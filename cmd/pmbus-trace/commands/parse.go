// Package commands implements the pmbus-trace CLI commands.
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// FilterOptions holds the filter flags shared by view, export and filter.
type FilterOptions struct {
	BusID     string
	Direction string
	Op        string
	Address   string
	Command   string
	Errors    bool
	TimeStart string
	TimeEnd   string
}

// Build converts the flag values to a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{BusID: o.BusID, ErrorsOnly: o.Errors}

	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}

	if o.Op != "" {
		op, err := log.ParseOp(o.Op)
		if err != nil {
			return filter, err
		}
		filter.Op = &op
	}

	if o.Address != "" {
		a, err := strconv.ParseUint(o.Address, 0, 10)
		if err != nil {
			return filter, fmt.Errorf("invalid address %q: want a 7 or 10 bit address", o.Address)
		}
		addr := uint16(a)
		filter.Address = &addr
	}

	if o.Command != "" {
		c, err := strconv.ParseUint(o.Command, 0, 8)
		if err != nil {
			return filter, fmt.Errorf("invalid command %q: want a byte such as 0x20", o.Command)
		}
		cmd := uint8(c)
		filter.Command = &cmd
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseDirectionFlag parses a direction flag value (out, in, call).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "out":
		return log.DirectionOut, nil
	case "in":
		return log.DirectionIn, nil
	case "call", "both":
		return log.DirectionBoth, nil
	default:
		return 0, fmt.Errorf("invalid direction %q: must be out, in, or call", s)
	}
}
