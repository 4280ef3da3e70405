package log

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func cmd(b uint8) *uint8 { return &b }

func createTestTrace(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.blog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, e)
	}
}

func TestOpDirection(t *testing.T) {
	tests := []struct {
		op   Op
		name string
		dir  Direction
	}{
		{OpQuickCommand, "QuickCommand", DirectionOut},
		{OpSendByte, "SendByte", DirectionOut},
		{OpReceiveByte, "ReceiveByte", DirectionIn},
		{OpWriteByte, "WriteByte", DirectionOut},
		{OpWriteWord, "WriteWord", DirectionOut},
		{OpReadByte, "ReadByte", DirectionIn},
		{OpReadWord, "ReadWord", DirectionIn},
		{OpProcessCall, "ProcessCall", DirectionBoth},
		{OpBlockWrite, "BlockWrite", DirectionOut},
		{OpBlockRead, "BlockRead", DirectionIn},
		{OpBlockProcessCall, "BlockProcessCall", DirectionBoth},
	}

	if len(tests) != len(Ops()) {
		t.Fatalf("Ops() has %d entries, test covers %d", len(Ops()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.name {
				t.Errorf("String() = %s, want %s", got, tt.name)
			}
			if got := tt.op.Direction(); got != tt.dir {
				t.Errorf("Direction() = %s, want %s", got, tt.dir)
			}
			parsed, err := ParseOp(strings.ToLower(tt.name))
			if err != nil || parsed != tt.op {
				t.Errorf("ParseOp(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if Op(200).String() != "UNKNOWN" {
		t.Error("out of range op should be UNKNOWN")
	}
	if _, err := ParseOp("ReadNBytes"); err == nil {
		t.Error("ParseOp accepted an unknown name")
	}
}

func TestEventCBORRoundTrip(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
		BusID:     "bus-1",
		Direction: DirectionBoth,
		Op:        OpBlockProcessCall,
		Address:   0x5A,
		Command:   cmd(0x1A),
		Sent:      []byte{0x01, 0x02},
		Received:  []byte{0xAA},
		Duration:  250 * time.Microsecond,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
	}
	if decoded.Op != event.Op || decoded.Direction != event.Direction || decoded.Address != event.Address {
		t.Errorf("decoded header mismatch: %+v", decoded)
	}
	if decoded.Command == nil || *decoded.Command != 0x1A {
		t.Errorf("Command = %v", decoded.CommandString())
	}
	if !bytes.Equal(decoded.Sent, event.Sent) || !bytes.Equal(decoded.Received, event.Received) {
		t.Errorf("payload mismatch: %x / %x", decoded.Sent, decoded.Received)
	}
	if decoded.Duration != event.Duration {
		t.Errorf("Duration = %v", decoded.Duration)
	}
}

func TestEventEncodingIsDeterministic(t *testing.T) {
	event := Event{Timestamp: time.Unix(0, 42).UTC(), BusID: "b", Op: OpReadWord, Command: cmd(0x8B)}
	a, _ := EncodeEvent(event)
	b, _ := EncodeEvent(event)
	if !bytes.Equal(a, b) {
		t.Error("encoding differs between runs")
	}
}

func TestCommandString(t *testing.T) {
	if got := (Event{}).CommandString(); got != "-" {
		t.Errorf("CommandString() = %q, want -", got)
	}
	if got := (Event{Command: cmd(0x8B)}).CommandString(); got != "0x8B" {
		t.Errorf("CommandString() = %q, want 0x8B", got)
	}
}

func TestFileLoggerAppendsAndReads(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), BusID: "bus-1", Op: OpWriteByte, Direction: DirectionOut, Address: 0x10, Command: cmd(0x01)},
		{Timestamp: time.Now(), BusID: "bus-1", Op: OpReadWord, Direction: DirectionIn, Address: 0x10, Command: cmd(0x8B)},
		{Timestamp: time.Now(), BusID: "bus-2", Op: OpSendByte, Direction: DirectionOut, Address: 0x11, Sent: []byte{0x03}, Error: "nack"},
	}
	path := createTestTrace(t, events)

	// Reopening appends.
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), BusID: "bus-3", Op: OpQuickCommand})
	written, dropped := logger.Stats()
	if written != 1 || dropped != 0 {
		t.Errorf("Stats() = %d, %d", written, dropped)
	}
	if logger.Path() != path {
		t.Errorf("Path() = %s", logger.Path())
	}
	logger.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	got := readAll(t, r)
	if len(got) != 4 {
		t.Fatalf("got %d events, want 4", len(got))
	}
	if got[0].Op != OpWriteByte || got[3].BusID != "bus-3" {
		t.Errorf("unexpected order: %v, %v", got[0].Op, got[3].BusID)
	}
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.blog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	logger.Log(Event{BusID: "late"})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("event logged after Close, size = %d", info.Size())
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.blog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				logger.Log(Event{Timestamp: time.Now(), BusID: "bus", Op: OpReadByte, Address: uint16(g)})
			}
		}(g)
	}
	wg.Wait()
	logger.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if n := len(readAll(t, r)); n != 200 {
		t.Errorf("read %d events, want 200", n)
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, BusID: "a", Op: OpWriteByte, Direction: DirectionOut, Address: 0x10, Command: cmd(0x01)},
		{Timestamp: base.Add(time.Second), BusID: "a", Op: OpReadByte, Direction: DirectionIn, Address: 0x10, Command: cmd(0x01)},
		{Timestamp: base.Add(2 * time.Second), BusID: "b", Op: OpReadWord, Direction: DirectionIn, Address: 0x20, Command: cmd(0x8B), Error: "timeout"},
		{Timestamp: base.Add(3 * time.Second), BusID: "b", Op: OpSendByte, Direction: DirectionOut, Address: 0x20},
	}
	path := createTestTrace(t, events)

	in := DirectionIn
	op := OpSendByte
	addr := uint16(0x20)
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"bus", Filter{BusID: "a"}, 2},
		{"direction", Filter{Direction: &in}, 2},
		{"op", Filter{Op: &op}, 1},
		{"address", Filter{Address: &addr}, 2},
		{"command skips events without one", Filter{Command: cmd(0x01)}, 2},
		{"errors only", Filter{ErrorsOnly: true}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{BusID: "b", Direction: &in}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()
			if got := len(readAll(t, r)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.blog")); err == nil {
		t.Error("expected error for missing file")
	}
}

type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func TestMultiLogger(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, nil, b, NoopLogger{})

	m.Log(Event{BusID: "x"})
	m.Log(Event{BusID: "y"})

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Fatalf("fan-out failed: %d, %d", len(a.events), len(b.events))
	}
	if a.events[1].BusID != "y" {
		t.Errorf("order not preserved: %v", a.events)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	adapter.Log(Event{
		BusID:    "bus-1",
		Op:       OpBlockRead,
		Address:  0x5A,
		Command:  cmd(0x99),
		Received: []byte{0x41, 0x43},
	})
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=smbus", "bus_id=bus-1", "op=BlockRead", "addr=0x5a", "command=0x99", "received=4143"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	adapter.Log(Event{BusID: "bus-1", Op: OpSendByte, Address: 0x1FF, Error: "nack"})
	out = buf.String()
	for _, want := range []string{"level=WARN", "addr=0x1ff", "error=nack"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "command=") {
		t.Errorf("output %q should not carry a command", out)
	}
}
