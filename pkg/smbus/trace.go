package smbus

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	"github.com/powerwire/pmbus-go/pkg/log"
)

// Traced reports every transaction on a bus to a log.Logger. Each Traced
// handle carries a random bus ID so traces of several buses can share a
// file.
type Traced[A AddressMode] struct {
	bus    SMBus[A]
	logger log.Logger
	id     string
	now    func() time.Time
}

// Trace wraps bus. A nil logger disables tracing.
func Trace[A AddressMode](bus SMBus[A], logger log.Logger) *Traced[A] {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Traced[A]{
		bus:    bus,
		logger: logger,
		id:     uuid.New().String(),
		now:    time.Now,
	}
}

// ID returns the bus ID stamped on every event.
func (t *Traced[A]) ID() string { return t.id }

func (t *Traced[A]) record(op log.Op, addr A, command *uint8, sent, received []byte, start time.Time, err error) {
	ev := log.Event{
		Timestamp: start,
		BusID:     t.id,
		Direction: op.Direction(),
		Op:        op,
		Address:   uint16(addr),
		Command:   command,
		Sent:      sent,
		Received:  received,
		Duration:  t.now().Sub(start),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	t.logger.Log(ev)
}

func le16(w uint16) []byte { return binary.LittleEndian.AppendUint16(nil, w) }

func (t *Traced[A]) QuickCommand(ctx context.Context, addr A, bit bool) error {
	start := t.now()
	err := t.bus.QuickCommand(ctx, addr, bit)
	var sent []byte
	if bit {
		sent = []byte{1}
	}
	t.record(log.OpQuickCommand, addr, nil, sent, nil, start, err)
	return err
}

func (t *Traced[A]) SendByte(ctx context.Context, addr A, b uint8) error {
	start := t.now()
	err := t.bus.SendByte(ctx, addr, b)
	t.record(log.OpSendByte, addr, nil, []byte{b}, nil, start, err)
	return err
}

func (t *Traced[A]) ReceiveByte(ctx context.Context, addr A) (uint8, error) {
	start := t.now()
	b, err := t.bus.ReceiveByte(ctx, addr)
	var recv []byte
	if err == nil {
		recv = []byte{b}
	}
	t.record(log.OpReceiveByte, addr, nil, nil, recv, start, err)
	return b, err
}

func (t *Traced[A]) WriteByte(ctx context.Context, addr A, command, b uint8) error {
	start := t.now()
	err := t.bus.WriteByte(ctx, addr, command, b)
	t.record(log.OpWriteByte, addr, &command, []byte{b}, nil, start, err)
	return err
}

func (t *Traced[A]) WriteWord(ctx context.Context, addr A, command uint8, w uint16) error {
	start := t.now()
	err := t.bus.WriteWord(ctx, addr, command, w)
	t.record(log.OpWriteWord, addr, &command, le16(w), nil, start, err)
	return err
}

func (t *Traced[A]) ReadByte(ctx context.Context, addr A, command uint8) (uint8, error) {
	start := t.now()
	b, err := t.bus.ReadByte(ctx, addr, command)
	var recv []byte
	if err == nil {
		recv = []byte{b}
	}
	t.record(log.OpReadByte, addr, &command, nil, recv, start, err)
	return b, err
}

func (t *Traced[A]) ReadWord(ctx context.Context, addr A, command uint8) (uint16, error) {
	start := t.now()
	w, err := t.bus.ReadWord(ctx, addr, command)
	var recv []byte
	if err == nil {
		recv = le16(w)
	}
	t.record(log.OpReadWord, addr, &command, nil, recv, start, err)
	return w, err
}

func (t *Traced[A]) ProcessCall(ctx context.Context, addr A, command uint8, w uint16) (uint16, error) {
	start := t.now()
	r, err := t.bus.ProcessCall(ctx, addr, command, w)
	var recv []byte
	if err == nil {
		recv = le16(r)
	}
	t.record(log.OpProcessCall, addr, &command, le16(w), recv, start, err)
	return r, err
}

func (t *Traced[A]) BlockWrite(ctx context.Context, addr A, command uint8, block []byte) error {
	start := t.now()
	err := t.bus.BlockWrite(ctx, addr, command, block)
	t.record(log.OpBlockWrite, addr, &command, block, nil, start, err)
	return err
}

func (t *Traced[A]) BlockRead(ctx context.Context, addr A, command uint8) ([]byte, error) {
	start := t.now()
	b, err := t.bus.BlockRead(ctx, addr, command)
	t.record(log.OpBlockRead, addr, &command, nil, b, start, err)
	return b, err
}

func (t *Traced[A]) BlockProcessCall(ctx context.Context, addr A, command uint8, block []byte) ([]byte, error) {
	start := t.now()
	b, err := t.bus.BlockProcessCall(ctx, addr, command, block)
	t.record(log.OpBlockProcessCall, addr, &command, block, b, start, err)
	return b, err
}

var _ SMBus[SevenBitAddress] = (*Traced[SevenBitAddress])(nil)
