package smbus

import (
	"context"
	"sync"
)

// Locked serialises access to a bus shared between goroutines.
type Locked[A AddressMode] struct {
	mu  sync.Mutex
	bus SMBus[A]
}

// Lock wraps bus with a mutex.
func Lock[A AddressMode](bus SMBus[A]) *Locked[A] {
	return &Locked[A]{bus: bus}
}

// Do runs fn with the lock held, so a sequence of transactions (for
// example selecting a PMBus page and then reading from it) is not
// interleaved with other callers. fn must use the bus it is given and not
// the Locked wrapper, which would deadlock.
func (l *Locked[A]) Do(fn func(bus SMBus[A]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.bus)
}

func (l *Locked[A]) QuickCommand(ctx context.Context, addr A, bit bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.QuickCommand(ctx, addr, bit)
}

func (l *Locked[A]) SendByte(ctx context.Context, addr A, b uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.SendByte(ctx, addr, b)
}

func (l *Locked[A]) ReceiveByte(ctx context.Context, addr A) (uint8, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.ReceiveByte(ctx, addr)
}

func (l *Locked[A]) WriteByte(ctx context.Context, addr A, command, b uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.WriteByte(ctx, addr, command, b)
}

func (l *Locked[A]) WriteWord(ctx context.Context, addr A, command uint8, w uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.WriteWord(ctx, addr, command, w)
}

func (l *Locked[A]) ReadByte(ctx context.Context, addr A, command uint8) (uint8, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.ReadByte(ctx, addr, command)
}

func (l *Locked[A]) ReadWord(ctx context.Context, addr A, command uint8) (uint16, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.ReadWord(ctx, addr, command)
}

func (l *Locked[A]) ProcessCall(ctx context.Context, addr A, command uint8, w uint16) (uint16, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.ProcessCall(ctx, addr, command, w)
}

func (l *Locked[A]) BlockWrite(ctx context.Context, addr A, command uint8, block []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.BlockWrite(ctx, addr, command, block)
}

func (l *Locked[A]) BlockRead(ctx context.Context, addr A, command uint8) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.BlockRead(ctx, addr, command)
}

func (l *Locked[A]) BlockProcessCall(ctx context.Context, addr A, command uint8, block []byte) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bus.BlockProcessCall(ctx, addr, command, block)
}

var _ SMBus[SevenBitAddress] = (*Locked[SevenBitAddress])(nil)
