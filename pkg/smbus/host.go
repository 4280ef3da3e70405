package smbus

import (
	"context"
	"encoding/binary"
)

// Host implements SMBus over an I2C transport.
type Host[A AddressMode] struct {
	bus I2C[A]
}

// NewHost returns a Host driving bus.
func NewHost[A AddressMode](bus I2C[A]) *Host[A] {
	return &Host[A]{bus: bus}
}

func (h *Host[A]) QuickCommand(ctx context.Context, addr A, bit bool) error {
	if bit {
		return h.bus.Read(ctx, addr, nil)
	}
	return h.bus.Write(ctx, addr, nil)
}

func (h *Host[A]) SendByte(ctx context.Context, addr A, b uint8) error {
	return h.bus.Write(ctx, addr, []byte{b})
}

func (h *Host[A]) ReceiveByte(ctx context.Context, addr A) (uint8, error) {
	buf := make([]byte, 1)
	if err := h.bus.Read(ctx, addr, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (h *Host[A]) WriteByte(ctx context.Context, addr A, command, b uint8) error {
	return h.bus.Write(ctx, addr, []byte{command, b})
}

func (h *Host[A]) WriteWord(ctx context.Context, addr A, command uint8, w uint16) error {
	return h.bus.Write(ctx, addr, binary.LittleEndian.AppendUint16([]byte{command}, w))
}

func (h *Host[A]) ReadByte(ctx context.Context, addr A, command uint8) (uint8, error) {
	buf := make([]byte, 1)
	if err := h.bus.WriteRead(ctx, addr, []byte{command}, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (h *Host[A]) ReadWord(ctx context.Context, addr A, command uint8) (uint16, error) {
	buf := make([]byte, 2)
	if err := h.bus.WriteRead(ctx, addr, []byte{command}, buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (h *Host[A]) ProcessCall(ctx context.Context, addr A, command uint8, w uint16) (uint16, error) {
	buf := make([]byte, 2)
	out := binary.LittleEndian.AppendUint16([]byte{command}, w)
	if err := h.bus.WriteRead(ctx, addr, out, buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// BlockWrite sends the command and length, then the block, in one
// transaction. It panics if block is longer than MaxBlockSize.
func (h *Host[A]) BlockWrite(ctx context.Context, addr A, command uint8, block []byte) error {
	checkBlock(command, block)
	return h.bus.Transaction(ctx, addr, []Operation{
		WriteOp([]byte{command, uint8(len(block))}),
		WriteOp(block),
	})
}

// BlockRead reads a length-prefixed block. The declared length is capped at
// MaxBlockSize.
func (h *Host[A]) BlockRead(ctx context.Context, addr A, command uint8) ([]byte, error) {
	buf := make([]byte, MaxBlockSize+1)
	if err := h.bus.WriteRead(ctx, addr, []byte{command}, buf); err != nil {
		return nil, err
	}
	return blockFromResponse(buf), nil
}

// BlockProcessCall writes a block and reads a block back in one transaction.
// It panics if block is longer than MaxBlockSize.
func (h *Host[A]) BlockProcessCall(ctx context.Context, addr A, command uint8, block []byte) ([]byte, error) {
	checkBlock(command, block)
	buf := make([]byte, MaxBlockSize+1)
	err := h.bus.Transaction(ctx, addr, []Operation{
		WriteOp([]byte{command, uint8(len(block))}),
		WriteOp(block),
		ReadOp(buf),
	})
	if err != nil {
		return nil, err
	}
	return blockFromResponse(buf), nil
}

// blockFromResponse copies the payload of a length-prefixed response.
func blockFromResponse(buf []byte) []byte {
	n := min(int(buf[0]), MaxBlockSize)
	block := make([]byte, n)
	copy(block, buf[1:1+n])
	return block
}

// Compile-time interface satisfaction check.
var _ SMBus[SevenBitAddress] = (*Host[SevenBitAddress])(nil)
