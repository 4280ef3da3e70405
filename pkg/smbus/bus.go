package smbus

import "context"

// MaxBlockSize is the largest block payload, in bytes, a block transfer
// may carry.
const MaxBlockSize = 32

// AddressMode is the set of device address types.
type AddressMode interface {
	~uint8 | ~uint16
}

// SevenBitAddress is a 7-bit I2C address.
type SevenBitAddress uint8

// TenBitAddress is a 10-bit I2C address.
type TenBitAddress uint16

// SMBus is the Bus Transfer Interface. Section numbers refer to the SMBus
// 3.2 specification.
type SMBus[A AddressMode] interface {
	// QuickCommand sends the address with the R/W bit set to bit (6.5.1).
	QuickCommand(ctx context.Context, addr A, bit bool) error

	// SendByte writes a single byte without a command code (6.5.2).
	SendByte(ctx context.Context, addr A, b uint8) error

	// ReceiveByte reads a single byte without a command code (6.5.3).
	ReceiveByte(ctx context.Context, addr A) (uint8, error)

	// WriteByte writes one data byte to a command (6.5.4).
	WriteByte(ctx context.Context, addr A, command, b uint8) error

	// WriteWord writes a little-endian word to a command (6.5.4).
	WriteWord(ctx context.Context, addr A, command uint8, w uint16) error

	// ReadByte reads one data byte from a command (6.5.5).
	ReadByte(ctx context.Context, addr A, command uint8) (uint8, error)

	// ReadWord reads a little-endian word from a command (6.5.5).
	ReadWord(ctx context.Context, addr A, command uint8) (uint16, error)

	// ProcessCall writes a word and reads a word back (6.5.6).
	ProcessCall(ctx context.Context, addr A, command uint8, w uint16) (uint16, error)

	// BlockWrite writes a length-prefixed block (6.5.7).
	BlockWrite(ctx context.Context, addr A, command uint8, block []byte) error

	// BlockRead reads a length-prefixed block (6.5.7).
	BlockRead(ctx context.Context, addr A, command uint8) ([]byte, error)

	// BlockProcessCall writes a block and reads a block back (6.5.8).
	BlockProcessCall(ctx context.Context, addr A, command uint8, block []byte) ([]byte, error)
}
