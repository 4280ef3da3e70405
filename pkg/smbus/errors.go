package smbus

import "fmt"

// BlockSizeError is the panic value raised when a block larger than
// MaxBlockSize is passed to a write primitive.
type BlockSizeError struct {
	Command uint8
	Len     int
}

func (e *BlockSizeError) Error() string {
	return fmt.Sprintf("smbus: block of %d bytes for command 0x%02X exceeds the %d byte limit",
		e.Len, e.Command, MaxBlockSize)
}

func checkBlock(command uint8, block []byte) {
	if len(block) > MaxBlockSize {
		panic(&BlockSizeError{Command: command, Len: len(block)})
	}
}
