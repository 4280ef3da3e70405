package smbus

import "context"

// I2C is the transport Host drives. Implementations wrap a kernel i2c-dev
// handle, a USB bridge, or a simulator.
type I2C[A AddressMode] interface {
	// Read fills buf from the device.
	Read(ctx context.Context, addr A, buf []byte) error

	// Write sends data to the device.
	Write(ctx context.Context, addr A, data []byte) error

	// WriteRead sends data, then fills buf with a repeated start between
	// the two.
	WriteRead(ctx context.Context, addr A, data, buf []byte) error

	// Transaction performs ops as a single bus transaction. Adjacent
	// writes are sent without a repeated start.
	Transaction(ctx context.Context, addr A, ops []Operation) error
}

// Operation is one message of an I2C transaction. Exactly one of Write and
// Read is set.
type Operation struct {
	Write []byte
	Read  []byte
}

// WriteOp returns an operation that writes data.
func WriteOp(data []byte) Operation { return Operation{Write: data} }

// ReadOp returns an operation that fills buf.
func ReadOp(buf []byte) Operation { return Operation{Read: buf} }

// IsRead reports whether the operation reads from the device.
func (o Operation) IsRead() bool { return o.Read != nil }
