// Package smbus implements the SMBus transfer primitives PMBus accessors are
// built on.
//
// SMBus is the Bus Transfer Interface: eleven primitives from the SMBus 3.2
// specification, each taking a context, a device address and, where the
// protocol has one, a command code. Host implements SMBus on top of any I2C
// transport that can perform plain reads, writes, combined write-read and
// multi-message transactions.
//
// Words travel little-endian. Blocks are length prefixed and limited to
// MaxBlockSize bytes; passing a larger block to a write primitive is a
// programming error and panics.
//
// Host holds no lock. Callers sharing a bus between goroutines wrap it with
// Lock. Trace wraps a bus and reports every transaction to a log.Logger.
//
// Not implemented: packet error checking, Host Notify and the legacy
// read/write N-bytes protocols.
package smbus
