// Package pmbus provides typed accessors for the PMBus 1.3 standard command
// set.
//
// The constants, the PMBus interface and Client are generated from
// commands.tbl by pmbus-gen. Each accessor forwards to exactly one SMBus
// primitive:
//
//	bus := smbus.NewHost[smbus.SevenBitAddress](i2c)
//	psu := pmbus.New(bus)
//	mode, err := psu.ReadVoutMode(ctx, 0x40)
//
// Commands marked unimplemented in the table get a constant but no
// accessor; they remain reachable through the embedded SMBus methods.
package pmbus

//go:generate go run ../../cmd/pmbus-gen -table commands.tbl -output commands_gen.go -manifest commands.yaml
