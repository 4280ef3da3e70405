package smbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type voutMode uint8

type modelName string

func TestConvertScalars(t *testing.T) {
	assert.Equal(t, uint8(0x17), ConvertByte[uint8](0x17))
	assert.Equal(t, int8(-1), ConvertByte[int8](0xFF))
	assert.Equal(t, voutMode(0x14), ConvertByte[voutMode](0x14))
	assert.Equal(t, uint8(0xFF), ByteFrom(int8(-1)))
	assert.Equal(t, uint8(0x34), ByteFrom(uint16(0x1234)))

	assert.Equal(t, int16(-2), ConvertWord[int16](0xFFFE))
	assert.Equal(t, uint32(0xABCD), ConvertWord[uint32](0xABCD))
	assert.Equal(t, uint16(0xFFFE), WordFrom(int16(-2)))
}

func TestConvertBool(t *testing.T) {
	assert.True(t, ConvertBool(uint8(1)))
	assert.True(t, ConvertBool(uint16(0x100)))
	assert.False(t, ConvertBool(uint8(0)))
	assert.Equal(t, uint8(1), BoolAs[uint8](true))
	assert.Equal(t, uint16(0), BoolAs[uint16](false))
}

func TestConvertBlock(t *testing.T) {
	assert.Equal(t, modelName("PSU-1200"), ConvertBlock[modelName]([]byte("PSU-1200")))
	assert.Equal(t, []byte("ACME"), BlockFrom("ACME"))
	assert.Equal(t, []byte{1, 2}, BlockFrom([]byte{1, 2}))
}

func TestLittleEndianBlocks(t *testing.T) {
	assert.Equal(t, uint32(0x04030201), DecodeLE[uint32]([]byte{1, 2, 3, 4}))
	assert.Equal(t, uint32(0x0201), DecodeLE[uint32]([]byte{1, 2}))
	assert.Equal(t, uint16(0x0201), DecodeLE[uint16]([]byte{1, 2, 3, 4}))
	assert.Equal(t, int16(-2), DecodeLE[int16]([]byte{0xFE, 0xFF}))
	assert.Equal(t, uint64(0), DecodeLE[uint64](nil))
	assert.Equal(t, int64(0), DecodeLE[int64](nil))
}

func TestDecodeLESignExtendsNarrowBlocks(t *testing.T) {
	assert.Equal(t, int32(-1), DecodeLE[int32]([]byte{0xFF, 0xFF, 0xFF}))
	assert.Equal(t, int32(-0x7FFFFE), DecodeLE[int32]([]byte{0x02, 0x00, 0x80}))
	assert.Equal(t, int32(0x7FFFFF), DecodeLE[int32]([]byte{0xFF, 0xFF, 0x7F}))
	assert.Equal(t, int64(-2), DecodeLE[int64]([]byte{0xFE}))
	assert.Equal(t, int16(-128), DecodeLE[int16]([]byte{0x80}))

	// Unsigned types never extend.
	assert.Equal(t, uint32(0xFFFFFF), DecodeLE[uint32]([]byte{0xFF, 0xFF, 0xFF}))

	// Round trip through a narrow block.
	assert.Equal(t, int32(-300), DecodeLE[int32](EncodeLE(int32(-300), 3)))

	assert.Equal(t, []byte{1, 2, 3, 4}, EncodeLE(uint32(0x04030201), 4))
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 0}, EncodeLE(uint16(0x0201), 6))
	assert.Equal(t, []byte{0xFE}, EncodeLE(int16(-2), 1))
}
