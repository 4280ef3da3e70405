package smbus

import "encoding/binary"

// Integer is the set of integer types accessor payloads may use.
type Integer interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 | ~uint | ~int
}

// Block is the set of types a raw block converts to.
type Block interface {
	~[]byte | ~string
}

// ConvertByte converts a byte read from the bus to T.
func ConvertByte[T Integer](b uint8) T { return T(b) }

// ByteFrom converts v to the byte written to the bus, truncating.
func ByteFrom[T Integer](v T) uint8 { return uint8(v) }

// ConvertWord converts a word read from the bus to T.
func ConvertWord[T Integer](w uint16) T { return T(w) }

// WordFrom converts v to the word written to the bus, truncating.
func WordFrom[T Integer](v T) uint16 { return uint16(v) }

// ConvertBool reports whether a byte or word read from the bus is non-zero.
func ConvertBool[T ~uint8 | ~uint16](v T) bool { return v != 0 }

// BoolAs converts v to 1 or 0.
func BoolAs[T ~uint8 | ~uint16](v bool) T {
	if v {
		return 1
	}
	return 0
}

// ConvertBlock converts a block read from the bus to T.
func ConvertBlock[T Block](b []byte) T { return T(b) }

// BlockFrom converts v to the block written to the bus.
func BlockFrom[T Block](v T) []byte { return []byte(v) }

// DecodeLE decodes a little-endian integer from a block. Bytes beyond the
// width of T are ignored. When the block is narrower than T, missing high
// bytes read as zero for unsigned T and extend the sign of the block's last
// byte for signed T.
func DecodeLE[T Integer](b []byte) T {
	var buf [8]byte
	n := copy(buf[:], b)
	if signed := ^T(0) < 0; signed && n > 0 && buf[n-1]&0x80 != 0 {
		for i := n; i < len(buf); i++ {
			buf[i] = 0xFF
		}
	}
	return T(binary.LittleEndian.Uint64(buf[:]))
}

// EncodeLE encodes v as an n byte little-endian block.
func EncodeLE[T Integer](v T, n int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	out := make([]byte, n)
	copy(out, buf[:])
	return out
}
