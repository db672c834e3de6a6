package codec

import "encoding/binary"

// Uint128 and Int128 give the protocol a 128-bit scalar without relying on
// a native Go integer type (Go has none): the pair mirrors the 16-byte
// payload VarFrame's Value variant already carries, so no extra framing is
// needed to round-trip one.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is the signed counterpart, stored as the same little-endian
// two's-complement bit pattern a 128-bit machine register would hold.
type Int128 struct {
	Lo, Hi uint64
}

// PutLE writes u's little-endian byte representation into buf (len 16).
func (u Uint128) PutLE(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], u.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], u.Hi)
}

// Uint128FromLE reads a little-endian 128-bit value from buf (len 16).
func Uint128FromLE(buf []byte) Uint128 {
	return Uint128{Lo: binary.LittleEndian.Uint64(buf[0:8]), Hi: binary.LittleEndian.Uint64(buf[8:16])}
}

// PutLE writes i's little-endian byte representation into buf (len 16).
func (i Int128) PutLE(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], i.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], i.Hi)
}

// Int128FromLE reads a little-endian 128-bit value from buf (len 16).
func Int128FromLE(buf []byte) Int128 {
	return Int128{Lo: binary.LittleEndian.Uint64(buf[0:8]), Hi: binary.LittleEndian.Uint64(buf[8:16])}
}
