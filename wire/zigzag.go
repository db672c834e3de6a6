package wire

import "github.com/varbif/varbif/codec"

// Zigzag maps signed integers to unsigned so that small-magnitude values
// (positive or negative) encode in few bytes: zz(x) = (x<<1) XOR
// (x>>(width-1)), computed in unsigned arithmetic per spec.

func zigzagEncode8(v int8) uint8   { return uint8(v<<1) ^ uint8(v>>7) }
func zigzagEncode16(v int16) uint16 { return uint16(v<<1) ^ uint16(v>>15) }
func zigzagEncode32(v int32) uint32 { return uint32(v<<1) ^ uint32(v>>31) }
func zigzagEncode64(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }

func zigzagDecode8(u uint8) int8   { return int8((u >> 1) ^ -(u & 1)) }
func zigzagDecode16(u uint16) int16 { return int16((u >> 1) ^ -(u & 1)) }
func zigzagDecode32(u uint32) int32 { return int32((u >> 1) ^ -(u & 1)) }
func zigzagDecode64(u uint64) int64 { return int64((u >> 1) ^ -(u & 1)) }

// zigzagEncode128 and zigzagDecode128 carry the same formula across a
// 128-bit value represented as a (Lo, Hi) uint64 pair, since Go has no
// native 128-bit integer.
func zigzagEncode128(v codec.Int128) codec.Uint128 {
	shiftedLo := v.Lo << 1
	shiftedHi := (v.Hi << 1) | (v.Lo >> 63)
	sign := v.Hi >> 63
	var mask uint64
	if sign != 0 {
		mask = ^uint64(0)
	}
	return codec.Uint128{Lo: shiftedLo ^ mask, Hi: shiftedHi ^ mask}
}

func zigzagDecode128(u codec.Uint128) codec.Int128 {
	shiftedLo := (u.Lo >> 1) | (u.Hi << 63)
	shiftedHi := u.Hi >> 1
	bit := u.Lo & 1
	var mask uint64
	if bit != 0 {
		mask = ^uint64(0)
	}
	return codec.Int128{Lo: shiftedLo ^ mask, Hi: shiftedHi ^ mask}
}
