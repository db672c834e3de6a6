package wire

import (
	"encoding/binary"
	"math"
)

func putUint16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func putUint32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func putUint64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// putFloat32BE/putFloat64BE write IEEE-754 bits big-endian, the documented
// asymmetry with every other multi-byte scalar's little-endian encoding.
func putFloat32BE(b []byte, v float32) { binary.BigEndian.PutUint32(b, math.Float32bits(v)) }
func putFloat64BE(b []byte, v float64) { binary.BigEndian.PutUint64(b, math.Float64bits(v)) }

func float32BE(b []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(b)) }
func float64BE(b []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(b)) }

// putFloat32LE/putFloat64LE and their readers below are little-endian,
// unlike putFloat32BE/putFloat64BE above: the EncodeVecF32/F64 batch path
// packs IEEE-754 bits the way rustbif's encode_vec_<T> does (raw
// to_le_bytes()), distinct from the big-endian per-scalar EncodeF32/F64
// production.
func putFloat32LE(b []byte, v float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) }
func putFloat64LE(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) }
func float32LE(b []byte) float32       { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func float64LE(b []byte) float64       { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }

func leBytes32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}
