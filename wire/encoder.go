// Package wire is the concrete realization of the generic protocol
// (package codec) on top of the VarFrame codec (package varframe) and a
// byte transport (package transport). It translates each protocol event
// into 0-N VarFrame writes or reads, per the translation table: signed
// integers zigzag, floating point big-endian in payload, strings as UTF-8
// byte blobs.
package wire

import (
	"github.com/varbif/varbif/codec"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/varframe"
)

// Encoder writes protocol events as VarFrame productions to a transport.Writer.
type Encoder struct {
	w transport.Writer
}

var _ codec.Encoder = (*Encoder)(nil)

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w transport.Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeUint writes bytes as the payload of a single Value frame; every
// scalar writer below reduces to this.
func (e *Encoder) EncodeUint(bytes []byte) error {
	f := varframe.FromValue(bytes)
	var tmp [17]byte
	out := f.AppendTo(tmp[:0])
	if _, err := e.w.Write(out); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.EncodeUint([]byte{1})
	}
	return e.EncodeUint([]byte{0})
}

func (e *Encoder) EncodeChar(v rune) error { return e.EncodeU32(uint32(v)) }

func (e *Encoder) EncodeU8(v uint8) error { return e.EncodeUint([]byte{v}) }

func (e *Encoder) EncodeU16(v uint16) error {
	var b [2]byte
	putUint16LE(b[:], v)
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeU32(v uint32) error {
	var b [4]byte
	putUint32LE(b[:], v)
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeU64(v uint64) error {
	var b [8]byte
	putUint64LE(b[:], v)
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeU128(v codec.Uint128) error {
	var b [16]byte
	v.PutLE(b[:])
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeI8(v int8) error { return e.EncodeUint([]byte{zigzagEncode8(v)}) }

func (e *Encoder) EncodeI16(v int16) error {
	var b [2]byte
	putUint16LE(b[:], zigzagEncode16(v))
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeI32(v int32) error {
	var b [4]byte
	putUint32LE(b[:], zigzagEncode32(v))
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeI64(v int64) error {
	var b [8]byte
	putUint64LE(b[:], zigzagEncode64(v))
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeI128(v codec.Int128) error {
	var b [16]byte
	zigzagEncode128(v).PutLE(b[:])
	return e.EncodeUint(b[:])
}

// EncodeF32/EncodeF64 write the IEEE-754 bits big-endian in the Value
// payload; every other multi-byte scalar is little-endian. Preserve this
// asymmetry for bit-exact compatibility with the wire format.
func (e *Encoder) EncodeF32(v float32) error {
	var b [4]byte
	putFloat32BE(b[:], v)
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeF64(v float64) error {
	var b [8]byte
	putFloat64BE(b[:], v)
	return e.EncodeUint(b[:])
}

func (e *Encoder) EncodeBytesBegin(size int) error {
	f := varframe.FromByteSize(uint64(size))
	var tmp [17]byte
	out := f.AppendTo(tmp[:0])
	if _, err := e.w.Write(out); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeBytesPayload(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := e.w.Write(p); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeBytesEnd() error { return nil }

func (e *Encoder) EncodeBinary(v []byte) error {
	if err := e.EncodeBytesBegin(len(v)); err != nil {
		return err
	}
	if err := e.EncodeBytesPayload(v); err != nil {
		return err
	}
	return e.EncodeBytesEnd()
}

func (e *Encoder) EncodeString(v string) error {
	return e.EncodeBinary([]byte(v))
}

func (e *Encoder) EncodeSeqBegin(length int) error {
	f := varframe.FromStructLen(uint32(length))
	var tmp [17]byte
	out := f.AppendTo(tmp[:0])
	if _, err := e.w.Write(out); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeSeqEnd() error { return nil }

func (e *Encoder) EncodeStructBegin(declaredLen int, _ string) error {
	f := varframe.FromStructLen(uint32(declaredLen))
	var tmp [17]byte
	out := f.AppendTo(tmp[:0])
	if _, err := e.w.Write(out); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeStructEnd() error { return nil }

func (e *Encoder) EncodeEnumBegin(tag uint32, payloadLen int, _, _ string) error {
	var f varframe.Frame
	switch payloadLen {
	case 0:
		f = varframe.FromValue(leBytes32(tag))
	default:
		f = varframe.FromEnumTag(tag)
	}
	var tmp [17]byte
	out := f.AppendTo(tmp[:0])
	if _, err := e.w.Write(out); err != nil {
		return codec.TransportError(err)
	}
	return nil
}

func (e *Encoder) EncodeEnumEnd() error { return nil }

// EncodeElemBegin/End are no-ops on the binary wire; they exist so that an
// alternative (e.g. debug/text) encoder can inject separators or track
// indices.
func (e *Encoder) EncodeElemBegin(_ int, _ string) error { return nil }
func (e *Encoder) EncodeElemEnd() error                  { return nil }

// encodeVecBytes writes a ByteSize-framed blob holding n fixed-size
// elements, filling each elemSize-byte slot via put. This is rustbif's
// encode_vec_<T> batch production (encode_bytes_begin(n*elemSize) +
// per-element payload + encode_bytes_end), distinct from EncodeSeqBegin's
// StructLen/elem_begin/end shape.
func (e *Encoder) encodeVecBytes(n, elemSize int, put func(buf []byte, i int)) error {
	if err := e.EncodeBytesBegin(n * elemSize); err != nil {
		return err
	}
	buf := make([]byte, n*elemSize)
	for i := 0; i < n; i++ {
		put(buf[i*elemSize:(i+1)*elemSize], i)
	}
	if err := e.EncodeBytesPayload(buf); err != nil {
		return err
	}
	return e.EncodeBytesEnd()
}

func (e *Encoder) EncodeVecBool(values []bool) error {
	return e.encodeVecBytes(len(values), 1, func(buf []byte, i int) {
		if values[i] {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
	})
}

func (e *Encoder) EncodeVecChar(values []rune) error {
	return e.encodeVecBytes(len(values), 4, func(buf []byte, i int) {
		putUint32LE(buf, uint32(values[i]))
	})
}

// EncodeVecU8 delegates to EncodeBinary, matching rustbif's encode_vec_u8
// (which is just encode_binary): a []byte is already its own raw blob.
func (e *Encoder) EncodeVecU8(values []uint8) error { return e.EncodeBinary(values) }

func (e *Encoder) EncodeVecU16(values []uint16) error {
	return e.encodeVecBytes(len(values), 2, func(buf []byte, i int) { putUint16LE(buf, values[i]) })
}

func (e *Encoder) EncodeVecU32(values []uint32) error {
	return e.encodeVecBytes(len(values), 4, func(buf []byte, i int) { putUint32LE(buf, values[i]) })
}

func (e *Encoder) EncodeVecU64(values []uint64) error {
	return e.encodeVecBytes(len(values), 8, func(buf []byte, i int) { putUint64LE(buf, values[i]) })
}

func (e *Encoder) EncodeVecU128(values []codec.Uint128) error {
	return e.encodeVecBytes(len(values), 16, func(buf []byte, i int) { values[i].PutLE(buf) })
}

// EncodeVecI8..I128 write raw two's-complement little-endian bytes, NOT
// the zigzag encoding EncodeI8..I128 use: rustbif's fn_encode_vec! packs
// values.to_le_bytes() directly, since the batch blob has no per-element
// Value-frame sign-magnitude concern to work around.
func (e *Encoder) EncodeVecI8(values []int8) error {
	return e.encodeVecBytes(len(values), 1, func(buf []byte, i int) { buf[0] = byte(values[i]) })
}

func (e *Encoder) EncodeVecI16(values []int16) error {
	return e.encodeVecBytes(len(values), 2, func(buf []byte, i int) {
		putUint16LE(buf, uint16(values[i]))
	})
}

func (e *Encoder) EncodeVecI32(values []int32) error {
	return e.encodeVecBytes(len(values), 4, func(buf []byte, i int) {
		putUint32LE(buf, uint32(values[i]))
	})
}

func (e *Encoder) EncodeVecI64(values []int64) error {
	return e.encodeVecBytes(len(values), 8, func(buf []byte, i int) {
		putUint64LE(buf, uint64(values[i]))
	})
}

func (e *Encoder) EncodeVecI128(values []codec.Int128) error {
	return e.encodeVecBytes(len(values), 16, func(buf []byte, i int) { values[i].PutLE(buf) })
}

// EncodeVecF32/F64 write IEEE-754 bits little-endian, unlike the
// big-endian EncodeF32/F64: see putFloat32LE's doc comment.
func (e *Encoder) EncodeVecF32(values []float32) error {
	return e.encodeVecBytes(len(values), 4, func(buf []byte, i int) { putFloat32LE(buf, values[i]) })
}

func (e *Encoder) EncodeVecF64(values []float64) error {
	return e.encodeVecBytes(len(values), 8, func(buf []byte, i int) { putFloat64LE(buf, values[i]) })
}
