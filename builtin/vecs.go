package builtin

import "github.com/varbif/varbif/codec"

// BoolVec, CharVec, and the U*Vec/I*Vec/F*Vec types below are the batch
// fast path for a homogeneous slice of one scalar type: each round-trips
// through a single EncodeVec*/DecodeVec* pair (one ByteSize-framed blob
// of raw little-endian elements) instead of Seq's per-element StructLen +
// elem_begin/end shape. Use Seq[T, PT] when elements need individual
// framing (nested records, schema evolution per element); use these when
// the element type is a fixed-size scalar and the batch blob is enough.
type BoolVec []bool

func (v BoolVec) EncodeTo(e codec.Encoder) error { return e.EncodeVecBool(v) }
func (v *BoolVec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecBool(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type CharVec []rune

func (v CharVec) EncodeTo(e codec.Encoder) error { return e.EncodeVecChar(v) }
func (v *CharVec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecChar(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type U16Vec []uint16

func (v U16Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecU16(v) }
func (v *U16Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecU16(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type U32Vec []uint32

func (v U32Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecU32(v) }
func (v *U32Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecU32(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type U64Vec []uint64

func (v U64Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecU64(v) }
func (v *U64Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecU64(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type U128Vec []codec.Uint128

func (v U128Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecU128(v) }
func (v *U128Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecU128(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type I8Vec []int8

func (v I8Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecI8(v) }
func (v *I8Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecI8(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type I16Vec []int16

func (v I16Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecI16(v) }
func (v *I16Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecI16(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type I32Vec []int32

func (v I32Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecI32(v) }
func (v *I32Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecI32(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type I64Vec []int64

func (v I64Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecI64(v) }
func (v *I64Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecI64(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type I128Vec []codec.Int128

func (v I128Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecI128(v) }
func (v *I128Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecI128(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type F32Vec []float32

func (v F32Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecF32(v) }
func (v *F32Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecF32(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type F64Vec []float64

func (v F64Vec) EncodeTo(e codec.Encoder) error { return e.EncodeVecF64(v) }
func (v *F64Vec) DecodeFrom(d codec.Decoder) error {
	out, err := d.DecodeVecF64(-1)
	if err != nil {
		return err
	}
	*v = out
	return nil
}
