// Package codec defines the generic encode/decode protocol: an abstract
// encoder and decoder interface expressed as nested begin/end events over
// typed scalars, plus the schema-evolution rules for records and unions.
// It has no I/O of its own; package wire supplies the concrete realization
// over a VarFrame stream and a transport.
package codec

// Encoder is the abstract protocol surface a value writes itself through.
// Implementations translate each call into 0-N wire productions; see
// package wire for the VarFrame-backed realization.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeChar(v rune) error
	EncodeU8(v uint8) error
	EncodeU16(v uint16) error
	EncodeU32(v uint32) error
	EncodeU64(v uint64) error
	EncodeU128(v Uint128) error
	EncodeI8(v int8) error
	EncodeI16(v int16) error
	EncodeI32(v int32) error
	EncodeI64(v int64) error
	EncodeI128(v Int128) error
	EncodeF32(v float32) error
	EncodeF64(v float64) error

	EncodeBinary(v []byte) error
	EncodeString(v string) error

	EncodeSeqBegin(length int) error
	EncodeSeqEnd() error

	EncodeStructBegin(declaredLen int, name string) error
	EncodeStructEnd() error

	// EncodeEnumBegin announces a union discriminant. payloadLen is 0 for
	// a unit variant (Value(tag)) or 1 for a payload variant (EnumTag(tag)
	// followed by one inner record).
	EncodeEnumBegin(tag uint32, payloadLen int, enumName, variantName string) error
	EncodeEnumEnd() error

	// EncodeElemBegin/End are semantic hooks around one element of a
	// sequence, record, or union payload; the wire encoder implements
	// them as no-ops, but every caller must still emit them so an
	// alternative (e.g. debug/text) encoder can inject separators.
	EncodeElemBegin(index int, name string) error
	EncodeElemEnd() error

	EncodeBytesBegin(size int) error
	EncodeBytesPayload(p []byte) error
	EncodeBytesEnd() error

	// EncodeUint writes bytes (a little-endian integer) as a single
	// Value frame; it is the building block every scalar writer above
	// reduces to.
	EncodeUint(bytes []byte) error

	// EncodeVec* batch-write a slice of T as a single ByteSize-framed blob
	// of len(values)*sizeof(T) bytes, each element packed as a raw
	// little-endian production: no zigzag for the signed variants, no
	// big-endian for the floats. This is a distinct wire production from
	// both the per-scalar Encode* writers above and the elem_begin/end
	// Seq path (EncodeSeqBegin/End) — rustbif's encode_vec_<T> batch path
	// for a homogeneous slice, not a reduction of either.
	EncodeVecBool(values []bool) error
	EncodeVecChar(values []rune) error
	EncodeVecU8(values []uint8) error
	EncodeVecU16(values []uint16) error
	EncodeVecU32(values []uint32) error
	EncodeVecU64(values []uint64) error
	EncodeVecU128(values []Uint128) error
	EncodeVecI8(values []int8) error
	EncodeVecI16(values []int16) error
	EncodeVecI32(values []int32) error
	EncodeVecI64(values []int64) error
	EncodeVecI128(values []Int128) error
	EncodeVecF32(values []float32) error
	EncodeVecF64(values []float64) error
}

// Decoder mirrors Encoder, returning observed counts where the stream may
// diverge from the consumer's declared shape.
type Decoder interface {
	DecodeBool() (bool, error)
	DecodeChar() (rune, error)
	DecodeU8() (uint8, error)
	DecodeU16() (uint16, error)
	DecodeU32() (uint32, error)
	DecodeU64() (uint64, error)
	DecodeU128() (Uint128, error)
	DecodeI8() (int8, error)
	DecodeI16() (int16, error)
	DecodeI32() (int32, error)
	DecodeI64() (int64, error)
	DecodeI128() (Int128, error)
	DecodeF32() (float32, error)
	DecodeF64() (float64, error)

	DecodeBinary(size int) ([]byte, error)
	DecodeString() (string, error)

	// DecodeSeqBegin returns the observed length, ignoring any size hint.
	DecodeSeqBegin() (int, error)
	DecodeSeqEnd() error

	// DecodeStructBegin returns the observed field count L, not the
	// declared one D the caller passes.
	DecodeStructBegin(declaredLen int, name string) (int, error)
	DecodeStructEnd() error

	// DecodeEnumBegin returns (tag, payloadLen) with payloadLen in {0,1}.
	DecodeEnumBegin(enumName string) (tag uint32, payloadLen int, err error)
	DecodeEnumEnd() error

	DecodeElemBegin(index int, name string) error
	DecodeElemEnd() error

	// DecodeBytesBegin returns the observed blob size, ignoring any size hint.
	DecodeBytesBegin() (int, error)
	DecodeBytesPayload(buf []byte) (int, error)
	DecodeBytesEnd() error

	DecodeUint(buf []byte) (int, error)

	// DecodeVec* read a ByteSize-framed blob of raw little-endian elements
	// produced by the matching Encoder.EncodeVec* method: no zigzag, no
	// big-endian floats. The wire decoder ignores lenHint and always sizes
	// the returned slice from the observed blob length. The blob's length
	// must be an exact multiple of sizeof(T); otherwise a codec.KindLength
	// error is returned.
	DecodeVecBool(lenHint int) ([]bool, error)
	DecodeVecChar(lenHint int) ([]rune, error)
	DecodeVecU8(lenHint int) ([]uint8, error)
	DecodeVecU16(lenHint int) ([]uint16, error)
	DecodeVecU32(lenHint int) ([]uint32, error)
	DecodeVecU64(lenHint int) ([]uint64, error)
	DecodeVecU128(lenHint int) ([]Uint128, error)
	DecodeVecI8(lenHint int) ([]int8, error)
	DecodeVecI16(lenHint int) ([]int16, error)
	DecodeVecI32(lenHint int) ([]int32, error)
	DecodeVecI64(lenHint int) ([]int64, error)
	DecodeVecI128(lenHint int) ([]Int128, error)
	DecodeVecF32(lenHint int) ([]float32, error)
	DecodeVecF64(lenHint int) ([]float64, error)

	// DecodeSkip walks n elements of unknown shape, per the iterative
	// widening rule: an EnumTag queues one more element (its inline
	// payload record) and a StructLen queues its declared element count.
	DecodeSkip(n int) error
}

// Encode is implemented by any type (user-defined or built-in) that knows
// how to write itself through an Encoder.
type Encode interface {
	EncodeTo(e Encoder) error
}

// Decode is implemented by any type that knows how to read itself from a
// Decoder. It is a pointer-receiver method, filling in *v, matching Go's
// encoding.BinaryUnmarshaler idiom rather than Rust's associated-function
// `T::decode`.
type Decode interface {
	DecodeFrom(d Decoder) error
}

// Variant is implemented by every concrete struct representing one arm of
// a union. Go has no tagged-union type, so a closed, explicitly registered
// set of Variant implementations is the idiomatic substitute for Rust's
// `enum` with `#[derive]` — the same pattern protobuf-go uses for oneof
// wrappers.
type Variant interface {
	VariantTag() uint32
}

// VariantInfo describes one arm of a union: its tag, name, and a
// zero-value constructor used when decoding a unit-encoded (payloadLen==0)
// occurrence of that variant.
type VariantInfo struct {
	Tag     uint32
	Name    string
	New     func() Variant
	Fields  int
	Decoded func(d Decoder, fields int) (Variant, error)
	Write   func(e Encoder, v Variant) error
}

// UnionSpec is an ordered list of a union's variants for hand-written
// union types. Package derive does not use it: derive.Union keeps its own
// ordered list of derive.Case values.
type UnionSpec struct {
	Name     string
	Variants []VariantInfo
}

// ByTag finds the variant with the given discriminant, if any.
func (s UnionSpec) ByTag(tag uint32) (VariantInfo, bool) {
	for _, v := range s.Variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return VariantInfo{}, false
}
