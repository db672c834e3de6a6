package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbif/varbif/builtin"
	"github.com/varbif/varbif/codec"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/wire"
)

func roundTrip(t *testing.T, enc codec.Encode, dec codec.Decode) {
	t.Helper()
	w := transport.NewBytesWriter()
	require.NoError(t, enc.EncodeTo(wire.NewEncoder(w)))
	require.NoError(t, dec.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes()))))
}

func TestOptionNone(t *testing.T) {
	var got builtin.Option[builtin.U32, *builtin.U32]
	roundTrip(t, builtin.None[builtin.U32, *builtin.U32](), &got)
	assert.False(t, got.Valid)
}

func TestOptionSome(t *testing.T) {
	want := builtin.Some[builtin.U32, *builtin.U32](7)
	var got builtin.Option[builtin.U32, *builtin.U32]
	roundTrip(t, want, &got)
	require.True(t, got.Valid)
	assert.Equal(t, builtin.U32(7), got.Value)
}

// Scenario 6 (spec.md §8): Option<u32> None writes Value(0) == 0x00;
// Some(7) writes EnumTag(1) followed by a one-field record containing
// Value(7).
func TestOptionWireBytes(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.None[builtin.U32, *builtin.U32]().EncodeTo(wire.NewEncoder(w)))
	assert.Equal(t, []byte{0x00}, w.Bytes())

	w2 := transport.NewBytesWriter()
	require.NoError(t, builtin.Some[builtin.U32, *builtin.U32](7).EncodeTo(wire.NewEncoder(w2)))
	assert.Equal(t, []byte{0x61, 0xC0, 0x07}, w2.Bytes())
}

func TestByteVec(t *testing.T) {
	want := builtin.ByteVec("hello,world!")
	var got builtin.ByteVec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestFixedBytesMismatch(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.ByteVec("abc").EncodeTo(wire.NewEncoder(w)))

	var got builtin.FixedBytes
	got.N = 4
	err := got.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes())))
	require.Error(t, err)
	var cErr *codec.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, codec.KindLength, cErr.Kind)
}

func TestFixedBytesMatch(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.ByteVec("abcd").EncodeTo(wire.NewEncoder(w)))

	var got builtin.FixedBytes
	got.N = 4
	require.NoError(t, got.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes()))))
	assert.Equal(t, []byte("abcd"), got.B)
}

func TestSeq(t *testing.T) {
	want := builtin.Seq[builtin.U16, *builtin.U16]{1, 2, 3}
	var got builtin.Seq[builtin.U16, *builtin.U16]
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestFixedSeqMismatch(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.Seq[builtin.U8, *builtin.U8]{1, 2}.EncodeTo(wire.NewEncoder(w)))

	var got builtin.FixedSeq[builtin.U8, *builtin.U8]
	got.N = 3
	err := got.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes())))
	require.Error(t, err)
	var cErr *codec.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, codec.KindLength, cErr.Kind)
}

func TestTuple0(t *testing.T) {
	var got builtin.Tuple0
	roundTrip(t, builtin.Tuple0{}, &got)
}

func TestTuple1(t *testing.T) {
	want := builtin.Tuple1[builtin.String, *builtin.String]{F0: "x"}
	var got builtin.Tuple1[builtin.String, *builtin.String]
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestTuple2(t *testing.T) {
	want := builtin.Tuple2[builtin.U32, *builtin.U32, builtin.Bool, *builtin.Bool]{F0: 9, F1: true}
	var got builtin.Tuple2[builtin.U32, *builtin.U32, builtin.Bool, *builtin.Bool]
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

// Tuple2 decoded from a 1-field record (forward-compat §4.2.1): the
// second field defaults to zero, matching the declared-vs-observed rule.
func TestTuple2ForwardCompat(t *testing.T) {
	want := builtin.Tuple1[builtin.U32, *builtin.U32]{F0: 9}
	w := transport.NewBytesWriter()
	require.NoError(t, want.EncodeTo(wire.NewEncoder(w)))

	var got builtin.Tuple2[builtin.U32, *builtin.U32, builtin.Bool, *builtin.Bool]
	require.NoError(t, got.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes()))))
	assert.Equal(t, builtin.U32(9), got.F0)
	assert.Equal(t, builtin.Bool(false), got.F1)
}

func TestU32VecRoundTrip(t *testing.T) {
	want := builtin.U32Vec{1, 2, 3, 4294967295}
	var got builtin.U32Vec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestI32VecRoundTrip(t *testing.T) {
	want := builtin.I32Vec{-1, 0, 1, -2147483648}
	var got builtin.I32Vec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestF64VecRoundTrip(t *testing.T) {
	want := builtin.F64Vec{0, 1.5, -123e5}
	var got builtin.F64Vec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestBoolVecRoundTrip(t *testing.T) {
	want := builtin.BoolVec{true, false, true}
	var got builtin.BoolVec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

func TestCharVecRoundTrip(t *testing.T) {
	want := builtin.CharVec{'a', 'b', 'Д'}
	var got builtin.CharVec
	roundTrip(t, want, &got)
	assert.Equal(t, want, got)
}

// U32Vec packs 2 elements into a single ByteSize(8) blob, the batch
// fast path's distinguishing shape versus Seq's StructLen + per-element
// frames.
func TestU32VecWireShape(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.U32Vec{1, 2}.EncodeTo(wire.NewEncoder(w)))
	assert.Equal(t, []byte{0x87, 1, 0, 0, 0, 2, 0, 0, 0}, w.Bytes())
}

// A vec blob whose size isn't a multiple of the element size is rejected
// with codec.KindLength rather than silently truncated.
func TestU32VecSizeNotMultipleOfElemSize(t *testing.T) {
	w := transport.NewBytesWriter()
	require.NoError(t, builtin.ByteVec{1, 2, 3}.EncodeTo(wire.NewEncoder(w)))

	var got builtin.U32Vec
	err := got.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes())))
	require.Error(t, err)
	var cErr *codec.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, codec.KindLength, cErr.Kind)
}
