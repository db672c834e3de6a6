// Package builtin implements codec.Encode/codec.Decode for the common
// parametric shapes spec.md §4.4 names: optional value, dynamic array,
// fixed-size array, tuple of arity 0/1/2, owned byte vector, fixed-size
// byte array, and direct scalar delegation. A boxed/owning pointer of T
// needs no wrapper type here: a plain *T already delegates directly to
// T's codec, per §4.4's "Boxed/owning pointer... delegates directly".
package builtin

import "github.com/varbif/varbif/codec"

// Bool, Char and the fixed-width integer/float wrappers give a value type
// that directly implements codec.Encode/codec.Decode, so generic adapters
// such as Option[T] and FixedSeq[T] can be instantiated over a primitive
// scalar exactly as cerdito.rs's impl_encode!/impl_decode! macros do for
// every built-in Rust scalar.
type (
	Bool   bool
	Char   rune
	U8     uint8
	U16    uint16
	U32    uint32
	U64    uint64
	I8     int8
	I16    int16
	I32    int32
	I64    int64
	F32    float32
	F64    float64
	String string
)

func (v *Bool) EncodeTo(e codec.Encoder) error { return e.EncodeBool(bool(*v)) }
func (v *Bool) DecodeFrom(d codec.Decoder) error {
	b, err := d.DecodeBool()
	*v = Bool(b)
	return err
}

func (v *Char) EncodeTo(e codec.Encoder) error { return e.EncodeChar(rune(*v)) }
func (v *Char) DecodeFrom(d codec.Decoder) error {
	c, err := d.DecodeChar()
	*v = Char(c)
	return err
}

func (v *U8) EncodeTo(e codec.Encoder) error { return e.EncodeU8(uint8(*v)) }
func (v *U8) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeU8()
	*v = U8(x)
	return err
}

func (v *U16) EncodeTo(e codec.Encoder) error { return e.EncodeU16(uint16(*v)) }
func (v *U16) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeU16()
	*v = U16(x)
	return err
}

func (v *U32) EncodeTo(e codec.Encoder) error { return e.EncodeU32(uint32(*v)) }
func (v *U32) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeU32()
	*v = U32(x)
	return err
}

func (v *U64) EncodeTo(e codec.Encoder) error { return e.EncodeU64(uint64(*v)) }
func (v *U64) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeU64()
	*v = U64(x)
	return err
}

func (v *I8) EncodeTo(e codec.Encoder) error { return e.EncodeI8(int8(*v)) }
func (v *I8) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeI8()
	*v = I8(x)
	return err
}

func (v *I16) EncodeTo(e codec.Encoder) error { return e.EncodeI16(int16(*v)) }
func (v *I16) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeI16()
	*v = I16(x)
	return err
}

func (v *I32) EncodeTo(e codec.Encoder) error { return e.EncodeI32(int32(*v)) }
func (v *I32) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeI32()
	*v = I32(x)
	return err
}

func (v *I64) EncodeTo(e codec.Encoder) error { return e.EncodeI64(int64(*v)) }
func (v *I64) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeI64()
	*v = I64(x)
	return err
}

func (v *F32) EncodeTo(e codec.Encoder) error { return e.EncodeF32(float32(*v)) }
func (v *F32) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeF32()
	*v = F32(x)
	return err
}

func (v *F64) EncodeTo(e codec.Encoder) error { return e.EncodeF64(float64(*v)) }
func (v *F64) DecodeFrom(d codec.Decoder) error {
	x, err := d.DecodeF64()
	*v = F64(x)
	return err
}

func (v *String) EncodeTo(e codec.Encoder) error { return e.EncodeString(string(*v)) }
func (v *String) DecodeFrom(d codec.Decoder) error {
	s, err := d.DecodeString()
	*v = String(s)
	return err
}
