package builtin

import "github.com/varbif/varbif/codec"

// ByteVec is an owned byte vector encoded as a raw byte blob, per spec.md
// §4.4 ("ByteVec: raw byte blob via encode_binary").
type ByteVec []byte

func (v ByteVec) EncodeTo(e codec.Encoder) error { return e.EncodeBinary(v) }

func (v *ByteVec) DecodeFrom(d codec.Decoder) error {
	b, err := d.DecodeBinary(-1)
	if err != nil {
		return err
	}
	*v = ByteVec(b)
	return nil
}

// FixedBytes is a declared-size byte blob, Go's runtime-field substitute
// for Rust's const-generic ByteArr<const N: usize> (spec.md §4.4, §9):
// there is no Go equivalent of a const-generic array length, so N is
// carried as a struct field and checked against the observed size at
// Decode time, returning codec.LengthError on any mismatch (§4.4's "any
// mismatch is fatal").
type FixedBytes struct {
	N int
	B []byte
}

func (v FixedBytes) EncodeTo(e codec.Encoder) error { return e.EncodeBinary(v.B) }

func (v *FixedBytes) DecodeFrom(d codec.Decoder) error {
	b, err := d.DecodeBinary(v.N)
	if err != nil {
		return err
	}
	if len(b) != v.N {
		return codec.LengthError("FixedBytes", v.N, len(b))
	}
	v.B = b
	return nil
}
