package wire

import (
	"unicode/utf8"
	"unsafe"

	"github.com/varbif/varbif/codec"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/varframe"
)

// Decoder reads protocol events as VarFrame consumptions from a
// transport.Reader.
type Decoder struct {
	r transport.Reader
}

var _ codec.Decoder = (*Decoder)(nil)

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r transport.Reader) *Decoder {
	return &Decoder{r: r}
}

// readFrame reads one Frame from d.r. transport.Reader and io.Reader share
// the same method signature, so d.r can be passed directly to
// varframe.ReadFrom.
func (d *Decoder) readFrame() (varframe.Frame, error) {
	f, _, err := varframe.ReadFrom(d.r)
	if err != nil {
		return varframe.Frame{}, codec.TransportError(err)
	}
	return f, nil
}

// DecodeUint reads one Value (or Zero) frame into buf, zero-filling on Zero.
func (d *Decoder) DecodeUint(buf []byte) (int, error) {
	f, err := d.readFrame()
	if err != nil {
		return 0, err
	}
	switch f.Kind() {
	case varframe.KindZero:
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	case varframe.KindValue:
		v, _ := f.AsValue()
		copy(buf, v[:len(buf)])
		return len(buf), nil
	default:
		return 0, codec.FrameError("Value", f.Kind().String())
	}
}

func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeU8()
	return v != 0, err
}

func (d *Decoder) DecodeChar() (rune, error) {
	v, err := d.DecodeU32()
	return rune(v), err
}

func (d *Decoder) DecodeU8() (uint8, error) {
	var b [1]byte
	_, err := d.DecodeUint(b[:])
	return b[0], err
}

func (d *Decoder) DecodeU16() (uint16, error) {
	var b [2]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return 0, err
	}
	return binary16LE(b[:]), nil
}

func (d *Decoder) DecodeU32() (uint32, error) {
	var b [4]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return 0, err
	}
	return binary32LE(b[:]), nil
}

func (d *Decoder) DecodeU64() (uint64, error) {
	var b [8]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return 0, err
	}
	return binary64LE(b[:]), nil
}

func (d *Decoder) DecodeU128() (codec.Uint128, error) {
	var b [16]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return codec.Uint128{}, err
	}
	return codec.Uint128FromLE(b[:]), nil
}

func (d *Decoder) DecodeI8() (int8, error) {
	v, err := d.DecodeU8()
	return zigzagDecode8(v), err
}

func (d *Decoder) DecodeI16() (int16, error) {
	v, err := d.DecodeU16()
	return zigzagDecode16(v), err
}

func (d *Decoder) DecodeI32() (int32, error) {
	v, err := d.DecodeU32()
	return zigzagDecode32(v), err
}

func (d *Decoder) DecodeI64() (int64, error) {
	v, err := d.DecodeU64()
	return zigzagDecode64(v), err
}

func (d *Decoder) DecodeI128() (codec.Int128, error) {
	v, err := d.DecodeU128()
	return zigzagDecode128(v), err
}

func (d *Decoder) DecodeF32() (float32, error) {
	var b [4]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return 0, err
	}
	return float32BE(b[:]), nil
}

func (d *Decoder) DecodeF64() (float64, error) {
	var b [8]byte
	if _, err := d.DecodeUint(b[:]); err != nil {
		return 0, err
	}
	return float64BE(b[:]), nil
}

func (d *Decoder) DecodeBytesBegin() (int, error) {
	f, err := d.readFrame()
	if err != nil {
		return 0, err
	}
	switch f.Kind() {
	case varframe.KindZero:
		return 0, nil
	case varframe.KindByteSize:
		n, _ := f.AsByteSize()
		return int(n), nil
	default:
		return 0, codec.FrameError("ByteSize", f.Kind().String())
	}
}

func (d *Decoder) DecodeBytesPayload(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := d.r.Read(buf)
	if err != nil {
		return n, codec.TransportError(err)
	}
	return n, nil
}

func (d *Decoder) DecodeBytesEnd() error { return nil }

// DecodeBinary reads a length-prefixed byte blob. size is accepted for
// symmetry with EncodeBytesBegin's hint but is not enforced here; callers
// that declare a fixed size (e.g. builtin.FixedBytes) check the observed
// length themselves and report codec.LengthError.
func (d *Decoder) DecodeBinary(size int) ([]byte, error) {
	_ = size
	n, err := d.DecodeBytesBegin()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := d.DecodeBytesPayload(buf); err != nil {
		return nil, err
	}
	if err := d.DecodeBytesEnd(); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeString reads a byte blob and validates it as UTF-8, returning a
// string that aliases the blob's backing array (no copy), matching the
// teacher's zero-copy ReadString.
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeBinary(-1)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", codec.UTF8Error()
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

func (d *Decoder) DecodeSeqBegin() (int, error) {
	f, err := d.readFrame()
	if err != nil {
		return 0, err
	}
	switch f.Kind() {
	case varframe.KindZero:
		return 0, nil
	case varframe.KindStructLen:
		n, _ := f.AsStructLen()
		return int(n), nil
	default:
		return 0, codec.FrameError("StructLen", f.Kind().String())
	}
}

func (d *Decoder) DecodeSeqEnd() error { return nil }

func (d *Decoder) DecodeStructBegin(_ int, _ string) (int, error) {
	f, err := d.readFrame()
	if err != nil {
		return 0, err
	}
	switch f.Kind() {
	case varframe.KindZero:
		return 0, nil
	case varframe.KindStructLen:
		n, _ := f.AsStructLen()
		return int(n), nil
	default:
		return 0, codec.FrameError("StructLen", f.Kind().String())
	}
}

func (d *Decoder) DecodeStructEnd() error { return nil }

func (d *Decoder) DecodeEnumBegin(_ string) (uint32, int, error) {
	f, err := d.readFrame()
	if err != nil {
		return 0, 0, err
	}
	switch f.Kind() {
	case varframe.KindZero:
		return 0, 0, nil
	case varframe.KindEnumTag:
		tag, _ := f.AsEnumTag()
		return tag, 1, nil
	case varframe.KindValue:
		v, _ := f.AsValue()
		return binary32LE(v[:4]), 0, nil
	default:
		return 0, 0, codec.FrameError("Value or EnumTag", f.Kind().String())
	}
}

func (d *Decoder) DecodeEnumEnd() error { return nil }

func (d *Decoder) DecodeElemBegin(_ int, _ string) error { return nil }
func (d *Decoder) DecodeElemEnd() error                  { return nil }

// decodeVecBegin reads the ByteSize frame opening an EncodeVec* blob and
// returns both the observed element count and the raw payload bytes. It
// rejects a blob whose length isn't an exact multiple of elemSize, the
// same check rustbif's fn_decode_vec! panics on.
func (d *Decoder) decodeVecBegin(elemSize int) (n int, payload []byte, err error) {
	size, err := d.DecodeBytesBegin()
	if err != nil {
		return 0, nil, err
	}
	if size%elemSize != 0 {
		return 0, nil, codec.LengthError("vec blob size not a multiple of element size", elemSize, size%elemSize)
	}
	buf := make([]byte, size)
	if _, err := d.DecodeBytesPayload(buf); err != nil {
		return 0, nil, err
	}
	if err := d.DecodeBytesEnd(); err != nil {
		return 0, nil, err
	}
	return size / elemSize, buf, nil
}

func (d *Decoder) DecodeVecBool(lenHint int) ([]bool, error) {
	n, buf, err := d.decodeVecBegin(1)
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = buf[i] != 0
	}
	return out, nil
}

func (d *Decoder) DecodeVecChar(lenHint int) ([]rune, error) {
	n, buf, err := d.decodeVecBegin(4)
	if err != nil {
		return nil, err
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(binary32LE(buf[i*4 : i*4+4]))
	}
	return out, nil
}

// DecodeVecU8 delegates to DecodeBinary, matching EncodeVecU8.
func (d *Decoder) DecodeVecU8(lenHint int) ([]uint8, error) { return d.DecodeBinary(lenHint) }

func (d *Decoder) DecodeVecU16(lenHint int) ([]uint16, error) {
	n, buf, err := d.decodeVecBegin(2)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary16LE(buf[i*2 : i*2+2])
	}
	return out, nil
}

func (d *Decoder) DecodeVecU32(lenHint int) ([]uint32, error) {
	n, buf, err := d.decodeVecBegin(4)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary32LE(buf[i*4 : i*4+4])
	}
	return out, nil
}

func (d *Decoder) DecodeVecU64(lenHint int) ([]uint64, error) {
	n, buf, err := d.decodeVecBegin(8)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary64LE(buf[i*8 : i*8+8])
	}
	return out, nil
}

func (d *Decoder) DecodeVecU128(lenHint int) ([]codec.Uint128, error) {
	n, buf, err := d.decodeVecBegin(16)
	if err != nil {
		return nil, err
	}
	out := make([]codec.Uint128, n)
	for i := range out {
		out[i] = codec.Uint128FromLE(buf[i*16 : i*16+16])
	}
	return out, nil
}

// DecodeVecI8..I128 read raw two's-complement little-endian bytes, NOT
// zigzag: see EncodeVecI8's doc comment for the asymmetry with
// DecodeI8..I128.
func (d *Decoder) DecodeVecI8(lenHint int) ([]int8, error) {
	n, buf, err := d.decodeVecBegin(1)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(buf[i])
	}
	return out, nil
}

func (d *Decoder) DecodeVecI16(lenHint int) ([]int16, error) {
	n, buf, err := d.decodeVecBegin(2)
	if err != nil {
		return nil, err
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary16LE(buf[i*2 : i*2+2]))
	}
	return out, nil
}

func (d *Decoder) DecodeVecI32(lenHint int) ([]int32, error) {
	n, buf, err := d.decodeVecBegin(4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary32LE(buf[i*4 : i*4+4]))
	}
	return out, nil
}

func (d *Decoder) DecodeVecI64(lenHint int) ([]int64, error) {
	n, buf, err := d.decodeVecBegin(8)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(binary64LE(buf[i*8 : i*8+8]))
	}
	return out, nil
}

func (d *Decoder) DecodeVecI128(lenHint int) ([]codec.Int128, error) {
	n, buf, err := d.decodeVecBegin(16)
	if err != nil {
		return nil, err
	}
	out := make([]codec.Int128, n)
	for i := range out {
		out[i] = codec.Int128FromLE(buf[i*16 : i*16+16])
	}
	return out, nil
}

// DecodeVecF32/F64 read IEEE-754 bits little-endian: see putFloat32LE's
// doc comment for the asymmetry with the big-endian DecodeF32/F64.
func (d *Decoder) DecodeVecF32(lenHint int) ([]float32, error) {
	n, buf, err := d.decodeVecBegin(4)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32LE(buf[i*4 : i*4+4])
	}
	return out, nil
}

func (d *Decoder) DecodeVecF64(lenHint int) ([]float64, error) {
	n, buf, err := d.decodeVecBegin(8)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64LE(buf[i*8 : i*8+8])
	}
	return out, nil
}

func binary16LE(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func binary32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func binary64LE(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
