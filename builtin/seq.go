package builtin

import "github.com/varbif/varbif/codec"

// Seq is a dynamic array of T, per spec.md §4.4: a StructLen-framed
// sequence of observed length N, N encoded elements, then seq_end.
type Seq[T any, PT Elem[T]] []T

func (s Seq[T, PT]) EncodeTo(e codec.Encoder) error {
	if err := e.EncodeSeqBegin(len(s)); err != nil {
		return err
	}
	for i := range s {
		if err := e.EncodeElemBegin(i, ""); err != nil {
			return err
		}
		v := s[i]
		if err := PT(&v).EncodeTo(e); err != nil {
			return err
		}
		if err := e.EncodeElemEnd(); err != nil {
			return err
		}
	}
	return e.EncodeSeqEnd()
}

func (s *Seq[T, PT]) DecodeFrom(d codec.Decoder) error {
	n, err := d.DecodeSeqBegin()
	if err != nil {
		return err
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		if err := d.DecodeElemBegin(i, ""); err != nil {
			return err
		}
		if err := PT(&out[i]).DecodeFrom(d); err != nil {
			return err
		}
		if err := d.DecodeElemEnd(); err != nil {
			return err
		}
	}
	*s = out
	return d.DecodeSeqEnd()
}

// FixedSeq is a fixed-size array of T, size N: encoded exactly like Seq,
// but Decode checks the observed length against the declared N and
// returns codec.LengthError on mismatch instead of the source's
// panic/assertion (spec.md §4.4, resolved per DESIGN.md Open Question 2
// in favor of a recoverable error).
type FixedSeq[T any, PT Elem[T]] struct {
	N int
	V []T
}

func (s FixedSeq[T, PT]) EncodeTo(e codec.Encoder) error {
	return Seq[T, PT](s.V).EncodeTo(e)
}

func (s *FixedSeq[T, PT]) DecodeFrom(d codec.Decoder) error {
	var seq Seq[T, PT]
	if err := seq.DecodeFrom(d); err != nil {
		return err
	}
	if len(seq) != s.N {
		return codec.LengthError("FixedSeq", s.N, len(seq))
	}
	s.V = []T(seq)
	return nil
}
