package builtin

import "github.com/varbif/varbif/codec"

// Tuple0 is the empty record (spec.md §4.4 "Tuple arity 0: empty record").
type Tuple0 struct{}

func (Tuple0) EncodeTo(e codec.Encoder) error {
	if err := e.EncodeStructBegin(0, "Tuple0"); err != nil {
		return err
	}
	return e.EncodeStructEnd()
}

func (v *Tuple0) DecodeFrom(d codec.Decoder) error {
	l, err := d.DecodeStructBegin(0, "Tuple0")
	if err != nil {
		return err
	}
	if l > 0 {
		if err := d.DecodeSkip(l); err != nil {
			return err
		}
	}
	return d.DecodeStructEnd()
}

// Tuple1 is a one-field record (spec.md §4.4 "Arities 1 and 2: record of
// that arity"); evolution against the stream's observed length follows
// §4.2.1 exactly as a derived one-field struct would.
type Tuple1[T0 any, PT0 Elem[T0]] struct {
	F0 T0
}

func (v Tuple1[T0, PT0]) EncodeTo(e codec.Encoder) error {
	if err := e.EncodeStructBegin(1, "Tuple1"); err != nil {
		return err
	}
	if err := e.EncodeElemBegin(0, "0"); err != nil {
		return err
	}
	f0 := v.F0
	if err := PT0(&f0).EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeElemEnd(); err != nil {
		return err
	}
	return e.EncodeStructEnd()
}

func (v *Tuple1[T0, PT0]) DecodeFrom(d codec.Decoder) error {
	l, err := d.DecodeStructBegin(1, "Tuple1")
	if err != nil {
		return err
	}
	if l > 0 {
		if err := d.DecodeElemBegin(0, "0"); err != nil {
			return err
		}
		if err := PT0(&v.F0).DecodeFrom(d); err != nil {
			return err
		}
		if err := d.DecodeElemEnd(); err != nil {
			return err
		}
	} else {
		var zero T0
		v.F0 = zero
	}
	if l > 1 {
		if err := d.DecodeSkip(l - 1); err != nil {
			return err
		}
	}
	return d.DecodeStructEnd()
}

// Tuple2 is a two-field record.
type Tuple2[T0 any, PT0 Elem[T0], T1 any, PT1 Elem[T1]] struct {
	F0 T0
	F1 T1
}

func (v Tuple2[T0, PT0, T1, PT1]) EncodeTo(e codec.Encoder) error {
	if err := e.EncodeStructBegin(2, "Tuple2"); err != nil {
		return err
	}
	if err := e.EncodeElemBegin(0, "0"); err != nil {
		return err
	}
	f0 := v.F0
	if err := PT0(&f0).EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeElemEnd(); err != nil {
		return err
	}
	if err := e.EncodeElemBegin(1, "1"); err != nil {
		return err
	}
	f1 := v.F1
	if err := PT1(&f1).EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeElemEnd(); err != nil {
		return err
	}
	return e.EncodeStructEnd()
}

func (v *Tuple2[T0, PT0, T1, PT1]) DecodeFrom(d codec.Decoder) error {
	l, err := d.DecodeStructBegin(2, "Tuple2")
	if err != nil {
		return err
	}
	if l > 0 {
		if err := d.DecodeElemBegin(0, "0"); err != nil {
			return err
		}
		if err := PT0(&v.F0).DecodeFrom(d); err != nil {
			return err
		}
		if err := d.DecodeElemEnd(); err != nil {
			return err
		}
	} else {
		var zero T0
		v.F0 = zero
	}
	if l > 1 {
		if err := d.DecodeElemBegin(1, "1"); err != nil {
			return err
		}
		if err := PT1(&v.F1).DecodeFrom(d); err != nil {
			return err
		}
		if err := d.DecodeElemEnd(); err != nil {
			return err
		}
	} else {
		var zero T1
		v.F1 = zero
	}
	if l > 2 {
		if err := d.DecodeSkip(l - 2); err != nil {
			return err
		}
	}
	return d.DecodeStructEnd()
}
