package builtin

import "github.com/varbif/varbif/codec"

// Elem is satisfied by a pointer-to-element type that can both encode and
// decode itself; Option, FixedSeq and the tuple adapters are generic over
// (T, PT) so they can be instantiated over any scalar wrapper in this
// package or any user type with the same pointer-receiver method pair,
// without per-element-type specialization.
type Elem[T any] interface {
	*T
	codec.Encode
	codec.Decode
}

// Option is the union-shaped optional value of spec.md §4.4: encoded as a
// union named "Option" with variants None=0 (unit) and Some=1 (one-field
// record). Decoding honours §4.2.2: a unit-encoded Some (payloadLen==0)
// yields Some(default); a payload-encoded Some defaults its inner field if
// the inner record's observed length is 0.
type Option[T any, PT Elem[T]] struct {
	Valid bool
	Value T
}

// Some returns a populated Option.
func Some[T any, PT Elem[T]](v T) Option[T, PT] { return Option[T, PT]{Valid: true, Value: v} }

// None returns an empty Option.
func None[T any, PT Elem[T]]() Option[T, PT] { return Option[T, PT]{} }

func (o Option[T, PT]) EncodeTo(e codec.Encoder) error {
	if !o.Valid {
		if err := e.EncodeEnumBegin(0, 0, "Option", "None"); err != nil {
			return err
		}
		return e.EncodeEnumEnd()
	}
	if err := e.EncodeEnumBegin(1, 1, "Option", "Some"); err != nil {
		return err
	}
	if err := e.EncodeStructBegin(1, "Some"); err != nil {
		return err
	}
	// index 0, not 1: spec.md §9 flags the source's elem_begin(1) here as
	// a latent bug (harmless on the binary wire, wrong for a labelled
	// encoder); fixed per the REDESIGN FLAG rather than reproduced.
	if err := e.EncodeElemBegin(0, "0"); err != nil {
		return err
	}
	v := o.Value
	if err := PT(&v).EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeElemEnd(); err != nil {
		return err
	}
	if err := e.EncodeStructEnd(); err != nil {
		return err
	}
	return e.EncodeEnumEnd()
}

func (o *Option[T, PT]) DecodeFrom(d codec.Decoder) error {
	tag, payloadLen, err := d.DecodeEnumBegin("Option")
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		o.Valid = false
		var zero T
		o.Value = zero
		if payloadLen == 1 {
			l, err := d.DecodeStructBegin(0, "None")
			if err != nil {
				return err
			}
			if err := d.DecodeSkip(l); err != nil {
				return err
			}
			if err := d.DecodeStructEnd(); err != nil {
				return err
			}
		}
	case 1:
		o.Valid = true
		switch payloadLen {
		case 0:
			var zero T
			o.Value = zero
		case 1:
			l, err := d.DecodeStructBegin(1, "Some")
			if err != nil {
				return err
			}
			var v T
			if l > 0 {
				if err := d.DecodeElemBegin(0, "0"); err != nil {
					return err
				}
				if err := PT(&v).DecodeFrom(d); err != nil {
					return err
				}
				if err := d.DecodeElemEnd(); err != nil {
					return err
				}
			}
			o.Value = v
			if l > 1 {
				if err := d.DecodeSkip(l - 1); err != nil {
					return err
				}
			}
			if err := d.DecodeStructEnd(); err != nil {
				return err
			}
		}
	default:
		return codec.TagError("Option", tag)
	}
	return d.DecodeEnumEnd()
}
