// Package derive is the runtime derivation facility: given a user record
// or union type, it builds (and caches) the Encode/Decode routines spec.md
// §4.5 describes, implementing the schema-evolution rules of §4.2 without
// a compile-time code generator. cerdito-derive/lib.rs drives the same
// logic from a Rust proc-macro expanding at compile time; Go has no
// equivalent macro facility available in the retrieval pack, so package
// derive reaches the same contract via reflect at registration time
// instead (the same substitution encoding/gob makes for Go's lack of a
// derive-macro system).
package derive

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/varbif/varbif/codec"
)

// NoDefaulter is implemented by a field type that opts out of the "every
// Go zero value is a meaningful default" assumption spec.md §4.4/§7/§9
// requires for the "new program, old data" evolution rule. Registering a
// struct with such a field fails at Struct() time rather than at decode
// time (NewUnion does not inspect its cases' field types), matching the source's compile-time rejection as closely as
// Go's type system allows (see DESIGN.md Open Question 4).
type NoDefaulter interface {
	NoDefault()
}

var noDefaulterType = reflect.TypeOf((*NoDefaulter)(nil)).Elem()

func checkDefaultable(t reflect.Type) error {
	if reflect.PointerTo(t).Implements(noDefaulterType) {
		return fmt.Errorf("%s has no meaningful default value", t)
	}
	return nil
}

// fieldPlan is one field of a derived struct: its declared wire name and
// index path (reflect.Value.FieldByIndex), in declaration order.
type fieldPlan struct {
	name  string
	index []int
}

// structPlan is the reflection-driven codec for one struct type, cached
// per reflect.Type so repeated derive.Struct[T]() calls for the same T
// reuse the same plan instead of re-walking its fields -- the teacher's
// binaryreader.go/binarywriter.go pool the expensive-to-build object, not
// the bytes; here the expensive-to-build object is the reflection plan.
type structPlan struct {
	name   string
	fields []fieldPlan
}

var structCache sync.Map // reflect.Type -> *structPlan

func planForStruct(t reflect.Type) (*structPlan, error) {
	if cached, ok := structCache.Load(t); ok {
		return cached.(*structPlan), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive: %s is not a struct", t)
	}
	plan := &structPlan{name: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported: no accessor, not part of the wire shape
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("varbif"); ok && tag != "" && tag != "-" {
			name = tag
		}
		if err := checkDefaultable(f.Type); err != nil {
			return nil, fmt.Errorf("derive: field %s.%s: %w", t.Name(), f.Name, err)
		}
		plan.fields = append(plan.fields, fieldPlan{name: name, index: f.Index})
	}
	// Two goroutines racing to derive the same type both do the (pure,
	// side-effect-free) walk above; LoadOrStore picks one winner so later
	// callers always observe a single shared plan.
	actual, _ := structCache.LoadOrStore(t, plan)
	return actual.(*structPlan), nil
}

func (p *structPlan) encode(e codec.Encoder, v reflect.Value) error {
	if err := e.EncodeStructBegin(len(p.fields), p.name); err != nil {
		return err
	}
	for i, f := range p.fields {
		if err := e.EncodeElemBegin(i, f.name); err != nil {
			return err
		}
		if err := encodeValue(e, v.FieldByIndex(f.index)); err != nil {
			return err
		}
		if err := e.EncodeElemEnd(); err != nil {
			return err
		}
	}
	return e.EncodeStructEnd()
}

func (p *structPlan) decode(d codec.Decoder, v reflect.Value) error {
	l, err := d.DecodeStructBegin(len(p.fields), p.name)
	if err != nil {
		return err
	}
	for i, f := range p.fields {
		if i >= l {
			// new program, old data: the field takes its type's zero value
			fv := v.FieldByIndex(f.index)
			fv.Set(reflect.Zero(fv.Type()))
			continue
		}
		if err := d.DecodeElemBegin(i, f.name); err != nil {
			return err
		}
		if err := decodeValue(d, v.FieldByIndex(f.index)); err != nil {
			return err
		}
		if err := d.DecodeElemEnd(); err != nil {
			return err
		}
	}
	if l > len(p.fields) {
		if err := d.DecodeSkip(l - len(p.fields)); err != nil {
			return err
		}
	}
	return d.DecodeStructEnd()
}

// Struct builds (and caches) the encode/decode pair for T by reflecting
// over its exported fields in declaration order, per spec.md §4.5(1)/(2).
// T must be a struct type.
func Struct[T any]() (*StructCodec[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	plan, err := planForStruct(t)
	if err != nil {
		return nil, err
	}
	return &StructCodec[T]{plan: plan}, nil
}

// StructCodec is the derived Encode/Decode pair for one struct type T.
type StructCodec[T any] struct {
	plan *structPlan
}

// EncodeTo writes v per §4.5(1): declared length, then each field in
// order between matching elem_begin/end events.
func (c *StructCodec[T]) EncodeTo(v *T, e codec.Encoder) error {
	return c.plan.encode(e, reflect.ValueOf(v).Elem())
}

// DecodeFrom fills *v per §4.5(2): positionally for the first
// min(observed, declared) fields, defaulting any declared fields beyond
// the observed length, and skipping any observed fields beyond the
// declared length.
func (c *StructCodec[T]) DecodeFrom(v *T, d codec.Decoder) error {
	return c.plan.decode(d, reflect.ValueOf(v).Elem())
}

var errUnsupportedKind = errors.New("derive: unsupported field kind")

// encodeValue dispatches a single field value to the Encoder by Go kind,
// recursing into nested structs (auto-deriving them too) and slices.
// Types already implementing codec.Encode take priority, so a field of a
// hand-written or builtin type (Option[T], ByteVec, ...) uses its own
// wire shape instead of being walked structurally.
func encodeValue(e codec.Encoder, v reflect.Value) error {
	if v.CanAddr() {
		if enc, ok := v.Addr().Interface().(codec.Encode); ok {
			return enc.EncodeTo(e)
		}
	}
	if enc, ok := v.Interface().(codec.Encode); ok {
		return enc.EncodeTo(e)
	}
	switch v.Kind() {
	case reflect.Bool:
		return e.EncodeBool(v.Bool())
	case reflect.Int8:
		return e.EncodeI8(int8(v.Int()))
	case reflect.Int16:
		return e.EncodeI16(int16(v.Int()))
	case reflect.Int32:
		return e.EncodeI32(int32(v.Int()))
	case reflect.Int64, reflect.Int:
		return e.EncodeI64(v.Int())
	case reflect.Uint8:
		return e.EncodeU8(uint8(v.Uint()))
	case reflect.Uint16:
		return e.EncodeU16(uint16(v.Uint()))
	case reflect.Uint32:
		return e.EncodeU32(uint32(v.Uint()))
	case reflect.Uint64, reflect.Uint:
		return e.EncodeU64(v.Uint())
	case reflect.Float32:
		return e.EncodeF32(float32(v.Float()))
	case reflect.Float64:
		return e.EncodeF64(v.Float())
	case reflect.String:
		return e.EncodeString(v.String())
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.Kind() == reflect.Slice {
			return e.EncodeBinary(v.Bytes())
		}
		if err := e.EncodeSeqBegin(v.Len()); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := e.EncodeElemBegin(i, ""); err != nil {
				return err
			}
			if err := encodeValue(e, v.Index(i)); err != nil {
				return err
			}
			if err := e.EncodeElemEnd(); err != nil {
				return err
			}
		}
		return e.EncodeSeqEnd()
	case reflect.Ptr:
		// Boxed T delegates directly to T's codec (§4.4); a nil pointer
		// has no distinct wire representation, so it encodes as T's zero
		// value, the same choice builtin.Option makes for its inner field.
		if v.IsNil() {
			return encodeValue(e, reflect.New(v.Type().Elem()).Elem())
		}
		return encodeValue(e, v.Elem())
	case reflect.Struct:
		plan, err := planForStruct(v.Type())
		if err != nil {
			return err
		}
		return plan.encode(e, v)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedKind, v.Kind())
	}
}

// decodeValue is encodeValue's mirror image: v must be addressable.
func decodeValue(d codec.Decoder, v reflect.Value) error {
	if v.CanAddr() {
		if dec, ok := v.Addr().Interface().(codec.Decode); ok {
			return dec.DecodeFrom(d)
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		b, err := d.DecodeBool()
		v.SetBool(b)
		return err
	case reflect.Int8:
		x, err := d.DecodeI8()
		v.SetInt(int64(x))
		return err
	case reflect.Int16:
		x, err := d.DecodeI16()
		v.SetInt(int64(x))
		return err
	case reflect.Int32:
		x, err := d.DecodeI32()
		v.SetInt(int64(x))
		return err
	case reflect.Int64, reflect.Int:
		x, err := d.DecodeI64()
		v.SetInt(x)
		return err
	case reflect.Uint8:
		x, err := d.DecodeU8()
		v.SetUint(uint64(x))
		return err
	case reflect.Uint16:
		x, err := d.DecodeU16()
		v.SetUint(uint64(x))
		return err
	case reflect.Uint32:
		x, err := d.DecodeU32()
		v.SetUint(uint64(x))
		return err
	case reflect.Uint64, reflect.Uint:
		x, err := d.DecodeU64()
		v.SetUint(x)
		return err
	case reflect.Float32:
		x, err := d.DecodeF32()
		v.SetFloat(float64(x))
		return err
	case reflect.Float64:
		x, err := d.DecodeF64()
		v.SetFloat(x)
		return err
	case reflect.String:
		s, err := d.DecodeString()
		v.SetString(s)
		return err
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := d.DecodeBinary(-1)
			if err != nil {
				return err
			}
			v.SetBytes(b)
			return nil
		}
		n, err := d.DecodeSeqBegin()
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(v.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := d.DecodeElemBegin(i, ""); err != nil {
				return err
			}
			if err := decodeValue(d, out.Index(i)); err != nil {
				return err
			}
			if err := d.DecodeElemEnd(); err != nil {
				return err
			}
		}
		v.Set(out)
		return d.DecodeSeqEnd()
	case reflect.Array:
		n, err := d.DecodeSeqBegin()
		if err != nil {
			return err
		}
		if n != v.Len() {
			return codec.LengthError(v.Type().String(), v.Len(), n)
		}
		for i := 0; i < n; i++ {
			if err := d.DecodeElemBegin(i, ""); err != nil {
				return err
			}
			if err := decodeValue(d, v.Index(i)); err != nil {
				return err
			}
			if err := d.DecodeElemEnd(); err != nil {
				return err
			}
		}
		return d.DecodeSeqEnd()
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeValue(d, v.Elem())
	case reflect.Struct:
		plan, err := planForStruct(v.Type())
		if err != nil {
			return err
		}
		return plan.decode(d, v)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedKind, v.Kind())
	}
}
