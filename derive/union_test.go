package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbif/varbif/codec"
	"github.com/varbif/varbif/derive"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/wire"
)

// Shape mirrors a small hand-rolled union: Circle is a unit variant,
// Rect carries two fields.
type Shape struct {
	IsRect bool
	Radius int32
	W, H   int32
}

func shapeUnion(t *testing.T) *derive.Union[Shape] {
	t.Helper()
	u, err := derive.NewUnion[Shape]("Shape",
		derive.Case[Shape]{
			Name:  "Circle",
			Match: func(v Shape) bool { return !v.IsRect },
			Zero:  func() Shape { return Shape{} },
		},
		derive.Case[Shape]{
			Name:   "Rect",
			Fields: 2,
			Match:  func(v Shape) bool { return v.IsRect },
			Zero:   func() Shape { return Shape{IsRect: true} },
			Write: func(v Shape, e codec.Encoder) error {
				if err := e.EncodeElemBegin(0, "w"); err != nil {
					return err
				}
				if err := e.EncodeI32(v.W); err != nil {
					return err
				}
				if err := e.EncodeElemEnd(); err != nil {
					return err
				}
				if err := e.EncodeElemBegin(1, "h"); err != nil {
					return err
				}
				if err := e.EncodeI32(v.H); err != nil {
					return err
				}
				return e.EncodeElemEnd()
			},
			Read: func(zero Shape, d codec.Decoder, observed int) (Shape, error) {
				if observed > 0 {
					if err := d.DecodeElemBegin(0, "w"); err != nil {
						return zero, err
					}
					w, err := d.DecodeI32()
					if err != nil {
						return zero, err
					}
					zero.W = w
					if err := d.DecodeElemEnd(); err != nil {
						return zero, err
					}
				}
				if observed > 1 {
					if err := d.DecodeElemBegin(1, "h"); err != nil {
						return zero, err
					}
					h, err := d.DecodeI32()
					if err != nil {
						return zero, err
					}
					zero.H = h
					if err := d.DecodeElemEnd(); err != nil {
						return zero, err
					}
				}
				return zero, nil
			},
		},
	)
	require.NoError(t, err)
	return u
}

func TestUnionTagAssignment(t *testing.T) {
	u := shapeUnion(t)

	w := transport.NewBytesWriter()
	require.NoError(t, u.EncodeTo(Shape{}, wire.NewEncoder(w)))
	assert.Equal(t, []byte{0x00}, w.Bytes()) // Circle is tag 0, unit -> Value(0) == Zero

	w2 := transport.NewBytesWriter()
	require.NoError(t, u.EncodeTo(Shape{IsRect: true, W: 3, H: 4}, wire.NewEncoder(w2)))
	// Rect is tag 1: EnumTag(1), StructLen(2), I32(3), I32(4) -- zigzag(3)=6, zigzag(4)=8.
	assert.Equal(t, []byte{0x61, 0xC1, 6, 8}, w2.Bytes())
}

func TestUnionRoundTrip(t *testing.T) {
	u := shapeUnion(t)
	for _, want := range []Shape{{}, {IsRect: true, W: 7, H: -2}} {
		w := transport.NewBytesWriter()
		require.NoError(t, u.EncodeTo(want, wire.NewEncoder(w)))
		got, err := u.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes())))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestUnionUnknownTag(t *testing.T) {
	u := shapeUnion(t)
	w := transport.NewBytesWriter()
	// tag 5 has no matching case.
	require.NoError(t, wire.NewEncoder(w).EncodeEnumBegin(5, 0, "Shape", "?"))
	_, err := u.DecodeFrom(wire.NewDecoder(transport.NewBytesReader(w.Bytes())))
	require.Error(t, err)
	var cErr *codec.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, codec.KindTag, cErr.Kind)
}

func TestAssignTagsExplicitThenImplicit(t *testing.T) {
	five := uint32(5)
	cases := []derive.Case[int]{
		{Name: "a"},
		{Name: "b"},
		{Name: "c", Discriminant: &five},
		{Name: "d"},
		{Name: "e"},
	}
	tags := derive.AssignTags(cases)
	assert.Equal(t, []uint32{0, 1, 5, 6, 7}, tags)
}

func TestDuplicateTagRejected(t *testing.T) {
	zero := uint32(0)
	_, err := derive.NewUnion[int]("dup",
		derive.Case[int]{Name: "a"},
		derive.Case[int]{Name: "b", Discriminant: &zero},
	)
	require.Error(t, err)
}
