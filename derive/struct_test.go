package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbif/varbif/derive"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/wire"
)

type personV0 struct {
	A string
}

type personV1 struct {
	A string
	B int32
}

type personV2 struct {
	A string
	B int32
	C int32
}

func encodeTo[T any](t *testing.T, c *derive.StructCodec[T], v *T) []byte {
	t.Helper()
	w := transport.NewBytesWriter()
	require.NoError(t, c.EncodeTo(v, wire.NewEncoder(w)))
	return w.Bytes()
}

// Scenario 5 (spec.md §8): a 2-field record decoded against a 3-field
// declaration recovers the first two fields verbatim and defaults the
// third.
func TestForwardCompat(t *testing.T) {
	v1, err := derive.Struct[personV1]()
	require.NoError(t, err)
	wire1 := encodeTo(t, v1, &personV1{A: "hello,world!", B: 15})

	v2, err := derive.Struct[personV2]()
	require.NoError(t, err)
	var got personV2
	require.NoError(t, v2.DecodeFrom(&got, wire.NewDecoder(transport.NewBytesReader(wire1))))
	assert.Equal(t, personV2{A: "hello,world!", B: 15, C: 0}, got)
}

// Backward compat: a 3-field record decoded against a 1-field declaration
// recovers the declared prefix and skips the rest.
func TestBackwardCompat(t *testing.T) {
	v2, err := derive.Struct[personV2]()
	require.NoError(t, err)
	wire2 := encodeTo(t, v2, &personV2{A: "x", B: 1, C: 2})

	v0, err := derive.Struct[personV0]()
	require.NoError(t, err)
	var got personV0
	require.NoError(t, v0.DecodeFrom(&got, wire.NewDecoder(transport.NewBytesReader(wire2))))
	assert.Equal(t, personV0{A: "x"}, got)
}

func TestExactRoundTrip(t *testing.T) {
	c, err := derive.Struct[personV2]()
	require.NoError(t, err)
	want := personV2{A: "abc", B: -3, C: 42}
	bytes := encodeTo(t, c, &want)

	var got personV2
	require.NoError(t, c.DecodeFrom(&got, wire.NewDecoder(transport.NewBytesReader(bytes))))
	assert.Equal(t, want, got)
}

type withSlice struct {
	Tags []string
	Nums []int32
}

func TestNestedSliceFields(t *testing.T) {
	c, err := derive.Struct[withSlice]()
	require.NoError(t, err)
	want := withSlice{Tags: []string{"a", "b"}, Nums: []int32{1, -2, 3}}
	bytes := encodeTo(t, c, &want)

	var got withSlice
	require.NoError(t, c.DecodeFrom(&got, wire.NewDecoder(transport.NewBytesReader(bytes))))
	assert.Equal(t, want, got)
}

type inner struct {
	X int32
}

type outer struct {
	Name  string
	Inner inner
}

func TestNestedStructField(t *testing.T) {
	c, err := derive.Struct[outer]()
	require.NoError(t, err)
	want := outer{Name: "n", Inner: inner{X: 5}}
	bytes := encodeTo(t, c, &want)

	var got outer
	require.NoError(t, c.DecodeFrom(&got, wire.NewDecoder(transport.NewBytesReader(bytes))))
	assert.Equal(t, want, got)
}

type noDefaultField struct{ V int32 }

func (noDefaultField) NoDefault() {}

type rejects struct {
	F noDefaultField
}

func TestMissingDefaultRejected(t *testing.T) {
	_, err := derive.Struct[rejects]()
	require.Error(t, err)
}
