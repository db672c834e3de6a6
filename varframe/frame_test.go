package varframe_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbif/varbif/varframe"
)

func roundTrip(t *testing.T, f varframe.Frame) varframe.Frame {
	t.Helper()
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	got, _, err := varframe.ReadFrom(&buf)
	require.NoError(t, err)
	return got
}

func TestScenario1_InlineValue(t *testing.T) {
	f := varframe.FromValue([]byte{63})
	assert.Equal(t, []byte{0x3F}, f.AppendTo(nil))
	got := roundTrip(t, f)
	v, ok := got.AsValue()
	require.True(t, ok)
	assert.Equal(t, byte(63), v[0])
}

func TestScenario2_ByteSizeBoundary(t *testing.T) {
	f64 := varframe.FromByteSize(64)
	assert.Equal(t, []byte{0xBF}, f64.AppendTo(nil))

	f65 := varframe.FromByteSize(65)
	assert.Equal(t, []byte{0xF0, 65}, f65.AppendTo(nil))
}

func TestScenario3_StructLenMax(t *testing.T) {
	f := varframe.FromStructLen(0xFFFFFFFF)
	assert.Equal(t, []byte{0xFB, 0xFF, 0xFF, 0xFF, 0xFF}, f.AppendTo(nil))
}

func TestZeroIsDistinctFromEnumTagZero(t *testing.T) {
	assert.Equal(t, []byte{0x00}, varframe.Zero().AppendTo(nil))
	assert.Equal(t, []byte{0x60}, varframe.FromEnumTag(0).AppendTo(nil))
}

func TestValueZeroCollapsesToZero(t *testing.T) {
	f := varframe.FromValue([]byte{0, 0, 0})
	assert.Equal(t, varframe.KindZero, f.Kind())
}

func TestExtendedForms(t *testing.T) {
	// Values 1..95 fit inline; 96 requires extended Value form.
	f := varframe.FromValue([]byte{96})
	assert.Equal(t, []byte{0xE0, 96}, f.AppendTo(nil))

	// 33 exceeds the 32 inline StructLen range.
	sl := varframe.FromStructLen(33)
	assert.Equal(t, []byte{0xF8, 33}, sl.AppendTo(nil))

	// 32 exceeds the 31 inline EnumTag range (96..127 maps tag 0..31).
	et := varframe.FromEnumTag(32)
	assert.Equal(t, []byte{0xFC, 32}, et.AppendTo(nil))
}

func TestReadFromSymmetry(t *testing.T) {
	cases := []varframe.Frame{
		varframe.Zero(),
		varframe.FromValue([]byte{1}),
		varframe.FromValue([]byte{0, 1}),
		varframe.FromByteSize(1),
		varframe.FromByteSize(64),
		varframe.FromByteSize(65),
		varframe.FromByteSize(1 << 40),
		varframe.FromStructLen(1),
		varframe.FromStructLen(32),
		varframe.FromStructLen(33),
		varframe.FromEnumTag(0),
		varframe.FromEnumTag(31),
		varframe.FromEnumTag(32),
	}
	for _, f := range cases {
		encoded := f.AppendTo(nil)
		got, n, err := varframe.ReadFrom(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, f, got)

		got2, n2, err := varframe.Read(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n2)
		assert.Equal(t, f, got2)
	}
}

func TestMinimality(t *testing.T) {
	// A value that needs exactly 3 significant bytes must not pad to 4.
	f := varframe.FromValue([]byte{1, 2, 3, 0})
	encoded := f.AppendTo(nil)
	assert.Equal(t, []byte{0xE2, 1, 2, 3}, encoded)
}
