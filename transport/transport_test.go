package transport_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbif/varbif/transport"
)

func TestBytesReaderWriterRoundTrip(t *testing.T) {
	w := transport.NewBytesWriter()
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	n, err = w.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("hello world"), w.Bytes())

	r := transport.NewBytesReader(w.Bytes())
	got := make([]byte, 5)
	_, err = r.Read(got)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
	assert.Equal(t, []byte(" world"), r.Remaining())
}

func TestBytesReaderShortRead(t *testing.T) {
	r := transport.NewBytesReader([]byte("ab"))
	_, err := r.Read(make([]byte, 3))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIOReaderExactFill(t *testing.T) {
	src := bytes.NewBufferString("abcdef")
	r := transport.NewIOReader(src)
	got := make([]byte, 3)
	n, err := r.Read(got)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), got)
}

func TestIOReaderShortSourceIsUnexpectedEOF(t *testing.T) {
	src := bytes.NewBufferString("ab")
	r := transport.NewIOReader(src)
	_, err := r.Read(make([]byte, 5))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIOWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := transport.NewIOWriter(&buf)
	n, err := w.Write([]byte("xyz"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "xyz", buf.String())
}

func TestCtxIOReaderCancelledBeforeRead(t *testing.T) {
	src := bytes.NewBufferString("abc")
	r := transport.NewCtxIOReader(transport.NewIOReader(src))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReadContext(ctx, make([]byte, 3))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCtxIOReaderProceedsWhenLive(t *testing.T) {
	src := bytes.NewBufferString("abc")
	r := transport.NewCtxIOReader(transport.NewIOReader(src))

	got := make([]byte, 3)
	n, err := r.ReadContext(context.Background(), got)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), got)
}

func TestCtxIOWriterCancelledBeforeWrite(t *testing.T) {
	var buf bytes.Buffer
	w := transport.NewCtxIOWriter(transport.NewIOWriter(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.WriteContext(ctx, []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, buf.Len())
}

func TestCtxIOWriterProceedsWhenLive(t *testing.T) {
	var buf bytes.Buffer
	w := transport.NewCtxIOWriter(transport.NewIOWriter(&buf))

	n, err := w.WriteContext(context.Background(), []byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ok", buf.String())
}

func TestPooledWriterGrowsAndRecycles(t *testing.T) {
	w := transport.NewPooledWriter(4)
	for i := 0; i < 10; i++ {
		_, err := w.Write([]byte{byte(i)})
		require.NoError(t, err)
	}
	assert.Len(t, w.Bytes(), 10)
	for i, b := range w.Bytes() {
		assert.Equal(t, byte(i), b)
	}

	w.Reset()
	assert.Empty(t, w.Bytes())

	w.Recycle()
}
