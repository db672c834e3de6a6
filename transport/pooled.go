package transport

import "github.com/bytedance/gopkg/lang/mcache"

// PooledWriter is a Writer whose backing array is drawn from
// bytedance/gopkg's mcache, the Go analogue of the teacher's sync.Pool-
// backed BinaryWriter/BufferWriter scratch buffers. Call Recycle when the
// writer is no longer needed so the backing array returns to the pool.
type PooledWriter struct {
	buf []byte
}

// NewPooledWriter returns a PooledWriter with an initial capacity hint.
func NewPooledWriter(sizeHint int) *PooledWriter {
	return &PooledWriter{buf: mcache.Malloc(0, sizeHint)}
}

func (w *PooledWriter) Write(p []byte) (int, error) {
	if len(w.buf)+len(p) > cap(w.buf) {
		grown := mcache.Malloc(len(w.buf), 2*(cap(w.buf)+len(p)))
		copy(grown, w.buf)
		mcache.Free(w.buf)
		w.buf = grown[:len(w.buf)]
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Bytes returns the bytes written so far.
func (w *PooledWriter) Bytes() []byte { return w.buf }

// Reset discards the written bytes without releasing the backing array.
func (w *PooledWriter) Reset() { w.buf = w.buf[:0] }

// Recycle returns the backing array to the pool. The writer must not be
// used afterward.
func (w *PooledWriter) Recycle() {
	mcache.Free(w.buf)
	w.buf = nil
}
