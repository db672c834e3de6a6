package transport

import "context"

// CtxIOReader adapts an IOReader into the suspendable surface: ReadContext
// checks ctx.Done() before delegating to the blocking Read. Go has no
// async/await, so "suspension" here means "cancellable between frames",
// not mid-syscall; this is the idiomatic substitute for rustbif's
// #[_async]-generated dual decoder.
type CtxIOReader struct {
	*IOReader
}

// NewCtxIOReader wraps an IOReader with context-awareness.
func NewCtxIOReader(r *IOReader) *CtxIOReader {
	return &CtxIOReader{IOReader: r}
}

func (t *CtxIOReader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return t.IOReader.Read(p)
}

// CtxIOWriter is the write-side counterpart of CtxIOReader.
type CtxIOWriter struct {
	*IOWriter
}

// NewCtxIOWriter wraps an IOWriter with context-awareness.
func NewCtxIOWriter(w *IOWriter) *CtxIOWriter {
	return &CtxIOWriter{IOWriter: w}
}

func (t *CtxIOWriter) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return t.IOWriter.Write(p)
}
