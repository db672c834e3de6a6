package codec

import (
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of codec-origin error categories,
// in the manner of thrift's numeric ApplicationException/ProtocolException
// codes.
type Kind int32

const (
	// KindUnknown is the zero value; it should not appear on a returned error.
	KindUnknown Kind = iota
	// KindTransport wraps an error surfaced verbatim by a transport.Reader/Writer.
	KindTransport
	// KindFrame is a header-category mismatch: the decoder expected one
	// VarFrame category and observed another.
	KindFrame
	// KindUTF8 is a decode_string UTF-8 validation failure.
	KindUTF8
	// KindTag is an unknown union discriminant with no matching variant.
	KindTag
	// KindLength is a fixed-size array/byte-blob whose observed length
	// does not match its declared size.
	KindLength
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindFrame:
		return "frame error"
	case KindUTF8:
		return "utf8 error"
	case KindTag:
		return "tag error"
	case KindLength:
		return "length error"
	default:
		return "unknown codec error"
	}
}

// Error is the single, closed taxonomy every codec-origin failure belongs
// to. It carries a Kind, a human-readable message, and (for transport-
// origin errors) the wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("varbif: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("varbif: %s", e.Kind)
}

// Unwrap exposes the wrapped transport error, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches another *Error with the same Kind, or the wrapped cause.
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return errors.Is(e.err, target)
}

// TransportError wraps err (from a transport.Reader/Writer) verbatim.
func TransportError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindTransport, Msg: err.Error(), err: err}
}

// FrameError reports a header-category mismatch: the decoder expected
// `want` and observed `got`.
func FrameError(want, got string) error {
	return &Error{Kind: KindFrame, Msg: fmt.Sprintf("expected %s frame, got %s", want, got)}
}

// UTF8Error reports that decode_string's byte blob was not valid UTF-8.
func UTF8Error() error {
	return &Error{Kind: KindUTF8, Msg: "invalid UTF-8 in decoded string"}
}

// TagError reports an unknown union discriminant.
func TagError(unionName string, tag uint32) error {
	return &Error{Kind: KindTag, Msg: fmt.Sprintf("%s doesn't support variant %d", unionName, tag)}
}

// LengthError reports a fixed-size mismatch between a declared and
// observed length.
func LengthError(what string, want, got int) error {
	return &Error{Kind: KindLength, Msg: fmt.Sprintf("%s: declared length %d, observed %d", what, want, got)}
}
