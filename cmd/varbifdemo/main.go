// Command varbifdemo encodes and decodes a handful of values over both an
// in-memory transport and a bytes.Buffer-backed io.Reader/io.Writer pair,
// printing the wire bytes and the round-tripped values. It mirrors the
// narrative of rustbif's examples/main.rs: a record, a union carrying a
// nested record, a schema-evolution round-trip across three struct
// generations, and the built-in adapters (Option, ByteVec, a plain
// sequence, a tuple, and the U32Vec batch fast path).
package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/varbif/varbif/builtin"
	"github.com/varbif/varbif/codec"
	"github.com/varbif/varbif/derive"
	"github.com/varbif/varbif/transport"
	"github.com/varbif/varbif/wire"
)

// SampleStruct mirrors rustbif's SampleStruct{a: String, b: i32}.
type SampleStruct struct {
	A string
	B int32
}

// SampleEnum mirrors rustbif's SampleEnum: a unit None, a one-field A(String)
// at discriminant 10, and a two-field B{a: char, b: SampleStruct} at 20.
type SampleEnum struct {
	Kind byte // 0 = None, 1 = A, 2 = B
	A    string
	Char rune
	B    SampleStruct
}

func sampleEnumUnion() (*derive.Union[SampleEnum], error) {
	structCodec, err := derive.Struct[SampleStruct]()
	if err != nil {
		return nil, err
	}
	ten, twenty := uint32(10), uint32(20)
	return derive.NewUnion[SampleEnum]("SampleEnum",
		derive.Case[SampleEnum]{
			Name:  "None",
			Match: func(v SampleEnum) bool { return v.Kind == 0 },
			Zero:  func() SampleEnum { return SampleEnum{} },
		},
		derive.Case[SampleEnum]{
			Name:         "A",
			Discriminant: &ten,
			Fields:       1,
			Match:        func(v SampleEnum) bool { return v.Kind == 1 },
			Zero:         func() SampleEnum { return SampleEnum{Kind: 1} },
			Write: func(v SampleEnum, e codec.Encoder) error {
				if err := e.EncodeElemBegin(0, "0"); err != nil {
					return err
				}
				s := builtin.String(v.A)
				if err := s.EncodeTo(e); err != nil {
					return err
				}
				return e.EncodeElemEnd()
			},
			Read: func(zero SampleEnum, d codec.Decoder, observed int) (SampleEnum, error) {
				if observed == 0 {
					return zero, nil
				}
				if err := d.DecodeElemBegin(0, "0"); err != nil {
					return zero, err
				}
				var s builtin.String
				if err := s.DecodeFrom(d); err != nil {
					return zero, err
				}
				zero.A = string(s)
				return zero, d.DecodeElemEnd()
			},
		},
		derive.Case[SampleEnum]{
			Name:         "B",
			Discriminant: &twenty,
			Fields:       2,
			Match:        func(v SampleEnum) bool { return v.Kind == 2 },
			Zero:         func() SampleEnum { return SampleEnum{Kind: 2} },
			Write: func(v SampleEnum, e codec.Encoder) error {
				if err := e.EncodeElemBegin(0, "a"); err != nil {
					return err
				}
				if err := e.EncodeChar(v.Char); err != nil {
					return err
				}
				if err := e.EncodeElemEnd(); err != nil {
					return err
				}
				if err := e.EncodeElemBegin(1, "b"); err != nil {
					return err
				}
				if err := structCodec.EncodeTo(&v.B, e); err != nil {
					return err
				}
				return e.EncodeElemEnd()
			},
			Read: func(zero SampleEnum, d codec.Decoder, observed int) (SampleEnum, error) {
				if observed > 0 {
					if err := d.DecodeElemBegin(0, "a"); err != nil {
						return zero, err
					}
					c, err := d.DecodeChar()
					if err != nil {
						return zero, err
					}
					zero.Char = c
					if err := d.DecodeElemEnd(); err != nil {
						return zero, err
					}
				}
				if observed > 1 {
					if err := d.DecodeElemBegin(1, "b"); err != nil {
						return zero, err
					}
					if err := structCodec.DecodeFrom(&zero.B, d); err != nil {
						return zero, err
					}
					if err := d.DecodeElemEnd(); err != nil {
						return zero, err
					}
				}
				return zero, nil
			},
		},
	)
}

func main() {
	fmt.Println("---------------------- record + union over an in-memory transport")
	demoInMemory()

	fmt.Println("\n---------------------- same values over a bytes.Buffer io.Reader/io.Writer pair")
	demoIOBuffer()

	fmt.Println("\n---------------------- schema evolution across three struct generations")
	demoSchemaEvolution()

	fmt.Println("\n---------------------- built-in adapters: Option, ByteVec, sequence, tuple")
	demoBuiltins()

	fmt.Println("\n---------------------- context-cancellable transport")
	demoContext()
}

func demoInMemory() {
	union, err := sampleEnumUnion()
	must(err)

	w := transport.NewBytesWriter()
	enc := wire.NewEncoder(w)

	must(union.EncodeTo(SampleEnum{
		Kind: 2,
		Char: 'A',
		B:    SampleStruct{A: "hello, world!", B: 15},
	}, enc))

	structCodec, err := derive.Struct[SampleStruct]()
	must(err)
	must(structCodec.EncodeTo(&SampleStruct{A: "Дима", B: 1024}, enc))

	fmt.Printf("wire bytes: %02x\n", w.Bytes())

	dec := wire.NewDecoder(transport.NewBytesReader(w.Bytes()))
	gotEnum, err := union.DecodeFrom(dec)
	must(err)
	fmt.Printf("decoded union: %+v\n", gotEnum)

	var gotStruct SampleStruct
	must(structCodec.DecodeFrom(&gotStruct, dec))
	fmt.Printf("decoded struct: %+v\n", gotStruct)
}

func demoIOBuffer() {
	structCodec, err := derive.Struct[SampleStruct]()
	must(err)

	var buf bytes.Buffer
	enc := wire.NewEncoder(transport.NewIOWriter(&buf))
	must(structCodec.EncodeTo(&SampleStruct{A: "Игорь", B: 7}, enc))

	fmt.Printf("wire bytes: %02x\n", buf.Bytes())

	dec := wire.NewDecoder(transport.NewIOReader(&buf))
	var got SampleStruct
	must(structCodec.DecodeFrom(&got, dec))
	fmt.Printf("decoded: %+v\n", got)
}

type personV0 struct {
	Name string
}

type personV1 struct {
	Name string
	Age  int32
}

type personV2 struct {
	Name string
	Age  int32
	City string
}

func demoSchemaEvolution() {
	v1, err := derive.Struct[personV1]()
	must(err)
	w := transport.NewBytesWriter()
	must(v1.EncodeTo(&personV1{Name: "Dima", Age: 30}, wire.NewEncoder(w)))
	fmt.Printf("v1 wire: %02x\n", w.Bytes())

	v2, err := derive.Struct[personV2]()
	must(err)
	var forward personV2
	must(v2.DecodeFrom(&forward, wire.NewDecoder(transport.NewBytesReader(w.Bytes()))))
	fmt.Printf("decoded as v2 (new field defaults): %+v\n", forward)

	v0, err := derive.Struct[personV0]()
	must(err)
	var backward personV0
	must(v0.DecodeFrom(&backward, wire.NewDecoder(transport.NewBytesReader(w.Bytes()))))
	fmt.Printf("decoded as v0 (trailing field skipped): %+v\n", backward)
}

func demoBuiltins() {
	w := transport.NewBytesWriter()
	enc := wire.NewEncoder(w)

	opt := builtin.Some[builtin.String, *builtin.String]("present")
	must(opt.EncodeTo(enc))

	must(builtin.ByteVec{1, 2, 3}.EncodeTo(enc))

	seq := builtin.Seq[builtin.U8, *builtin.U8]{1, 2, 3}
	must(seq.EncodeTo(enc))

	tup := builtin.Tuple2[builtin.F64, *builtin.F64, builtin.String, *builtin.String]{
		F0: 123e5,
		F1: "uuu",
	}
	must(tup.EncodeTo(enc))

	u32vec := builtin.U32Vec{1, 2, 3}
	must(u32vec.EncodeTo(enc))

	fmt.Printf("wire bytes: %02x\n", w.Bytes())

	dec := wire.NewDecoder(transport.NewBytesReader(w.Bytes()))

	var gotOpt builtin.Option[builtin.String, *builtin.String]
	must(gotOpt.DecodeFrom(dec))
	fmt.Printf("option: %+v\n", gotOpt)

	var gotBytes builtin.ByteVec
	must(gotBytes.DecodeFrom(dec))
	fmt.Printf("bytevec: %v\n", gotBytes)

	var gotSeq builtin.Seq[builtin.U8, *builtin.U8]
	must(gotSeq.DecodeFrom(dec))
	fmt.Printf("seq: %v\n", gotSeq)

	var gotTup builtin.Tuple2[builtin.F64, *builtin.F64, builtin.String, *builtin.String]
	must(gotTup.DecodeFrom(dec))
	fmt.Printf("tuple: %+v\n", gotTup)

	var gotU32Vec builtin.U32Vec
	must(gotU32Vec.DecodeFrom(dec))
	fmt.Printf("u32vec (batch fast path, not Seq): %v\n", gotU32Vec)
}

func demoContext() {
	var buf bytes.Buffer
	w := transport.NewCtxIOWriter(transport.NewIOWriter(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := w.WriteContext(ctx, []byte{0x01}); err != nil {
		fmt.Printf("unexpected error before cancellation: %v\n", err)
		return
	}
	cancel()
	if _, err := w.WriteContext(ctx, []byte{0x02}); err != nil {
		fmt.Printf("write rejected after cancellation, as expected: %v\n", err)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
