package wire

import "github.com/varbif/varbif/varframe"

// DecodeSkip discards n elements of unspecified shape from the stream,
// widening its work queue as it goes: a ByteSize frame's payload is
// consumed outright, while a StructLen or EnumTag frame means more
// elements follow (the struct's fields, or the enum's single inline
// payload record) and are pushed onto the queue in turn. Value frames
// (including a unit union's tag) and Zero frames consume nothing further.
func (d *Decoder) DecodeSkip(n int) error {
	remaining := n
	for remaining > 0 {
		remaining--
		f, err := d.readFrame()
		if err != nil {
			return err
		}
		switch f.Kind() {
		case varframe.KindZero, varframe.KindValue:
			// nothing further to consume
		case varframe.KindEnumTag:
			// the tag was inline; its payload is exactly one more element
			remaining++
		case varframe.KindByteSize:
			size, _ := f.AsByteSize()
			if size > 0 {
				buf := make([]byte, size)
				if _, err := d.DecodeBytesPayload(buf); err != nil {
					return err
				}
			}
		case varframe.KindStructLen:
			length, _ := f.AsStructLen()
			remaining += int(length)
		}
	}
	return nil
}
