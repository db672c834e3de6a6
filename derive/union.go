package derive

import (
	"fmt"

	"github.com/varbif/varbif/codec"
)

// Case describes one arm of a derived union. Go has no enum type to hang
// a discriminant or a closed variant set on, so derive.Union takes an
// explicit, ordered list of cases instead of reflecting over anything:
// Match/Zero/Write/Read play the role cerdito-derive's generated `match`
// arms play for a Rust enum, and Union itself contributes the shared
// tag-assignment and evolution-rule plumbing (§4.2.2, §4.5, §6).
type Case[U any] struct {
	// Discriminant fixes this case's tag if non-nil; otherwise the tag is
	// assigned per spec.md §6: the previous explicit discriminant plus a
	// running count, or 0 for the first wholly-implicit case.
	Discriminant *uint32
	Name         string
	// Fields is this case's declared field count (0 for a unit variant).
	Fields int
	// Match reports whether v holds this case, used by EncodeTo to find
	// which case a value belongs to.
	Match func(v U) bool
	// Zero constructs this case with every field defaulted: used both for
	// a unit-encoded occurrence (payloadLen==0) and, by DecodeFrom, to
	// seed a payload occurrence's struct fields before positionally
	// overwriting the observed ones.
	Zero func() U
	// Write encodes this case's fields only (no struct framing, no enum
	// framing -- Union.EncodeTo supplies both). Never called for a
	// Fields==0 case.
	Write func(v U, e codec.Encoder) error
	// Read decodes up to `observed` of this case's fields positionally
	// into a value built from Zero, leaving the rest defaulted (§4.2.1).
	// Never called for a Fields==0 case.
	Read func(zero U, d codec.Decoder, observed int) (U, error)
}

// Union is the derived codec for a closed set of cases representing one
// spec.md §3.3(b) union, found by type assertion/predicate rather than a
// native tagged union (Go has none).
type Union[U any] struct {
	name  string
	cases []Case[U]
	tags  []uint32
}

// AssignTags implements spec.md §6's discriminant-assignment algorithm:
// an explicit discriminant becomes the new baseline; an implicit
// discriminant is the running baseline incremented by one per case since
// the last explicit one, with the very first wholly-implicit case at 0.
func AssignTags[U any](cases []Case[U]) []uint32 {
	tags := make([]uint32, len(cases))
	var current uint32
	have := false
	for i, c := range cases {
		switch {
		case c.Discriminant != nil:
			current = *c.Discriminant
			have = true
		case have:
			current++
		default:
			current = 0
			have = true
		}
		tags[i] = current
	}
	return tags
}

// NewUnion validates and assembles cases into a Union, rejecting an
// implicit discriminant that would overflow uint32 and a duplicate
// assigned tag (spec.md has no explicit rule for duplicates, but two
// cases sharing a tag would make decode ambiguous and encode is already
// unambiguous via Match).
func NewUnion[U any](name string, cases ...Case[U]) (*Union[U], error) {
	tags := AssignTags(cases)
	for i := 1; i < len(cases); i++ {
		if cases[i].Discriminant == nil && tags[i-1] == ^uint32(0) {
			return nil, fmt.Errorf("derive: %s: implicit discriminant of variant %s overflows uint32", name, cases[i].Name)
		}
	}
	seen := make(map[uint32]string, len(cases))
	for i, c := range cases {
		if other, dup := seen[tags[i]]; dup {
			return nil, fmt.Errorf("derive: %s: variants %s and %s share tag %d", name, other, c.Name, tags[i])
		}
		seen[tags[i]] = c.Name
	}
	return &Union[U]{name: name, cases: cases, tags: tags}, nil
}

func (u *Union[U]) byTag(tag uint32) (Case[U], bool) {
	for i, t := range u.tags {
		if t == tag {
			return u.cases[i], true
		}
	}
	return Case[U]{}, false
}

// EncodeTo implements spec.md §4.5(1)/§6.2's encode half: find the case v
// belongs to, then emit a unit (Value(tag)) or payload (EnumTag(tag) plus
// one inner record) encoding per §3.2's union shape.
func (u *Union[U]) EncodeTo(v U, e codec.Encoder) error {
	for i, c := range u.cases {
		if !c.Match(v) {
			continue
		}
		tag := u.tags[i]
		if c.Fields == 0 {
			if err := e.EncodeEnumBegin(tag, 0, u.name, c.Name); err != nil {
				return err
			}
			return e.EncodeEnumEnd()
		}
		if err := e.EncodeEnumBegin(tag, 1, u.name, c.Name); err != nil {
			return err
		}
		if err := e.EncodeStructBegin(c.Fields, c.Name); err != nil {
			return err
		}
		if err := c.Write(v, e); err != nil {
			return err
		}
		if err := e.EncodeStructEnd(); err != nil {
			return err
		}
		return e.EncodeEnumEnd()
	}
	return fmt.Errorf("derive: value does not match any case of %s", u.name)
}

// DecodeFrom implements spec.md §4.2.2/§4.5(2): an unknown tag is fatal
// (codec.TagError); payloadLen==0 decodes to the matched case's all-
// defaults constructor; payloadLen==1 reads one inner record and applies
// §4.2.1 to it against the matched case's declared field count.
func (u *Union[U]) DecodeFrom(d codec.Decoder) (U, error) {
	var zero U
	tag, payloadLen, err := d.DecodeEnumBegin(u.name)
	if err != nil {
		return zero, err
	}
	c, ok := u.byTag(tag)
	if !ok {
		return zero, codec.TagError(u.name, tag)
	}
	var v U
	switch payloadLen {
	case 0:
		v = c.Zero()
	case 1:
		l, err := d.DecodeStructBegin(c.Fields, c.Name)
		if err != nil {
			return zero, err
		}
		if c.Fields == 0 {
			v = c.Zero()
		} else {
			v, err = c.Read(c.Zero(), d, min(l, c.Fields))
			if err != nil {
				return zero, err
			}
		}
		if l > c.Fields {
			if err := d.DecodeSkip(l - c.Fields); err != nil {
				return zero, err
			}
		}
		if err := d.DecodeStructEnd(); err != nil {
			return zero, err
		}
	}
	if err := d.DecodeEnumEnd(); err != nil {
		return zero, err
	}
	return v, nil
}
