// Copyright (C) 2024 Bitflux, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bpcore

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// TypeDescriptor is the tagged-variant record every composite and base
// type is built from. Base kinds (Bool, Int, Uint, Byte) leave Body
// nil; composite kinds (Enum, Alias, Array, Message) hold their extra
// fields in Body, type-asserted by the traversal.
type TypeDescriptor struct {
	Kind  Kind
	Nbits int // wire width, excluding this type's own extensibility prefix
	Size  int // host storage size in bytes: 1, 2, 4, or 8 for scalars; the total for arrays and messages
	Body  any
}

// AliasDescriptor renames a non-named type. Aliases may wrap a base
// kind or an array, never an enum or a message (schema constraint).
type AliasDescriptor struct {
	To *TypeDescriptor
}

// ArrayDescriptor is a fixed-capacity homogeneous array.
type ArrayDescriptor struct {
	Extensible bool
	Cap        int
	Element    *TypeDescriptor
}

// EnumDescriptor carries its backing unsigned integer type. Enum
// values are stored in host memory exactly like their backing Uint.
type EnumDescriptor struct {
	Extensible bool
	Uint       *TypeDescriptor
}

// MessageFieldDescriptor locates one field within a message's flat
// storage buffer.
type MessageFieldDescriptor struct {
	Offset int
	Type   *TypeDescriptor
	Name   string
}

// MessageDescriptor is an ordered set of fields plus their combined
// wire width.
type MessageDescriptor struct {
	Extensible bool
	Nbits      int
	Fields     []MessageFieldDescriptor
}

func storageSize(nbits int) int {
	switch {
	case nbits <= 8:
		return 1
	case nbits <= 16:
		return 2
	case nbits <= 32:
		return 4
	default:
		return 8
	}
}

func assertWidth(nbits int) {
	if nbits < 1 || nbits > 64 {
		panic(fmt.Sprintf("bpcore: nbits %d out of range 1..64", nbits))
	}
}

// NewBoolType describes a single-bit boolean.
func NewBoolType() *TypeDescriptor {
	return &TypeDescriptor{Kind: Bool, Nbits: 1, Size: 1}
}

// NewByteType describes an nbits-wide unsigned byte-family value
// (bitproto's "byte" kind: an unsigned value with no sign handling,
// distinct from Uint only by name in the schema language).
func NewByteType(nbits int) *TypeDescriptor {
	assertWidth(nbits)
	return &TypeDescriptor{Kind: Byte, Nbits: nbits, Size: storageSize(nbits)}
}

// NewUintType describes an nbits-wide unsigned integer.
func NewUintType(nbits int) *TypeDescriptor {
	assertWidth(nbits)
	return &TypeDescriptor{Kind: Uint, Nbits: nbits, Size: storageSize(nbits)}
}

// NewIntType describes an nbits-wide two's-complement signed integer.
func NewIntType(nbits int) *TypeDescriptor {
	assertWidth(nbits)
	return &TypeDescriptor{Kind: Int, Nbits: nbits, Size: storageSize(nbits)}
}

// NewAliasType renames to, which must be a base kind or an array.
func NewAliasType(to *TypeDescriptor) *TypeDescriptor {
	switch to.Kind {
	case Bool, Int, Uint, Byte, Array:
	default:
		panic(fmt.Sprintf("bpcore: alias may not wrap kind %v", to.Kind))
	}
	return &TypeDescriptor{
		Kind:  Alias,
		Nbits: to.Nbits,
		Size:  to.Size,
		Body:  &AliasDescriptor{To: to},
	}
}

// NewEnumType describes an enum backed by uintType, which must be a
// Uint descriptor. Nbits matches the backing uint regardless of
// extensible: the extensibility prefix is accounted for separately by
// the traversal, never folded into Nbits.
func NewEnumType(uintType *TypeDescriptor, extensible bool) *TypeDescriptor {
	if uintType.Kind != Uint {
		panic("bpcore: enum backing type must be Uint")
	}
	return &TypeDescriptor{
		Kind:  Enum,
		Nbits: uintType.Nbits,
		Size:  uintType.Size,
		Body:  &EnumDescriptor{Extensible: extensible, Uint: uintType},
	}
}

// wireFootprint reports the total bits a value of type t consumes
// when it is encoded in place, including t's own extensibility
// prefix if it carries one. This is distinct from t.Nbits (which
// always excludes t's own prefix) precisely so that an enclosing
// message or array can size itself correctly around a
// nested extensible field without that field's prefix going
// uncounted.
func wireFootprint(t *TypeDescriptor) int {
	switch body := t.Body.(type) {
	case *ArrayDescriptor:
		if body.Extensible {
			return t.Nbits + 16
		}
	case *MessageDescriptor:
		if body.Extensible {
			return t.Nbits + 16
		}
	case *EnumDescriptor:
		if body.Extensible {
			return t.Nbits + 8
		}
	case *AliasDescriptor:
		return wireFootprint(body.To)
	}
	return t.Nbits
}

// arrayElementFootprint is wireFootprint specialized for array
// elements: an Enum element never carries its own prefix inside an
// array, no matter its Extensible flag (bitproto's array encoder
// always treats enum elements as bare fixed-width values; only a
// standalone enum field gets the 8-bit prefix). See traversal.go's
// processArrayElement for the matching runtime behavior.
func arrayElementFootprint(elem *TypeDescriptor) int {
	if elem.Kind == Enum {
		return elem.Nbits
	}
	return wireFootprint(elem)
}

// NewArrayType describes a fixed-capacity array of cap elements of
// element type elem. Nbits excludes the array's own extensibility
// prefix, but does include each element's prefix when the element
// type is itself an extensible message or array.
func NewArrayType(elem *TypeDescriptor, cap int, extensible bool) *TypeDescriptor {
	if cap < 0 {
		panic("bpcore: negative array capacity")
	}
	return &TypeDescriptor{
		Kind:  Array,
		Nbits: arrayElementFootprint(elem) * cap,
		Size:  elem.Size * cap,
		Body:  &ArrayDescriptor{Extensible: extensible, Cap: cap, Element: elem},
	}
}

// NewMessageType builds a message descriptor from fields already
// carrying their storage offsets (as a schema compiler would lay
// them out, packed in declaration order). Nbits is the sum of the
// fields' wire footprints (each field's own width plus its own
// extensibility prefix, if any), excluding this message's own prefix.
func NewMessageType(extensible bool, fields []MessageFieldDescriptor) *TypeDescriptor {
	// Clone rather than retain the caller's slice: descriptors are
	// immutable and shared read-only, so a schema compiler mutating
	// its own field-building slice after constructing this descriptor
	// must not be able to corrupt it.
	fields = slices.Clone(fields)
	nbits := 0
	for i := range fields {
		nbits += wireFootprint(fields[i].Type)
	}
	m := &MessageDescriptor{Extensible: extensible, Nbits: nbits, Fields: fields}
	return &TypeDescriptor{Kind: Message, Nbits: nbits, Size: messageSize(fields), Body: m}
}

func messageSize(fields []MessageFieldDescriptor) int {
	size := 0
	for i := range fields {
		end := fields[i].Offset + fields[i].Type.Size
		if end > size {
			size = end
		}
	}
	return size
}

// BytesLength reports the number of bytes a fully encoded value of
// this message occupies on the wire: the field content plus, when
// the message is extensible, its 16-bit length prefix — a bare
// ceil(Nbits/8) alone under-sizes the buffer for an extensible
// message; see DESIGN.md "open questions resolved" for the
// reconciliation.
func (m *MessageDescriptor) BytesLength() int {
	total := m.Nbits
	if m.Extensible {
		total += 16
	}
	return (total + 7) / 8
}
