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

// Package bpcore is the runtime encoding core of a bit-level
// serialization framework: given a descriptor graph built once by a
// schema compiler (out of scope here), it packs a structured value
// into a tightly bit-packed byte buffer and unpacks it again.
package bpcore

// Kind tags the variant a TypeDescriptor carries. Bool/Int/Uint/Byte
// are base kinds, handled directly by the bit-copy primitive; the rest
// are composite and recurse through the traversal.
type Kind int

const (
	Bool Kind = iota + 1
	Int
	Uint
	Byte
	Enum
	Alias
	Array
	Message
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Byte:
		return "byte"
	case Enum:
		return "enum"
	case Alias:
		return "alias"
	case Array:
		return "array"
	case Message:
		return "message"
	default:
		return "invalid"
	}
}
