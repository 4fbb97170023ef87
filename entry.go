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

// Encode runs the traversal over desc in encode mode, writing the
// packed wire form of data into buf. buf is zeroed first, per the
// aligned fast path's requirement that untouched destination bytes
// start clean (see bitops.CopyBits). The caller must size buf to at
// least BytesLength(desc).
func Encode(desc *TypeDescriptor, data []byte, buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	ctx := &Context{IsEncode: true, S: buf}
	encodeDecodeType(desc, ctx, data)
}

// Decode runs the traversal over desc in decode mode, populating data
// from buf. data is zeroed first so that any bits an extensible
// decode skips past (or that a narrower element leaves untouched)
// read back as zero rather than stale caller state.
func Decode(desc *TypeDescriptor, data []byte, buf []byte) {
	for i := range data {
		data[i] = 0
	}
	ctx := &Context{IsEncode: false, S: buf}
	encodeDecodeType(desc, ctx, data)
}

// BytesLength reports the number of bytes a fully encoded value of
// desc occupies on the wire, prefix included for extensible
// composites. This is the size the caller must give Encode/Decode.
func BytesLength(desc *TypeDescriptor) int {
	switch desc.Kind {
	case Message:
		return desc.Body.(*MessageDescriptor).BytesLength()
	case Array:
		a := desc.Body.(*ArrayDescriptor)
		total := desc.Nbits
		if a.Extensible {
			total += 16
		}
		return (total + 7) / 8
	case Enum:
		e := desc.Body.(*EnumDescriptor)
		total := desc.Nbits
		if e.Extensible {
			total += 8
		}
		return (total + 7) / 8
	case Alias:
		// An alias may wrap an extensible array, so its own prefix
		// must be accounted for too: unwrap and size the aliased
		// type rather than reading desc.Nbits directly.
		return BytesLength(desc.Body.(*AliasDescriptor).To)
	default:
		return (desc.Nbits + 7) / 8
	}
}
