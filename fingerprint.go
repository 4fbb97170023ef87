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
	"encoding/binary"

	"github.com/dchest/siphash"
)

// fingerprintKey0/1 are fixed rather than random: callers compare
// fingerprints of descriptors built in the same binary, or across
// runs via logs, so the hash only needs to be stable, not
// adversarially keyed.
const (
	fingerprintKey0 = uint64(0x62706370726f746f)
	fingerprintKey1 = uint64(0x6472656164736869)
)

// Fingerprint hashes a message descriptor's shape (field widths,
// kinds and nesting, in declared order) into a single uint64, for
// attaching to log lines and diagnostics so two runs can be compared
// without printing the whole descriptor tree. It is not part of the
// wire format; two implementations of the same schema are not
// expected to produce the same fingerprint, only two calls against
// the same in-memory descriptor are.
func Fingerprint(desc *MessageDescriptor) uint64 {
	var buf []byte
	buf = appendMessageShape(buf, desc)
	return siphash.Hash(fingerprintKey0, fingerprintKey1, buf)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendMessageShape(buf []byte, m *MessageDescriptor) []byte {
	buf = appendUint64(buf, uint64(len(m.Fields)))
	buf = appendUint64(buf, uint64(m.Nbits))
	if m.Extensible {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for i := range m.Fields {
		buf = append(buf, m.Fields[i].Name...)
		buf = appendTypeShape(buf, m.Fields[i].Type)
	}
	return buf
}

func appendTypeShape(buf []byte, t *TypeDescriptor) []byte {
	buf = appendUint64(buf, uint64(t.Kind))
	buf = appendUint64(buf, uint64(t.Nbits))
	switch t.Kind {
	case Alias:
		buf = appendTypeShape(buf, t.Body.(*AliasDescriptor).To)
	case Enum:
		buf = appendTypeShape(buf, t.Body.(*EnumDescriptor).Uint)
	case Array:
		a := t.Body.(*ArrayDescriptor)
		buf = appendUint64(buf, uint64(a.Cap))
		buf = appendTypeShape(buf, a.Element)
	case Message:
		buf = appendMessageShape(buf, t.Body.(*MessageDescriptor))
	}
	return buf
}
