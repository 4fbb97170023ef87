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

import "encoding/binary"

// encodeDecodeAhead writes *v as a prefixBits-wide unsigned value on
// encode, or reads prefixBits bits into *v on decode. prefixBits is
// 16 for messages and arrays, 8 for enums.
func encodeDecodeAhead(ctx *Context, prefixBits int, v *uint16) {
	var buf [2]byte
	if ctx.IsEncode {
		binary.LittleEndian.PutUint16(buf[:], *v)
	}
	encodeDecodeBase(prefixBits, ctx, buf[:])
	if !ctx.IsEncode {
		*v = binary.LittleEndian.Uint16(buf[:])
	}
}
