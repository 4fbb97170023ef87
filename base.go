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

import "github.com/bitfluxio/bpcore/bitops"

// encodeDecodeBase drives the bit-copy primitive for a single
// primitive value: on encode it copies nbits bits out of data into
// ctx.S at ctx.I; on decode it copies the other way. Either way
// ctx.I advances by nbits.
func encodeDecodeBase(nbits int, ctx *Context, data []byte) {
	if ctx.IsEncode {
		bitops.CopyBits(nbits, ctx.S, data, ctx.I, 0)
	} else {
		bitops.CopyBits(nbits, data, ctx.S, 0, ctx.I)
	}
	ctx.I += nbits
}

func isStandardWidth(nbits int) bool {
	return nbits == 8 || nbits == 16 || nbits == 32 || nbits == 64
}

// signExtend performs the decode-only two's-complement sign-extension
// post-pass for an Int value whose nbits is not one of the standard
// widths: if the sign bit at position nbits-1 is set, the unread high
// bits of the storage width are set to 1.
func signExtend(size, nbits int, ctx *Context, data []byte) {
	if ctx.IsEncode || isStandardWidth(nbits) {
		return
	}
	signMask := byte(1) << uint((nbits-1)%8)
	signByte := (nbits - 1) / 8
	if data[signByte]&signMask == 0 {
		return
	}
	// Bits nbits..size*8-1 must become 1. Walk byte by byte; the byte
	// holding the sign bit gets a partial mask, the rest are all 1s.
	for b := 0; b < size; b++ {
		switch {
		case b < signByte:
			// fully within the value, untouched
		case b == signByte:
			data[b] |= byte(0xff << uint((nbits-1)%8+1))
		default:
			data[b] = 0xff
		}
	}
}

// encodeDecodeInt drives a signed integer value: the base copy, then
// the sign-extension post-pass on decode.
func encodeDecodeInt(nbits, size int, ctx *Context, data []byte) {
	encodeDecodeBase(nbits, ctx, data)
	signExtend(size, nbits, ctx, data)
}
