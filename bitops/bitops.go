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

// Package bitops implements the arbitrary bit-aligned copy primitive
// that the rest of bpcore is built on: copying n bits from a source
// buffer at an arbitrary bit offset into a destination buffer at an
// arbitrary bit offset, with bit 0 of byte 0 holding the
// least-significant bit (little-endian-within-byte).
package bitops

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
)

// nativeWordStore is true when this host's native byte order matches
// the wire's little-endian multi-byte layout, so a shifted word may be
// stored directly through an unsafe pointer instead of going through
// encoding/binary. On a big-endian host we always fall back to the
// portable path.
var nativeWordStore = !cpu.IsBigEndian

func loadWord32(b []byte) uint32 {
	if nativeWordStore {
		return *(*uint32)(unsafe.Pointer(&b[0]))
	}
	return binary.LittleEndian.Uint32(b)
}

func storeWord32(b []byte, v uint32) {
	if nativeWordStore {
		*(*uint32)(unsafe.Pointer(&b[0])) = v
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}

func loadWord16(b []byte) uint16 {
	if nativeWordStore {
		return *(*uint16)(unsafe.Pointer(&b[0]))
	}
	return binary.LittleEndian.Uint16(b)
}

func storeWord16(b []byte, v uint16) {
	if nativeWordStore {
		*(*uint16)(unsafe.Pointer(&b[0])) = v
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// min is golang.org/x/exp/constraints.Ordered-generic, the same
// pre-Go-1.21-builtin-min style as constraints.Integer-parameterized
// helpers elsewhere in this codebase.
func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func minTriple(a, b, c int) int {
	return min(a, min(b, c))
}

// CopyBits copies exactly n bits from src, starting at bit index si,
// into dst, starting at bit index di. Bit k of a buffer lives in byte
// k>>3 at mask 1<<(k&7).
//
// The destination bytes touched by the aligned fast path (case dm==0
// below) are assigned, not OR'd, on the assumption that they are
// either freshly zeroed or about to be fully overwritten by this call;
// callers that re-encode into a live buffer must zero it first.
func CopyBits(n int, dst, src []byte, di, si int) {
	for n > 0 {
		db := di >> 3
		sb := si >> 3
		dm := di & 7
		sm := si & 7

		var c int
		if dm == 0 {
			bits := n + sm
			switch {
			case bits >= 32:
				storeWord32(dst[db:db+4], loadWord32(src[sb:sb+4])>>uint(sm))
				c = 32 - sm
			case bits >= 16:
				storeWord16(dst[db:db+2], loadWord16(src[sb:sb+2])>>uint(sm))
				c = 16 - sm
			case bits >= 8:
				dst[db] = src[sb] >> uint(sm)
				c = 8 - sm
			default:
				c = min(8-sm, n)
				m := byte(0xff << uint(c))
				dst[db] = (dst[db] & m) | ((src[sb] >> uint(sm)) &^ m)
			}
		} else {
			c = minTriple(8-dm, 8-sm, n)
			deltaMask := byte((1<<uint(c))-1) << uint(dm)
			keepMask := ^deltaMask
			dst[db] = (dst[db] & keepMask) | ((src[sb] >> uint(sm) << uint(dm)) & deltaMask)
		}

		n -= c
		di += c
		si += c
	}
}
