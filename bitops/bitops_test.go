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

package bitops

import (
	"bytes"
	"testing"
)

// TestLittleEndianWithinByte: a:uint3=5 then b:uint5=3 packs as
// 0b00011_101 = 0x1d.
func TestLittleEndianWithinByte(t *testing.T) {
	dst := make([]byte, 1)
	a := []byte{5}
	b := []byte{3}

	CopyBits(3, dst, a, 0, 0)
	CopyBits(5, dst, b, 3, 0)

	if dst[0] != 0x1d {
		t.Fatalf("got %#x, want 0x1d", dst[0])
	}
}

// TestAlignmentIndependence: encoding the same bits starting at a
// byte boundary or mid-byte produces the same logical bit sequence,
// just shifted.
func TestAlignmentIndependence(t *testing.T) {
	src := []byte{0xab, 0xcd, 0x03} // 18 bits of payload

	aligned := make([]byte, 3)
	CopyBits(18, aligned, src, 0, 0)

	shifted := make([]byte, 4)
	CopyBits(18, shifted, src, 5, 0)

	// Re-extract the 18 bits from each destination at their
	// respective offsets and compare.
	got1 := make([]byte, 3)
	CopyBits(18, got1, aligned, 0, 0)
	got2 := make([]byte, 3)
	CopyBits(18, got2, shifted, 0, 5)

	if !bytes.Equal(got1, got2) {
		t.Fatalf("alignment-dependent result: %v vs %v", got1, got2)
	}
}

func TestCrossByteWord(t *testing.T) {
	// A 32-bit field starting 3 bits into the buffer.
	src := []byte{0x78, 0x56, 0x34, 0x12}
	dst := make([]byte, 5)
	CopyBits(32, dst, src, 3, 0)

	back := make([]byte, 4)
	CopyBits(32, back, dst, 0, 3)
	if !bytes.Equal(back, src) {
		t.Fatalf("round trip mismatch: got %x want %x", back, src)
	}
}

func TestPartialTailByte(t *testing.T) {
	dst := []byte{0xf0} // upper nibble must survive untouched
	src := []byte{0x05} // low 3 bits: 101
	CopyBits(3, dst, src, 0, 0)
	if dst[0] != 0xf5 {
		t.Fatalf("got %#x, want 0xf5", dst[0])
	}
}

func TestZeroLengthCopy(t *testing.T) {
	dst := []byte{0xaa}
	CopyBits(0, dst, []byte{0xff}, 0, 0)
	if dst[0] != 0xaa {
		t.Fatalf("zero-length copy mutated dst: %#x", dst[0])
	}
}
