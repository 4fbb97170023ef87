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

package bpcompress

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestS2RoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte{0x1d, 0x07, 0xff, 0x00}, 64)

	var s S2
	compressed := s.Compress(nil, src)

	got, err := s.Decompress(nil, compressed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch: got %x want %x", got, src)
	}
}

func TestZSTDRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte{0x1d, 0x07, 0xff, 0x00}, 64)

	z := ZSTD{Level: zstd.SpeedFastest}
	compressed := z.Compress(nil, src)

	got, err := z.Decompress(nil, compressed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch: got %x want %x", got, src)
	}
}

func TestWriteCompressedReader(t *testing.T) {
	src := bytes.Repeat([]byte{0xaa, 0xbb}, 32)

	var buf bytes.Buffer
	var s S2
	if err := WriteCompressed(&buf, s, src); err != nil {
		t.Fatalf("WriteCompressed: %v", err)
	}

	got, err := Reader(&buf, s)
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch: got %x want %x", got, src)
	}
}
