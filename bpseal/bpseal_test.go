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

package bpseal

import (
	"bytes"
	"testing"
)

func fixedKey(b byte) *bytes.Reader {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return bytes.NewReader(key)
}

func TestSealOpenRoundTrip(t *testing.T) {
	plain := []byte{0x1d, 0x07, 0xff, 0x00, 0x42}

	box, err := Seal(plain, fixedKey(0x11))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	got, err := box.Open(fixedKey(0x11))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("got %x, want %x", got, plain)
	}
}

func TestOpenWrongKeyFails(t *testing.T) {
	plain := []byte{0x1d, 0x07, 0xff}
	box, err := Seal(plain, fixedKey(0x11))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := box.Open(fixedKey(0x22)); err == nil {
		t.Fatal("expected authentication failure with wrong key")
	}
}

func TestOpenBadNonceSize(t *testing.T) {
	box := &Box{Nonce: []byte{1, 2, 3}, Payload: []byte{4, 5, 6}}
	if _, err := box.Open(fixedKey(0x11)); err == nil {
		t.Fatal("expected error for bad nonce size")
	}
}
