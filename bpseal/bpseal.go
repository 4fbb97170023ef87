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

// Package bpseal authenticates and encrypts an already bit-packed
// encoded message for transport over an untrusted channel. Like
// bpcompress, this sits strictly outside the core: the wire format
// bpcore.Encode produces is never implicitly sealed, and a sealed
// buffer must be opened before it is handed to bpcore.Decode.
package bpseal

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Box is a sealed encoded message: a random nonce plus the
// ciphertext-and-tag produced by sealing the plaintext buffer with no
// additional authenticated data.
type Box struct {
	Nonce   []byte
	Payload []byte
}

// Seal encrypts and authenticates src (typically the output of
// bpcore.Encode) under key, read from keySrc. The key must supply
// exactly chacha20poly1305.KeySize bytes.
func Seal(src []byte, keySrc io.Reader) (*Box, error) {
	aead, err := newAEAD(keySrc)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return &Box{
		Nonce:   nonce,
		Payload: aead.Seal(nil, nonce, src, nil),
	}, nil
}

// Open authenticates and decrypts b under key, read from keySrc,
// returning the original bpcore-encoded buffer. The caller still owns
// sizing that buffer before passing it to bpcore.Decode.
func (b *Box) Open(keySrc io.Reader) ([]byte, error) {
	aead, err := newAEAD(keySrc)
	if err != nil {
		return nil, err
	}
	if len(b.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("bpseal: invalid nonce size %d", len(b.Nonce))
	}
	return aead.Open(b.Payload[:0], b.Nonce, b.Payload, nil)
}

func newAEAD(keySrc io.Reader) (cipher.AEAD, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(keySrc, key); err != nil {
		return nil, fmt.Errorf("bpseal: reading key: %w", err)
	}
	return chacha20poly1305.NewX(key)
}
