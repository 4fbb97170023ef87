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

// Package bpcompress wraps an already bit-packed encoded message for
// transport. The wire format itself (what bpcore.Encode produces)
// stays uncompressed and unframed; compression is strictly a
// transport-layer concern applied after encoding and undone before
// decoding.
package bpcompress

import (
	"bytes"
	"io"
	"runtime"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Compressor wraps a raw encoded buffer for transport.
type Compressor interface {
	Compress(dst, src []byte) []byte
}

// Decompressor reverses a Compressor's framing.
type Decompressor interface {
	Decompress(dst, src []byte) ([]byte, error)
}

// ZSTD compresses with zstd at the given level. It is appropriate for
// messages sent over a slow or metered link, where CPU is cheaper
// than bytes.
type ZSTD struct {
	Level zstd.EncoderLevel
}

func (z ZSTD) Compress(dst, src []byte) []byte {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(z.Level))
	if err != nil {
		panic(err)
	}
	defer enc.Close()
	return enc.EncodeAll(src, dst)
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
		if err != nil {
			panic(err)
		}
		return d
	},
}

func (z ZSTD) Decompress(dst, src []byte) ([]byte, error) {
	d := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(d)
	return d.DecodeAll(src, dst)
}

// S2 compresses with klauspost/compress's s2 (an extended Snappy),
// favoring throughput over ratio relative to ZSTD — suited to a
// high-rate stream of small encoded messages.
type S2 struct{}

func (S2) Compress(dst, src []byte) []byte {
	return s2.EncodeBetter(dst, src)
}

func (S2) Decompress(dst, src []byte) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	return s2.Decode(dst[:n], src)
}

// Reader decompresses a stream of frames produced by a Compressor,
// one bpcore-encoded message at a time, read whole into memory (every
// message here is already a small, fixed, caller-sized buffer — no
// chunking is needed the way compr.NewDecompressionReader chunks
// Ion blocks).
func Reader(r io.Reader, d Decompressor) ([]byte, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.Decompress(nil, compressed)
}

// WriteCompressed compresses buf with c and writes the result to w.
func WriteCompressed(w io.Writer, c Compressor, buf []byte) error {
	out := c.Compress(nil, buf)
	_, err := io.Copy(w, bytes.NewReader(out))
	return err
}
