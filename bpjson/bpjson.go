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

// Package bpjson walks a decoded value's descriptor graph read-only
// and renders it as JSON, without touching a bit cursor or any
// extensibility machinery.
package bpjson

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/bitfluxio/bpcore"
)

// Write formats the value at data, described by desc, as JSON into w.
func Write(w io.Writer, desc *bpcore.TypeDescriptor, data []byte) error {
	scratch := make([]byte, 0, 32)
	scratch, err := appendValue(scratch, desc, data)
	if err != nil {
		return err
	}
	_, err = w.Write(scratch)
	return err
}

func appendValue(buf []byte, desc *bpcore.TypeDescriptor, data []byte) ([]byte, error) {
	switch desc.Kind {
	case bpcore.Bool:
		if data[0] != 0 {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case bpcore.Byte:
		return strconv.AppendUint(buf, loadUnsigned(data, desc.Size), 10), nil
	case bpcore.Uint:
		return strconv.AppendUint(buf, loadUnsigned(data, desc.Size), 10), nil
	case bpcore.Int:
		return strconv.AppendInt(buf, loadSigned(data, desc.Size), 10), nil
	case bpcore.Enum:
		e := desc.Body.(*bpcore.EnumDescriptor)
		return appendValue(buf, e.Uint, data)
	case bpcore.Alias:
		a := desc.Body.(*bpcore.AliasDescriptor)
		return appendValue(buf, a.To, data)
	case bpcore.Array:
		return appendArray(buf, desc.Body.(*bpcore.ArrayDescriptor), data)
	case bpcore.Message:
		return appendMessage(buf, desc.Body.(*bpcore.MessageDescriptor), data)
	}
	return buf, nil
}

func appendArray(buf []byte, a *bpcore.ArrayDescriptor, data []byte) ([]byte, error) {
	buf = append(buf, '[')
	var err error
	off := 0
	for k := 0; k < a.Cap; k++ {
		if k > 0 {
			buf = append(buf, ',')
		}
		buf, err = appendValue(buf, a.Element, data[off:off+a.Element.Size])
		if err != nil {
			return buf, err
		}
		off += a.Element.Size
	}
	buf = append(buf, ']')
	return buf, nil
}

func appendMessage(buf []byte, m *bpcore.MessageDescriptor, data []byte) ([]byte, error) {
	buf = append(buf, '{')
	var err error
	for i := range m.Fields {
		f := &m.Fields[i]
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = append(buf, f.Name...)
		buf = append(buf, '"', ':')
		buf, err = appendValue(buf, f.Type, data[f.Offset:f.Offset+f.Type.Size])
		if err != nil {
			return buf, err
		}
	}
	buf = append(buf, '}')
	return buf, nil
}

func loadUnsigned(data []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(data))
	case 4:
		return uint64(binary.LittleEndian.Uint32(data))
	default:
		return binary.LittleEndian.Uint64(data)
	}
}

func loadSigned(data []byte, size int) int64 {
	switch size {
	case 1:
		return int64(int8(data[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(data)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(data)))
	default:
		return int64(binary.LittleEndian.Uint64(data))
	}
}
