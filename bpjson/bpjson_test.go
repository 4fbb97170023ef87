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

package bpjson

import (
	"bytes"
	"testing"

	"github.com/bitfluxio/bpcore"
)

func TestWriteMessage(t *testing.T) {
	msg := bpcore.NewMessageType(false, []bpcore.MessageFieldDescriptor{
		{Offset: 0, Type: bpcore.NewBoolType(), Name: "ok"},
		{Offset: 1, Type: bpcore.NewIntType(8), Name: "delta"},
		{Offset: 2, Type: bpcore.NewArrayType(bpcore.NewUintType(8), 3, false), Name: "xs"},
	})
	delta := int8(-5)
	data := []byte{1, byte(delta), 1, 2, 3}

	var buf bytes.Buffer
	if err := Write(&buf, msg, data); err != nil {
		t.Fatal(err)
	}
	want := `{"ok":true,"delta":-5,"xs":[1,2,3]}`
	if buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}

func TestWriteEnumAndAlias(t *testing.T) {
	color := bpcore.NewEnumType(bpcore.NewUintType(3), false)
	speed := bpcore.NewAliasType(bpcore.NewIntType(16))
	msg := bpcore.NewMessageType(false, []bpcore.MessageFieldDescriptor{
		{Offset: 0, Type: color, Name: "color"},
		{Offset: 1, Type: speed, Name: "speed"},
	})
	data := make([]byte, 3)
	data[0] = 2
	v := int16(-300)
	data[1] = byte(v)
	data[2] = byte(v >> 8)

	var buf bytes.Buffer
	if err := Write(&buf, msg, data); err != nil {
		t.Fatal(err)
	}
	want := `{"color":2,"speed":-300}`
	if buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}
