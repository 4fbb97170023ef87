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

package schema

import (
	"strings"
	"testing"

	"github.com/bitfluxio/bpcore"
)

func TestDescribe(t *testing.T) {
	msg := bpcore.NewMessageType(true, []bpcore.MessageFieldDescriptor{
		{Offset: 0, Type: bpcore.NewUintType(8), Name: "a"},
		{Offset: 1, Type: bpcore.NewArrayType(bpcore.NewUintType(8), 4, false), Name: "xs"},
	}).Body.(*bpcore.MessageDescriptor)

	doc := Describe(msg)
	if !doc.Extensible {
		t.Fatal("expected extensible to be true")
	}
	if len(doc.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(doc.Fields))
	}
	if doc.Fields[1].Kind != "array" || doc.Fields[1].Of != "uint" || doc.Fields[1].Cap != 4 {
		t.Fatalf("unexpected array field doc: %+v", doc.Fields[1])
	}
	if doc.Fingerprint == "" {
		t.Fatal("expected non-empty fingerprint")
	}
}

func TestYAML(t *testing.T) {
	msg := bpcore.NewMessageType(false, []bpcore.MessageFieldDescriptor{
		{Offset: 0, Type: bpcore.NewBoolType(), Name: "ok"},
	}).Body.(*bpcore.MessageDescriptor)

	out, err := YAML(msg)
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(string(out), "ok") {
		t.Fatalf("expected field name in output, got %s", out)
	}
}
