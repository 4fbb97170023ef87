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

// Package schema projects a compiled-in bpcore descriptor graph into a
// human-readable document, the way a table is documented with a
// definition.yaml file. Nothing here is consulted by
// bpcore.Encode/Decode; it exists purely so a person (or a tool like
// cmd/bpdescribe) can see the shape of a message without reading Go
// source.
package schema

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/bitfluxio/bpcore"
)

// Doc is the YAML-serializable projection of a MessageDescriptor.
type Doc struct {
	Extensible  bool       `json:"extensible"`
	Nbits       int        `json:"nbits"`
	BytesLen    int        `json:"bytesLength"`
	Fingerprint string     `json:"fingerprint"`
	Fields      []FieldDoc `json:"fields"`
}

// FieldDoc is the projection of one MessageFieldDescriptor.
type FieldDoc struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Nbits  int    `json:"nbits"`
	Offset int    `json:"offset"`
	// Of is populated for Array (element kind) and Enum/Alias
	// (backing kind) fields, so the document is readable without
	// chasing a separate "elementType" block.
	Of string `json:"of,omitempty"`
	// Cap is populated for Array fields.
	Cap int `json:"cap,omitempty"`
	// Extensible marks a field whose own type carries a length
	// prefix (a message, array, or enum declared extensible).
	Extensible bool `json:"extensible,omitempty"`
}

// Describe projects desc into a Doc.
func Describe(desc *bpcore.MessageDescriptor) *Doc {
	d := &Doc{
		Extensible:  desc.Extensible,
		Nbits:       desc.Nbits,
		BytesLen:    desc.BytesLength(),
		Fingerprint: fmt.Sprintf("%016x", bpcore.Fingerprint(desc)),
	}
	for i := range desc.Fields {
		d.Fields = append(d.Fields, describeField(&desc.Fields[i]))
	}
	return d
}

func describeField(f *bpcore.MessageFieldDescriptor) FieldDoc {
	fd := FieldDoc{
		Name:   f.Name,
		Kind:   f.Type.Kind.String(),
		Nbits:  f.Type.Nbits,
		Offset: f.Offset,
	}
	switch f.Type.Kind {
	case bpcore.Array:
		a := f.Type.Body.(*bpcore.ArrayDescriptor)
		fd.Of = a.Element.Kind.String()
		fd.Cap = a.Cap
		fd.Extensible = a.Extensible
	case bpcore.Enum:
		e := f.Type.Body.(*bpcore.EnumDescriptor)
		fd.Of = e.Uint.Kind.String()
		fd.Extensible = e.Extensible
	case bpcore.Alias:
		al := f.Type.Body.(*bpcore.AliasDescriptor)
		fd.Of = al.To.Kind.String()
	case bpcore.Message:
		m := f.Type.Body.(*bpcore.MessageDescriptor)
		fd.Extensible = m.Extensible
	}
	return fd
}

// YAML renders desc's Doc as a YAML document, the same shape the
// teacher's tables describe themselves with in definition.yaml.
func YAML(desc *bpcore.MessageDescriptor) ([]byte, error) {
	return yaml.Marshal(Describe(desc))
}
