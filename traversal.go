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

package bpcore

// encodeDecodeType dispatches on desc.Kind. This is the traversal's
// single re-entry point: the top-level Encode/Decode entry functions
// and every message field call through here.
func encodeDecodeType(desc *TypeDescriptor, ctx *Context, data []byte) {
	switch desc.Kind {
	case Bool, Uint, Byte:
		encodeDecodeBase(desc.Nbits, ctx, data)
	case Int:
		encodeDecodeInt(desc.Nbits, desc.Size, ctx, data)
	case Enum:
		desc.Body.(*EnumDescriptor).process(ctx, data)
	case Alias:
		desc.Body.(*AliasDescriptor).process(ctx, data)
	case Array:
		desc.Body.(*ArrayDescriptor).process(ctx, data)
	case Message:
		desc.Body.(*MessageDescriptor).process(ctx, data)
	}
}

// process walks a message's fields: an optional 16-bit ahead prefix,
// then each field in declared order, then (on decode of an extensible
// message) a skip forward past any trailing fields a newer writer
// appended.
func (m *MessageDescriptor) process(ctx *Context, data []byte) {
	iStart := ctx.I
	var ahead uint16
	if m.Extensible {
		if ctx.IsEncode {
			ahead = uint16(m.Nbits)
		}
		encodeDecodeAhead(ctx, 16, &ahead)
	}

	for i := range m.Fields {
		f := &m.Fields[i]
		sub := data[f.Offset : f.Offset+f.Type.Size]
		encodeDecodeType(f.Type, ctx, sub)
	}

	if m.Extensible && !ctx.IsEncode {
		ito := iStart + 16 + int(ahead)
		if ito > ctx.I {
			ctx.I = ito
		}
	}
}

// process implements the alias unwrap: forward to the aliased type's
// handler. Aliases chain at most one step by schema constraint, so
// this never recurses into another Alias.
func (a *AliasDescriptor) process(ctx *Context, data []byte) {
	switch a.To.Kind {
	case Bool, Uint, Byte:
		encodeDecodeBase(a.To.Nbits, ctx, data)
	case Int:
		encodeDecodeInt(a.To.Nbits, a.To.Size, ctx, data)
	case Array:
		a.To.Body.(*ArrayDescriptor).process(ctx, data)
	}
}

// process implements the enum traversal: the backing uint value, with
// an optional 8-bit ahead prefix when extensible. The prefix is
// consumed on decode but otherwise unused — an enum carries a single
// scalar, so there is no trailing payload to skip the way a message
// or array would skip unknown fields/elements.
func (e *EnumDescriptor) process(ctx *Context, data []byte) {
	if e.Extensible {
		var ahead uint16
		if ctx.IsEncode {
			ahead = uint16(e.Uint.Nbits)
		}
		encodeDecodeAhead(ctx, 8, &ahead)
	}
	encodeDecodeBase(e.Uint.Nbits, ctx, data)
}

// integerFamilyKind resolves the effective kind used for the array
// fast-path eligibility check: byte/uint/enum/int are eligible
// directly; an alias to byte/uint/int resolves to the aliased kind
// (an alias may never wrap an enum).
func integerFamilyKind(t *TypeDescriptor) (Kind, bool) {
	switch t.Kind {
	case Byte, Uint, Enum, Int:
		return t.Kind, true
	case Alias:
		to := t.Body.(*AliasDescriptor).To
		switch to.Kind {
		case Byte, Uint, Int:
			return to.Kind, true
		}
	}
	return 0, false
}

// process walks an array's elements: an optional 16-bit ahead prefix,
// a fast path for contiguous standard-width integer-family elements
// (a single wide base copy, plus a per-element sign post-pass for
// Int), a slow path that dispatches each element individually
// otherwise, and, on decode of an extensible array, a forward move of
// the cursor to iStart+16+ahead*Cap (ahead being the Cap the writer
// declared) when that lies past the cursor.
func (a *ArrayDescriptor) process(ctx *Context, data []byte) {
	iStart := ctx.I
	var ahead uint16
	if a.Extensible {
		if ctx.IsEncode {
			ahead = uint16(a.Cap)
		}
		encodeDecodeAhead(ctx, 16, &ahead)
	}

	elem := a.Element
	resolvedKind, eligible := integerFamilyKind(elem)
	if eligible && isStandardWidth(elem.Nbits) {
		encodeDecodeBase(elem.Nbits*a.Cap, ctx, data)
		if resolvedKind == Int {
			off := 0
			for k := 0; k < a.Cap; k++ {
				signExtend(elem.Size, elem.Nbits, ctx, data[off:off+elem.Size])
				off += elem.Size
			}
		}
	} else {
		off := 0
		for k := 0; k < a.Cap; k++ {
			processArrayElement(elem, ctx, data[off:off+elem.Size])
			off += elem.Size
		}
	}

	if a.Extensible && !ctx.IsEncode {
		ito := iStart + 16 + int(ahead)*a.Cap
		if ito > ctx.I {
			ctx.I = ito
		}
	}
}

// processArrayElement dispatches a single array element in the slow
// path. Enum elements are copied as a bare fixed-width value, never
// with their own extensibility prefix: bitproto's array encoder never
// emits a per-element enum prefix, only a standalone enum field can
// be individually extensible.
func processArrayElement(elem *TypeDescriptor, ctx *Context, data []byte) {
	switch elem.Kind {
	case Bool, Uint, Byte, Enum:
		encodeDecodeBase(elem.Nbits, ctx, data)
	case Int:
		encodeDecodeInt(elem.Nbits, elem.Size, ctx, data)
	case Alias:
		elem.Body.(*AliasDescriptor).process(ctx, data)
	case Message:
		elem.Body.(*MessageDescriptor).process(ctx, data)
	}
}
