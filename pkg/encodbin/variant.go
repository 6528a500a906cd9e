// Copyright 2021 github.com/gagliardetto
// This file has been modified by github.com/gagliardetto
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encodbin

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// TypeID identifies which concrete type a BaseVariant's Impl holds. Only
// as many leading bytes as the chosen TypeIDEncoding needs are
// meaningful.
type TypeID [8]byte

// NoTypeIDDefaultID is the zero TypeID, used when no variant has been
// selected yet.
var NoTypeIDDefaultID = TypeID{}

func TypeIDFromUint8(v uint8) (t TypeID) {
	t[0] = v
	return
}

func TypeIDFromUint32(v uint32, order binary.ByteOrder) (t TypeID) {
	order.PutUint32(t[:4], v)
	return
}

func TypeIDFromUint64(v uint64, order binary.ByteOrder) (t TypeID) {
	order.PutUint64(t[:8], v)
	return
}

func (t TypeID) Uint8() uint8 { return t[0] }

func (t TypeID) Uint32() uint32 { return binary.LittleEndian.Uint32(t[:4]) }

func (t TypeID) Uint64() uint64 { return binary.LittleEndian.Uint64(t[:8]) }

// TypeIDEncoding picks how wide, and in what order, a variant's
// discriminant is read off and written to the wire.
type TypeIDEncoding int

const (
	Uint8TypeIDEncoding TypeIDEncoding = iota
	Uint32TypeIDEncoding
	Uint64TypeIDEncoding
)

// VariantType associates a human-readable name with the concrete Go type
// (a nil pointer of that type) instantiated for a given variant index.
type VariantType struct {
	Name string
	Type interface{}
}

// VariantDefinition orders a family of instruction/account variants and
// knows how to read and write the selecting discriminant.
type VariantDefinition struct {
	encoding TypeIDEncoding
	variants []VariantType
	order    binary.ByteOrder
}

// NewVariantDefinition builds a definition whose variants are selected
// positionally: the Nth entry in variants corresponds to discriminant N.
func NewVariantDefinition(encoding TypeIDEncoding, variants []VariantType) *VariantDefinition {
	return &VariantDefinition{encoding: encoding, variants: variants, order: binary.LittleEndian}
}

func (def *VariantDefinition) typeIDForIndex(idx int) TypeID {
	switch def.encoding {
	case Uint8TypeIDEncoding:
		return TypeIDFromUint8(uint8(idx))
	case Uint64TypeIDEncoding:
		return TypeIDFromUint64(uint64(idx), def.order)
	default:
		return TypeIDFromUint32(uint32(idx), def.order)
	}
}

func (def *VariantDefinition) indexForTypeID(id TypeID) (int, bool) {
	for i := range def.variants {
		if def.typeIDForIndex(i) == id {
			return i, true
		}
	}
	return 0, false
}

// BaseVariant is embedded by instruction/account wrapper types that hold
// one of several possible concrete payloads (Impl), tagged by TypeID.
type BaseVariant struct {
	TypeID TypeID
	Impl   interface{}
}

// UnmarshalBinaryVariant reads the discriminant per def's encoding,
// resolves it to a concrete type, and decodes that type's fields into a
// freshly allocated Impl.
func (v *BaseVariant) UnmarshalBinaryVariant(decoder *Decoder, def *VariantDefinition) error {
	var id TypeID
	switch def.encoding {
	case Uint8TypeIDEncoding:
		b, err := decoder.ReadUint8()
		if err != nil {
			return err
		}
		id = TypeIDFromUint8(b)
	case Uint64TypeIDEncoding:
		n, err := decoder.ReadUint64(def.order)
		if err != nil {
			return err
		}
		id = TypeIDFromUint64(n, def.order)
	default:
		n, err := decoder.ReadUint32(def.order)
		if err != nil {
			return err
		}
		id = TypeIDFromUint32(n, def.order)
	}

	idx, ok := def.indexForTypeID(id)
	if !ok {
		return fmt.Errorf("encodbin: unknown variant type id %v", id)
	}

	implType := reflect.TypeOf(def.variants[idx].Type)
	if implType.Kind() == reflect.Ptr {
		implType = implType.Elem()
	}
	newImpl := reflect.New(implType)
	if err := decoder.Decode(newImpl.Interface()); err != nil {
		return fmt.Errorf("variant %s: %w", def.variants[idx].Name, err)
	}

	v.TypeID = id
	v.Impl = newImpl.Interface()
	return nil
}
