// Copyright 2021 github.com/gagliardetto
// This file has been modified by github.com/gagliardetto
//
// Copyright 2020 dfuse Platform Inc.
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
	"io"
	"math"
	"reflect"
)

// Encoder is the write-side counterpart of Decoder: it serializes a
// value's exported fields in declaration order using the same
// fixed-width little-endian, length-prefixed-string layout. A type
// implementing BinaryMarshaler is handed the encoder directly instead
// of being walked by reflection.
type Encoder struct {
	w               io.Writer
	currentFieldOpt *fieldOption
}

// NewBinEncoder wraps w for sequential encoding.
func NewBinEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// NewBorshEncoder is an alias of NewBinEncoder.
func NewBorshEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) write(b []byte) error {
	_, err := e.w.Write(b)
	return err
}

// Encode writes v, which may be a struct, pointer, or scalar.
func (e *Encoder) Encode(v interface{}) error {
	if m, ok := v.(BinaryMarshaler); ok {
		return m.MarshalWithEncoder(e)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	return e.encodeValue(rv)
}

func (e *Encoder) encodeValue(rv reflect.Value) error {
	if rv.CanAddr() {
		if m, ok := rv.Addr().Interface().(BinaryMarshaler); ok {
			return m.MarshalWithEncoder(e)
		}
	}
	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if field.PkgPath != "" {
				continue
			}
			if tag, ok := field.Tag.Lookup("bin"); ok && tag == "-" {
				continue
			}
			if err := e.encodeValue(rv.Field(i)); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
		return nil
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(buf), rv)
			return e.write(buf)
		}
		for i := 0; i < rv.Len(); i++ {
			if err := e.encodeValue(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return e.WriteBytes(rv.Bytes(), true)
		}
		if err := e.WriteUint32(uint32(rv.Len()), defaultByteOrder); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := e.encodeValue(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Bool:
		return e.WriteBool(rv.Bool())
	case reflect.Uint8:
		return e.WriteUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return e.WriteUint16(uint16(rv.Uint()), defaultByteOrder)
	case reflect.Uint32:
		return e.WriteUint32(uint32(rv.Uint()), defaultByteOrder)
	case reflect.Uint64:
		return e.WriteUint64(rv.Uint(), defaultByteOrder)
	case reflect.Int8:
		return e.write([]byte{byte(int8(rv.Int()))})
	case reflect.Int16:
		return e.WriteInt16(int16(rv.Int()), defaultByteOrder)
	case reflect.Int32:
		return e.WriteInt32(int32(rv.Int()), defaultByteOrder)
	case reflect.Int64:
		return e.WriteInt64(rv.Int(), defaultByteOrder)
	case reflect.String:
		return e.WriteRustString(rv.String())
	default:
		return fmt.Errorf("encodbin: unsupported kind %s", rv.Kind())
	}
}

func (e *Encoder) WriteBool(b bool) error {
	if b {
		return e.write([]byte{1})
	}
	return e.write([]byte{0})
}

func (e *Encoder) WriteUint8(v uint8) error { return e.write([]byte{v}) }

func (e *Encoder) WriteInt8(v int8) error { return e.write([]byte{byte(v)}) }

func (e *Encoder) WriteUint16(v uint16, order binary.ByteOrder) error {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	return e.write(b)
}

func (e *Encoder) WriteInt16(v int16, order binary.ByteOrder) error {
	return e.WriteUint16(uint16(v), order)
}

func (e *Encoder) WriteUint32(v uint32, order binary.ByteOrder) error {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	return e.write(b)
}

func (e *Encoder) WriteInt32(v int32, order binary.ByteOrder) error {
	return e.WriteUint32(uint32(v), order)
}

func (e *Encoder) WriteUint64(v uint64, order binary.ByteOrder) error {
	b := make([]byte, 8)
	order.PutUint64(b, v)
	return e.write(b)
}

func (e *Encoder) WriteInt64(v int64, order binary.ByteOrder) error {
	return e.WriteUint64(uint64(v), order)
}

func (e *Encoder) WriteFloat32(v float32, order binary.ByteOrder) error {
	return e.WriteUint32(math.Float32bits(v), order)
}

func (e *Encoder) WriteFloat64(v float64, order binary.ByteOrder) error {
	return e.WriteUint64(math.Float64bits(v), order)
}

func (e *Encoder) WriteUint128(v Uint128, order binary.ByteOrder) error {
	b := make([]byte, 16)
	if order == binary.LittleEndian {
		defaultByteOrder.PutUint64(b[:8], v.Lo)
		defaultByteOrder.PutUint64(b[8:], v.Hi)
	} else {
		defaultByteOrder.PutUint64(b[:8], v.Hi)
		defaultByteOrder.PutUint64(b[8:], v.Lo)
	}
	return e.write(b)
}

func (e *Encoder) WriteInt128(v Int128, order binary.ByteOrder) error {
	return e.WriteUint128(Uint128(v), order)
}

// WriteBytes writes b, optionally preceded by a u32-LE length prefix.
func (e *Encoder) WriteBytes(b []byte, lenPrefixed bool) error {
	if lenPrefixed {
		if err := e.WriteUint32(uint32(len(b)), defaultByteOrder); err != nil {
			return err
		}
	}
	return e.write(b)
}

// WriteString writes s as a u32-LE length prefix followed by its bytes,
// the Borsh/Rust string encoding.
func (e *Encoder) WriteString(s string) error {
	return e.WriteBytes([]byte(s), true)
}

// WriteRustString is an alias of WriteString.
func (e *Encoder) WriteRustString(s string) error {
	return e.WriteString(s)
}

// WriteCompactU16 writes n as Solana's shortvec-encoded compact-u16.
func (e *Encoder) WriteCompactU16(n int) error {
	var buf []byte
	EncodeCompactU16Length(&buf, n)
	return e.write(buf)
}

// EncodeCompactU16Length appends n to *buf using Solana's shortvec
// compact-u16 encoding: 7 bits of value per byte, continuation in the
// high bit of all but the last byte.
func EncodeCompactU16Length(buf *[]byte, n int) {
	v := uint32(n)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			*buf = append(*buf, b)
			return
		}
		*buf = append(*buf, b|0x80)
	}
}
