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
	"math"
	"reflect"
)

var defaultByteOrder = binary.LittleEndian

// fieldOption carries a per-field byte-order override read off a `bin:"order=be"`
// style tag. Only the Order is consulted today, by the u128 helpers.
type fieldOption struct {
	Order binary.ByteOrder
}

// Decoder reads a little-endian Borsh/bin-encoded value out of a byte
// slice: every exported struct field is consumed in declaration order,
// with no length prefixes beyond what the field's own type implies (a
// Borsh string or byte slice is a u32-LE length followed by its bytes).
// Fields tagged `bin:"-"` are skipped. A type implementing
// BinaryUnmarshaler is handed the decoder directly instead of being
// walked by reflection.
type Decoder struct {
	data            []byte
	pos             int
	currentFieldOpt *fieldOption
}

// NewBinDecoder wraps b for sequential decoding.
func NewBinDecoder(b []byte) *Decoder {
	return &Decoder{data: b}
}

// NewBorshDecoder is an alias of NewBinDecoder: every decode in this
// package already follows Borsh's fixed-field-order, length-prefixed-string
// convention.
func NewBorshDecoder(b []byte) *Decoder {
	return &Decoder{data: b}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.data) - d.pos }

// Peek returns the next n bytes without advancing the read position.
func (d *Decoder) Peek(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.data) {
		return nil, fmt.Errorf("encodbin: need %d bytes, have %d", n, d.Remaining())
	}
	return d.data[d.pos : d.pos+n], nil
}

func (d *Decoder) take(n int) ([]byte, error) {
	b, err := d.Peek(n)
	if err != nil {
		return nil, err
	}
	d.pos += n
	return b, nil
}

// Read copies len(p) bytes into p, advancing the read position.
func (d *Decoder) Read(p []byte) (int, error) {
	b, err := d.take(len(p))
	if err != nil {
		return 0, err
	}
	copy(p, b)
	return len(p), nil
}

// ReadByte reads a single byte.
func (d *Decoder) ReadByte() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadNBytes reads and returns a copy of the next n bytes.
func (d *Decoder) ReadNBytes(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadByteSlice reads a u32-LE length prefix followed by that many bytes.
func (d *Decoder) ReadByteSlice() ([]byte, error) {
	n, err := d.ReadUint32(defaultByteOrder)
	if err != nil {
		return nil, err
	}
	return d.ReadNBytes(int(n))
}

// ReadString reads a Borsh string: a u32-LE length prefix followed by
// that many UTF-8 bytes.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadByteSlice()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadCompactU16 reads Solana's shortvec-encoded compact-u16: 1 to 3
// bytes, 7 bits of value per byte, continuation in the high bit.
func (d *Decoder) ReadCompactU16() (int, error) {
	var out int
	for shift := uint(0); shift < 3; shift++ {
		b, err := d.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("encodbin: compact-u16: %w", err)
		}
		out |= int(b&0x7f) << (shift * 7)
		if b&0x80 == 0 {
			return out, nil
		}
	}
	return out, fmt.Errorf("encodbin: compact-u16 longer than 3 bytes")
}

// ReadCompactU16Length is an alias of ReadCompactU16, matching Solana's
// own naming of the same shortvec length prefix in different contexts.
func (d *Decoder) ReadCompactU16Length() (int, error) {
	return d.ReadCompactU16()
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.ReadByte()
	return b, err
}

func (d *Decoder) ReadInt8() (int8, error) {
	b, err := d.ReadByte()
	return int8(b), err
}

func (d *Decoder) ReadUint16(order binary.ByteOrder) (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (d *Decoder) ReadInt16(order binary.ByteOrder) (int16, error) {
	v, err := d.ReadUint16(order)
	return int16(v), err
}

func (d *Decoder) ReadUint32(order binary.ByteOrder) (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (d *Decoder) ReadInt32(order binary.ByteOrder) (int32, error) {
	v, err := d.ReadUint32(order)
	return int32(v), err
}

func (d *Decoder) ReadUint64(order binary.ByteOrder) (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

func (d *Decoder) ReadInt64(order binary.ByteOrder) (int64, error) {
	v, err := d.ReadUint64(order)
	return int64(v), err
}

func (d *Decoder) ReadFloat32(order binary.ByteOrder) (float32, error) {
	v, err := d.ReadUint32(order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (d *Decoder) ReadFloat64(order binary.ByteOrder) (float64, error) {
	v, err := d.ReadUint64(order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (d *Decoder) ReadUint128(order binary.ByteOrder) (Uint128, error) {
	b, err := d.take(16)
	if err != nil {
		return Uint128{}, err
	}
	out := make([]byte, 16)
	copy(out, b)
	if order == binary.LittleEndian {
		return Uint128{Lo: defaultByteOrder.Uint64(out[:8]), Hi: defaultByteOrder.Uint64(out[8:]), Endianness: order}, nil
	}
	return Uint128{Hi: defaultByteOrder.Uint64(out[:8]), Lo: defaultByteOrder.Uint64(out[8:]), Endianness: order}, nil
}

func (d *Decoder) ReadInt128(order binary.ByteOrder) (Int128, error) {
	u, err := d.ReadUint128(order)
	return Int128(u), err
}

func (d *Decoder) ReadFloat128(order binary.ByteOrder) (Float128, error) {
	u, err := d.ReadUint128(order)
	return Float128(u), err
}

// ReadU128LE reads a 16-byte little-endian unsigned integer at the given
// offset of a standalone buffer, returning it as a Uint128. Used by
// protocol decoders working off a raw []byte rather than a Decoder.
func ReadU128LE(data []byte, offset int) (Uint128, bool) {
	if offset < 0 || offset+16 > len(data) {
		return Uint128{}, false
	}
	lo := defaultByteOrder.Uint64(data[offset : offset+8])
	hi := defaultByteOrder.Uint64(data[offset+8 : offset+16])
	return Uint128{Lo: lo, Hi: hi, Endianness: defaultByteOrder}, true
}

// Decode populates v, which must be a non-nil pointer, reading fields in
// declaration order from the wrapped buffer.
func (d *Decoder) Decode(v interface{}) error {
	if u, ok := v.(BinaryUnmarshaler); ok {
		return u.UnmarshalWithDecoder(d)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("encodbin: Decode requires a non-nil pointer, got %T", v)
	}
	return d.decodeValue(rv.Elem())
}

func (d *Decoder) decodeValue(rv reflect.Value) error {
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(BinaryUnmarshaler); ok {
			return u.UnmarshalWithDecoder(d)
		}
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decodeValue(rv.Elem())
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if field.PkgPath != "" {
				continue // unexported
			}
			if tag, ok := field.Tag.Lookup("bin"); ok && tag == "-" {
				continue
			}
			if err := d.decodeValue(rv.Field(i)); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
		}
		return nil
	case reflect.Array:
		n := rv.Len()
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := d.take(n)
			if err != nil {
				return err
			}
			reflect.Copy(rv, reflect.ValueOf(b))
			return nil
		}
		for i := 0; i < n; i++ {
			if err := d.decodeValue(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		n, err := d.ReadUint32(defaultByteOrder)
		if err != nil {
			return err
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := d.ReadNBytes(int(n))
			if err != nil {
				return err
			}
			rv.SetBytes(b)
			return nil
		}
		out := reflect.MakeSlice(rv.Type(), int(n), int(n))
		for i := 0; i < int(n); i++ {
			if err := d.decodeValue(out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Bool:
		b, err := d.take(1)
		if err != nil {
			return err
		}
		rv.SetBool(b[0] != 0)
		return nil
	case reflect.Uint8:
		b, err := d.take(1)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(b[0]))
		return nil
	case reflect.Uint16:
		b, err := d.take(2)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(defaultByteOrder.Uint16(b)))
		return nil
	case reflect.Uint32:
		b, err := d.take(4)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(defaultByteOrder.Uint32(b)))
		return nil
	case reflect.Uint64:
		b, err := d.take(8)
		if err != nil {
			return err
		}
		rv.SetUint(defaultByteOrder.Uint64(b))
		return nil
	case reflect.Int8:
		b, err := d.take(1)
		if err != nil {
			return err
		}
		rv.SetInt(int64(int8(b[0])))
		return nil
	case reflect.Int16:
		b, err := d.take(2)
		if err != nil {
			return err
		}
		rv.SetInt(int64(int16(defaultByteOrder.Uint16(b))))
		return nil
	case reflect.Int32:
		b, err := d.take(4)
		if err != nil {
			return err
		}
		rv.SetInt(int64(int32(defaultByteOrder.Uint32(b))))
		return nil
	case reflect.Int64:
		b, err := d.take(8)
		if err != nil {
			return err
		}
		rv.SetInt(int64(defaultByteOrder.Uint64(b)))
		return nil
	case reflect.String:
		lb, err := d.take(4)
		if err != nil {
			return err
		}
		n := int(defaultByteOrder.Uint32(lb))
		sb, err := d.take(n)
		if err != nil {
			return err
		}
		rv.SetString(string(sb))
		return nil
	default:
		return fmt.Errorf("encodbin: unsupported kind %s", rv.Kind())
	}
}
