// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"fmt"
	"math"
)

// RecordKind distinguishes the two record identity shapes a Set can hold,
// selected once per Set by its FMTID (§3 "Named vs Numeric set").
type RecordKind uint8

const (
	// RecordNumeric records are keyed by a 32-bit property identifier.
	RecordNumeric RecordKind = iota

	// RecordNamed records are keyed by a UTF-16LE name.
	RecordNamed
)

// recordHeaderSize is the minimum byte length of a record: the 4-byte
// size, the 4-byte entry_type/name_size, the 1-byte reserved field and
// the 4-byte value_type (§4.2 step 1).
const recordHeaderSize = 13

// Record is one decoded property, either numeric or named, carrying a
// single typed value (§3 "Record"). The value payload is kept as raw
// bytes plus a type tag rather than promoted to a decode-time sum type,
// so that the accessor surface can re-derive any projection and unknown
// tags still round-trip.
type Record struct {
	Kind RecordKind
	Size uint32

	// EntryType holds the property identifier. Only meaningful when
	// Kind == RecordNumeric; zero otherwise (the "not available" value
	// the EntryType accessor is documented to return, §9).
	EntryType uint32

	// EntryName holds the raw UTF-16LE name bytes, no terminator
	// required. Only meaningful when Kind == RecordNamed.
	EntryName []byte

	// ValueType is the raw 32-bit variant tag as it appeared on the wire.
	ValueType ValueType

	// ValueName holds the raw UTF-16LE stream name, present only when
	// ValueType == VTStream exactly (§4.2 step 5).
	ValueName []byte

	// ValueData holds the raw, post-layout payload bytes: exactly the
	// scalar for fixed-width types, the encoded bytes (with any stream
	// terminator) for strings, and for vectors the concatenation of
	// length-prefixed items including their 4-byte length prefixes and
	// any 2-byte alignment padding present in the stream (§3).
	ValueData []byte

	// AsciiCodepage is the codepage used to decode VT_LPSTR/VT_BSTR
	// payloads, supplied by the caller of the decoder.
	AsciiCodepage int

	// Anomalies records non-fatal observations made while decoding this
	// record. The only one recorded is an entry name whose byte length
	// is odd.
	Anomalies []string
}

// decodeRecord parses one record from data, which must hold the record's
// own size prefix at offset 0 (§4.2). named selects whether the record
// is keyed by name (true) or by numeric property identifier (false), a
// decision the enclosing Set has already made from its FMTID.
func decodeRecord(data []byte, named bool, codepage int, maxAlloc uint32) (*Record, error) {
	if len(data) < recordHeaderSize {
		return nil, fmt.Errorf("%w: record header needs %d bytes, have %d",
			ErrInputTruncated, recordHeaderSize, len(data))
	}

	r := newReader(data)

	size, err := r.u32()
	if err != nil {
		return nil, err
	}
	if size < recordHeaderSize || size > uint32(len(data)) {
		return nil, fmt.Errorf("%w: record size %d outside [%d, %d]",
			ErrValueOutOfBounds, size, recordHeaderSize, len(data))
	}

	rec := &Record{Size: size, AsciiCodepage: codepage}
	if named {
		rec.Kind = RecordNamed
	} else {
		rec.Kind = RecordNumeric
	}

	entryTypeOrNameSize, err := r.u32()
	if err != nil {
		return nil, err
	}

	// Offset 8: a single reserved byte, ignored other than by the debug
	// trace collaborator.
	reserved, err := r.u8()
	if err != nil {
		return nil, err
	}
	traceField(8, "reserved", reserved)

	if named {
		nameSize := entryTypeOrNameSize
		if nameSize%2 != 0 {
			rec.Anomalies = append(rec.Anomalies,
				fmt.Sprintf("entry name size %d is not a multiple of 2", nameSize))
		}
		if nameSize > r.remaining() {
			return nil, fmt.Errorf("%w: entry name size %d exceeds remaining %d",
				ErrInputTruncated, nameSize, r.remaining())
		}
		name, err := r.bytes(nameSize)
		if err != nil {
			return nil, err
		}
		rec.EntryName = name
	} else {
		rec.EntryType = entryTypeOrNameSize
	}

	rawValueType, err := r.u32()
	if err != nil {
		return nil, err
	}
	rec.ValueType = ValueType(rawValueType)
	trace("record size=%d kind=%v value_type=%s", size, rec.Kind, rec.ValueType)

	masked := rec.ValueType & typeMask
	if masked.IsArray() {
		return nil, fmt.Errorf("%w: VT_ARRAY is not supported (value_type=0x%08x)",
			ErrUnsupportedValue, uint32(rec.ValueType))
	}

	base := masked.Base()
	width, isFixed := fixedWidth(base)
	isVariable := hasVariableData(base)
	if !isFixed && !isVariable {
		return nil, fmt.Errorf("%w: unrecognized value type tag 0x%04x",
			ErrUnsupportedValue, uint32(base))
	}

	// §4.2 step 5: VT_STREAM carries an extra name prefix before its
	// payload. The comparison is against the raw, unmasked tag exactly
	// as spec.md states, so a theoretical "vector of streams" tag does
	// not trigger this.
	if rec.ValueType == VTStream {
		nameSize, err := r.u32()
		if err != nil {
			return nil, err
		}
		if nameSize > r.remaining() {
			return nil, fmt.Errorf("%w: value name size %d exceeds remaining %d",
				ErrInputTruncated, nameSize, r.remaining())
		}
		name, err := r.bytes(nameSize)
		if err != nil {
			return nil, err
		}
		rec.ValueName = name

		if _, err := r.u16(); err != nil {
			return nil, err
		}
	}

	if rec.ValueType.IsVector() {
		data, err := decodeVector(r, base, width, isFixed, maxAlloc)
		if err != nil {
			return nil, err
		}
		rec.ValueData = data
		return finishRecord(rec, r, size), nil
	}

	if isFixed {
		if width == 0 {
			// VT_EMPTY: no payload at all (§9 Open Questions).
			rec.ValueData = nil
			return finishRecord(rec, r, size), nil
		}
		v, err := r.bytes(width)
		if err != nil {
			return nil, err
		}
		rec.ValueData = v
		return finishRecord(rec, r, size), nil
	}

	// §4.2 step 7: non-vector variable-width payload.
	valueDataSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	if base == VTLPWStr {
		if valueDataSize > math.MaxUint32/2 {
			return nil, fmt.Errorf("%w: VT_LPWSTR character count %d overflows on doubling",
				ErrValueOutOfBounds, valueDataSize)
		}
		valueDataSize *= 2
	}
	if valueDataSize > r.remaining() {
		return nil, fmt.Errorf("%w: value data size %d exceeds remaining %d",
			ErrInputTruncated, valueDataSize, r.remaining())
	}
	if valueDataSize > maxAlloc {
		return nil, fmt.Errorf("%w: value data size %d exceeds allocation ceiling %d",
			ErrValueExceedsMaximum, valueDataSize, maxAlloc)
	}
	v, err := r.bytes(valueDataSize)
	if err != nil {
		return nil, err
	}
	rec.ValueData = v
	return finishRecord(rec, r, size), nil
}

// finishRecord applies §4.2 step 8: any bytes between the cursor and
// the record's declared size are trailing slack, ignored by the
// decoder and reported only to the debug trace.
func finishRecord(rec *Record, r *reader, size uint32) *Record {
	if r.remaining() > 0 {
		trace("record trailing bytes: %d unread of declared size %d", r.remaining(), size)
	}
	return rec
}

// decodeVector parses the VT_VECTOR payload starting right after
// value_type, per §4.2 step 6 (the VT_STREAM name prefix is only read
// for the non-vector VT_STREAM tag, so it never precedes a vector). It returns the raw concatenation of the vector's wire bytes
// (number_of_values excluded; that field is consumed but not retained,
// mirroring the non-vector case where only the payload is kept).
func decodeVector(r *reader, base ValueType, elementWidth uint32, fixed bool, maxAlloc uint32) ([]byte, error) {
	numberOfValues, err := r.u32()
	if err != nil {
		return nil, err
	}

	if fixed {
		if elementWidth != 0 && numberOfValues > math.MaxUint32/elementWidth {
			return nil, fmt.Errorf("%w: vector count %d overflows at element width %d",
				ErrValueOutOfBounds, numberOfValues, elementWidth)
		}
		total := numberOfValues * elementWidth
		if total > r.remaining() {
			return nil, fmt.Errorf("%w: vector payload %d exceeds remaining %d",
				ErrInputTruncated, total, r.remaining())
		}
		if total > maxAlloc {
			return nil, fmt.Errorf("%w: vector payload %d exceeds allocation ceiling %d",
				ErrValueExceedsMaximum, total, maxAlloc)
		}
		return r.bytes(total)
	}

	// Variable-width element case: each element is at least a 4-byte
	// length prefix, so number_of_values can't plausibly exceed
	// remaining/4; this also rejects the 0xFFFFFFFF sentinel used by
	// malformed/hostile streams.
	if numberOfValues == 0xFFFFFFFF || numberOfValues > r.remaining()/4 {
		return nil, fmt.Errorf("%w: vector element count %d is not plausible for %d remaining bytes",
			ErrValueOutOfBounds, numberOfValues, r.remaining())
	}

	start := r.cursor
	var total uint64
	for i := uint32(0); i < numberOfValues; i++ {
		rawElementSize, err := r.u32()
		if err != nil {
			return nil, err
		}
		elementSize := rawElementSize
		if base == VTLPWStr {
			if elementSize > math.MaxUint32/2 {
				return nil, fmt.Errorf("%w: vector element character count %d overflows on doubling",
					ErrValueOutOfBounds, elementSize)
			}
			elementSize *= 2
		}

		total += 4 + uint64(elementSize)
		if total > uint64(maxAlloc) {
			return nil, fmt.Errorf("%w: cumulative vector payload exceeds allocation ceiling %d",
				ErrValueExceedsMaximum, maxAlloc)
		}

		if _, err := r.bytes(elementSize); err != nil {
			return nil, err
		}

		// §9 Open Questions: the trailing zero u16 is consumed as
		// alignment padding only when present and only between
		// elements, never after the last one, and only when it reads
		// as zero -- not unconditionally.
		if i+1 < numberOfValues {
			if pad, err := r.peekU16(); err == nil && pad == 0 {
				if _, err := r.u16(); err != nil {
					return nil, err
				}
				total += 2
			}
		}
	}

	return r.data[start:r.cursor], nil
}
