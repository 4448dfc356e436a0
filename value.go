// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
)

// accepts reports whether the record's base value type (modifier bits
// stripped) matches one of want. It does not look at the vector bit;
// callers reject vector-flagged records themselves.
func (rec *Record) accepts(want ...ValueType) bool {
	base := rec.ValueType.Base()
	for _, w := range want {
		if base == w {
			return true
		}
	}
	return false
}

func (rec *Record) fixedWidthScalar(width uint32, want ...ValueType) ([]byte, error) {
	if rec.ValueType.IsVector() || !rec.accepts(want...) {
		return nil, fmt.Errorf("%w: value type %s not accepted here", ErrUnsupportedValue, rec.ValueType)
	}
	if rec.ValueData == nil {
		return nil, ErrValueMissing
	}
	if uint32(len(rec.ValueData)) != width {
		return nil, fmt.Errorf("%w: expected %d-byte payload, got %d", ErrUnsupportedValue, width, len(rec.ValueData))
	}
	return rec.ValueData, nil
}

// Bool returns the VT_BOOL value of the record.
func (rec *Record) Bool() (bool, error) {
	b, err := rec.fixedWidthScalar(1, VTBool)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// Int8 returns the VT_I1 value of the record.
func (rec *Record) Int8() (int8, error) {
	b, err := rec.fixedWidthScalar(1, VTI1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// UInt8 returns the VT_UI1 value of the record.
func (rec *Record) UInt8() (uint8, error) {
	b, err := rec.fixedWidthScalar(1, VTUI1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Int16 returns the VT_I2 value of the record.
func (rec *Record) Int16() (int16, error) {
	b, err := rec.fixedWidthScalar(2, VTI2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// UInt16 returns the VT_UI2 value of the record.
func (rec *Record) UInt16() (uint16, error) {
	b, err := rec.fixedWidthScalar(2, VTUI2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Int32 returns the VT_I4/VT_UI4/VT_ERROR value of the record
// reinterpreted as a signed 32-bit integer.
func (rec *Record) Int32() (int32, error) {
	b, err := rec.fixedWidthScalar(4, VTI4, VTUI4, VTError)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// UInt32 returns the VT_I4/VT_UI4/VT_ERROR value of the record as an
// unsigned 32-bit integer.
func (rec *Record) UInt32() (uint32, error) {
	b, err := rec.fixedWidthScalar(4, VTI4, VTUI4, VTError)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int64 returns the VT_I8/VT_UI8/VT_CY/VT_FILETIME value of the record
// reinterpreted as a signed 64-bit integer.
func (rec *Record) Int64() (int64, error) {
	b, err := rec.fixedWidthScalar(8, VTI8, VTUI8, VTCY, VTFileTime)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// UInt64 returns the VT_I8/VT_UI8/VT_CY/VT_FILETIME value of the record
// as an unsigned 64-bit integer.
func (rec *Record) UInt64() (uint64, error) {
	b, err := rec.fixedWidthScalar(8, VTI8, VTUI8, VTCY, VTFileTime)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// FileTime returns the raw VT_FILETIME value: a count of 100-ns
// intervals since 1601-01-01 UTC (§GLOSSARY). Converting that count to
// a time.Time is left to the caller (the core does no calendar math).
func (rec *Record) FileTime() (uint64, error) {
	b, err := rec.fixedWidthScalar(8, VTFileTime)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Float32 returns the VT_R4 value of the record.
func (rec *Record) Float32() (float32, error) {
	b, err := rec.fixedWidthScalar(4, VTR4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// Float64 returns the VT_R8 value of the record.
func (rec *Record) Float64() (float64, error) {
	b, err := rec.fixedWidthScalar(8, VTR8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// stringAccepted is the set of value types the string accessors accept
// (§4.5).
var stringAccepted = []ValueType{VTBStr, VTLPStr, VTLPWStr}

func (rec *Record) stringValue(permitUnpairedSurrogate bool) (string, error) {
	if rec.ValueType.IsVector() || !rec.accepts(stringAccepted...) {
		return "", fmt.Errorf("%w: value type %s is not a string", ErrUnsupportedValue, rec.ValueType)
	}
	if rec.ValueData == nil {
		return "", ErrValueMissing
	}
	if len(rec.ValueData) == 0 {
		return "", nil
	}
	if rec.ValueType.Base() == VTLPWStr {
		return decodeUTF16LE(rec.ValueData, permitUnpairedSurrogate)
	}
	return decodeCodepageString(rec.ValueData, rec.AsciiCodepage)
}

// String decodes the record's VT_BSTR/VT_LPSTR/VT_LPWSTR value to a
// UTF-8 Go string, per the dispatch rule in §4.5. An unpaired UTF-16
// surrogate in a VT_LPWSTR payload is rejected with ErrConversionFailure;
// use PathString to tolerate it.
func (rec *Record) String() (string, error) {
	return rec.stringValue(false)
}

// PathString is the permissive counterpart to String: it decodes the
// same value types but, for VT_LPWSTR, preserves an unpaired UTF-16
// surrogate instead of failing, for filesystem paths historically
// captured by the Windows shell with surrogate halves intact (§4.5,
// "path string" mode).
func (rec *Record) PathString() (string, error) {
	return rec.stringValue(true)
}

// StringUTF16 returns the UTF-16 code units of String's result.
func (rec *Record) StringUTF16() ([]uint16, error) {
	s, err := rec.String()
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(s)), nil
}

// GUID returns the VT_CLSID value of the record.
func (rec *Record) GUID() (GUID, error) {
	b, err := rec.fixedWidthScalar(16, VTClsid)
	if err != nil {
		return GUID{}, err
	}
	var g GUID
	copy(g[:], b)
	return g, nil
}

// RawData returns the record's value payload bytes unconditionally,
// regardless of value type -- including VT_EMPTY, where it returns nil.
func (rec *Record) RawData() []byte {
	return rec.ValueData
}

// EntryTypeID returns the record's numeric property identifier and true
// when Kind == RecordNumeric. For a Named record it returns (0, false):
// 0 is the "not available" sentinel the accessor is documented to
// return for the wrong identity (§9), not a claim that the identifier is
// zero.
func (rec *Record) EntryTypeID() (uint32, bool) {
	if rec.Kind != RecordNumeric {
		return 0, false
	}
	return rec.EntryType, true
}

// EntryNameUTF8 returns the record's name decoded to UTF-8 and true when
// Kind == RecordNamed.
func (rec *Record) EntryNameUTF8() (string, bool, error) {
	if rec.Kind != RecordNamed {
		return "", false, nil
	}
	s, err := decodeUTF16LE(rec.EntryName, false)
	if err != nil {
		return "", true, err
	}
	return s, true, nil
}

// EntryNameUTF16 returns the record's name as UTF-16 code units and true
// when Kind == RecordNamed.
func (rec *Record) EntryNameUTF16() ([]uint16, bool, error) {
	s, ok, err := rec.EntryNameUTF8()
	if !ok || err != nil {
		return nil, ok, err
	}
	return utf16.Encode([]rune(s)), true, nil
}

// ValueNameUTF8 returns the VT_STREAM value name decoded to UTF-8 and
// true when one is present on the record.
func (rec *Record) ValueNameUTF8() (string, bool, error) {
	if rec.ValueName == nil {
		return "", false, nil
	}
	s, err := decodeUTF16LE(rec.ValueName, false)
	if err != nil {
		return "", true, err
	}
	return s, true, nil
}

// ValueNameUTF16 returns the VT_STREAM value name as UTF-16 code units
// and true when one is present on the record.
func (rec *Record) ValueNameUTF16() ([]uint16, bool, error) {
	s, ok, err := rec.ValueNameUTF8()
	if !ok || err != nil {
		return nil, ok, err
	}
	return utf16.Encode([]rune(s)), true, nil
}
