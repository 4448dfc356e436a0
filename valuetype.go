// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

// ValueType is the raw 32-bit variant tag stored on a Record. The low 12
// bits carry the base VT_* type; higher bits are modifier flags.
type ValueType uint32

// VT_* base type tags (§3). Values match the Windows Variant type system.
const (
	VTEmpty    ValueType = 0x0000
	VTI2       ValueType = 0x0002
	VTI4       ValueType = 0x0003
	VTR4       ValueType = 0x0004
	VTR8       ValueType = 0x0005
	VTCY       ValueType = 0x0006
	VTError    ValueType = 0x000A
	VTBool     ValueType = 0x000B
	VTDecimal  ValueType = 0x000E
	VTI1       ValueType = 0x0010
	VTUI1      ValueType = 0x0011
	VTUI2      ValueType = 0x0012
	VTUI4      ValueType = 0x0013
	VTI8       ValueType = 0x0014
	VTUI8      ValueType = 0x0015
	VTLPStr    ValueType = 0x001E
	VTLPWStr   ValueType = 0x001F
	VTFileTime ValueType = 0x0040
	VTBStr     ValueType = 0x0041
	VTStream   ValueType = 0x0042
	VTClipData ValueType = 0x0047
	VTClsid    ValueType = 0x0048
)

// Modifier bits OR-ed into the base VT_* tag.
const (
	// VTVector marks the value as a length-prefixed vector of the base
	// type (§3, §4.2 step 6).
	VTVector ValueType = 0x1000

	// VTArray marks the value as a SAFEARRAY; unsupported (§4.2 step 4).
	VTArray ValueType = 0x2000

	// VTByRef marks the value as passed by reference; masked off before
	// dispatch and otherwise ignored (§4.2 step 4).
	VTByRef ValueType = 0x4000
)

// typeMask is applied to a raw value_type before the VT_ARRAY check and
// base-type dispatch. It clears only the VT_VECTOR bit (0x1000); the
// VT_ARRAY and VT_BYREF bits pass through unchanged. The vector check
// itself reads the raw, unmasked tag.
const typeMask ValueType = 0xFFFFEFFF

// Base returns the base VT_* type, with the vector/array/byref modifier
// bits stripped.
func (t ValueType) Base() ValueType {
	return t & 0x0FFF
}

// IsVector reports whether the VT_VECTOR bit is set.
func (t ValueType) IsVector() bool {
	return t&VTVector != 0
}

// IsArray reports whether the unsupported VT_ARRAY bit is set.
func (t ValueType) IsArray() bool {
	return t&VTArray != 0
}

// canonicalStringTag normalizes the two VT_LPWSTR spellings (0x001F,
// 0x101F) to the VT_LPSTR spelling (0x001E, 0x101E) used as the key into
// the property identifier lookup tables, per §3's aliasing rule. The raw
// tag on the Record itself is never modified; this is purely a lookup-key
// transform.
func canonicalStringTag(t ValueType) ValueType {
	switch t {
	case VTLPWStr:
		return VTLPStr
	case VTLPWStr | VTVector:
		return VTLPStr | VTVector
	default:
		return t
	}
}

var valueTypeNames = map[ValueType]string{
	VTEmpty:    "VT_EMPTY",
	VTI2:       "VT_I2",
	VTI4:       "VT_I4",
	VTR4:       "VT_R4",
	VTR8:       "VT_R8",
	VTCY:       "VT_CY",
	VTError:    "VT_ERROR",
	VTBool:     "VT_BOOL",
	VTDecimal:  "VT_DECIMAL",
	VTI1:       "VT_I1",
	VTUI1:      "VT_UI1",
	VTUI2:      "VT_UI2",
	VTUI4:      "VT_UI4",
	VTI8:       "VT_I8",
	VTUI8:      "VT_UI8",
	VTLPStr:    "VT_LPSTR",
	VTLPWStr:   "VT_LPWSTR",
	VTFileTime: "VT_FILETIME",
	VTBStr:     "VT_BSTR",
	VTStream:   "VT_STREAM",
	VTClipData: "VT_CLIPDATA",
	VTClsid:    "VT_CLSID",
}

// String renders the base VT_* tag name, with "|VT_VECTOR" appended when
// the vector bit is set. Unknown base tags render as their hex value.
// Used by the debug trace and CLI; has no bearing on decode semantics.
func (t ValueType) String() string {
	name, ok := valueTypeNames[t.Base()]
	if !ok {
		name = hexTag(t.Base())
	}
	if t.IsVector() {
		name += "|VT_VECTOR"
	}
	if t.IsArray() {
		name += "|VT_ARRAY"
	}
	return name
}

func hexTag(t ValueType) string {
	const hexdigits = "0123456789abcdef"
	v := uint32(t)
	buf := [10]byte{'0', 'x', '0', '0', '0', '0', '0', '0', '0', '0'}
	for i := 9; i >= 2 && v != 0; i-- {
		buf[i] = hexdigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}

// fixedWidth returns the payload width in bytes for a fixed-width base
// VT_* type, and whether that base type is fixed-width at all (§3's
// table; VT_LPSTR/VT_BSTR/VT_STREAM/VT_LPWSTR are variable-width and
// report ok == false here).
func fixedWidth(base ValueType) (width uint32, ok bool) {
	switch base {
	case VTEmpty:
		return 0, true
	case VTI2, VTUI2:
		return 2, true
	case VTI4, VTR4, VTUI4, VTError:
		return 4, true
	case VTR8, VTCY, VTI8, VTUI8, VTFileTime:
		return 8, true
	case VTBool, VTI1, VTUI1:
		return 1, true
	case VTDecimal, VTClsid:
		return 16, true
	default:
		return 0, false
	}
}

// hasVariableData reports whether base is one of the variable-width
// string/stream/blob tags (§4.2 step 4).
func hasVariableData(base ValueType) bool {
	switch base {
	case VTLPStr, VTBStr, VTStream, VTLPWStr, VTClipData:
		return true
	default:
		return false
	}
}
