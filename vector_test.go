// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"errors"
	"testing"
)

// lpwstrVectorElement builds one [u32 char_count][utf16le bytes][optional
// u16 zero pad] element for a VT_LPWSTR vector, matching §4.2 step 6 and
// §9's "only between elements" alignment rule.
func lpwstrVectorElement(s string, pad bool) []byte {
	payload := encodeUTF16LEString(s)
	out := cat(le32(uint32(len(s))), payload)
	if pad {
		out = append(out, 0x00, 0x00)
	}
	return out
}

// E2E-3: a VT_LPWSTR | VT_VECTOR of three strings, one of which omits
// its alignment pad (only ever legal between elements, never after the
// last, per the decoder's own rule).
func TestDecodeRecordVectorE2E3(t *testing.T) {
	strs := []string{
		"{12345678-1234-1234-1234-123456789abc}",
		"{abcdef01-2345-6789-abcd-ef0123456789}",
		"{00000000-0000-0000-0000-000000000000}",
	}

	elements := cat(
		lpwstrVectorElement(strs[0], true),
		lpwstrVectorElement(strs[1], true),
		lpwstrVectorElement(strs[2], false), // no pad after the last element
	)

	body := cat(
		le32(1), // entry_type
		[]byte{0x00},
		le32(uint32(VTLPWStr|VTVector)),
		le32(uint32(len(strs))), // number_of_values
		elements,
	)
	data := cat(le32(uint32(4+len(body))), body)

	rec, err := decodeRecord(data, false, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("decodeRecord() error: %v", err)
	}
	if rec.ValueType != VTLPWStr|VTVector {
		t.Fatalf("ValueType = %s, want VT_LPWSTR|VT_VECTOR", rec.ValueType)
	}
	if !rec.ValueType.IsVector() {
		t.Fatalf("IsVector() = false, want true")
	}

	got, err := rec.VectorStrings()
	if err != nil {
		t.Fatalf("VectorStrings() error: %v", err)
	}
	if len(got) != len(strs) {
		t.Fatalf("VectorStrings() returned %d elements, want %d", len(got), len(strs))
	}
	for i, want := range strs {
		if got[i] != want {
			t.Errorf("VectorStrings()[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestVectorRawElementsFixedWidth(t *testing.T) {
	body := cat(
		le32(1),
		[]byte{0x00},
		le32(uint32(VTI4|VTVector)),
		le32(3),
		le32(10), le32(20), le32(30),
	)
	data := cat(le32(uint32(4+len(body))), body)

	rec, err := decodeRecord(data, false, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("decodeRecord() error: %v", err)
	}

	elems, err := rec.VectorRawElements()
	if err != nil {
		t.Fatalf("VectorRawElements() error: %v", err)
	}
	if len(elems) != 3 {
		t.Fatalf("len(elems) = %d, want 3", len(elems))
	}
}

func TestVectorRawElementsNotAVector(t *testing.T) {
	body := cat(
		le32(1),
		[]byte{0x00},
		le32(uint32(VTI4)),
		le32(10),
	)
	data := cat(le32(uint32(4+len(body))), body)

	rec, err := decodeRecord(data, false, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("decodeRecord() error: %v", err)
	}

	if _, err := rec.VectorRawElements(); !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("VectorRawElements() on non-vector: err = %v, want ErrUnsupportedValue", err)
	}
}

func TestDecodeVectorElementCountSentinelRejected(t *testing.T) {
	body := cat(
		le32(1),
		[]byte{0x00},
		le32(uint32(VTLPWStr|VTVector)),
		le32(0xFFFFFFFF),
	)
	data := cat(le32(uint32(4+len(body))), body)

	_, err := decodeRecord(data, false, DefaultCodepage, DefaultMaxAllocationSize)
	if !errors.Is(err, ErrValueOutOfBounds) {
		t.Fatalf("decodeRecord() with sentinel element count: err = %v, want ErrValueOutOfBounds", err)
	}
}
