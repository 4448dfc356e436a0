// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"errors"
	"testing"
)

func TestDecodeSetNamed(t *testing.T) {
	entryName := []byte{0x00, 0x1F, 0x00, 0x00} // raw UTF-16LE name bytes
	data := setBytes(NamedPropertiesFMTID, namedRecordBytes(entryName, sidValue))

	set, err := decodeSet(data, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("decodeSet() error: %v", err)
	}
	if !set.Named() {
		t.Fatalf("Named() = false, want true for NamedPropertiesFMTID")
	}
	if len(set.Records) != 1 {
		t.Fatalf("len(set.Records) = %d, want 1", len(set.Records))
	}

	rec := set.Records[0]
	if rec.Kind != RecordNamed {
		t.Fatalf("Kind = %v, want RecordNamed", rec.Kind)
	}
	gotName, ok, err := rec.EntryNameUTF16()
	if !ok || err != nil {
		t.Fatalf("EntryNameUTF16() = (_, %v, %v)", ok, err)
	}
	if len(gotName) != 2 || gotName[0] != 0x1F00 || gotName[1] != 0x0000 {
		t.Fatalf("EntryNameUTF16() = %v, want [0x1F00 0x0000]", gotName)
	}

	val, err := rec.String()
	if err != nil || val != sidValue {
		t.Fatalf("String() = %q, %v; want %q, nil", val, err, sidValue)
	}
}

func TestDecodeSetNumericFMTID(t *testing.T) {
	data := setBytes(SummaryInformationFMTID, numericRecordBytes(PIDSITitle, "hello"))

	set, err := decodeSet(data, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("decodeSet() error: %v", err)
	}
	if set.Named() {
		t.Fatalf("Named() = true, want false for SummaryInformationFMTID")
	}
	if set.FormatID != SummaryInformationFMTID {
		t.Fatalf("FormatID = %s, want %s", set.FormatID, SummaryInformationFMTID)
	}
}

func TestDecodeSetShortHeader(t *testing.T) {
	_, err := decodeSet(make([]byte, 10), DefaultCodepage, DefaultMaxAllocationSize)
	if !errors.Is(err, ErrInputTruncated) {
		t.Fatalf("decodeSet() on 10-byte input: err = %v, want ErrInputTruncated", err)
	}
}

func TestDecodeSetBadSignature(t *testing.T) {
	data := setBytes(SummaryInformationFMTID, numericRecordBytes(PIDSITitle, "x"))
	data[4] = 'Z'

	_, err := decodeSet(data, DefaultCodepage, DefaultMaxAllocationSize)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("decodeSet() with bad signature: err = %v, want ErrSignatureMismatch", err)
	}
}

func TestDecodeSetSizeOutOfBounds(t *testing.T) {
	data := setBytes(SummaryInformationFMTID, numericRecordBytes(PIDSITitle, "x"))
	// Inflate the declared size past the buffer length.
	binary := uint32(len(data)) + 1000
	data[0] = byte(binary)
	data[1] = byte(binary >> 8)
	data[2] = byte(binary >> 16)
	data[3] = byte(binary >> 24)

	_, err := decodeSet(data, DefaultCodepage, DefaultMaxAllocationSize)
	if !errors.Is(err, ErrValueOutOfBounds) {
		t.Fatalf("decodeSet() with oversized declared size: err = %v, want ErrValueOutOfBounds", err)
	}
}
