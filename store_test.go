// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"errors"
	"testing"
)

const sidValue = "S-1-5-21-4060289323-1997010220-3924801681-1000"

// e2e1Bytes builds the input described by E2E-1: a Set with one numeric
// VT_LPWSTR record carrying a Windows SID string, followed by the
// four-byte store terminator.
func e2e1Bytes() []byte {
	set := setBytes(SummaryInformationFMTID, numericRecordBytes(4, sidValue))
	return cat(set, le32(0))
}

func TestDecodeStoreE2E1(t *testing.T) {
	data := e2e1Bytes()

	store, err := DecodeStore(data, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("DecodeStore() error: %v", err)
	}
	if len(store.Sets) != 1 {
		t.Fatalf("len(store.Sets) = %d, want 1", len(store.Sets))
	}

	set := store.Sets[0]
	if len(set.Records) != 1 {
		t.Fatalf("len(set.Records) = %d, want 1", len(set.Records))
	}

	rec := set.Records[0]
	if id, ok := rec.EntryTypeID(); !ok || id != 4 {
		t.Fatalf("EntryTypeID() = (%d, %v), want (4, true)", id, ok)
	}
	if rec.ValueType != VTLPWStr {
		t.Fatalf("ValueType = %s, want VT_LPWSTR", rec.ValueType)
	}

	got, err := rec.String()
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	if got != sidValue {
		t.Fatalf("String() = %q, want %q", got, sidValue)
	}
}

func TestDecodeStoreE2E4Truncation(t *testing.T) {
	data := e2e1Bytes()

	// The loop stops short of the single embedded Set's own length: a
	// prefix that ends exactly at a Set boundary is a legitimate store
	// that terminates by exhausting input (§9), not a truncation, so it
	// is excluded here along with the trivial n == 0 empty-store case.
	setLen := len(data) - 4
	for n := 1; n < setLen; n++ {
		_, err := DecodeStore(data[:n], DefaultCodepage, DefaultMaxAllocationSize)
		if err == nil {
			t.Fatalf("DecodeStore() on %d-byte prefix unexpectedly succeeded", n)
		}
		if !errors.Is(err, ErrInputTruncated) && !errors.Is(err, ErrValueOutOfBounds) {
			t.Fatalf("DecodeStore() on %d-byte prefix: err = %v, want InputTruncated or ValueOutOfBounds", n, err)
		}
	}
}

func TestDecodeStoreE2E5SignatureCorruption(t *testing.T) {
	data := e2e1Bytes()
	data[4] = 0x32 // '1' -> '2'

	_, err := DecodeStore(data, DefaultCodepage, DefaultMaxAllocationSize)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("DecodeStore() with corrupted signature: err = %v, want ErrSignatureMismatch", err)
	}
}

func TestDecodeStoreE2E6EmptyStore(t *testing.T) {
	store, err := DecodeStore([]byte{0, 0, 0, 0}, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("DecodeStore() error: %v", err)
	}
	if len(store.Sets) != 0 {
		t.Fatalf("len(store.Sets) = %d, want 0", len(store.Sets))
	}
}

func TestDecodeStoreEmptyInput(t *testing.T) {
	store, err := DecodeStore(nil, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("DecodeStore(nil) error: %v", err)
	}
	if len(store.Sets) != 0 {
		t.Fatalf("len(store.Sets) = %d, want 0", len(store.Sets))
	}
}

func TestDecodeStoreMultipleSets(t *testing.T) {
	set1 := setBytes(SummaryInformationFMTID, numericRecordBytes(PIDSITitle, "one"))
	set2 := setBytes(SummaryInformationFMTID, numericRecordBytes(PIDSITitle, "two"))
	data := cat(set1, set2, le32(0))

	store, err := DecodeStore(data, DefaultCodepage, DefaultMaxAllocationSize)
	if err != nil {
		t.Fatalf("DecodeStore() error: %v", err)
	}
	if len(store.Sets) != 2 {
		t.Fatalf("len(store.Sets) = %d, want 2", len(store.Sets))
	}
}
