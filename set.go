// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"bytes"
	"fmt"
)

// setHeaderSize is the minimum byte length of a Set: the 4-byte size,
// the 4-byte "1SPS" signature and the 16-byte FMTID (§3 "Set").
const setHeaderSize = 24

// spsSignature is the ASCII signature every Set header must start with
// at offset 4.
var spsSignature = [4]byte{'1', 'S', 'P', 'S'}

// Set is a decoded property set: a fixed header naming its format class
// (FMTID) followed by an ordered sequence of Records, terminated by a
// zero-size record (§3 "Set").
type Set struct {
	Size       uint32
	FormatID   GUID
	Records    []*Record
	Anomalies  []string

	// named caches whether FormatID selects Named records, so accessors
	// and the debug trace don't need to re-compare the GUID.
	named bool
}

// Named reports whether this Set's FMTID selects Named (as opposed to
// Numeric) records.
func (s *Set) Named() bool {
	return s.named
}

// decodeSet parses one Set from data, which must hold the set's own size
// prefix at offset 0 (§4.3).
func decodeSet(data []byte, codepage int, maxAlloc uint32) (*Set, error) {
	if len(data) < setHeaderSize {
		return nil, fmt.Errorf("%w: set header needs %d bytes, have %d",
			ErrInputTruncated, setHeaderSize, len(data))
	}

	r := newReader(data)

	size, err := r.u32()
	if err != nil {
		return nil, err
	}
	if size < setHeaderSize || size > uint32(len(data)) {
		return nil, fmt.Errorf("%w: set size %d outside [%d, %d]",
			ErrValueOutOfBounds, size, setHeaderSize, len(data))
	}

	sig, err := r.bytes(4)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(sig, spsSignature[:]) {
		return nil, fmt.Errorf("%w: expected \"1SPS\", got %q", ErrSignatureMismatch, sig)
	}

	fmtidBytes, err := r.guid()
	if err != nil {
		return nil, err
	}
	set := &Set{Size: size}
	copy(set.FormatID[:], fmtidBytes)
	set.named = set.FormatID == NamedPropertiesFMTID
	trace("set size=%d fmtid=%s (%s) named=%v", size, set.FormatID, FMTIDName(set.FormatID), set.named)

	// data is truncated to the set's own declared size so a record's
	// zero terminator at the very end of the set is distinguishable
	// from running off the end of a larger enclosing buffer (the Store
	// decoder hands us exactly `size` bytes for this reason).
	body := data[:size]
	r.data = body

	for r.cursor < uint32(len(body)) {
		recordSize, err := r.peekU32()
		if err != nil {
			return nil, err
		}
		if recordSize == 0 {
			// Set terminator.
			break
		}
		if recordSize > r.remaining() {
			return nil, fmt.Errorf("%w: record size %d exceeds remaining %d",
				ErrInputTruncated, recordSize, r.remaining())
		}

		recordBytes, err := r.bytes(recordSize)
		if err != nil {
			return nil, err
		}

		rec, err := decodeRecord(recordBytes, set.named, codepage, maxAlloc)
		if err != nil {
			return nil, fmt.Errorf("decoding record %d of set %s: %w",
				len(set.Records), set.FormatID, err)
		}
		set.Records = append(set.Records, rec)
	}

	if r.cursor < uint32(len(body)) {
		trace("set trailing bytes: %d unread of declared size %d", uint32(len(body))-r.cursor, size)
	}

	return set, nil
}
