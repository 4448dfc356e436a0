// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import "encoding/binary"

// Test fixtures below construct wire-format stores, sets, and records
// by hand, mirroring the byte layouts §4 describes. Several of the
// spec's literal end-to-end corpus entries (E2E-1..E2E-3) elide their
// UTF-16LE payload bytes in favor of a structural description, so
// these helpers build an equivalent input from that description rather
// than a hardcoded hex blob.

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func cat(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// numericRecordBytes builds a numeric record with a VT_LPWSTR value
// whose payload is the UTF-16LE encoding of s, no terminator.
func numericRecordBytes(entryType uint32, s string) []byte {
	payload := encodeUTF16LEString(s)
	valueDataSize := uint32(len(s)) // VT_LPWSTR counts characters

	body := cat(
		le32(entryType),     // entry_type
		[]byte{0x00},        // reserved
		le32(uint32(VTLPWStr)), // value_type
		le32(valueDataSize),    // value_data_size (doubled internally)
		payload,
	)
	size := uint32(4 + len(body))
	return cat(le32(size), body)
}

// namedRecordBytes builds a named record (entry name raw bytes) with a
// VT_LPWSTR value whose payload is the UTF-16LE encoding of s.
func namedRecordBytes(entryName []byte, s string) []byte {
	payload := encodeUTF16LEString(s)
	valueDataSize := uint32(len(s))

	body := cat(
		le32(uint32(len(entryName))), // name_size
		[]byte{0x00},                 // reserved
		entryName,
		le32(uint32(VTLPWStr)),
		le32(valueDataSize),
		payload,
	)
	size := uint32(4 + len(body))
	return cat(le32(size), body)
}

// setBytes wraps records (each already including its own size prefix,
// terminated by a zero-size record) into a complete Set.
func setBytes(fmtid GUID, records ...[]byte) []byte {
	var body []byte
	for _, r := range records {
		body = append(body, r...)
	}
	body = append(body, le32(0)...) // record terminator
	size := uint32(24 + len(body))
	return cat(le32(size), []byte{'1', 'S', 'P', 'S'}, fmtid[:], body)
}
