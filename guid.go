// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"encoding/binary"
	"fmt"
)

// GUID is the raw 16-byte little-endian encoding of a Windows GUID, as it
// appears on the wire for a Set's format class identifier (FMTID) or a
// VT_CLSID value.
type GUID [16]byte

// String renders the GUID in its canonical hyphenated form, e.g.
// "f29f85e0-4ff9-1068-ab91-08002b27b3d9". Used only by the debug trace
// and CLI collaborators; the core decoder never needs the textual form.
func (g GUID) String() string {
	d1 := binary.LittleEndian.Uint32(g[0:4])
	d2 := binary.LittleEndian.Uint16(g[4:6])
	d3 := binary.LittleEndian.Uint16(g[6:8])
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		d1, d2, d3, g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
}

// guidFromCanonical builds the little-endian wire encoding of a GUID from
// its canonical hyphenated string form. Used only to build the well-known
// FMTID constants below; panics on malformed input since all inputs here
// are compile-time literals.
func guidFromCanonical(s string) GUID {
	var g GUID
	var d1 uint32
	var d2, d3 uint16
	var d4 [8]byte
	n, err := fmt.Sscanf(s, "%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		&d1, &d2, &d3, &d4[0], &d4[1], &d4[2], &d4[3], &d4[4], &d4[5], &d4[6], &d4[7])
	if err != nil || n != 11 {
		panic("sps: malformed canonical GUID literal: " + s)
	}
	binary.LittleEndian.PutUint32(g[0:4], d1)
	binary.LittleEndian.PutUint16(g[4:6], d2)
	binary.LittleEndian.PutUint16(g[6:8], d3)
	copy(g[8:], d4[:])
	return g
}

// Well-known format class identifiers (§6.2).
var (
	// NamedPropertiesFMTID is the FMTID that selects Named (as opposed to
	// Numeric) records for a Set. It is also, confusingly, the value
	// historically reused for "User Defined Properties" -- spec.md §6.2
	// lists both names against the same GUID, and that aliasing is
	// preserved here rather than invented away.
	NamedPropertiesFMTID = guidFromCanonical("d5cdd505-2e9c-101b-9397-08002b2cf9ae")

	// SummaryInformationFMTID identifies the OLE "Summary Information"
	// property set (title, author, subject, ...).
	SummaryInformationFMTID = guidFromCanonical("f29f85e0-4ff9-1068-ab91-08002b27b3d9")

	// DocumentSummaryInformationFMTID identifies the OLE "Document Summary
	// Information" property set.
	DocumentSummaryInformationFMTID = guidFromCanonical("d5cdd502-2e9c-101b-9397-08002b2cf9ae")
)

var wellKnownFMTIDNames = map[GUID]string{
	NamedPropertiesFMTID:            "Named Properties / User Defined Properties",
	SummaryInformationFMTID:         "Summary Information",
	DocumentSummaryInformationFMTID: "Document Summary Information",
}

// FMTIDName returns a human-readable name for one of the well-known
// format class identifiers, or "" if id does not match any of them.
func FMTIDName(id GUID) string {
	return wellKnownFMTIDNames[id]
}
