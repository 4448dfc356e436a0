// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"encoding/binary"
	"fmt"
)

// decodeUTF16LE decodes a UTF-16LE byte slice (as carried raw in
// VT_LPWSTR's value_data, or a Named record's entry_name) into a UTF-8
// Go string (§4.5, §9 "Named entry name bytes"). permitUnpairedSurrogate
// selects the "path string" accessor's permissive mode (§4.5): an
// unpaired surrogate is preserved rather than rejected, encoded with the
// same byte pattern a valid 3-byte UTF-8 rune would use (the WTF-8
// convention), so Windows paths captured with a lone surrogate half
// round-trip instead of losing data or raising ErrConversionFailure.
func decodeUTF16LE(data []byte, permitUnpairedSurrogate bool) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%2 != 0 {
		return "", fmt.Errorf("%w: odd UTF-16LE byte length %d", ErrConversionFailure, len(data))
	}

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[i*2:])
	}

	var buf []byte
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			buf = appendRune(buf, rune(u))
		case u <= 0xDBFF:
			if i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
				r := ((rune(u) - 0xD800) << 10) + (rune(units[i+1]) - 0xDC00) + 0x10000
				buf = appendRune(buf, r)
				i++
				continue
			}
			if !permitUnpairedSurrogate {
				return "", fmt.Errorf("%w: unpaired high surrogate U+%04X", ErrConversionFailure, u)
			}
			buf = appendSurrogateWTF8(buf, u)
		default:
			if !permitUnpairedSurrogate {
				return "", fmt.Errorf("%w: unpaired low surrogate U+%04X", ErrConversionFailure, u)
			}
			buf = appendSurrogateWTF8(buf, u)
		}
	}
	return string(buf), nil
}

// appendRune appends the UTF-8 encoding of a valid rune.
func appendRune(buf []byte, r rune) []byte {
	var tmp [4]byte
	n := encodeRuneUTF8(tmp[:], r)
	return append(buf, tmp[:n]...)
}

// appendSurrogateWTF8 appends the 3-byte sequence a surrogate code point
// would take under plain UTF-8 structural rules, even though a lone
// surrogate is not itself a valid Unicode scalar value. This is the
// WTF-8 encoding used by several OS-string implementations to keep
// otherwise-lossy surrogate halves representable as ordinary bytes.
func appendSurrogateWTF8(buf []byte, u uint16) []byte {
	return append(buf,
		0xE0|byte(u>>12),
		0x80|byte((u>>6)&0x3F),
		0x80|byte(u&0x3F),
	)
}

// encodeRuneUTF8 is a small local re-implementation of utf8.EncodeRune
// restricted to the BMP/supplementary ranges this decoder ever produces,
// kept local so appendRune has no surprising fallback behavior for
// surrogate-range input (those are routed through appendSurrogateWTF8
// instead and never reach here).
func encodeRuneUTF8(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}
