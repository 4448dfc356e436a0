// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// codepageEncodings maps a Windows/IANA codepage identifier to the
// golang.org/x/text encoding that decodes it, the same family of
// encodings other_examples/1d39219f_yuphing-ong-outlook-msg-parser
// reaches for when decoding legacy MAPI property bytes under a
// caller-supplied code page (SPEC_FULL.md §3).
var codepageEncodings = map[int]encoding.Encoding{
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28605: charmap.ISO8859_15,
}

// CodepageUTF7 and CodepageUTF8 are the two codepage identifiers §6.3
// dispatches specially rather than through the charmap table.
const (
	CodepageUTF7 = 65000
	CodepageUTF8 = 65001
)

// decodeCodepageString decodes data (VT_LPSTR/VT_BSTR payload bytes)
// into a UTF-8 Go string according to the dispatch rule in §4.5:
// codepage 65000 selects UTF-7, 65001 selects UTF-8, anything else
// dispatches to the byte-stream converter for that codepage. An
// unregistered codepage falls back to Windows-1252, the closest
// equivalent of the original's "ASCII" default.
func decodeCodepageString(data []byte, codepage int) (string, error) {
	switch codepage {
	case CodepageUTF7:
		return decodeUTF7(data)
	case CodepageUTF8:
		return string(data), nil
	}

	enc, ok := codepageEncodings[codepage]
	if !ok {
		enc = charmap.Windows1252
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: codepage %d: %v", ErrConversionFailure, codepage, err)
	}
	return string(out), nil
}

// decodeUTF7 decodes a minimal but correct subset of RFC 2152 UTF-7: the
// direct/optional character set pass through unchanged, and a run of
// shifted characters introduced by '+' and closed by '-' (or any
// non-base64 byte) is decoded as modified base64 UTF-16BE. golang.org/x/text
// does not ship a UTF-7 codec, so this is written directly against the
// grammar the way the rest of the codepage table leans on x/text for
// everything it does cover.
func decodeUTF7(data []byte) (string, error) {
	const b64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	var rev [256]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(b64); i++ {
		rev[b64[i]] = int8(i)
	}

	var out []uint16
	i := 0
	for i < len(data) {
		c := data[i]
		if c != '+' {
			if c >= 0x80 {
				return "", fmt.Errorf("%w: byte 0x%02x outside UTF-7 printable range", ErrConversionFailure, c)
			}
			out = append(out, uint16(c))
			i++
			continue
		}

		// Shifted run: '+' starts it, a non-base64 byte or end-of-data
		// ends it. "+-" is the escape for a literal '+'.
		i++
		if i < len(data) && data[i] == '-' {
			out = append(out, uint16('+'))
			i++
			continue
		}

		var bitBuf uint32
		var bitCount uint
		for i < len(data) && rev[data[i]] >= 0 {
			bitBuf = (bitBuf << 6) | uint32(rev[data[i]])
			bitCount += 6
			i++
			if bitCount >= 16 {
				bitCount -= 16
				out = append(out, uint16(bitBuf>>bitCount))
			}
		}
		if i < len(data) && data[i] == '-' {
			i++
		}
	}

	return string(utf16.Decode(out)), nil
}
