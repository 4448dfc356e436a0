// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"encoding/binary"
	"errors"
	"testing"
)

func encodeUTF16LEString(s string) []byte {
	runes := []rune(s)
	out := make([]byte, 0, len(runes)*2)
	for _, r := range runes {
		if r <= 0xFFFF {
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], uint16(r))
			out = append(out, b[:]...)
			continue
		}
		r -= 0x10000
		hi := uint16(0xD800 + (r >> 10))
		lo := uint16(0xDC00 + (r & 0x3FF))
		var b [4]byte
		binary.LittleEndian.PutUint16(b[0:2], hi)
		binary.LittleEndian.PutUint16(b[2:4], lo)
		out = append(out, b[:]...)
	}
	return out
}

func TestDecodeUTF16LEBasic(t *testing.T) {
	want := "S-1-5-21-4060289323-1997010220-3924801681-1000"
	data := encodeUTF16LEString(want)

	got, err := decodeUTF16LE(data, false)
	if err != nil {
		t.Fatalf("decodeUTF16LE() error: %v", err)
	}
	if got != want {
		t.Fatalf("decodeUTF16LE() = %q, want %q", got, want)
	}
}

func TestDecodeUTF16LESurrogatePair(t *testing.T) {
	want := "emoji:\U0001F600"
	data := encodeUTF16LEString(want)

	got, err := decodeUTF16LE(data, false)
	if err != nil {
		t.Fatalf("decodeUTF16LE() error: %v", err)
	}
	if got != want {
		t.Fatalf("decodeUTF16LE() = %q, want %q", got, want)
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	if _, err := decodeUTF16LE([]byte{0x41}, false); !errors.Is(err, ErrConversionFailure) {
		t.Fatalf("decodeUTF16LE() on odd-length input: err = %v, want ErrConversionFailure", err)
	}
}

func TestDecodeUTF16LEUnpairedSurrogate(t *testing.T) {
	// A lone high surrogate, D800, with no following low surrogate.
	data := []byte{0x00, 0xD8}

	if _, err := decodeUTF16LE(data, false); !errors.Is(err, ErrConversionFailure) {
		t.Fatalf("strict mode: err = %v, want ErrConversionFailure", err)
	}

	s, err := decodeUTF16LE(data, true)
	if err != nil {
		t.Fatalf("permissive mode: unexpected error %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("permissive mode WTF-8 output length = %d, want 3", len(s))
	}
}
