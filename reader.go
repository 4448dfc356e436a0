// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounds-checked little-endian cursor over an immutable byte
// slice. No read ever advances the cursor past the end of data; every
// method fails closed with ErrInputTruncated instead of panicking, which
// is the property the OSS-Fuzz target depends on.
type reader struct {
	data   []byte
	cursor uint32
}

// newReader wraps data for sequential little-endian reads starting at
// offset 0.
func newReader(data []byte) *reader {
	return &reader{data: data}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() uint32 {
	if r.cursor >= uint32(len(r.data)) {
		return 0
	}
	return uint32(len(r.data)) - r.cursor
}

// len returns the total length of the wrapped slice.
func (r *reader) len() uint32 {
	return uint32(len(r.data))
}

// require fails unless n more bytes are available from the cursor.
func (r *reader) require(n uint32) error {
	// Guard against overflow of cursor+n before comparing against length.
	if r.cursor > r.cursor+n || r.cursor+n > uint32(len(r.data)) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInputTruncated, n, r.cursor, r.len())
	}
	return nil
}

// u8 reads one byte at the cursor, advancing it.
func (r *reader) u8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.cursor]
	r.cursor++
	return v, nil
}

// u16 reads a little-endian uint16 at the cursor, advancing it.
func (r *reader) u16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.cursor:])
	r.cursor += 2
	return v, nil
}

// peekU16 reads a little-endian uint16 at the cursor without advancing it.
func (r *reader) peekU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[r.cursor:]), nil
}

// u32 reads a little-endian uint32 at the cursor, advancing it.
func (r *reader) u32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.cursor:])
	r.cursor += 4
	return v, nil
}

// peekU32 reads a little-endian uint32 at the cursor without advancing it.
func (r *reader) peekU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[r.cursor:]), nil
}

// u64 reads a little-endian uint64 at the cursor, advancing it.
func (r *reader) u64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.cursor:])
	r.cursor += 8
	return v, nil
}

// bytes reads n bytes as a borrowed sub-slice, advancing the cursor.
func (r *reader) bytes(n uint32) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.data[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

// guid reads the 16 raw bytes of a little-endian GUID, advancing the
// cursor.
func (r *reader) guid() ([]byte, error) {
	return r.bytes(16)
}
