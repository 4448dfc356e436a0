// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import "fmt"

// VectorRawElements walks a VT_VECTOR record's raw value_data back into
// its individual elements. For a variable-width base type this walks
// the `[u32 length][bytes][optional u16 zero pad]` layout described in
// §3 and §9; for a fixed-width base type it slices value_data into
// equal-width chunks. It is the "downstream consumer re-walks the
// buffer" capability spec.md's discriminated-union design note calls
// for.
func (rec *Record) VectorRawElements() ([][]byte, error) {
	if !rec.ValueType.IsVector() {
		return nil, fmt.Errorf("%w: value type %s is not a vector", ErrUnsupportedValue, rec.ValueType)
	}
	base := rec.ValueType.Base()
	data := rec.ValueData

	if width, ok := fixedWidth(base); ok {
		if width == 0 || len(data)%int(width) != 0 {
			return nil, fmt.Errorf("%w: vector payload length %d is not a multiple of element width %d",
				ErrUnsupportedValue, len(data), width)
		}
		elems := make([][]byte, 0, len(data)/int(width))
		for off := 0; off < len(data); off += int(width) {
			elems = append(elems, data[off:off+int(width)])
		}
		return elems, nil
	}

	var elems [][]byte
	r := newReader(data)
	for r.remaining() > 0 {
		rawElementSize, err := r.u32()
		if err != nil {
			return nil, err
		}
		elementSize := rawElementSize
		if base == VTLPWStr {
			elementSize *= 2
		}
		b, err := r.bytes(elementSize)
		if err != nil {
			return nil, err
		}
		elems = append(elems, b)

		// A well-formed value_data slice never carries a pad after its
		// true last element (§9): decode only ever wrote one between
		// elements. So remaining() == 0 here means we just consumed
		// the last element, and the pad check below never misfires.
		if r.remaining() > 0 {
			if pad, err := r.peekU16(); err == nil && pad == 0 {
				r.u16()
			}
		}
	}
	return elems, nil
}

// VectorStrings decodes each element of a VT_LPSTR/VT_BSTR/VT_LPWSTR
// vector to a UTF-8 string, in order.
func (rec *Record) VectorStrings() ([]string, error) {
	base := rec.ValueType.Base()
	isString := false
	for _, w := range stringAccepted {
		if base == w {
			isString = true
		}
	}
	if !isString {
		return nil, fmt.Errorf("%w: value type %s is not a string vector", ErrUnsupportedValue, rec.ValueType)
	}

	raw, err := rec.VectorRawElements()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, b := range raw {
		if base == VTLPWStr {
			s, err := decodeUTF16LE(b, false)
			if err != nil {
				return nil, err
			}
			out[i] = s
			continue
		}
		s, err := decodeCodepageString(b, rec.AsciiCodepage)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
