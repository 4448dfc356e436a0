// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import "fmt"

// Store is an ordered sequence of Sets (§3 "Store"). Unlike Set and
// Record, a Store has no outer size field of its own; its end is
// signalled only by a zero-size set or by exhausting the input (§9 Open
// Questions). Destroying a Store in a garbage-collected runtime simply
// means dropping the reference; there is no manual teardown to perform,
// but the type is kept distinct from []*Set to carry that documentation
// and to be the natural home for future store-level metadata.
type Store struct {
	Sets []*Set
}

// DecodeStore parses a concatenation of Sets from data until a zero-size
// terminator or the end of data (§4.4). codepage selects the codepage
// used to decode VT_LPSTR/VT_BSTR payloads; maxAlloc caps any single
// value_data allocation (§6.3).
func DecodeStore(data []byte, codepage int, maxAlloc uint32) (*Store, error) {
	store := &Store{}

	var cursor uint32
	for cursor < uint32(len(data)) {
		if uint32(len(data))-cursor < 4 {
			return nil, fmt.Errorf("%w: need 4 bytes for set size at offset %d, have %d",
				ErrInputTruncated, cursor, uint32(len(data))-cursor)
		}

		r := newReader(data[cursor:])
		setSize, err := r.peekU32()
		if err != nil {
			return nil, err
		}
		if setSize == 0 {
			trace("store terminator at offset %d", cursor)
			break
		}
		remaining := uint32(len(data)) - cursor
		if setSize > remaining {
			return nil, fmt.Errorf("%w: set size %d exceeds remaining %d",
				ErrInputTruncated, setSize, remaining)
		}

		set, err := decodeSet(data[cursor:cursor+setSize], codepage, maxAlloc)
		if err != nil {
			return nil, fmt.Errorf("decoding set %d at offset %d: %w",
				len(store.Sets), cursor, err)
		}
		store.Sets = append(store.Sets, set)
		cursor += setSize
	}

	return store, nil
}
