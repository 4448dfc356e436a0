// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import "errors"

// Errors returned by the store/set/record decoders. Every decode failure
// wraps one of these sentinels with fmt.Errorf("%w: ...") so callers can
// still errors.Is against the taxonomy after the detail is attached.
var (
	// ErrInvalidArgument is the taxonomy entry for a null or impossible
	// caller argument. No function in this package currently returns it.
	ErrInvalidArgument = errors.New("sps: invalid argument")

	// ErrInputTruncated is returned when a size field or offset would read
	// past the end of the slice being decoded.
	ErrInputTruncated = errors.New("sps: input truncated")

	// ErrValueOutOfBounds is returned when a computed offset or length
	// would move the cursor past the end of the available bytes.
	ErrValueOutOfBounds = errors.New("sps: value out of bounds")

	// ErrSignatureMismatch is returned when a Set header does not begin
	// with the "1SPS" signature.
	ErrSignatureMismatch = errors.New("sps: signature mismatch")

	// ErrUnsupportedValue is returned for an unrecognized VT_* tag, a
	// fixed-width accessor invoked against a payload of the wrong width,
	// or the VT_ARRAY/VT_BYREF bits being set.
	ErrUnsupportedValue = errors.New("sps: unsupported value type")

	// ErrValueMissing is returned when an accessor is invoked on a record
	// whose value_data is absent.
	ErrValueMissing = errors.New("sps: value missing")

	// ErrValueExceedsMaximum is returned when a size field exceeds the
	// configured allocation ceiling.
	ErrValueExceedsMaximum = errors.New("sps: value exceeds maximum allocation size")

	// ErrConversionFailure is returned when the codepage/UTF text
	// converter encounters a malformed or untranslatable sequence.
	ErrConversionFailure = errors.New("sps: text conversion failure")
)
