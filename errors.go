// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "errors"

// Sentinel errors for decompression. Compression cannot fail.
var (
	// ErrUnexpectedEOF is returned when a structurally required byte (the
	// second byte of a chunk header or of a back-reference tuple) is missing
	// at the end of the input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrInputTooShort is returned when a chunk header declares a body that
	// exceeds the remaining input.
	ErrInputTooShort = errors.New("input too short for declared chunk")
	// ErrInvalidOffset is returned when a back-reference points before the
	// start of the current chunk's output.
	ErrInvalidOffset = errors.New("invalid back-reference offset")
	// ErrInvalidHeader is reserved for stricter header validation; it is not
	// currently returned.
	ErrInvalidHeader = errors.New("invalid chunk header")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
