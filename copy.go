// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// appendBackRef appends length bytes copied from offset bytes behind the end
// of dst. The caller has already validated offset against the bytes produced
// in the current chunk, so offset >= 1 and dst is non-empty.
func appendBackRef(dst []byte, offset, length int) []byte {
	// RLE fast path: offset 1 replicates the last byte.
	if offset == 1 {
		last := dst[len(dst)-1]
		for n := 0; n < length; n++ {
			dst = append(dst, last)
		}

		return dst
	}

	src := len(dst) - offset
	if offset >= length {
		return append(dst, dst[src:src+length]...)
	}

	// Overlapping match: a forward byte-at-a-time copy, so bytes written by
	// the match itself become valid source for its remainder.
	for k := 0; k < length; k++ {
		dst = append(dst, dst[src+k])
	}

	return dst
}
