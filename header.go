// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// encodeHeader builds the chunk header for a body of size bytes.
// size must be in [1, chunkSize].
func encodeHeader(compressed bool, size int) uint16 {
	flag := uint16(headerRaw)
	if compressed {
		flag = headerCompressed
	}

	return flag | uint16(size-1)&headerSizeMask //nolint:gosec // G115: size-1 masked to 12 bits
}

// decodeHeader returns the compressed flag and the body size declared by a
// chunk header. Only bit 15 discriminates compressed from raw; the rest of
// the high nibble is a format/engine identifier and is ignored.
func decodeHeader(v uint16) (compressed bool, size int) {
	return v&headerCompressedFlag != 0, int(v&headerSizeMask) + 1
}

// appendLE16 appends v to dst in little-endian order.
func appendLE16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// putLE16 stores v at dst[0:2] in little-endian order.
func putLE16(dst []byte, v uint16) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}
