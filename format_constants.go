// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// LZNT1 format constants: chunk framing, header layout, tuple bounds, and
// dictionary hash parameters.

// Chunk framing.
const (
	chunkSize    = 4096 // maximum decoded bytes per chunk
	tagGroupSize = 8    // tokens governed by one flag byte
)

// Header layout (16 bits little-endian).
const (
	headerCompressed     = 0xB000 // engine nibble with bit 15 set
	headerRaw            = 0x3000 // engine nibble, bit 15 clear
	headerCompressedFlag = 0x8000 // sole compressed/raw discriminator
	headerSizeMask       = 0x0FFF // body size minus one
)

// Match length bounds.
const (
	minMatch = 3    // shortest encodable back-reference
	maxMatch = 4098 // largest length a 12-bit length field can encode
)

// Initial adaptive split state, shared by compressor and decompressor.
const (
	initialSplit     = 12
	initialThreshold = 16
)

// Dictionary hash parameters used by the compressor.
const (
	hashBits           = 12
	hashMask           = 1<<hashBits - 1
	emptyEntry         = 0xFFFF // marks an unused chain entry
	defaultSearchDepth = 16     // chain candidates inspected per position
)
