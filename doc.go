// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

/*
Package lznt1 implements LZNT1 compression and decompression, the chunked
LZ77 format used by NTFS file compression and the Windows kernel
(RtlCompressBuffer/RtlDecompressBuffer with COMPRESSION_FORMAT_LZNT1).

A stream is a sequence of independently decodable chunks of up to 4096
decoded bytes, each framed by a 2-byte little-endian header. Chunks whose
encoding would not shrink them are stored raw. Round-trip is bit-exact for
arbitrary input, and the output interoperates with streams produced and
consumed by the Windows implementation.

# Decompress

From a byte slice:

	out, err := lznt1.Decompress(compressed)

Appending to an existing buffer:

	out, err := lznt1.AppendDecompress(buf, compressed)

From an io.Reader (optionally capped via DecompressOptions.MaxInputSize):

	out, err := lznt1.DecompressFromReader(r, nil)

As a worked example, this 15-byte stream decodes to "Hello world":

	0x0c 0xb0                          header: compressed chunk, 13 body bytes
	0x00 'H' 'e' 'l' 'l' 'o' ' ' 'w' 'o'   tag group: 8 literals
	0x00 'r' 'l' 'd'                   tag group: 3 literals, ended by the chunk

# Compress

Options may be nil (default match search depth):

	out := lznt1.Compress(data, nil)
	out := lznt1.Compress(data, &lznt1.CompressOptions{SearchDepth: 64})

SearchDepth trades speed for ratio; any depth produces a valid stream.
*/
package lznt1
