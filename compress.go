// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// Compress compresses src with LZNT1 and returns the stream. opts may be nil
// (default search depth). Compression cannot fail; empty input yields nil.
func Compress(src []byte, opts *CompressOptions) []byte {
	return AppendCompress(nil, src, opts)
}

// AppendCompress appends the LZNT1 compression of src to dst and returns the
// extended slice. The stream is a sequence of independently decodable chunks
// of up to 4096 decoded bytes; a chunk whose encoding does not shrink it is
// stored raw. The match window and adaptive state reset at every chunk
// boundary, so no back-reference crosses chunks.
func AppendCompress(dst, src []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	depth := opts.SearchDepth
	if depth == 0 {
		depth = defaultSearchDepth
	}
	depth = max(depth, 1)

	chain := acquireHashChain()
	defer releaseHashChain(chain)

	for srcPos := 0; srcPos < len(src); {
		chunkLen := min(len(src)-srcPos, chunkSize)
		chunk := src[srcPos : srcPos+chunkLen]

		start := len(dst)
		dst = append(dst, 0, 0) // header placeholder
		dst = compressChunk(dst, chunk, chain, depth)

		if bodyLen := len(dst) - start - 2; bodyLen < chunkLen {
			putLE16(dst[start:], encodeHeader(true, bodyLen))
		} else {
			// Expansion or no savings: revert and store the chunk raw.
			dst = dst[:start]
			dst = appendLE16(dst, encodeHeader(false, chunkLen))
			dst = append(dst, chunk...)
		}

		srcPos += chunkLen
	}

	return dst
}
