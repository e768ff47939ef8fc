// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "slices"

// Decompress decompresses a complete LZNT1 stream from src into a new slice.
// Empty input yields empty output. On error the result is nil.
func Decompress(src []byte) ([]byte, error) {
	out, err := AppendDecompress(nil, src)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AppendDecompress appends the decompression of src to dst and returns the
// extended slice. On error the returned slice holds whatever was produced
// before the failure; callers are expected to discard it.
//
// The decoder accepts the termination dialects found in the wild: an
// explicit 0x0000 header, a single trailing zero byte, and end of body
// between the tokens of a tag group.
func AppendDecompress(dst, src []byte) ([]byte, error) {
	dst = slices.Grow(dst, len(src))

	inPos := 0
	end := len(src)

	for inPos < end {
		// A single trailing null byte past the last chunk is tolerated.
		if inPos+1 == end && src[inPos] == 0 {
			break
		}

		if inPos+2 > end {
			return dst, ErrUnexpectedEOF
		}

		header := readLE16(src, inPos)
		inPos += 2

		if header == 0 {
			break // explicit end-of-stream marker
		}

		compressed, size := decodeHeader(header)
		if inPos+size > end {
			return dst, ErrInputTooShort
		}

		body := src[inPos : inPos+size]
		if compressed {
			var err error

			dst, err = decompressBlock(dst, body)
			if err != nil {
				return dst, err
			}
		} else {
			dst = append(dst, body...)
		}

		inPos += size
	}

	return dst, nil
}

// decompressBlock decodes one compressed chunk body, appending to dst.
// Back-references may only reach output produced within this chunk.
func decompressBlock(dst []byte, body []byte) ([]byte, error) {
	state := newAdaptiveState()
	startOut := len(dst)

	inIdx := 0
	end := len(body)

	for inIdx < end {
		tag := body[inIdx]
		inIdx++

		// All-literal fast path: a zero tag with a full group of body bytes
		// left copies eight literals at once. The cumulative update below is
		// equivalent to eight per-byte updates.
		if tag == 0 && inIdx+tagGroupSize <= end {
			dst = append(dst, body[inIdx:inIdx+tagGroupSize]...)
			inIdx += tagGroupSize
			state.update(len(dst) - startOut)

			continue
		}

		for i := 0; i < tagGroupSize; i++ {
			if tag>>i&1 != 0 {
				if inIdx+2 > end {
					return dst, ErrUnexpectedEOF
				}

				tuple := readLE16(body, inIdx)
				inIdx += 2

				offset, length := state.unpackTuple(tuple)
				if offset > len(dst)-startOut {
					return dst, ErrInvalidOffset
				}

				dst = appendBackRef(dst, offset, length)
			} else {
				if inIdx >= end {
					// End of body at a literal position is a valid ending.
					return dst, nil
				}

				dst = append(dst, body[inIdx])
				inIdx++
			}

			state.update(len(dst) - startOut)

			if inIdx >= end {
				return dst, nil
			}
		}
	}

	return dst, nil
}

// readLE16 reads one little-endian uint16 from src at pos. Callers check
// bounds.
func readLE16(src []byte, pos int) uint16 {
	return uint16(src[pos]) | uint16(src[pos+1])<<8
}
