// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// compressChunk encodes one chunk (at most chunkSize bytes) as a tag-group
// stream appended to dst. The caller frames the result with a chunk header
// and decides the raw fallback.
func compressChunk(dst []byte, chunk []byte, chain *hashChain, depth int) []byte {
	chain.reset()

	var group tagGroup
	state := newAdaptiveState()
	produced := 0

	for i := 0; i < len(chunk); {
		bestLen, bestOff := findMatch(chunk, i, chain, state.maxOffset(), depth)

		if bestLen >= minMatch {
			// Clamp to what the current split can express; the cut-off tail
			// is matched again on the next iteration.
			bestLen = min(bestLen, state.maxLength())
			dst = group.pushTuple(dst, packTuple(bestOff, bestLen, state.split))

			// Every byte the match covers enters the chain, keeping future
			// overlapping matches findable.
			for n := 0; n < bestLen; n++ {
				chain.insert(chunk, i)
				i++
			}

			produced += bestLen
		} else {
			dst = group.pushLiteral(dst, chunk[i])
			chain.insert(chunk, i)
			i++
			produced++
		}

		// The split update runs after each emitted token; the decoder does
		// the same, so both see identical tuple layouts.
		state.update(produced)
	}

	return group.flush(dst)
}
