// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// findMatch searches the hash chain for the longest earlier occurrence of
// the bytes at pos, inspecting at most depth candidates. Candidates at or
// beyond maxOffset end the walk: chains are newest-first, so every deeper
// entry is farther away. Returns (0, 0) when no match of at least minMatch
// bytes exists.
func findMatch(chunk []byte, pos int, chain *hashChain, maxOffset, depth int) (bestLen, bestOff int) {
	if pos+minMatch > len(chunk) {
		return 0, 0
	}

	h := hash3(chunk[pos], chunk[pos+1], chunk[pos+2])
	cand := chain.head[h]

	for tries := 0; cand != emptyEntry && tries < depth; tries++ {
		c := int(cand)
		if c >= pos {
			break
		}

		dist := pos - c
		if dist >= maxOffset {
			break
		}

		// Cheap probe at the current best length before scanning the whole
		// prefix; a candidate that cannot beat bestLen fails here.
		if pos+bestLen < len(chunk) && chunk[c+bestLen] == chunk[pos+bestLen] {
			n := commonPrefixLen(chunk[pos:], chunk[c:], maxMatch)
			if n >= minMatch && n > bestLen {
				bestLen = n
				bestOff = dist

				if bestLen >= maxMatch {
					bestLen = maxMatch
					break
				}
			}
		}

		cand = chain.next[c]
	}

	return bestLen, bestOff
}

// commonPrefixLen returns the length of the common prefix of a and b,
// capped at maxLen.
func commonPrefixLen(a, b []byte, maxLen int) int {
	limit := min(len(a), len(b), maxLen)

	n := 0
	for n < limit && a[n] == b[n] {
		n++
	}

	return n
}
