// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// hashChain indexes 3-byte sequences within a single chunk so the compressor
// can find earlier occurrences of the bytes at the current position.
// head maps a 12-bit hash to the most recent position with that hash; next
// chains each position to the previous one with the same hash.
type hashChain struct {
	head [chunkSize]uint16
	next [chunkSize]uint16
}

// reset clears the chain heads for a new chunk. next entries are left stale:
// they are reachable only through head and are overwritten before use.
func (c *hashChain) reset() {
	for i := range c.head {
		c.head[i] = emptyEntry
	}
}

// insert records position idx in the chain. The compressor calls this for
// every byte a token covers, not just the first, so later overlapping
// matches stay findable.
func (c *hashChain) insert(chunk []byte, idx int) {
	if idx+minMatch > len(chunk) {
		return
	}

	h := hash3(chunk[idx], chunk[idx+1], chunk[idx+2])
	c.next[idx] = c.head[h]
	c.head[h] = uint16(idx) //nolint:gosec // G115: idx < chunkSize
}

// hash3 hashes three bytes to a 12-bit table index.
func hash3(b0, b1, b2 byte) int {
	return (int(b0)<<6 ^ int(b1)<<3 ^ int(b2)) & hashMask
}
