// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// tagGroup accumulates up to eight literal/back-reference tokens behind a
// single flag byte. Bit i of the flag labels token i: 0 literal (one byte),
// 1 back-reference (two-byte little-endian tuple).
type tagGroup struct {
	flags  byte
	items  int
	buf    [2 * tagGroupSize]byte
	bufLen int
}

// pushLiteral adds a one-byte literal token, flushing to dst when the group
// fills. The flag bit for a literal stays zero.
func (g *tagGroup) pushLiteral(dst []byte, b byte) []byte {
	g.buf[g.bufLen] = b
	g.bufLen++

	return g.commit(dst)
}

// pushTuple adds a two-byte back-reference token, flushing to dst when the
// group fills.
func (g *tagGroup) pushTuple(dst []byte, tuple uint16) []byte {
	g.flags |= 1 << g.items
	g.buf[g.bufLen] = byte(tuple)
	g.buf[g.bufLen+1] = byte(tuple >> 8)
	g.bufLen += 2

	return g.commit(dst)
}

func (g *tagGroup) commit(dst []byte) []byte {
	g.items++
	if g.items == tagGroupSize {
		return g.flush(dst)
	}

	return dst
}

// flush writes the flag byte and any buffered tokens to dst and resets the
// group. A partial group at chunk end is written as-is; trailing zero flag
// bits cost nothing.
func (g *tagGroup) flush(dst []byte) []byte {
	if g.items == 0 {
		return dst
	}

	dst = append(dst, g.flags)
	dst = append(dst, g.buf[:g.bufLen]...)
	*g = tagGroup{}

	return dst
}
