package lznt1

// adaptiveState tracks the split between the offset and length fields of a
// back-reference tuple within one chunk. Both endpoints run the identical
// update after every emitted token, keyed by the cumulative count of
// uncompressed bytes produced in the chunk, so their tuple layouts agree
// byte for byte.
type adaptiveState struct {
	split     int // bit width of the tuple length field
	mask      int // 1<<split - 1
	threshold int // produced-byte count that triggers the next narrowing
}

func newAdaptiveState() adaptiveState {
	return adaptiveState{
		split:     initialSplit,
		mask:      1<<initialSplit - 1,
		threshold: initialThreshold,
	}
}

// update narrows the split while produced exceeds the current threshold.
// Within a chunk the split only decreases. It is clamped at zero; compressor
// input never drives it below 4, but a compressed body may legally expand
// past chunkSize decoded bytes.
func (s *adaptiveState) update(produced int) {
	for produced > s.threshold {
		if s.split > 0 {
			s.split--
			s.mask = 1<<s.split - 1
		}

		s.threshold <<= 1
	}
}

// maxOffset returns the largest encodable back-reference distance under the
// current split.
func (s *adaptiveState) maxOffset() int {
	return 1 << (16 - s.split)
}

// maxLength returns the largest encodable match length under the current split.
func (s *adaptiveState) maxLength() int {
	return 1<<s.split + 2
}

// unpackTuple splits a 16-bit tuple into its offset and length under the
// current state.
func (s *adaptiveState) unpackTuple(v uint16) (offset, length int) {
	return int(v)>>s.split + 1, int(v)&s.mask + minMatch
}

// packTuple encodes an (offset, length) pair under the given split.
// offset must be in [1, 1<<(16-split)] and length in [minMatch, 1<<split + 2].
func packTuple(offset, length, split int) uint16 {
	return uint16((offset-1)<<split | (length - minMatch)) //nolint:gosec // G115: preconditions keep the value in 16 bits
}
