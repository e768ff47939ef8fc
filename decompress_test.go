package lznt1

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompress_CanonicalHelloWorld(t *testing.T) {
	stream := []byte{
		0x0C, 0xB0,
		0x00,
		'H', 'e', 'l', 'l', 'o', ' ', 'w', 'o',
		0x00,
		'r', 'l', 'd',
	}

	out, err := Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("Hello world")) {
		t.Fatalf("decoded %q, want %q", out, "Hello world")
	}
}

func TestDecompress_Terminators(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "nil-input", data: nil},
		{name: "zero-header", data: []byte{0x00, 0x00}},
		{name: "zero-header-then-null", data: []byte{0x00, 0x00, 0x00}},
		{name: "single-trailing-null", data: []byte{0x00}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decompress(tc.data)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if len(out) != 0 {
				t.Fatalf("decoded %d bytes, want 0", len(out))
			}
		})
	}
}

func TestDecompress_ErrorCases(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "header-first-byte-only",
			data: []byte{0xB0},
			want: ErrUnexpectedEOF,
		},
		{
			name: "single-nonzero-byte",
			data: []byte{0x41},
			want: ErrUnexpectedEOF,
		},
		{
			name: "declared-body-missing",
			data: []byte{0x63, 0xB0}, // compressed, size 100, no body
			want: ErrInputTooShort,
		},
		{
			name: "declared-body-truncated",
			data: []byte{0xFF, 0xB0, 0x00, 'A'}, // size 256, two body bytes
			want: ErrInputTooShort,
		},
		{
			name: "raw-body-truncated",
			data: []byte{0x05, 0x30, 0xAA}, // raw, size 6, one body byte
			want: ErrInputTooShort,
		},
		{
			name: "missing-tag-byte",
			data: []byte{0x02, 0xB0}, // compressed, size 3, no body
			want: ErrInputTooShort,
		},
		{
			name: "tuple-on-empty-output",
			data: []byte{0x02, 0xB0, 0x01, 0x00, 0x00}, // offset 1 with nothing produced
			want: ErrInvalidOffset,
		},
		{
			name: "truncated-tuple",
			data: []byte{0x01, 0xB0, 0x01, 0x00}, // tag marks a tuple, one byte follows
			want: ErrUnexpectedEOF,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompress(tc.data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Decompress error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecompress_OffsetBoundary(t *testing.T) {
	// Two literals then a back-reference. With two bytes produced, offset 2
	// is the farthest valid reach; offset 3 must fail.
	build := func(tuple uint16) []byte {
		return []byte{0x04, 0xB0, 0x04, 'A', 'B', byte(tuple), byte(tuple >> 8)}
	}

	t.Run("offset-at-limit", func(t *testing.T) {
		out, err := Decompress(build(1 << 12)) // offset 2, length 3
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, []byte("ABABA")) {
			t.Fatalf("decoded %q, want %q", out, "ABABA")
		}
	})

	t.Run("offset-past-limit", func(t *testing.T) {
		_, err := Decompress(build(2 << 12)) // offset 3, length 3
		if !errors.Is(err, ErrInvalidOffset) {
			t.Fatalf("Decompress error = %v, want ErrInvalidOffset", err)
		}
	})
}

func TestDecompress_TolerantEOFInsideTagGroup(t *testing.T) {
	// Body ends after one literal of an eight-token group: success, not EOF.
	stream := []byte{0x01, 0xB0, 0x00, 'A'}

	out, err := Decompress(stream)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("A")) {
		t.Fatalf("decoded %q, want %q", out, "A")
	}
}

func TestDecompress_HeaderNibbleIgnored(t *testing.T) {
	t.Run("compressed-with-foreign-nibble", func(t *testing.T) {
		// 0xC002: bit 15 set, engine nibble 0x4 instead of 0x3.
		stream := []byte{0x02, 0xC0, 0x00, 'A', 'B'}

		out, err := Decompress(stream)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, []byte("AB")) {
			t.Fatalf("decoded %q, want %q", out, "AB")
		}
	})

	t.Run("raw-with-zero-nibble", func(t *testing.T) {
		// 0x0001: bit 15 clear, engine nibble zero, size 2.
		stream := []byte{0x01, 0x00, 'X', 'Y'}

		out, err := Decompress(stream)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, []byte("XY")) {
			t.Fatalf("decoded %q, want %q", out, "XY")
		}
	})
}

func TestAppendBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := appendBackRef([]byte("abcdefgh"), 8, 4)
		if got, want := string(dst), "abcdefghabcd"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		dst := appendBackRef([]byte("ABC"), 3, 5)
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("rle", func(t *testing.T) {
		dst := appendBackRef([]byte("xyz"), 1, 4)
		if got, want := string(dst), "xyzzzzz"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})
}

func TestAdaptiveState_CanonicalTransitions(t *testing.T) {
	// Canonical LZNT1 table: split drops at these produced-byte counts.
	transitions := map[int]int{
		17: 11, 33: 10, 65: 9, 129: 8,
		257: 7, 513: 6, 1025: 5, 2049: 4,
	}

	state := newAdaptiveState()
	if state.split != 12 || state.threshold != 16 {
		t.Fatalf("initial state = (%d, %d), want (12, 16)", state.split, state.threshold)
	}

	prev := state.split
	for n := 1; n <= 4096; n++ {
		state.update(n)

		if want, ok := transitions[n]; ok && state.split != want {
			t.Fatalf("split at n=%d is %d, want %d", n, state.split, want)
		}
		if state.split > prev {
			t.Fatalf("split increased at n=%d: %d -> %d", n, prev, state.split)
		}

		prev = state.split
	}

	if state.split != 4 {
		t.Fatalf("split after 4096 bytes = %d, want 4", state.split)
	}
}

func TestAdaptiveState_SplitClampsAtZero(t *testing.T) {
	// Hostile compressed bodies can expand far past chunkSize; the split
	// bottoms out at zero instead of going negative.
	state := newAdaptiveState()
	state.update(1 << 22)

	if state.split != 0 {
		t.Fatalf("split = %d, want 0", state.split)
	}
	if state.mask != 0 {
		t.Fatalf("mask = %d, want 0", state.mask)
	}
}

func FuzzDecompressRobustness(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0xB0})
	f.Add([]byte{0x02, 0xB0, 0x01, 0x00, 0x00})
	f.Add([]byte{0x0C, 0xB0, 0x00, 'H', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 0x00, 'r', 'l', 'd'})
	f.Add(Compress(bytes.Repeat([]byte("fuzz seed"), 100), nil))

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := AppendDecompress(nil, data)
		if err == nil {
			return
		}

		// Failures must be one of the documented kinds; anything else means
		// the parser lost track of its own error contract.
		known := errors.Is(err, ErrUnexpectedEOF) ||
			errors.Is(err, ErrInputTooShort) ||
			errors.Is(err, ErrInvalidOffset) ||
			errors.Is(err, ErrInvalidHeader)
		if !known {
			t.Fatalf("undocumented error kind %v (produced %d bytes)", err, len(out))
		}
	})
}
