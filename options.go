// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// CompressOptions configures compression.
type CompressOptions struct {
	// SearchDepth bounds how many hash-chain candidates the match finder
	// inspects per position. 0 means the default (16); negative values are
	// clamped to 1. Higher values trade speed for ratio and never affect
	// stream validity.
	SearchDepth int
}

// DefaultCompressOptions returns options with the default search depth.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{SearchDepth: defaultSearchDepth}
}

// DecompressOptions configures DecompressFromReader.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
