// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// DecompressOptions configures decompression. A nil options value is valid:
// the output size comes from the stream header.
type DecompressOptions struct {
	// OutLen overrides the header's declared decompressed size when > 0.
	// Use this to cap the output of untrusted streams.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options that trust the stream header.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
