// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// copyBackRef copies length bytes into dst[outputPos:] from dist bytes back.
// If dist < length the reference overlaps its own output; newly written bytes
// become valid source for the remainder, which we satisfy by doubling the
// copied region instead of looping byte by byte.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	srcPos := outputPos - dist
	if srcPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[srcPos:srcPos+length])
		return nil
	}

	copy(dst[outputPos:outputPos+dist], dst[srcPos:outputPos])
	for copied := dist; copied < length; {
		copied += copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
	}

	return nil
}
