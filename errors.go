// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize, or when
	// DecompressFromReader reads more than DecompressOptions.MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrSizeOverflow is returned when the encoded size would overflow the size counter.
	ErrSizeOverflow = errors.New("output size overflows size counter")

	// ErrHeaderMagic is returned when the stream does not start with 0x10 0xFB.
	ErrHeaderMagic = errors.New("bad header magic")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrUnexpectedEOF is returned when the stream ends before the stop command.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)
