// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// RefPack format constants: stream framing, per-form reference bounds, and
// literal-run bounds.

// Stream framing.
const (
	headerMagic0 = 0x10
	headerMagic1 = 0xfb
	headerLen    = 5

	// MaxInputSize is the largest input the header's 3-byte decompressed-size
	// field can express.
	MaxInputSize = 1<<24 - 1
)

// Reference bounds per command form (length and backward offset).
const (
	minRefLen2 = 3
	maxRefLen2 = 10
	maxRefOff2 = 1 << 10

	minRefLen3 = 4
	maxRefLen3 = 67
	maxRefOff3 = 1 << 14

	minRefLen4 = 5
	maxRefLen4 = 1028
	maxRefOff4 = 1 << 17
)

// Opcode markers for the 3-byte, 4-byte, 1-byte and stop command forms.
// The 2-byte form is any opcode with the high bit clear.
const (
	marker3 = 0x80
	marker4 = 0xc0
	marker1 = 0xe0
	markerS = 0xfc
)

// Literal-run bounds: the 1-byte form carries a multiple of 4 in [4,112];
// every other form (stop included) carries 0–3 trailing literal bytes.
const (
	minLiteralRun = 4
	maxLiteralRun = 112
	maxCmdLiteral = 3
)
