// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// Compress encodes src as a RefPack stream of provably minimal length: the
// emitted stream decodes back to src and no valid RefPack encoding of src is
// shorter. Inputs longer than MaxInputSize are rejected with ErrInputTooLarge.
func Compress(src []byte) ([]byte, error) {
	insize := len(src)
	if insize > MaxInputSize {
		return nil, ErrInputTooLarge
	}

	// Up to 3 bytes fit entirely in the stop command's literal tail; the
	// shortest-path search has nothing to decide.
	if insize <= maxCmdLiteral {
		out := make([]byte, headerLen+1+insize)
		writeHeader(out, insize)
		out[headerLen] = opcodeByte(markerS | insize)
		copy(out[headerLen+1:], src)

		return out, nil
	}

	return emit(src, optimize(src))
}
