// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// emit assembles the framed stream from a settled state table: header, the
// backtracked command body, and the stop command with its 0–3 byte literal
// tail. The body is written back-to-front; each state's distance gives the
// exact end offset of its command, so every byte lands in place.
func emit(in []byte, states []outputState) ([]byte, error) {
	insize := len(in)

	// The stop command absorbs up to 3 trailing bytes as literals; end the
	// command path at whichever terminus is cheapest overall.
	stopPdl, dist := bestLiteralPrefix(states, insize)

	if dist > unreachable-(headerLen+1) {
		return nil, ErrSizeOverflow
	}
	outsize := headerLen + int(dist) + 1

	out := make([]byte, outsize)
	out[outsize-1-stopPdl] = opcodeByte(markerS | stopPdl)
	copy(out[outsize-stopPdl:], in[insize-stopPdl:])

	for i := insize - stopPdl; i != 0; {
		form, pdl, rdl, _ := getCommand(&states[i].command)
		end := headerLen + int(states[i].distance)
		copy(out[end-pdl-form:], states[i].command[:form])
		copy(out[end-pdl:end], in[i-rdl-pdl:i-rdl])
		i -= rdl + pdl
	}

	writeHeader(out, insize)

	return out, nil
}

// writeHeader writes the magic and the big-endian 24-bit decompressed size.
func writeHeader(out []byte, insize int) {
	out[0] = headerMagic0
	out[1] = headerMagic1
	out[2] = opcodeByte(insize >> 16)
	out[3] = opcodeByte(insize >> 8)
	out[4] = opcodeByte(insize)
}
