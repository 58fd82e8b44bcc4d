// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

/*
Package refpack implements the RefPack compressed byte-stream format used for
Electronic Arts asset data.

The stream is framed by a 5-byte header (magic 0x10 0xFB plus the big-endian
24-bit decompressed size), a body of back-reference and literal-run commands,
and a single stop command carrying a final 0–3 byte literal tail.

The encoder is exhaustive: it runs a shortest-path search over all valid
command sequences and emits the provably smallest stream for the input. There
are no compression levels; Compress always produces the minimum.

# Compress

	out, err := refpack.Compress(data)

Inputs longer than 2^24-1 bytes cannot be described by the header's size field
and are rejected with ErrInputTooLarge.

# Decompress

The decompressed size is carried in the header, so options may be nil:

	out, err := refpack.Decompress(stream, nil)

To get the number of input bytes consumed (e.g. for RefPack streams embedded
in larger asset files):

	out, nRead, err := refpack.DecompressN(stream, nil)
	// advance: stream = stream[nRead:]

From an io.Reader:

	out, err := refpack.DecompressFromReader(r, nil)
*/
package refpack
