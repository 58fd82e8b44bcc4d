// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// Bit-exact encoders and a decoder for the four RefPack command forms. Each
// form packs a literal-run count pdl, a reference length rdl and a 1-based
// backward offset rdo (stored biased as rdo-1). The encoders write into a
// 4-byte scratch slot; the form of an encoded command is recovered from the
// high bits of its first byte. Literal runs themselves are handled by the
// emitter, not here.

// opcodeByte packs an opcode fragment to one byte as required by the RefPack bit layout.
// Callers pass values whose low 8 bits are the serialized representation.
func opcodeByte(v int) byte {
	// #nosec G115 -- RefPack opcodes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}

// setCmd2 encodes a 2-byte command: rdl in 3..10, rdo in 1..1024, pdl in 0..3.
func setCmd2(cmd *[4]byte, pdl, rdl, rdo int) {
	cmd[0] = opcodeByte((((rdo - 1) >> 8) << 5) | ((rdl - minRefLen2) << 2) | pdl)
	cmd[1] = opcodeByte(rdo - 1)
}

// setCmd3 encodes a 3-byte command: rdl in 4..67, rdo in 1..16384, pdl in 0..3.
func setCmd3(cmd *[4]byte, pdl, rdl, rdo int) {
	cmd[0] = opcodeByte(marker3 | (rdl - minRefLen3))
	cmd[1] = opcodeByte((pdl << 6) | ((rdo - 1) >> 8))
	cmd[2] = opcodeByte(rdo - 1)
}

// setCmd4 encodes a 4-byte command: rdl in 5..1028, rdo in 1..131072, pdl in 0..3.
func setCmd4(cmd *[4]byte, pdl, rdl, rdo int) {
	cmd[0] = opcodeByte(marker4 | (((rdo - 1) >> 16) << 4) | (((rdl - minRefLen4) >> 8) << 2) | pdl)
	cmd[1] = opcodeByte((rdo - 1) >> 8)
	cmd[2] = opcodeByte(rdo - 1)
	cmd[3] = opcodeByte(rdl - minRefLen4)
}

// setCmd1 encodes a 1-byte literal-run command: pdl a multiple of 4 in 4..112.
func setCmd1(cmd *[4]byte, pdl int) {
	cmd[0] = opcodeByte(marker1 | ((pdl >> 2) - 1))
}

// getCommand decodes a command previously written by one of the setCmd
// encoders. form is the opcode length in bytes (1, 2, 3 or 4); rdl and rdo
// are zero for the 1-byte form.
func getCommand(cmd *[4]byte) (form, pdl, rdl, rdo int) {
	switch {
	case cmd[0]&0x80 == 0:
		form = 2
		pdl = int(cmd[0] & 0x03)
		rdl = int((cmd[0]>>2)&0x07) + minRefLen2
		rdo = (int(cmd[0]&0x60) << 3) + int(cmd[1]) + 1

	case cmd[0]&0x40 == 0:
		form = 3
		pdl = int(cmd[1] >> 6)
		rdl = int(cmd[0]&0x3f) + minRefLen3
		rdo = (int(cmd[1]&0x3f) << 8) + int(cmd[2]) + 1

	case cmd[0]&0x20 == 0:
		form = 4
		pdl = int(cmd[0] & 0x03)
		rdl = (int(cmd[0]&0x0c) << 6) + int(cmd[3]) + minRefLen4
		rdo = (int(cmd[0]&0x10) << 12) + (int(cmd[1]) << 8) + int(cmd[2]) + 1

	default:
		form = 1
		pdl = (int(cmd[0]&0x1f) + 1) << 2
	}

	return form, pdl, rdl, rdo
}
