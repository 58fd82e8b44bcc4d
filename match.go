// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

import "bytes"

// refScan finds back-references for one input position. As the wanted length
// grows one byte at a time, it keeps the nearest offset whose window still
// matches. The nearest offset is always at least as good as any farther one:
// it can only qualify for the same or a cheaper command form.
type refScan struct {
	in      []byte
	pos     int
	rdo     int // current candidate offset; 0 means no match found yet
	maxBack int // min(pos, maxRefOff4)
}

// newRefScan prepares a scan for back-references starting at in[pos].
func newRefScan(in []byte, pos int) refScan {
	return refScan{in: in, pos: pos, maxBack: min(pos, maxRefOff4)}
}

// extend grows the wanted match length to rdl and reports whether any offset
// within the window matches that many bytes. rdl must increase by exactly one
// per call, starting at minRefLen2. On the first failure the scan is
// exhausted for good: no offset can satisfy any larger length either.
func (s *refScan) extend(rdl int) (rdo int, ok bool) {
	// A candidate that matched rdl-1 bytes still matches rdl bytes iff the one
	// new trailing byte agrees; only then can the re-seek be skipped.
	if rdl == minRefLen2 || s.in[s.pos-s.rdo+rdl-1] != s.in[s.pos+rdl-1] {
		want := s.in[s.pos : s.pos+rdl]
		for s.rdo++; s.rdo <= s.maxBack; s.rdo++ {
			if bytes.Equal(s.in[s.pos-s.rdo:s.pos-s.rdo+rdl], want) {
				return s.rdo, true
			}
		}

		return 0, false
	}

	return s.rdo, true
}
