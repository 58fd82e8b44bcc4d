// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// The optimizer is a shortest-path walk over input positions. Position i
// settles before the outer loop leaves it: the shortest command advancing the
// cursor covers at least 3 bytes plus up to 3 preceding literals, so every
// transition landing on i originates at a position the loop already visited.

// optimize fills the state table for in. On return states[i].distance is the
// true minimum number of body bytes whose decoding reproduces in[:i], for
// every reachable i.
func optimize(in []byte) []outputState {
	insize := len(in)
	states := newStateTable(insize)

	for i := 0; i <= insize-minRefLen2; i++ {
		// Cheapest way to stand at i with a 0–3 byte literal prefix pending.
		// Invariant over rdl, so hoisted out of the scan loop.
		pdl, base := bestLiteralPrefix(states, i)

		scan := newRefScan(in, i)
		maxLen := min(insize-i, maxRefLen4)
		for rdl := minRefLen2; rdl <= maxLen; rdl++ {
			rdo, ok := scan.extend(rdl)
			if !ok {
				break
			}

			// The cheapest form that can hold (rdl, rdo). A 2-byte command
			// always beats 3-byte, and 3-byte always beats 4-byte.
			var cost uint32
			switch {
			case rdo <= maxRefOff2 && rdl <= maxRefLen2:
				cost = 2
			case rdo <= maxRefOff3 && rdl >= minRefLen3 && rdl <= maxRefLen3:
				cost = 3
			case rdl >= minRefLen4:
				cost = 4
			default:
				// rdl=3 beyond the 2-byte offset window, or rdl=4 beyond the
				// 3-byte window: not encodable.
				continue
			}

			if base > unreachable-cost || base+cost >= states[i+rdl].distance {
				continue
			}

			next := &states[i+rdl]
			next.distance = base + cost
			switch cost {
			case 2:
				setCmd2(&next.command, pdl, rdl, rdo)
			case 3:
				setCmd3(&next.command, pdl, rdl, rdo)
			default:
				setCmd4(&next.command, pdl, rdl, rdo)
			}
		}

		// 1-byte literal-run commands. Their run starts exactly at i; no
		// literal-prefix selection applies.
		dist := states[i].distance
		for run := minLiteralRun; run <= insize-i && run <= maxLiteralRun; run += minLiteralRun {
			if dist > unreachable-uint32(1+run) {
				break
			}

			cand := dist + uint32(1+run)
			if cand < states[i+run].distance {
				states[i+run].distance = cand
				setCmd1(&states[i+run].command, run)
			}
		}
	}

	return states
}

// bestLiteralPrefix selects the pdl in 0..3 minimizing
// states[i-pdl].distance + pdl, i.e. the cheapest cost of standing at i with
// the chosen literal bytes still owed to the next command.
func bestLiteralPrefix(states []outputState, i int) (pdl int, dist uint32) {
	dist = states[i].distance
	for j := 1; j <= i && j <= maxCmdLiteral; j++ {
		d := states[i-j].distance
		if d <= unreachable-uint32(j) && d+uint32(j) < dist {
			pdl = j
			dist = d + uint32(j)
		}
	}

	return pdl, dist
}
