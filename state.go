// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package refpack

// unreachable is the distance sentinel for positions the optimizer has not
// reached yet. Relaxations guard additions against it before comparing.
const unreachable = ^uint32(0)

// outputState is one shortest-path record per input position: the minimum
// number of body bytes whose decoding reproduces the input prefix ending at
// that position, and the command that closed one such shortest encoding.
// The command is kept in its wire form; getCommand recovers its fields in
// constant time from the opcode's high bits.
type outputState struct {
	distance uint32
	command  [4]byte
}

// newStateTable allocates the state arena for an input of the given size and
// marks every position except the origin unreachable.
func newStateTable(insize int) []outputState {
	states := make([]outputState, insize+1)
	for i := 1; i <= insize; i++ {
		states[i].distance = unreachable
	}

	return states
}
