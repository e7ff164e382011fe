//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"github.com/holiman/uint256"
)

// EvalWide evaluates the netlist on 256 independent lanes in
// parallel. Lane i of every signal is bit i of its 256-bit value.
// Wide evaluation is two-valued: every leaf signal must be assigned.
// With at most eight free inputs, TruthPattern assignments make a
// single EvalWide an exhaustive truth-table evaluation.
func (n *Netlist) EvalWide(assign map[string]uint256.Int) ([]uint256.Int, error) {
	vals := make([]uint256.Int, len(n.names))
	seeded := make([]bool, len(n.names))

	vals[n.One()].Not(&vals[n.Zero()])
	seeded[n.Zero()] = true
	seeded[n.One()] = true

	for label, v := range assign {
		id, ok := n.ids[label]
		if !ok {
			continue
		}
		vals[id] = v
		seeded[id] = true
	}

	for _, g := range n.Gates {
		for _, in := range []Signal{g.A, g.B} {
			if n.def[in] < 0 && !seeded[in] {
				return nil, &UnresolvedError{
					Gate:  n.names[g.Out],
					Input: n.names[in],
				}
			}
		}
		v := &vals[g.Out]
		v.And(&vals[g.A], &vals[g.B])
		v.Not(v)
		seeded[g.Out] = true
	}
	return vals, nil
}

// Lane extracts the value of one lane.
func Lane(x *uint256.Int, lane int) uint64 {
	return (x[lane/64] >> (lane % 64)) & 1
}

// TruthPattern returns the wide value whose lane i is bit k of i.
// Assigning TruthPattern(k) to the k:th free input enumerates all
// input combinations across the lanes.
func TruthPattern(k int) uint256.Int {
	var x uint256.Int
	for i := 0; i < 256; i++ {
		if (i>>k)&1 != 0 {
			x[i/64] |= 1 << (i % 64)
		}
	}
	return x
}
