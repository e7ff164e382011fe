//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

// canonicalize orders the commutative gate inputs alphabetically by
// label. Structural matching and subexpression keys then see one
// spelling for each input pair. Never changes the gate count.
func (o *Optimizer) canonicalize() int {
	n := o.n
	var count int
	for idx, g := range n.Gates {
		if n.Label(g.A) > n.Label(g.B) {
			n.Gates[idx].A, n.Gates[idx].B = g.B, g.A
			count++
		}
	}
	return count
}
