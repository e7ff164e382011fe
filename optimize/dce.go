//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"time"

	"github.com/markkurossi/nandopt/netlist"
)

// prune removes gates whose outputs reach no declared output. The
// netlist is topologically sorted so one backward sweep computes the
// live set exactly.
func (o *Optimizer) prune() int {
	start := time.Now()
	n := o.n
	total := len(n.Gates)

	live := make([]bool, n.NumSignals())
	for _, out := range n.Outputs {
		live[out] = true
	}

	gates := make([]netlist.Gate, len(n.Gates))
	pos := len(gates)
	for i := len(n.Gates) - 1; i >= 0; i-- {
		g := n.Gates[i]
		if !live[g.Out] {
			continue
		}
		live[g.A] = true
		live[g.B] = true
		pos--
		gates[pos] = g
	}
	n.Gates = gates[pos:]
	n.Reindex()

	count := total - len(n.Gates)
	o.diag("Prune", start, count, total)
	return count
}
