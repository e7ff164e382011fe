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

// cse merges gates computing the same unordered input pair. The
// first occurrence is the canonical gate; later duplicates are
// substituted to it. A duplicate defining a declared output keeps
// its gate but never becomes canonical. Inputs are resolved through
// the pending substitutions so chains of duplicates collapse within
// one sweep.
func (o *Optimizer) cse() (int, error) {
	start := time.Now()
	n := o.n
	total := len(n.Gates)
	sub := NewSubst(n)
	seen := make(map[[2]netlist.Signal]netlist.Signal)

	for _, g := range n.Gates {
		a, err := sub.Resolve(g.A)
		if err != nil {
			return 0, err
		}
		b, err := sub.Resolve(g.B)
		if err != nil {
			return 0, err
		}
		if a > b {
			a, b = b, a
		}
		key := [2]netlist.Signal{a, b}
		canon, ok := seen[key]
		if !ok {
			seen[key] = g.Out
			continue
		}
		if n.IsOutput(g.Out) {
			continue
		}
		if err := sub.Set(g.Out, canon); err != nil {
			return 0, err
		}
	}

	count := sub.Len()
	if err := sub.Apply(); err != nil {
		return 0, err
	}
	o.diag("CSE", start, count, total)
	return count, nil
}
