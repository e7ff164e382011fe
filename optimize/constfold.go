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

// constFold propagates three-valued constants through the netlist in
// one forward sweep. A gate with a FALSE input folds to CONST-1 and
// a gate with two TRUE inputs folds to CONST-0. Inputs that are
// explicitly UNKNOWN block folding: the gate is data dependent and
// must survive. Gates defining declared outputs are never folded.
func (o *Optimizer) constFold() (int, error) {
	start := time.Now()
	n := o.n
	total := len(n.Gates)
	sub := NewSubst(n)

	known := make([]netlist.Value, n.NumSignals())
	known[n.Zero()] = netlist.Zero
	known[n.One()] = netlist.One

	for label, v := range o.env {
		if v == netlist.Unknown {
			continue
		}
		id, ok := n.Lookup(label)
		if !ok {
			continue
		}
		known[id] = v
	}

	for _, g := range n.Gates {
		a, err := sub.Resolve(g.A)
		if err != nil {
			return 0, err
		}
		b, err := sub.Resolve(g.B)
		if err != nil {
			return 0, err
		}
		va := known[a]
		vb := known[b]

		var folded netlist.Value
		if va == netlist.Zero || vb == netlist.Zero {
			folded = netlist.One
		} else if va == netlist.One && vb == netlist.One {
			folded = netlist.Zero
		} else {
			continue
		}
		known[g.Out] = folded
		if n.IsOutput(g.Out) {
			// The known value propagates but the defining gate stays.
			continue
		}
		var to netlist.Signal
		if folded == netlist.One {
			to = n.One()
		} else {
			to = n.Zero()
		}
		if err := sub.Set(g.Out, to); err != nil {
			return 0, err
		}
	}

	count := sub.Len()
	if err := sub.Apply(); err != nil {
		return 0, err
	}
	o.diag("ConstFold", start, count, total)
	return count, nil
}
