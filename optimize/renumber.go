//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"fmt"
	"strings"

	"github.com/markkurossi/nandopt/netlist"
)

// renumber relabels the temporary signals densely in the gate
// production order. Only labels containing a -T sequence number are
// renamed; inputs, constants, declared outputs, and other named
// signals keep their labels. The pass is purely cosmetic: it never
// changes the gate count or structure. The netlist is rebuilt so the
// label arena drops the eliminated signals.
func (o *Optimizer) renumber() (int, error) {
	n := o.n
	nn := netlist.New()

	mapped := make([]netlist.Signal, n.NumSignals())
	for i := range mapped {
		mapped[i] = netlist.Undef
	}
	resolve := func(s netlist.Signal) netlist.Signal {
		if mapped[s] == netlist.Undef {
			mapped[s] = nn.Intern(n.Label(s))
		}
		return mapped[s]
	}

	counter := 0
	count := 0
	for _, g := range n.Gates {
		a := resolve(g.A)
		b := resolve(g.B)

		label := n.Label(g.Out)
		if !n.IsOutput(g.Out) {
			if idx := strings.LastIndex(label, "-T"); idx >= 0 {
				counter++
				renamed := fmt.Sprintf("%s-T%d", label[:idx], counter)
				if renamed != label {
					count++
				}
				label = renamed
			}
		}
		out := nn.Intern(label)
		mapped[g.Out] = out
		if err := nn.AddGate(out, a, b); err != nil {
			return 0, err
		}
	}
	o.n = nn
	return count, nil
}
