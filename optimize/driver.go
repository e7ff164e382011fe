//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"fmt"
	"time"

	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/text/superscript"
)

// Optimizer drives the optimization passes to a fixpoint over the
// netlist.
type Optimizer struct {
	params *Params
	n      *netlist.Netlist
	env    netlist.Values

	// Rounds is the number of optimization rounds run.
	Rounds int

	// Converged reports if a round completed without changes. When
	// false, the round limit stopped the optimization and the
	// netlist is the best result so far.
	Converged bool

	// Initial is the gate count before optimization.
	Initial int

	Totals Totals
}

// Totals accumulates the per-pass rewrite counts over all rounds.
type Totals struct {
	ConstFold int
	Algebraic int
	Motifs    int
	CSE       int
	Prune     int
	Renumber  int
}

// New creates a new optimizer for the netlist. The values env seed
// the constant propagation; explicitly unknown entries keep their
// signals data dependent.
func New(params *Params, n *netlist.Netlist, env netlist.Values) *Optimizer {
	if env == nil {
		env = make(netlist.Values)
	}
	return &Optimizer{
		params: params,
		n:      n,
		env:    env,
	}
}

// Netlist returns the current netlist.
func (o *Optimizer) Netlist() *netlist.Netlist {
	return o.n
}

func (o *Optimizer) diag(name string, start time.Time, count, total int) {
	if !o.params.Diagnostics {
		return
	}
	var pct float64
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	fmt.Printf(" - %-11s%12s: %d/%d (%.2f%%)\n",
		name+":", time.Since(start), count, total, pct)
}

// Optimize runs optimization rounds until a full round makes no
// changes or the round limit is reached. Each round canonicalizes
// the gate inputs and then runs constant folding, the algebraic
// rewrites, the motif rewrites, common subexpression elimination,
// and the dead gate sweep. After the last round the temporary
// labels are renumbered densely.
func (o *Optimizer) Optimize() error {
	if err := o.n.Verify(); err != nil {
		return err
	}
	o.Initial = len(o.n.Gates)

	for round := 1; round <= o.params.MaxRounds; round++ {
		o.Rounds = round
		changes, err := o.round(round)
		if err != nil {
			return err
		}
		if changes == 0 {
			o.Converged = true
			break
		}
	}
	if !o.Converged {
		fmt.Printf("warning: no convergence after %d rounds\n",
			o.params.MaxRounds)
	}

	count, err := o.renumber()
	if err != nil {
		return err
	}
	o.Totals.Renumber = count

	if o.params.NetlistDotOut != nil {
		o.n.Dot(o.params.NetlistDotOut)
	}
	return nil
}

func (o *Optimizer) round(round int) (int, error) {
	before := len(o.n.Gates)
	o.canonicalize()

	count, err := o.constFold()
	if err != nil {
		return 0, err
	}
	o.Totals.ConstFold += count
	changes := count

	count, err = o.algebraic()
	if err != nil {
		return 0, err
	}
	o.Totals.Algebraic += count
	changes += count

	if !o.params.NoMotifs {
		count, err = o.motifs()
		if err != nil {
			return 0, err
		}
		o.Totals.Motifs += count
		changes += count
	}

	count, err = o.cse()
	if err != nil {
		return 0, err
	}
	o.Totals.CSE += count
	changes += count

	count = o.prune()
	o.Totals.Prune += count
	changes += count

	if o.params.Verbose {
		fmt.Printf("Round%s: %d => %d gates\n",
			superscript.Itoa(round), before, len(o.n.Gates))
	}
	return changes, nil
}
