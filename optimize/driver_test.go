//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"testing"

	"github.com/markkurossi/nandopt/netlist"
)

func TestOptimizeSingleGate(t *testing.T) {
	// A double-NOT copy of NAND(A,B) into the output collapses to
	// a single gate computing the output directly.
	n := parse(t, `T1,A,B
T2,T1,T1
OUTPUT-W0-B0,T2,T2
`)
	o := New(NewParams(), n, nil)
	if err := o.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	if !o.Converged {
		t.Fatalf("no convergence")
	}
	result := o.Netlist()
	if len(result.Gates) != 1 {
		t.Fatalf("expected 1 gate, got %d", len(result.Gates))
	}
	g := result.Gates[0]
	if result.Label(g.Out) != "OUTPUT-W0-B0" ||
		result.Label(g.A) != "A" || result.Label(g.B) != "B" {
		t.Fatalf("wrong result gate %s,%s,%s",
			result.Label(g.Out), result.Label(g.A), result.Label(g.B))
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	n := parse(t, faData)
	o := New(NewParams(), n, nil)
	if err := o.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	if !o.Converged {
		t.Fatalf("no convergence")
	}
	result := o.Netlist()
	if len(result.Gates) != 9 {
		t.Fatalf("expected 9 gates, got %d", len(result.Gates))
	}
	checkEquivalent(t, parse(t, faData), result,
		[]string{"A", "B", "CIN"})

	o2 := New(NewParams(), result, nil)
	if err := o2.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	if !o2.Converged || o2.Rounds != 1 {
		t.Fatalf("optimized netlist not stable")
	}
	if len(o2.Netlist().Gates) != 9 {
		t.Fatalf("second run changed gate count to %d",
			len(o2.Netlist().Gates))
	}
}

func TestOptimizeRoundLimit(t *testing.T) {
	n := parse(t, `T1,A,B
T2,T1,T1
OUTPUT-W0-B0,T2,T2
`)
	params := NewParams()
	params.MaxRounds = 1
	o := New(params, n, nil)
	if err := o.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	if o.Converged {
		t.Fatalf("converged although the round made changes")
	}
	// The result is still usable.
	if err := o.Netlist().Verify(); err != nil {
		t.Fatalf("Verify failed: %s", err)
	}
}

func TestOptimizeRenumber(t *testing.T) {
	n := parse(t, `R0-CH-T7,A,B
R0-CH-T9,A,R0-CH-T7
OUTPUT-W0-B0,R0-CH-T9,R0-CH-T9
`)
	o := New(NewParams(), n, nil)
	if err := o.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	result := o.Netlist()
	if _, ok := result.Lookup("R0-CH-T1"); !ok {
		t.Fatalf("temporaries not renumbered")
	}
	if _, ok := result.Lookup("R0-CH-T2"); !ok {
		t.Fatalf("temporaries not renumbered")
	}
	if _, ok := result.Lookup("R0-CH-T9"); ok {
		t.Fatalf("stale temporary label")
	}
	if _, ok := result.Lookup("OUTPUT-W0-B0"); !ok {
		t.Fatalf("declared output renamed")
	}
	if o.Totals.Renumber != 2 {
		t.Fatalf("expected 2 renames, got %d", o.Totals.Renumber)
	}
}

func TestOptimizeWithValues(t *testing.T) {
	n := parse(t, `T1,K,A
T2,T1,B
OUTPUT-W0-B0,T2,T2
`)
	env := netlist.Values{
		"K": netlist.Zero,
	}
	o := New(NewParams(), n, env)
	if err := o.Optimize(); err != nil {
		t.Fatalf("Optimize failed: %s", err)
	}
	result := o.Netlist()
	// T1 folds to CONST-1, leaving the output a double negation
	// of B. The copy pair is the minimal form.
	if len(result.Gates) != 2 {
		t.Fatalf("expected 2 gates, got %d", len(result.Gates))
	}
	if o.Totals.ConstFold != 1 {
		t.Fatalf("expected 1 fold, got %d", o.Totals.ConstFold)
	}
}

func TestOptimizeTopologyError(t *testing.T) {
	n := netlist.New()
	a := n.Intern("A")
	t1 := n.Intern("T1")
	t2 := n.Intern("T2")
	n.AddGate(t1, t2, a)
	n.AddGate(t2, a, a)

	o := New(NewParams(), n, nil)
	if err := o.Optimize(); err == nil {
		t.Fatalf("topological order violation not detected")
	}
}
