//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/markkurossi/nandopt/netlist"
)

// checkEquivalent compares the declared outputs of two netlists over
// an exhaustive truth-table assignment of the free inputs.
func checkEquivalent(t *testing.T, before, after *netlist.Netlist,
	inputs []string) {
	t.Helper()
	if len(inputs) > 8 {
		t.Fatalf("too many inputs for exhaustive evaluation")
	}
	assign := make(map[string]uint256.Int)
	for k, in := range inputs {
		assign[in] = netlist.TruthPattern(k)
	}
	wb, err := before.EvalWide(assign)
	if err != nil {
		t.Fatalf("EvalWide failed: %s", err)
	}
	wa, err := after.EvalWide(assign)
	if err != nil {
		t.Fatalf("EvalWide failed: %s", err)
	}
	for _, out := range before.Outputs {
		label := before.Label(out)
		sa, ok := after.Lookup(label)
		if !ok {
			t.Fatalf("output %s lost", label)
		}
		if !wb[out].Eq(&wa[sa]) {
			t.Fatalf("output %s: netlists not equivalent", label)
		}
	}
}

func TestAlgebraicDoubleNegation(t *testing.T) {
	data := `T1,A,B
T2,T1,T1
T3,T2,T2
OUTPUT-W0-B0,T3,C
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	out := n.Gates[n.Definer(mustLookup(t, n, "OUTPUT-W0-B0"))]
	if out.A != mustLookup(t, n, "T1") {
		t.Fatalf("double negation not collapsed")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B", "C"})
}

func TestAlgebraicOutputRewire(t *testing.T) {
	// A double negation driving a declared output is rewired in
	// place to the producers of the inner signal.
	data := `T1,A,B
T2,T1,T1
OUTPUT-W0-B0,T2,T2
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	o.prune()
	if len(n.Gates) != 1 {
		t.Fatalf("expected 1 gate, got %d", len(n.Gates))
	}
	g := n.Gates[0]
	if n.Label(g.Out) != "OUTPUT-W0-B0" ||
		n.Label(g.A) != "A" || n.Label(g.B) != "B" {
		t.Fatalf("wrong surviving gate %s,%s,%s",
			n.Label(g.Out), n.Label(g.A), n.Label(g.B))
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B"})
}

func TestAlgebraicInverterSharing(t *testing.T) {
	data := `T1,A,B
N1,T1,T1
N2,T1,T1
U1,N1,C
U2,N2,D
OUTPUT-W0-B0,U1,U2
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	u2 := n.Gates[n.Definer(mustLookup(t, n, "U2"))]
	if u2.A != mustLookup(t, n, "N1") {
		t.Fatalf("inverter not shared")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B", "C", "D"})
}

func TestAlgebraicSharingPrefersNonOutput(t *testing.T) {
	data := `T1,A,B
OUTPUT-W0-B0,T1,T1
N2,T1,T1
N3,T1,T1
U,N3,C
OUTPUT-W0-B1,U,U
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	if _, err := o.algebraic(); err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	u := n.Gates[n.Definer(mustLookup(t, n, "U"))]
	if u.A != mustLookup(t, n, "N2") {
		t.Fatalf("canonical inverter is %s, expected N2", n.Label(u.A))
	}
	if _, ok := n.Lookup("OUTPUT-W0-B0"); !ok {
		t.Fatalf("declared output eliminated")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B", "C"})
}

func TestAlgebraicTautology(t *testing.T) {
	data := `N1,A,A
T1,A,N1
OUTPUT-W0-B0,T1,C
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	out := n.Gates[n.Definer(mustLookup(t, n, "OUTPUT-W0-B0"))]
	if out.A != n.One() {
		t.Fatalf("NAND(x, NOT(x)) not folded to CONST-1")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "C"})
}

func TestAlgebraicORIdentity(t *testing.T) {
	data := `T1,A,B
N1,T1,T1
N2,T1,T1
R,N1,N2
OUTPUT-W0-B0,R,C
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rewrites, got %d", count)
	}
	out := n.Gates[n.Definer(mustLookup(t, n, "OUTPUT-W0-B0"))]
	if out.A != mustLookup(t, n, "T1") {
		t.Fatalf("OR self-identity not collapsed")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B", "C"})
}

func TestAlgebraicORIdentityOutput(t *testing.T) {
	data := `T1,A,B
N1,T1,T1
N2,T1,T1
OUTPUT-W0-B0,N1,N2
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	if _, err := o.algebraic(); err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	o.prune()
	if len(n.Gates) != 1 {
		t.Fatalf("expected 1 gate, got %d", len(n.Gates))
	}
	g := n.Gates[0]
	if n.Label(g.A) != "A" || n.Label(g.B) != "B" {
		t.Fatalf("output not rewired to producers")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B"})
}

func TestAlgebraicXORWithZero(t *testing.T) {
	data := `T,CONST-0,D
A1,CONST-0,T
A2,D,T
X,A1,A2
OUTPUT-W0-B0,X,C
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	out := n.Gates[n.Definer(mustLookup(t, n, "OUTPUT-W0-B0"))]
	if out.A != mustLookup(t, n, "D") {
		t.Fatalf("XOR(0, x) not collapsed to x")
	}
	checkEquivalent(t, parse(t, data), n, []string{"C", "D"})
}

func TestAlgebraicXORWithOne(t *testing.T) {
	data := `T,CONST-1,D
A1,CONST-1,T
A2,D,T
X,A1,A2
OUTPUT-W0-B0,X,C
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	if _, err := o.algebraic(); err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	x := n.Gates[n.Definer(mustLookup(t, n, "X"))]
	d := mustLookup(t, n, "D")
	if x.A != d || x.B != d {
		t.Fatalf("XOR(1, x) not rewritten to NOT(x)")
	}
	checkEquivalent(t, parse(t, data), n, []string{"C", "D"})
}

func TestAlgebraicXORDedup(t *testing.T) {
	data := `T1,A,B
A1,A,T1
A2,B,T1
X1,A1,A2
T2,A,B
B1,A,T2
B2,B,T2
X2,B1,B2
U,X1,C
OUTPUT-W0-B0,U,X2
`
	n := parse(t, data)
	o := New(NewParams(), n, nil)
	count, err := o.algebraic()
	if err != nil {
		t.Fatalf("algebraic failed: %s", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rewrite, got %d", count)
	}
	out := n.Gates[n.Definer(mustLookup(t, n, "OUTPUT-W0-B0"))]
	if out.B != mustLookup(t, n, "X1") {
		t.Fatalf("duplicate XOR not merged")
	}
	checkEquivalent(t, parse(t, data), n, []string{"A", "B", "C"})
}
