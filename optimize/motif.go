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

// andGate describes a gate computing AND(X, Y) as an inverter of the
// inner gate T=NAND(X, Y).
type andGate struct {
	X netlist.Signal
	Y netlist.Signal
	T netlist.Signal
}

func andTable(n *netlist.Netlist, inv []netlist.Signal) map[netlist.Signal]andGate {
	ands := make(map[netlist.Signal]andGate)
	for _, g := range n.Gates {
		t := inv[g.Out]
		if t == netlist.Undef {
			continue
		}
		tIdx := n.Definer(t)
		if tIdx < 0 {
			continue
		}
		tg := n.Gates[tIdx]
		if tg.A == tg.B {
			continue
		}
		ands[g.Out] = andGate{
			X: tg.A,
			Y: tg.B,
			T: t,
		}
	}
	return ands
}

// majSplice is the replacement for a matched majority function
// MAJ(a,b,c) = XOR(XOR(AND(a,b), AND(a,c)), AND(b,c)). The inner
// NANDs survive; the majority becomes
// NAND(NOT(NAND(AB, AC)), BC).
type majSplice struct {
	AB netlist.Signal
	AC netlist.Signal
	BC netlist.Signal
}

func matchMAJ(ands map[netlist.Signal]andGate,
	xors map[netlist.Signal]xorMatch, m xorMatch) (majSplice, bool) {

	for _, try := range [2][2]netlist.Signal{{m.A, m.B}, {m.B, m.A}} {
		inter, bc := try[0], try[1]
		bcAnd, ok := ands[bc]
		if !ok {
			continue
		}
		im, ok := xors[inter]
		if !ok {
			continue
		}
		abAnd, ok := ands[im.A]
		if !ok {
			continue
		}
		acAnd, ok := ands[im.B]
		if !ok {
			continue
		}
		var cands [][2]netlist.Signal
		if abAnd.X == acAnd.X {
			cands = append(cands, [2]netlist.Signal{abAnd.Y, acAnd.Y})
		}
		if abAnd.X == acAnd.Y {
			cands = append(cands, [2]netlist.Signal{abAnd.Y, acAnd.X})
		}
		if abAnd.Y == acAnd.X {
			cands = append(cands, [2]netlist.Signal{abAnd.X, acAnd.Y})
		}
		if abAnd.Y == acAnd.Y {
			cands = append(cands, [2]netlist.Signal{abAnd.X, acAnd.X})
		}
		for _, cand := range cands {
			if sameSet(bcAnd.X, bcAnd.Y, cand[0], cand[1]) {
				return majSplice{
					AB: abAnd.T,
					AC: acAnd.T,
					BC: bcAnd.T,
				}, true
			}
		}
	}
	return majSplice{}, false
}

// matchCH matches the choice function
// CH(e,f,g) = XOR(AND(e,f), AND(NOT(e), g)). The two products are
// mutually exclusive so the XOR diamond collapses to
// NAND(NAND(e,f), NAND(NOT(e), g)).
func matchCH(inv []netlist.Signal, ands map[netlist.Signal]andGate,
	m xorMatch) (tEF, tNG netlist.Signal, ok bool) {

	for _, try := range [2][2]netlist.Signal{{m.A, m.B}, {m.B, m.A}} {
		efAnd, ok := ands[try[0]]
		if !ok {
			continue
		}
		ngAnd, ok := ands[try[1]]
		if !ok {
			continue
		}
		for _, ne := range []netlist.Signal{ngAnd.X, ngAnd.Y} {
			e := inv[ne]
			if e == netlist.Undef {
				continue
			}
			if e == efAnd.X || e == efAnd.Y {
				return efAnd.T, ngAnd.T, true
			}
		}
	}
	return netlist.Undef, netlist.Undef, false
}

// matchCarry matches the full-adder carry
// OR(AND(a,b), AND(cin, XOR(a,b))) in its naive form
// NAND(NOT(AND(a,b)), NOT(AND(cin,x))). The inverters of the two
// products cancel against the inner NANDs:
// NAND(NAND(a,b), NAND(cin,x)).
func matchCarry(inv []netlist.Signal, ands map[netlist.Signal]andGate,
	xors map[netlist.Signal]xorMatch,
	g netlist.Gate) (tAB, tCX netlist.Signal, ok bool) {

	p := netlist.Undef
	q := netlist.Undef
	if g.A != g.B {
		p = inv[g.A]
		q = inv[g.B]
	}
	if p == netlist.Undef || q == netlist.Undef {
		return netlist.Undef, netlist.Undef, false
	}
	pAnd, pOk := ands[p]
	qAnd, qOk := ands[q]
	if !pOk || !qOk {
		return netlist.Undef, netlist.Undef, false
	}
	for _, try := range [2][2]andGate{{pAnd, qAnd}, {qAnd, pAnd}} {
		ab, cx := try[0], try[1]
		for _, x := range []netlist.Signal{cx.X, cx.Y} {
			m, ok := xors[x]
			if !ok {
				continue
			}
			if sameSet(m.A, m.B, ab.X, ab.Y) {
				return ab.T, cx.T, true
			}
		}
	}
	return netlist.Undef, netlist.Undef, false
}

// motifs rewrites the matched structural motifs: majority, choice,
// and full-adder carry. The template set is closed; a shape not in
// it is left alone. Rewrites only redirect the final gate of each
// motif, orphaning the naive interior for the following dead gate
// sweep. The majority rewrite splices two new gates in front of the
// final gate.
func (o *Optimizer) motifs() (int, error) {
	start := time.Now()
	n := o.n
	total := len(n.Gates)
	inv := invTable(n)
	ands := andTable(n, inv)
	xors := xorTable(n)

	var matches int
	splices := make(map[int][]netlist.Gate)

	for idx := range n.Gates {
		g := n.Gates[idx]

		if m, ok := xors[g.Out]; ok {
			if tEF, tNG, ok := matchCH(inv, ands, m); ok {
				n.Gates[idx].A = tEF
				n.Gates[idx].B = tNG
				matches++
				continue
			}
			if s, ok := matchMAJ(ands, xors, m); ok {
				if n.IsOutput(g.Out) {
					// The splice labels derive from the root label
					// and must not inherit the output prefix.
					continue
				}
				label := n.Label(g.Out)
				if _, ok := n.Lookup(label + "-OPTX"); ok {
					continue
				}
				if _, ok := n.Lookup(label + "-OPTNX"); ok {
					continue
				}
				x := n.Intern(label + "-OPTX")
				nx := n.Intern(label + "-OPTNX")
				splices[idx] = []netlist.Gate{
					{Out: x, A: s.AB, B: s.AC},
					{Out: nx, A: x, B: x},
				}
				n.Gates[idx].A = nx
				n.Gates[idx].B = s.BC
				matches++
				continue
			}
		}
		if tAB, tCX, ok := matchCarry(inv, ands, xors, g); ok {
			n.Gates[idx].A = tAB
			n.Gates[idx].B = tCX
			matches++
		}
	}

	if len(splices) > 0 {
		gates := make([]netlist.Gate, 0, len(n.Gates)+2*len(splices))
		for idx, g := range n.Gates {
			if extra, ok := splices[idx]; ok {
				gates = append(gates, extra...)
			}
			gates = append(gates, g)
		}
		n.Gates = gates
		n.Reindex()
	}

	o.diag("Motifs", start, matches, total)
	return matches, nil
}
