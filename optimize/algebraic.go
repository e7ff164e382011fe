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

// invTable maps every inverter gate output to the signal it inverts.
// A gate is an inverter if its inputs are equal or if one input is
// CONST-1.
func invTable(n *netlist.Netlist) []netlist.Signal {
	inv := make([]netlist.Signal, n.NumSignals())
	for i := range inv {
		inv[i] = netlist.Undef
	}
	one := n.One()
	for _, g := range n.Gates {
		switch {
		case g.A == g.B:
			inv[g.Out] = g.A
		case g.A == one:
			inv[g.Out] = g.B
		case g.B == one:
			inv[g.Out] = g.A
		}
	}
	return inv
}

// xorMatch describes a gate computing XOR(A, B) as the four-gate
// NAND diamond rooted at the gate.
type xorMatch struct {
	A netlist.Signal
	B netlist.Signal
	T netlist.Signal
}

func sameSet(a1, a2, b1, b2 netlist.Signal) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// matchXOR tests if the gate is the root of a XOR diamond: its
// inputs are two arm gates sharing an inner gate T=NAND(a,b), each
// arm combining T with one of a, b.
func matchXOR(n *netlist.Netlist, g netlist.Gate) (xorMatch, bool) {
	if g.A == g.B {
		return xorMatch{}, false
	}
	pIdx := n.Definer(g.A)
	qIdx := n.Definer(g.B)
	if pIdx < 0 || qIdx < 0 {
		return xorMatch{}, false
	}
	p := n.Gates[pIdx]
	q := n.Gates[qIdx]

	var cands [][3]netlist.Signal
	if p.A == q.A {
		cands = append(cands, [3]netlist.Signal{p.A, p.B, q.B})
	}
	if p.A == q.B {
		cands = append(cands, [3]netlist.Signal{p.A, p.B, q.A})
	}
	if p.B == q.A {
		cands = append(cands, [3]netlist.Signal{p.B, p.A, q.B})
	}
	if p.B == q.B {
		cands = append(cands, [3]netlist.Signal{p.B, p.A, q.A})
	}
	for _, cand := range cands {
		t, a, b := cand[0], cand[1], cand[2]
		tIdx := n.Definer(t)
		if tIdx < 0 {
			continue
		}
		tg := n.Gates[tIdx]
		if sameSet(tg.A, tg.B, a, b) {
			return xorMatch{
				A: a,
				B: b,
				T: t,
			}, true
		}
	}
	return xorMatch{}, false
}

// xorTable maps every XOR diamond root to its match.
func xorTable(n *netlist.Netlist) map[netlist.Signal]xorMatch {
	xors := make(map[netlist.Signal]xorMatch)
	for _, g := range n.Gates {
		if m, ok := matchXOR(n, g); ok {
			xors[g.Out] = m
		}
	}
	return xors
}

// rewire rewrites the gate at idx in place to compute the signal x:
// the gate becomes a copy of x's defining gate. Used for declared
// outputs, whose labels must survive. Returns false if x has no
// defining gate.
func (o *Optimizer) rewire(idx int, x netlist.Signal) bool {
	n := o.n
	dIdx := n.Definer(x)
	if dIdx < 0 {
		return false
	}
	dg := n.Gates[dIdx]
	n.Gates[idx].A = dg.A
	n.Gates[idx].B = dg.B
	return true
}

// algebraic applies the local algebraic identities: double negation,
// inverter sharing, constant-operand XOR simplification, tautology
// NAND(x, NOT x), OR self-identity, and duplicate XOR elimination.
// Declared output gates are rewritten in place instead of
// substituted away.
func (o *Optimizer) algebraic() (int, error) {
	start := time.Now()
	n := o.n
	total := len(n.Gates)
	sub := NewSubst(n)
	inv := invTable(n)
	xors := xorTable(n)
	zero := n.Zero()
	one := n.One()

	var rewired int

	for idx := range n.Gates {
		g := n.Gates[idx]
		if sub.Contains(g.Out) {
			continue
		}

		// NOT(NOT(x)) = x
		if x := inv[g.Out]; x != netlist.Undef {
			if y := inv[x]; y != netlist.Undef {
				if !n.IsOutput(g.Out) {
					if err := sub.Set(g.Out, y); err != nil {
						return 0, err
					}
					continue
				}
				if o.rewire(idx, y) {
					rewired++
					continue
				}
			}
		}

		// NAND(x, NOT(x)) = 1
		if !n.IsOutput(g.Out) &&
			(inv[g.A] == g.B || inv[g.B] == g.A) {
			if err := sub.Set(g.Out, one); err != nil {
				return 0, err
			}
			continue
		}

		// NAND(NOT(x), NOT(x)) = OR(x, x) = x
		if xa, xb := inv[g.A], inv[g.B]; xa != netlist.Undef && xa == xb {
			if !n.IsOutput(g.Out) {
				if err := sub.Set(g.Out, xa); err != nil {
					return 0, err
				}
				continue
			}
			if o.rewire(idx, xa) {
				rewired++
				continue
			}
		}

		// XOR with a constant operand.
		if m, ok := xors[g.Out]; ok {
			var x netlist.Signal = netlist.Undef
			var negate bool
			switch {
			case m.A == zero:
				x = m.B
			case m.B == zero:
				x = m.A
			case m.A == one:
				x, negate = m.B, true
			case m.B == one:
				x, negate = m.A, true
			}
			if x != netlist.Undef {
				if negate {
					// XOR(1, x) = NOT(x)
					n.Gates[idx].A = x
					n.Gates[idx].B = x
					rewired++
					continue
				}
				// XOR(0, x) = x
				if !n.IsOutput(g.Out) {
					if err := sub.Set(g.Out, x); err != nil {
						return 0, err
					}
					continue
				}
				if o.rewire(idx, x) {
					rewired++
					continue
				}
			}
		}
	}

	// Share inverters of the same signal.
	groups := make(map[netlist.Signal][]netlist.Signal)
	var order []netlist.Signal
	for _, g := range n.Gates {
		x := inv[g.Out]
		if x == netlist.Undef {
			continue
		}
		if _, ok := groups[x]; !ok {
			order = append(order, x)
		}
		groups[x] = append(groups[x], g.Out)
	}
	for _, x := range order {
		members := groups[x]
		if len(members) < 2 {
			continue
		}
		canonical := netlist.Undef
		for _, m := range members {
			if !n.IsOutput(m) {
				canonical = m
				break
			}
		}
		if canonical == netlist.Undef {
			continue
		}
		for _, m := range members {
			if m == canonical || n.IsOutput(m) || sub.Contains(m) {
				continue
			}
			if err := sub.Set(m, canonical); err != nil {
				return 0, err
			}
		}
	}

	// Merge XOR diamonds over the same operand pair.
	dedup := make(map[[2]netlist.Signal]netlist.Signal)
	for _, g := range n.Gates {
		m, ok := xors[g.Out]
		if !ok {
			continue
		}
		a, b := m.A, m.B
		if a > b {
			a, b = b, a
		}
		key := [2]netlist.Signal{a, b}
		if canon, ok := dedup[key]; ok {
			if !n.IsOutput(g.Out) && !sub.Contains(g.Out) {
				if err := sub.Set(g.Out, canon); err != nil {
					return 0, err
				}
			}
		} else {
			dedup[key] = g.Out
		}
	}

	count := sub.Len()
	if err := sub.Apply(); err != nil {
		return 0, err
	}
	o.diag("Algebraic", start, count+rewired, total)
	return count + rewired, nil
}
