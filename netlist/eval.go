//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"fmt"
)

// UnresolvedError is reported when a gate references a signal that
// has no defining gate and no supplied value.
type UnresolvedError struct {
	Gate  string
	Input string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved signal %s in gate %s", e.Input, e.Gate)
}

// NAND returns the three-valued NAND of a and b. A FALSE input
// forces TRUE, two TRUE inputs force FALSE, and every other
// combination is UNKNOWN.
func NAND(a, b Value) Value {
	if a == Zero || b == Zero {
		return One
	}
	if a == One && b == One {
		return Zero
	}
	return Unknown
}

// Eval evaluates the netlist under the supplied signal values. The
// result holds the value of every signal, indexed by Signal. Leaf
// signals must either be listed in values or marked X there;
// referencing a leaf with no value entry at all is an error. Value
// entries for labels not present in the netlist are ignored.
func (n *Netlist) Eval(values Values) ([]Value, error) {
	vals := make([]Value, len(n.names))
	seeded := make([]bool, len(n.names))

	vals[n.Zero()] = Zero
	vals[n.One()] = One
	seeded[n.Zero()] = true
	seeded[n.One()] = true

	for label, v := range values {
		id, ok := n.ids[label]
		if !ok {
			continue
		}
		vals[id] = v
		seeded[id] = true
	}

	for _, g := range n.Gates {
		for _, in := range []Signal{g.A, g.B} {
			if n.def[in] < 0 && !seeded[in] {
				return nil, &UnresolvedError{
					Gate:  n.names[g.Out],
					Input: n.names[in],
				}
			}
		}
		vals[g.Out] = NAND(vals[g.A], vals[g.B])
		seeded[g.Out] = true
	}
	return vals, nil
}

// Value returns the evaluated value of the labeled signal.
func (n *Netlist) Value(vals []Value, label string) Value {
	id, ok := n.ids[label]
	if !ok {
		return Unknown
	}
	return vals[id]
}
