//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"fmt"

	"github.com/markkurossi/nandopt/netlist"
)

// Subst collects signal substitutions proposed by an optimization
// pass and applies them to the netlist in one sweep. A substitution
// maps an eliminated gate output to its surviving representative.
// Declared outputs are never eliminated so they never appear as
// keys.
type Subst struct {
	n *netlist.Netlist
	m map[netlist.Signal]netlist.Signal
}

// NewSubst creates a new substitution set for the netlist.
func NewSubst(n *netlist.Netlist) *Subst {
	return &Subst{
		n: n,
		m: make(map[netlist.Signal]netlist.Signal),
	}
}

// Len returns the number of substitutions.
func (s *Subst) Len() int {
	return len(s.m)
}

// Contains tests if the signal is already substituted.
func (s *Subst) Contains(from netlist.Signal) bool {
	_, ok := s.m[from]
	return ok
}

// Set records the substitution from=>to.
func (s *Subst) Set(from, to netlist.Signal) error {
	if s.n.IsOutput(from) {
		return fmt.Errorf("substitution of declared output %s",
			s.n.Label(from))
	}
	s.m[from] = to
	return nil
}

// Resolve follows substitution chains to the final representative of
// the signal. A cycle in the substitution map is an internal
// invariant violation and reported as an error.
func (s *Subst) Resolve(from netlist.Signal) (netlist.Signal, error) {
	if _, ok := s.m[from]; !ok {
		return from, nil
	}
	visited := map[netlist.Signal]bool{
		from: true,
	}
	cur := from
	for {
		next, ok := s.m[cur]
		if !ok {
			return cur, nil
		}
		if visited[next] {
			return netlist.Undef,
				fmt.Errorf("substitution cycle detected at %s",
					s.n.Label(next))
		}
		visited[next] = true
		cur = next
	}
}

// Apply rewrites the netlist: gates defining substituted signals are
// dropped and all gate inputs are resolved to their final
// representatives. An empty substitution set leaves the netlist
// unchanged.
func (s *Subst) Apply() error {
	if len(s.m) == 0 {
		return nil
	}
	n := s.n
	gates := n.Gates[:0]
	for _, g := range n.Gates {
		if _, ok := s.m[g.Out]; ok {
			continue
		}
		a, err := s.Resolve(g.A)
		if err != nil {
			return err
		}
		b, err := s.Resolve(g.B)
		if err != nil {
			return err
		}
		g.A = a
		g.B = b
		gates = append(gates, g)
	}
	n.Gates = gates
	n.Reindex()
	return nil
}
