//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package netlist implements the NAND netlist data model: interned
// signal labels, gates, ordered gate lists with declared outputs, and
// the text file formats used by the optimizer tools.
package netlist

import (
	"fmt"
	"strings"
)

// Label naming conventions. The prefixes are load-bearing: they
// decide which signals are primary inputs, which are declared
// outputs, and which labels the cosmetic renumbering pass may touch.
const (
	PrefixInput   = "INPUT-"
	PrefixOutput  = "OUTPUT-"
	PrefixRemoved = "REMOVED-"
	Const0        = "CONST-0"
	Const1        = "CONST-1"
)

// Signal is an interned signal label. Signals are dense indices into
// the netlist's label arena; the text labels exist only at the file
// I/O boundary.
type Signal int32

// Undef identifies an undefined signal.
const Undef Signal = -1

// Gate is a two-input NAND gate computing Out = NOT(A AND B).
type Gate struct {
	Out Signal
	A   Signal
	B   Signal
}

// Netlist is an ordered sequence of NAND gates plus the declared
// output signal set. The gate order is the production order: a gate's
// inputs must be primary signals or outputs of earlier gates, so the
// list is a topologically sorted DAG. Verify checks the invariant.
type Netlist struct {
	names   []string
	ids     map[string]Signal
	flags   []uint8
	def     []int32
	Gates   []Gate
	Outputs []Signal
}

const (
	flagInput uint8 = 1 << iota
	flagConst
	flagOutput
)

// New creates an empty netlist. The constant signals CONST-0 and
// CONST-1 are always interned first.
func New() *Netlist {
	n := &Netlist{
		ids: make(map[string]Signal),
	}
	n.Intern(Const0)
	n.Intern(Const1)
	return n
}

// Intern returns the signal for the label, creating it if needed.
func (n *Netlist) Intern(label string) Signal {
	if id, ok := n.ids[label]; ok {
		return id
	}
	id := Signal(len(n.names))
	n.names = append(n.names, label)
	n.ids[label] = id

	var flag uint8
	if strings.HasPrefix(label, PrefixInput) {
		flag = flagInput
	} else if strings.HasPrefix(label, PrefixOutput) {
		flag = flagOutput
	} else if label == Const0 || label == Const1 {
		flag = flagConst
	}
	n.flags = append(n.flags, flag)
	n.def = append(n.def, -1)

	return id
}

// Lookup returns the signal for the label.
func (n *Netlist) Lookup(label string) (Signal, bool) {
	id, ok := n.ids[label]
	return id, ok
}

// Label returns the text label of the signal.
func (n *Netlist) Label(s Signal) string {
	return n.names[s]
}

// NumSignals returns the number of interned signals.
func (n *Netlist) NumSignals() int {
	return len(n.names)
}

// Zero returns the CONST-0 signal.
func (n *Netlist) Zero() Signal {
	return 0
}

// One returns the CONST-1 signal.
func (n *Netlist) One() Signal {
	return 1
}

// IsOutput tests if the signal is a declared output.
func (n *Netlist) IsOutput(s Signal) bool {
	return n.flags[s]&flagOutput != 0
}

// IsInput tests if the signal is a primary input.
func (n *Netlist) IsInput(s Signal) bool {
	return n.flags[s]&flagInput != 0
}

// IsConst tests if the signal is one of the constant signals.
func (n *Netlist) IsConst(s Signal) bool {
	return n.flags[s]&flagConst != 0
}

// AddGate appends the gate Out = NAND(A, B) to the netlist. The
// output label must not be defined by an earlier gate.
func (n *Netlist) AddGate(out, a, b Signal) error {
	if n.def[out] >= 0 {
		return fmt.Errorf("signal %s defined by multiple gates",
			n.names[out])
	}
	n.def[out] = int32(len(n.Gates))
	n.Gates = append(n.Gates, Gate{
		Out: out,
		A:   a,
		B:   b,
	})
	if n.IsOutput(out) {
		n.Outputs = append(n.Outputs, out)
	}
	return nil
}

// Definer returns the index of the gate defining the signal, or -1
// for primary inputs and constants.
func (n *Netlist) Definer(s Signal) int {
	return int(n.def[s])
}

// Reindex rebuilds the derived indices after the gate list has been
// rewritten by an optimization pass.
func (n *Netlist) Reindex() {
	for i := range n.def {
		n.def[i] = -1
	}
	n.Outputs = n.Outputs[:0]
	for idx, g := range n.Gates {
		n.def[g.Out] = int32(idx)
		if n.IsOutput(g.Out) {
			n.Outputs = append(n.Outputs, g.Out)
		}
	}
}

// Verify checks the netlist invariants: every signal is defined by at
// most one gate, and every gate input is a primary signal or the
// output of an earlier gate. The optimizer's single backward
// dead-gate sweep is only valid under this topological order.
func (n *Netlist) Verify() error {
	defined := make([]bool, len(n.names))
	producer := make([]bool, len(n.names))
	for _, g := range n.Gates {
		producer[g.Out] = true
	}
	for idx, g := range n.Gates {
		if defined[g.Out] {
			return fmt.Errorf("gate %d: signal %s defined by multiple gates",
				idx, n.names[g.Out])
		}
		for _, in := range []Signal{g.A, g.B} {
			if producer[in] && !defined[in] {
				return fmt.Errorf(
					"gate %d: input %s of gate %s used before its definition",
					idx, n.names[in], n.names[g.Out])
			}
		}
		defined[g.Out] = true
	}
	return nil
}

// Stats contains netlist gate and signal statistics.
type Stats struct {
	Gates   int
	Inputs  int
	Outputs int
	Leaves  int
}

func (s Stats) String() string {
	return fmt.Sprintf("#gates=%d, #inputs=%d, #outputs=%d, #leaves=%d",
		s.Gates, s.Inputs, s.Outputs, s.Leaves)
}

// Stats computes statistics for the netlist. Leaves counts all
// signals without a defining gate, inputs only the INPUT- ones.
func (n *Netlist) Stats() Stats {
	stats := Stats{
		Gates:   len(n.Gates),
		Outputs: len(n.Outputs),
	}
	seen := make([]bool, len(n.names))
	for _, g := range n.Gates {
		for _, in := range []Signal{g.A, g.B} {
			if n.def[in] >= 0 || seen[in] {
				continue
			}
			seen[in] = true
			stats.Leaves++
			if n.IsInput(in) {
				stats.Inputs++
			}
		}
	}
	return stats
}
