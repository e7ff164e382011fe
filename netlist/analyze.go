//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"fmt"
	"io"
)

// Levels computes the logic level of every gate: the length of the
// longest path from a leaf signal to the gate output. Leaves are at
// level 0.
func (n *Netlist) Levels() []int {
	level := make([]int, len(n.names))
	levels := make([]int, len(n.Gates))
	for idx, g := range n.Gates {
		l := level[g.A]
		if level[g.B] > l {
			l = level[g.B]
		}
		l++
		level[g.Out] = l
		levels[idx] = l
	}
	return levels
}

// Depth returns the number of logic levels on the longest
// leaf-to-output path.
func (n *Netlist) Depth() int {
	var max int
	for _, l := range n.Levels() {
		if l > max {
			max = l
		}
	}
	return max
}

// Dot creates graphviz dot output of the netlist.
func (n *Netlist) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph netlist\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	seen := make([]bool, len(n.names))
	for _, g := range n.Gates {
		for _, in := range []Signal{g.A, g.B} {
			if n.def[in] >= 0 || seen[in] {
				continue
			}
			seen[in] = true
			fmt.Fprintf(out, "    s%d\t[label=\"%s\"];\n", in, n.names[in])
		}
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for _, g := range n.Gates {
		shape := ""
		if n.IsOutput(g.Out) {
			shape = ", peripheries=2"
		}
		fmt.Fprintf(out, "    s%d\t[label=\"%s\"%s];\n",
			g.Out, n.names[g.Out], shape)
	}
	fmt.Fprintf(out, "  }\n")

	for _, g := range n.Gates {
		fmt.Fprintf(out, "  s%d -> s%d;\n", g.A, g.Out)
		fmt.Fprintf(out, "  s%d -> s%d;\n", g.B, g.Out)
	}
	fmt.Fprintf(out, "}\n")
}
