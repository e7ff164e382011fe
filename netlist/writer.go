//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write writes the netlist to the writer, one gate per line in the
// gate production order.
func (n *Netlist) Write(out io.Writer) error {
	w := bufio.NewWriter(out)
	for _, g := range n.Gates {
		fmt.Fprintf(w, "%s,%s,%s\n",
			n.names[g.Out], n.names[g.A], n.names[g.B])
	}
	return w.Flush()
}

// WriteFile writes the netlist to the file.
func (n *Netlist) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := n.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
