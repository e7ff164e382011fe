//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package nandopt ties the NAND netlist optimizer pipeline together
// for the command-line tools: value file loading and the default
// verification flow.
package nandopt

import (
	"io"
	"strings"

	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/nandopt/sha2nand"
	"github.com/markkurossi/nandopt/verify"
)

// Files collects the values of a repeatable file flag.
type Files []string

func (f *Files) String() string {
	return strings.Join(*f, ",")
}

// Set implements flag.Value.
func (f *Files) Set(value string) error {
	*f = append(*f, value)
	return nil
}

// LoadValues reads and merges the value files in order, later files
// overriding earlier entries.
func LoadValues(paths []string) (netlist.Values, error) {
	values := make(netlist.Values)
	for _, path := range paths {
		v, err := netlist.ReadValuesFile(path)
		if err != nil {
			return nil, err
		}
		values.Merge(v)
	}
	return values, nil
}

// ConstValues returns the merged value files, defaulting to the
// generated SHA-256 constants when no files are given.
func ConstValues(paths []string) (netlist.Values, error) {
	if len(paths) == 0 {
		return sha2nand.ConstValues(), nil
	}
	return LoadValues(paths)
}

// Verify checks the netlist against the reference implementation
// with the default verification message set.
func Verify(out io.Writer, n *netlist.Netlist, consts netlist.Values,
	seed string, trials int, verbose bool) (verify.Result, error) {

	return verify.Run(out, n, consts,
		verify.DefaultMessages(seed, trials), verbose)
}
