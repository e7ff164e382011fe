//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package optimize implements the NAND netlist optimizer: constant
// propagation, algebraic and structural rewrites, common
// subexpression elimination, and dead gate elimination, driven to a
// fixpoint over the netlist.
package optimize

import (
	"io"
)

// Params specify optimizer parameters.
type Params struct {
	Verbose     bool
	Diagnostics bool

	// MaxRounds specifies the upper limit for optimization rounds.
	MaxRounds int

	// NoMotifs disables the structural motif rewrites.
	NoMotifs bool

	NetlistDotOut io.WriteCloser
}

// NewParams returns new optimizer params object, initialized with
// the default values.
func NewParams() *Params {
	return &Params{
		MaxRounds: 25,
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.NetlistDotOut != nil {
		p.NetlistDotOut.Close()
		p.NetlistDotOut = nil
	}
}
