//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha2nand generates the single-block SHA-256 compression
// circuit as a NAND netlist, using the naive gate templates the
// optimizer is built to reduce. It also implements the message
// padding and the value file contents binding circuit inputs to a
// concrete message.
package sha2nand

import (
	"fmt"

	"github.com/markkurossi/nandopt/netlist"
)

// rounds is the number of compression rounds.
const rounds = 64

// k contains the SHA-256 round constants.
var k = [rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// hInit contains the initial hash values.
var hInit = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func bitLabel(prefix string, bit int) string {
	return fmt.Sprintf("%s-B%d", prefix, bit)
}

// ConstValues returns the values of the constant leaf signals: the
// round constants and the initial hash values, bit by bit.
func ConstValues() netlist.Values {
	values := netlist.Values{
		netlist.Const0: netlist.Zero,
		netlist.Const1: netlist.One,
	}
	for i, ki := range k {
		for b := 0; b < 32; b++ {
			v := netlist.Zero
			if ki>>b&1 != 0 {
				v = netlist.One
			}
			values[bitLabel(fmt.Sprintf("K-%d", i), b)] = v
		}
	}
	for i, hi := range hInit {
		for b := 0; b < 32; b++ {
			v := netlist.Zero
			if hi>>b&1 != 0 {
				v = netlist.One
			}
			values[bitLabel(fmt.Sprintf("H-INIT-%d", i), b)] = v
		}
	}
	return values
}
