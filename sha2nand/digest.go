//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2nand

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/markkurossi/nandopt/netlist"
)

// FormatOutputs renders the evaluated digest as a 64-digit hex
// string, the most significant word first. A word with unknown bits
// gets an [X@bits] marker listing the unknown bit positions; unknown
// bits read as zero in the hex digits.
func FormatOutputs(n *netlist.Netlist, vals []netlist.Value) string {
	var sb strings.Builder
	for w := 0; w < 8; w++ {
		label := fmt.Sprintf("OUTPUT-W%d", w)
		var value uint32
		var unknown []string
		for bit := 0; bit < 32; bit++ {
			switch n.Value(vals, bitLabel(label, bit)) {
			case netlist.One:
				value |= 1 << bit
			case netlist.Unknown:
				unknown = append(unknown, strconv.Itoa(bit))
			}
		}
		if len(unknown) > 0 {
			fmt.Fprintf(&sb, "%08x[X@%s]", value, strings.Join(unknown, ","))
		} else {
			fmt.Fprintf(&sb, "%08x", value)
		}
	}
	return sb.String()
}

// Digest packs the evaluated digest into its 32 bytes. An unknown
// output bit is an error.
func Digest(n *netlist.Netlist, vals []netlist.Value) ([]byte, error) {
	digest := make([]byte, 32)
	for w := 0; w < 8; w++ {
		label := fmt.Sprintf("OUTPUT-W%d", w)
		var value uint32
		for bit := 0; bit < 32; bit++ {
			switch n.Value(vals, bitLabel(label, bit)) {
			case netlist.One:
				value |= 1 << bit
			case netlist.Unknown:
				return nil, fmt.Errorf("output bit %s is unknown",
					bitLabel(label, bit))
			}
		}
		binary.BigEndian.PutUint32(digest[4*w:], value)
	}
	return digest, nil
}
