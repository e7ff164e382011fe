//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2nand

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/nandopt/netlist"
)

// MaxMessage is the longest message in bytes that fits the
// single-block circuit. The padding needs one 0x80 byte and the
// 64-bit message length.
const MaxMessage = 55

// MessageBlock pads the message and returns the single 512-bit block
// as sixteen big-endian words.
func MessageBlock(msg []byte) ([16]uint32, error) {
	var block [16]uint32
	if len(msg) > MaxMessage {
		return block, fmt.Errorf("message length %d exceeds single block maximum %d",
			len(msg), MaxMessage)
	}
	var padded [64]byte
	copy(padded[:], msg)
	padded[len(msg)] = 0x80
	binary.BigEndian.PutUint64(padded[56:], uint64(len(msg))*8)

	for i := 0; i < 16; i++ {
		block[i] = binary.BigEndian.Uint32(padded[4*i:])
	}
	return block, nil
}

// InputValues returns the input bit values for the message.
func InputValues(msg []byte) (netlist.Values, error) {
	return InputValuesMasked(msg, nil)
}

// InputValuesMasked returns the input bit values for the message with
// the bits of the flagged message bytes left unknown. The padding
// bytes are always known.
func InputValuesMasked(msg []byte, unknown []bool) (netlist.Values, error) {
	block, err := MessageBlock(msg)
	if err != nil {
		return nil, err
	}
	values := make(netlist.Values)
	for i, w := range block {
		label := fmt.Sprintf("INPUT-W%d", i)
		for bit := 0; bit < 32; bit++ {
			// Bit b of the big-endian word i comes from the
			// message byte 4*i+3-b/8.
			idx := 4*i + 3 - bit/8
			if idx < len(msg) && idx < len(unknown) && unknown[idx] {
				values[bitLabel(label, bit)] = netlist.Unknown
				continue
			}
			v := netlist.Zero
			if w>>bit&1 != 0 {
				v = netlist.One
			}
			values[bitLabel(label, bit)] = v
		}
	}
	return values, nil
}
