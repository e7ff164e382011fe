//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"fmt"
	"strings"
)

// OutputBit returns the declared output label of the i:th lowest
// digest bit. The digest words are numbered from the most
// significant end, so bit 0 is bit 0 of OUTPUT-W7 and bit 255 is bit
// 31 of OUTPUT-W0.
func OutputBit(i int) string {
	return fmt.Sprintf("%sW%d-B%d", PrefixOutput, 7-i/32, i%32)
}

// Rename renames a signal. The new label's category is derived from
// its prefix like for interned labels.
func (n *Netlist) Rename(from, to string) error {
	id, ok := n.ids[from]
	if !ok {
		return fmt.Errorf("unknown signal %s", from)
	}
	if _, ok := n.ids[to]; ok {
		return fmt.Errorf("signal %s already exists", to)
	}
	delete(n.ids, from)
	n.ids[to] = id
	n.names[id] = to

	n.flags[id] = 0
	switch {
	case strings.HasPrefix(to, PrefixInput):
		n.flags[id] = flagInput
	case strings.HasPrefix(to, PrefixOutput):
		n.flags[id] = flagOutput
	case to == Const0 || to == Const1:
		n.flags[id] = flagConst
	}
	return nil
}

// AblateLow demotes the given number of lowest digest bits from
// declared outputs by renaming them to the REMOVED- prefix. A
// following optimization run then prunes the logic that only the
// removed bits used.
func (n *Netlist) AblateLow(bits int) error {
	if bits < 0 || bits > 256 {
		return fmt.Errorf("ablation bit count %d out of range", bits)
	}
	for i := 0; i < bits; i++ {
		from := OutputBit(i)
		to := PrefixRemoved + from[len(PrefixOutput):]
		if err := n.Rename(from, to); err != nil {
			return err
		}
	}
	n.Reindex()
	return nil
}
