//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha2nand

import (
	"fmt"

	"github.com/markkurossi/nandopt/netlist"
)

// word is a 32-bit value as its bit signals, bit 0 the least
// significant.
type word [32]netlist.Signal

// builder emits the naive NAND expansions of the word-level SHA-256
// operations. Intermediate gates carry generated -T labels; the final
// gate of each bit carries the word's bit label. Emit errors are
// sticky and reported once by Generate.
type builder struct {
	n   *netlist.Netlist
	seq int
	err error
}

func newBuilder() *builder {
	return &builder{
		n: netlist.New(),
	}
}

// leaf interns the bit signals of an undefined word: a primary input
// or a constant word.
func (b *builder) leaf(label string) word {
	var w word
	for i := 0; i < 32; i++ {
		w[i] = b.n.Intern(bitLabel(label, i))
	}
	return w
}

func (b *builder) emit(out, x, y netlist.Signal) netlist.Signal {
	if b.err == nil {
		b.err = b.n.AddGate(out, x, y)
	}
	return out
}

// temp interns a fresh intermediate signal under the prefix.
func (b *builder) temp(prefix string) netlist.Signal {
	b.seq++
	return b.n.Intern(fmt.Sprintf("%s-T%d", prefix, b.seq))
}

// nand emits NAND(x, y) into a fresh intermediate signal.
func (b *builder) nand(prefix string, x, y netlist.Signal) netlist.Signal {
	return b.emit(b.temp(prefix), x, y)
}

// not emits NOT(x) = NAND(x, x).
func (b *builder) not(prefix string, x netlist.Signal) netlist.Signal {
	return b.emit(b.temp(prefix), x, x)
}

// and emits AND(x, y) = NOT(NAND(x, y)).
func (b *builder) and(prefix string, x, y netlist.Signal) netlist.Signal {
	return b.not(prefix, b.nand(prefix, x, y))
}

// or emits OR(x, y) = NAND(NOT(x), NOT(y)).
func (b *builder) or(prefix string, x, y netlist.Signal) netlist.Signal {
	nx := b.not(prefix, x)
	ny := b.not(prefix, y)
	return b.emit(b.temp(prefix), nx, ny)
}

// xor emits XOR(x, y) = NAND(NAND(x, NAND(x,y)), NAND(y, NAND(x,y))).
func (b *builder) xor(prefix string, x, y netlist.Signal) netlist.Signal {
	nxy := b.nand(prefix, x, y)
	t1 := b.nand(prefix, x, nxy)
	t2 := b.nand(prefix, y, nxy)
	return b.emit(b.temp(prefix), t1, t2)
}

// fullAdder emits a full adder for one bit position.
func (b *builder) fullAdder(prefix string, x, y, cin netlist.Signal) (
	s, cout netlist.Signal) {

	// s = x XOR y XOR cin
	xy := b.xor(prefix, x, y)
	s = b.xor(prefix, xy, cin)

	// cout = (x AND y) OR (cin AND (x XOR y))
	xyAnd := b.and(prefix, x, y)
	cinXY := b.and(prefix, cin, xy)
	cout = b.or(prefix, xyAnd, cinXY)

	return s, cout
}

// named emits NAND(x, y) into the word's bit label.
func (b *builder) named(label string, bit int, x, y netlist.Signal) netlist.Signal {
	return b.emit(b.n.Intern(bitLabel(label, bit)), x, y)
}

// notWord emits per-bit NOT, the single gate carrying the output bit
// label.
func (b *builder) notWord(label string, x word) word {
	var out word
	for i := 0; i < 32; i++ {
		out[i] = b.named(label, i, x[i], x[i])
	}
	return out
}

func (b *builder) andWord(label string, x, y word) word {
	var out word
	for i := 0; i < 32; i++ {
		t := b.nand(bitLabel(label, i), x[i], y[i])
		out[i] = b.named(label, i, t, t)
	}
	return out
}

func (b *builder) xorWord(label string, x, y word) word {
	var out word
	for i := 0; i < 32; i++ {
		prefix := bitLabel(label, i)
		nxy := b.nand(prefix, x[i], y[i])
		t1 := b.nand(prefix, x[i], nxy)
		t2 := b.nand(prefix, y[i], nxy)
		out[i] = b.named(label, i, t1, t2)
	}
	return out
}

// copyWord renames a word, double-inverting each bit.
func (b *builder) copyWord(label string, x word) word {
	var out word
	for i := 0; i < 32; i++ {
		t := b.not(bitLabel(label, i), x[i])
		out[i] = b.named(label, i, t, t)
	}
	return out
}

// rotrWord rotates right by n bits. The rotation is rewiring; each
// output bit is a copy of its rotated source bit.
func (b *builder) rotrWord(label string, x word, n int) word {
	var out word
	for i := 0; i < 32; i++ {
		src := x[(i+n)%32]
		t := b.not(bitLabel(label, i), src)
		out[i] = b.named(label, i, t, t)
	}
	return out
}

// shrWord shifts right by n bits, filling the high bits from CONST-0.
func (b *builder) shrWord(label string, x word, n int) word {
	var out word
	for i := 0; i < 32; i++ {
		src := b.n.Zero()
		if i+n < 32 {
			src = x[i+n]
		}
		t := b.not(bitLabel(label, i), src)
		out[i] = b.named(label, i, t, t)
	}
	return out
}

// addWord emits a 32-bit ripple-carry adder, dropping the final
// carry. The sum of each bit position is copied into the output bit
// label by double inversion.
func (b *builder) addWord(label string, x, y word) word {
	var out word
	cin := b.n.Zero()
	for i := 0; i < 32; i++ {
		prefix := bitLabel(label, i)
		s, cout := b.fullAdder(prefix, x[i], y[i], cin)
		t := b.not(prefix, s)
		out[i] = b.named(label, i, t, t)
		cin = cout
	}
	return out
}
