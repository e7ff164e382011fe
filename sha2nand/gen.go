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

func (b *builder) rotr(prefix string, x word, n int) word {
	return b.rotrWord(fmt.Sprintf("%s-ROTR%d", prefix, n), x, n)
}

func (b *builder) shr(prefix string, x word, n int) word {
	return b.shrWord(fmt.Sprintf("%s-SHR%d", prefix, n), x, n)
}

func (b *builder) xor3(prefix string, x, y, z word) word {
	t := b.xorWord(prefix+"-XOR1", x, y)
	return b.xorWord(prefix+"-XOR2", t, z)
}

func (b *builder) add(prefix string, x, y word) word {
	return b.addWord(prefix+"-ADD", x, y)
}

func (b *builder) addMulti(prefix string, values []word) word {
	result := values[0]
	for i := 1; i < len(values); i++ {
		result = b.add(fmt.Sprintf("%s-S%d", prefix, i), result, values[i])
	}
	return result
}

// bigSigma0 is Σ0(x) = ROTR(x,2) XOR ROTR(x,13) XOR ROTR(x,22).
func (b *builder) bigSigma0(prefix string, x word) word {
	p := prefix + "-S0"
	return b.xor3(p, b.rotr(p, x, 2), b.rotr(p, x, 13), b.rotr(p, x, 22))
}

// bigSigma1 is Σ1(x) = ROTR(x,6) XOR ROTR(x,11) XOR ROTR(x,25).
func (b *builder) bigSigma1(prefix string, x word) word {
	p := prefix + "-S1"
	return b.xor3(p, b.rotr(p, x, 6), b.rotr(p, x, 11), b.rotr(p, x, 25))
}

// smallSigma0 is σ0(x) = ROTR(x,7) XOR ROTR(x,18) XOR SHR(x,3).
func (b *builder) smallSigma0(prefix string, x word) word {
	p := prefix + "-s0"
	return b.xor3(p, b.rotr(p, x, 7), b.rotr(p, x, 18), b.shr(p, x, 3))
}

// smallSigma1 is σ1(x) = ROTR(x,17) XOR ROTR(x,19) XOR SHR(x,10).
func (b *builder) smallSigma1(prefix string, x word) word {
	p := prefix + "-s1"
	return b.xor3(p, b.rotr(p, x, 17), b.rotr(p, x, 19), b.shr(p, x, 10))
}

// ch is Ch(x,y,z) = (x AND y) XOR (NOT(x) AND z).
func (b *builder) ch(prefix string, x, y, z word) word {
	xy := b.andWord(prefix+"-CH-XY", x, y)
	nx := b.notWord(prefix+"-CH-NX", x)
	nxz := b.andWord(prefix+"-CH-NXZ", nx, z)
	return b.xorWord(prefix+"-CH", xy, nxz)
}

// maj is Maj(x,y,z) = (x AND y) XOR (x AND z) XOR (y AND z).
func (b *builder) maj(prefix string, x, y, z word) word {
	xy := b.andWord(prefix+"-MAJ-XY", x, y)
	xz := b.andWord(prefix+"-MAJ-XZ", x, z)
	yz := b.andWord(prefix+"-MAJ-YZ", y, z)
	t := b.xorWord(prefix+"-MAJ-T1", xy, xz)
	return b.xorWord(prefix+"-MAJ", t, yz)
}

// schedule expands the message schedule W[0..63]. The first sixteen
// words are the input words; the rest are
// W[i] = σ1(W[i-2]) + W[i-7] + σ0(W[i-15]) + W[i-16], each labeled
// MSG-W{i}.
func (b *builder) schedule() []word {
	w := make([]word, 16, 64)
	for i := 0; i < 16; i++ {
		w[i] = b.leaf(fmt.Sprintf("INPUT-W%d", i))
	}
	for i := 16; i < 64; i++ {
		prefix := fmt.Sprintf("W%d", i)
		s1 := b.smallSigma1(prefix, w[i-2])
		s0 := b.smallSigma0(prefix, w[i-15])
		sum := b.addMulti(prefix, []word{s1, w[i-7], s0, w[i-16]})
		w = append(w, b.copyWord(fmt.Sprintf("MSG-W%d", i), sum))
	}
	return w
}

// compression runs the 64 compression rounds over the message
// schedule. The working variables start from the initial hash words
// and every round ends with labeled R{i}-VAR-A..H copies.
func (b *builder) compression(w []word) [8]word {
	var vars [8]word
	for i := range vars {
		vars[i] = b.leaf(fmt.Sprintf("H-INIT-%d", i))
	}

	for i := 0; i < rounds; i++ {
		prefix := fmt.Sprintf("R%d", i)
		kw := b.leaf(fmt.Sprintf("K-%d", i))

		// T1 = h + Σ1(e) + Ch(e,f,g) + K[i] + W[i]
		s1 := b.bigSigma1(prefix, vars[4])
		ch := b.ch(prefix, vars[4], vars[5], vars[6])
		t1 := b.addMulti(prefix+"-T1", []word{vars[7], s1, ch, kw, w[i]})

		// T2 = Σ0(a) + Maj(a,b,c)
		s0 := b.bigSigma0(prefix, vars[0])
		mj := b.maj(prefix, vars[0], vars[1], vars[2])
		t2 := b.add(prefix+"-T2", s0, mj)

		eNew := b.add(prefix+"-E", vars[3], t1)
		aNew := b.add(prefix+"-A", t1, t2)

		next := [8]word{
			aNew, vars[0], vars[1], vars[2],
			eNew, vars[4], vars[5], vars[6],
		}
		for j, name := range varNames {
			vars[j] = b.copyWord(fmt.Sprintf("%s-VAR-%s", prefix, name),
				next[j])
		}
	}
	return vars
}

var varNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "H"}

// finalHash adds the final working variables to the initial hash
// words and copies the sums into the declared output words.
func (b *builder) finalHash(vars [8]word) {
	for i := 0; i < 8; i++ {
		h := b.leaf(fmt.Sprintf("H-INIT-%d", i))
		sum := b.add(fmt.Sprintf("FINAL-H%d", i), h, vars[i])
		b.copyWord(fmt.Sprintf("OUTPUT-W%d", i), sum)
	}
}

// Generate builds the complete single-block SHA-256 compression
// circuit. The circuit maps the input words INPUT-W0..INPUT-W15 to
// the digest words OUTPUT-W0..OUTPUT-W7; the round constant and
// initial hash leaves are bound by the values from ConstValues.
func Generate() (*netlist.Netlist, error) {
	b := newBuilder()
	w := b.schedule()
	vars := b.compression(w)
	b.finalHash(vars)
	if b.err != nil {
		return nil, b.err
	}
	return b.n, nil
}
