//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

var nandTests = []struct {
	a Value
	b Value
	r Value
}{
	{Zero, Zero, One},
	{Zero, One, One},
	{One, Zero, One},
	{One, One, Zero},
	{Zero, Unknown, One},
	{Unknown, Zero, One},
	{One, Unknown, Unknown},
	{Unknown, One, Unknown},
	{Unknown, Unknown, Unknown},
}

func TestNAND(t *testing.T) {
	for _, test := range nandTests {
		r := NAND(test.a, test.b)
		if r != test.r {
			t.Fatalf("NAND(%s,%s)=%s, expected %s",
				test.a, test.b, r, test.r)
		}
	}
}

func TestEval(t *testing.T) {
	n := New()
	a := n.Intern("A")
	b := n.Intern("B")
	t1 := n.Intern("T1")
	out := n.Intern("OUTPUT-W0-B0")

	n.AddGate(t1, a, b)
	n.AddGate(out, t1, n.One())

	vals, err := n.Eval(Values{
		"A": One,
		"B": Zero,
	})
	if err != nil {
		t.Fatalf("Eval failed: %s", err)
	}
	if vals[t1] != One {
		t.Fatalf("T1=%s, expected 1", vals[t1])
	}
	if vals[out] != Zero {
		t.Fatalf("OUTPUT-W0-B0=%s, expected 0", vals[out])
	}
	if n.Value(vals, "T1") != One {
		t.Fatalf("Value lookup failed")
	}

	// An explicitly unknown input dominates unless masked by 0.
	vals, err = n.Eval(Values{
		"A": Unknown,
		"B": One,
	})
	if err != nil {
		t.Fatalf("Eval failed: %s", err)
	}
	if vals[t1] != Unknown {
		t.Fatalf("T1=%s, expected X", vals[t1])
	}
	if vals[out] != Unknown {
		t.Fatalf("OUTPUT-W0-B0=%s, expected X", vals[out])
	}
}

func TestEvalUnresolved(t *testing.T) {
	n := New()
	a := n.Intern("A")
	b := n.Intern("B")
	t1 := n.Intern("T1")
	n.AddGate(t1, a, b)

	_, err := n.Eval(Values{
		"A": One,
	})
	if err == nil {
		t.Fatalf("unresolved signal not detected")
	}
	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if unresolved.Input != "B" || unresolved.Gate != "T1" {
		t.Fatalf("wrong error details: %v", unresolved)
	}
}

func TestEvalWide(t *testing.T) {
	// T1=NAND(A,B) with exhaustive lane patterns.
	n := New()
	a := n.Intern("A")
	b := n.Intern("B")
	t1 := n.Intern("T1")
	n.AddGate(t1, a, b)

	wide, err := n.EvalWide(map[string]uint256.Int{
		"A": TruthPattern(0),
		"B": TruthPattern(1),
	})
	if err != nil {
		t.Fatalf("EvalWide failed: %s", err)
	}
	for lane := 0; lane < 256; lane++ {
		av := (lane >> 0) & 1
		bv := (lane >> 1) & 1
		expected := uint64(1)
		if av == 1 && bv == 1 {
			expected = 0
		}
		if Lane(&wide[t1], lane) != expected {
			t.Fatalf("lane %d: NAND(%d,%d)=%d, expected %d",
				lane, av, bv, Lane(&wide[t1], lane), expected)
		}
	}
}

func TestEvalWideUnresolved(t *testing.T) {
	n := New()
	a := n.Intern("A")
	b := n.Intern("B")
	t1 := n.Intern("T1")
	n.AddGate(t1, a, b)

	_, err := n.EvalWide(map[string]uint256.Int{
		"A": TruthPattern(0),
	})
	if err == nil {
		t.Fatalf("unresolved signal not detected")
	}
}
