//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"strings"
	"testing"

	"github.com/markkurossi/nandopt/netlist"
)

func parse(t *testing.T, data string) *netlist.Netlist {
	t.Helper()
	n, err := netlist.Parse(strings.NewReader(data), "test")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if err := n.Verify(); err != nil {
		t.Fatalf("Verify failed: %s", err)
	}
	return n
}

func TestSubstResolve(t *testing.T) {
	n := parse(t, `T1,A,B
T2,A,T1
T3,B,T2
OUTPUT-W0-B0,T3,T3
`)
	sub := NewSubst(n)

	t1, _ := n.Lookup("T1")
	t2, _ := n.Lookup("T2")
	t3, _ := n.Lookup("T3")

	if err := sub.Set(t3, t2); err != nil {
		t.Fatalf("Set failed: %s", err)
	}
	if err := sub.Set(t2, t1); err != nil {
		t.Fatalf("Set failed: %s", err)
	}

	r, err := sub.Resolve(t3)
	if err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}
	if r != t1 {
		t.Fatalf("Resolve(T3)=%s, expected T1", n.Label(r))
	}
	r, err = sub.Resolve(t1)
	if err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}
	if r != t1 {
		t.Fatalf("Resolve(T1)=%s, expected T1", n.Label(r))
	}
}

func TestSubstCycle(t *testing.T) {
	n := parse(t, `T1,A,B
T2,A,T1
OUTPUT-W0-B0,T2,T2
`)
	sub := NewSubst(n)

	t1, _ := n.Lookup("T1")
	t2, _ := n.Lookup("T2")

	sub.Set(t1, t2)
	sub.Set(t2, t1)

	if _, err := sub.Resolve(t1); err == nil {
		t.Fatalf("substitution cycle not detected")
	}
}

func TestSubstOutputKey(t *testing.T) {
	n := parse(t, `T1,A,B
OUTPUT-W0-B0,T1,T1
`)
	sub := NewSubst(n)

	t1, _ := n.Lookup("T1")
	out, _ := n.Lookup("OUTPUT-W0-B0")

	if err := sub.Set(out, t1); err == nil {
		t.Fatalf("declared output accepted as substitution key")
	}
}

func TestSubstApply(t *testing.T) {
	n := parse(t, `T1,A,B
T2,A,B
T3,T2,B
OUTPUT-W0-B0,T3,T3
`)
	sub := NewSubst(n)

	t1, _ := n.Lookup("T1")
	t2, _ := n.Lookup("T2")

	if err := sub.Set(t2, t1); err != nil {
		t.Fatalf("Set failed: %s", err)
	}
	if err := sub.Apply(); err != nil {
		t.Fatalf("Apply failed: %s", err)
	}
	if len(n.Gates) != 3 {
		t.Fatalf("expected 3 gates, got %d", len(n.Gates))
	}
	t3Idx := n.Definer(mustLookup(t, n, "T3"))
	if n.Gates[t3Idx].A != t1 {
		t.Fatalf("T3 input not resolved to T1")
	}
	if err := n.Verify(); err != nil {
		t.Fatalf("Verify failed after Apply: %s", err)
	}
}

func TestSubstApplyEmpty(t *testing.T) {
	n := parse(t, `T1,A,B
OUTPUT-W0-B0,T1,T1
`)
	sub := NewSubst(n)
	if err := sub.Apply(); err != nil {
		t.Fatalf("Apply failed: %s", err)
	}
	if len(n.Gates) != 2 {
		t.Fatalf("empty substitution changed the netlist")
	}
}

func mustLookup(t *testing.T, n *netlist.Netlist, label string) netlist.Signal {
	t.Helper()
	s, ok := n.Lookup(label)
	if !ok {
		t.Fatalf("unknown signal %s", label)
	}
	return s
}
