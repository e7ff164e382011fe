//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse parses a netlist from the reader. The source is used in
// error messages. Each line is `out,a,b` defining the gate
// out = NAND(a, b). Empty lines and lines starting with '#' are
// skipped. Parse rejects duplicate gate definitions; the topological
// order of the result is checked separately with Verify.
func Parse(in io.Reader, source string) (*Netlist, error) {
	n := New()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s:%d: invalid gate: %q",
				source, line, text)
		}
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
			if len(parts[i]) == 0 {
				return nil, fmt.Errorf("%s:%d: invalid gate: %q",
					source, line, text)
			}
		}
		out := n.Intern(parts[0])
		a := n.Intern(parts[1])
		b := n.Intern(parts[2])
		if err := n.AddGate(out, a, b); err != nil {
			return nil, fmt.Errorf("%s:%d: %s", source, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseFile parses a netlist from the file and verifies its
// topological order.
func ParseFile(path string) (*Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	if err := n.Verify(); err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return n, nil
}
