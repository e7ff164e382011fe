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
	"sort"
	"strings"
)

// Value is a three-valued signal value.
type Value uint8

// Signal values.
const (
	Unknown Value = iota
	Zero
	One
)

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "X"
	}
}

// ParseValue parses a signal value. The value X marks a signal whose
// value is intentionally unknown, as opposed to merely not listed.
func ParseValue(val string) (Value, error) {
	switch strings.ToUpper(val) {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	case "X":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("invalid value: %q", val)
	}
}

// Values maps signal labels to their three-valued values.
type Values map[string]Value

// ReadValues parses signal values from the reader. The source is
// used in error messages. Each line is `label,value` with value one
// of 0, 1, or X. Empty lines and lines starting with '#' are
// skipped.
func ReadValues(in io.Reader, source string) (Values, error) {
	values := make(Values)
	scanner := bufio.NewScanner(in)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: invalid value line: %q",
				source, line, text)
		}
		label := strings.TrimSpace(parts[0])
		if len(label) == 0 {
			return nil, fmt.Errorf("%s:%d: invalid value line: %q",
				source, line, text)
		}
		v, err := ParseValue(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %s", source, line, err)
		}
		values[label] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadValuesFile parses signal values from the file.
func ReadValuesFile(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadValues(f, path)
}

// Merge adds the values from o, overriding existing entries.
func (values Values) Merge(o Values) {
	for label, v := range o {
		values[label] = v
	}
}

// Write writes the values to the writer in label order, constants
// first.
func (values Values) Write(out io.Writer) error {
	labels := make([]string, 0, len(values))
	for label := range values {
		if label == Const0 || label == Const1 {
			continue
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	w := bufio.NewWriter(out)
	for _, label := range []string{Const0, Const1} {
		if v, ok := values[label]; ok {
			fmt.Fprintf(w, "%s,%s\n", label, v)
		}
	}
	for _, label := range labels {
		fmt.Fprintf(w, "%s,%s\n", label, values[label])
	}
	return w.Flush()
}

// WriteFile writes the values to the file.
func (values Values) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := values.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
