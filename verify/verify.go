//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package verify checks SHA-256 NAND netlists against the standard
// library implementation.
package verify

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/nandopt/sha2nand"
)

// FixedMessages are the fixed verification messages.
var FixedMessages = []string{
	"",
	"a",
	"abc",
	"hello",
	"The quick brown fox",
}

// RandomMessages expands the seed into count pseudo-random test
// messages. The message lengths stay within the single block limit.
func RandomMessages(seed string, count int) [][]byte {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, 12)
	c, _ := chacha20.NewUnauthenticatedCipher(key[:], nonce)

	msgs := make([][]byte, count)
	for i := range msgs {
		buf := make([]byte, 1+sha2nand.MaxMessage)
		c.XORKeyStream(buf, buf)
		length := int(buf[0]) % (sha2nand.MaxMessage + 1)
		msgs[i] = buf[1 : 1+length]
	}
	return msgs
}

// DefaultMessages returns the default verification message set: the
// fixed messages plus count random ones from the seed.
func DefaultMessages(seed string, count int) [][]byte {
	var msgs [][]byte
	for _, m := range FixedMessages {
		msgs = append(msgs, []byte(m))
	}
	return append(msgs, RandomMessages(seed, count)...)
}

// Result contains the verification outcome.
type Result struct {
	Passed int
	Failed int
}

func checkMessage(out io.Writer, n *netlist.Netlist, consts netlist.Values,
	msg []byte, verbose bool) (bool, error) {

	values := make(netlist.Values)
	values.Merge(consts)
	inputs, err := sha2nand.InputValues(msg)
	if err != nil {
		return false, err
	}
	values.Merge(inputs)

	vals, err := n.Eval(values)
	if err != nil {
		return false, err
	}
	circuit := sha2nand.FormatOutputs(n, vals)
	digest := sha256.Sum256(msg)
	reference := hex.EncodeToString(digest[:])

	passed := circuit == reference
	if verbose || !passed {
		status := "PASS"
		if !passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "  %s: message=%q\n", status, msg)
		if !passed {
			fmt.Fprintf(out, "    Circuit:   %s\n", circuit)
			fmt.Fprintf(out, "    Reference: %s\n", reference)
		}
	}
	return passed, nil
}

// Run verifies the netlist digest of every message against
// crypto/sha256, reporting mismatches to out. The consts values must
// bind the round constant and initial hash leaves; the input bits are
// derived per message. A non-zero failure count is an error.
func Run(out io.Writer, n *netlist.Netlist, consts netlist.Values,
	messages [][]byte, verbose bool) (Result, error) {

	var result Result
	for _, msg := range messages {
		ok, err := checkMessage(out, n, consts, msg, verbose)
		if err != nil {
			return result, err
		}
		if ok {
			result.Passed++
		} else {
			result.Failed++
		}
	}
	if result.Failed > 0 {
		return result, fmt.Errorf("%d of %d messages failed",
			result.Failed, result.Passed+result.Failed)
	}
	return result, nil
}
