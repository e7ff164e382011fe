//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/nandopt/sha2nand"
)

func main() {
	output := flag.String("o", "nands.txt", "netlist output file")
	constOut := flag.String("constants", "", "constant value output file")
	inputOut := flag.String("input", "", "input value output file")
	msg := flag.String("msg", "", "message for the input value file")
	hexMsg := flag.String("hexmsg", "",
		"hex message for the input value file, ?? marks unknown bytes")
	flag.Parse()

	n, err := sha2nand.Generate()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Circuit: %v\n", n.Stats())

	if err := n.WriteFile(*output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", *output)

	if len(*constOut) > 0 {
		if err := sha2nand.ConstValues().WriteFile(*constOut); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *constOut)
	}
	if len(*inputOut) > 0 {
		var values netlist.Values
		if len(*hexMsg) > 0 {
			data, unknown, err := parseHexMessage(*hexMsg)
			if err != nil {
				log.Fatal(err)
			}
			values, err = sha2nand.InputValuesMasked(data, unknown)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			values, err = sha2nand.InputValues([]byte(*msg))
			if err != nil {
				log.Fatal(err)
			}
		}
		if err := values.WriteFile(*inputOut); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *inputOut)
	}
}

func parseHexMessage(s string) ([]byte, []bool, error) {
	if len(s)%2 != 0 {
		return nil, nil, fmt.Errorf("odd hex message length %d", len(s))
	}
	data := make([]byte, len(s)/2)
	unknown := make([]bool, len(s)/2)
	for i := 0; i < len(data); i++ {
		part := s[2*i : 2*i+2]
		if part == "??" {
			unknown[i] = true
			continue
		}
		b, err := hex.DecodeString(part)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid hex byte %q", part)
		}
		data[i] = b[0]
	}
	return data, unknown, nil
}
