//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/markkurossi/nandopt"
	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/nandopt/sha2nand"
)

func main() {
	var inputs nandopt.Files
	flag.Var(&inputs, "i", "value file, can be given multiple times")
	msg := flag.String("msg", "", "message input bits")
	showOutputs := flag.Bool("outputs", false, "print output signal values")
	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatalf("no input file specified")
	}

	n, err := netlist.ParseFile(flag.Args()[0])
	if err != nil {
		log.Fatal(err)
	}
	values, err := nandopt.ConstValues(inputs)
	if err != nil {
		log.Fatal(err)
	}

	var msgGiven bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "msg" {
			msgGiven = true
		}
	})
	if msgGiven {
		iv, err := sha2nand.InputValues([]byte(*msg))
		if err != nil {
			log.Fatal(err)
		}
		values.Merge(iv)
	}

	vals, err := n.Eval(values)
	if err != nil {
		log.Fatal(err)
	}
	if *showOutputs {
		for _, out := range n.Outputs {
			fmt.Printf("%s,%s\n", n.Label(out), vals[out])
		}
	}
	fmt.Printf("Digest: %s\n", sha2nand.FormatOutputs(n, vals))
}
