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
	"os"

	"github.com/markkurossi/nandopt"
	"github.com/markkurossi/nandopt/netlist"
)

func main() {
	var inputs nandopt.Files
	flag.Var(&inputs, "i", "constant value file, can be given multiple times")
	trials := flag.Int("trials", 5, "number of random test messages")
	seed := flag.String("seed", "nandverify", "random message seed")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatalf("no input file specified")
	}

	n, err := netlist.ParseFile(flag.Args()[0])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Circuit: %v\n", n.Stats())

	consts, err := nandopt.ConstValues(inputs)
	if err != nil {
		log.Fatal(err)
	}
	result, err := nandopt.Verify(os.Stdout, n, consts, *seed, *trials,
		*verbose)
	fmt.Printf("Results: %d passed, %d failed\n", result.Passed, result.Failed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("All tests passed!\n")
}
