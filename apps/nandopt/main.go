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
	"github.com/markkurossi/nandopt/optimize"
)

func main() {
	output := flag.String("o", "nands-optimized.txt", "netlist output file")
	var inputs nandopt.Files
	flag.Var(&inputs, "i", "value file, can be given multiple times")
	rounds := flag.Int("rounds", 25, "optimization round limit")
	noMotifs := flag.Bool("no-motifs", false, "disable motif rewrites")
	dotOut := flag.String("dot", "", "DOT graph output file")
	doVerify := flag.Bool("verify", false,
		"verify the result against the reference SHA-256")
	seed := flag.String("seed", "nandopt", "verification message seed")
	trials := flag.Int("trials", 5, "number of random verification messages")
	verbose := flag.Bool("v", false, "verbose output")
	diagnostics := flag.Bool("diagnostics", false, "per-pass diagnostics")
	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatalf("no input file specified")
	}
	file := flag.Args()[0]

	params := optimize.NewParams()
	defer params.Close()

	params.Verbose = *verbose
	params.Diagnostics = *diagnostics
	params.MaxRounds = *rounds
	params.NoMotifs = *noMotifs

	if len(*dotOut) > 0 {
		f, err := os.Create(*dotOut)
		if err != nil {
			log.Fatal(err)
		}
		params.NetlistDotOut = f
	}

	n, err := netlist.ParseFile(file)
	if err != nil {
		log.Fatal(err)
	}
	values, err := nandopt.LoadValues(inputs)
	if err != nil {
		log.Fatal(err)
	}

	o := optimize.New(params, n, values)
	if err := o.Optimize(); err != nil {
		log.Fatal(err)
	}
	o.Report(os.Stdout)

	res := o.Netlist()
	if err := res.WriteFile(*output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", *output)

	if *doVerify {
		consts, err := nandopt.ConstValues(inputs)
		if err != nil {
			log.Fatal(err)
		}
		result, err := nandopt.Verify(os.Stdout, res, consts, *seed,
			*trials, *verbose)
		if err != nil {
			fmt.Printf("Verification failed: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Verified: %d messages passed\n", result.Passed)
	}
}
