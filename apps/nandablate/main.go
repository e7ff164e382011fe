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
	"strconv"
	"strings"

	"github.com/markkurossi/nandopt"
	"github.com/markkurossi/nandopt/netlist"
	"github.com/markkurossi/nandopt/optimize"
)

type result struct {
	bits  int
	gates int
	depth int
}

func main() {
	bits := flag.Int("bits", 0, "number of low digest bits to remove")
	output := flag.String("o", "", "netlist output file")
	var inputs nandopt.Files
	flag.Var(&inputs, "i", "value file, can be given multiple times")
	rounds := flag.Int("rounds", 25, "optimization round limit")
	sweep := flag.String("sweep", "",
		"sweep ablation sizes start:end:step and print CSV")
	numWorkers := flag.Int("workers", 8, "number of sweep workers")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatalf("no input file specified")
	}
	file := flag.Args()[0]

	values, err := nandopt.LoadValues(inputs)
	if err != nil {
		log.Fatal(err)
	}

	if len(*sweep) > 0 {
		if err := runSweep(file, values, *sweep, *numWorkers,
			*rounds); err != nil {
			log.Fatal(err)
		}
		return
	}

	params := optimize.NewParams()
	params.Verbose = *verbose
	params.MaxRounds = *rounds

	res, err := ablate(file, values, params, *bits)
	if err != nil {
		log.Fatal(err)
	}
	res.Report(os.Stdout)

	if len(*output) > 0 {
		if err := res.Netlist().WriteFile(*output); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", *output)
	}
}

func ablate(file string, values netlist.Values, params *optimize.Params,
	bits int) (*optimize.Optimizer, error) {

	n, err := netlist.ParseFile(file)
	if err != nil {
		return nil, err
	}
	if err := n.AblateLow(bits); err != nil {
		return nil, err
	}
	o := optimize.New(params, n, values)
	if err := o.Optimize(); err != nil {
		return nil, err
	}
	return o, nil
}

func runSweep(file string, values netlist.Values, sweep string,
	numWorkers, rounds int) error {

	start, end, step, err := parseSweep(sweep)
	if err != nil {
		return err
	}

	results := make(map[int]*result)
	ch := make(chan *result)

	for i := 0; i < numWorkers; i++ {
		go func(bits int) {
			for ; bits <= end; bits += numWorkers * step {
				params := optimize.NewParams()
				params.MaxRounds = rounds

				o, err := ablate(file, values, params, bits)
				if err != nil {
					log.Fatal(err)
				}
				n := o.Netlist()
				ch <- &result{
					bits:  bits,
					gates: len(n.Gates),
					depth: n.Depth(),
				}
			}
		}(start + i*step)
	}

	next := start

	fmt.Printf("Bits,Gates,Depth\n")

outer:
	for r := range ch {
		results[r.bits] = r
		for {
			r, ok := results[next]
			if !ok {
				break
			}
			fmt.Printf("%v,%v,%v\n", r.bits, r.gates, r.depth)
			if next >= end {
				break outer
			}
			next += step
		}
	}
	return nil
}

// parseSweep parses a start:end:step ablation range. The end is
// normalized to the last size the sweep actually visits.
func parseSweep(s string) (start, end, step int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0,
			fmt.Errorf("invalid sweep %q, expected start:end:step", s)
	}
	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	step, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if step <= 0 {
		return 0, 0, 0, fmt.Errorf("invalid sweep step %d", step)
	}
	if start > end {
		return 0, 0, 0, fmt.Errorf("invalid sweep range %d:%d", start, end)
	}
	end = start + (end-start)/step*step
	return
}
