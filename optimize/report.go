//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimize

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Report renders the optimization summary: rewrites per pass and
// the overall gate reduction.
func (o *Optimizer) Report(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Pass").SetAlign(tabulate.ML)
	tab.Header("Rewrites").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	rows := []struct {
		name  string
		count int
	}{
		{"ConstFold", o.Totals.ConstFold},
		{"Algebraic", o.Totals.Algebraic},
		{"Motifs", o.Totals.Motifs},
		{"CSE", o.Totals.CSE},
		{"Prune", o.Totals.Prune},
		{"Renumber", o.Totals.Renumber},
	}
	total := 0
	for _, r := range rows {
		total += r.count
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.name)
		row.Column(fmt.Sprintf("%d", r.count))
		var pct float64
		if total > 0 {
			pct = float64(r.count) / float64(total) * 100
		}
		row.Column(fmt.Sprintf("%.2f%%", pct))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", total)).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	tab.Print(out)

	final := len(o.n.Gates)
	var reduction float64
	if o.Initial > 0 {
		reduction = float64(o.Initial-final) / float64(o.Initial) * 100
	}
	fmt.Fprintf(out, "Gates: %d => %d (%.2f%%)\n",
		o.Initial, final, reduction)
	fmt.Fprintf(out, "Rounds: %d, depth: %d\n", o.Rounds, o.n.Depth())
}
