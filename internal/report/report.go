// Package report renders benchmark results and names the fastest algorithm
// per corpus and pattern class.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	engine "github.com/42atomys/go-pattern-search"
	"github.com/42atomys/go-pattern-search/internal/bench"
)

// Winner is the fastest algorithm for one corpus and pattern class.
type Winner struct {
	Corpus    string
	Class     bench.Class
	Algorithm engine.Algorithm
	Elapsed   time.Duration
}

type group struct {
	corpus string
	class  bench.Class
}

// groups returns the distinct (corpus, class) pairs in order of first appearance.
func groups(results []bench.Result) []group {
	seen := make(map[group]bool)
	var gg []group
	for _, r := range results {
		g := group{r.Corpus, r.Class}
		if !seen[g] {
			seen[g] = true
			gg = append(gg, g)
		}
	}
	return gg
}

// Fastest returns, per corpus and class, the algorithm with the smallest
// elapsed time. Ties go to the result listed first.
func Fastest(results []bench.Result) []Winner {
	var winners []Winner
	for _, g := range groups(results) {
		var w *Winner
		for _, r := range results {
			if r.Corpus != g.corpus || r.Class != g.class {
				continue
			}
			if w == nil || r.Elapsed < w.Elapsed {
				w = &Winner{Corpus: r.Corpus, Class: r.Class, Algorithm: r.Algorithm, Elapsed: r.Elapsed}
			}
		}
		winners = append(winners, *w)
	}
	return winners
}

// agree reports whether every result of the group returned the same index.
func agree(results []bench.Result, g group) bool {
	index, first := 0, true
	for _, r := range results {
		if r.Corpus != g.corpus || r.Class != g.class {
			continue
		}
		if first {
			index, first = r.Index, false
		} else if r.Index != index {
			return false
		}
	}
	return true
}

// Write prints one table row per result followed by the fastest algorithm
// for every corpus and class.
func Write(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CORPUS\tPATTERN\tALGORITHM\tINDEX\tTOTAL\tPER CALL\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\t%v\t\n",
			r.Corpus, r.Class, r.Algorithm, r.Index, r.Elapsed, r.PerCall())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, win := range Fastest(results) {
		if _, err := fmt.Fprintf(w, "fastest for %s (%s pattern): %s (%v)\n",
			win.Corpus, win.Class, win.Algorithm, win.Elapsed); err != nil {
			return err
		}
	}
	for _, g := range groups(results) {
		if !agree(results, g) {
			if _, err := fmt.Fprintf(w, "WARNING: algorithms disagree on %s (%s pattern)\n", g.corpus, g.class); err != nil {
				return err
			}
		}
	}
	return nil
}
