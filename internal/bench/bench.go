// Package bench times search algorithms over corpora.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	engine "github.com/42atomys/go-pattern-search"
	"github.com/42atomys/go-pattern-search/internal/corpus"
	"github.com/npillmayer/schuko/tracing"
)

// DefaultRepetitions is how many times each search is repeated per measurement.
const DefaultRepetitions = 1000

// ErrRepetitions is returned for a repetition count below 1.
var ErrRepetitions = errors.New("repetitions must be positive")

// tracer writes to trace with key 'bench'
func tracer() tracing.Trace {
	return tracing.Select("bench")
}

// Class tells whether a pattern is expected to occur in a corpus.
type Class int

const (
	// Present is a pattern known to occur in the corpus.
	Present Class = iota
	// Absent is a pattern known not to occur in the corpus.
	Absent
)

func (c Class) String() string {
	switch c {
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Case is one corpus searched for one pattern.
type Case struct {
	Corpus  corpus.Corpus
	Class   Class
	Pattern []byte
}

// Result is the measurement of one algorithm on one Case.
type Result struct {
	Corpus      string
	Class       Class
	Pattern     string
	Algorithm   engine.Algorithm
	Index       int // what the search returned
	Repetitions int
	Elapsed     time.Duration // total over all repetitions
}

// PerCall is the mean duration of a single search.
func (r Result) PerCall() time.Duration {
	if r.Repetitions == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Repetitions)
}

// Measure calls fn(text, pattern) exactly repetitions times and returns the
// total wall-clock time.
func Measure(fn engine.SearchFunc, text, pattern []byte, repetitions int) (time.Duration, error) {
	if repetitions < 1 {
		return 0, fmt.Errorf("%w: %d", ErrRepetitions, repetitions)
	}
	start := time.Now()
	for i := 0; i < repetitions; i++ {
		fn(text, pattern)
	}
	return time.Since(start), nil
}

// Cases pairs every corpus with the present and the absent pattern.
func Cases(corpora []corpus.Corpus, present, absent []byte) []Case {
	cases := make([]Case, 0, 2*len(corpora))
	for _, c := range corpora {
		cases = append(cases,
			Case{Corpus: c, Class: Present, Pattern: present},
			Case{Corpus: c, Class: Absent, Pattern: absent},
		)
	}
	return cases
}

// Run measures every algorithm on every case, in order. ctx is checked
// between measurements; a cancelled run returns the results gathered so far
// together with ctx.Err().
func Run(ctx context.Context, cases []Case, algorithms []engine.Algorithm, repetitions int) ([]Result, error) {
	if repetitions < 1 {
		return nil, fmt.Errorf("%w: %d", ErrRepetitions, repetitions)
	}
	results := make([]Result, 0, len(cases)*len(algorithms))
	for _, c := range cases {
		for _, a := range algorithms {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			fn := a.Func()
			elapsed, err := Measure(fn, c.Corpus.Text, c.Pattern, repetitions)
			if err != nil {
				return results, err
			}
			r := Result{
				Corpus:      c.Corpus.Name,
				Class:       c.Class,
				Pattern:     string(c.Pattern),
				Algorithm:   a,
				Index:       fn(c.Corpus.Text, c.Pattern),
				Repetitions: repetitions,
				Elapsed:     elapsed,
			}
			tracer().Debugf("%s/%s %s: index=%d elapsed=%v", r.Corpus, r.Class, a, r.Index, elapsed)
			results = append(results, r)
		}
		tracer().Infof("measured %s (%s pattern)", c.Corpus.Name, c.Class)
	}
	return results, nil
}
