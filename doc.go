/*
Package engine implements exact substring search over byte sequences with
four interchangeable algorithms:

	Naive        brute-force sliding comparison, the reference baseline
	KMP          Knuth-Morris-Pratt, longest-proper-prefix-suffix skipping
	BoyerMoore   bad-character shift table, right-to-left comparison
	RabinKarp    rolling polynomial hash (base 256, modulus 101) + verify

Every search returns the index of the first occurrence of the pattern, or
NotFound. All algorithms agree on every input. An empty pattern matches at
index 0 of any text, including the empty text.

The plain functions (KmpSearch, ...) allocate their auxiliary tables per
call. SearchEngine caches those tables per pattern for repeated searches,
and QuickSearch borrows them from a pool.
*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'engine'
func tracer() tracing.Trace {
	return tracing.Select("engine")
}
