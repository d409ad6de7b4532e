package engine

import (
	"fmt"
	"strings"
)

// NotFound is returned by every search when the pattern does not occur in the text.
const NotFound = -1

// SearchFunc reports the index of the first occurrence of pattern in text, or NotFound.
type SearchFunc func(text, pattern []byte) int

// Algorithm identifies one of the search strategies.
type Algorithm int

const (
	// Naive compares the pattern against every window of the text.
	Naive Algorithm = iota
	// KMP skips re-scanning matched characters using the LPS table.
	KMP
	// BoyerMoore compares right-to-left and shifts by the bad-character table.
	BoyerMoore
	// RabinKarp filters windows with a rolling hash and verifies candidates.
	RabinKarp
)

var algorithmNames = [...]string{
	Naive:      "naive",
	KMP:        "kmp",
	BoyerMoore: "boyer-moore",
	RabinKarp:  "rabin-karp",
}

// Algorithms returns all algorithms, baseline first.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, KMP, BoyerMoore, RabinKarp}
}

func (a Algorithm) valid() bool {
	return a >= Naive && a <= RabinKarp
}

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a name such as "kmp" or "Boyer-Moore" to its Algorithm.
// Underscores and spaces are accepted in place of hyphens.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	switch normalized {
	case "naive", "brute-force":
		return Naive, nil
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "boyer-moore", "bm":
		return BoyerMoore, nil
	case "rabin-karp", "rk":
		return RabinKarp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Func returns the search function implementing a.
// It panics if a is not one of the defined algorithms.
func (a Algorithm) Func() SearchFunc {
	switch a {
	case Naive:
		return NaiveSearch
	case KMP:
		return KmpSearch
	case BoyerMoore:
		return BoyerMooreSearch
	case RabinKarp:
		return RabinKarpSearch
	}
	panic(fmt.Sprintf("engine: invalid algorithm %d", int(a)))
}

// Searcher is a search algorithm usable on both byte slices and strings.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	String() string
}

type searcher struct {
	algorithm Algorithm
	fn        SearchFunc
}

// NewSearcher returns a Searcher running algorithm a.
func NewSearcher(a Algorithm) Searcher {
	return &searcher{algorithm: a, fn: a.Func()}
}

func (s *searcher) FindIndex(text, pattern []byte) int {
	return s.fn(text, pattern)
}

func (s *searcher) FindIndexString(text, pattern string) int {
	return s.fn(unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}

func (s *searcher) String() string {
	return s.algorithm.String()
}
