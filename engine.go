package engine

import (
	"fmt"
	"sync"
)

// maxCachedPatterns bounds the SearchEngine pattern cache. Once reached, the
// cache is dropped and rebuilt on demand.
const maxCachedPatterns = 1024

// compiledPattern holds every per-pattern precomputation. It is immutable once
// published in the cache.
type compiledPattern struct {
	pattern     []byte
	lps         []int
	shift       *ShiftTable
	patternHash int
	mult        int
}

func compilePattern(pattern []byte) *compiledPattern {
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &compiledPattern{
		pattern:     p,
		lps:         ComputeLPS(p),
		shift:       BuildShiftTable(p),
		patternHash: PolynomialHash(p),
		mult:        highOrderMultiplier(len(p)),
	}
}

// SearchEngine runs searches for repeated patterns, caching the LPS table,
// shift table and pattern hash per distinct pattern.
// It is safe for concurrent use.
type SearchEngine struct {
	mu       sync.RWMutex
	compiled map[string]*compiledPattern
}

// NewSearchEngine creates a new search engine instance
func NewSearchEngine() *SearchEngine {
	return &SearchEngine{
		compiled: make(map[string]*compiledPattern),
	}
}

// Search returns the index of the first occurrence of pattern in text using
// algorithm a, or NotFound.
func (se *SearchEngine) Search(a Algorithm, text, pattern []byte) int {
	if !a.valid() {
		panic(fmt.Sprintf("engine: invalid algorithm %d", int(a)))
	}
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return NotFound
	}
	if a == Naive {
		return NaiveSearch(text, pattern)
	}

	cp := se.lookup(pattern)
	switch a {
	case KMP:
		return kmpScan(text, cp.pattern, cp.lps)
	case BoyerMoore:
		return boyerMooreScan(text, cp.pattern, cp.shift)
	default:
		return rabinKarpScan(text, cp.pattern, cp.patternHash, cp.mult)
	}
}

// SearchString is Search for strings.
func (se *SearchEngine) SearchString(a Algorithm, text, pattern string) int {
	return se.Search(a, unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}

// CachedPatterns reports how many distinct patterns are currently compiled.
func (se *SearchEngine) CachedPatterns() int {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return len(se.compiled)
}

// lookup returns the compiled form of pattern, compiling it on a cache miss.
func (se *SearchEngine) lookup(pattern []byte) *compiledPattern {
	se.mu.RLock()
	cp, ok := se.compiled[unsafeBytesToString(pattern)]
	se.mu.RUnlock()
	if ok {
		return cp
	}

	cp = compilePattern(pattern)

	se.mu.Lock()
	defer se.mu.Unlock()
	if existing, ok := se.compiled[string(cp.pattern)]; ok {
		return existing
	}
	if len(se.compiled) >= maxCachedPatterns {
		tracer().Debugf("pattern cache full (%d entries), dropping it", len(se.compiled))
		se.compiled = make(map[string]*compiledPattern)
	}
	se.compiled[string(cp.pattern)] = cp
	tracer().Debugf("compiled pattern of length %d", len(cp.pattern))
	return cp
}

// QuickSearch runs algorithm a without caching. Scratch tables come from a
// pool, so repeated calls do not allocate.
func QuickSearch(a Algorithm, text, pattern []byte) int {
	if !a.valid() {
		panic(fmt.Sprintf("engine: invalid algorithm %d", int(a)))
	}
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return NotFound
	}

	switch a {
	case Naive:
		return NaiveSearch(text, pattern)
	case RabinKarp:
		return RabinKarpSearch(text, pattern)
	}

	ctx := contextPool.Get().(*Context)
	defer func() {
		ctx.reset()
		contextPool.Put(ctx)
	}()

	if a == KMP {
		lps := ctx.lpsFor(len(pattern))
		fillLPS(pattern, lps)
		return kmpScan(text, pattern, lps)
	}
	fillShiftTable(pattern, &ctx.shift)
	return boyerMooreScan(text, pattern, &ctx.shift)
}

// QuickSearchString is QuickSearch for strings.
func QuickSearchString(a Algorithm, text, pattern string) int {
	return QuickSearch(a, unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}
