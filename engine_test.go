package engine

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEngineMatchesDirectSearch(t *testing.T) {
	engine := NewSearchEngine()
	inputs := []struct{ text, pattern string }{
		{"ABABDABACDABABCABAB", "ABABCABAB"},
		{"aaaaaaaaa", "aaa"},
		{"hello world", "world"},
		{"hello world", "worlds"},
		{"abc", "abcd"},
		{"abc", ""},
		{"", ""},
		{"xB_yA0", "A0"},
	}

	for _, a := range Algorithms() {
		for _, in := range inputs {
			want := a.Func()([]byte(in.text), []byte(in.pattern))
			// twice: compile on the first call, cached on the second
			assert.Equal(t, want, engine.SearchString(a, in.text, in.pattern), "%s(%q, %q)", a, in.text, in.pattern)
			assert.Equal(t, want, engine.SearchString(a, in.text, in.pattern), "%s(%q, %q) cached", a, in.text, in.pattern)
		}
	}
}

func TestSearchEngineCachesPerPattern(t *testing.T) {
	engine := NewSearchEngine()
	assert.Equal(t, 0, engine.CachedPatterns())

	engine.SearchString(KMP, "abcabc", "cab")
	engine.SearchString(BoyerMoore, "xyzcab", "cab")
	engine.SearchString(RabinKarp, "cab", "cab")
	assert.Equal(t, 1, engine.CachedPatterns())

	engine.SearchString(KMP, "abcabc", "abc")
	assert.Equal(t, 2, engine.CachedPatterns())

	// naive, empty and oversized patterns need no precomputation
	engine.SearchString(Naive, "abcabc", "bca")
	engine.SearchString(KMP, "abcabc", "")
	engine.SearchString(KMP, "ab", "abcabcabc")
	assert.Equal(t, 2, engine.CachedPatterns())
}

func TestSearchEngineCacheIsBounded(t *testing.T) {
	engine := NewSearchEngine()
	text := []byte(strings.Repeat("x", 16))
	for i := 0; i < maxCachedPatterns+10; i++ {
		engine.Search(KMP, text, []byte(fmt.Sprintf("%08d", i)))
	}
	assert.LessOrEqual(t, engine.CachedPatterns(), maxCachedPatterns)
	assert.Greater(t, engine.CachedPatterns(), 0)
}

func TestSearchEngineCopiesPattern(t *testing.T) {
	engine := NewSearchEngine()
	pattern := []byte("needle")
	require.Equal(t, 4, engine.Search(KMP, []byte("hay needle hay"), pattern))

	// mutating the caller's slice must not corrupt the cached entry
	copy(pattern, "noodle")
	assert.Equal(t, 4, engine.Search(KMP, []byte("hay noodle hay"), pattern))
	assert.Equal(t, 4, engine.Search(KMP, []byte("hay needle hay"), []byte("needle")))
}

func TestInvalidAlgorithmPanics(t *testing.T) {
	engine := NewSearchEngine()
	assert.Panics(t, func() { engine.Search(Algorithm(42), []byte("a"), []byte("a")) })
	assert.Panics(t, func() { QuickSearch(Algorithm(-1), []byte("a"), []byte("a")) })
}

func TestQuickSearchLongPattern(t *testing.T) {
	// longer than the initial pooled LPS capacity
	pattern := strings.Repeat("ab", 100) + "c"
	text := strings.Repeat("ab", 500) + "c"
	assert.Equal(t, 800, QuickSearchString(KMP, text, pattern))
	assert.Equal(t, 800, QuickSearchString(BoyerMoore, text, pattern))
	assert.Equal(t, 800, QuickSearchString(RabinKarp, text, pattern))
	assert.Equal(t, 800, QuickSearchString(Naive, text, pattern))
}

func TestQuickSearchLowAllocation(t *testing.T) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 50))
	pattern := []byte("lazy dog the")

	for _, a := range Algorithms() {
		QuickSearch(a, text, pattern) // warm up the pool
		allocs := testing.AllocsPerRun(100, func() {
			_ = QuickSearch(a, text, pattern)
		})
		t.Logf("%s: %.2f allocations per search", a, allocs)
		assert.Less(t, allocs, 1.0, "%s should not allocate after warm-up", a)
	}
}

func TestThreadSafetyStress(t *testing.T) {
	engine := NewSearchEngine()
	text := []byte(strings.Repeat("ABABDABACDABAB", 100) + "ABABCABAB")
	want := len(text) - len("ABABCABAB")

	numGoroutines := 10
	numOperations := 200
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()

			for j := 0; j < numOperations; j++ {
				a := Algorithms()[(id+j)%4]
				switch j % 3 {
				case 0:
					assert.Equal(t, want, engine.SearchString(a, string(text), "ABABCABAB"))
				case 1:
					// distinct patterns grow the cache concurrently
					pattern := fmt.Sprintf("miss%d", j)
					assert.Equal(t, NotFound, engine.SearchString(a, string(text), pattern))
				case 2:
					assert.Equal(t, want, QuickSearch(a, text, []byte("ABABCABAB")))
				}
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		select {
		case <-done:
		case <-time.After(30 * time.Second):
			t.Fatal("Stress test timed out - possible deadlock")
		}
	}
}

func TestDataRaceDetection(t *testing.T) {
	// meant to be run with -race
	engine := NewSearchEngine()
	text := []byte("aaaaaaaaab")

	var wg sync.WaitGroup
	for w := 0; w < 5; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, a := range Algorithms() {
					_ = engine.Search(a, text, []byte("aab"))
					_ = QuickSearch(a, text, []byte("ab"))
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkSearchEngine(b *testing.B) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 2000))
	pattern := []byte("lazy cat")
	engine := NewSearchEngine()

	for _, a := range Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = engine.Search(a, text, pattern)
			}
		})
	}
}

func BenchmarkQuickSearch(b *testing.B) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 2000))
	pattern := []byte("lazy cat")

	for _, a := range Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = QuickSearch(a, text, pattern)
			}
		})
	}
}

func ExampleSearchEngine() {
	engine := NewSearchEngine()
	texts := []string{
		"Not marble nor the gilded monuments",
		"Of princes shall outlive this powerful rhyme",
		"But you shall shine more bright in these contents",
	}

	// the pattern is compiled once and reused for every text
	for _, text := range texts {
		fmt.Println(engine.SearchString(BoyerMoore, text, "shall"))
	}
	// Output:
	// -1
	// 11
	// 8
}
