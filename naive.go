package engine

// NaiveSearch tries every window start from 0 to len(text)-len(pattern).
// It is O(N·M) in the worst case and serves as the reference for the others.
func NaiveSearch(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; i++ {
		if memEqual(text[i:], pattern, m) {
			return i
		}
	}
	return NotFound
}

// NaiveSearchString is NaiveSearch for strings.
func NaiveSearchString(text, pattern string) int {
	return NaiveSearch(unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}
