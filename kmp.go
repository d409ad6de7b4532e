package engine

// ComputeLPS returns the failure function of pattern: lps[i] is the length of
// the longest proper prefix of pattern[:i+1] that is also a suffix of it.
func ComputeLPS(pattern []byte) []int {
	lps := make([]int, len(pattern))
	fillLPS(pattern, lps)
	return lps
}

// fillLPS writes the failure function of pattern into lps, which must have
// room for len(pattern) entries.
func fillLPS(pattern []byte, lps []int) {
	if len(pattern) == 0 {
		return
	}
	lps[0] = 0
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1] // retry i against the shorter border
		} else {
			lps[i] = 0
			i++
		}
	}
}

// KmpSearch finds the first occurrence of pattern in text in O(N+M).
func KmpSearch(text, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return NotFound
	}
	return kmpScan(text, pattern, ComputeLPS(pattern))
}

// KmpSearchString is KmpSearch for strings.
func KmpSearchString(text, pattern string) int {
	return KmpSearch(unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}

// kmpScan expects 0 < len(pattern) <= len(text) and lps computed for pattern.
func kmpScan(text, pattern []byte, lps []int) int {
	n, m := len(text), len(pattern)
	i, j := 0, 0
	for i < n {
		if pattern[j] == text[i] {
			i++
			j++
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
		if j == m {
			return i - j
		}
	}
	return NotFound
}
