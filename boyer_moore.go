package engine

// ShiftTable maps every byte to the distance a Boyer-Moore window slides
// when that byte is aligned with the last position of the pattern.
type ShiftTable [256]int

// BuildShiftTable computes the bad-character table of pattern.
//
// Bytes at positions 0..M-2 map to M-k-1, the rightmost occurrence winning.
// Every other byte, the last one included when it does not occur earlier,
// keeps the default shift M.
func BuildShiftTable(pattern []byte) *ShiftTable {
	table := new(ShiftTable)
	fillShiftTable(pattern, table)
	return table
}

func fillShiftTable(pattern []byte, table *ShiftTable) {
	m := len(pattern)
	for c := range table {
		table[c] = m
	}
	for k := 0; k < m-1; k++ {
		table[pattern[k]] = m - k - 1
	}
}

// BoyerMooreSearch finds the first occurrence of pattern in text using the
// bad-character rule only: sub-linear on average, O(N·M) in the worst case.
func BoyerMooreSearch(text, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return NotFound
	}
	var table ShiftTable
	fillShiftTable(pattern, &table)
	return boyerMooreScan(text, pattern, &table)
}

// BoyerMooreSearchString is BoyerMooreSearch for strings.
func BoyerMooreSearchString(text, pattern string) int {
	return BoyerMooreSearch(unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}

// boyerMooreScan expects 0 < len(pattern) <= len(text).
func boyerMooreScan(text, pattern []byte, table *ShiftTable) int {
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += table[text[i+m-1]]
	}
	return NotFound
}
