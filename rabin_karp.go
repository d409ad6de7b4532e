package engine

const (
	// HashBase is the radix of the Rabin-Karp polynomial hash.
	HashBase = 256
	// HashModulus is kept small on purpose: collisions are frequent and every
	// hash hit is verified byte by byte.
	HashModulus = 101
)

// PolynomialHash returns Σ s[k]·HashBase^(len(s)-k-1) mod HashModulus.
func PolynomialHash(s []byte) int {
	h := 0
	for _, c := range s {
		h = (h*HashBase + int(c)) % HashModulus
	}
	return h
}

// highOrderMultiplier returns HashBase^(m-1) mod HashModulus, the weight of
// the outgoing byte of a window of length m.
func highOrderMultiplier(m int) int {
	mult := 1
	for k := 1; k < m; k++ {
		mult = (mult * HashBase) % HashModulus
	}
	return mult
}

// RabinKarpSearch finds the first occurrence of pattern in text by comparing
// rolling window hashes and verifying every hash match.
func RabinKarpSearch(text, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return NotFound
	}
	return rabinKarpScan(text, pattern, PolynomialHash(pattern), highOrderMultiplier(len(pattern)))
}

// RabinKarpSearchString is RabinKarpSearch for strings.
func RabinKarpSearchString(text, pattern string) int {
	return RabinKarpSearch(unsafeStringToBytes(text), unsafeStringToBytes(pattern))
}

// rabinKarpScan expects 0 < len(pattern) <= len(text).
func rabinKarpScan(text, pattern []byte, patternHash, mult int) int {
	n, m := len(text), len(pattern)
	windowHash := PolynomialHash(text[:m])
	for i := 0; i <= n-m; i++ {
		if windowHash == patternHash && memEqual(text[i:], pattern, m) {
			return i
		}
		if i < n-m {
			windowHash = rollHash(windowHash, text[i], text[i+m], mult)
		}
	}
	return NotFound
}

// rollHash drops outgoing from the front of a window hash and appends incoming.
func rollHash(h int, outgoing, incoming byte, mult int) int {
	h = (h - int(outgoing)*mult) % HashModulus
	h = (h*HashBase + int(incoming)) % HashModulus
	if h < 0 {
		h += HashModulus
	}
	return h
}
