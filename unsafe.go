package engine

import "unsafe"

// unsafeBytesToString converts []byte to string without allocation.
// Only used for map lookups; the bytes must not change while the string is live.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// unsafeStringToBytes converts string to []byte without allocation.
// The result is read-only: every search treats text and pattern as immutable.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// memEqual checks a candidate window: NaiveSearch calls it for every window
// start and RabinKarpSearch only on a hash hit, with a = text[i:] and
// b = pattern. Both slices must hold at least length bytes.
func memEqual(a, b []byte, length int) bool {
	if length == 0 {
		return true
	}

	// Word-size comparison (8 bytes at a time on 64-bit)
	const wordSize = int(unsafe.Sizeof(uintptr(0)))

	words := length / wordSize
	for i := 0; i < words; i++ {
		aWord := *(*uintptr)(unsafe.Pointer(&a[i*wordSize]))
		bWord := *(*uintptr)(unsafe.Pointer(&b[i*wordSize]))
		if aWord != bWord {
			return false
		}
	}

	for i := words * wordSize; i < length; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
