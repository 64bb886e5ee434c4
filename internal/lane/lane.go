package lane

import "fmt"

// Width is the number of bytes checked by one lane predicate.
const Width = 32

// laneEqual reports whether two Width-byte lanes are identical.
// Set once at init by the build-specific strategy files.
var (
	laneEqual func(a, b []byte) bool
	strategy  string
)

// FirstDifference returns the index of the first byte where a and b differ.
// a and b must have the same length.
func FirstDifference(a, b []byte) (int, bool) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("lane: length mismatch %d != %d", len(a), len(b)))
	}

	n := len(a)
	i := 0
	for ; i+Width <= n; i += Width {
		if laneEqual(a[i:i+Width], b[i:i+Width]) {
			continue
		}
		if j, ok := scan(a[i:i+Width], b[i:i+Width]); ok {
			return i + j, true
		}
	}

	if j, ok := scan(a[i:], b[i:]); ok {
		return i + j, true
	}
	return 0, false
}

// scan is the scalar locator used for failing lanes and the tail.
func scan(a, b []byte) (int, bool) {
	b = b[:len(a)]
	for i := range a {
		if a[i] != b[i] {
			return i, true
		}
	}
	return 0, false
}

// RoundUp rounds n up to a positive multiple of Width.
func RoundUp(n int) int {
	if n <= 0 {
		return Width
	}
	return (n + Width - 1) &^ (Width - 1)
}

// Strategy names the lane predicate chosen for this process.
func Strategy() string { return strategy }
