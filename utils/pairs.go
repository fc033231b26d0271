package utils

// PairKey returns a direction-independent key for a pair of user ids.
// Both (a, b) and (b, a) yield the same key.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}
