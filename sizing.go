package bloomfilter

import "math"

// OptimalHashes returns the hash count minimising the false-positive rate of
// an m-bit filter holding n items: round((m/n)·ln 2), at least 1.
func OptimalHashes(m, n uint64) uint {
	if n == 0 {
		return 1
	}
	k := math.Round(float64(m) / float64(n) * math.Ln2)
	if k < 1 {
		return 1
	}
	return uint(k)
}

// maxBits is the largest bit count that is a whole number of words.
const maxBits = math.MaxUint64 &^ (wordBits - 1)

// OptimalBits returns the bit count needed to hold n items at
// false-positive rate p, rounded up to whole 64-bit words and capped at
// maxBits. It returns 0 when n is zero or p is outside (0, 1); Estimate
// reports these cases as errors.
func OptimalBits(n uint64, p float64) uint64 {
	if n == 0 || !(p > 0 && p < 1) {
		return 0
	}
	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	if m >= float64(maxBits) {
		return maxBits
	}
	words := (uint64(m) + wordBits - 1) / wordBits
	if words == 0 {
		words = 1
	}
	return words * wordBits
}

// Estimate returns the number of words and hashes for n items at
// false-positive rate p, ready for WithWords and WithHashes.
func Estimate(n uint64, p float64) (words uint64, hashes uint, err error) {
	if n == 0 {
		return 0, 0, ErrZeroItems
	}
	if !(p > 0 && p < 1) {
		return 0, 0, ErrInvalidRate
	}
	m := OptimalBits(n, p)
	return m / wordBits, OptimalHashes(m, n), nil
}

// FalsePositiveRate returns the theoretical false-positive rate of an m-bit
// filter using h hashes after n distinct insertions: (1 - e^(-h·n/m))^h.
func FalsePositiveRate(m uint64, h uint, n uint64) float64 {
	if m == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(h)*float64(n)/float64(m)), float64(h))
}
