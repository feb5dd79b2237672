package bloomfilter

import (
	"errors"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

const (
	// DefaultWords is the number of 64-bit words backing a filter built
	// without WithWords or WithBits (6400 bits).
	DefaultWords = 100

	// DefaultHashes is the number of hash values consumed per operation.
	DefaultHashes = 10

	wordBits = 64
)

// Errors returned by New and NewSync.
var (
	// ErrNilFamily is returned when no hash family is supplied.
	ErrNilFamily = errors.New("bloomfilter: hash family is nil")
	// ErrZeroBits is returned when M would be zero.
	ErrZeroBits = errors.New("bloomfilter: bit array must hold at least one bit")
	// ErrZeroHashes is returned when H is zero.
	ErrZeroHashes = errors.New("bloomfilter: at least one hash per item is required")
	// ErrTooManyBits is returned when M overflows or cannot be allocated.
	ErrTooManyBits = errors.New("bloomfilter: bit array too large")
)

// Errors returned by Estimate.
var (
	// ErrZeroItems is returned when the expected item count is zero.
	ErrZeroItems = errors.New("bloomfilter: expected item count must be positive")
	// ErrInvalidRate is returned when the false-positive rate is outside (0, 1).
	ErrInvalidRate = errors.New("bloomfilter: false-positive rate must be in (0, 1)")
)

// Filter is a Bloom filter over a fixed array of M bits, with H hash values
// derived per item from a Family. A Filter is not safe for concurrent
// mutation; see SyncFilter.
type Filter struct {
	bits   *bitset.BitSet
	m      uint64
	h      uint
	family Family
}

type config struct {
	bits   uint64
	words  uint64
	hashes uint
	logger *slog.Logger
}

// Option configures a Filter at construction.
type Option func(*config)
