package bloomfilter

import (
	"encoding/binary"
	"log/slog"
	"math"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// WithWords sizes the bit array as k 64-bit words, so M = 64*k.
func WithWords(k uint64) Option {
	return func(c *config) {
		c.bits = 0
		c.words = k
	}
}

// WithBits sizes the bit array as exactly m bits.
func WithBits(m uint64) Option {
	return func(c *config) {
		c.bits = m
		c.words = 0
	}
}

// WithHashes sets the number of hash values consumed per Insert and Contains.
// For n expected items the optimum is about (M/n)·ln 2; see OptimalHashes.
func WithHashes(h uint) Option {
	return func(c *config) {
		c.hashes = h
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New creates an empty filter that hashes items with family. Unless options
// say otherwise the filter has DefaultWords words and DefaultHashes hashes.
//
// The function returns an error if the family is nil, if either M or H is
// zero, or if the bit array cannot be allocated.
func New(family Family, opts ...Option) (*Filter, error) {
	c := config{
		words:  DefaultWords,
		hashes: DefaultHashes,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if family == nil {
		return nil, ErrNilFamily
	}
	if c.words > math.MaxUint64/wordBits {
		return nil, ErrTooManyBits
	}
	if c.words != 0 {
		c.bits = c.words * wordBits
	}
	if c.bits == 0 {
		return nil, ErrZeroBits
	}
	if c.hashes == 0 {
		return nil, ErrZeroHashes
	}
	logger := c.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// bitset.New returns an empty set when the allocation fails, and uint
	// truncates M on 32-bit platforms.
	bits := bitset.New(uint(c.bits))
	if uint64(bits.Len()) != c.bits {
		return nil, ErrTooManyBits
	}
	filter := &Filter{
		bits:   bits,
		m:      c.bits,
		h:      c.hashes,
		family: family,
	}
	logger.Debug("bloom filter created",
		"bits", filter.m, "words", filter.Words(), "hashes", filter.h)
	if uint64(filter.h) > filter.m {
		logger.Warn("hash count exceeds bit count, filter will saturate",
			"bits", filter.m, "hashes", filter.h)
	}
	return filter, nil
}

// MustNew is like New but panics on a misconfigured filter.
func MustNew(family Family, opts ...Option) *Filter {
	filter, err := New(family, opts...)
	if err != nil {
		panic(err)
	}
	return filter
}

// Insert adds item to the filter. Inserting the same item again has no
// effect.
func (f *Filter) Insert(item []byte) {
	remaining := f.h
	for hash := range f.family.Hashes(item) {
		f.bits.Set(uint(hash % f.m))
		remaining--
		if remaining == 0 {
			break
		}
	}
}

// Contains tells you whether item is likely part of the set. A false result
// is exact; a true result may be a false positive.
func (f *Filter) Contains(item []byte) bool {
	remaining := f.h
	for hash := range f.family.Hashes(item) {
		if !f.bits.Test(uint(hash % f.m)) {
			return false
		}
		remaining--
		if remaining == 0 {
			break
		}
	}
	return true
}

// TestAndInsert inserts item and reports whether it was likely present
// before the call.
func (f *Filter) TestAndInsert(item []byte) bool {
	present := true
	remaining := f.h
	for hash := range f.family.Hashes(item) {
		i := uint(hash % f.m)
		if !f.bits.Test(i) {
			present = false
			f.bits.Set(i)
		}
		remaining--
		if remaining == 0 {
			break
		}
	}
	return present
}

// InsertString adds s without copying it.
func (f *Filter) InsertString(s string) {
	f.Insert(stringBytes(s))
}

// ContainsString is Contains for a string item.
func (f *Filter) ContainsString(s string) bool {
	return f.Contains(stringBytes(s))
}

// InsertUint64 adds key, hashed as its 8-byte little-endian encoding.
func (f *Filter) InsertUint64(key uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	f.Insert(buf[:])
}

// ContainsUint64 is Contains for a key added with InsertUint64.
func (f *Filter) ContainsUint64(key uint64) bool {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return f.Contains(buf[:])
}

// Bits returns M, the size of the bit array.
func (f *Filter) Bits() uint64 {
	return f.m
}

// Words returns the number of 64-bit words backing the bit array.
func (f *Filter) Words() uint64 {
	return (f.m + wordBits - 1) / wordBits
}

// Hashes returns H.
func (f *Filter) Hashes() uint {
	return f.h
}

// OnesCount returns the number of bits set to 1.
func (f *Filter) OnesCount() uint64 {
	return uint64(f.bits.Count())
}

// FillRatio returns the fraction of bits set to 1.
func (f *Filter) FillRatio() float64 {
	return float64(f.OnesCount()) / float64(f.m)
}

// EstimatedFalsePositiveRate returns the probability that a random item not
// in the set is reported present, given the bits set so far.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(f.h))
}

// Equal reports whether both filters have the same shape and the same bits.
// It does not compare hash families. A nil filter equals nothing.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return false
	}
	return f.m == other.m && f.h == other.h && f.bits.Equal(other.bits)
}

// stringBytes views s as a byte slice. Families must not modify items.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
