package bloomfilter

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash"
	"github.com/dchest/siphash"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

// Family produces the hash values a Filter uses to pick bit positions.
//
// Hashes returns an unbounded sequence for item; the filter consumes the
// first H values. The sequence must be deterministic for a given Family value
// and item, and Hashes must be safe to call concurrently.
type Family interface {
	Hashes(item []byte) iter.Seq[uint64]
}

// doubleHashing yields h1, h1+h2, h1+2*h2, ... (Kirsch and Mitzenmacher).
// h2 is forced odd so the values stay distinct for 2^64 steps.
func doubleHashing(h1, h2 uint64) iter.Seq[uint64] {
	h2 |= 1
	return func(yield func(uint64) bool) {
		for h := h1; yield(h); h += h2 {
		}
	}
}

// SipPair derives two SipHash-2-4 values from two independent 128-bit keys.
type SipPair struct {
	Keys1 [2]uint64
	Keys2 [2]uint64
}

// NewSipPair returns a SipPair keyed with (k0, k1) pairs keys1 and keys2.
func NewSipPair(keys1, keys2 [2]uint64) SipPair {
	return SipPair{Keys1: keys1, Keys2: keys2}
}

// Hashes returns the double-hashing sequence of the two SipHash values.
func (p SipPair) Hashes(item []byte) iter.Seq[uint64] {
	h1 := siphash.Hash(p.Keys1[0], p.Keys1[1], item)
	h2 := siphash.Hash(p.Keys2[0], p.Keys2[1], item)
	return doubleHashing(h1, h2)
}

// XXHash derives two xxHash64 values, each seeded by prefixing the item with
// the seed's little-endian encoding.
type XXHash struct {
	Seed1 uint64
	Seed2 uint64
}

// Hashes returns the double-hashing sequence of the two seeded xxHash values.
func (x XXHash) Hashes(item []byte) iter.Seq[uint64] {
	return doubleHashing(xxhashSeeded(x.Seed1, item), xxhashSeeded(x.Seed2, item))
}

func xxhashSeeded(seed uint64, item []byte) uint64 {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], seed)
	d := xxhash.New()
	d.Write(prefix[:])
	d.Write(item)
	return d.Sum64()
}

// XXH3 splits one seeded 128-bit XXH3 value into the two base hashes.
type XXH3 struct {
	Seed uint64
}

// Hashes returns the double-hashing sequence of the 128-bit XXH3 halves.
func (x XXH3) Hashes(item []byte) iter.Seq[uint64] {
	sum := xxh3.Hash128Seed(item, x.Seed)
	return doubleHashing(sum.Lo, sum.Hi)
}

// Murmur3 splits one 128-bit MurmurHash3 value, seeded with two 64-bit
// seeds, into the two base hashes.
type Murmur3 struct {
	Seed1 uint64
	Seed2 uint64
}

// Hashes returns the double-hashing sequence of the 128-bit murmur halves.
func (m Murmur3) Hashes(item []byte) iter.Seq[uint64] {
	h1, h2 := murmur3.SeedSum128(m.Seed1, m.Seed2, item)
	return doubleHashing(h1, h2)
}

// Mix folds the item into a 64-bit key and mixes it with two seeds using a
// murmur64 finalizer. It is the cheapest family and suits uint64 keys added
// with InsertUint64, whose first hash is a bijection of the key.
type Mix struct {
	Seed1 uint64
	Seed2 uint64
}

// Hashes returns the double-hashing sequence of the two mixed keys.
func (m Mix) Hashes(item []byte) iter.Seq[uint64] {
	key := fold(item)
	return doubleHashing(mixsplit(key, m.Seed1), mixsplit(key, m.Seed2))
}
