package bloomfilter

import (
	"encoding/binary"
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func take(seq iter.Seq[uint64], n int) []uint64 {
	out := make([]uint64, 0, n)
	if n == 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

var families = []struct {
	name   string
	family Family
	other  Family
}{
	{"SipPair", NewSipPair([2]uint64{0, 0}, [2]uint64{1, 1}), NewSipPair([2]uint64{0, 1}, [2]uint64{1, 0})},
	{"XXHash", XXHash{Seed1: 0, Seed2: 1}, XXHash{Seed1: 2, Seed2: 3}},
	{"XXH3", XXH3{Seed: 0}, XXH3{Seed: 1}},
	{"Murmur3", Murmur3{Seed1: 0, Seed2: 1}, Murmur3{Seed1: 2, Seed2: 3}},
	{"Mix", Mix{Seed1: 0, Seed2: 1}, Mix{Seed1: 2, Seed2: 3}},
}

func TestDoubleHashing(t *testing.T) {
	assert.Equal(t, []uint64{5, 8, 11, 14}, take(doubleHashing(5, 3), 4))
	// an even step is made odd
	assert.Equal(t, []uint64{5, 6, 7}, take(doubleHashing(5, 0), 3))
	// wraps modulo 2^64
	assert.Equal(t, []uint64{^uint64(0), 0, 1}, take(doubleHashing(^uint64(0), 1), 3))
}

func TestFamilies(t *testing.T) {
	item := []byte("Hello world!")
	for _, tc := range families {
		t.Run(tc.name, func(t *testing.T) {
			first := take(tc.family.Hashes(item), 64)
			assert.Equal(t, first, take(tc.family.Hashes(item), 64))
			assert.Len(t, take(tc.family.Hashes(item), 100000), 100000)

			seen := make(map[uint64]bool)
			for _, v := range first {
				assert.False(t, seen[v])
				seen[v] = true
			}

			assert.NotEqual(t, first, take(tc.family.Hashes([]byte("Hello world?")), 64))
			assert.NotEqual(t, first, take(tc.other.Hashes(item), 64))
			assert.NotEmpty(t, take(tc.family.Hashes(nil), 1))
		})
	}
}

func TestFamiliesInFilter(t *testing.T) {
	for _, tc := range families {
		t.Run(tc.name, func(t *testing.T) {
			filter := MustNew(tc.family, WithWords(500), WithHashes(7))
			for i := 0; i < 2000; i++ {
				filter.InsertString(fmt.Sprintf("member-%d", i))
			}
			for i := 0; i < 2000; i++ {
				assert.True(t, filter.ContainsString(fmt.Sprintf("member-%d", i)))
			}
			matches := 0
			for i := 0; i < 100000; i++ {
				if filter.ContainsString(fmt.Sprintf("stranger-%d", i)) {
					matches++
				}
			}
			fpp := float64(matches) / 100000
			theory := FalsePositiveRate(filter.Bits(), filter.Hashes(), 2000)
			assert.InDelta(t, theory, fpp, 0.01)
		})
	}
}

func TestFold(t *testing.T) {
	items := [][]byte{
		nil,
		{0},
		{0, 0},
		[]byte("abcdefgh"),
		[]byte("abcdefgh\x00"),
		[]byte("abcdefghi"),
		[]byte("Hello world!"),
		[]byte("Hello world?"),
	}
	seen := make(map[uint64]int)
	for i, item := range items {
		key := fold(item)
		prev, dup := seen[key]
		assert.False(t, dup, "item %d folds like item %d", i, prev)
		seen[key] = i
		assert.Equal(t, key, fold(item))
	}
}

func TestMixUint64Keys(t *testing.T) {
	family := Mix{Seed1: 11, Seed2: 13}
	filter := MustNew(family, WithWords(1000), WithHashes(7))
	firsts := make(map[uint64]bool)
	for i := uint64(0); i < 5000; i++ {
		filter.InsertUint64(i)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], i)
		first := take(family.Hashes(buf[:]), 1)[0]
		assert.False(t, firsts[first])
		firsts[first] = true
	}
	for i := uint64(0); i < 5000; i++ {
		assert.True(t, filter.ContainsUint64(i))
	}
	matches := 0
	for i := uint64(1 << 32); i < 1<<32+100000; i++ {
		if filter.ContainsUint64(i) {
			matches++
		}
	}
	assert.Less(t, float64(matches)/100000, 0.01)
}
