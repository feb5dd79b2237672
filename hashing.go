package bloomfilter

import "encoding/binary"

func murmur64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func mixsplit(key, seed uint64) uint64 {
	return murmur64(key + seed)
}

func rotl64(n uint64, c int) uint64 {
	return (n << uint(c&63)) | (n >> uint((-c)&63))
}

// fold reduces item to a single key, eight bytes at a time. The length is
// mixed in so that zero-padded tails do not collide.
func fold(item []byte) uint64 {
	h := uint64(len(item))
	for len(item) >= 8 {
		h = murmur64(rotl64(h, 27) ^ binary.LittleEndian.Uint64(item))
		item = item[8:]
	}
	if len(item) > 0 {
		var tail [8]byte
		copy(tail[:], item)
		h = murmur64(rotl64(h, 27) ^ binary.LittleEndian.Uint64(tail[:]))
	}
	return h
}
