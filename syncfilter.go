package bloomfilter

import "sync"

// SyncFilter is a Filter safe for concurrent use. Insertions are serialised;
// queries run in parallel with each other but never overlap an insertion, so
// an item inserted before a query starts is always found.
type SyncFilter struct {
	mu     sync.RWMutex
	filter *Filter
}

// NewSync creates a SyncFilter; see New for the options and errors.
func NewSync(family Family, opts ...Option) (*SyncFilter, error) {
	filter, err := New(family, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncFilter{filter: filter}, nil
}

// Insert adds item under the write lock.
func (s *SyncFilter) Insert(item []byte) {
	s.mu.Lock()
	s.filter.Insert(item)
	s.mu.Unlock()
}

// Contains reports whether item is likely present, under the read lock.
func (s *SyncFilter) Contains(item []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.Contains(item)
}

// TestAndInsert is Filter.TestAndInsert performed atomically.
func (s *SyncFilter) TestAndInsert(item []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.TestAndInsert(item)
}

// InsertString adds item without copying it.
func (s *SyncFilter) InsertString(item string) {
	s.Insert(stringBytes(item))
}

// ContainsString is Contains for a string item.
func (s *SyncFilter) ContainsString(item string) bool {
	return s.Contains(stringBytes(item))
}

// OnesCount returns the number of bits set to 1.
func (s *SyncFilter) OnesCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.OnesCount()
}

// Bits and Hashes are fixed at construction and need no lock.
func (s *SyncFilter) Bits() uint64 { return s.filter.Bits() }
func (s *SyncFilter) Hashes() uint { return s.filter.Hashes() }
