package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is an in-process byte cache with eviction, safe for concurrent use
type MemTable struct {
	cache      *freecache.Cache
	ttlSeconds int
}

// New creates freecache with size in bytes, ttl 0 means entries live until evicted
func New(size int, ttlSeconds int) *MemTable {
	return &MemTable{
		cache:      freecache.NewCache(size),
		ttlSeconds: ttlSeconds,
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set ignores values too large for the cache
func (m *MemTable) Set(key string, value []byte) {
	_ = m.cache.Set([]byte(key), value, m.ttlSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
