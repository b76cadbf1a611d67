package driver

import (
	"sync"
)

// minimal per-process cache by path + cache key
type memoEntry struct {
	key     Digest
	payload *DiskPayload
}

// MemoCache keeps check results in memory in front of the DiskCache.
type MemoCache struct {
	mu     sync.RWMutex
	byPath map[string]memoEntry
}

// NewMemoCache creates a MemoCache with the given capacity hint.
func NewMemoCache(capHint int) *MemoCache {
	return &MemoCache{byPath: make(map[string]memoEntry, capHint)}
}

// Get returns the payload stored for path if it was stored under key.
func (c *MemoCache) Get(path string, key Digest) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	rec, ok := c.byPath[path]
	c.mu.RUnlock()
	if !ok || rec.key != key {
		return nil, false
	}
	return rec.payload, true
}

// Put replaces whatever was stored for path.
func (c *MemoCache) Put(path string, key Digest, payload *DiskPayload) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.byPath[path] = memoEntry{key: key, payload: payload}
	c.mu.Unlock()
}

func (c *MemoCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byPath)
}
