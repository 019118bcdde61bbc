package mel

import "sync"

// Cache memoizes filterbanks by Key. It is safe for concurrent use.
//
// A missing filterbank is built without holding the lock; when two callers
// race on the same key the first one to publish wins and both receive that
// instance.
type Cache struct {
	mu     sync.RWMutex
	banks  map[Key]*Filterbank
	builds int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{banks: make(map[Key]*Filterbank)}
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide cache used by Features and by a Mel
// whose Cache is nil. Entries stay until Reset.
func DefaultCache() *Cache {
	return defaultCache
}

// Get returns the filterbank for k, building it on first use.
func (c *Cache) Get(k Key) (*Filterbank, error) {
	fb, _, err := c.get(k)
	return fb, err
}

func (c *Cache) get(k Key) (*Filterbank, bool, error) {
	if err := k.Validate(); err != nil {
		return nil, false, err
	}
	k = k.withDefaults()

	c.mu.RLock()
	fb, ok := c.banks[k]
	c.mu.RUnlock()
	if ok {
		return fb, false, nil
	}

	built, err := NewFilterbank(k)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.builds++
	if fb, ok := c.banks[k]; ok {
		return fb, false, nil
	}
	c.banks[k] = built
	return built, true, nil
}

// Len returns the number of cached filterbanks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.banks)
}

// Builds returns how many filterbanks were constructed, including ones
// discarded after losing a publish race.
func (c *Cache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.builds
}

// Reset drops every cached filterbank.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banks = make(map[Key]*Filterbank)
	c.builds = 0
}
