package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// When full, Set evicts the least recently used entry.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	limit   int

	// head is the most recently used entry, tail the least.
	head *node[K, V]
	tail *node[K, V]

	hits   uint64
	misses uint64
}

type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// New creates a cache holding at most limit entries.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*node[K, V]),
		limit:   max(limit, 0),
	}
}

// Get returns the value stored for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(n)
	return n.value, true
}

// Set stores value for key, evicting the oldest entry if the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, or stores and returns the
// result of create. create runs under the lock, so it is called at most
// once per missing key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.hits++
		c.moveToFront(n)
		return n.value
	}
	c.misses++
	value := create()
	c.set(key, value)
	return value
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.unlink(n)
	delete(c.entries, key)
	return true
}

// Clear removes all entries and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*node[K, V])
	c.head, c.tail = nil, nil
	c.hits, c.misses = 0, 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:    len(c.entries),
		Limit:  c.limit,
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// set stores value and evicts as needed. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}
	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
	if c.limit > 0 && len(c.entries) > c.limit {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.entries, oldest.key)
	}
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
