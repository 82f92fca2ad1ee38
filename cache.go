package s3fifo

// Cache is the S3-FIFO facade: three weighted FIFO queues (small, main,
// ghost) composed into a single scan-resistant cache. New keys are
// admitted into small; a key recalled from ghost (evidence of recent prior
// presence) is admitted directly into main. Entries overflowing small are
// promoted into main when they show reuse, or recorded in ghost otherwise.
//
// Cache is not safe for concurrent use. Get mutates per-entry recency
// state (freq or hit) the same as Put and Remove; callers sharing a Cache
// across goroutines must provide their own external lock around every
// call.
//
// Example:
//
//	c := s3fifo.New[string, []byte](1000)
//	if _, err := c.Put("a", []byte("hello"), 5); err != nil {
//		// weight exceeds a sub-queue's capacity
//	}
//	if v, ok := c.Get("a"); ok {
//		use(v)
//	}
type Cache[K comparable, V any] struct {
	small *FIFOQueue[K, V]
	main  *ReinsertionQueue[K, V]
	ghost *GhostQueue[K]
}

// New constructs a Cache with the given total weighted capacity. By
// default capacity is split 10% small / 90% main, with ghost sized equal
// to main (the policy constants of the S3-FIFO design). Use
// [WithSmallRatio] and [WithGhostRatio] to override the split.
func New[K comparable, V any](capacity int, opts ...Option) *Cache[K, V] {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	mainCap := int(float64(capacity) * (1 - cfg.smallRatio))
	smallCap := int(float64(capacity) * cfg.smallRatio)
	ghostCap := mainCap
	if cfg.ghostRatio > 0 {
		ghostCap = int(float64(capacity) * cfg.ghostRatio)
	}

	return &Cache[K, V]{
		small: NewFIFOQueue[K, V](smallCap),
		main:  NewReinsertionQueue[K, V](mainCap),
		ghost: NewGhostQueue[K](ghostCap),
	}
}

// Put inserts or updates key with value and weight.
//
// If key was recently evicted and is still recorded in ghost, it is
// admitted directly into main, skipping small entirely (the fast path
// that gives S3-FIFO its scan resistance). Otherwise it is admitted into
// small. Any victims small produces are routed onward: a victim with
// freq > 0 is promoted into main (seeding its hit bit from freq-1); a
// victim with freq == 0 is recorded in ghost and reported as evicted.
//
// Put returns ErrBeyondCapacity, leaving the cache unchanged, if weight
// exceeds the relevant sub-queue's capacity. Otherwise it returns the keys
// evicted from the cache as a result of this call, in eviction order, or
// nil if none were evicted.
func (c *Cache[K, V]) Put(key K, value V, weight int) ([]K, error) {
	if c.ghost.Get(key) {
		victims, err := c.main.Put(key, value, weight)
		if err != nil {
			return nil, err
		}
		c.ghost.Remove(key)
		return victims, nil
	}

	smallVictims, err := c.small.Put(key, value, weight)
	if err != nil {
		return nil, err
	}

	var evicted []K
	for _, victim := range smallVictims {
		if victim.Freq > 0 {
			mainVictims, err := c.main.PutWithFreq(victim.Key, victim.Value, victim.Weight, victim.Freq-1)
			if err != nil {
				return nil, err
			}
			evicted = append(evicted, mainVictims...)
			continue
		}

		// Ghost's own eviction output and any BeyondCapacity error are
		// discarded: a ghost forgetting a ghost is a no-op by design, and
		// ghost is sized from the same capacity as main so a victim that
		// fit in small always fits in ghost under the default ratios.
		_, _ = c.ghost.Put(victim.Key, victim.Weight)
		evicted = append(evicted, victim.Key)
	}

	return evicted, nil
}

// Get looks up key, checking small first and then main. A hit in either
// queue performs that queue's promotion side effect (freq++ in small,
// hit=true in main). Ghost is never consulted by Get.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.small.Get(key); ok {
		return v, true
	}
	return c.main.Get(key)
}

// Remove tombstones key in all three queues unconditionally. It is
// idempotent and silent if key is absent from some or all of them.
func (c *Cache[K, V]) Remove(key K) {
	c.small.Remove(key)
	c.main.Remove(key)
	c.ghost.Remove(key)
}

// Len returns the number of live-or-tombstoned entries held across the
// small and main queues (ghost entries carry no value and are not counted
// as cached items).
func (c *Cache[K, V]) Len() int {
	return c.small.Len() + c.main.Len()
}
