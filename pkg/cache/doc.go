// Package cache provides a generic, thread-safe cache with per-entry TTL and
// LRU eviction. It backs the in-process validation result store: capacity
// keeps memory bounded under unique-value load, TTL keeps results from
// outliving their cache window.
//
//	c := cache.New[string, Result](1024)
//	c.Put("key", res, time.Hour)
//	if res, ok := c.Get("key"); ok {
//		// live entry
//	}
//
// Operations are O(1). Expired entries are dropped lazily when accessed,
// or eventually via LRU eviction, so no background reaper is needed.
package cache
