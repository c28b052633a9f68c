package validation

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cache entries and loop counters both derive their key from the same
// (symbol, value) hash but live in distinct namespaces, so the two can
// never collide in a shared backing store.
const (
	cacheKeyPrefix = "validkit:cache:"
	loopKeyPrefix  = "validkit:loop:"
)

// CacheKey returns the result-cache key for a (symbol, value) pair.
func CacheKey(symbol, value string) string {
	return cacheKeyPrefix + digest(symbol, value)
}

// LoopKey returns the loop-guard counter key for a (symbol, value) pair.
func LoopKey(symbol, value string) string {
	return loopKeyPrefix + digest(symbol, value)
}

// digest hashes the pair with a separator byte so ("ab","c") and ("a","bc")
// produce distinct keys. SHA-256 keeps keys fixed-length and stable across
// processes sharing a store.
func digest(symbol, value string) string {
	h := sha256.New()
	h.Write([]byte(symbol))
	h.Write([]byte{0})
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
