// Package cache provides a generic, thread-safe LRU cache whose entries
// expire after a fixed time to live.
//
// The cache evicts the least recently used entry when it is full and treats
// entries older than the TTL as missing. It backs the cached access-token
// validator, where positive answers may be reused for a short while.
//
//	c := cache.New[string, bool](1024, time.Minute)
//	c.Set("token-hash", true)
//	ok, found := c.Get("token-hash")
package cache
