// Package strcache implements the change-list protocol's string cache: an
// interpreter-lifetime mapping from guest-chosen integer ids to strings, with
// no implicit eviction. The guest is responsible for ordering
// `addCachedString` before first use of an id and `dropCachedString` only
// after its last use.
package strcache

// Cache is a string cache keyed by guest-assigned id.
type Cache struct {
	strings map[uint32]string
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{strings: make(map[uint32]string)}
}

// Add interns s under id, replacing any previous entry for id.
func (c *Cache) Add(id uint32, s string) {
	c.strings[id] = s
}

// Drop removes id from the cache. A no-op if id is not present.
func (c *Cache) Drop(id uint32) {
	delete(c.strings, id)
}

// Get returns the string cached under id, and whether it was found.
func (c *Cache) Get(id uint32) (string, bool) {
	s, ok := c.strings[id]
	return s, ok
}

// Len returns the number of cached strings.
func (c *Cache) Len() int { return len(c.strings) }
