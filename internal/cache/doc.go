// Package cache provides a small generic LRU cache.
//
// The text package keeps decoded glyph outlines here so that the repeated
// layouts of a fit search do not parse the same glyphs again.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
