package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Cache persists geocoding results between runs so the external API is
// queried at most once per location. Misses are cached too, as entries with
// no coordinates, to avoid repaying for lookups that will not succeed.
//
// The cache is an explicit object with Load/Save at process boundaries; it
// is passed into the Geocoder rather than living as process-global state.
type Cache struct {
	mu      sync.Mutex
	path    string
	entries map[string]*Coordinates // nil value = cached miss
	dirty   bool
}

// LoadCache reads a cache file, tolerating a missing or corrupted file by
// starting fresh.
func LoadCache(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]*Coordinates),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.entries = make(map[string]*Coordinates)
	}
	return c
}

// Save writes the cache back to disk if anything changed since Load.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding geocode cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing geocode cache: %w", err)
	}
	c.dirty = false
	return nil
}

// Get returns the cached coordinates for a location. The second return
// reports whether the location is in the cache at all; a true value with nil
// coordinates means a cached miss.
func (c *Cache) Get(city, country string) (*Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	coords, ok := c.entries[CacheKey(city, country)]
	return coords, ok
}

// Set stores coordinates for a location.
func (c *Cache) Set(city, country string, coords Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[CacheKey(city, country)] = &coords
	c.dirty = true
}

// SetMiss records that a location could not be resolved.
func (c *Cache) SetMiss(city, country string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[CacheKey(city, country)] = nil
	c.dirty = true
}

// Size returns the number of cached entries, hits and misses both.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// CacheKey builds the canonical cache key for a location.
func CacheKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "," + strings.ToLower(strings.TrimSpace(country))
}
