// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

/*
Package lrucache provides a thread-safe, fixed-capacity least-recently-used
cache for response bodies. Keys are strings and values are byte slices. The
cache evicts the least recently used entry when it reaches capacity. When
created with compression enabled via [New], values are stored zstd-compressed
whenever that reduces their size and are transparently decompressed on the
way out.
*/
package lrucache

import (
	"container/list"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// Cache is a fixed-capacity, least-recently-used cache that is safe for
// concurrent use. Instances must be constructed with [New]; the zero value
// is not ready for use.
type Cache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	lock      sync.RWMutex

	// nil when compression is disabled
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
}

// entry holds the key/value pair stored in each linked-list element.
type entry struct {
	key        string
	value      []byte
	compressed bool
}

// New creates a cache holding at most size entries.
//
// If compress is true, values are stored zstd-compressed when this reduces
// space; [Cache.Get] and [Cache.Peek] decompress transparently.
func New(size int, compress bool) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}

	if compress {
		// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}

		c.zstdEnc = enc
		c.zstdDec = dec
	}

	return c, nil
}

// Add adds or updates the value for key.
//
// If the key exists, it becomes the most recently used. If the cache is at
// capacity, the least recently used item is evicted. Add reports whether an
// eviction occurred.
func (c *Cache) Add(key string, value []byte) bool {
	// Compression is the heavy part; do it before taking the lock. The zstd
	// encoder supports concurrent EncodeAll calls.
	stored, compressed := c.prepare(value)

	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		c.evictList.MoveToFront(el)

		ent := el.Value.(*entry)
		ent.value = stored
		ent.compressed = compressed

		return false
	}

	c.items[key] = c.evictList.PushFront(&entry{
		key:        key,
		value:      stored,
		compressed: compressed,
	})

	evicted := c.evictList.Len() > c.size
	if evicted {
		c.removeOldest()
	}

	return evicted
}

// Get retrieves the value for key and marks it as most recently used.
//
// The second result reports whether the key was found. The returned slice is
// a copy; mutating it does not affect the cached data.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Lock for write since we move the element to the front.
	c.lock.Lock()

	el, ok := c.items[key]
	if !ok {
		c.lock.Unlock()

		return nil, false
	}

	c.evictList.MoveToFront(el)

	ent := el.Value.(*entry)
	stored, compressed := ent.value, ent.compressed

	c.lock.Unlock()

	return c.unpack(stored, compressed)
}

// Peek retrieves the value for key without modifying the LRU order.
//
// The second result reports whether the key was found. The returned slice is
// a copy; mutating it does not affect the cached data.
func (c *Cache) Peek(key string) ([]byte, bool) {
	c.lock.RLock()

	el, ok := c.items[key]
	if !ok {
		c.lock.RUnlock()

		return nil, false
	}

	ent := el.Value.(*entry)
	stored, compressed := ent.value, ent.compressed

	c.lock.RUnlock()

	return c.unpack(stored, compressed)
}

// Remove deletes the entry associated with key from the cache.
//
// Remove reports whether the key was present and removed.
func (c *Cache) Remove(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)

		return true
	}

	return false
}

// Keys returns a slice of all keys in the cache, from the oldest to the
// newest.
func (c *Cache) Keys() []string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	keys := make([]string, 0, len(c.items))

	// The back of the list is the oldest entry.
	for el := c.evictList.Back(); el != nil; el = el.Prev() {
		keys = append(keys, el.Value.(*entry).key)
	}

	return keys
}

// Len returns the current number of items in the cache.
func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	if el := c.evictList.Back(); el != nil {
		c.removeElement(el)
	}
}

func (c *Cache) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

// prepare compresses the value when compression is enabled and effective.
// Uncompressed values are copied so callers cannot mutate cached data.
func (c *Cache) prepare(value []byte) (stored []byte, compressed bool) {
	if len(value) == 0 {
		return value, false
	}

	if c.zstdEnc != nil {
		packed := c.zstdEnc.EncodeAll(value, nil)
		if len(packed) < len(value) {
			return packed, true
		}
	}

	copied := make([]byte, len(value))
	copy(copied, value)

	return copied, false
}

// unpack returns the stored value to callers, decompressing if needed.
// Uncompressed values are copied back out for the same mutation-safety
// reason as in prepare.
func (c *Cache) unpack(stored []byte, compressed bool) ([]byte, bool) {
	if !compressed {
		if stored == nil {
			return nil, true
		}

		copied := make([]byte, len(stored))
		copy(copied, stored)

		return copied, true
	}

	if c.zstdDec == nil {
		return nil, false
	}

	decoded, err := c.zstdDec.DecodeAll(stored, nil)
	if err != nil {
		return nil, false
	}

	return decoded, true
}
