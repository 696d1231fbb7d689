// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package requests

import (
	"bytes"
	"encoding/gob"
	"hash/fnv"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TheFunny/async-pixiv/requests/lrucache"
)

// excludedCachePaths lists API endpoints for which responses are never
// cached: feeds whose whole point is returning something new each call.
var excludedCachePaths = []string{
	"/v1/illust/recommended",
	"/v1/illust/new",
	"/v1/novel/recommended",
	"/v2/illust/follow",
}

// Cache holds GET responses for a fixed TTL, keyed by URL and
// authentication scope.
type Cache struct {
	lru *lrucache.Cache
	ttl time.Duration
}

// cachedItem represents a cached HTTP response's components along with its
// expiration time and original URL.
type cachedItem struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	ExpiresAt  time.Time
	URL        string
}

// NewCache creates a response cache with the given entry capacity and TTL.
// Entries are stored zstd-compressed.
func NewCache(size int, ttl time.Duration) (*Cache, error) {
	lru, err := lrucache.New(size, true)
	if err != nil {
		return nil, err
	}

	return &Cache{lru: lru, ttl: ttl}, nil
}

// cacheKey binds cached responses to both the request URL and the full
// authentication scope by combining them into a hashed identifier, so
// responses remain strictly scoped to the exact session that originally
// requested them.
func cacheKey(url, scope string) string {
	hasher := fnv.New32()

	_, _ = hasher.Write([]byte(url + ":" + scope))

	return strconv.FormatUint(uint64(hasher.Sum32()), 16)
}

// excluded reports whether responses for rawURL must not be cached.
func (c *Cache) excluded(rawURL string) bool {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return true
	}

	cleanPath := path.Clean(parsedURL.Path)
	for _, exclPath := range excludedCachePaths {
		if strings.HasPrefix(cleanPath, exclPath) {
			return true
		}
	}

	return false
}

// lookup returns a fresh cached response for the URL and scope, or nil.
// Expired and corrupt entries are evicted on the way.
func (c *Cache) lookup(rawURL, scope string) *cachedItem {
	if c.excluded(rawURL) {
		return nil
	}

	key := cacheKey(rawURL, scope)

	cachedBytes, found := c.lru.Get(key)
	if !found {
		return nil
	}

	var item cachedItem
	if err := gob.NewDecoder(bytes.NewReader(cachedBytes)).Decode(&item); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to decode cached item; removing")
		c.lru.Remove(key)

		return nil
	}

	if time.Now().After(item.ExpiresAt) {
		c.lru.Remove(key)

		return nil
	}

	return &item
}

// store serializes a response into the cache. Failures are logged and
// otherwise ignored; a cache write never fails the request.
func (c *Cache) store(rawURL, scope string, statusCode int, header http.Header, body []byte) {
	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(cachedItem{
		StatusCode: statusCode,
		Header:     header.Clone(),
		Body:       body,
		ExpiresAt:  time.Now().Add(c.ttl),
		URL:        rawURL,
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to serialize item for cache")

		return
	}

	c.lru.Add(cacheKey(rawURL, scope), buf.Bytes())
}
