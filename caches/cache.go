// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package caches holds the read-mostly managers that sit between the
// HTTP handlers and the store. Every manager keeps its data in a local
// ristretto cache with a TTL and can be cleared on demand.
package caches

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/lygwys/cms/logger"
	"go.uber.org/zap"
)

// Cache is a typed local cache whose entries expire after a fixed TTL.
type Cache[K ristretto.Key, V any] struct {
	cache *ristretto.Cache[K, V]
	ttl   time.Duration
}

// NewCache creates a cache holding up to maxItems entries.
func NewCache[K ristretto.Key, V any](maxItems int64, ttl time.Duration) (*Cache[K, V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create cache: %w", err)
	}
	return &Cache[K, V]{cache: c, ttl: ttl}, nil
}

// Get returns the cached value for key. Expired entries are dropped.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	remaining, ok := c.cache.GetTTL(key)
	if !ok {
		return zero, false
	}
	if c.ttl > 0 && remaining <= 0 {
		c.cache.Del(key)
		return zero, false
	}
	return c.cache.Get(key)
}

// Set stores value and reports whether the write was queued. Once queued
// it waits for the write to be applied, though the admission policy may
// still reject it. A closed cache or a negative TTL drops every write.
func (c *Cache[K, V]) Set(key K, value V) bool {
	if !c.cache.SetWithTTL(key, value, 1, c.ttl) {
		return false
	}
	c.cache.Wait()
	return true
}

func (c *Cache[K, V]) Del(key K) {
	c.cache.Del(key)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.cache.Clear()
}

func (c *Cache[K, V]) Close() {
	c.cache.Close()
}

// GetOrLoad returns the cached value for key, calling load and caching its
// result on a miss. Errors are not cached.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if !c.Set(key, v) {
		logger.Log.Debug("Cache dropped loaded value", zap.Any("key", key))
	}
	return v, nil
}
