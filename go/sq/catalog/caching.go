/*
Copyright 2026 The Squall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	_ Catalog       = (*CachingCatalog)(nil)
	_ StatsProvider = (*CachingCatalog)(nil)
)

// CachingCatalog memoizes successful lookups of a slower Catalog, such as
// one backed by a remote metadata service. Failed lookups are not cached.
type CachingCatalog struct {
	inner Catalog
	cache *cache.Cache
}

// NewCachingCatalog wraps inner. Entries expire after ttl; a non-positive
// ttl keeps them forever. Expired entries are dropped lazily on access, so
// no background goroutine is started.
func NewCachingCatalog(inner Catalog, ttl time.Duration) *CachingCatalog {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &CachingCatalog{inner: inner, cache: cache.New(ttl, 0)}
}

func (c *CachingCatalog) TableCardinality(table string) (float64, error) {
	key := "card/" + table
	if v, ok := c.cache.Get(key); ok {
		return v.(float64), nil
	}
	card, err := c.inner.TableCardinality(table)
	if err != nil {
		return 0, err
	}
	c.cache.SetDefault(key, card)
	return card, nil
}

func (c *CachingCatalog) TableSchema(table string) ([]string, error) {
	key := "schema/" + table
	if v, ok := c.cache.Get(key); ok {
		return slices.Clone(v.([]string)), nil
	}
	cols, err := c.inner.TableSchema(table)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, slices.Clone(cols))
	return cols, nil
}

func (c *CachingCatalog) JoinRatio(left, right string) (float64, error) {
	key := "ratio/" + left + "/" + right
	if v, ok := c.cache.Get(key); ok {
		return v.(float64), nil
	}
	ratio, err := c.inner.JoinRatio(left, right)
	if err != nil {
		return 0, err
	}
	c.cache.SetDefault(key, ratio)
	return ratio, nil
}

// ColumnStats forwards to the wrapped catalog when it keeps statistics.
func (c *CachingCatalog) ColumnStats(table, column string) (ColumnStats, bool) {
	sp, ok := c.inner.(StatsProvider)
	if !ok {
		return ColumnStats{}, false
	}
	key := "stats/" + table + "/" + column
	if v, ok := c.cache.Get(key); ok {
		return v.(ColumnStats), true
	}
	cs, ok := sp.ColumnStats(table, column)
	if ok {
		c.cache.SetDefault(key, cs)
	}
	return cs, ok
}

// Flush drops every cached entry.
func (c *CachingCatalog) Flush() {
	c.cache.Flush()
}
