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

package caches

import (
	"context"
	"fmt"
	"time"

	"github.com/lygwys/cms/store"
)

type SiteManager interface {
	GetSiteInfo(ctx context.Context, siteId int) (store.Site, error)
	GetSiteIdList(ctx context.Context) ([]int, error)
	GetSiteName(ctx context.Context, siteId int) (string, error)
	Clear()
}

const allKey = "all"

type SiteManagerImpl struct {
	repo  store.SiteRepository
	cache *Cache[string, []store.Site]
}

func NewSiteManager(repo store.SiteRepository, ttl time.Duration) (*SiteManagerImpl, error) {
	c, err := NewCache[string, []store.Site](16, ttl)
	if err != nil {
		return nil, err
	}
	return &SiteManagerImpl{repo: repo, cache: c}, nil
}

func (m *SiteManagerImpl) all(ctx context.Context) ([]store.Site, error) {
	return m.cache.GetOrLoad(ctx, allKey, m.repo.GetAll)
}

// GetSiteInfo wraps store.ErrNotFound when siteId is unknown.
func (m *SiteManagerImpl) GetSiteInfo(ctx context.Context, siteId int) (store.Site, error) {
	sites, err := m.all(ctx)
	if err != nil {
		return store.Site{}, err
	}
	for _, s := range sites {
		if s.Id == siteId {
			return s, nil
		}
	}
	return store.Site{}, fmt.Errorf("site %d: %w", siteId, store.ErrNotFound)
}

// GetSiteIdList returns the id of every site in display order.
func (m *SiteManagerImpl) GetSiteIdList(ctx context.Context) ([]int, error) {
	sites, err := m.all(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(sites))
	for _, s := range sites {
		ids = append(ids, s.Id)
	}
	return ids, nil
}

// GetSiteName returns "" for unknown sites.
func (m *SiteManagerImpl) GetSiteName(ctx context.Context, siteId int) (string, error) {
	sites, err := m.all(ctx)
	if err != nil {
		return "", err
	}
	for _, s := range sites {
		if s.Id == siteId {
			return s.SiteName, nil
		}
	}
	return "", nil
}

func (m *SiteManagerImpl) Clear() {
	m.cache.Clear()
}
