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

type ContentManager interface {
	GetCount(ctx context.Context, site store.Site, channel store.Channel, includeDescendants bool) (int, error)
	GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, site store.Site, hours int) ([]int, error)
	Clear()
}

type ContentManagerImpl struct {
	repo     store.ContentRepository
	channels ChannelManager
	counts   *Cache[string, int]
}

func NewContentManager(repo store.ContentRepository, channels ChannelManager, ttl time.Duration) (*ContentManagerImpl, error) {
	c, err := NewCache[string, int](4096, ttl)
	if err != nil {
		return nil, err
	}
	return &ContentManagerImpl{repo: repo, channels: channels, counts: c}, nil
}

// GetCount counts the contents of channel, and of all channels below it
// when includeDescendants is set.
func (m *ContentManagerImpl) GetCount(ctx context.Context, site store.Site, channel store.Channel, includeDescendants bool) (int, error) {
	key := fmt.Sprintf("%d:%d:%t", site.Id, channel.Id, includeDescendants)
	return m.counts.GetOrLoad(ctx, key, func(ctx context.Context) (int, error) {
		ids := []int{channel.Id}
		if includeDescendants {
			var err error
			ids, err = m.channels.GetChannelIdListByScopeOnly(ctx, channel, ScopeAll)
			if err != nil {
				return 0, err
			}
		}
		return m.repo.GetCount(ctx, site.TableName, site.Id, ids)
	})
}

// GetChannelIdListCheckedByLastEditDateHour is not cached; the answer moves
// with the clock.
func (m *ContentManagerImpl) GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, site store.Site, hours int) ([]int, error) {
	return m.repo.GetChannelIdListCheckedByLastEditDateHour(ctx, site.TableName, site.Id, hours)
}

func (m *ContentManagerImpl) Clear() {
	m.counts.Clear()
}
