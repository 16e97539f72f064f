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
	"slices"
	"time"

	"github.com/lygwys/cms/store"
)

// ScopeType selects channels relative to a starting channel.
type ScopeType string

const (
	ScopeSelf            ScopeType = "Self"
	ScopeChildren        ScopeType = "Children"
	ScopeSelfAndChildren ScopeType = "SelfAndChildren"
	ScopeDescendant      ScopeType = "Descendant"
	ScopeAll             ScopeType = "All"
)

type ChannelManager interface {
	GetChannelInfo(ctx context.Context, siteId, channelId int) (store.Channel, error)
	// GetChannelIdList returns every channel of the site in tree order.
	GetChannelIdList(ctx context.Context, siteId int) ([]int, error)
	// GetChannelIdListByScope returns the channels in scope of channel that
	// belong to group, do not belong to groupNot and use the given content
	// model. Empty filters match everything.
	GetChannelIdListByScope(ctx context.Context, channel store.Channel, scope ScopeType, group, groupNot, contentModelPluginId string) ([]int, error)
	GetChannelIdListByScopeOnly(ctx context.Context, channel store.Channel, scope ScopeType) ([]int, error)
	Clear()
}

// channelTree is the cached shape of one site's channels.
type channelTree struct {
	order    []int
	byId     map[int]store.Channel
	children map[int][]int
}

func newChannelTree(channels []store.Channel) *channelTree {
	t := &channelTree{byId: map[int]store.Channel{}, children: map[int][]int{}}
	for _, c := range channels {
		t.byId[c.Id] = c
	}
	var roots []int
	for _, c := range channels {
		if _, ok := t.byId[c.ParentId]; ok && c.ParentId != c.Id {
			t.children[c.ParentId] = append(t.children[c.ParentId], c.Id)
		} else {
			roots = append(roots, c.Id)
		}
	}
	visited := map[int]bool{}
	var walk func(id int)
	walk = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true
		t.order = append(t.order, id)
		for _, child := range t.children[id] {
			walk(child)
		}
	}
	for _, id := range roots {
		walk(id)
	}
	return t
}

// descendants returns every channel below id in tree order.
func (t *channelTree) descendants(id int) []int {
	var ids []int
	visited := map[int]bool{id: true}
	var walk func(id int)
	walk = func(id int) {
		for _, child := range t.children[id] {
			if visited[child] {
				continue
			}
			visited[child] = true
			ids = append(ids, child)
			walk(child)
		}
	}
	walk(id)
	return ids
}

type ChannelManagerImpl struct {
	repo  store.ChannelRepository
	cache *Cache[int, *channelTree]
}

func NewChannelManager(repo store.ChannelRepository, ttl time.Duration) (*ChannelManagerImpl, error) {
	c, err := NewCache[int, *channelTree](1024, ttl)
	if err != nil {
		return nil, err
	}
	return &ChannelManagerImpl{repo: repo, cache: c}, nil
}

func (m *ChannelManagerImpl) tree(ctx context.Context, siteId int) (*channelTree, error) {
	return m.cache.GetOrLoad(ctx, siteId, func(ctx context.Context) (*channelTree, error) {
		channels, err := m.repo.GetAllBySiteId(ctx, siteId)
		if err != nil {
			return nil, err
		}
		return newChannelTree(channels), nil
	})
}

// GetChannelInfo wraps store.ErrNotFound when the channel is not part of
// the site.
func (m *ChannelManagerImpl) GetChannelInfo(ctx context.Context, siteId, channelId int) (store.Channel, error) {
	t, err := m.tree(ctx, siteId)
	if err != nil {
		return store.Channel{}, err
	}
	c, ok := t.byId[channelId]
	if !ok {
		return store.Channel{}, fmt.Errorf("channel %d of site %d: %w", channelId, siteId, store.ErrNotFound)
	}
	return c, nil
}

func (m *ChannelManagerImpl) GetChannelIdList(ctx context.Context, siteId int) ([]int, error) {
	t, err := m.tree(ctx, siteId)
	if err != nil {
		return nil, err
	}
	return slices.Clone(t.order), nil
}

func (m *ChannelManagerImpl) GetChannelIdListByScope(ctx context.Context, channel store.Channel, scope ScopeType, group, groupNot, contentModelPluginId string) ([]int, error) {
	t, err := m.tree(ctx, channel.SiteId)
	if err != nil {
		return nil, err
	}
	var ids []int
	switch scope {
	case ScopeSelf:
		ids = []int{channel.Id}
	case ScopeChildren:
		ids = slices.Clone(t.children[channel.Id])
	case ScopeSelfAndChildren:
		ids = append([]int{channel.Id}, t.children[channel.Id]...)
	case ScopeDescendant:
		ids = t.descendants(channel.Id)
	case ScopeAll:
		ids = append([]int{channel.Id}, t.descendants(channel.Id)...)
	default:
		return nil, fmt.Errorf("unknown scope type '%s'", scope)
	}
	if group == "" && groupNot == "" && contentModelPluginId == "" {
		return ids, nil
	}
	filtered := ids[:0]
	for _, id := range ids {
		c, ok := t.byId[id]
		if !ok {
			c = channel
		}
		groups := c.GroupNames()
		if group != "" && !slices.Contains(groups, group) {
			continue
		}
		if groupNot != "" && slices.Contains(groups, groupNot) {
			continue
		}
		if contentModelPluginId != "" && c.ContentModelPluginId != contentModelPluginId {
			continue
		}
		filtered = append(filtered, id)
	}
	return filtered, nil
}

func (m *ChannelManagerImpl) GetChannelIdListByScopeOnly(ctx context.Context, channel store.Channel, scope ScopeType) ([]int, error) {
	return m.GetChannelIdListByScope(ctx, channel, scope, "", "", "")
}

func (m *ChannelManagerImpl) Clear() {
	m.cache.Clear()
}
