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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lygwys/cms/store"
)

var testChannels = []store.Channel{
	{Id: 1, SiteId: 1, ChannelName: "Home", ParentId: 0, Taxis: 1},
	{Id: 2, SiteId: 1, ChannelName: "News", ParentId: 1, ParentsPath: "1", Taxis: 1, GroupNameCollection: "hot"},
	{Id: 4, SiteId: 1, ChannelName: "Local", ParentId: 2, ParentsPath: "1,2", Taxis: 1, GroupNameCollection: "hot,local"},
	{Id: 3, SiteId: 1, ChannelName: "Sports", ParentId: 1, ParentsPath: "1", Taxis: 2, ContentModelPluginId: "SS.GovPublic"},
	{Id: 5, SiteId: 1, ChannelName: "World", ParentId: 2, ParentsPath: "1,2", Taxis: 2},
}

func newTestChannelManager(t *testing.T, calls *int) *ChannelManagerImpl {
	m, err := NewChannelManager(&store.ChannelRepositoryMock{
		GetAllBySiteIdMock: func(ctx context.Context, siteId int) ([]store.Channel, error) {
			*calls++
			if siteId != 1 {
				return nil, nil
			}
			return testChannels, nil
		},
	}, time.Minute)
	require.NoError(t, err)
	return m
}

func TestChannelManagerScopes(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m := newTestChannelManager(t, &calls)

	ids, err := m.GetChannelIdList(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 3}, ids)

	home, err := m.GetChannelInfo(ctx, 1, 1)
	require.NoError(t, err)
	news, err := m.GetChannelInfo(ctx, 1, 2)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		channel  store.Channel
		scope    ScopeType
		expected []int
	}{
		{"self", home, ScopeSelf, []int{1}},
		{"children", home, ScopeChildren, []int{2, 3}},
		{"self and children", home, ScopeSelfAndChildren, []int{1, 2, 3}},
		{"descendant", home, ScopeDescendant, []int{2, 4, 5, 3}},
		{"all", news, ScopeAll, []int{2, 4, 5}},
		{"leaf children", store.Channel{Id: 5, SiteId: 1}, ScopeChildren, nil},
	}
	for _, tc := range testCases {
		ids, err := m.GetChannelIdListByScopeOnly(ctx, tc.channel, tc.scope)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, ids, tc.name)
	}
	assert.Equal(t, 1, calls)

	_, err = m.GetChannelIdListByScopeOnly(ctx, home, "Sideways")
	assert.Error(t, err)
}

func TestChannelManagerFilters(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m := newTestChannelManager(t, &calls)
	home, err := m.GetChannelInfo(ctx, 1, 1)
	require.NoError(t, err)

	ids, err := m.GetChannelIdListByScope(ctx, home, ScopeAll, "hot", "", "")
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4}, ids)

	ids, err = m.GetChannelIdListByScope(ctx, home, ScopeDescendant, "", "local", "")
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 5, 3}, ids)

	ids, err = m.GetChannelIdListByScope(ctx, home, ScopeAll, "", "", "SS.GovPublic")
	assert.NoError(t, err)
	assert.Equal(t, []int{3}, ids)
}

func TestChannelManagerNotFoundAndClear(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m := newTestChannelManager(t, &calls)

	_, err := m.GetChannelInfo(ctx, 1, 99)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = m.GetChannelInfo(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	m.Clear()
	_, err = m.GetChannelInfo(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestChannelTreeToleratesCycles(t *testing.T) {
	tree := newChannelTree([]store.Channel{
		{Id: 1, ParentId: 1},
		{Id: 2, ParentId: 3},
		{Id: 3, ParentId: 2},
	})
	assert.Equal(t, []int{1}, tree.order)
	assert.Equal(t, []int{3}, tree.descendants(2))
}

func TestContentManagerGetCount(t *testing.T) {
	ctx := context.Background()
	calls := 0
	channels := newTestChannelManager(t, &calls)
	var seen [][]int
	m, err := NewContentManager(&store.ContentRepositoryMock{
		GetCountMock: func(ctx context.Context, tableName string, siteId int, channelIds []int) (int, error) {
			assert.Equal(t, "siteserver_Content_1", tableName)
			seen = append(seen, channelIds)
			return len(channelIds) * 10, nil
		},
		GetChannelIdListCheckedByLastEditDateHourMock: func(ctx context.Context, tableName string, siteId, hours int) ([]int, error) {
			assert.Equal(t, 24, hours)
			return []int{4, 2}, nil
		},
	}, channels, time.Minute)
	require.NoError(t, err)
	site := store.Site{Id: 1, TableName: "siteserver_Content_1"}
	news := testChannels[1]

	n, err := m.GetCount(ctx, site, news, true)
	assert.NoError(t, err)
	assert.Equal(t, 30, n)
	n, err = m.GetCount(ctx, site, news, false)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	_, err = m.GetCount(ctx, site, news, true)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{2, 4, 5}, {2}}, seen)

	ids, err := m.GetChannelIdListCheckedByLastEditDateHour(ctx, site, 24)
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 2}, ids)
}

func TestSiteManager(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m, err := NewSiteManager(&store.SiteRepositoryMock{
		GetAllMock: func(ctx context.Context) ([]store.Site, error) {
			calls++
			return []store.Site{{Id: 1, SiteName: "Main"}, {Id: 7, SiteName: "News"}}, nil
		},
	}, time.Minute)
	require.NoError(t, err)

	ids, err := m.GetSiteIdList(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 7}, ids)
	name, err := m.GetSiteName(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "News", name)
	name, err = m.GetSiteName(ctx, 8)
	assert.NoError(t, err)
	assert.Equal(t, "", name)
	_, err = m.GetSiteInfo(ctx, 8)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Equal(t, 1, calls)
}

func TestSiteManagerDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m, err := NewSiteManager(&store.SiteRepositoryMock{
		GetAllMock: func(ctx context.Context) ([]store.Site, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("db down")
			}
			return []store.Site{{Id: 1}}, nil
		},
	}, time.Minute)
	require.NoError(t, err)
	_, err = m.GetSiteIdList(ctx)
	assert.Error(t, err)
	ids, err := m.GetSiteIdList(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestAdminManagerRoleNames(t *testing.T) {
	ctx := context.Background()
	roles := map[string][]string{
		"root":   {"Administrator", "ConsoleAdministrator", "SystemAdministrator"},
		"chief":  {"SystemAdministrator", "Writers"},
		"editor": {"Writers", "Reviewers"},
		"nobody": nil,
	}
	m, err := NewAdminManager(&store.AdministratorRepositoryMock{
		GetByUserIdMock: func(ctx context.Context, userId int) (store.Administrator, error) {
			if userId == 1 {
				return store.Administrator{Id: 1, UserName: "root"}, nil
			}
			return store.Administrator{}, store.ErrNotFound
		},
	}, &store.AdministratorsInRolesRepositoryMock{
		GetRolesForUserMock: func(ctx context.Context, userName string) ([]string, error) {
			return roles[userName], nil
		},
	}, time.Minute)
	require.NoError(t, err)

	expected := map[string]string{
		"root":   "Super Administrator",
		"chief":  "Site Administrator,Writers",
		"editor": "Ordinary Administrator,Writers,Reviewers",
		"nobody": "Ordinary Administrator",
	}
	for user, want := range expected {
		got, err := m.GetRoleNames(ctx, user)
		assert.NoError(t, err, user)
		assert.Equal(t, want, got, user)
	}

	a, err := m.GetAdminInfoByUserId(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "root", a.UserName)
	_, err = m.GetAdminInfoByUserId(ctx, 2)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestDepartmentAndAreaNames(t *testing.T) {
	ctx := context.Background()
	d, err := NewDepartmentManager(&store.DepartmentRepositoryMock{
		GetAllMock: func(ctx context.Context) ([]store.Department, error) {
			return []store.Department{{Id: 3, DepartmentName: "Editorial"}}, nil
		},
	}, time.Minute)
	require.NoError(t, err)
	a, err := NewAreaManager(&store.AreaRepositoryMock{
		GetAllMock: func(ctx context.Context) ([]store.Area, error) {
			return []store.Area{{Id: 4, AreaName: "North"}}, nil
		},
	}, time.Minute)
	require.NoError(t, err)

	name, err := d.GetDepartmentName(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Editorial", name)
	name, err = d.GetDepartmentName(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, "", name)
	name, err = a.GetAreaName(ctx, 4)
	assert.NoError(t, err)
	assert.Equal(t, "North", name)
	name, err = a.GetAreaName(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache[string, int](8, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()
	assert.True(t, c.Set("k", 1))
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	time.Sleep(100 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheDroppedWrites(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache[string, int](8, -time.Second)
	require.NoError(t, err)
	defer c.Close()
	assert.False(t, c.Set("k", 1))
	_, ok := c.Get("k")
	assert.False(t, ok)

	loads := 0
	load := func(context.Context) (int, error) {
		loads++
		return 7, nil
	}
	for i := 0; i < 2; i++ {
		v, err := c.GetOrLoad(ctx, "k", load)
		assert.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, 2, loads)

	closed, err := NewCache[string, int](8, time.Minute)
	require.NoError(t, err)
	closed.Close()
	assert.False(t, closed.Set("k", 1))
}
