// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package caches

import (
	"context"

	"github.com/lygwys/cms/store"
)

type SiteManagerMock struct {
	GetSiteInfoMock   func(ctx context.Context, siteId int) (store.Site, error)
	GetSiteIdListMock func(ctx context.Context) ([]int, error)
	GetSiteNameMock   func(ctx context.Context, siteId int) (string, error)
}

func (sm *SiteManagerMock) GetSiteInfo(ctx context.Context, siteId int) (store.Site, error) {
	return sm.GetSiteInfoMock(ctx, siteId)
}

func (sm *SiteManagerMock) GetSiteIdList(ctx context.Context) ([]int, error) {
	return sm.GetSiteIdListMock(ctx)
}

func (sm *SiteManagerMock) GetSiteName(ctx context.Context, siteId int) (string, error) {
	return sm.GetSiteNameMock(ctx, siteId)
}

func (sm *SiteManagerMock) Clear() {}

type ChannelManagerMock struct {
	GetChannelInfoMock              func(ctx context.Context, siteId, channelId int) (store.Channel, error)
	GetChannelIdListMock            func(ctx context.Context, siteId int) ([]int, error)
	GetChannelIdListByScopeMock     func(ctx context.Context, channel store.Channel, scope ScopeType, group, groupNot, contentModelPluginId string) ([]int, error)
	GetChannelIdListByScopeOnlyMock func(ctx context.Context, channel store.Channel, scope ScopeType) ([]int, error)
}

func (cm *ChannelManagerMock) GetChannelInfo(ctx context.Context, siteId, channelId int) (store.Channel, error) {
	return cm.GetChannelInfoMock(ctx, siteId, channelId)
}

func (cm *ChannelManagerMock) GetChannelIdList(ctx context.Context, siteId int) ([]int, error) {
	return cm.GetChannelIdListMock(ctx, siteId)
}

func (cm *ChannelManagerMock) GetChannelIdListByScope(ctx context.Context, channel store.Channel, scope ScopeType, group, groupNot, contentModelPluginId string) ([]int, error) {
	return cm.GetChannelIdListByScopeMock(ctx, channel, scope, group, groupNot, contentModelPluginId)
}

func (cm *ChannelManagerMock) GetChannelIdListByScopeOnly(ctx context.Context, channel store.Channel, scope ScopeType) ([]int, error) {
	return cm.GetChannelIdListByScopeOnlyMock(ctx, channel, scope)
}

func (cm *ChannelManagerMock) Clear() {}

type ContentManagerMock struct {
	GetCountMock                                  func(ctx context.Context, site store.Site, channel store.Channel, includeDescendants bool) (int, error)
	GetChannelIdListCheckedByLastEditDateHourMock func(ctx context.Context, site store.Site, hours int) ([]int, error)
}

func (cm *ContentManagerMock) GetCount(ctx context.Context, site store.Site, channel store.Channel, includeDescendants bool) (int, error) {
	return cm.GetCountMock(ctx, site, channel, includeDescendants)
}

func (cm *ContentManagerMock) GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, site store.Site, hours int) ([]int, error) {
	return cm.GetChannelIdListCheckedByLastEditDateHourMock(ctx, site, hours)
}

func (cm *ContentManagerMock) Clear() {}

type AdminManagerMock struct {
	GetAdminInfoByUserIdMock   func(ctx context.Context, userId int) (store.Administrator, error)
	GetAdminInfoByUserNameMock func(ctx context.Context, userName string) (store.Administrator, error)
	GetRolesMock               func(ctx context.Context, userName string) ([]string, error)
	GetRoleNamesMock           func(ctx context.Context, userName string) (string, error)
}

func (am *AdminManagerMock) GetAdminInfoByUserId(ctx context.Context, userId int) (store.Administrator, error) {
	return am.GetAdminInfoByUserIdMock(ctx, userId)
}

func (am *AdminManagerMock) GetAdminInfoByUserName(ctx context.Context, userName string) (store.Administrator, error) {
	return am.GetAdminInfoByUserNameMock(ctx, userName)
}

func (am *AdminManagerMock) GetRoles(ctx context.Context, userName string) ([]string, error) {
	return am.GetRolesMock(ctx, userName)
}

func (am *AdminManagerMock) GetRoleNames(ctx context.Context, userName string) (string, error) {
	return am.GetRoleNamesMock(ctx, userName)
}

func (am *AdminManagerMock) Clear() {}

type DepartmentManagerMock struct {
	GetDepartmentNameMock func(ctx context.Context, departmentId int) (string, error)
}

func (dm *DepartmentManagerMock) GetDepartmentName(ctx context.Context, departmentId int) (string, error) {
	return dm.GetDepartmentNameMock(ctx, departmentId)
}

func (dm *DepartmentManagerMock) Clear() {}

type AreaManagerMock struct {
	GetAreaNameMock func(ctx context.Context, areaId int) (string, error)
}

func (am *AreaManagerMock) GetAreaName(ctx context.Context, areaId int) (string, error) {
	return am.GetAreaNameMock(ctx, areaId)
}

func (am *AreaManagerMock) Clear() {}
