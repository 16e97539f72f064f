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
package store

import "context"

type SiteRepositoryMock struct {
	GetAllMock func(ctx context.Context) ([]Site, error)
}

func (m *SiteRepositoryMock) GetAll(ctx context.Context) ([]Site, error) {
	return m.GetAllMock(ctx)
}

type ChannelRepositoryMock struct {
	GetAllBySiteIdMock func(ctx context.Context, siteId int) ([]Channel, error)
}

func (m *ChannelRepositoryMock) GetAllBySiteId(ctx context.Context, siteId int) ([]Channel, error) {
	return m.GetAllBySiteIdMock(ctx, siteId)
}

type ContentRepositoryMock struct {
	GetCountMock                                  func(ctx context.Context, tableName string, siteId int, channelIds []int) (int, error)
	GetChannelIdListCheckedByLastEditDateHourMock func(ctx context.Context, tableName string, siteId, hours int) ([]int, error)
}

func (m *ContentRepositoryMock) GetCount(ctx context.Context, tableName string, siteId int, channelIds []int) (int, error) {
	return m.GetCountMock(ctx, tableName, siteId, channelIds)
}

func (m *ContentRepositoryMock) GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, tableName string, siteId, hours int) ([]int, error) {
	return m.GetChannelIdListCheckedByLastEditDateHourMock(ctx, tableName, siteId, hours)
}

type AdministratorRepositoryMock struct {
	GetAllMock        func(ctx context.Context) ([]Administrator, error)
	GetByUserIdMock   func(ctx context.Context, userId int) (Administrator, error)
	GetByUserNameMock func(ctx context.Context, userName string) (Administrator, error)
}

func (m *AdministratorRepositoryMock) GetAll(ctx context.Context) ([]Administrator, error) {
	return m.GetAllMock(ctx)
}

func (m *AdministratorRepositoryMock) GetByUserId(ctx context.Context, userId int) (Administrator, error) {
	return m.GetByUserIdMock(ctx, userId)
}

func (m *AdministratorRepositoryMock) GetByUserName(ctx context.Context, userName string) (Administrator, error) {
	return m.GetByUserNameMock(ctx, userName)
}

type AdministratorsInRolesRepositoryMock struct {
	GetRolesForUserMock func(ctx context.Context, userName string) ([]string, error)
}

func (m *AdministratorsInRolesRepositoryMock) GetRolesForUser(ctx context.Context, userName string) ([]string, error) {
	return m.GetRolesForUserMock(ctx, userName)
}

type PermissionsInRolesRepositoryMock struct {
	GetGeneralPermissionsMock func(ctx context.Context, roles []string) ([]string, error)
}

func (m *PermissionsInRolesRepositoryMock) GetGeneralPermissions(ctx context.Context, roles []string) ([]string, error) {
	return m.GetGeneralPermissionsMock(ctx, roles)
}

type SitePermissionsRepositoryMock struct {
	GetByRolesMock func(ctx context.Context, roles []string) ([]SitePermissions, error)
}

func (m *SitePermissionsRepositoryMock) GetByRoles(ctx context.Context, roles []string) ([]SitePermissions, error) {
	return m.GetByRolesMock(ctx, roles)
}

type DepartmentRepositoryMock struct {
	GetAllMock func(ctx context.Context) ([]Department, error)
}

func (m *DepartmentRepositoryMock) GetAll(ctx context.Context) ([]Department, error) {
	return m.GetAllMock(ctx)
}

type AreaRepositoryMock struct {
	GetAllMock func(ctx context.Context) ([]Area, error)
}

func (m *AreaRepositoryMock) GetAll(ctx context.Context) ([]Area, error) {
	return m.GetAllMock(ctx)
}

type CreateTaskRepositoryMock struct {
	InsertMock               func(ctx context.Context, task CreateTask) error
	IsExistsMock             func(ctx context.Context, createType string, siteId, channelId int) (bool, error)
	GetPendingMock           func(ctx context.Context, limit int) ([]CreateTask, error)
	UpdateExecutionTimesMock func(ctx context.Context, id, times int) error
	DeleteMock               func(ctx context.Context, id int) error
	DeleteAllBySiteIdMock    func(ctx context.Context, siteId int) error
}

func (m *CreateTaskRepositoryMock) Insert(ctx context.Context, task CreateTask) error {
	return m.InsertMock(ctx, task)
}

func (m *CreateTaskRepositoryMock) IsExists(ctx context.Context, createType string, siteId, channelId int) (bool, error) {
	return m.IsExistsMock(ctx, createType, siteId, channelId)
}

func (m *CreateTaskRepositoryMock) GetPending(ctx context.Context, limit int) ([]CreateTask, error) {
	return m.GetPendingMock(ctx, limit)
}

func (m *CreateTaskRepositoryMock) UpdateExecutionTimes(ctx context.Context, id, times int) error {
	return m.UpdateExecutionTimesMock(ctx, id, times)
}

func (m *CreateTaskRepositoryMock) Delete(ctx context.Context, id int) error {
	return m.DeleteMock(ctx, id)
}

func (m *CreateTaskRepositoryMock) DeleteAllBySiteId(ctx context.Context, siteId int) error {
	return m.DeleteAllBySiteIdMock(ctx, siteId)
}
