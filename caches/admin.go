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
	"strings"
	"time"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/store"
)

type AdminManager interface {
	GetAdminInfoByUserId(ctx context.Context, userId int) (store.Administrator, error)
	GetAdminInfoByUserName(ctx context.Context, userName string) (store.Administrator, error)
	GetRoles(ctx context.Context, userName string) ([]string, error)
	// GetRoleNames summarises the roles of userName as one display string.
	GetRoleNames(ctx context.Context, userName string) (string, error)
	Clear()
}

// predefinedRoleNames maps the built-in roles to their display names.
var predefinedRoleNames = map[string]string{
	constants.RoleConsoleAdministrator: constants.AdminLevelSuper,
	constants.RoleSystemAdministrator:  constants.AdminLevelSite,
	constants.RoleAdministrator:        constants.AdminLevelOrdinary,
}

type AdminManagerImpl struct {
	admins  store.AdministratorRepository
	roles   store.AdministratorsInRolesRepository
	byId    *Cache[int, store.Administrator]
	byName  *Cache[string, store.Administrator]
	roleMap *Cache[string, []string]
}

func NewAdminManager(admins store.AdministratorRepository, roles store.AdministratorsInRolesRepository, ttl time.Duration) (*AdminManagerImpl, error) {
	byId, err := NewCache[int, store.Administrator](1024, ttl)
	if err != nil {
		return nil, err
	}
	byName, err := NewCache[string, store.Administrator](1024, ttl)
	if err != nil {
		return nil, err
	}
	roleMap, err := NewCache[string, []string](1024, ttl)
	if err != nil {
		return nil, err
	}
	return &AdminManagerImpl{admins: admins, roles: roles, byId: byId, byName: byName, roleMap: roleMap}, nil
}

// GetAdminInfoByUserId wraps store.ErrNotFound for unknown ids.
func (m *AdminManagerImpl) GetAdminInfoByUserId(ctx context.Context, userId int) (store.Administrator, error) {
	return m.byId.GetOrLoad(ctx, userId, func(ctx context.Context) (store.Administrator, error) {
		return m.admins.GetByUserId(ctx, userId)
	})
}

func (m *AdminManagerImpl) GetAdminInfoByUserName(ctx context.Context, userName string) (store.Administrator, error) {
	return m.byName.GetOrLoad(ctx, strings.ToLower(userName), func(ctx context.Context) (store.Administrator, error) {
		return m.admins.GetByUserName(ctx, userName)
	})
}

func (m *AdminManagerImpl) GetRoles(ctx context.Context, userName string) ([]string, error) {
	return m.roleMap.GetOrLoad(ctx, strings.ToLower(userName), func(ctx context.Context) ([]string, error) {
		return m.roles.GetRolesForUser(ctx, userName)
	})
}

// GetRoleNames lists the highest predefined role first, then every custom
// role, comma separated.
func (m *AdminManagerImpl) GetRoleNames(ctx context.Context, userName string) (string, error) {
	roles, err := m.GetRoles(ctx, userName)
	if err != nil {
		return "", err
	}
	var isConsole, isSystem bool
	var custom []string
	for _, r := range roles {
		switch r {
		case constants.RoleConsoleAdministrator:
			isConsole = true
		case constants.RoleSystemAdministrator:
			isSystem = true
		case constants.RoleAdministrator:
		default:
			custom = append(custom, r)
		}
	}
	level := constants.RoleAdministrator
	if isConsole {
		level = constants.RoleConsoleAdministrator
	} else if isSystem {
		level = constants.RoleSystemAdministrator
	}
	return strings.Join(append([]string{predefinedRoleNames[level]}, custom...), ","), nil
}

func (m *AdminManagerImpl) Clear() {
	m.byId.Clear()
	m.byName.Clear()
	m.roleMap.Clear()
}
