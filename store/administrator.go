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

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lygwys/cms/common/utils"
)

var administratorColumns = []string{"Id", "UserName", "Password", "PasswordFormat", "PasswordSalt", "CreationDate",
	"LastActivityDate", "CountOfLogin", "CreatorUserName", "IsLockedOut", "SiteIdCollection", "SiteId",
	"DepartmentId", "AreaId", "DisplayName", "Email", "Mobile"}

type AdministratorRepositoryImpl struct{ base }

func scanAdministrator(rows *sql.Rows) (Administrator, error) {
	var a Administrator
	err := rows.Scan(num{&a.Id}, str{&a.UserName}, str{&a.Password}, str{&a.PasswordFormat}, str{&a.PasswordSalt},
		stamp{&a.CreationDate}, stamp{&a.LastActivityDate}, num{&a.CountOfLogin}, str{&a.CreatorUserName},
		flagValue{&a.IsLockedOut}, str{&a.SiteIdCollection}, num{&a.SiteId}, num{&a.DepartmentId}, num{&a.AreaId},
		str{&a.DisplayName}, str{&a.Email}, str{&a.Mobile})
	return a, err
}

func (r *AdministratorRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]Administrator, error) {
	q := r.d.Select(AdministratorTable.Name, administratorColumns)
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY " + r.d.Quote("Id")
	var admins []Administrator
	err := r.query(ctx, q, args, func(rows *sql.Rows) error {
		a, err := scanAdministrator(rows)
		if err != nil {
			return err
		}
		admins = append(admins, a)
		return nil
	})
	return admins, err
}

func (r *AdministratorRepositoryImpl) GetAll(ctx context.Context) ([]Administrator, error) {
	return r.list(ctx, "")
}

// GetByUserId returns ErrNotFound when no administrator has userId.
func (r *AdministratorRepositoryImpl) GetByUserId(ctx context.Context, userId int) (Administrator, error) {
	admins, err := r.list(ctx, fmt.Sprintf("%s = %s", r.d.Quote("Id"), r.d.Placeholder(1)), userId)
	if err != nil {
		return Administrator{}, err
	}
	if len(admins) == 0 {
		return Administrator{}, fmt.Errorf("administrator %d: %w", userId, ErrNotFound)
	}
	return admins[0], nil
}

// GetByUserName returns ErrNotFound when no administrator is called userName.
func (r *AdministratorRepositoryImpl) GetByUserName(ctx context.Context, userName string) (Administrator, error) {
	admins, err := r.list(ctx, fmt.Sprintf("%s = %s", r.d.Quote("UserName"), r.d.Placeholder(1)), userName)
	if err != nil {
		return Administrator{}, err
	}
	if len(admins) == 0 {
		return Administrator{}, fmt.Errorf("administrator %q: %w", userName, ErrNotFound)
	}
	return admins[0], nil
}

type AdministratorsInRolesRepositoryImpl struct{ base }

// GetRolesForUser returns the role names assigned to userName.
func (r *AdministratorsInRolesRepositoryImpl) GetRolesForUser(ctx context.Context, userName string) ([]string, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s ORDER BY %s", r.d.Quote("RoleName"),
		r.d.Quote(AdministratorsInRolesTable.Name), r.d.Quote("UserName"), r.d.Placeholder(1), r.d.Quote("Id"))
	var roles []string
	err := r.query(ctx, q, []any{userName}, func(rows *sql.Rows) error {
		var role string
		if err := rows.Scan(str{&role}); err != nil {
			return err
		}
		roles = append(roles, role)
		return nil
	})
	return roles, err
}

type PermissionsInRolesRepositoryImpl struct{ base }

// GetGeneralPermissions returns the union of the general permissions of
// roles, in first-seen order.
func (r *PermissionsInRolesRepositoryImpl) GetGeneralPermissions(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s", r.d.Quote("GeneralPermissions"),
		r.d.Quote(PermissionsInRolesTable.Name), r.d.In("RoleName", 1, len(roles)), r.d.Quote("Id"))
	var permissions []string
	seen := map[string]bool{}
	err := r.query(ctx, q, stringArgs(roles), func(rows *sql.Rows) error {
		var collection string
		if err := rows.Scan(str{&collection}); err != nil {
			return err
		}
		for _, p := range utils.ParseStringCollection(collection) {
			if !seen[p] {
				seen[p] = true
				permissions = append(permissions, p)
			}
		}
		return nil
	})
	return permissions, err
}

var sitePermissionsColumns = []string{"Id", "RoleName", "SiteId", "ChannelIdCollection", "ChannelPermissions", "WebsitePermissions"}

type SitePermissionsRepositoryImpl struct{ base }

func (r *SitePermissionsRepositoryImpl) GetByRoles(ctx context.Context, roles []string) ([]SitePermissions, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	q := fmt.Sprintf("%s WHERE %s ORDER BY %s", r.d.Select(SitePermissionsTable.Name, sitePermissionsColumns),
		r.d.In("RoleName", 1, len(roles)), r.d.Quote("Id"))
	var list []SitePermissions
	err := r.query(ctx, q, stringArgs(roles), func(rows *sql.Rows) error {
		var p SitePermissions
		if err := rows.Scan(num{&p.Id}, str{&p.RoleName}, num{&p.SiteId}, str{&p.ChannelIdCollection},
			str{&p.ChannelPermissions}, str{&p.WebsitePermissions}); err != nil {
			return err
		}
		list = append(list, p)
		return nil
	})
	return list, err
}
