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

	"github.com/lygwys/cms/schema"
)

type SiteRepository interface {
	GetAll(ctx context.Context) ([]Site, error)
}

type ChannelRepository interface {
	GetAllBySiteId(ctx context.Context, siteId int) ([]Channel, error)
}

type ContentRepository interface {
	GetCount(ctx context.Context, tableName string, siteId int, channelIds []int) (int, error)
	GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, tableName string, siteId, hours int) ([]int, error)
}

type AdministratorRepository interface {
	GetAll(ctx context.Context) ([]Administrator, error)
	GetByUserId(ctx context.Context, userId int) (Administrator, error)
	GetByUserName(ctx context.Context, userName string) (Administrator, error)
}

type AdministratorsInRolesRepository interface {
	GetRolesForUser(ctx context.Context, userName string) ([]string, error)
}

type PermissionsInRolesRepository interface {
	GetGeneralPermissions(ctx context.Context, roles []string) ([]string, error)
}

type SitePermissionsRepository interface {
	GetByRoles(ctx context.Context, roles []string) ([]SitePermissions, error)
}

type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]Department, error)
}

type AreaRepository interface {
	GetAll(ctx context.Context) ([]Area, error)
}

type CreateTaskRepository interface {
	Insert(ctx context.Context, task CreateTask) error
	IsExists(ctx context.Context, createType string, siteId, channelId int) (bool, error)
	GetPending(ctx context.Context, limit int) ([]CreateTask, error)
	UpdateExecutionTimes(ctx context.Context, id, times int) error
	Delete(ctx context.Context, id int) error
	DeleteAllBySiteId(ctx context.Context, siteId int) error
}

// Repositories bundles one implementation of every repository over a
// single connection pool.
type Repositories struct {
	Sites                 SiteRepository
	Channels              ChannelRepository
	Contents              ContentRepository
	Administrators        AdministratorRepository
	AdministratorsInRoles AdministratorsInRolesRepository
	PermissionsInRoles    PermissionsInRolesRepository
	SitePermissions       SitePermissionsRepository
	Departments           DepartmentRepository
	Areas                 AreaRepository
	CreateTasks           CreateTaskRepository
}

// New returns the repositories for db, writing SQL for driver.
func New(db *sql.DB, driver string) *Repositories {
	b := base{db: db, d: Dialect{Driver: driver}}
	return &Repositories{
		Sites:                 &SiteRepositoryImpl{b},
		Channels:              &ChannelRepositoryImpl{b},
		Contents:              &ContentRepositoryImpl{base: b},
		Administrators:        &AdministratorRepositoryImpl{b},
		AdministratorsInRoles: &AdministratorsInRolesRepositoryImpl{b},
		PermissionsInRoles:    &PermissionsInRolesRepositoryImpl{b},
		SitePermissions:       &SitePermissionsRepositoryImpl{b},
		Departments:           &DepartmentRepositoryImpl{b},
		Areas:                 &AreaRepositoryImpl{b},
		CreateTasks:           &CreateTaskRepositoryImpl{b},
	}
}

// CreateTables creates every table of the CMS that does not exist yet.
func CreateTables(ctx context.Context, db *sql.DB, driver string, existing func(name string) bool) error {
	for _, t := range Tables() {
		if existing != nil && existing(t.Name) {
			continue
		}
		ddl, err := schema.ToDDL(driver, t)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("can't create table %s: %w", t.Name, err)
		}
	}
	return nil
}

type base struct {
	db *sql.DB
	d  Dialect
}

// query runs q and hands every row to each. Scan errors abort.
func (b base) query(ctx context.Context, q string, args []any, each func(*sql.Rows) error) error {
	rows, err := b.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("couldn't execute query %q: %w", q, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := each(rows); err != nil {
			return fmt.Errorf("can't scan row of %q: %w", q, err)
		}
	}
	return rows.Err()
}

func (b base) count(ctx context.Context, q string, args ...any) (int, error) {
	var n int
	if err := b.db.QueryRowContext(ctx, q, args...).Scan(num{&n}); err != nil {
		return 0, fmt.Errorf("couldn't execute query %q: %w", q, err)
	}
	return n, nil
}

func (b base) exec(ctx context.Context, q string, args ...any) error {
	if _, err := b.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("couldn't execute statement %q: %w", q, err)
	}
	return nil
}

func stringArgs(l []string) []any {
	args := make([]any, 0, len(l))
	for _, s := range l {
		args = append(args, s)
	}
	return args
}

func intArgs(l []int) []any {
	args := make([]any, 0, len(l))
	for _, i := range l {
		args = append(args, i)
	}
	return args
}
