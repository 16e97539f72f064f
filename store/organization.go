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
)

type DepartmentRepositoryImpl struct{ base }

func (r *DepartmentRepositoryImpl) GetAll(ctx context.Context) ([]Department, error) {
	cols := []string{"Id", "DepartmentName", "Code", "ParentId", "Taxis", "Summary"}
	q := fmt.Sprintf("%s ORDER BY %s", r.d.Select(DepartmentTable.Name, cols), r.d.Quote("Taxis"))
	var departments []Department
	err := r.query(ctx, q, nil, func(rows *sql.Rows) error {
		var d Department
		if err := rows.Scan(num{&d.Id}, str{&d.DepartmentName}, str{&d.Code}, num{&d.ParentId}, num{&d.Taxis}, str{&d.Summary}); err != nil {
			return err
		}
		departments = append(departments, d)
		return nil
	})
	return departments, err
}

type AreaRepositoryImpl struct{ base }

func (r *AreaRepositoryImpl) GetAll(ctx context.Context) ([]Area, error) {
	cols := []string{"Id", "AreaName", "ParentId", "Taxis"}
	q := fmt.Sprintf("%s ORDER BY %s", r.d.Select(AreaTable.Name, cols), r.d.Quote("Taxis"))
	var areas []Area
	err := r.query(ctx, q, nil, func(rows *sql.Rows) error {
		var a Area
		if err := rows.Scan(num{&a.Id}, str{&a.AreaName}, num{&a.ParentId}, num{&a.Taxis}); err != nil {
			return err
		}
		areas = append(areas, a)
		return nil
	})
	return areas, err
}
