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

var createTaskColumns = []string{"Guid", "CreateType", "SiteId", "ChannelId", "ExecutionTimes", "AddDate"}

type CreateTaskRepositoryImpl struct{ base }

func (r *CreateTaskRepositoryImpl) Insert(ctx context.Context, t CreateTask) error {
	return r.exec(ctx, r.d.Insert(CreateTaskTable.Name, createTaskColumns),
		t.Guid, t.CreateType, t.SiteId, t.ChannelId, t.ExecutionTimes, t.AddDate)
}

// IsExists reports whether an identical task is still pending.
func (r *CreateTaskRepositoryImpl) IsExists(ctx context.Context, createType string, siteId, channelId int) (bool, error) {
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = %s AND %s = %s AND %s = %s", r.d.Quote(CreateTaskTable.Name),
		r.d.Quote("CreateType"), r.d.Placeholder(1), r.d.Quote("SiteId"), r.d.Placeholder(2),
		r.d.Quote("ChannelId"), r.d.Placeholder(3))
	n, err := r.count(ctx, q, createType, siteId, channelId)
	return n > 0, err
}

// GetPending returns at most limit tasks, oldest first.
func (r *CreateTaskRepositoryImpl) GetPending(ctx context.Context, limit int) ([]CreateTask, error) {
	cols := append([]string{"Id"}, createTaskColumns...)
	q := r.d.Limit(fmt.Sprintf("%s ORDER BY %s", r.d.Select(CreateTaskTable.Name, cols), r.d.Quote("Id")), limit)
	var tasks []CreateTask
	err := r.query(ctx, q, nil, func(rows *sql.Rows) error {
		var t CreateTask
		if err := rows.Scan(num{&t.Id}, str{&t.Guid}, str{&t.CreateType}, num{&t.SiteId}, num{&t.ChannelId},
			num{&t.ExecutionTimes}, stamp{&t.AddDate}); err != nil {
			return err
		}
		tasks = append(tasks, t)
		return nil
	})
	return tasks, err
}

func (r *CreateTaskRepositoryImpl) UpdateExecutionTimes(ctx context.Context, id, times int) error {
	q := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s", r.d.Quote(CreateTaskTable.Name),
		r.d.Quote("ExecutionTimes"), r.d.Placeholder(1), r.d.Quote("Id"), r.d.Placeholder(2))
	return r.exec(ctx, q, times, id)
}

func (r *CreateTaskRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", r.d.Quote(CreateTaskTable.Name), r.d.Quote("Id"), r.d.Placeholder(1))
	return r.exec(ctx, q, id)
}

func (r *CreateTaskRepositoryImpl) DeleteAllBySiteId(ctx context.Context, siteId int) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", r.d.Quote(CreateTaskTable.Name), r.d.Quote("SiteId"), r.d.Placeholder(1))
	return r.exec(ctx, q, siteId)
}
