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
	"time"
)

type ContentRepositoryImpl struct {
	base
	// now is replaced in tests.
	now func() time.Time
}

func (r *ContentRepositoryImpl) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// GetCount counts the contents of the given channels.
func (r *ContentRepositoryImpl) GetCount(ctx context.Context, tableName string, siteId int, channelIds []int) (int, error) {
	if len(channelIds) == 0 {
		return 0, nil
	}
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = %s AND %s", r.d.Quote(tableName),
		r.d.Quote("SiteId"), r.d.Placeholder(1), r.d.In("ChannelId", 2, len(channelIds)))
	args := append([]any{siteId}, intArgs(channelIds)...)
	return r.count(ctx, q, args...)
}

// GetChannelIdListCheckedByLastEditDateHour returns the channels holding
// checked contents edited within the last hours, ordered by channel id.
func (r *ContentRepositoryImpl) GetChannelIdListCheckedByLastEditDateHour(ctx context.Context, tableName string, siteId, hours int) ([]int, error) {
	since := r.clock().Add(-time.Duration(hours) * time.Hour)
	q := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s = %s AND %s = %s AND %s >= %s ORDER BY %s",
		r.d.Quote("ChannelId"), r.d.Quote(tableName),
		r.d.Quote("SiteId"), r.d.Placeholder(1),
		r.d.Quote("IsChecked"), r.d.Placeholder(2),
		r.d.Quote("LastEditDate"), r.d.Placeholder(3),
		r.d.Quote("ChannelId"))
	var ids []int
	err := r.query(ctx, q, []any{siteId, flagTrue, since}, func(rows *sql.Rows) error {
		var id int
		if err := rows.Scan(num{&id}); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}
