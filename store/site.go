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

var siteColumns = []string{"Id", "SiteName", "SiteDir", "TableName", "IsRoot", "ParentId", "Taxis"}

type SiteRepositoryImpl struct{ base }

// GetAll returns every site ordered by Taxis then Id.
func (r *SiteRepositoryImpl) GetAll(ctx context.Context) ([]Site, error) {
	q := fmt.Sprintf("%s ORDER BY %s, %s", r.d.Select(SiteTable.Name, siteColumns), r.d.Quote("Taxis"), r.d.Quote("Id"))
	var sites []Site
	err := r.query(ctx, q, nil, func(rows *sql.Rows) error {
		var s Site
		if err := rows.Scan(num{&s.Id}, str{&s.SiteName}, str{&s.SiteDir}, str{&s.TableName}, flagValue{&s.IsRoot}, num{&s.ParentId}, num{&s.Taxis}); err != nil {
			return err
		}
		if s.TableName == "" {
			s.TableName = ContentTable.Name
		}
		sites = append(sites, s)
		return nil
	})
	return sites, err
}

var channelColumns = []string{"Id", "ChannelName", "SiteId", "ContentModelPluginId", "ParentId", "ParentsPath",
	"ParentsCount", "ChildrenCount", "IsLastNode", "IndexName", "GroupNameCollection", "Taxis", "AddDate"}

type ChannelRepositoryImpl struct{ base }

// GetAllBySiteId returns the channels of a site ordered by Taxis then Id.
// The site's root channel has the same id as the site.
func (r *ChannelRepositoryImpl) GetAllBySiteId(ctx context.Context, siteId int) ([]Channel, error) {
	q := fmt.Sprintf("%s WHERE %s = %s ORDER BY %s, %s", r.d.Select(ChannelTable.Name, channelColumns),
		r.d.Quote("SiteId"), r.d.Placeholder(1), r.d.Quote("Taxis"), r.d.Quote("Id"))
	var channels []Channel
	err := r.query(ctx, q, []any{siteId}, func(rows *sql.Rows) error {
		var c Channel
		if err := rows.Scan(num{&c.Id}, str{&c.ChannelName}, num{&c.SiteId}, str{&c.ContentModelPluginId}, num{&c.ParentId},
			str{&c.ParentsPath}, num{&c.ParentsCount}, num{&c.ChildrenCount}, flagValue{&c.IsLastNode}, str{&c.IndexName},
			str{&c.GroupNameCollection}, num{&c.Taxis}, stamp{&c.AddDate}); err != nil {
			return err
		}
		channels = append(channels, c)
		return nil
	})
	return channels, err
}
