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

// Package tables holds one conversion descriptor per legacy table.
package tables

import (
	"sort"

	"github.com/lygwys/cms/updater"
)

var all = []updater.ConvertInfo{
	AdministratorsInRoles,
	Administrator,
	Role,
	PermissionsInRoles,
	Department,
	Area,
	Site,
	Channel,
	SitePermissions,
	Content,
}

// Registry returns the descriptors keyed by legacy table name.
func Registry() map[string]updater.ConvertInfo {
	r := make(map[string]updater.ConvertInfo, len(all))
	for _, info := range all {
		r[info.OldTableName] = info
	}
	return r
}

// Names returns the legacy table names in sorted order.
func Names(r map[string]updater.ConvertInfo) []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
