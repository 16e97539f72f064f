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

package tables

import (
	"github.com/lygwys/cms/store"
	"github.com/lygwys/cms/updater"
)

var Administrator = updater.ConvertInfo{
	OldTableName: "bairong_Administrator",
	NewTableName: store.AdministratorTable.Name,
	NewColumns:   store.AdministratorTable.Columns,
	ConvertKeyDict: map[string]string{
		"PublishmentSystemIDCollection": "SiteIdCollection",
		"PublishmentSystemID":           "SiteId",
		"DepartmentID":                  "DepartmentId",
		"AreaID":                        "AreaId",
	},
}

var Role = updater.ConvertInfo{
	OldTableName: "bairong_Roles",
	NewTableName: store.RoleTable.Name,
	NewColumns:   store.RoleTable.Columns,
}

var PermissionsInRoles = updater.ConvertInfo{
	OldTableName: "bairong_PermissionsInRoles",
	NewTableName: store.PermissionsInRolesTable.Name,
	NewColumns:   store.PermissionsInRolesTable.Columns,
}

var Department = updater.ConvertInfo{
	OldTableName: "bairong_Department",
	NewTableName: store.DepartmentTable.Name,
	NewColumns:   store.DepartmentTable.Columns,
	ConvertKeyDict: map[string]string{
		"DepartmentID": "Id",
		"ParentID":     "ParentId",
	},
}

var Area = updater.ConvertInfo{
	OldTableName: "bairong_Area",
	NewTableName: store.AreaTable.Name,
	NewColumns:   store.AreaTable.Columns,
	ConvertKeyDict: map[string]string{
		"AreaID":   "Id",
		"ParentID": "ParentId",
	},
}
