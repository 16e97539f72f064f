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

import "github.com/lygwys/cms/schema"

// Flags are stored as "True"/"False" strings, the format legacy rows carry.
const flagTrue = "True"

func identity() schema.TableColumn {
	return schema.TableColumn{AttributeName: "Id", DataType: schema.Integer, IsPrimaryKey: true, IsIdentity: true}
}

func integer(name string) schema.TableColumn {
	return schema.TableColumn{AttributeName: name, DataType: schema.Integer}
}

func varchar(name string, length int) schema.TableColumn {
	return schema.TableColumn{AttributeName: name, DataType: schema.VarChar, DataLength: length}
}

func text(name string) schema.TableColumn {
	return schema.TableColumn{AttributeName: name, DataType: schema.Text}
}

func datetime(name string) schema.TableColumn {
	return schema.TableColumn{AttributeName: name, DataType: schema.DateTime}
}

func flag(name string) schema.TableColumn {
	return varchar(name, 18)
}

var (
	SiteTable = schema.Table{
		Name: "siteserver_Site",
		Columns: []schema.TableColumn{
			identity(),
			varchar("SiteName", 50),
			varchar("SiteDir", 50),
			varchar("TableName", 50),
			flag("IsRoot"),
			integer("ParentId"),
			integer("Taxis"),
			text("SettingsXml"),
		},
	}

	ChannelTable = schema.Table{
		Name: "siteserver_Channel",
		Columns: []schema.TableColumn{
			identity(),
			varchar("ChannelName", 255),
			integer("SiteId"),
			varchar("ContentModelPluginId", 50),
			integer("ParentId"),
			varchar("ParentsPath", 255),
			integer("ParentsCount"),
			integer("ChildrenCount"),
			flag("IsLastNode"),
			varchar("IndexName", 255),
			varchar("GroupNameCollection", 255),
			integer("Taxis"),
			datetime("AddDate"),
		},
	}

	// ContentTable is the default content table. Sites may point
	// Site.TableName at another table with the same columns.
	ContentTable = schema.Table{
		Name: "siteserver_Content",
		Columns: []schema.TableColumn{
			identity(),
			integer("ChannelId"),
			integer("SiteId"),
			varchar("Title", 255),
			flag("IsChecked"),
			integer("CheckedLevel"),
			integer("Taxis"),
			datetime("AddDate"),
			datetime("LastEditDate"),
		},
	}

	AdministratorTable = schema.Table{
		Name: "siteserver_Administrator",
		Columns: []schema.TableColumn{
			identity(),
			varchar("UserName", 255),
			varchar("Password", 255),
			varchar("PasswordFormat", 50),
			varchar("PasswordSalt", 128),
			datetime("CreationDate"),
			datetime("LastActivityDate"),
			integer("CountOfLogin"),
			integer("CountOfFailedLogin"),
			varchar("CreatorUserName", 255),
			flag("IsLockedOut"),
			varchar("SiteIdCollection", 255),
			integer("SiteId"),
			integer("DepartmentId"),
			integer("AreaId"),
			varchar("DisplayName", 255),
			varchar("Email", 255),
			varchar("Mobile", 20),
		},
	}

	AdministratorsInRolesTable = schema.Table{
		Name: "siteserver_AdministratorsInRoles",
		Columns: []schema.TableColumn{
			identity(),
			varchar("RoleName", 255),
			varchar("UserName", 255),
		},
	}

	RoleTable = schema.Table{
		Name: "siteserver_Role",
		Columns: []schema.TableColumn{
			identity(),
			varchar("RoleName", 255),
			varchar("CreatorUserName", 255),
			varchar("Description", 255),
		},
	}

	PermissionsInRolesTable = schema.Table{
		Name: "siteserver_PermissionsInRoles",
		Columns: []schema.TableColumn{
			identity(),
			varchar("RoleName", 255),
			text("GeneralPermissions"),
		},
	}

	SitePermissionsTable = schema.Table{
		Name: "siteserver_SitePermissions",
		Columns: []schema.TableColumn{
			identity(),
			varchar("RoleName", 255),
			integer("SiteId"),
			text("ChannelIdCollection"),
			text("ChannelPermissions"),
			text("WebsitePermissions"),
		},
	}

	DepartmentTable = schema.Table{
		Name: "siteserver_Department",
		Columns: []schema.TableColumn{
			identity(),
			varchar("DepartmentName", 255),
			varchar("Code", 50),
			integer("ParentId"),
			varchar("ParentsPath", 255),
			integer("ParentsCount"),
			integer("ChildrenCount"),
			flag("IsLastNode"),
			integer("Taxis"),
			datetime("AddDate"),
			varchar("Summary", 255),
			integer("CountOfAdmin"),
		},
	}

	AreaTable = schema.Table{
		Name: "siteserver_Area",
		Columns: []schema.TableColumn{
			identity(),
			varchar("AreaName", 255),
			integer("ParentId"),
			varchar("ParentsPath", 255),
			integer("ParentsCount"),
			integer("ChildrenCount"),
			flag("IsLastNode"),
			integer("Taxis"),
			integer("CountOfAdmin"),
		},
	}

	CreateTaskTable = schema.Table{
		Name: "siteserver_CreateTask",
		Columns: []schema.TableColumn{
			identity(),
			varchar("Guid", 50),
			varchar("CreateType", 50),
			integer("SiteId"),
			integer("ChannelId"),
			integer("ExecutionTimes"),
			datetime("AddDate"),
		},
	}
)

// Tables lists every table the CMS owns, in creation order.
func Tables() []schema.Table {
	return []schema.Table{
		SiteTable,
		ChannelTable,
		ContentTable,
		AdministratorTable,
		AdministratorsInRolesTable,
		RoleTable,
		PermissionsInRolesTable,
		SitePermissionsTable,
		DepartmentTable,
		AreaTable,
		CreateTaskTable,
	}
}
