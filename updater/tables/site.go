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

var Site = updater.ConvertInfo{
	OldTableName: "siteserver_PublishmentSystem",
	NewTableName: store.SiteTable.Name,
	NewColumns:   store.SiteTable.Columns,
	ConvertKeyDict: map[string]string{
		"PublishmentSystemID":       "Id",
		"PublishmentSystemName":     "SiteName",
		"PublishmentSystemDir":      "SiteDir",
		"AuxiliaryTableForContent":  "TableName",
		"ParentPublishmentSystemID": "ParentId",
		"IsHeadquarters":            "IsRoot",
	},
}

// Channel renames nodes to channels. Content models moved to plugins, so
// the old model ids are rewritten to the plugin ids.
var Channel = updater.ConvertInfo{
	OldTableName: "siteserver_Node",
	NewTableName: store.ChannelTable.Name,
	NewColumns:   store.ChannelTable.Columns,
	ConvertKeyDict: map[string]string{
		"NodeID":                  "Id",
		"NodeName":                "ChannelName",
		"PublishmentSystemID":     "SiteId",
		"ParentID":                "ParentId",
		"ContentModelID":          "ContentModelPluginId",
		"NodeIndexName":           "IndexName",
		"NodeGroupNameCollection": "GroupNameCollection",
	},
	ConvertValueDict: map[string]string{
		updater.ValueKey("ContentModelPluginId", "GovPublic"):   "SS.GovPublic",
		updater.ValueKey("ContentModelPluginId", "GovInteract"): "SS.GovInteract",
		updater.ValueKey("ContentModelPluginId", "Job"):         "SS.Jobs",
	},
}

var SitePermissions = updater.ConvertInfo{
	OldTableName: "siteserver_SystemPermissions",
	NewTableName: store.SitePermissionsTable.Name,
	NewColumns:   store.SitePermissionsTable.Columns,
	ConvertKeyDict: map[string]string{
		"PublishmentSystemID": "SiteId",
		"NodeIDCollection":    "ChannelIdCollection",
		"NodePermissions":     "ChannelPermissions",
	},
}

var Content = updater.ConvertInfo{
	OldTableName: "siteserver_Content",
	NewTableName: store.ContentTable.Name,
	NewColumns:   store.ContentTable.Columns,
	ConvertKeyDict: map[string]string{
		"ID":                  "Id",
		"NodeID":              "ChannelId",
		"PublishmentSystemID": "SiteId",
	},
}
