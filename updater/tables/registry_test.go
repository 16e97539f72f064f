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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/store"
)

func TestRegistry(t *testing.T) {
	r := Registry()
	assert.Len(t, r, 10)
	assert.Equal(t, []string{
		"bairong_Administrator",
		"bairong_AdministratorsInRoles",
		"bairong_Area",
		"bairong_Department",
		"bairong_PermissionsInRoles",
		"bairong_Roles",
		"siteserver_Content",
		"siteserver_Node",
		"siteserver_PublishmentSystem",
		"siteserver_SystemPermissions",
	}, Names(r))
}

func TestAdministratorsInRoles(t *testing.T) {
	info := Registry()["bairong_AdministratorsInRoles"]
	assert.Equal(t, "siteserver_AdministratorsInRoles", info.NewTableName)
	if diff := cmp.Diff(store.AdministratorsInRolesTable.Columns, info.NewColumns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, info.ConvertKeyDict)
	assert.Nil(t, info.ConvertValueDict)
	for _, col := range []string{"Id", "RoleName", "UserName"} {
		assert.Equal(t, col, info.ConvertKey(col))
	}
}

func TestRenamedColumnsExist(t *testing.T) {
	for name, info := range Registry() {
		assert.NotEmpty(t, info.NewTableName, name)
		assert.NotEmpty(t, info.NewColumns, name)
		for old, renamed := range info.ConvertKeyDict {
			assert.True(t, schema.HasColumn(info.NewColumns, renamed), "%s: %s -> %s", name, old, renamed)
		}
	}
}

func TestChannelModelIds(t *testing.T) {
	info := Registry()["siteserver_Node"]
	assert.Equal(t, "ContentModelPluginId", info.ConvertKey("ContentModelID"))
	assert.Equal(t, "SS.GovPublic", info.ConvertValue("ContentModelPluginId", "GovPublic"))
	assert.Equal(t, "GovPublic", info.ConvertValue("ChannelName", "GovPublic"))
}
