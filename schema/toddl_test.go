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

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = Table{
	Name: "siteserver_AdministratorsInRoles",
	Columns: []TableColumn{
		{AttributeName: "Id", DataType: Integer, IsPrimaryKey: true, IsIdentity: true},
		{AttributeName: "RoleName", DataType: VarChar, DataLength: 50},
		{AttributeName: "UserName", DataType: VarChar},
	},
}

func TestToDDL(t *testing.T) {
	testCases := []struct {
		driver   string
		expected string
	}{
		{
			driver: "mysql",
			expected: "CREATE TABLE `siteserver_AdministratorsInRoles` (\n" +
				"\t`Id` INT NOT NULL AUTO_INCREMENT,\n" +
				"\t`RoleName` VARCHAR(50),\n" +
				"\t`UserName` VARCHAR(255),\n" +
				"\tPRIMARY KEY (`Id`)\n)",
		},
		{
			driver: "postgres",
			expected: "CREATE TABLE \"siteserver_AdministratorsInRoles\" (\n" +
				"\t\"Id\" SERIAL,\n" +
				"\t\"RoleName\" VARCHAR(50),\n" +
				"\t\"UserName\" VARCHAR(255),\n" +
				"\tPRIMARY KEY (\"Id\")\n)",
		},
		{
			driver: "sqlserver",
			expected: "CREATE TABLE [siteserver_AdministratorsInRoles] (\n" +
				"\t[Id] INT IDENTITY(1,1),\n" +
				"\t[RoleName] NVARCHAR(50),\n" +
				"\t[UserName] NVARCHAR(255),\n" +
				"\tPRIMARY KEY ([Id])\n)",
		},
	}
	for _, tc := range testCases {
		ddl, err := ToDDL(tc.driver, testTable)
		assert.NoError(t, err, tc.driver)
		assert.Equal(t, tc.expected, ddl, tc.driver)
	}
}

func TestToDDLErrors(t *testing.T) {
	_, err := ToDDL("dynamodb", testTable)
	assert.Error(t, err)

	_, err = ToDDL("mysql", Table{Name: "empty"})
	assert.Error(t, err)

	_, err = ToDDL("mysql", Table{Name: "t", Columns: []TableColumn{{AttributeName: "c", DataType: "Blob"}}})
	assert.Error(t, err)
}

func TestFindColumn(t *testing.T) {
	c, ok := FindColumn(testTable.Columns, "rolename")
	assert.True(t, ok)
	assert.Equal(t, "RoleName", c.AttributeName)
	assert.False(t, HasColumn(testTable.Columns, "Missing"))
	assert.Equal(t, []string{"Id", "RoleName", "UserName"}, ColumnNames(testTable.Columns))
}
