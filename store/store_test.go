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
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/lygwys/cms/config"
)

type mockSpec struct {
	query string
	args  []driver.Value   // Query args.
	cols  []string         // Columns names for returned rows.
	rows  [][]driver.Value // Set of rows returned.
}

func mkMockDB(t *testing.T, ms []mockSpec) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.Nil(t, err)
	for _, m := range ms {
		rows := sqlmock.NewRows(m.cols)
		for _, r := range m.rows {
			rows.AddRow(r...)
		}
		if len(m.args) > 0 {
			mock.ExpectQuery(regexp.QuoteMeta(m.query)).WithArgs(m.args...).WillReturnRows(rows)
		} else {
			mock.ExpectQuery(regexp.QuoteMeta(m.query)).WillReturnRows(rows)
		}
	}
	return db, mock
}

func TestDataSourceName(t *testing.T) {
	testCases := []struct {
		name          string
		cfg           config.Database
		expected      string
		errorExpected bool
	}{
		{
			name:     "mysql",
			cfg:      config.Database{Driver: "mysql", Host: "h", Port: "3306", Database: "cms", User: "u", Password: "p"},
			expected: "u:p@tcp(h:3306)/cms?parseTime=true",
		},
		{
			name: "mysql through ssh",
			cfg: config.Database{Driver: "mysql", Host: "h", Port: "3306", Database: "cms", User: "u", Password: "p",
				SSH: &config.SSHTunnel{Host: "bastion", Port: 22}},
			expected: "u:p@mysql+ssh(h:3306)/cms?parseTime=true",
		},
		{
			name:     "postgres",
			cfg:      config.Database{Driver: "postgres", Host: "h", Port: "5432", Database: "cms", User: "u", Password: "p"},
			expected: "host=h port=5432 user=u password=p dbname=cms sslmode=disable",
		},
		{
			name:     "sqlserver",
			cfg:      config.Database{Driver: "sqlserver", Host: "h", Port: "1433", Database: "cms", User: "u", Password: "p"},
			expected: "sqlserver://u:p@h:1433?database=cms",
		},
		{
			name:          "oracle bad port",
			cfg:           config.Database{Driver: "oracle", Host: "h", Port: "x", Database: "cms", User: "u"},
			errorExpected: true,
		},
		{
			name:          "unsupported",
			cfg:           config.Database{Driver: "dynamodb"},
			errorExpected: true,
		},
	}
	for _, tc := range testCases {
		dsn, err := DataSourceName(tc.cfg)
		assert.Equal(t, tc.errorExpected, err != nil, tc.name)
		if !tc.errorExpected {
			assert.Equal(t, tc.expected, dsn, tc.name)
		}
	}

	dsn, err := DataSourceName(config.Database{Driver: "oracle", Host: "h", Port: "1521", Database: "cms", User: "u", Password: "p"})
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(dsn, "oracle://"), dsn)
	assert.Contains(t, dsn, "h:1521")
}

func TestOpenRejectsTunnelForOtherDrivers(t *testing.T) {
	_, err := Open(context.Background(), config.Database{Driver: "postgres", Host: "h", Port: "5432", Database: "d", User: "u",
		SSH: &config.SSHTunnel{Host: "b"}})
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "?, ?", Dialect{Driver: "mysql"}.Placeholders(1, 2))
	assert.Equal(t, "$2, $3", Dialect{Driver: "postgres"}.Placeholders(2, 2))
	assert.Equal(t, "@p1", Dialect{Driver: "sqlserver"}.Placeholder(1))
	assert.Equal(t, ":4", Dialect{Driver: "oracle"}.Placeholder(4))
	assert.Equal(t, "SELECT 1 ORDER BY x LIMIT 5", Dialect{Driver: "mysql"}.Limit("SELECT 1 ORDER BY x", 5))
	assert.Equal(t, "SELECT 1 ORDER BY x OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY", Dialect{Driver: "sqlserver"}.Limit("SELECT 1 ORDER BY x", 5))
	assert.Equal(t, `INSERT INTO "t" ("a", "b") VALUES ($1, $2)`, Dialect{Driver: "postgres"}.Insert("t", []string{"a", "b"}))
}

func TestSiteGetAll(t *testing.T) {
	ms := []mockSpec{
		{
			query: "SELECT `Id`, `SiteName`, `SiteDir`, `TableName`, `IsRoot`, `ParentId`, `Taxis` FROM `siteserver_Site` ORDER BY `Taxis`, `Id`",
			cols:  siteColumns,
			rows: [][]driver.Value{
				{int64(1), "Main", "", "siteserver_Content_1", "True", int64(0), int64(1)},
				{int64(2), "News", "news", nil, "False", int64(1), int64(2)},
			},
		},
	}
	db, _ := mkMockDB(t, ms)
	r := New(db, "mysql")
	sites, err := r.Sites.GetAll(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []Site{
		{Id: 1, SiteName: "Main", TableName: "siteserver_Content_1", IsRoot: true, Taxis: 1},
		{Id: 2, SiteName: "News", SiteDir: "news", TableName: "siteserver_Content", ParentId: 1, Taxis: 2},
	}, sites)
}

func TestChannelGetAllBySiteId(t *testing.T) {
	added := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	ms := []mockSpec{
		{
			query: `SELECT "Id", "ChannelName", "SiteId", "ContentModelPluginId", "ParentId", "ParentsPath", "ParentsCount", "ChildrenCount", "IsLastNode", "IndexName", "GroupNameCollection", "Taxis", "AddDate" FROM "siteserver_Channel" WHERE "SiteId" = $1 ORDER BY "Taxis", "Id"`,
			args:  []driver.Value{int64(1)},
			cols:  channelColumns,
			rows: [][]driver.Value{
				{int64(1), "Home", int64(1), "", int64(0), "", int64(0), int64(1), "True", "", "", int64(1), added},
				{int64(3), "News", int64(1), "", int64(1), "0,1", int64(1), int64(0), "True", "news", "a,b", int64(2), []byte("2020-01-02 03:04:05")},
			},
		},
	}
	db, _ := mkMockDB(t, ms)
	r := New(db, "postgres")
	channels, err := r.Channels.GetAllBySiteId(context.Background(), 1)
	assert.Nil(t, err)
	assert.Len(t, channels, 2)
	assert.Equal(t, added, channels[0].AddDate)
	assert.Equal(t, added, channels[1].AddDate)
	assert.Equal(t, []int{0, 1}, channels[1].ParentIds())
	assert.Equal(t, []string{"a", "b"}, channels[1].GroupNames())
}

func TestContentRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.Nil(t, err)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `siteserver_Content` WHERE `SiteId` = ? AND `ChannelId` IN (?, ?)")).
		WithArgs(1, 3, 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT `ChannelId` FROM `siteserver_Content` WHERE `SiteId` = ? AND `IsChecked` = ? AND `LastEditDate` >= ? ORDER BY `ChannelId`")).
		WithArgs(1, "True", now.Add(-24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"ChannelId"}).AddRow(int64(4)).AddRow(int64(9)))

	r := &ContentRepositoryImpl{base: base{db: db, d: Dialect{Driver: "mysql"}}, now: func() time.Time { return now }}
	n, err := r.GetCount(context.Background(), "siteserver_Content", 1, []int{3, 4})
	assert.Nil(t, err)
	assert.Equal(t, 7, n)

	n, err = r.GetCount(context.Background(), "siteserver_Content", 1, nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, n)

	ids, err := r.GetChannelIdListCheckedByLastEditDateHour(context.Background(), "siteserver_Content", 1, 24)
	assert.Nil(t, err)
	assert.Equal(t, []int{4, 9}, ids)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestAdministratorGetByUserId(t *testing.T) {
	q := "SELECT `Id`, `UserName`, `Password`, `PasswordFormat`, `PasswordSalt`, `CreationDate`, `LastActivityDate`, `CountOfLogin`, `CreatorUserName`, `IsLockedOut`, `SiteIdCollection`, `SiteId`, `DepartmentId`, `AreaId`, `DisplayName`, `Email`, `Mobile` FROM `siteserver_Administrator` WHERE `Id` = ? ORDER BY `Id`"
	ms := []mockSpec{
		{
			query: q,
			args:  []driver.Value{int64(5)},
			cols:  administratorColumns,
			rows: [][]driver.Value{
				{int64(5), "editor", "secret", "Encrypted", "salt", nil, nil, int64(3), "admin", "False", "1,2", int64(0), int64(7), int64(8), "Editor", "e@x.com", nil},
			},
		},
		{
			query: q,
			args:  []driver.Value{int64(6)},
			cols:  administratorColumns,
		},
	}
	db, _ := mkMockDB(t, ms)
	r := New(db, "mysql")
	a, err := r.Administrators.GetByUserId(context.Background(), 5)
	assert.Nil(t, err)
	assert.Equal(t, "editor", a.UserName)
	assert.Equal(t, 7, a.DepartmentId)
	assert.Equal(t, 8, a.AreaId)
	assert.Equal(t, []int{1, 2}, a.SiteIds())
	assert.False(t, a.IsLockedOut)

	_, err = r.Administrators.GetByUserId(context.Background(), 6)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRolesAndPermissions(t *testing.T) {
	ms := []mockSpec{
		{
			query: "SELECT `RoleName` FROM `siteserver_AdministratorsInRoles` WHERE `UserName` = ? ORDER BY `Id`",
			args:  []driver.Value{"editor"},
			cols:  []string{"RoleName"},
			rows:  [][]driver.Value{{"Writers"}, {"Reviewers"}},
		},
		{
			query: "SELECT `GeneralPermissions` FROM `siteserver_PermissionsInRoles` WHERE `RoleName` IN (?, ?) ORDER BY `Id`",
			args:  []driver.Value{"Writers", "Reviewers"},
			cols:  []string{"GeneralPermissions"},
			rows:  [][]driver.Value{{"settings_admin,cms_view"}, {"cms_view,settings_site"}},
		},
		{
			query: "SELECT `Id`, `RoleName`, `SiteId`, `ChannelIdCollection`, `ChannelPermissions`, `WebsitePermissions` FROM `siteserver_SitePermissions` WHERE `RoleName` IN (?) ORDER BY `Id`",
			args:  []driver.Value{"Writers"},
			cols:  sitePermissionsColumns,
			rows:  [][]driver.Value{{int64(1), "Writers", int64(2), "5,6", "channel_add", "cms_create"}},
		},
	}
	db, _ := mkMockDB(t, ms)
	r := New(db, "mysql")
	ctx := context.Background()

	roles, err := r.AdministratorsInRoles.GetRolesForUser(ctx, "editor")
	assert.Nil(t, err)
	assert.Equal(t, []string{"Writers", "Reviewers"}, roles)

	perms, err := r.PermissionsInRoles.GetGeneralPermissions(ctx, roles)
	assert.Nil(t, err)
	assert.Equal(t, []string{"settings_admin", "cms_view", "settings_site"}, perms)

	sitePerms, err := r.SitePermissions.GetByRoles(ctx, []string{"Writers"})
	assert.Nil(t, err)
	assert.Equal(t, []SitePermissions{{Id: 1, RoleName: "Writers", SiteId: 2, ChannelIdCollection: "5,6", ChannelPermissions: "channel_add", WebsitePermissions: "cms_create"}}, sitePerms)

	perms, err = r.PermissionsInRoles.GetGeneralPermissions(ctx, nil)
	assert.Nil(t, err)
	assert.Nil(t, perms)
}

func TestCreateTaskRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.Nil(t, err)
	added := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `siteserver_CreateTask` (`Guid`, `CreateType`, `SiteId`, `ChannelId`, `ExecutionTimes`, `AddDate`) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs("g", CreateTypeChannel, 1, 3, 0, added).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM `siteserver_CreateTask` WHERE `CreateType` = ? AND `SiteId` = ? AND `ChannelId` = ?")).
		WithArgs(CreateTypeChannel, 1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id`, `Guid`, `CreateType`, `SiteId`, `ChannelId`, `ExecutionTimes`, `AddDate` FROM `siteserver_CreateTask` ORDER BY `Id` LIMIT 10")).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Guid", "CreateType", "SiteId", "ChannelId", "ExecutionTimes", "AddDate"}).
			AddRow(int64(1), "g", CreateTypeChannel, int64(1), int64(3), int64(0), added))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `siteserver_CreateTask` SET `ExecutionTimes` = ? WHERE `Id` = ?")).
		WithArgs(1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `siteserver_CreateTask` WHERE `Id` = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `siteserver_CreateTask` WHERE `SiteId` = ?")).
		WithArgs(1).
		WillReturnError(errors.New("connection reset"))

	r := New(db, "mysql").CreateTasks
	ctx := context.Background()
	assert.Nil(t, r.Insert(ctx, CreateTask{Guid: "g", CreateType: CreateTypeChannel, SiteId: 1, ChannelId: 3, AddDate: added}))
	exists, err := r.IsExists(ctx, CreateTypeChannel, 1, 3)
	assert.Nil(t, err)
	assert.True(t, exists)
	tasks, err := r.GetPending(ctx, 10)
	assert.Nil(t, err)
	assert.Equal(t, []CreateTask{{Id: 1, Guid: "g", CreateType: CreateTypeChannel, SiteId: 1, ChannelId: 3, AddDate: added}}, tasks)
	assert.Nil(t, r.UpdateExecutionTimes(ctx, 1, 1))
	assert.Nil(t, r.Delete(ctx, 1))
	assert.Error(t, r.DeleteAllBySiteId(ctx, 1))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.Nil(t, err)
	for _, table := range Tables() {
		if table.Name == SiteTable.Name {
			continue
		}
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE `" + table.Name + "`")).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	err = CreateTables(context.Background(), db, "mysql", func(name string) bool { return name == SiteTable.Name })
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestTableExists(t *testing.T) {
	ms := []mockSpec{
		{
			query: "SELECT COUNT(*) FROM information_schema.tables WHERE LOWER(table_name) = LOWER(?)",
			args:  []driver.Value{"siteserver_Site"},
			cols:  []string{"COUNT(*)"},
			rows:  [][]driver.Value{{1}},
		},
		{
			query: "SELECT COUNT(*) FROM information_schema.tables WHERE LOWER(table_name) = LOWER(?)",
			args:  []driver.Value{"siteserver_Missing"},
			cols:  []string{"COUNT(*)"},
			rows:  [][]driver.Value{{0}},
		},
	}
	db, mock := mkMockDB(t, ms)
	ok, err := TableExists(context.Background(), db, "mysql", "siteserver_Site")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = TableExists(context.Background(), db, "mysql", "siteserver_Missing")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Contains(t, Dialect{Driver: "oracle"}.TableExists(), "user_tables")
}
